package services

import "github.com/anjiri1684/trivia_api/models"

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

type QuestionEvent struct {
	Event    string          `json:"event"`
	Question models.Question `json:"question"`
}

// Publisher receives question mutations after they are committed.
// Publish must not block the caller.
type Publisher interface {
	Publish(QuestionEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(QuestionEvent) {}
