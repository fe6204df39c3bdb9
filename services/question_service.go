package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anjiri1684/trivia_api/models"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const QuestionsPerPage = 10

var validate = validator.New()

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type QuestionService struct {
	db        *gorm.DB
	publisher Publisher
}

// NewQuestionService builds the service; a nil publisher discards events.
func NewQuestionService(db *gorm.DB, publisher Publisher) *QuestionService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &QuestionService{db: db, publisher: publisher}
}

type QuestionPage struct {
	Questions      []models.Question
	TotalQuestions int64
	Categories     []models.Category
}

// NewQuestion carries the create payload as text; difficulty and category
// must be digit strings.
type NewQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Difficulty string `validate:"required,number"`
	Category   string `validate:"required,number"`
}

type StoreStats struct {
	Questions  int64
	Categories int64
}

func (s *QuestionService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrInternal, err)
	}
	return categories, nil
}

// ListQuestions returns one page of questions ordered by id. Pages outside
// the stored range come back empty.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("%w: count questions: %v", ErrInternal, err)
	}

	questions := []models.Question{}
	if page >= 1 && page <= math.MaxInt32/QuestionsPerPage {
		offset := (page - 1) * QuestionsPerPage
		if err := db.Order("id").Offset(offset).Limit(QuestionsPerPage).Find(&questions).Error; err != nil {
			return nil, fmt.Errorf("%w: list questions: %v", ErrInternal, err)
		}
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:      questions,
		TotalQuestions: total,
		Categories:     categories,
	}, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: question %d does not exist", ErrUnprocessable, id)
		}
		return fmt.Errorf("%w: load question %d: %v", ErrInternal, id, err)
	}

	result := db.Delete(&question)
	if result.Error != nil {
		return fmt.Errorf("%w: delete question %d: %v", ErrUnprocessable, id, result.Error)
	}
	// lost a race with another delete
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: question %d already deleted", ErrUnprocessable, id)
	}

	s.publisher.Publish(QuestionEvent{Event: EventQuestionDeleted, Question: question})
	return nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input NewQuestion) (*models.Question, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	difficulty, err := strconv.Atoi(input.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: difficulty: %v", ErrBadRequest, err)
	}
	category, err := strconv.Atoi(input.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: category: %v", ErrBadRequest, err)
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: difficulty,
		Category:   category,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("%w: insert question: %v", ErrUnprocessable, err)
	}

	s.publisher.Publish(QuestionEvent{Event: EventQuestionCreated, Question: question})
	return &question, nil
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrBadRequest)
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	questions := []models.Question{}
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: search questions: %v", ErrInternal, err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no question matches %q", ErrNotFound, term)
	}
	return questions, nil
}

func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	questions := []models.Question{}
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: questions for category %d: %v", ErrInternal, categoryID, err)
	}
	return questions, nil
}

func (s *QuestionService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrInternal, err)
	}
	return nil
}

func (s *QuestionService) Stats(ctx context.Context) (StoreStats, error) {
	var stats StoreStats
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Question{}).Count(&stats.Questions).Error; err != nil {
		return stats, fmt.Errorf("%w: count questions: %v", ErrInternal, err)
	}
	if err := db.Model(&models.Category{}).Count(&stats.Categories).Error; err != nil {
		return stats, fmt.Errorf("%w: count categories: %v", ErrInternal, err)
	}
	return stats, nil
}
