package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/anjiri1684/trivia_api/models"
	"gorm.io/gorm"
)

// AllCategories selects the whole question table as the quiz pool.
const AllCategories = 0

// Rand is the draw source for SelectNext. Implementations must be safe for
// concurrent use when shared by a QuizService.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

type QuizService struct {
	db  *gorm.DB
	rng Rand
}

// NewQuizService draws from math/rand's global source when rng is nil.
func NewQuizService(db *gorm.DB, rng Rand) *QuizService {
	if rng == nil {
		rng = globalRand{}
	}
	return &QuizService{db: db, rng: rng}
}

// NextQuestion picks a question from the category pool that is not in
// previous, giving up after as many draws as the pool holds.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []uint) (*models.Question, error) {
	query := s.db.WithContext(ctx).Order("id")
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}

	var pool []models.Question
	if err := query.Find(&pool).Error; err != nil {
		return nil, fmt.Errorf("%w: load quiz pool: %v", ErrInternal, err)
	}

	question, ok := SelectNext(pool, previous, s.rng)
	if !ok {
		return nil, fmt.Errorf("%w: no questions in category %d", ErrNotFound, categoryID)
	}
	return &question, nil
}

// SelectNext draws uniformly from pool until it hits an id outside previous
// or has drawn len(pool) times; the last draw is returned either way, so a
// repeat is possible when unseen questions remain. ok is false only for an
// empty pool.
func SelectNext(pool []models.Question, previous []uint, rng Rand) (question models.Question, ok bool) {
	if len(pool) == 0 {
		return models.Question{}, false
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidate := pool[rng.Intn(len(pool))]
	for draws := 1; draws < len(pool); draws++ {
		if _, repeat := seen[candidate.ID]; !repeat {
			break
		}
		candidate = pool[rng.Intn(len(pool))]
	}

	return candidate, true
}
