package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/anjiri1684/trivia_api/database"
	"github.com/anjiri1684/trivia_api/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func insertQuestions(t *testing.T, db *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	return questions
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()
}

type recordingPublisher struct {
	events []QuestionEvent
}

func (p *recordingPublisher) Publish(e QuestionEvent) { p.events = append(p.events, e) }

func TestListCategories(t *testing.T) {
	svc := NewQuestionService(newTestDB(t), nil)

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("got %d categories, want 6", len(categories))
	}
	if categories[0].Type != "Science" || categories[5].Type != "Sports" {
		t.Errorf("unexpected order: %+v", categories)
	}
}

func TestListCategoriesStoreDown(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)
	closeDB(t, db)

	if _, err := svc.ListCategories(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}

func TestListQuestionsPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)

	for i := 1; i <= 23; i++ {
		insertQuestions(t, db, models.Question{
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     "yes",
			Category:   1 + i%6,
			Difficulty: 1 + i%5,
		})
	}

	tests := []struct {
		page     int
		wantLen  int
		wantFrom uint
	}{
		{page: 1, wantLen: 10, wantFrom: 1},
		{page: 2, wantLen: 10, wantFrom: 11},
		{page: 3, wantLen: 3, wantFrom: 21},
		{page: 4, wantLen: 0},
		{page: 1000, wantLen: 0},
		{page: 0, wantLen: 0},
		{page: -2, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			got, err := svc.ListQuestions(context.Background(), tt.page)
			if err != nil {
				t.Fatalf("ListQuestions: %v", err)
			}
			if got.TotalQuestions != 23 {
				t.Errorf("TotalQuestions = %d, want 23", got.TotalQuestions)
			}
			if len(got.Questions) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got.Questions), tt.wantLen)
			}
			if tt.wantLen > 0 && got.Questions[0].ID != tt.wantFrom {
				t.Errorf("first id = %d, want %d", got.Questions[0].ID, tt.wantFrom)
			}
			if got.Questions == nil {
				t.Error("empty page must be an empty slice, not nil")
			}
			if len(got.Categories) != 6 {
				t.Errorf("categories = %d, want 6", len(got.Categories))
			}
		})
	}
}

func TestDeleteQuestionTwice(t *testing.T) {
	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := NewQuestionService(db, pub)

	q := insertQuestions(t, db, models.Question{Question: "Who?", Answer: "Me", Category: 1, Difficulty: 1})[0]

	if err := svc.DeleteQuestion(context.Background(), q.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteQuestion(context.Background(), q.ID); !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("second delete err = %v, want ErrUnprocessable", err)
	}

	if len(pub.events) != 1 || pub.events[0].Event != EventQuestionDeleted || pub.events[0].Question.ID != q.ID {
		t.Errorf("events = %+v", pub.events)
	}
}

func TestDeleteMissingQuestion(t *testing.T) {
	svc := NewQuestionService(newTestDB(t), nil)
	if err := svc.DeleteQuestion(context.Background(), 10000); !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("err = %v, want ErrUnprocessable", err)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	valid := NewQuestion{Question: "The answer to life?", Answer: "42", Difficulty: "3", Category: "1"}

	tests := []struct {
		name   string
		mutate func(*NewQuestion)
	}{
		{"missing question", func(q *NewQuestion) { q.Question = "" }},
		{"missing answer", func(q *NewQuestion) { q.Answer = "" }},
		{"missing difficulty", func(q *NewQuestion) { q.Difficulty = "" }},
		{"missing category", func(q *NewQuestion) { q.Category = "" }},
		{"non numeric difficulty", func(q *NewQuestion) { q.Difficulty = "hard" }},
		{"negative category", func(q *NewQuestion) { q.Category = "-1" }},
		{"overflowing category", func(q *NewQuestion) { q.Category = "99999999999999999999999" }},
	}

	svc := NewQuestionService(newTestDB(t), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			if _, err := svc.CreateQuestion(context.Background(), input); !errors.Is(err, ErrBadRequest) {
				t.Fatalf("err = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestCreateQuestionIsListed(t *testing.T) {
	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := NewQuestionService(db, pub)

	created, err := svc.CreateQuestion(context.Background(), NewQuestion{
		Question: "The answer to life, the universe and everything?", Answer: "42", Difficulty: "3", Category: "1",
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if created.ID == 0 || created.Difficulty != 3 || created.Category != 1 {
		t.Errorf("created = %+v", created)
	}

	page, err := svc.ListQuestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if page.TotalQuestions != 1 || len(page.Questions) != 1 || page.Questions[0] != *created {
		t.Errorf("page = %+v", page)
	}
	if len(pub.events) != 1 || pub.events[0].Event != EventQuestionCreated {
		t.Errorf("events = %+v", pub.events)
	}
}

func TestCreateQuestionStoreFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)
	closeDB(t, db)

	_, err := svc.CreateQuestion(context.Background(), NewQuestion{Question: "Q", Answer: "A", Difficulty: "1", Category: "1"})
	if !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("err = %v, want ErrUnprocessable", err)
	}
}

func TestSearchQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)

	insertQuestions(t, db,
		models.Question{Question: "What is the largest organ of the Human Body?", Answer: "Skin", Category: 1, Difficulty: 2},
		models.Question{Question: "Which bone is the longest in the human body?", Answer: "Femur", Category: 1, Difficulty: 3},
		models.Question{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 1},
		models.Question{Question: "What does 100% mean?", Answer: "All", Category: 1, Difficulty: 1},
	)

	if _, err := svc.SearchQuestions(context.Background(), ""); !errors.Is(err, ErrBadRequest) {
		t.Errorf("empty term err = %v, want ErrBadRequest", err)
	}
	if _, err := svc.SearchQuestions(context.Background(), "somerandomsearchstring"); !errors.Is(err, ErrNotFound) {
		t.Errorf("no match err = %v, want ErrNotFound", err)
	}

	got, err := svc.SearchQuestions(context.Background(), "HUMAN body")
	if err != nil {
		t.Fatalf("SearchQuestions: %v", err)
	}
	if len(got) != 2 || got[0].Answer != "Skin" || got[1].Answer != "Femur" {
		t.Errorf("got %+v", got)
	}

	// LIKE wildcards in the term are literal
	got, err = svc.SearchQuestions(context.Background(), "%")
	if err != nil {
		t.Fatalf("SearchQuestions(%%): %v", err)
	}
	if len(got) != 1 || got[0].Answer != "All" {
		t.Errorf("got %+v", got)
	}
	if _, err := svc.SearchQuestions(context.Background(), "_x_"); !errors.Is(err, ErrNotFound) {
		t.Errorf("underscore term err = %v, want ErrNotFound", err)
	}
}

func TestQuestionsByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)

	inserted := insertQuestions(t, db,
		models.Question{Question: "A", Answer: "a", Category: 1, Difficulty: 1},
		models.Question{Question: "B", Answer: "b", Category: 1, Difficulty: 2},
		models.Question{Question: "C", Answer: "c", Category: 2, Difficulty: 3},
	)

	got, err := svc.QuestionsByCategory(context.Background(), 1)
	if err != nil {
		t.Fatalf("QuestionsByCategory: %v", err)
	}
	if len(got) != 2 || got[0] != inserted[0] || got[1] != inserted[1] {
		t.Errorf("got %+v", got)
	}

	empty, err := svc.QuestionsByCategory(context.Background(), 42)
	if err != nil {
		t.Fatalf("empty category: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty = %#v, want empty slice", empty)
	}
}

func TestPingAndStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db, nil)
	insertQuestions(t, db, models.Question{Question: "A", Answer: "a", Category: 1, Difficulty: 1})

	if err := svc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Questions != 1 || stats.Categories != 6 {
		t.Errorf("stats = %+v", stats)
	}

	closeDB(t, db)
	if err := svc.Ping(context.Background()); !errors.Is(err, ErrInternal) {
		t.Errorf("Ping after close = %v, want ErrInternal", err)
	}
}
