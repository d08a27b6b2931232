package application

import (
	"context"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// LessonService serves the lesson library. Listings carry summaries only;
// the full body is returned by Get.
type LessonService struct {
	lessons domain.LessonSource
}

func NewLessonService(lessons domain.LessonSource) *LessonService {
	return &LessonService{lessons: lessons}
}

// LessonList is the listing payload: categories with counts plus one
// summary per lesson.
type LessonList struct {
	Categories []domain.LessonCategory `json:"categories"`
	Lessons    []domain.LessonSummary  `json:"lessons"`
}

func (s *LessonService) List(ctx context.Context) (*LessonList, error) {
	all := s.lessons.All()
	summaries := make([]domain.LessonSummary, 0, len(all))
	for _, lesson := range all {
		summaries = append(summaries, lesson.Summary())
	}

	return &LessonList{
		Categories: s.lessons.Categories(),
		Lessons:    summaries,
	}, nil
}

// Get returns the full lesson including sections and quiz, or
// domain.ErrLessonNotFound. Ids match exactly and case-sensitively.
func (s *LessonService) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	lesson, ok := s.lessons.Find(id)
	if !ok {
		return nil, domain.ErrLessonNotFound
	}
	return lesson, nil
}

func (s *LessonService) Categories(ctx context.Context) ([]domain.LessonCategory, error) {
	return s.lessons.Categories(), nil
}
