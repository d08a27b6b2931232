package catalog

import (
	"fmt"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// Library implements domain.LessonSource. Category counts are derived from
// the lessons at construction so they can never drift from the content.
type Library struct {
	lessons    []domain.Lesson
	index      map[string]int
	categories []domain.LessonCategory
}

// NewLibrary validates the lessons and wires them to their categories.
// Every lesson must reference a declared category.
func NewLibrary(lessons []domain.Lesson, categories []domain.LessonCategory) (*Library, error) {
	l := &Library{
		lessons: lessons,
		index:   make(map[string]int, len(lessons)),
	}

	counts := make(map[string]int, len(categories))
	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.ID] = true
	}

	for i, lesson := range lessons {
		if !lesson.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLesson, lesson.ID)
		}
		if _, exists := l.index[lesson.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateLessonID, lesson.ID)
		}
		if !known[lesson.Category] {
			return nil, fmt.Errorf("lesson %s references unknown category %q", lesson.ID, lesson.Category)
		}
		l.index[lesson.ID] = i
		counts[lesson.Category]++
	}

	l.categories = make([]domain.LessonCategory, len(categories))
	for i, cat := range categories {
		cat.Count = counts[cat.ID]
		l.categories[i] = cat
	}

	return l, nil
}

func (l *Library) Find(id string) (*domain.Lesson, bool) {
	i, ok := l.index[id]
	if !ok {
		return nil, false
	}
	return &l.lessons[i], true
}

func (l *Library) All() []domain.Lesson {
	return l.lessons
}

func (l *Library) Categories() []domain.LessonCategory {
	return l.categories
}

// Size reports the number of lessons, used by the health endpoint.
func (l *Library) Size() int {
	return len(l.lessons)
}
