package domain

import "errors"

var (
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrInvalidLesson     = errors.New("invalid lesson")
	ErrDuplicateLessonID = errors.New("lesson with same id already exists")
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Lesson is the full record including body content. Titles exist in Thai
// (primary) and English. Quiz serializes as null rather than disappearing
// when a lesson has none; clients rely on the key being present.
type Lesson struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	TitleEN      string          `json:"title_en"`
	Category     string          `json:"category"`
	Difficulty   Difficulty      `json:"difficulty"`
	DurationMin  int             `json:"duration_min"`
	Sections     []LessonSection `json:"sections"`
	KeyTakeaways []string        `json:"key_takeaways"`
	Quiz         *Quiz           `json:"quiz"`
}

type LessonSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

func (q Quiz) IsValid() bool {
	return q.Question != "" && len(q.Options) > 0 && q.Answer >= 0 && q.Answer < len(q.Options)
}

func (l Lesson) IsValid() bool {
	if l.ID == "" || l.Title == "" || l.Category == "" || len(l.Sections) == 0 {
		return false
	}
	switch l.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return false
	}
	if l.Quiz != nil && !l.Quiz.IsValid() {
		return false
	}
	return true
}

// LessonSummary is the listing projection. It is a separate type rather
// than a Lesson with fields stripped at serialization time, so a summary
// can never leak sections or quiz content.
type LessonSummary struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	TitleEN      string     `json:"title_en"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	DurationMin  int        `json:"duration_min"`
	SectionCount int        `json:"section_count"`
	HasQuiz      bool       `json:"has_quiz"`
}

// Summary builds the listing projection for this lesson.
func (l Lesson) Summary() LessonSummary {
	return LessonSummary{
		ID:           l.ID,
		Title:        l.Title,
		TitleEN:      l.TitleEN,
		Category:     l.Category,
		Difficulty:   l.Difficulty,
		DurationMin:  l.DurationMin,
		SectionCount: len(l.Sections),
		HasQuiz:      l.Quiz != nil,
	}
}

type LessonCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
