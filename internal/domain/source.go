package domain

// StockSource is the read-only catalog of stock records. Implementations
// are immutable after construction, so methods take no context and never
// fail: absence is reported through the boolean return.
type StockSource interface {
	// Find looks up a record by its uppercase symbol.
	Find(symbol string) (*Stock, bool)
	// Entries returns the search projections in catalog order. That order
	// defines the order of search results.
	Entries() []SearchEntry
	// Popular returns the curated subset shown on the landing page.
	Popular() []Stock
}

// ConstituentSource serves the S&P 500 listing rows in a stable order
// (ascending symbol).
type ConstituentSource interface {
	Constituents() []Constituent
}

// LessonSource is the read-only lesson library.
type LessonSource interface {
	Find(id string) (*Lesson, bool)
	All() []Lesson
	Categories() []LessonCategory
}
