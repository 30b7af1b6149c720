// Package suggestion holds the advisory engines that score free text for a due
// date, a priority, a category, a project and labels. Each call builds fresh,
// immutable suggestions; nothing is persisted.
package suggestion

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"task-intent/pkg/datemath"
)

// Type tags the kind of suggestion.
type Type string

const (
	TypeDueDate  Type = "due_date"
	TypePriority Type = "priority"
	TypeProject  Type = "project"
	TypeLabels   Type = "labels"
)

// Source tells where a suggestion was computed.
type Source string

// SourceLocal marks suggestions produced by the rule engines in this package.
const SourceLocal Source = "local"

// Suggestion is the envelope shared by every typed suggestion.
type Suggestion struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	Source     Source    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// Engine computes suggestions. The clock supplies "today" for date rules and
// the creation timestamp. An Engine is safe for concurrent use.
type Engine struct {
	clock datemath.Clock
	// whole-word matchers for project name words, shared across calls
	words *lru.Cache[string, *regexp.Regexp]
}

const wordPatternCacheSize = 512

// New returns an Engine reading time from clock.
func New(clock datemath.Clock) *Engine {
	words, _ := lru.New[string, *regexp.Regexp](wordPatternCacheSize)
	return &Engine{clock: clock, words: words}
}

// wordPattern returns a case-insensitive whole-word matcher for w.
func (e *Engine) wordPattern(w string) *regexp.Regexp {
	if re, ok := e.words.Get(w); ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	e.words.Add(w, re)
	return re
}

func (e *Engine) today() time.Time {
	return datemath.StartOfDay(e.clock.Now())
}

func (e *Engine) envelope(typ Type, confidence float64, reasoning string) Suggestion {
	return Suggestion{
		ID:         uuid.NewString(),
		Type:       typ,
		Confidence: confidence,
		Reasoning:  reasoning,
		Source:     SourceLocal,
		CreatedAt:  e.clock.Now(),
	}
}
