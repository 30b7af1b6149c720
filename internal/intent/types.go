package intent

import (
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/taskparser"
	"task-intent/internal/suggestion"
)

// --- UseCase Inputs ---

// ParseInput is one free-text task. A zero Now means "use the service clock".
type ParseInput struct {
	Text    string
	Context taskparser.Context
	Now     time.Time
}

type ParseBatchInput struct {
	Texts   []string
	Context taskparser.Context
	Now     time.Time
}

type AutocompleteInput struct {
	Partial string
	Context taskparser.Context
}

type SuggestInput struct {
	Content string
}

type GroupingInput struct {
	Content        string
	Description    string
	Projects       []model.Project
	ExistingLabels []string
	// Labels is the caller's label table; matches come back with their IDs.
	Labels []model.Label
}

type CategorizeInput struct {
	Tasks []suggestion.TaskSnapshot
}

// SimilarInput scores Candidates against Target. Limit <= 0 means
// suggestion.DefaultSimilarLimit.
type SimilarInput struct {
	Target     suggestion.TaskSnapshot
	Candidates []suggestion.TaskSnapshot
	Limit      int
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Intent taskparser.ParsedTaskIntent
	// Summary is the one-line rendering of Intent.
	Summary string
	Cached  bool
}

type ParseBatchOutput struct {
	Results []ParseOutput
}

type AutocompleteOutput struct {
	Completions []taskparser.Completion
}

// DueDateOutput carries a nil Suggestion when the content has no date signal.
type DueDateOutput struct {
	Suggestion *suggestion.DueDateSuggestion
}

type PriorityOutput struct {
	Suggestion *suggestion.PrioritySuggestion
}

type GroupingOutput struct {
	Grouping suggestion.Grouping
}

type CategorizeOutput struct {
	Groups []suggestion.CategoryGroup
}

type SimilarOutput struct {
	Similar []suggestion.Similar
}
