package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parsing
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	ParseBatch(ctx context.Context, input ParseBatchInput) (ParseBatchOutput, error)
	Autocomplete(ctx context.Context, input AutocompleteInput) (AutocompleteOutput, error)

	// Advisory suggestions
	SuggestDueDate(ctx context.Context, input SuggestInput) (DueDateOutput, error)
	SuggestPriority(ctx context.Context, input SuggestInput) (PriorityOutput, error)
	SuggestGrouping(ctx context.Context, input GroupingInput) (GroupingOutput, error)

	// Existing-task helpers
	GroupByCategory(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)
	FindSimilar(ctx context.Context, input SimilarInput) (SimilarOutput, error)
}
