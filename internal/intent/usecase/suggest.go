package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"task-intent/internal/intent"
	"task-intent/internal/nlp/entity"
	"task-intent/internal/nlp/taskparser"
)

// Autocomplete completes a trailing #project or @label token.
func (uc *implUseCase) Autocomplete(ctx context.Context, input intent.AutocompleteInput) (intent.AutocompleteOutput, error) {
	if utf8.RuneCountInString(input.Partial) > uc.opts.MaxInputLength {
		return intent.AutocompleteOutput{}, intent.ErrInputTooLong
	}
	return intent.AutocompleteOutput{Completions: taskparser.Suggestions(input.Partial, input.Context)}, nil
}

func (uc *implUseCase) SuggestDueDate(ctx context.Context, input intent.SuggestInput) (intent.DueDateOutput, error) {
	if err := uc.validateText(input.Content); err != nil {
		return intent.DueDateOutput{}, err
	}
	s, ok := uc.engine.SuggestDueDate(input.Content)
	if !ok {
		return intent.DueDateOutput{}, nil
	}
	return intent.DueDateOutput{Suggestion: &s}, nil
}

func (uc *implUseCase) SuggestPriority(ctx context.Context, input intent.SuggestInput) (intent.PriorityOutput, error) {
	if err := uc.validateText(input.Content); err != nil {
		return intent.PriorityOutput{}, err
	}
	s, ok := uc.engine.SuggestPriority(input.Content)
	if !ok {
		return intent.PriorityOutput{}, nil
	}
	return intent.PriorityOutput{Suggestion: &s}, nil
}

// SuggestGrouping proposes a category, project and labels for a task.
func (uc *implUseCase) SuggestGrouping(ctx context.Context, input intent.GroupingInput) (intent.GroupingOutput, error) {
	text := strings.TrimSpace(input.Content + " " + input.Description)
	if err := uc.validateText(text); err != nil {
		return intent.GroupingOutput{}, err
	}
	g := uc.engine.SuggestGrouping(input.Content, input.Description, input.Projects, input.ExistingLabels)
	g.MatchedLabels = entity.SuggestLabels(text, input.Labels)
	return intent.GroupingOutput{Grouping: g}, nil
}

// GroupByCategory buckets existing tasks by inferred category.
func (uc *implUseCase) GroupByCategory(ctx context.Context, input intent.CategorizeInput) (intent.CategorizeOutput, error) {
	if len(input.Tasks) == 0 {
		return intent.CategorizeOutput{}, intent.ErrEmptyInput
	}
	if len(input.Tasks) > uc.opts.MaxBatchSize {
		return intent.CategorizeOutput{}, intent.ErrTooManyInputs
	}
	groups := uc.engine.GroupByCategory(input.Tasks)
	uc.l.Debugf(ctx, "uc.GroupByCategory: %d tasks in %d groups", len(input.Tasks), len(groups))
	return intent.CategorizeOutput{Groups: groups}, nil
}

// FindSimilar ranks candidate tasks by similarity to the target.
func (uc *implUseCase) FindSimilar(ctx context.Context, input intent.SimilarInput) (intent.SimilarOutput, error) {
	if err := uc.validateText(input.Target.Content); err != nil {
		return intent.SimilarOutput{}, err
	}
	if len(input.Candidates) > uc.opts.MaxBatchSize {
		return intent.SimilarOutput{}, intent.ErrTooManyInputs
	}
	return intent.SimilarOutput{Similar: uc.engine.FindSimilar(input.Target, input.Candidates, input.Limit)}, nil
}
