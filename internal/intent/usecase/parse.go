package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"task-intent/internal/intent"
	"task-intent/internal/nlp/taskparser"
)

// Parse turns one free-text task into a structured intent.
func (uc *implUseCase) Parse(ctx context.Context, input intent.ParseInput) (intent.ParseOutput, error) {
	if err := uc.validateText(input.Text); err != nil {
		return intent.ParseOutput{}, err
	}
	now := input.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}
	return uc.parse(ctx, input.Text, input.Context, now), nil
}

// ParseBatch parses every text concurrently, keeping input order. The first
// invalid text fails the whole batch.
func (uc *implUseCase) ParseBatch(ctx context.Context, input intent.ParseBatchInput) (intent.ParseBatchOutput, error) {
	if len(input.Texts) == 0 {
		return intent.ParseBatchOutput{}, intent.ErrEmptyInput
	}
	if len(input.Texts) > uc.opts.MaxBatchSize {
		return intent.ParseBatchOutput{}, intent.ErrTooManyInputs
	}
	for i, text := range input.Texts {
		if err := uc.validateText(text); err != nil {
			return intent.ParseBatchOutput{}, fmt.Errorf("texts[%d]: %w", i, err)
		}
	}

	now := input.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	results := make([]intent.ParseOutput, len(input.Texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.BatchConcurrency)
	for i, text := range input.Texts {
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.parse(gctx, text, input.Context, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Warnf(ctx, "uc.ParseBatch: %v", err)
		return intent.ParseBatchOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.ParseBatch: parsed %d texts", len(results))
	return intent.ParseBatchOutput{Results: results}, nil
}

func (uc *implUseCase) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return intent.ErrEmptyInput
	}
	if utf8.RuneCountInString(text) > uc.opts.MaxInputLength {
		return intent.ErrInputTooLong
	}
	return nil
}

func (uc *implUseCase) parse(ctx context.Context, text string, pctx taskparser.Context, now time.Time) intent.ParseOutput {
	key := cacheKey(text, pctx, now)
	if out, ok := uc.results.Get(key); ok {
		out.Cached = true
		return out
	}

	p := taskparser.Parse(text, pctx, now)
	out := intent.ParseOutput{Intent: p, Summary: taskparser.Format(p)}
	uc.results.Add(key, out)

	uc.l.Debugf(ctx, "uc.parse: %q -> title=%q fields=%d confidence=%.2f", text, p.Title, len(p.ParsedFields), p.Confidence)
	return out
}

// cacheKey identifies a parse by its text, lookup tables and reference minute.
func cacheKey(text string, pctx taskparser.Context, now time.Time) string {
	var b strings.Builder
	b.WriteString(now.Truncate(time.Minute).Format(time.RFC3339))
	b.WriteString(now.Location().String())
	b.WriteByte(0)
	b.WriteString(text)
	for _, p := range pctx.Projects {
		b.WriteString("\x00p")
		b.WriteString(p.ID)
		b.WriteByte('=')
		b.WriteString(p.Name)
	}
	for _, l := range pctx.Labels {
		b.WriteString("\x00l")
		b.WriteString(l.ID)
		b.WriteByte('=')
		b.WriteString(l.Name)
	}
	return b.String()
}
