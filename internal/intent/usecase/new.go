package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-intent/internal/intent"
	"task-intent/internal/suggestion"
	"task-intent/pkg/datemath"
	"task-intent/pkg/log"
)

// Options bounds the work a single call may request.
type Options struct {
	MaxInputLength   int
	MaxBatchSize     int
	BatchConcurrency int
	CacheSize        int
	CacheTTL         time.Duration
}

const (
	defaultMaxInputLength   = 1000
	defaultMaxBatchSize     = 100
	defaultBatchConcurrency = 8
	defaultCacheSize        = 1024
	defaultCacheTTL         = 5 * time.Minute
)

func (o Options) withDefaults() Options {
	if o.MaxInputLength <= 0 {
		o.MaxInputLength = defaultMaxInputLength
	}
	if o.MaxBatchSize <= 0 {
		o.MaxBatchSize = defaultMaxBatchSize
	}
	if o.BatchConcurrency <= 0 {
		o.BatchConcurrency = defaultBatchConcurrency
	}
	if o.CacheSize <= 0 {
		o.CacheSize = defaultCacheSize
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = defaultCacheTTL
	}
	return o
}

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	l       log.Logger
	clock   datemath.Clock
	engine  *suggestion.Engine
	opts    Options
	results *expirable.LRU[string, intent.ParseOutput]
}

var _ intent.UseCase = (*implUseCase)(nil)

// New creates a new intent UseCase. Parsed intents are memoized per text,
// context and minute for opts.CacheTTL.
func New(l log.Logger, clock datemath.Clock, opts Options) *implUseCase {
	opts = opts.withDefaults()
	return &implUseCase{
		l:       l,
		clock:   clock,
		engine:  suggestion.New(clock),
		opts:    opts,
		results: expirable.NewLRU[string, intent.ParseOutput](opts.CacheSize, nil, opts.CacheTTL),
	}
}
