package taskparser

import (
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/action"
	"task-intent/internal/nlp/normalizer"
	"task-intent/internal/nlp/urgency"
)

// Context carries the caller's lookup tables. Both may be empty.
type Context struct {
	Projects []model.Project `json:"projects" yaml:"projects"`
	Labels   []model.Label   `json:"labels" yaml:"labels"`
}

// Field names used in ParsedField.
const (
	FieldDueDate          = "dueDate"
	FieldDueTime          = "dueTime"
	FieldPriority         = "priority"
	FieldImplicitPriority = "implicitPriority"
	FieldProject          = "project"
	FieldLabels           = "labels"
	FieldDuration         = "duration"
	FieldRecurrence       = "recurrence"
	FieldLocation         = "location"
	FieldAction           = "action"
)

// ParsedField records where one intent field came from.
type ParsedField struct {
	Field       string  `json:"field"`
	Value       string  `json:"value"`
	MatchedText string  `json:"matched_text"`
	Confidence  float64 `json:"confidence"`
}

// ParsedTaskIntent is the structured result of parsing one input string.
type ParsedTaskIntent struct {
	Title          string                   `json:"title"`
	OriginalText   string                   `json:"original_text"`
	NormalizedText string                   `json:"normalized_text"`
	Replacements   []normalizer.Replacement `json:"replacements,omitempty"`

	DueDate      *time.Time           `json:"due_date,omitempty"`
	DueTime      string               `json:"due_time,omitempty"`
	DeadlineType urgency.DeadlineType `json:"deadline_type,omitempty"`

	Priority                   model.Priority `json:"priority,omitempty"`
	ImplicitPriority           model.Priority `json:"implicit_priority,omitempty"`
	ImplicitPriorityConfidence float64        `json:"implicit_priority_confidence,omitempty"`

	ProjectID   string   `json:"project_id,omitempty"`
	ProjectName string   `json:"project_name,omitempty"`
	LabelIDs    []string `json:"label_ids"`
	LabelNames  []string `json:"label_names"`

	Recurrence *model.Recurrence `json:"recurrence,omitempty"`
	Duration   int               `json:"duration,omitempty"`
	Location   string            `json:"location,omitempty"`

	ActionType                  action.Type `json:"action_type,omitempty"`
	EstimatedDuration           int         `json:"estimated_duration,omitempty"`
	EstimatedDurationConfidence float64     `json:"estimated_duration_confidence,omitempty"`

	IsMultiPart         bool     `json:"is_multi_part"`
	MultiPartConfidence float64  `json:"multi_part_confidence,omitempty"`
	SuggestedSubtasks   []string `json:"suggested_subtasks,omitempty"`

	Confidence   float64       `json:"confidence"`
	ParsedFields []ParsedField `json:"parsed_fields"`
}

// EffectivePriority is the explicit priority when present, else the one
// implied by urgency phrasing.
func (p ParsedTaskIntent) EffectivePriority() model.Priority {
	if p.Priority != model.PriorityNone {
		return p.Priority
	}
	return p.ImplicitPriority
}

// Completion is one autocomplete candidate.
type Completion struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// Completion types.
const (
	CompletionProject = "project"
	CompletionLabel   = "label"
)
