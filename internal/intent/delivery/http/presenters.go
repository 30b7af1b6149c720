package http

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"task-intent/internal/intent"
	"task-intent/internal/model"
	"task-intent/internal/nlp/taskparser"
	"task-intent/internal/suggestion"
	"task-intent/pkg/response"
)

// --- Request DTOs ---

type entryReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r entryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Name, validation.Required),
	)
}

type contextReq struct {
	Projects []entryReq `json:"projects"`
	Labels   []entryReq `json:"labels"`
}

func (r contextReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Projects),
		validation.Field(&r.Labels),
	)
}

func (r contextReq) toContext() taskparser.Context {
	return taskparser.Context{
		Projects: toProjects(r.Projects),
		Labels:   toLabels(r.Labels),
	}
}

func toProjects(in []entryReq) []model.Project {
	out := make([]model.Project, len(in))
	for i, e := range in {
		out[i] = model.Project{ID: e.ID, Name: e.Name}
	}
	return out
}

func toLabels(in []entryReq) []model.Label {
	out := make([]model.Label, len(in))
	for i, e := range in {
		out[i] = model.Label{ID: e.ID, Name: e.Name}
	}
	return out
}

// parseNow reads an optional RFC 3339 reference time. The zero time means
// "use the service clock".
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidNow
	}
	return t, nil
}

// ---

type parseReq struct {
	Text    string     `json:"text"`
	Context contextReq `json:"context"`
	// Now is an optional RFC 3339 reference time, e.g. 2026-01-12T10:30:00+07:00.
	Now string `json:"now"`
}

func (r parseReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Context),
		validation.Field(&r.Now, validation.Date(time.RFC3339)),
	)
}

func (r parseReq) toInput() (intent.ParseInput, error) {
	now, err := parseNow(r.Now)
	if err != nil {
		return intent.ParseInput{}, err
	}
	return intent.ParseInput{Text: r.Text, Context: r.Context.toContext(), Now: now}, nil
}

// ---

type parseBatchReq struct {
	Texts   []string   `json:"texts"`
	Context contextReq `json:"context"`
	Now     string     `json:"now"`
}

func (r parseBatchReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Texts, validation.Required),
		validation.Field(&r.Context),
		validation.Field(&r.Now, validation.Date(time.RFC3339)),
	)
}

func (r parseBatchReq) toInput() (intent.ParseBatchInput, error) {
	now, err := parseNow(r.Now)
	if err != nil {
		return intent.ParseBatchInput{}, err
	}
	return intent.ParseBatchInput{Texts: r.Texts, Context: r.Context.toContext(), Now: now}, nil
}

// ---

type autocompleteReq struct {
	Partial string     `json:"partial"`
	Context contextReq `json:"context"`
}

func (r autocompleteReq) validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.Context))
}

func (r autocompleteReq) toInput() intent.AutocompleteInput {
	return intent.AutocompleteInput{Partial: r.Partial, Context: r.Context.toContext()}
}

// ---

type suggestReq struct {
	Content string `json:"content"`
}

func (r suggestReq) validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.Content, validation.Required))
}

func (r suggestReq) toInput() intent.SuggestInput {
	return intent.SuggestInput{Content: r.Content}
}

// ---

type groupingReq struct {
	Content        string     `json:"content"`
	Description    string     `json:"description"`
	Projects       []entryReq `json:"projects"`
	ExistingLabels []string   `json:"existing_labels"`
	Labels         []entryReq `json:"labels"`
}

func (r groupingReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Projects),
		validation.Field(&r.ExistingLabels, validation.Each(validation.Required)),
		validation.Field(&r.Labels),
	)
}

func (r groupingReq) toInput() intent.GroupingInput {
	return intent.GroupingInput{
		Content:        r.Content,
		Description:    r.Description,
		Projects:       toProjects(r.Projects),
		ExistingLabels: r.ExistingLabels,
		Labels:         toLabels(r.Labels),
	}
}

// ---

type taskReq struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	ProjectID   string   `json:"project_id"`
}

func (r taskReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

func (r taskReq) toSnapshot() suggestion.TaskSnapshot {
	return suggestion.TaskSnapshot{
		ID:          r.ID,
		Content:     r.Content,
		Description: r.Description,
		Labels:      r.Labels,
		ProjectID:   r.ProjectID,
	}
}

func toSnapshots(in []taskReq) []suggestion.TaskSnapshot {
	out := make([]suggestion.TaskSnapshot, len(in))
	for i, t := range in {
		out[i] = t.toSnapshot()
	}
	return out
}

type categorizeReq struct {
	Tasks []taskReq `json:"tasks"`
}

func (r categorizeReq) validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.Tasks, validation.Required))
}

func (r categorizeReq) toInput() intent.CategorizeInput {
	return intent.CategorizeInput{Tasks: toSnapshots(r.Tasks)}
}

type similarReq struct {
	Target     taskReq   `json:"target"`
	Candidates []taskReq `json:"candidates"`
	Limit      int       `json:"limit"`
}

func (r similarReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Target),
		validation.Field(&r.Candidates),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}

func (r similarReq) toInput() intent.SimilarInput {
	return intent.SimilarInput{
		Target:     r.Target.toSnapshot(),
		Candidates: toSnapshots(r.Candidates),
		Limit:      r.Limit,
	}
}

// --- Response DTOs ---

// intentResp renders the due date as a plain calendar date in the
// intent's own location.
type intentResp struct {
	taskparser.ParsedTaskIntent
	DueDate *response.Date `json:"due_date,omitempty"`
}

func newIntentResp(p taskparser.ParsedTaskIntent) intentResp {
	r := intentResp{ParsedTaskIntent: p}
	if p.DueDate != nil {
		d := response.Date(*p.DueDate)
		r.DueDate = &d
	}
	return r
}

type parseResp struct {
	Intent  intentResp `json:"intent"`
	Summary string     `json:"summary"`
	Cached  bool       `json:"cached"`
}

func newParseResp(out intent.ParseOutput) parseResp {
	return parseResp{
		Intent:  newIntentResp(out.Intent),
		Summary: out.Summary,
		Cached:  out.Cached,
	}
}

type parseBatchResp struct {
	Results []parseResp `json:"results"`
}

func (h *handler) newParseBatchResp(out intent.ParseBatchOutput) parseBatchResp {
	results := make([]parseResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = newParseResp(r)
	}
	return parseBatchResp{Results: results}
}

type autocompleteResp struct {
	Completions []taskparser.Completion `json:"completions"`
}

func (h *handler) newAutocompleteResp(out intent.AutocompleteOutput) autocompleteResp {
	completions := out.Completions
	if completions == nil {
		completions = []taskparser.Completion{}
	}
	return autocompleteResp{Completions: completions}
}

type dueDateValueResp struct {
	suggestion.DueDate
	Date response.Date `json:"date"`
}

type dueDateSuggestionResp struct {
	suggestion.Suggestion
	Value dueDateValueResp `json:"value"`
}

// dueDateResp carries a null suggestion when nothing in the content hints at a date.
type dueDateResp struct {
	Suggestion *dueDateSuggestionResp `json:"suggestion"`
}

func (h *handler) newDueDateResp(out intent.DueDateOutput) dueDateResp {
	if out.Suggestion == nil {
		return dueDateResp{}
	}
	s := out.Suggestion
	return dueDateResp{Suggestion: &dueDateSuggestionResp{
		Suggestion: s.Suggestion,
		Value:      dueDateValueResp{DueDate: s.Value, Date: response.Date(s.Value.Date)},
	}}
}

type priorityResp struct {
	Suggestion *suggestion.PrioritySuggestion `json:"suggestion"`
}

func (h *handler) newPriorityResp(out intent.PriorityOutput) priorityResp {
	return priorityResp{Suggestion: out.Suggestion}
}

type groupingResp struct {
	suggestion.Grouping
	CategoryInfo *suggestion.CategoryInfo `json:"category_info,omitempty"`
}

func (h *handler) newGroupingResp(out intent.GroupingOutput) groupingResp {
	r := groupingResp{Grouping: out.Grouping}
	if c := out.Grouping.Category; c != nil {
		if info, ok := suggestion.CategoryDisplay[c.Category]; ok {
			r.CategoryInfo = &info
		}
	}
	return r
}

type categorizeResp struct {
	Groups []suggestion.CategoryGroup `json:"groups"`
}

func (h *handler) newCategorizeResp(out intent.CategorizeOutput) categorizeResp {
	return categorizeResp{Groups: out.Groups}
}

type similarResp struct {
	Similar []suggestion.Similar `json:"similar"`
}

func (h *handler) newSimilarResp(out intent.SimilarOutput) similarResp {
	similar := out.Similar
	if similar == nil {
		similar = []suggestion.Similar{}
	}
	return similarResp{Similar: similar}
}
