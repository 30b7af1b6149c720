// Package taskparser turns one line of free text into a structured task intent
// by running the normalizer and every extractor over it.
package taskparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"task-intent/internal/model"
	"task-intent/internal/nlp/action"
	"task-intent/internal/nlp/datetime"
	"task-intent/internal/nlp/entity"
	"task-intent/internal/nlp/multipart"
	"task-intent/internal/nlp/normalizer"
	"task-intent/internal/nlp/pattern"
	"task-intent/internal/nlp/urgency"
	"task-intent/pkg/datemath"
)

const (
	// DateLayout is the display layout of dueDate fields.
	DateLayout = "2006-01-02"

	titleOnlyConfidence = 0.5
)

var trailingPreposition = regexp.MustCompile(`(?i)\s+(?:about|regarding|re|for|with|to|from)$`)

// edgePunctuation is trimmed from both ends of the title.
const edgePunctuation = ",;:-–—.!&|/"

// Parse extracts a task intent from text. now is the reference instant; all
// relative dates resolve against the start of its day. Parse never fails:
// unrecognized input yields an intent whose title is the trimmed input.
func Parse(text string, ctx Context, now time.Time) ParsedTaskIntent {
	res := ParsedTaskIntent{
		OriginalText: text,
		LabelIDs:     []string{},
		LabelNames:   []string{},
		ParsedFields: []ParsedField{},
	}
	if strings.TrimSpace(text) == "" {
		return res
	}

	today := datemath.StartOfDay(now)
	norm := normalizer.Normalize(text)
	working := norm.NormalizedText
	res.NormalizedText = working
	res.Replacements = norm.Replacements

	var agg aggregate

	urg := urgency.Extract(working, today)
	if urg.ImplicitPriority != model.PriorityNone {
		res.ImplicitPriority = urg.ImplicitPriority
		res.ImplicitPriorityConfidence = urg.Confidence
		res.addField(FieldImplicitPriority, string(urg.ImplicitPriority), urg.MatchedPhrase, urg.Confidence)
	}

	dt := datetime.Extract(working, today)
	switch {
	case urg.Deadline != nil:
		due := *urg.Deadline
		if dt.HasTime {
			due = datemath.AtClock(due, dt.Clock.Hour, dt.Clock.Minute)
		}
		res.DueDate = &due
		res.DeadlineType = urg.DeadlineType
		res.addField(FieldDueDate, due.Format(DateLayout), urg.MatchedPhrase, urg.Confidence)
		agg.add(urg.Confidence)
	case dt.HasDate:
		due := dt.Date
		res.DueDate = &due
		res.addField(FieldDueDate, due.Format(DateLayout), dt.MatchedText, dt.Confidence)
		agg.add(dt.Confidence)
	}
	if dt.HasTime {
		res.DueTime = dt.Time
		res.addField(FieldDueTime, dt.Time, dt.MatchedText, dt.Confidence)
		if res.DueDate == nil {
			agg.add(dt.Confidence)
		}
	}

	ent := entity.Extract(working, ctx.Projects, ctx.Labels)
	if ent.Priority != model.PriorityNone {
		res.Priority = ent.Priority
		res.addField(FieldPriority, string(ent.Priority), ent.PriorityMatch, ent.PriorityConfidence)
		agg.add(ent.PriorityConfidence)
	}
	if ent.Project != nil {
		res.ProjectID, res.ProjectName = ent.Project.ID, ent.Project.Name
		res.addField(FieldProject, ent.Project.Name, ent.ProjectMatch, ent.ProjectConfidence)
		agg.add(ent.ProjectConfidence)
	}
	if len(ent.Labels) > 0 {
		res.LabelIDs, res.LabelNames = ent.LabelIDs(), ent.LabelNames()
		res.addField(FieldLabels, strings.Join(res.LabelNames, ", "), strings.Join(ent.LabelMatches, " "), entity.LabelConfidence)
		agg.add(entity.LabelConfidence)
	}
	if ent.Duration > 0 {
		res.Duration = ent.Duration
		res.addField(FieldDuration, fmt.Sprintf("%d minutes", ent.Duration), ent.DurationMatch, ent.DurationConfidence)
		agg.add(ent.DurationConfidence)
	}
	if ent.Recurrence != nil {
		res.Recurrence = ent.Recurrence
		res.addField(FieldRecurrence, string(ent.Recurrence.Frequency), ent.RecurrenceMatch, ent.RecurrenceConfidence)
		agg.add(ent.RecurrenceConfidence)
	}
	if ent.Location != "" {
		res.Location = ent.Location
		res.addField(FieldLocation, ent.Location, ent.LocationMatch, ent.LocationConfidence)
		agg.add(ent.LocationConfidence)
	}

	act := action.Extract(working)
	res.ActionType = act.ActionType
	if act.HasAction {
		res.EstimatedDuration = act.EstimatedDuration
		res.EstimatedDurationConfidence = act.DurationConfidence
		res.addField(FieldAction, string(act.ActionType), act.ActionVerb, act.DurationConfidence)
	}
	if ent.Duration > 0 {
		res.EstimatedDuration = ent.Duration
		res.EstimatedDurationConfidence = ent.DurationConfidence
	}

	mp := multipart.Detect(text)
	if mp.IsMultiPart {
		res.IsMultiPart = true
		res.MultiPartConfidence = mp.Confidence
		res.SuggestedSubtasks = mp.SuggestedSplit
	}

	res.Title = Title(working, today)
	if res.Title == "" {
		res.Title = strings.TrimSpace(text)
	}

	switch {
	case agg.count > 0:
		res.Confidence = pattern.Clamp01(agg.mean())
	case res.Title != "":
		res.Confidence = titleOnlyConfidence
	}
	return res
}

// Title strips urgency phrases, dates and times, then entity markers from
// text and tidies what is left. It returns "" when nothing remains.
func Title(text string, now time.Time) string {
	t := urgency.Remove(text)
	t = datetime.Remove(t, now)
	t = entity.Remove(t)
	t = strings.Trim(t, edgePunctuation+" \t\n\r")
	t = pattern.Collapse(t)
	if stripped := trailingPreposition.ReplaceAllString(t, ""); stripped != "" {
		t = strings.TrimRight(stripped, edgePunctuation+" ")
	}
	return capitalize(t)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (p *ParsedTaskIntent) addField(field, value, matched string, confidence float64) {
	p.ParsedFields = append(p.ParsedFields, ParsedField{
		Field:       field,
		Value:       value,
		MatchedText: matched,
		Confidence:  confidence,
	})
}

type aggregate struct {
	total float64
	count int
}

func (a *aggregate) add(c float64) {
	a.total += c
	a.count++
}

func (a aggregate) mean() float64 { return a.total / float64(a.count) }
