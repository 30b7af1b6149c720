// Package action classifies a task by its leading verb and estimates how long it takes.
package action

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"task-intent/internal/nlp/pattern"
)

// Type is a task action category.
type Type string

const (
	TypeCall     Type = "call"
	TypeEmail    Type = "email"
	TypeMessage  Type = "message"
	TypeMeeting  Type = "meeting"
	TypeFollowUp Type = "follow_up"
	TypeReview   Type = "review"
	TypeWrite    Type = "write"
	TypeResearch Type = "research"
	TypeSchedule Type = "schedule"
	TypeCheck    Type = "check"
	TypeSetup    Type = "setup"
	TypeBuy      Type = "buy"
	TypePay      Type = "pay"
	TypeBook     Type = "book"
	TypeCreate   Type = "create"
	TypeUpdate   Type = "update"
	TypeFix      Type = "fix"
	TypeSend     Type = "send"
	TypeRead     Type = "read"
	TypePrepare  Type = "prepare"
	TypeComplete Type = "complete"
	TypeOther    Type = "other"
)

// Result is the outcome of Extract.
type Result struct {
	HasAction          bool
	ActionType         Type
	ActionVerb         string
	Target             string
	EstimatedDuration  int // minutes, 0 when no action
	DurationConfidence float64
	Span               pattern.Span
}

// Hint describes one action type for display.
type Hint struct {
	Type     Type     `json:"type" yaml:"type"`
	Verbs    []string `json:"verbs" yaml:"verbs"`
	Duration int      `json:"duration" yaml:"duration"`
}

type kind struct {
	typ        Type
	verbs      []string // anchored at the start of the text
	targeted   []string // verb followed by a target
	prefix     string   // optional filler between verb and target
	duration   int
	confidence float64
}

var kinds = []kind{
	{typ: TypeCall, verbs: []string{"call", "phone", "ring", "dial"}, targeted: []string{"call", "phone", "ring"}, prefix: `back\s+`, duration: 15, confidence: 0.6},
	{typ: TypeEmail, verbs: []string{"email", "e-mail", "mail"}, targeted: []string{"email", "e-mail", "mail"}, duration: 15, confidence: 0.5},
	{typ: TypeMessage, verbs: []string{"message", "text", "dm", "slack", "ping"}, targeted: []string{"text", "message", "dm", "slack", "ping"}, duration: 5, confidence: 0.6},
	{typ: TypeMeeting, verbs: []string{"meet", "meeting", "sync", "standup", "stand-up", "huddle", "1:1", "one-on-one"}, targeted: []string{"meet", "meeting", "sync"}, prefix: `with\s+`, duration: 30, confidence: 0.5},
	{typ: TypeFollowUp, verbs: []string{"follow up", "follow-up", "followup", "check-in", "check in"}, targeted: []string{"follow-up", "follow up", "followup", "check-in"}, prefix: `(?:with|on)\s+`, duration: 15, confidence: 0.5},
	{typ: TypeReview, verbs: []string{"review", "check", "look at", "examine", "audit", "inspect"}, targeted: []string{"review"}, duration: 30, confidence: 0.4},
	{typ: TypeWrite, verbs: []string{"write", "draft", "compose", "author"}, targeted: []string{"write", "draft"}, duration: 60, confidence: 0.4},
	{typ: TypeResearch, verbs: []string{"research", "investigate", "look into", "explore", "analyze"}, targeted: []string{"research", "investigate"}, duration: 45, confidence: 0.3},
	{typ: TypeSchedule, verbs: []string{"schedule", "plan", "arrange", "set up", "book"}, targeted: []string{"schedule", "plan", "arrange"}, duration: 15, confidence: 0.5},
	{typ: TypeCheck, verbs: []string{"check on", "verify", "confirm", "validate"}, targeted: []string{"verify", "confirm"}, duration: 10, confidence: 0.5},
	{typ: TypeSetup, verbs: []string{"set up", "setup", "configure", "install", "deploy"}, targeted: []string{"set up", "setup"}, duration: 30, confidence: 0.4},
	{typ: TypeBuy, verbs: []string{"buy", "purchase", "order", "get", "pick up"}, targeted: []string{"buy", "purchase", "order"}, duration: 15, confidence: 0.4},
	{typ: TypePay, verbs: []string{"pay", "settle", "transfer", "reimburse"}, targeted: []string{"pay"}, duration: 10, confidence: 0.6},
	{typ: TypeBook, verbs: []string{"book", "reserve", "make a reservation", "make reservation"}, targeted: []string{"book", "reserve"}, duration: 15, confidence: 0.5},
	{typ: TypeCreate, verbs: []string{"create", "make", "build", "develop"}, targeted: []string{"create", "make", "build"}, duration: 45, confidence: 0.3},
	{typ: TypeUpdate, verbs: []string{"update", "edit", "modify", "change", "revise"}, targeted: []string{"update", "edit"}, duration: 20, confidence: 0.4},
	{typ: TypeFix, verbs: []string{"fix", "repair", "debug", "resolve", "troubleshoot"}, targeted: []string{"fix", "repair", "debug"}, duration: 30, confidence: 0.3},
	{typ: TypeSend, verbs: []string{"send", "share", "forward", "distribute"}, targeted: []string{"send", "share", "forward"}, duration: 10, confidence: 0.5},
	{typ: TypeRead, verbs: []string{"read", "study", "go through", "look over"}, targeted: []string{"read", "study"}, duration: 30, confidence: 0.4},
	{typ: TypePrepare, verbs: []string{"prepare", "prep", "get ready", "organize"}, targeted: []string{"prepare", "prep"}, prefix: `for\s+`, duration: 30, confidence: 0.4},
	{typ: TypeComplete, verbs: []string{"complete", "finish", "finalize", "wrap up"}, targeted: []string{"complete", "finish"}, duration: 30, confidence: 0.3},
}

// rules holds two rules per kind, anchored then targeted, in kind order.
var rules = buildRules()

func alternation(ws []string) string {
	quoted := make([]string, len(ws))
	for i, w := range ws {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func buildRules() pattern.Table[Type] {
	table := make(pattern.Table[Type], 0, 2*len(kinds))
	for _, k := range kinds {
		typ := k.typ
		extract := func(pattern.Submatch, time.Time) (Type, bool) { return typ, true }

		prefix := ""
		if k.prefix != "" {
			prefix = `(?:` + k.prefix + `)?`
		}
		table = append(table,
			pattern.Rule[Type]{
				ID:         string(typ) + "-leading",
				Pattern:    regexp.MustCompile(`(?i)^(` + alternation(k.verbs) + `)\b`),
				Confidence: k.confidence,
				Extract:    extract,
			},
			pattern.Rule[Type]{
				ID:         string(typ) + "-target",
				Pattern:    regexp.MustCompile(`(?i)\b(` + alternation(k.targeted) + `)\s+` + prefix + `(\w+(?:\s+\w+)?)`),
				Confidence: k.confidence,
				Extract:    extract,
			},
		)
	}
	return table
}

// Extract returns the first action in table order. Kinds are checked in
// order and, within a kind, the leading-verb form before the targeted form.
func Extract(text string) Result {
	res := Result{ActionType: TypeOther}
	if strings.TrimSpace(text) == "" {
		return res
	}

	for _, r := range rules {
		idx := r.Pattern.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		s := pattern.Submatch{Text: text, Index: idx}
		typ, _ := r.Extract(s, time.Time{})
		minutes, conf := DurationFor(typ)

		res.HasAction = true
		res.ActionType = typ
		res.ActionVerb = s.Group(1)
		res.Target = strings.TrimSpace(s.Group(2))
		res.EstimatedDuration = minutes
		res.DurationConfidence = conf
		res.Span = pattern.Span{Start: idx[0], End: idx[1]}
		return res
	}
	return res
}

// DurationFor returns the default duration in minutes for an action type and
// the confidence of that estimate. Unknown types get 30 minutes at 0.2.
func DurationFor(typ Type) (int, float64) {
	for _, k := range kinds {
		if k.typ == typ {
			return k.duration, k.confidence
		}
	}
	return 30, 0.2
}

// Hints lists every action type with its verbs and default duration.
func Hints() []Hint {
	out := make([]Hint, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Hint{Type: k.typ, Verbs: slices.Clone(k.verbs), Duration: k.duration})
	}
	return out
}
