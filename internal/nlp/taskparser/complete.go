package taskparser

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxCompletions caps the candidates returned per sigil.
const MaxCompletions = 5

var (
	trailingHashtag = regexp.MustCompile(`#(\w*)$`)
	trailingMention = regexp.MustCompile(`@(\w*)$`)
)

// Suggestions completes a trailing "#project" or "@label" token being typed
// at the end of partial. It returns nil when the last token carries no sigil
// or nothing matches.
func Suggestions(partial string, ctx Context) []Completion {
	var out []Completion

	if m := trailingHashtag.FindStringSubmatch(partial); m != nil {
		query := strings.ToLower(m[1])
		for _, p := range ctx.Projects {
			if len(out) == MaxCompletions {
				break
			}
			if strings.HasPrefix(strings.ToLower(p.Name), query) {
				out = append(out, Completion{Type: CompletionProject, Value: "#" + p.Name, Display: "📁 " + p.Name})
			}
		}
	}

	if m := trailingMention.FindStringSubmatch(partial); m != nil {
		query := strings.ToLower(m[1])
		n := 0
		for _, l := range ctx.Labels {
			if n == MaxCompletions {
				break
			}
			if strings.HasPrefix(strings.ToLower(l.Name), query) {
				out = append(out, Completion{Type: CompletionLabel, Value: "@" + l.Name, Display: "🏷️ " + l.Name})
				n++
			}
		}
	}

	return out
}

// Format renders an intent on one line, e.g.
// "Call mom #Personal @family Tue, Jan 13 at 15:00 p2".
func Format(p ParsedTaskIntent) string {
	parts := []string{p.Title}
	if p.ProjectName != "" {
		parts = append(parts, "#"+p.ProjectName)
	}
	for _, l := range p.LabelNames {
		parts = append(parts, "@"+l)
	}
	if p.DueDate != nil {
		parts = append(parts, p.DueDate.Format("Mon, Jan 2"))
	}
	if p.DueTime != "" {
		parts = append(parts, "at "+p.DueTime)
	}
	if p.Priority != "" {
		parts = append(parts, string(p.Priority))
	}
	if p.Recurrence != nil {
		parts = append(parts, string(p.Recurrence.Frequency))
	}
	if p.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%dm", p.Duration))
	}
	return strings.Join(parts, " ")
}
