// Package multipart detects inputs that describe more than one task and
// proposes how to split them.
package multipart

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitPoint is a separator occurrence at byte range [Index, End).
type SplitPoint struct {
	Index     int    `json:"index"`
	End       int    `json:"end"`
	Separator string `json:"separator"`
}

// Result is the outcome of Detect.
type Result struct {
	IsMultiPart    bool
	Confidence     float64
	SuggestedSplit []string
	SplitPoints    []SplitPoint
}

type separator struct {
	name    string
	pattern *regexp.Regexp
}

// Separators are scanned in this order; a later separator overlapping an
// earlier recorded one is ignored.
var separators = []separator{
	{"and", regexp.MustCompile(`(?i)\band\s+(?:also\s+)?(?:then\s+)?`)},
	{"then", regexp.MustCompile(`(?i)\bthen\s+`)},
	{"also", regexp.MustCompile(`(?i)\b(?:,\s*)?also\s+`)},
	{"plus", regexp.MustCompile(`(?i)\bplus\s+`)},
	{"as well as", regexp.MustCompile(`(?i)\bas well as\s+`)},
	{";", regexp.MustCompile(`;\s*`)},
	{"-", regexp.MustCompile(`\s+-\s+`)},
}

var actionVerbs = regexp.MustCompile(`(?i)\b(call|email|message|text|meet|review|write|draft|research|schedule|follow up|check|set up|buy|pay|book|create|update|fix|send|read|prepare|complete|finish|submit|upload|download|print|organize|clean|file|cancel|renew|register|apply|confirm|verify|notify|remind)\b`)

// minPart is the shortest trimmed text accepted on either side of a split
// point and as a suggested segment.
const minPart = 4

// segmentEdges is trimmed from both ends of every segment.
const segmentEdges = " \t\n\r,;:"

// Detect finds split points and, when any exist, marks the input multi-part.
// Two or more distinct action verbs raise the confidence.
func Detect(text string) Result {
	res := Result{}
	if strings.TrimSpace(text) == "" {
		return res
	}

	res.SplitPoints = splitPoints(text)
	if len(res.SplitPoints) == 0 {
		return res
	}

	points := float64(len(res.SplitPoints))
	res.IsMultiPart = true
	if verbs := CountActionVerbs(text); verbs >= 2 {
		res.Confidence = min(0.9, 0.5+0.1*float64(verbs)+0.15*points)
	} else {
		res.Confidence = 0.4 + 0.1*points
	}
	res.SuggestedSplit = split(text, res.SplitPoints)
	return res
}

// CountActionVerbs returns the number of distinct action verbs in text.
func CountActionVerbs(text string) int {
	seen := make(map[string]struct{})
	for _, m := range actionVerbs.FindAllString(text, -1) {
		seen[strings.ToLower(m)] = struct{}{}
	}
	return len(seen)
}

func splitPoints(text string) []SplitPoint {
	var out []SplitPoint
	for _, sep := range separators {
		for _, loc := range sep.pattern.FindAllStringIndex(text, -1) {
			before := strings.TrimSpace(text[:loc[0]])
			after := strings.TrimSpace(text[loc[1]:])
			if len(before) < minPart || len(after) < minPart {
				continue
			}
			if overlapsAny(out, loc[0], loc[1]) {
				continue
			}
			out = append(out, SplitPoint{Index: loc[0], End: loc[1], Separator: sep.name})
		}
	}
	slices.SortFunc(out, func(a, b SplitPoint) int { return cmp.Compare(a.Index, b.Index) })
	return out
}

func overlapsAny(points []SplitPoint, start, end int) bool {
	for _, p := range points {
		if start < p.End && p.Index < end {
			return true
		}
	}
	return false
}

// split cuts text at sorted, non-overlapping points.
func split(text string, points []SplitPoint) []string {
	var parts []string
	last := 0
	for _, p := range points {
		parts = append(parts, text[last:p.Index])
		last = p.End
	}
	parts = append(parts, text[last:])
	return clean(parts)
}

func clean(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(part, segmentEdges)
		if len(part) < minPart {
			continue
		}
		out = append(out, capitalize(part))
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// WouldSplitCleanly splits text on every occurrence of the named separator
// and reports whether at least two usable parts remain.
func WouldSplitCleanly(text, name string) (bool, []string) {
	i := slices.IndexFunc(separators, func(s separator) bool { return s.name == name })
	if i < 0 {
		return false, nil
	}
	raw := separators[i].pattern.Split(text, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.Trim(p, segmentEdges); len(p) >= minPart {
			parts = append(parts, p)
		}
	}
	return len(parts) > 1, parts
}
