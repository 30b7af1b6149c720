package normalizer

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"task-intent/internal/nlp/pattern"
)

// Replacement records one abbreviation expansion.
// Start/End locate Original in the whitespace-normalized text that expansion
// ran on; ExpandedStart/ExpandedEnd locate Expansion in the expanded text.
// Offsets are byte offsets.
type Replacement struct {
	Original      string `json:"original"`
	Expansion     string `json:"expansion"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	ExpandedStart int    `json:"expanded_start"`
	ExpandedEnd   int    `json:"expanded_end"`
}

// Result is the output of Normalize.
type Result struct {
	NormalizedText string        `json:"normalized_text"`
	OriginalText   string        `json:"original_text"`
	Replacements   []Replacement `json:"replacements"`
}

// Abbreviation is an entry of the expansion table.
type Abbreviation struct {
	Abbrev    string `json:"abbrev"`
	Expansion string `json:"expansion"`
}

var abbreviations = []Abbreviation{
	// time
	{"tmrw", "tomorrow"},
	{"tmr", "tomorrow"},
	{"tomo", "tomorrow"},
	{"tdy", "today"},
	{"tnght", "tonight"},
	{"eod", "end of day"},
	{"eow", "end of week"},
	{"eom", "end of month"},

	// meetings
	{"mtg", "meeting"},
	{"mtgs", "meetings"},
	{"appt", "appointment"},
	{"appts", "appointments"},
	{"conf", "conference"},

	// actions
	{"fup", "follow up"},
	{"cb", "call back"},
	{"c/b", "call back"},

	// common words
	{"w/", "with"},
	{"w/o", "without"},
	{"abt", "about"},
	{"pls", "please"},
	{"plz", "please"},
	{"thx", "thanks"},
	{"tx", "thanks"},
	{"msg", "message"},
	{"msgs", "messages"},
	{"info", "information"},
	{"docs", "documents"},
	{"doc", "document"},

	// people
	{"mgr", "manager"},
	{"hr", "HR"},
	{"ceo", "CEO"},
	{"cto", "CTO"},
	{"cfo", "CFO"},

	// status
	{"wip", "work in progress"},
	{"asap", "as soon as possible"},
	{"fyi", "for your information"},

	// weekdays
	{"mon", "monday"},
	{"tue", "tuesday"},
	{"tues", "tuesday"},
	{"wed", "wednesday"},
	{"thu", "thursday"},
	{"thur", "thursday"},
	{"thurs", "thursday"},
	{"fri", "friday"},
	{"sat", "saturday"},
	{"sun", "sunday"},
}

var punctuation = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
)

var connectors = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`(?i)\bre\s*:\s*`), "regarding "},
	{regexp.MustCompile(`(?i)\babout\s*:\s*`), "about "},
	{regexp.MustCompile(`(?i)\bregarding\s*:\s*`), "regarding "},
}

type abbrevRule struct {
	Abbreviation
	pattern *regexp.Regexp
	// slashed entries are delimited by whitespace instead of word boundaries
	slashed bool
}

var abbrevRules = compileAbbreviations(abbreviations)

func compileAbbreviations(table []Abbreviation) []abbrevRule {
	rules := make([]abbrevRule, 0, len(table))
	for _, a := range table {
		quoted := regexp.QuoteMeta(a.Abbrev)
		r := abbrevRule{Abbreviation: a, slashed: strings.Contains(a.Abbrev, "/")}
		if r.slashed {
			r.pattern = regexp.MustCompile(`(?i)(?:^|\s)(` + quoted + `)`)
		} else {
			r.pattern = regexp.MustCompile(`(?i)\b` + quoted + `\b`)
		}
		rules = append(rules, r)
	}
	return rules
}

// Normalize maps smart punctuation to ASCII, collapses whitespace, expands
// abbreviations and rewrites connector punctuation ("re:" becomes "regarding ").
func Normalize(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{OriginalText: text}
	}

	working := pattern.Collapse(punctuation.Replace(text))
	expanded, replacements := expand(working)

	for _, c := range connectors {
		expanded = c.pattern.ReplaceAllString(expanded, c.replace)
	}

	return Result{
		NormalizedText: pattern.Collapse(expanded),
		OriginalText:   text,
		Replacements:   replacements,
	}
}

type hit struct {
	start, end int
	order      int
}

// expand performs a single left-to-right pass: every table entry is matched
// against the same input, overlaps are resolved by earliest start then table
// order, and output offsets are tracked with an explicit running delta.
func expand(text string) (string, []Replacement) {
	var hits []hit
	for i, r := range abbrevRules {
		for _, idx := range r.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[0], idx[1]
			if r.slashed {
				start, end = idx[2], idx[3]
				if next, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && !unicode.IsSpace(next) {
					continue
				}
			}
			hits = append(hits, hit{start: start, end: end, order: i})
		}
	}
	if len(hits) == 0 {
		return text, nil
	}

	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	var (
		b            strings.Builder
		replacements []Replacement
		pos          int
		delta        int
	)
	for _, h := range hits {
		if h.start < pos {
			continue
		}
		original := text[h.start:h.end]
		expansion := matchCase(original, abbrevRules[h.order].Expansion)

		b.WriteString(text[pos:h.start])
		b.WriteString(expansion)

		replacements = append(replacements, Replacement{
			Original:      original,
			Expansion:     expansion,
			Start:         h.start,
			End:           h.end,
			ExpandedStart: h.start + delta,
			ExpandedEnd:   h.start + delta + len(expansion),
		})
		delta += len(expansion) - len(original)
		pos = h.end
	}
	b.WriteString(text[pos:])
	return b.String(), replacements
}

// matchCase capitalizes expansion when original starts with an uppercase letter.
func matchCase(original, expansion string) string {
	first, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(first) {
		return expansion
	}
	r, size := utf8.DecodeRuneInString(expansion)
	return string(unicode.ToUpper(r)) + expansion[size:]
}

// Hints returns the abbreviation table in display order.
func Hints() []Abbreviation {
	return slices.Clone(abbreviations)
}
