package pattern

import (
	"regexp"
	"strconv"
	"testing"
	"time"
)

func number(conf float64, expr string) Rule[int] {
	return Rule[int]{
		ID:         expr,
		Pattern:    regexp.MustCompile(expr),
		Confidence: conf,
		Extract: func(s Submatch, _ time.Time) (int, bool) {
			n, err := strconv.Atoi(s.Group(1))
			return n, err == nil && n < 100
		},
	}
}

func TestMatchesSkipsRejectedHits(t *testing.T) {
	table := Table[int]{number(0.5, `n(\d+)`)}
	got := table.Matches("n500 n7 n8", time.Time{})
	if len(got) != 1 || got[0].Value != 7 || got[0].Text != "n7" {
		t.Fatalf("got %+v", got)
	}
	if all := table.All("n500 n7 n8", time.Time{}); len(all) != 2 {
		t.Errorf("All = %+v", all)
	}
}

func TestSkipTags(t *testing.T) {
	table := Table[int]{number(0.5, `n(\d+)`), {ID: "bare", Pattern: regexp.MustCompile(`\bflag\b`)}}.SkipTags()
	got := table.All("#n1 @n2 n3 @flag flag", time.Time{})
	if len(got) != 2 || got[0].Value != 3 || got[1].Text != "flag" || got[1].Start != 17 {
		t.Fatalf("got %+v", got)
	}
	if got := table.All("n200", time.Time{}); len(got) != 0 {
		t.Errorf("wrapped extract must still reject: %+v", got)
	}
}

func TestBestOrdering(t *testing.T) {
	table := Table[int]{
		number(0.5, `a(\d)`),
		number(0.9, `b(\d)`),
		number(0.9, `c(\d)`),
	}
	best, ok := table.Best("a1 c3 b2", time.Time{}, nil)
	if !ok || best.Value != 3 {
		t.Errorf("equal confidence should prefer the earliest start, got %+v", best)
	}

	byValue := func(a, b Match[int]) int { return b.Value - a.Value }
	best, _ = table.Best("a1 b2 c3", time.Time{}, byValue)
	if best.Value != 3 {
		t.Errorf("tie func should win over position, got %+v", best)
	}
}

func TestFirstUsesTableOrder(t *testing.T) {
	table := Table[int]{number(0.1, `x(\d)`), number(0.9, `y(\d)`)}
	m, ok := table.First("y1 x2", time.Time{})
	if !ok || m.Value != 2 || m.Order != 0 {
		t.Errorf("got %+v", m)
	}
	if _, ok := table.First("nothing", time.Time{}); ok {
		t.Error("expected no match")
	}
}

func TestSpanGroup(t *testing.T) {
	table := Table[int]{{ID: "g", Pattern: regexp.MustCompile(`(?:^|\s)(#\d)`), Span: 1}}
	spans := table.Spans("a #1", time.Time{})
	if len(spans) != 1 || spans[0] != (Span{Start: 2, End: 4}) {
		t.Errorf("spans = %+v", spans)
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		spans []Span
		want  string
	}{
		{"none", "abc", nil, "abc"},
		{"single", "hello world", []Span{{5, 11}}, "hello"},
		{"overlapping", "abcdefgh", []Span{{1, 4}, {2, 6}}, "agh"},
		{"unsorted", "abcdef", []Span{{4, 5}, {0, 1}}, "bcdf"},
		{"contained", "abcdef", []Span{{1, 5}, {2, 3}}, "af"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cut(tt.in, tt.spans); got != tt.want {
				t.Errorf("Cut = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveReachesFixpoint(t *testing.T) {
	table := Table[int]{{ID: "ab", Pattern: regexp.MustCompile(`\bab\b`)}}
	once := table.Remove("x ab ab y", time.Time{})
	if once != "x y" {
		t.Errorf("Remove = %q", once)
	}
	if twice := table.Remove(once, time.Time{}); twice != once {
		t.Errorf("not idempotent: %q", twice)
	}
}

func TestCollapseAndClamp(t *testing.T) {
	if got := Collapse("  a \t b\n c  "); got != "a b c" {
		t.Errorf("Collapse = %q", got)
	}
	if Clamp01(-0.2) != 0 || Clamp01(1.4) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of range")
	}
}
