package suggestion

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// TaskSnapshot is the part of an existing task the grouping helpers look at.
type TaskSnapshot struct {
	ID          string   `json:"id" yaml:"id"`
	Content     string   `json:"content" yaml:"content"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	ProjectID   string   `json:"project_id,omitempty" yaml:"project_id,omitempty"`
}

// CategoryGroup is one bucket of GroupByCategory.
type CategoryGroup struct {
	Category Category       `json:"category"`
	Tasks    []TaskSnapshot `json:"tasks"`
}

// Similar is a task scored against a target.
type Similar struct {
	Task       TaskSnapshot `json:"task"`
	Similarity float64      `json:"similarity"`
}

// DefaultSimilarLimit is used by FindSimilar when limit is not positive.
const DefaultSimilarLimit = 5

const (
	wordWeight    = 0.5
	labelWeight   = 0.3
	projectBonus  = 0.2
	similarEnough = 0.1
	minWordLength = 3
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// GroupByCategory buckets tasks by inferred category, in order of first
// appearance. Weakly categorized tasks land in "uncategorized".
func (e *Engine) GroupByCategory(tasks []TaskSnapshot) []CategoryGroup {
	var groups []CategoryGroup
	index := map[Category]int{}
	for _, t := range tasks {
		cat := CategoryUncategorized
		if c, ok := e.SuggestCategory(joinText(t.Content, t.Description)); ok && c.Confidence >= categoryGroupMin {
			cat = c.Category
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// words returns the distinct lowercase words of at least three characters.
func words(text string) []string {
	var out []string
	for _, w := range strings.Fields(nonWord.ReplaceAllString(strings.ToLower(text), " ")) {
		if len(w) >= minWordLength && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// overlap returns |a ∩ b| and |a ∪ b| for deduplicated a and b.
func overlap(a, b []string) (inter, union int) {
	for _, x := range a {
		if slices.Contains(b, x) {
			inter++
		}
	}
	return inter, len(a) + len(b) - inter
}

// FindSimilar ranks candidates by word overlap, shared labels and a shared
// project, returning at most limit tasks scoring above 0.1. Candidates with
// the target's exact content are skipped.
func (e *Engine) FindSimilar(target TaskSnapshot, candidates []TaskSnapshot, limit int) []Similar {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	targetWords := words(target.Content)
	targetLabels := dedupe(target.Labels)

	var out []Similar
	for _, t := range candidates {
		if t.Content == target.Content {
			continue
		}
		score := 0.0

		if inter, union := overlap(targetWords, words(t.Content)); union > 0 {
			score += float64(inter) / float64(union) * wordWeight
		}
		labels := dedupe(t.Labels)
		if n := max(len(targetLabels), len(labels)); n > 0 {
			inter, _ := overlap(targetLabels, labels)
			score += float64(inter) / float64(n) * labelWeight
		}
		if target.ProjectID != "" && t.ProjectID == target.ProjectID {
			score += projectBonus
		}

		if score > similarEnough {
			out = append(out, Similar{Task: t, Similarity: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Similar) int { return cmp.Compare(b.Similarity, a.Similarity) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func dedupe(in []string) []string {
	var out []string
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
