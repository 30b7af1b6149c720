package suggestion

import (
	"slices"
	"testing"
)

func TestGroupByCategory(t *testing.T) {
	tasks := []TaskSnapshot{
		{ID: "1", Content: "Go to the gym"},
		{ID: "2", Content: "Pay rent"},
		{ID: "3", Content: "xyzzy"},
		{ID: "4", Content: "Yoga", Description: "morning class"},
		{ID: "5", Content: "Plan holiday"},
	}

	groups := newEngine().GroupByCategory(tasks)

	type group struct {
		cat Category
		ids []string
	}
	var got []group
	for _, g := range groups {
		var ids []string
		for _, task := range g.Tasks {
			ids = append(ids, task.ID)
		}
		got = append(got, group{g.Category, ids})
	}
	want := []group{
		{CategoryHealth, []string{"1", "4"}},
		{CategoryFinance, []string{"2"}},
		{CategoryUncategorized, []string{"3"}},
		{CategoryAdmin, []string{"5"}},
	}
	if len(got) != len(want) {
		t.Fatalf("groups = %+v", got)
	}
	for i := range want {
		if got[i].cat != want[i].cat || !slices.Equal(got[i].ids, want[i].ids) {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindSimilar(t *testing.T) {
	target := TaskSnapshot{Content: "Write quarterly report", Labels: []string{"work"}, ProjectID: "p1"}
	candidates := []TaskSnapshot{
		{ID: "milk", Content: "Buy milk"},
		{ID: "offsite", Content: "Plan offsite", ProjectID: "p1"},
		{ID: "self", Content: "Write quarterly report"},
		{ID: "review", Content: "Review quarterly report!", Labels: []string{"work", "work"}, ProjectID: "p1"},
	}

	e := newEngine()
	got := e.FindSimilar(target, candidates, 0)
	if len(got) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got[0].Task.ID != "review" || !near(got[0].Similarity, 2.0/4*0.5+0.3+0.2) {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Task.ID != "offsite" || !near(got[1].Similarity, 0.2) {
		t.Errorf("second = %+v", got[1])
	}

	if got := e.FindSimilar(target, candidates, 1); len(got) != 1 || got[0].Task.ID != "review" {
		t.Errorf("limit 1 = %+v", got)
	}
}

func TestWords(t *testing.T) {
	got := words("Fix the fix-it list, ok?")
	if want := []string{"fix", "the", "list"}; !slices.Equal(got, want) {
		t.Errorf("words = %q, want %q", got, want)
	}
}
