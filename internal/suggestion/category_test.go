package suggestion

import (
	"math"
	"slices"
	"testing"

	"task-intent/internal/model"
	"task-intent/internal/nlp/pattern"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		in           string
		want         Category
		wantConf     float64
		wantPatterns []string
	}{
		{"Go to the gym", CategoryHealth, 0.92, []string{"health-exercise"}},
		{"Pay rent", CategoryFinance, 0.88, []string{"finance-bills"}},
		{"Write blog post", CategoryCreative, 0.82, []string{"creative-writing"}},
		{"email the report", CategoryWork, 0.75 + 0.8*0.2, []string{"work-communication", "work-docs"}},
		{"gym workout then doctor", CategoryHealth, 0.99, []string{"health-exercise", "health-medical"}},
		{"Yoga class", CategoryHealth, 0.92, []string{"health-exercise"}},
		{"Meditating before bed", CategoryPersonal, 0.8, []string{"personal-self"}},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := e.SuggestCategory(tt.in)
			if !ok {
				t.Fatal("expected a category")
			}
			if got.Category != tt.want {
				t.Errorf("category = %q, want %q", got.Category, tt.want)
			}
			if !near(got.Confidence, tt.wantConf) {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if !slices.Equal(got.MatchedPatterns, tt.wantPatterns) {
				t.Errorf("patterns = %q, want %q", got.MatchedPatterns, tt.wantPatterns)
			}
		})
	}
}

func TestSuggestCategoryNone(t *testing.T) {
	e := newEngine()
	for _, in := range []string{"", " ", "xyzzy"} {
		if got, ok := e.SuggestCategory(in); ok {
			t.Errorf("SuggestCategory(%q) = %+v", in, got)
		}
	}
}

func TestCategoryDisplayCoversEveryCategory(t *testing.T) {
	for _, r := range categoryRules {
		v, _ := r.Extract(pattern.Submatch{}, thursday)
		if _, ok := CategoryDisplay[v]; !ok {
			t.Errorf("no display info for %q", v)
		}
	}
}

var projects = []model.Project{
	{ID: "p1", Name: "Work"},
	{ID: "p2", Name: "Side-Project"},
	{ID: "p3", Name: "Home Renovation"},
}

func TestSuggestProjectReusesWordPatterns(t *testing.T) {
	e := newEngine()
	first, ok := e.SuggestProject("Paint walls for home renovation", projects)
	if !ok {
		t.Fatal("expected a project")
	}
	cached := e.words.Len()
	if cached == 0 {
		t.Fatal("word patterns were not cached")
	}

	again, _ := e.SuggestProject("Paint walls for home renovation", projects)
	if e.words.Len() != cached {
		t.Errorf("cache grew from %d to %d on a repeated call", cached, e.words.Len())
	}
	if again.Value.ProjectID != first.Value.ProjectID || !near(again.Confidence, first.Confidence) {
		t.Errorf("repeated call = %+v, want %+v", again.Value, first.Value)
	}
	if e.wordPattern("renovation") != e.wordPattern("renovation") {
		t.Error("matcher was recompiled")
	}
}

func TestSuggestProject(t *testing.T) {
	tests := []struct {
		in           string
		wantID       string
		wantConf     float64
		wantKeywords []string
	}{
		{"Paint walls for home renovation", "p3", 0.95, []string{"Home Renovation", "home", "renovation"}},
		{"Fix the sideproject build", "p2", 0.9, []string{"side", "project", "sideproject"}},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := e.SuggestProject(tt.in, projects)
			if !ok {
				t.Fatal("expected a project")
			}
			if got.Value.ProjectID != tt.wantID {
				t.Errorf("project = %q, want %q", got.Value.ProjectID, tt.wantID)
			}
			if !near(got.Confidence, tt.wantConf) {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if !slices.Equal(got.Value.MatchedKeywords, tt.wantKeywords) {
				t.Errorf("keywords = %q, want %q", got.Value.MatchedKeywords, tt.wantKeywords)
			}
		})
	}

	if _, ok := e.SuggestProject("buy milk", projects); ok {
		t.Error("unexpected project for unrelated text")
	}
	if _, ok := e.SuggestProject("work on slides", nil); ok {
		t.Error("unexpected project without projects")
	}
}

func TestProjectKeywords(t *testing.T) {
	got := projectKeywords("Work")
	if !slices.Equal(got, []string{"work"}) {
		t.Errorf("keywords = %q", got)
	}
	got = projectKeywords("Side_Project X")
	if !slices.Equal(got, []string{"side", "project", "sideprojectx"}) {
		t.Errorf("keywords = %q", got)
	}
}

func TestSuggestLabels(t *testing.T) {
	e := newEngine()

	got, ok := e.SuggestLabels("urgent: email the client", []string{"Urgent"})
	if !ok {
		t.Fatal("expected labels")
	}
	if want := []string{"communication", "urgent", "work"}; !slices.Equal(got.Value.Labels, want) {
		t.Errorf("labels = %q, want %q", got.Value.Labels, want)
	}
	if want := []string{"communication", "work"}; !slices.Equal(got.Value.NewLabelsDetected, want) {
		t.Errorf("new = %q, want %q", got.Value.NewLabelsDetected, want)
	}
	if !near(got.Confidence, (0.8+0.95+0.75)/3) {
		t.Errorf("confidence = %v", got.Confidence)
	}
	want := "Suggested labels: communication, urgent, work. New labels detected: communication, work"
	if got.Reasoning != want {
		t.Errorf("reasoning = %q", got.Reasoning)
	}

	got, ok = e.SuggestLabels("plan trip #travel", []string{"travel"})
	if !ok || !slices.Equal(got.Value.Labels, []string{"travel"}) || got.Confidence != hashtagConf {
		t.Errorf("got %+v", got.Value)
	}
	if len(got.Value.NewLabelsDetected) != 0 || got.Reasoning != "Suggested labels: travel" {
		t.Errorf("got %+v %q", got.Value, got.Reasoning)
	}

	if _, ok := e.SuggestLabels("xyzzy", nil); ok {
		t.Error("unexpected labels")
	}
}

func TestSuggestGrouping(t *testing.T) {
	g := newEngine().SuggestGrouping("Call mom", "about her birthday", nil, nil)
	if g.Category == nil || g.Category.Category != CategoryPersonal {
		t.Errorf("category = %+v", g.Category)
	}
	if g.Project != nil {
		t.Errorf("project = %+v", g.Project)
	}
	if g.Labels == nil || !slices.Equal(g.Labels.Value.Labels, []string{"call", "communication", "personal"}) {
		t.Errorf("labels = %+v", g.Labels)
	}

	g = newEngine().SuggestGrouping("", "", projects, nil)
	if g.Category != nil || g.Project != nil || g.Labels != nil {
		t.Errorf("blank task grouped: %+v", g)
	}
}
