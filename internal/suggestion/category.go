package suggestion

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/entity"
	"task-intent/internal/nlp/pattern"
)

// Category is a coarse life area a task belongs to.
type Category string

const (
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategoryHealth        Category = "health"
	CategoryFinance       Category = "finance"
	CategoryHome          Category = "home"
	CategoryLearning      Category = "learning"
	CategorySocial        Category = "social"
	CategoryErrands       Category = "errands"
	CategoryCreative      Category = "creative"
	CategoryAdmin         Category = "admin"
	CategoryUncategorized Category = "uncategorized"
)

// CategoryInfo is how a category is presented.
type CategoryInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryDisplay maps every category to its presentation.
var CategoryDisplay = map[Category]CategoryInfo{
	CategoryWork:     {Label: "Work", Icon: "Briefcase", Color: "blue"},
	CategoryPersonal: {Label: "Personal", Icon: "User", Color: "purple"},
	CategoryHealth:   {Label: "Health", Icon: "Heart", Color: "red"},
	CategoryFinance:  {Label: "Finance", Icon: "DollarSign", Color: "green"},
	CategoryHome:     {Label: "Home", Icon: "Home", Color: "orange"},
	CategoryLearning: {Label: "Learning", Icon: "GraduationCap", Color: "indigo"},
	CategorySocial:   {Label: "Social", Icon: "Users", Color: "pink"},
	CategoryErrands:  {Label: "Errands", Icon: "ShoppingCart", Color: "yellow"},
	CategoryCreative: {Label: "Creative", Icon: "Palette", Color: "cyan"},
	CategoryAdmin:    {Label: "Admin", Icon: "FileText", Color: "gray"},
}

// CategorySuggestion is the inferred category with the rules that voted for it.
type CategorySuggestion struct {
	Category        Category `json:"category"`
	Confidence      float64  `json:"confidence"`
	MatchedPatterns []string `json:"matched_patterns"`
}

// ProjectMatch is the value of a project suggestion.
type ProjectMatch struct {
	ProjectID       string   `json:"project_id"`
	ProjectName     string   `json:"project_name"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// ProjectSuggestion proposes one of the caller's projects.
type ProjectSuggestion struct {
	Suggestion
	Value ProjectMatch `json:"value"`
}

// LabelSet is the value of a labels suggestion.
type LabelSet struct {
	Labels            []string `json:"labels"`
	NewLabelsDetected []string `json:"new_labels_detected"`
}

// LabelsSuggestion proposes labels, flagging the ones the caller lacks.
type LabelsSuggestion struct {
	Suggestion
	Value LabelSet `json:"value"`
}

// Grouping bundles the category, project and labels suggestions of one task.
// A nil member means that engine had nothing to say.
type Grouping struct {
	Category *CategorySuggestion `json:"category"`
	Project  *ProjectSuggestion  `json:"project"`
	Labels   *LabelsSuggestion   `json:"labels"`
	// MatchedLabels are caller labels the text implies, resolved to IDs.
	MatchedLabels []entity.LabelMatch `json:"matched_labels,omitempty"`
}

const (
	categoryScoreCap     = 0.99
	categoryCombineRatio = 0.2
	// a category must reach this score to become a label or a group
	categoryLabelMin = 0.75
	categoryGroupMin = 0.7
	hashtagConf      = 0.95
	projectConfCap   = 0.95
)

func keyed[V any](id, expr string, conf float64, v V) pattern.Rule[V] {
	return pattern.Rule[V]{
		ID:         id,
		Pattern:    regexp.MustCompile(expr),
		Confidence: conf,
		Extract:    func(pattern.Submatch, time.Time) (V, bool) { return v, true },
	}
}

var categoryRules = pattern.Table[Category]{
	keyed("work-meetings", `(?i)\b(meeting|standup|sync|call|presentation|demo|review|1:1|one-on-one)\b`, 0.85, CategoryWork),
	keyed("work-dev", `(?i)\b(deploy|pr|pull\s+request|merge|code|fix\s+bug|debug|test|refactor|api|backend|frontend|database)\b`, 0.9, CategoryWork),
	keyed("work-communication", `(?i)\b(email|slack|respond|reply|follow\s+up|send|client|stakeholder|team)\b`, 0.75, CategoryWork),
	keyed("work-docs", `(?i)\b(document|documentation|wiki|readme|spec|proposal|report|analysis)\b`, 0.8, CategoryWork),

	keyed("personal-family", `(?i)\b(family|mom|dad|parents|kids|children|spouse|partner|wife|husband|birthday)\b`, 0.9, CategoryPersonal),
	keyed("personal-self", `(?i)\b(journal|meditat\w*|mindful\w*|relax|hobby|read|book|movie|game|play)\b`, 0.8, CategoryPersonal),

	keyed("health-exercise", `(?i)\b(workout|exercise|gym|run|jog|yoga|stretch|swim|bike|walk|hike|fitness|training)\b`, 0.92, CategoryHealth),
	keyed("health-medical", `(?i)\b(doctor|appointment|dentist|checkup|check-up|prescription|medicine|vitamins|therapy|therapist)\b`, 0.95, CategoryHealth),
	keyed("health-nutrition", `(?i)\b(meal\s+prep|diet|nutrition|calories|healthy|cook|recipe)\b`, 0.8, CategoryHealth),

	keyed("finance-bills", `(?i)\b(pay|bill|invoice|rent|mortgage|insurance|subscription|utilities)\b`, 0.88, CategoryFinance),
	keyed("finance-money", `(?i)\b(budget|expense|invest|savings|bank|transfer|tax|taxes|accountant)\b`, 0.9, CategoryFinance),

	keyed("home-chores", `(?i)\b(clean|vacuum|laundry|dishes|trash|garbage|organize|declutter|tidy|dust|mop)\b`, 0.9, CategoryHome),
	keyed("home-maintenance", `(?i)\b(repair|fix|install|paint|plumber|electrician|handyman|mow|garden|yard|maintenance)\b`, 0.88, CategoryHome),

	keyed("learning-study", `(?i)\b(study|learn|course|class|lesson|tutorial|practice|homework|assignment|exam|quiz)\b`, 0.92, CategoryLearning),
	keyed("learning-skills", `(?i)\b(skill|certification|certificate|training|workshop|webinar|conference)\b`, 0.85, CategoryLearning),

	keyed("social-events", `(?i)\b(party|dinner|lunch|coffee|drinks|hangout|visit|catch\s+up|meetup|event)\b`, 0.82, CategorySocial),
	keyed("social-communication", `(?i)\b(call\s+(?:mom|dad|friend)|text|message|wish|congratulat\w*|thank)\b`, 0.8, CategorySocial),

	keyed("errands-shopping", `(?i)\b(buy|shop|grocery|store|mall|order|pickup|pick\s+up|return|exchange)\b`, 0.85, CategoryErrands),
	keyed("errands-services", `(?i)\b(drop\s+off|mail|post\s+office|bank|pharmacy|dry\s+clean|haircut|salon)\b`, 0.88, CategoryErrands),

	keyed("creative-art", `(?i)\b(draw|paint|sketch|design|illustrat\w*|photo|video|edit|create|art)\b`, 0.85, CategoryCreative),
	keyed("creative-writing", `(?i)\b(write|blog|article|story|novel|content|script|lyrics|poem)\b`, 0.82, CategoryCreative),
	keyed("creative-music", `(?i)\b(music|song|compose|record|practice\s+(?:piano|guitar|drums)|instrument)\b`, 0.85, CategoryCreative),

	keyed("admin-paperwork", `(?i)\b(form|application|license|passport|id|registration|renew|update\s+(?:info|information))\b`, 0.85, CategoryAdmin),
	keyed("admin-planning", `(?i)\b(schedule|plan|book|reserve|appointment|calendar|organize)\b`, 0.7, CategoryAdmin),
}

var labelRules = pattern.Table[[]string]{
	keyed("communication", `(?i)\b(email|slack|message|respond|reply)\b`, 0.8, []string{"communication"}),
	keyed("call", `(?i)\b(call|phone|video\s+call|zoom|meet)\b`, 0.85, []string{"call", "communication"}),
	keyed("quick-task", `(?i)\b(quick|5\s*min|10\s*min|fast|brief)\b`, 0.8, []string{"quick-task"}),
	keyed("deep-work", `(?i)\b(deep\s+work|focus|concentrate|intensive)\b`, 0.85, []string{"deep-work"}),
	keyed("waiting", `(?i)\b(waiting|pending|blocked|on\s+hold)\b`, 0.9, []string{"waiting"}),
	keyed("urgent", `(?i)\b(urgent|asap|immediately|critical)\b`, 0.95, []string{"urgent"}),
	keyed("needs-review", `(?i)\b(review|feedback|approval)\b`, 0.82, []string{"needs-review"}),
	keyed("research", `(?i)\b(research|investigate|explore|spike)\b`, 0.85, []string{"research"}),
	keyed("idea", `(?i)\b(idea|brainstorm|think|consider)\b`, 0.75, []string{"idea"}),
	keyed("recurring", `(?i)\b(recurring|weekly|daily|monthly)\b`, 0.8, []string{"recurring"}),
	keyed("online", `(?i)\b(online|internet|web)\b`, 0.7, []string{"online"}),
	keyed("offline", `(?i)\b(offline|no\s+internet)\b`, 0.8, []string{"offline"}),
	keyed("home", `(?i)\b(at\s+home|home\s+only)\b`, 0.85, []string{"@home"}),
	keyed("office", `(?i)\b(at\s+office|office\s+only|work\s+only)\b`, 0.85, []string{"@office"}),
	keyed("anywhere", `(?i)\b(on\s+the\s+go|commute|traveling)\b`, 0.8, []string{"@anywhere"}),
}

var (
	hashtag       = regexp.MustCompile(`#(\w+)`)
	nameSeparator = regexp.MustCompile(`[\s\-_]+`)
)

// SuggestCategory infers the category with the most cumulative evidence.
// Each extra rule hit for a category adds a fifth of its confidence, capped
// below certainty.
func (e *Engine) SuggestCategory(content string) (CategorySuggestion, bool) {
	if strings.TrimSpace(content) == "" {
		return CategorySuggestion{}, false
	}

	var order []Category
	scores := map[Category]*CategorySuggestion{}
	for _, m := range categoryRules.Matches(content, time.Time{}) {
		s, ok := scores[m.Value]
		if !ok {
			scores[m.Value] = &CategorySuggestion{Category: m.Value, Confidence: m.Confidence, MatchedPatterns: []string{m.ID}}
			order = append(order, m.Value)
			continue
		}
		s.Confidence = min(categoryScoreCap, s.Confidence+m.Confidence*categoryCombineRatio)
		s.MatchedPatterns = append(s.MatchedPatterns, m.ID)
	}

	var best *CategorySuggestion
	for _, c := range order {
		if s := scores[c]; best == nil || s.Confidence > best.Confidence {
			best = s
		}
	}
	if best == nil {
		return CategorySuggestion{}, false
	}
	return *best, true
}

// projectKeywords returns the distinct words of a project name plus the name
// with separators squeezed out ("Side-Project" gives side, project, sideproject).
func projectKeywords(name string) []string {
	var out []string
	add := func(k string) {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	lower := strings.ToLower(name)
	for _, w := range nameSeparator.Split(lower, -1) {
		if len(w) >= 2 {
			add(w)
		}
	}
	if squeezed := nameSeparator.ReplaceAllString(lower, ""); len(squeezed) >= 3 {
		add(squeezed)
	}
	return out
}

// SuggestProject picks the caller project whose name or keywords content
// mentions the most.
func (e *Engine) SuggestProject(content string, projects []model.Project) (ProjectSuggestion, bool) {
	if strings.TrimSpace(content) == "" || len(projects) == 0 {
		return ProjectSuggestion{}, false
	}
	lower := strings.ToLower(content)

	var (
		best      model.Project
		bestWords []string
		bestScore float64
		found     bool
	)
	for _, p := range projects {
		var matched []string
		score := 0.0
		name := strings.ToLower(p.Name)

		if name != "" && strings.Contains(lower, name) {
			matched = append(matched, p.Name)
			score += 0.9
		}
		for _, k := range projectKeywords(p.Name) {
			if strings.Contains(lower, k) {
				matched = append(matched, k)
				score += 0.3
			}
		}
		for _, w := range strings.Fields(name) {
			if len(w) < 3 || slices.Contains(matched, w) {
				continue
			}
			if e.wordPattern(w).MatchString(content) {
				matched = append(matched, w)
				score += 0.4
			}
		}

		if len(matched) > 0 && (!found || score > bestScore) {
			best, bestWords, bestScore, found = p, matched, score, true
		}
	}
	if !found {
		return ProjectSuggestion{}, false
	}

	reasoning := fmt.Sprintf("Task mentions %q which matches project %q", strings.Join(bestWords, ", "), best.Name)
	return ProjectSuggestion{
		Suggestion: e.envelope(TypeProject, min(projectConfCap, bestScore), reasoning),
		Value:      ProjectMatch{ProjectID: best.ID, ProjectName: best.Name, MatchedKeywords: bestWords},
	}, true
}

// SuggestLabels proposes labels from keyword rules, the inferred category and
// explicit #hashtags. Confidence is the mean over the distinct labels.
func (e *Engine) SuggestLabels(content string, existing []string) (LabelsSuggestion, bool) {
	if strings.TrimSpace(content) == "" {
		return LabelsSuggestion{}, false
	}

	var (
		set   LabelSet
		total float64
	)
	add := func(label string, conf float64) {
		if slices.Contains(set.Labels, label) {
			return
		}
		set.Labels = append(set.Labels, label)
		total += conf
		if !slices.ContainsFunc(existing, func(l string) bool { return strings.EqualFold(l, label) }) {
			set.NewLabelsDetected = append(set.NewLabelsDetected, label)
		}
	}

	for _, m := range labelRules.Matches(content, time.Time{}) {
		for _, l := range m.Value {
			add(l, m.Confidence)
		}
	}
	if c, ok := e.SuggestCategory(content); ok && c.Confidence >= categoryLabelMin {
		add(string(c.Category), c.Confidence)
	}
	for _, m := range hashtag.FindAllStringSubmatch(content, -1) {
		add(m[1], hashtagConf)
	}

	if len(set.Labels) == 0 {
		return LabelsSuggestion{}, false
	}
	reasoning := "Suggested labels: " + strings.Join(set.Labels, ", ")
	if len(set.NewLabelsDetected) > 0 {
		reasoning += ". New labels detected: " + strings.Join(set.NewLabelsDetected, ", ")
	}
	return LabelsSuggestion{
		Suggestion: e.envelope(TypeLabels, total/float64(len(set.Labels)), reasoning),
		Value:      set,
	}, true
}

// SuggestGrouping runs the category, project and labels engines over the
// task's content and description.
func (e *Engine) SuggestGrouping(content, description string, projects []model.Project, existingLabels []string) Grouping {
	text := joinText(content, description)

	var g Grouping
	if c, ok := e.SuggestCategory(text); ok {
		g.Category = &c
	}
	if p, ok := e.SuggestProject(text, projects); ok {
		g.Project = &p
	}
	if l, ok := e.SuggestLabels(text, existingLabels); ok {
		g.Labels = &l
	}
	return g
}

func joinText(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
