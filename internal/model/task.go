package model

import "strings"

// Priority is a task priority, p1 (urgent) through p4 (low).
type Priority string

const (
	PriorityNone Priority = ""
	PriorityP1   Priority = "p1"
	PriorityP2   Priority = "p2"
	PriorityP3   Priority = "p3"
	PriorityP4   Priority = "p4"
)

// Rank orders priorities: 1 for p1 up to 4 for p4, 5 when unset.
func (p Priority) Rank() int {
	switch p {
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	case PriorityP4:
		return 4
	}
	return 5
}

func (p Priority) Valid() bool { return p.Rank() < 5 }

// Label returns the display form, e.g. "P1 (Urgent)".
func (p Priority) Label() string {
	switch p {
	case PriorityP1:
		return "P1 (Urgent)"
	case PriorityP2:
		return "P2 (High)"
	case PriorityP3:
		return "P3 (Normal)"
	case PriorityP4:
		return "P4 (Low)"
	}
	return ""
}

// Project is an entry of the caller-supplied project lookup table.
type Project struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Label is an entry of the caller-supplied label lookup table.
type Label struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Frequency is the unit of a recurrence rule.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Recurrence describes a repeating schedule, e.g. every 2 weeks.
type Recurrence struct {
	Frequency Frequency `json:"frequency"`
	Interval  int       `json:"interval"`
}

// FindProject resolves name against projects case-insensitively, preferring
// an exact match over a prefix match. Table order breaks ties.
func FindProject(projects []Project, name string) (Project, bool) {
	i := lookup(len(projects), func(i int) string { return projects[i].Name }, name)
	if i < 0 {
		return Project{}, false
	}
	return projects[i], true
}

// FindLabel resolves name against labels like FindProject.
func FindLabel(labels []Label, name string) (Label, bool) {
	i := lookup(len(labels), func(i int) string { return labels[i].Name }, name)
	if i < 0 {
		return Label{}, false
	}
	return labels[i], true
}

func lookup(n int, nameAt func(int) string, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return -1
	}
	prefix := -1
	for i := 0; i < n; i++ {
		candidate := strings.ToLower(nameAt(i))
		if candidate == name {
			return i
		}
		if prefix < 0 && strings.HasPrefix(candidate, name) {
			prefix = i
		}
	}
	return prefix
}
