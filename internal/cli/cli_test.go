package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const contextYAML = `
projects:
  - {id: p1, name: Work}
labels:
  - {id: l1, name: important}
tasks:
  - {id: t1, content: Fix login page bug, project_id: p1}
  - {id: t2, content: Call mom}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeContext(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ctx.yaml")
	if err := os.WriteFile(path, []byte(contextYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "--context", writeContext(t), "--now", "2026-01-12", "--tz", "UTC", "Review deck tomorrow #work @important")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got struct {
		Intent struct {
			Title     string   `json:"title"`
			DueDate   string   `json:"due_date"`
			ProjectID string   `json:"project_id"`
			LabelIDs  []string `json:"label_ids"`
		} `json:"intent"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got.Intent.Title != "Review deck" || got.Intent.ProjectID != "p1" || len(got.Intent.LabelIDs) != 1 {
		t.Errorf("intent = %+v", got.Intent)
	}
	if !strings.HasPrefix(got.Intent.DueDate, "2026-01-13") {
		t.Errorf("due date = %q", got.Intent.DueDate)
	}
}

func TestSuggestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"due date", []string{"suggest", "due-date", "--now", "2026-01-12", "--tz", "UTC", "finish", "by", "friday"}, `"date": "2026-01-16T00:00:00Z"`},
		{"priority", []string{"suggest", "priority", "server", "down"}, `"priority": "p1"`},
		{"no due date", []string{"suggest", "due-date", "water", "plants"}, "null"},
		{"grouping", []string{"suggest", "grouping", "--context", "", "Call", "mom"}, `"category"`},
		{"complete", []string{"complete", "--context", "", "Ship it #"}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
		})
	}
}

func TestContextCommands(t *testing.T) {
	path := writeContext(t)

	out, err := run(t, "complete", "--context", path, "Ship it #wo")
	if err != nil || !strings.Contains(out, `"#Work"`) {
		t.Errorf("complete = %q, %v", out, err)
	}

	out, err = run(t, "similar", "--context", path, "Fix", "login", "bug")
	if err != nil || !strings.Contains(out, `"t1"`) || strings.Contains(out, `"t2"`) {
		t.Errorf("similar = %q, %v", out, err)
	}

	out, err = run(t, "group", "--context", path)
	if err != nil || !strings.Contains(out, `"t1"`) || !strings.Contains(out, `"t2"`) {
		t.Errorf("group = %q, %v", out, err)
	}
}

func TestAbbrevCommand(t *testing.T) {
	out, err := run(t, "abbrev")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tmrw") || !strings.Contains(out, "tomorrow") {
		t.Errorf("abbrev output missing table:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad now", []string{"parse", "--now", "someday", "x"}},
		{"bad tz", []string{"parse", "--tz", "Mars/Base", "x"}},
		{"missing context", []string{"parse", "--context", "/nonexistent/ctx.yaml", "x"}},
		{"no args", []string{"parse"}},
		{"group without tasks", []string{"group"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestParseNow(t *testing.T) {
	wall := time.Date(2026, 1, 12, 15, 4, 0, 0, time.UTC) // Monday
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-01-20", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"next friday", time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)},
		{"in 2 weeks", time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)},
		{"2026-01-12T10:30:00+07:00", time.Date(2026, 1, 12, 3, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNow(tt.in, "UTC", wall)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := parseNow("someday", "UTC", wall); err == nil {
		t.Error("expected error")
	}
}
