package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"task-intent/internal/intent"
	"task-intent/internal/intent/usecase"
	"task-intent/internal/nlp/taskparser"
	"task-intent/internal/suggestion"
	"task-intent/pkg/datemath"
	"task-intent/pkg/log"
)

// ContextFile is the YAML file passed with --context.
//
//	projects:
//	  - {id: p1, name: Work}
//	labels:
//	  - {id: l1, name: urgent}
//	tasks:
//	  - {id: t1, content: Fix login bug, labels: [bug]}
type ContextFile struct {
	taskparser.Context `yaml:",inline"`
	Tasks              []suggestion.TaskSnapshot `yaml:"tasks"`
}

func (f ContextFile) labelNames() []string {
	names := make([]string, len(f.Labels))
	for i, l := range f.Labels {
		names[i] = l.Name
	}
	return names
}

type options struct {
	contextPath string
	now         string
	timezone    string
	pretty      bool
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	opts  *options
	uc    intent.UseCase
	clock datemath.Clock
	ctx   ContextFile
}

// NewRootCmd builds the intentctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "intentctl",
		Short:         "Parse natural-language tasks from the command line",
		Long:          `intentctl turns free-text tasks into structured intents and suggests due dates, priorities and grouping.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&opts.contextPath, "context", "c", "", "YAML file with projects, labels and tasks")
	root.PersistentFlags().StringVar(&opts.now, "now", "", "reference time: RFC 3339, YYYY-MM-DD, today, tomorrow, next <weekday>, in N days (default: current time)")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "Local", "IANA timezone relative dates resolve in")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", true, "indent JSON output")

	root.AddCommand(
		newParseCmd(a),
		newSuggestCmd(a),
		newCompleteCmd(a),
		newGroupCmd(a),
		newSimilarCmd(a),
		newAbbrevCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (a *app) init() error {
	clock, err := datemath.NewSystemClock(a.opts.timezone)
	if err != nil {
		return err
	}
	a.clock = clock

	if a.opts.now != "" {
		at, err := parseNow(a.opts.now, a.opts.timezone, clock.Now())
		if err != nil {
			return err
		}
		a.clock = datemath.FixedClock{At: at}
	}

	if a.opts.contextPath != "" {
		data, err := os.ReadFile(a.opts.contextPath)
		if err != nil {
			return fmt.Errorf("read context: %w", err)
		}
		if err := yaml.Unmarshal(data, &a.ctx); err != nil {
			return fmt.Errorf("parse context %s: %w", a.opts.contextPath, err)
		}
	}

	a.uc = usecase.New(log.NewNop(), a.clock, usecase.Options{})
	return nil
}

// parseNow accepts an RFC 3339 timestamp or a date expression such as
// "2026-01-12", "tomorrow" or "next monday" (start of that day in timezone).
func parseNow(s, timezone string, wall time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	p, err := datemath.NewParser(timezone)
	if err != nil {
		return time.Time{}, err
	}
	t, err := p.Parse(s, wall)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return t, nil
}

func (a *app) print(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
