package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-intent/internal/intent"
	"task-intent/internal/nlp/action"
	"task-intent/internal/nlp/normalizer"
	"task-intent/internal/suggestion"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse TEXT...",
		Short:   "Parse a task into a structured intent",
		Example: `  intentctl parse "Meet John tomorrow at 3pm #work p2" --context ctx.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Parse(cmd.Context(), intent.ParseInput{Text: joinArgs(args), Context: a.ctx.Context})
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]any{"intent": out.Intent, "summary": out.Summary})
		},
	}
}

func newSuggestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a due date, priority or grouping for a task",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "due-date TEXT...",
			Short: "Suggest a due date",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := a.uc.SuggestDueDate(cmd.Context(), intent.SuggestInput{Content: joinArgs(args)})
				if err != nil {
					return err
				}
				return a.print(cmd, out.Suggestion)
			},
		},
		&cobra.Command{
			Use:   "priority TEXT...",
			Short: "Suggest a priority",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := a.uc.SuggestPriority(cmd.Context(), intent.SuggestInput{Content: joinArgs(args)})
				if err != nil {
					return err
				}
				return a.print(cmd, out.Suggestion)
			},
		},
		&cobra.Command{
			Use:   "grouping TEXT...",
			Short: "Suggest category, project and labels",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := a.uc.SuggestGrouping(cmd.Context(), intent.GroupingInput{
					Content:        joinArgs(args),
					Projects:       a.ctx.Projects,
					ExistingLabels: a.ctx.labelNames(),
					Labels:         a.ctx.Labels,
				})
				if err != nil {
					return err
				}
				return a.print(cmd, out.Grouping)
			},
		},
	)
	return cmd
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete PARTIAL",
		Short: "Complete a trailing #project or @label token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Autocomplete(cmd.Context(), intent.AutocompleteInput{Partial: args[0], Context: a.ctx.Context})
			if err != nil {
				return err
			}
			return a.print(cmd, out.Completions)
		},
	}
}

func newGroupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "group",
		Short: "Group the context file's tasks by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.GroupByCategory(cmd.Context(), intent.CategorizeInput{Tasks: a.ctx.Tasks})
			if err != nil {
				return fmt.Errorf("group: %w (add tasks to the --context file)", err)
			}
			return a.print(cmd, out.Groups)
		},
	}
}

func newSimilarCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "similar TEXT...",
		Short: "Find context file tasks similar to TEXT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.FindSimilar(cmd.Context(), intent.SimilarInput{
				Target:     suggestion.TaskSnapshot{ID: "target", Content: joinArgs(args)},
				Candidates: a.ctx.Tasks,
				Limit:      limit,
			})
			if err != nil {
				return err
			}
			return a.print(cmd, out.Similar)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (default 5)")
	return cmd
}

func newAbbrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abbrev",
		Short: "List recognized abbreviations and action verbs",
		Args:  cobra.NoArgs,
		// No context or clock needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ABBREV\tEXPANSION")
			for _, h := range normalizer.Hints() {
				fmt.Fprintf(w, "%s\t%s\n", h.Abbrev, h.Expansion)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "ACTION\tMINUTES\tVERBS")
			for _, h := range action.Hints() {
				fmt.Fprintf(w, "%s\t%d\t%v\n", h.Type, h.Duration, h.Verbs)
			}
			return w.Flush()
		},
	}
}
