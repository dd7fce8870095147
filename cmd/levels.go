package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels with their lock and completion state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			state, err := e.svc.Progress.Load(ctx)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			printLevels(cmd.OutOrStdout(), state.Completed)
			return nil
		})
	},
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level's tutorial and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}
		lvl, err := levels.Get(id)
		if err != nil {
			return err
		}
		printLevel(cmd.OutOrStdout(), lvl)
		return nil
	},
}

func printLevels(w io.Writer, completed map[int]bool) {
	fmt.Fprintf(w, "%-3s  %-34s  %-12s  %6s  %-8s  %s\n", "#", "Title", "Tier", "Points", "Time", "State")
	fmt.Fprintln(w, strings.Repeat("─", 82))
	for _, l := range levels.All() {
		st := levels.StateOf(l.ID, completed)
		fmt.Fprintf(w, "%-3d  %-34s  %-12s  %6d  %-8s  %s %s\n",
			l.ID, l.Title, l.Tier(), l.Points, l.EstimatedTime, st.Icon(), st.Label())
	}
}

func printLevel(w io.Writer, l levels.Level) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintf(w, "Level %d: %s\n", l.ID, l.Title)
	fmt.Fprintf(w, "%s · %d points · %s\n", l.Tier(), l.Points, l.EstimatedTime)
	fmt.Fprintln(w, l.Description)
	fmt.Fprintf(w, "Commands: %s\n", strings.Join(l.Commands, ", "))

	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, strings.ToUpper(l.Tutorial.Title))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, l.Tutorial.Content)
	if l.Tutorial.Why != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Why it matters: %s\n", l.Tutorial.Why)
	}
	if len(l.Tutorial.Examples) > 0 {
		fmt.Fprintln(w)
		for _, ex := range l.Tutorial.Examples {
			fmt.Fprintf(w, "  $ %-24s %s\n", ex.Command, ex.Description)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, "EXERCISES")
	fmt.Fprintln(w, sep)
	for i, ex := range l.Exercises {
		fmt.Fprintf(w, "%d. %s\n", i+1, ex.Instruction)
		if ex.Hint != "" {
			fmt.Fprintf(w, "   hint: %s\n", ex.Hint)
		}
	}
}

func init() {
	levelsCmd.AddCommand(levelsShowCmd)
}
