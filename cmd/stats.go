package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/levels"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show points, levels, exam and badge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			state, err := e.svc.Progress.Load(ctx)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			status, err := e.svc.Exam.Status(ctx)
			if err != nil {
				return err
			}
			rec, err := e.svc.Badges.Load(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if id := e.svc.Identity.Current(); id != nil {
				fmt.Fprintf(w, "Learner:  %s\n", id.Name)
			}
			fmt.Fprintf(w, "Points:   %d / %d\n", state.Points, levels.TotalPoints())
			fmt.Fprintf(w, "Levels:   %d / %d completed\n", state.CompletedCount(), levels.Count())
			if next, ok := levels.Next(state.Completed); ok {
				fmt.Fprintf(w, "Next:     level %d, %s\n", next.ID, next.Title)
			}
			switch {
			case status.Completed:
				fmt.Fprintf(w, "Exam:     %d%% (pass mark %d%%)\n", status.Score, badge.PassingScore)
			case levels.AllCompleted(state.Completed):
				fmt.Fprintln(w, "Exam:     unlocked, not taken")
			default:
				fmt.Fprintln(w, "Exam:     locked")
			}
			if rec.Earned {
				fmt.Fprintf(w, "Badge:    %s, held by %s (%s)\n", badge.Name, rec.DisplayName(), rec.CertID)
			} else {
				fmt.Fprintln(w, "Badge:    not earned")
			}
			return nil
		})
	},
}
