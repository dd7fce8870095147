package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/identity"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in so progress is kept per learner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		if err := identity.ValidateEmail(email); err != nil {
			return err
		}
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			id := identity.New(email, name, time.Now())
			if err := e.svc.Identity.Login(ctx, id); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", id.Name, id.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Archive progress and sign out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			id := e.svc.Identity.Current()
			if id == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			if err := e.svc.Identity.Logout(ctx); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed out %s. Progress is saved for next time.\n", id.Name)
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in learner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			id := e.svc.Identity.Current()
			if id == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>, signed in %s\n",
				id.Name, id.Email, id.LoginTime.Local().Format("2006-01-02 15:04"))
			return nil
		})
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Email address")
	loginCmd.Flags().String("name", "", "Display name (default "+identity.DefaultName+")")
	_ = loginCmd.MarkFlagRequired("email")
}
