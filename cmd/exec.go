package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/shell"
)

var execCmd = &cobra.Command{
	Use:   "exec [--cwd DIR] -- LINE",
	Short: "Run one line in the simulated shell",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := cmd.Flags().GetString("cwd")
		if !shell.IsDirPath(cwd) {
			return fmt.Errorf("no such directory in the practice file system: %s", cwd)
		}
		out, newCwd := shell.New().Execute(strings.Join(args, " "), cwd)
		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		if newCwd != cwd {
			fmt.Fprintf(cmd.ErrOrStderr(), "cwd: %s\n", newCwd)
		}
		return nil
	},
}

func init() {
	execCmd.Flags().String("cwd", shell.Home, "Working directory inside the practice file system")
}
