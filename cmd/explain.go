package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/commands"
)

var explainCmd = &cobra.Command{
	Use:   "explain [command]",
	Short: "Show the reference entry for a command",
	Long:  "Show the reference entry for a command. With no argument, list the documented commands.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(w, strings.Join(commands.Names(), "  "))
			return nil
		}
		info, ok := commands.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no reference entry for %q", args[0])
		}
		printCommand(w, info)
		return nil
	},
}

func printCommand(w io.Writer, info commands.Info) {
	fmt.Fprintf(w, "%s - %s\n\n", info.Name, info.Description)
	fmt.Fprintf(w, "Usage: %s\n", info.Usage)
	if info.Why != "" {
		fmt.Fprintf(w, "\n%s\n", info.Why)
	}
	if len(info.Examples) > 0 {
		fmt.Fprintln(w, "\nExamples:")
		for _, ex := range info.Examples {
			fmt.Fprintf(w, "  $ %-24s %s\n", ex.Command, ex.Explanation)
		}
	}
	if len(info.Options) > 0 {
		fmt.Fprintln(w, "\nOptions:")
		for _, o := range info.Options {
			fmt.Fprintf(w, "  %-8s %s\n", o.Flag, o.Description)
		}
	}
}
