package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "linuxlearn", describeVersion(version))
	},
}

// describeVersion normalizes a release tag and marks pre-releases.
// Anything that is not semver is printed as is.
func describeVersion(v string) string {
	if !semver.IsValid(v) {
		return v
	}
	out := semver.Canonical(v)
	if semver.Prerelease(v) != "" {
		out += " (pre-release)"
	}
	return out
}
