package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/badge"
)

var errNoBadge = errors.New("no badge earned yet; pass the final exam first")

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Work with the " + badge.Name + " badge",
}

var badgeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the printable HTML certificate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			rec, err := e.svc.Badges.Load(ctx)
			if err != nil {
				return err
			}
			if !rec.Earned {
				return errNoBadge
			}
			path, err := writeCertificate(out, rec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Certificate written to %s\n", path)
			return nil
		})
	},
}

// writeCertificate writes to out, or to the default file name in the
// working directory when out is empty.
func writeCertificate(out string, rec badge.Record) (string, error) {
	if out == "" {
		return badge.ExportCertificate(".", rec)
	}
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	if err := badge.RenderCertificate(f, rec); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}

func init() {
	badgeExportCmd.Flags().StringP("output", "o", "", "Output file (default: badge file name in the current directory)")
	badgeCmd.AddCommand(badgeExportCmd)
}
