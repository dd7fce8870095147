package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the AI tutor's LLM provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a one-line test request to the configured provider",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := cliLogger(cmd, cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		llmCfg, err := llm.Resolve(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Timeout)
		if err != nil {
			return err
		}
		ctx := llm.WithPurpose(cmd.Context(), "check")
		p, err := llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Provider:  %s\n", llmCfg.Provider)
		fmt.Fprintf(w, "Model:     %s\n", p.ModelID())

		start := time.Now()
		resp, err := p.Generate(ctx, llm.Prompt{
			System:    "You are a connectivity check. Answer with status set to the single word ok.",
			User:      "ping",
			Schema:    pingSchema,
			MaxTokens: 32,
		})
		latency := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "Status:    ✗ %s\n", err)
			return fmt.Errorf("check failed: %w", err)
		}

		var ping struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(resp.JSON, &ping)
		fmt.Fprintf(w, "Status:    ✓ %s\n", strings.TrimSpace(ping.Status))
		fmt.Fprintf(w, "Served by: %s\n", resp.Model)
		fmt.Fprintf(w, "Tokens:    %d in / %d out\n", resp.Tokens.In, resp.Tokens.Out)
		fmt.Fprintf(w, "Latency:   %dms\n", latency.Milliseconds())
		return nil
	},
}

var pingSchema = llm.NewSchema("connectivity-check", "Reply to a connectivity check", map[string]any{
	"type":                 "object",
	"properties":           map[string]any{"status": map[string]any{"type": "string"}},
	"required":             []any{"status"},
	"additionalProperties": false,
})

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
