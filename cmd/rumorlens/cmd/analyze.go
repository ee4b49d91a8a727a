package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"rumorlens/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <claim>",
	Short: "Fact-check a claim from the terminal",
	Long: `Send a claim to the Gemini API and print the verdict.

The Markdown verdict is rendered for the terminal and the propagation
graph, when available, is shown as a table.

Examples:
  rumorlens analyze "某地自来水被污染，烧开也不能喝"
  rumorlens analyze --json "..." | jq .isRumor`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJSON bool
	analyzeCopy bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false,
		"print the raw analysis result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeCopy, "copy", false,
		"copy the Markdown verdict to the clipboard")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	appCfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(appCfg)

	client, err := analysis.New(cmd.Context(), analysis.Config{
		APIKey: appCfg.Gemini.APIKey,
		Model:  appCfg.Gemini.Model,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating analysis client: %w", err)
	}

	// No input validation here: the claim goes through as typed.
	claim := strings.Join(args, " ")
	result := client.Analyze(cmd.Context(), claim)

	if analyzeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
	}

	if analyzeCopy {
		if err := clipboard.WriteAll(result.Message); err != nil {
			logger.Warn("failed to copy verdict to clipboard", "error", err.Error())
		}
	}

	return nil
}
