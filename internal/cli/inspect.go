// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"canplot/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Extract a sniffer log and summarize its contents",
	Long: `Parse one CAN bus sniffer log and print what was found: identifiers,
measurement series with sample counts, frame counts and extraction statistics.

Examples:
  canplot inspect drive.log
  canplot inspect drive.log --output json
  canplot inspect drive.log --match '^Speed$' --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	ex, err := newExtractor()
	if err != nil {
		return err
	}

	ds, stats, err := ex.Extract(data)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	return newSummaryRenderer().Render(output.Summary{
		Name:    filepath.Base(path),
		Stats:   stats,
		Dataset: ds,
	})
}
