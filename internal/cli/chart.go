// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"canplot/internal/render"
)

var (
	chartID           string
	chartMeasurements []string
	chartStyle        string
	chartOut          string
	chartWidth        int
	chartHeight       int
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Render measurement charts from a sniffer log",
	Long: `Extract one CAN bus sniffer log and write a PNG chart per measurement
of the selected identifier. Without --measurement every selectable measurement
of the identifier is rendered.

Examples:
  canplot chart drive.log --id 0x100
  canplot chart drive.log --id 0x100 --measurement Speed --style scatter
  canplot chart drive.log --id 0x1A0 --out charts/ --width 1280`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartID, "id", "", "identifier to chart (required)")
	chartCmd.Flags().StringSliceVarP(&chartMeasurements, "measurement", "m", nil, "measurement names (default: all)")
	chartCmd.Flags().StringVar(&chartStyle, "style", "", "chart style (default: line)")
	chartCmd.Flags().StringVar(&chartOut, "out", ".", "output directory")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in pixels")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in pixels")
	_ = chartCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	ex, err := newExtractor()
	if err != nil {
		return err
	}
	ds, _, err := ex.Extract(data)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	msg, ok := ds.Message(chartID)
	if !ok {
		return fmt.Errorf("identifier %s not found (known: %s)", chartID, strings.Join(ds.Identifiers(), ", "))
	}

	style, err := render.ParseStyle(chartStyle)
	if err != nil {
		return err
	}

	names := chartMeasurements
	if len(names) == 0 {
		names = msg.Measurements()
	}
	if len(names) == 0 {
		return fmt.Errorf("identifier %s has no measurements to chart", chartID)
	}

	width := chartWidth
	if width <= 0 {
		width = viper.GetInt("chart.width")
	}
	height := chartHeight
	if height <= 0 {
		height = viper.GetInt("chart.height")
	}
	renderer := render.New(render.Config{Width: width, Height: height})

	if err := os.MkdirAll(chartOut, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, name := range names {
		series, ok := msg.Series(name)
		if !ok {
			return fmt.Errorf("measurement %s not found under %s", name, chartID)
		}

		img, err := renderer.Render(render.Request{
			Identifier:  chartID,
			Measurement: name,
			Samples:     series,
			Style:       style,
		})
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		file := filepath.Join(chartOut, chartFileName(chartID, name))
		if err := os.WriteFile(file, img, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", file)
	}

	return nil
}

// chartFileName builds "<id>_<measurement>.png" with path-hostile runes
// replaced.
func chartFileName(id, name string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
				return r
			}
			return '_'
		}, s)
	}
	return clean(id) + "_" + clean(name) + ".png"
}
