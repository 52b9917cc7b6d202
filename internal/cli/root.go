// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"canplot/internal/extract"
	"canplot/internal/output"
)

var (
	cfgFile     string
	outputFmt   string
	matchExpr   []string
	excludeExpr []string
	strictBytes bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "canplot",
	Short: "CAN bus log extraction and plotting",
	Long: `canplot parses CAN bus sniffer logs into per-identifier measurement
series and renders them as charts. Upload logs to the companion server for the
web UI, or work with files directly from this CLI.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.canplot.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringSliceVar(&matchExpr, "match", nil, "record only measurement names matching these regexps")
	rootCmd.PersistentFlags().StringSliceVar(&excludeExpr, "exclude", nil, "drop measurement names matching these regexps")
	rootCmd.PersistentFlags().BoolVar(&strictBytes, "strict", false, "abort on malformed data byte lines instead of skipping them")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".canplot")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newExtractor builds the extractor from flags, falling back to the viper
// config for anything not set on the command line.
func newExtractor() (extract.Extractor, error) {
	policy := extract.PolicyLenient
	if strictBytes || viper.GetString("extract.byte_policy") == "strict" {
		policy = extract.PolicyStrict
	}

	allow := matchExpr
	if len(allow) == 0 {
		allow = viper.GetStringSlice("extract.allow")
	}
	block := excludeExpr
	if len(block) == 0 {
		block = viper.GetStringSlice("extract.block")
	}
	filter, err := extract.NewNameFilter(allow, block)
	if err != nil {
		return nil, err
	}

	var suffixes []string
	if viper.IsSet("extract.unit_suffixes") {
		suffixes = viper.GetStringSlice("extract.unit_suffixes")
	}

	return extract.New(extract.Config{
		Policy:       policy,
		UnitSuffixes: suffixes,
		Filter:       filter,
	}), nil
}

func newSummaryRenderer() output.Renderer {
	switch strings.ToLower(outputFmt) {
	case "json":
		return output.NewJSONRenderer()
	default:
		return output.NewTextRenderer()
	}
}
