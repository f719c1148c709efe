// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the convert-case CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-case/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the convert-case CLI.
var rootCmd = &cobra.Command{
	Use:   "convert-case",
	Short: "Convert strings between capitalization styles",
	Long: `convert-case rewrites strings from one capitalization style to another.
Supported styles are human ("aaa bbb"), camel ("aaaBbb"), snake ("aaa_bbb"),
kebab ("aaa-bbb"), upper ("AAA_BBB") and pascal ("AaaBbb").

Convert single values or stdin with the convert subcommand, run YAML job files
with batch, and review past conversions with history.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convert-case.yaml or ~/.config/convert-case/config.yaml)")
	rootCmd.PersistentFlags().Bool("history", false, "record conversions in the history journal")
	rootCmd.PersistentFlags().String("history-dir", types.DefaultHistoryDir, "directory holding history.db")

	bindRootFlags(viper.GetViper())
	setDefaults(viper.GetViper())
}

func bindRootFlags(v *viper.Viper) {
	_ = v.BindPFlag("history.enabled", rootCmd.PersistentFlags().Lookup("history"))
	_ = v.BindPFlag("history.dir", rootCmd.PersistentFlags().Lookup("history-dir"))
}

func setDefaults(v *viper.Viper) {
	d := types.DefaultAppConfig()
	v.SetDefault("case.from", d.Case.From)
	v.SetDefault("case.to", d.Case.To)
	v.SetDefault("case.strict", d.Case.Strict)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.dir", d.History.Dir)
	v.SetDefault("history.max_results", d.History.MaxResults)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convert-case")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convert-case"))
		}
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv maps nested keys to CONVERT_CASE_ variables, so case.from is read
// from CONVERT_CASE_CASE_FROM.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("CONVERT_CASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadConfig decodes the merged flag, environment, file, and default values.
func loadConfig(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
