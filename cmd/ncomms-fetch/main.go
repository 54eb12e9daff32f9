// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ncomms-fetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ncomms-fetch CLI.
var rootCmd = &cobra.Command{
	Use:   "ncomms-fetch",
	Short: "Fetch and tag Nature Communications articles by month",
	Long: `ncomms-fetch pulls one calendar month of Nature Communications journal
articles from the Crossref works API, tags each abstract against a
gene-editing keyword list, and saves the records to a CSV file.

By default the previous calendar month is fetched. Use fetch --month to
pick another month, and keywords to inspect or save the tagging
vocabulary.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ncomms-fetch.yaml or ~/.config/ncomms-fetch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ncomms-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ncomms-fetch"))
		}
	}

	viper.SetEnvPrefix("NCOMMS_FETCH")
	viper.AutomaticEnv()
	// Crossref's polite pool convention puts the contact address in
	// CROSSREF_MAILTO, so honor that name alongside the prefixed one.
	_ = viper.BindEnv("mailto", "NCOMMS_FETCH_MAILTO", "CROSSREF_MAILTO")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
