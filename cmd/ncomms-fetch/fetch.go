package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ncomms-fetch/internal/crossref"
	"github.com/pdiddy/ncomms-fetch/internal/export"
	"github.com/pdiddy/ncomms-fetch/internal/tag"
	"github.com/pdiddy/ncomms-fetch/internal/window"
	"github.com/pdiddy/ncomms-fetch/pkg/types"
)

const (
	defaultMailto      = "email@help.com"
	defaultRows        = 100
	defaultMaxAttempts = 5
	defaultBackoff     = 3 * time.Second
	defaultTimeout     = 20 * time.Second
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one month of articles, tag them, and save a CSV",
	Long: `Fetch pulls every Nature Communications journal article with an abstract
published in the target month, tags each abstract against the keyword
list, and writes ncomms_<month>.csv into the output directory.

Without --month the previous calendar month is fetched.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("month", "", "month to fetch as YYYY-MM (default: previous month)")
	fetchCmd.Flags().String("out-dir", "", "directory for the output CSV (default \".\")")
	fetchCmd.Flags().String("keywords-file", "", "YAML keyword file overriding the built-in list")
	fetchCmd.Flags().Bool("whole-words", false, "match keywords at word boundaries only")
	fetchCmd.Flags().String("mailto", "", "contact address sent to the API (default email@help.com)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 20s)")
	fetchCmd.Flags().Int("rows", 0, "page size for API requests (default 100)")
	fetchCmd.Flags().Int("retries", 0, "attempts per page before giving up (default 5)")
	fetchCmd.Flags().Duration("backoff", 0, "base wait between retry attempts (default 3s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	month, err := resolveMonth(cmd)
	if err != nil {
		return err
	}

	cfg := resolveConfig(cmd)
	cfg.Tag, err = resolveKeywords(cmd)
	if err != nil {
		return err
	}

	client := &crossref.Client{
		HTTPClient: &http.Client{Timeout: cfg.Fetch.Timeout},
		Config:     cfg.Fetch,
	}

	fmt.Fprintf(os.Stderr, "Fetching %s articles for %s\n", crossref.JournalName, month.Label)
	articles, err := client.FetchMonth(cmd.Context(), month, os.Stderr)
	if err != nil {
		return err
	}

	patterns := tag.BuildPatterns(cfg.Tag.Keywords, cfg.Tag.WholeWords)
	for i := range articles {
		articles[i].Tags = tag.Match(articles[i].Abstract, patterns)
	}

	csvPath := filepath.Join(cfg.Export.OutDir, export.Filename(month.Label))
	count, err := export.WriteCSV(csvPath, articles)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d records to %s\n", count, csvPath)
	return nil
}

// resolveMonth picks the fetch window: an explicit --month value or the
// month before the current one.
func resolveMonth(cmd *cobra.Command) (window.Month, error) {
	label, _ := cmd.Flags().GetString("month")
	if label == "" {
		label = viper.GetString("month")
	}
	if label == "" {
		return window.Previous(time.Now()), nil
	}
	return window.Parse(label)
}

// resolveConfig merges flag, config file, and built-in default values.
// Flags win over the config file; unset values fall back to defaults.
func resolveConfig(cmd *cobra.Command) types.PipelineConfig {
	mailto, _ := cmd.Flags().GetString("mailto")
	if mailto == "" {
		mailto = viper.GetString("mailto")
	}
	if mailto == "" {
		mailto = defaultMailto
	}

	rows, _ := cmd.Flags().GetInt("rows")
	if rows == 0 {
		rows = viper.GetInt("rows")
	}
	if rows == 0 {
		rows = defaultRows
	}

	retries, _ := cmd.Flags().GetInt("retries")
	if retries == 0 {
		retries = viper.GetInt("retries")
	}
	if retries == 0 {
		retries = defaultMaxAttempts
	}

	backoff, _ := cmd.Flags().GetDuration("backoff")
	if backoff == 0 {
		backoff = viper.GetDuration("backoff")
	}
	if backoff == 0 {
		backoff = defaultBackoff
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = viper.GetString("out_dir")
	}
	if outDir == "" {
		outDir = "."
	}

	return types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: userAgent(mailto),
			},
			Mailto:      mailto,
			Rows:        rows,
			MaxAttempts: retries,
			Backoff:     backoff,
		},
		Export: types.ExportConfig{OutDir: outDir},
	}
}

// resolveKeywords selects the tagging vocabulary: an explicit keyword
// file, keywords from the config file, or the built-in list.
func resolveKeywords(cmd *cobra.Command) (types.TagConfig, error) {
	wholeWords, _ := cmd.Flags().GetBool("whole-words")
	if !wholeWords {
		wholeWords = viper.GetBool("whole_words")
	}

	path, _ := cmd.Flags().GetString("keywords-file")
	if path == "" {
		path = viper.GetString("keywords_file")
	}
	if path != "" {
		kf, err := tag.ReadKeywordFile(path)
		if err != nil {
			return types.TagConfig{}, err
		}
		return types.TagConfig{Keywords: kf.Keywords, WholeWords: wholeWords || kf.WholeWords}, nil
	}

	if kws := viper.GetStringSlice("keywords"); len(kws) > 0 {
		return types.TagConfig{Keywords: kws, WholeWords: wholeWords}, nil
	}

	return types.TagConfig{Keywords: tag.DefaultKeywords, WholeWords: wholeWords || tag.DefaultWholeWords}, nil
}

// userAgent identifies the client to the works API and carries the
// contact address per the polite pool convention.
func userAgent(mailto string) string {
	return fmt.Sprintf("ncomms-fetch/%s (mailto:%s)", version, mailto)
}
