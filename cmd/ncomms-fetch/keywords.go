package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ncomms-fetch/internal/tag"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the built-in keyword list or save it to a file",
	Long: `Keywords prints the built-in tagging vocabulary, one keyword per line.
With --write it saves the list as a YAML file that can be edited and
passed to fetch --keywords-file.`,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().String("write", "", "write the keyword list to this YAML file")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("write")
	if path != "" {
		if err := tag.WriteKeywordFile(path, tag.DefaultKeywords, tag.DefaultWholeWords); err != nil {
			return err
		}
		fmt.Printf("Wrote %d keywords to %s\n", len(tag.DefaultKeywords), path)
		return nil
	}

	for _, kw := range tag.DefaultKeywords {
		fmt.Println(kw)
	}
	return nil
}
