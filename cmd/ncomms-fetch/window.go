package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ncomms-fetch/internal/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [YYYY-MM]",
	Short: "Print the date range a fetch would cover",
	Long: `Window resolves a month label to the first and last day sent to the API
as the publication date filter. With no argument it shows the previous
calendar month.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m window.Month
		if len(args) == 0 {
			m = window.Previous(time.Now())
		} else {
			var err error
			m, err = window.Parse(args[0])
			if err != nil {
				return err
			}
		}
		fmt.Printf("%s: %s to %s\n", m.Label, m.Start.Format("2006-01-02"), m.End.Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
}
