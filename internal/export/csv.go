// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes tagged article records to CSV files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/ncomms-fetch/pkg/types"
)

// header lists the CSV columns in output order.
var header = []string{"publication_date", "title", "abstract", "doi", "url", "last_author", "tags"}

// Filename returns the conventional CSV name for a month label, for
// example ncomms_2025-12.csv.
func Filename(label string) string {
	return "ncomms_" + label + ".csv"
}

// WriteCSV saves the articles to path, sorted by publication date with
// fetch order preserved among equal dates. An empty slice still produces
// a header-only file. Returns the number of data rows written.
func WriteCSV(path string, articles []types.Article) (int, error) {
	rows := make([]types.Article, len(articles))
	copy(rows, articles)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PublicationDate < rows[j].PublicationDate
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, a := range rows {
		record := []string{
			a.PublicationDate,
			a.Title,
			a.Abstract,
			a.DOI,
			a.URL,
			a.LastAuthor,
			strings.Join(a.Tags, "; "),
		}
		if err := w.Write(record); err != nil {
			return 0, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flushing CSV: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("saving CSV file: %w", err)
	}
	return len(rows), nil
}
