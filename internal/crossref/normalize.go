// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/pdiddy/ncomms-fetch/pkg/types"
)

// markupPattern matches JATS and HTML tags embedded in abstract text.
var markupPattern = regexp.MustCompile(`<[^>]+>`)

// normalizeItem converts a raw works item into an Article. Missing fields
// resolve to empty values, never errors.
func normalizeItem(it workItem) types.Article {
	var title string
	if len(it.Title) > 0 {
		title = it.Title[0]
	}
	return types.Article{
		PublicationDate: pubDate(it),
		Title:           title,
		Abstract:        cleanAbstract(it.Abstract),
		DOI:             it.DOI,
		URL:             it.URL,
		LastAuthor:      lastAuthor(it.Author),
	}
}

// pubDate resolves the publication date with a fixed preference order:
// published-online, then published-print, then issued, then the created
// timestamp truncated to its date part.
func pubDate(it workItem) string {
	for _, d := range []*workDate{it.PublishedOnline, it.PublishedPrint, it.Issued} {
		if d != nil && len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
			return isoFromParts(d.DateParts[0])
		}
	}
	if it.Created != nil && it.Created.DateTime != "" {
		dt := it.Created.DateTime
		if len(dt) > 10 {
			dt = dt[:10]
		}
		return dt
	}
	return ""
}

// isoFromParts renders a date-parts entry as YYYY-MM-DD. A missing month
// or day defaults to 1.
func isoFromParts(parts []int) string {
	year := parts[0]
	month, day := 1, 1
	if len(parts) >= 2 {
		month = parts[1]
	}
	if len(parts) >= 3 {
		day = parts[2]
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// cleanAbstract strips markup tags, decodes HTML entities, and collapses
// runs of whitespace to single spaces.
func cleanAbstract(raw string) string {
	if raw == "" {
		return ""
	}
	text := markupPattern.ReplaceAllString(raw, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// formatAuthor renders an author name, preferring "given family" and
// falling back through the alternate name fields the API uses for
// organizations and unparsed names.
func formatAuthor(a workAuthor) string {
	if a.Given != "" || a.Family != "" {
		return strings.TrimSpace(a.Given + " " + a.Family)
	}
	if a.Name != "" {
		return strings.TrimSpace(a.Name)
	}
	if a.Literal != "" {
		return strings.TrimSpace(a.Literal)
	}
	var parts []string
	for _, p := range []string{a.Prefix, a.Given, a.Family, a.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// lastAuthor formats the final author in source order, or "" when the
// item names no authors.
func lastAuthor(authors []workAuthor) string {
	if len(authors) == 0 {
		return ""
	}
	return formatAuthor(authors[len(authors)-1])
}
