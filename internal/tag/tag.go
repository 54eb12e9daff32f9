// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tag matches article abstracts against a keyword list and
// records which keywords appear.
package tag

import (
	"regexp"
	"strings"
)

// Pattern pairs a keyword with its compiled matcher. The keyword travels
// with the pattern so a match always reports the label it was built from.
type Pattern struct {
	Keyword string
	re      *regexp.Regexp
}

// BuildPatterns compiles one case-insensitive pattern per keyword. With
// wholeWords set, matches are anchored at word boundaries; otherwise any
// substring occurrence counts. Blank keywords are skipped.
func BuildPatterns(keywords []string, wholeWords bool) []Pattern {
	patterns := make([]Pattern, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		expr := regexp.QuoteMeta(kw)
		if wholeWords {
			expr = `\b` + expr + `\b`
		}
		patterns = append(patterns, Pattern{
			Keyword: kw,
			re:      regexp.MustCompile(`(?i)` + expr),
		})
	}
	return patterns
}

// Match returns the keywords whose patterns occur in the abstract. Order
// follows the pattern list, and keywords that lowercase to the same
// string are reported once, keeping the first spelling encountered.
func Match(abstract string, patterns []Pattern) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		if !p.re.MatchString(abstract) {
			continue
		}
		key := strings.ToLower(p.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, p.Keyword)
	}
	return tags
}
