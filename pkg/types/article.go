// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ncomms-fetch pipeline.
package types

// Article holds normalized metadata for one retrieved publication.
// Records live in memory for a single run; a run produces exactly one
// output file and nothing survives past writing it.
type Article struct {
	// PublicationDate is the resolved publication date in ISO form
	// (YYYY-MM-DD), or empty when the source provides no usable date.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Title is the first title variant returned by the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is plain text: markup stripped, entities decoded,
	// whitespace collapsed to single spaces.
	Abstract string `json:"abstract" yaml:"abstract"`

	// DOI is the article's DOI as returned by the source; may be empty.
	DOI string `json:"doi" yaml:"doi"`

	// URL is the article's landing page; may be empty.
	URL string `json:"url" yaml:"url"`

	// LastAuthor is the formatted name of the final author in source
	// order, or empty when the author list is missing.
	LastAuthor string `json:"last_author" yaml:"last_author"`

	// Tags lists the configured keywords found in the abstract, in
	// keyword-list order with case-insensitive duplicates removed.
	Tags []string `json:"tags" yaml:"tags"`
}
