package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ncomms-fetch/0.1 (mailto:someone@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the retrieval stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is the contact address sent as the mailto query parameter
	// and embedded in the User-Agent header.
	Mailto string `json:"mailto" yaml:"mailto"`

	// Rows is the page size for paginated requests (default 100).
	Rows int `json:"rows" yaml:"rows"`

	// MaxAttempts is the attempt budget per page fetch (default 5).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// Backoff is the base retry delay; the wait before attempt n+1 is
	// n times this value (default 3s).
	Backoff time.Duration `json:"backoff" yaml:"backoff"`
}

// TagConfig holds the keyword list and matching mode for the tagging stage.
type TagConfig struct {
	// Keywords is the ordered keyword list matched against abstracts.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// WholeWords selects word-boundary matching instead of substring
	// matching, applied uniformly to all keywords.
	WholeWords bool `json:"whole_words" yaml:"whole_words"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutDir is the directory the CSV file is written to (default ".").
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Tag    TagConfig    `json:"tag" yaml:"tag"`
	Export ExportConfig `json:"export" yaml:"export"`
}
