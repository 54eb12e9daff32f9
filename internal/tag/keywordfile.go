// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tag

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// KeywordFile is the on-disk representation of a tagging vocabulary.
// Editing a saved file and rerunning the fetch changes the keywords
// without recompiling.
type KeywordFile struct {
	Keywords   []string `yaml:"keywords"`
	WholeWords bool     `yaml:"whole_words"`
}

// WriteKeywordFile saves a keyword list to a YAML file.
func WriteKeywordFile(path string, keywords []string, wholeWords bool) error {
	kf := KeywordFile{Keywords: keywords, WholeWords: wholeWords}
	data, err := yaml.Marshal(&kf)
	if err != nil {
		return fmt.Errorf("marshaling keyword file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadKeywordFile loads a previously saved keyword list from disk.
func ReadKeywordFile(path string) (*KeywordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword file: %w", err)
	}
	var kf KeywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parsing keyword file: %w", err)
	}
	return &kf, nil
}
