// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tag

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMatchSubstring(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		abstract string
		want     []string
	}{
		{
			"case-insensitive duplicates collapse",
			[]string{"DNA", "dna", "gene"},
			"DNA editing uses DNA and genes",
			[]string{"DNA", "gene"},
		},
		{
			"substring reaches inside words",
			[]string{"DNA"},
			"We sequenced cDNA libraries",
			[]string{"DNA"},
		},
		{
			"case-insensitive match",
			[]string{"crispr"},
			"CRISPR-Cas9 systems cut DNA",
			[]string{"crispr"},
		},
		{
			"multi-word keyword",
			[]string{"gene editing", "proteomics"},
			"Advances in gene editing of stem cells",
			[]string{"gene editing"},
		},
		{
			"order follows keyword list",
			[]string{"chromatin", "methylation", "histone modification"},
			"Histone modification shapes chromatin through methylation",
			[]string{"chromatin", "methylation", "histone modification"},
		},
		{
			"no matches",
			[]string{"CRISPR"},
			"A study of ocean acidification",
			nil,
		},
		{
			"empty abstract",
			[]string{"CRISPR"},
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := BuildPatterns(tt.keywords, false)
			got := Match(tt.abstract, patterns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchWholeWords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		abstract string
		want     []string
	}{
		{
			"exact word matches",
			[]string{"gene"},
			"A single gene was silenced",
			[]string{"gene"},
		},
		{
			"no match inside longer words",
			[]string{"gene"},
			"Polygenes and genomes",
			nil,
		},
		{
			"no match as prefix fragment",
			[]string{"DNA"},
			"We sequenced cDNA libraries",
			nil,
		},
		{
			"hyphenated keyword",
			[]string{"Hi-C"},
			"Hi-C maps of the nucleus",
			[]string{"Hi-C"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := BuildPatterns(tt.keywords, true)
			got := Match(tt.abstract, patterns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPatternsSkipsBlanks(t *testing.T) {
	patterns := BuildPatterns([]string{"", "   ", "DNA", " CRISPR "}, false)
	if len(patterns) != 2 {
		t.Fatalf("got %d patterns, want 2", len(patterns))
	}
	if patterns[0].Keyword != "DNA" || patterns[1].Keyword != "CRISPR" {
		t.Errorf("keywords = %q, %q", patterns[0].Keyword, patterns[1].Keyword)
	}
}

func TestBuildPatternsEscapesMetacharacters(t *testing.T) {
	patterns := BuildPatterns([]string{"Cas9 (engineered)"}, false)
	if got := Match("Structure of Cas9 (engineered) variants", patterns); len(got) != 1 {
		t.Errorf("Match() = %v, want one match", got)
	}
	if got := Match("Cas9 engineered variants", patterns); got != nil {
		t.Errorf("Match() = %v, want nil for non-literal text", got)
	}
}

func TestDefaultKeywordsMatchOnce(t *testing.T) {
	// The default list repeats a few entries. Matching must still report
	// each keyword a single time.
	patterns := BuildPatterns(DefaultKeywords, DefaultWholeWords)
	got := Match("CRISPR and TALENs enable gene editing", patterns)

	counts := make(map[string]int)
	for _, tag := range got {
		counts[tag]++
	}
	for tag, n := range counts {
		if n > 1 {
			t.Errorf("keyword %q reported %d times", tag, n)
		}
	}
	if counts["CRISPR"] != 1 || counts["TALENs"] != 1 {
		t.Errorf("expected CRISPR and TALENs in %v", got)
	}
}

func TestKeywordFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	keywords := []string{"gene editing", "CRISPR", "CRISPR", "Hi-C"}

	if err := WriteKeywordFile(path, keywords, true); err != nil {
		t.Fatalf("WriteKeywordFile() error: %v", err)
	}
	kf, err := ReadKeywordFile(path)
	if err != nil {
		t.Fatalf("ReadKeywordFile() error: %v", err)
	}

	if !reflect.DeepEqual(kf.Keywords, keywords) {
		t.Errorf("Keywords = %v, want %v", kf.Keywords, keywords)
	}
	if !kf.WholeWords {
		t.Error("WholeWords = false, want true")
	}
}

func TestReadKeywordFileMissing(t *testing.T) {
	_, err := ReadKeywordFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestReadKeywordFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("keywords: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadKeywordFile(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
