package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	// DefaultDescription replaces a missing or null upstream description.
	DefaultDescription = "No description"
	// DefaultBranch is used when the upstream metadata carries no default_branch.
	DefaultBranch = "main"
)

// RepositoryMetadata is the subset of the repository-info response the report uses.
type RepositoryMetadata struct {
	FullName       string
	Description    string
	DefaultBranch  string
	StarCount      int64
	ForkCount      int64
	OpenIssueCount int64
}

type repositoryPayload struct {
	FullName        *string `json:"full_name"`
	Description     *string `json:"description"`
	DefaultBranch   *string `json:"default_branch"`
	StargazersCount *int64  `json:"stargazers_count"`
	ForksCount      *int64  `json:"forks_count"`
	OpenIssuesCount *int64  `json:"open_issues_count"`
}

// DecodeRepositoryMetadata parses a repository-info body, filling every absent
// field with its default. fallbackName is used when full_name is missing.
func DecodeRepositoryMetadata(data []byte, fallbackName string) (RepositoryMetadata, error) {
	var p repositoryPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return RepositoryMetadata{}, fmt.Errorf("decode repository metadata: %w", err)
	}

	meta := RepositoryMetadata{
		FullName:      fallbackName,
		Description:   DefaultDescription,
		DefaultBranch: DefaultBranch,
	}
	if p.FullName != nil && *p.FullName != "" {
		meta.FullName = *p.FullName
	}
	if p.Description != nil && *p.Description != "" {
		meta.Description = *p.Description
	}
	if p.DefaultBranch != nil && *p.DefaultBranch != "" {
		meta.DefaultBranch = *p.DefaultBranch
	}
	if p.StargazersCount != nil {
		meta.StarCount = *p.StargazersCount
	}
	if p.ForksCount != nil {
		meta.ForkCount = *p.ForksCount
	}
	if p.OpenIssuesCount != nil {
		meta.OpenIssueCount = *p.OpenIssuesCount
	}
	return meta, nil
}

// LanguageBytes is one entry of the languages response.
type LanguageBytes struct {
	Name  string
	Bytes int64
}

// LanguageStats keeps the languages in the order the upstream API returned them.
type LanguageStats []LanguageBytes

// UnmarshalJSON decodes a JSON object of language -> byte count without
// losing key order.
func (s *LanguageStats) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("language statistics: expected object, got %v", tok)
	}

	stats := LanguageStats{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("language statistics: unexpected key %v", keyTok)
		}

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("language statistics: value for %q: %w", name, err)
		}
		count, err := n.Int64()
		if err != nil {
			return fmt.Errorf("language statistics: value for %q: %w", name, err)
		}
		if count < 0 {
			return fmt.Errorf("language statistics: negative byte count for %q", name)
		}
		stats = append(stats, LanguageBytes{Name: name, Bytes: count})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = stats
	return nil
}

// Map returns the statistics keyed by language name.
func (s LanguageStats) Map() map[string]int64 {
	m := make(map[string]int64, len(s))
	for _, l := range s {
		m[l.Name] = l.Bytes
	}
	return m
}

// FileTreeSummary is derived from a recursive tree listing.
type FileTreeSummary struct {
	FileCount int
	// Truncated is set when the upstream listing was cut short, making FileCount a lower bound.
	Truncated bool
}

// Report holds everything one analysis collected.
type Report struct {
	Identifier RepoIdentifier
	SourceURL  string
	Metadata   RepositoryMetadata
	Languages  LanguageStats
	CommitSHA  string
	Tree       FileTreeSummary
}
