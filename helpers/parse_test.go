package helpers_test

import (
	"testing"

	"repo-analyzer/helpers"
	"repo-analyzer/model"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoIdentifier(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    model.RepoIdentifier
		expectError bool
	}{
		{
			name:     "owner and repo",
			input:    "octocat/hello-world",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:     "git suffix",
			input:    "octocat/hello-world.git",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:     "dots in name",
			input:    "golang/go.dev",
			expected: model.RepoIdentifier{Owner: "golang", Repository: "go.dev"},
		},
		{
			name:     "surrounding whitespace",
			input:    "  octocat/hello-world  ",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:     "github URL",
			input:    "https://github.com/octocat/hello-world",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:     "github tree URL",
			input:    "https://github.com/octocat/hello-world/tree/main/docs",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:     "github clone URL",
			input:    "https://github.com/octocat/hello-world.git",
			expected: model.RepoIdentifier{Owner: "octocat", Repository: "hello-world"},
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "missing repo",
			input:       "octocat",
			expectError: true,
		},
		{
			name:        "too many segments",
			input:       "octocat/hello/world",
			expectError: true,
		},
		{
			name:        "empty owner",
			input:       "/hello-world",
			expectError: true,
		},
		{
			name:        "unsupported host",
			input:       "https://example.com/octocat/hello-world",
			expectError: true,
		},
		{
			name:        "URL without repo",
			input:       "https://github.com/octocat",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := helpers.ParseRepoIdentifier(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
			assert.Equal(t, tt.expected.Owner+"/"+tt.expected.Repository, id.String())
		})
	}
}
