package helpers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"repo-analyzer/model"
)

var (
	// owner/repo with an optional .git suffix
	identifierRegex = regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+?)(?:\.git)?$`)
	// /owner/repo followed by anything (tree/..., blob/..., pulls)
	repoPathRegex = regexp.MustCompile(`^/([^/]+)/([^/]+?)(?:\.git)?(?:/.*)?$`)
)

// ParseRepoIdentifier accepts "owner/repo", "owner/repo.git" or a github.com URL
// and returns the owner and repository name.
func ParseRepoIdentifier(s string) (model.RepoIdentifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.RepoIdentifier{}, fmt.Errorf("empty repository identifier")
	}

	if strings.Contains(s, "://") {
		return parseRepoURL(s)
	}

	match := identifierRegex.FindStringSubmatch(strings.TrimSuffix(s, "/"))
	if len(match) != 3 || !validSegment(match[1]) || !validSegment(match[2]) {
		return model.RepoIdentifier{}, fmt.Errorf("invalid repository identifier: %q (expected owner/repo)", s)
	}

	return model.RepoIdentifier{Owner: match[1], Repository: match[2]}, nil
}

func parseRepoURL(urlStr string) (model.RepoIdentifier, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return model.RepoIdentifier{}, fmt.Errorf("invalid URL: %s", urlStr)
	}

	host := strings.ToLower(parsedURL.Host)
	if host != "github.com" && host != "www.github.com" {
		return model.RepoIdentifier{}, fmt.Errorf("unsupported host: %s\nSupported: github.com", host)
	}

	match := repoPathRegex.FindStringSubmatch(parsedURL.Path)
	if len(match) != 3 || !validSegment(match[1]) || !validSegment(match[2]) {
		return model.RepoIdentifier{}, fmt.Errorf(
			"invalid GitHub URL format: %s\nExpected: https://github.com/owner/repo",
			urlStr,
		)
	}

	return model.RepoIdentifier{Owner: match[1], Repository: match[2]}, nil
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}
