package analyzer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"repo-analyzer/analyzer"
	"repo-analyzer/config"
	"repo-analyzer/logging"

	"github.com/stretchr/testify/require"
)

// fakeGitHub serves the four endpoints an analysis touches. Any path listed
// in fail answers with that status.
type fakeGitHub struct {
	repo      map[string]any
	languages string
	branchSHA string
	tree      []map[string]any
	truncated bool
	fail      map[string]int

	mu       sync.Mutex
	requests []string
	auth     []string
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{
		repo: map[string]any{
			"full_name":         "octocat/hello-world",
			"description":       "My first repository",
			"default_branch":    "trunk",
			"stargazers_count":  1500,
			"forks_count":       230,
			"open_issues_count": 12,
		},
		languages: `{"Go": 48213, "Shell": 1024, "Dockerfile": 310}`,
		branchSHA: "7fd1a60b01f91b314f59955a4e4d4e80d8edf11d",
		tree: []map[string]any{
			{"path": "README.md", "type": "blob"},
			{"path": "cmd", "type": "tree"},
			{"path": "cmd/main.go", "type": "blob"},
			{"path": "internal", "type": "tree"},
			{"path": "internal/app.go", "type": "blob"},
		},
		fail: map[string]int{},
	}
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	f.mu.Unlock()

	if code, ok := f.fail[r.URL.Path]; ok {
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"message": http.StatusText(code)})
		return
	}

	const prefix = "/repos/octocat/hello-world"
	path := r.URL.Path
	switch {
	case path == prefix:
		json.NewEncoder(w).Encode(f.repo)
	case path == prefix+"/languages":
		w.Write([]byte(f.languages))
	case strings.HasPrefix(path, prefix+"/branches/"):
		json.NewEncoder(w).Encode(map[string]any{
			"name":   strings.TrimPrefix(path, prefix+"/branches/"),
			"commit": map[string]any{"sha": f.branchSHA},
		})
	case strings.HasPrefix(path, prefix+"/git/trees/") && r.URL.Query().Get("recursive") == "1":
		json.NewEncoder(w).Encode(map[string]any{
			"sha":       strings.TrimPrefix(path, prefix+"/git/trees/"),
			"tree":      f.tree,
			"truncated": f.truncated,
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	}
}

func (f *fakeGitHub) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func newAnalyzer(t *testing.T, fake *fakeGitHub, token string) (*analyzer.Analyzer, string) {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.APIBaseURL = server.URL
	cfg.AuthToken = token

	a, err := analyzer.New(cfg, logging.Discard())
	require.NoError(t, err)
	return a, server.URL
}

func statuses(events []analyzer.Event) []analyzer.StatusEvent {
	var out []analyzer.StatusEvent
	for _, ev := range events {
		if ev.Status != nil {
			out = append(out, *ev.Status)
		}
	}
	return out
}

func citations(events []analyzer.Event) []analyzer.CitationEvent {
	var out []analyzer.CitationEvent
	for _, ev := range events {
		if ev.Citation != nil {
			out = append(out, *ev.Citation)
		}
	}
	return out
}
