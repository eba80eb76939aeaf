package gh

import (
	"context"
	"encoding/json"
	"fmt"

	"repo-analyzer/model"
)

type Item struct {
	Type string `json:"type"`
	Path string `json:"path"`
	SHA  string `json:"sha,omitempty"`
	Size int64  `json:"size,omitempty"`
}

type TreeResponse struct {
	SHA       *string `json:"sha,omitempty"`
	Tree      []Item  `json:"tree"`
	Truncated bool    `json:"truncated"`
}

type branchResponse struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// Repository fetches the repository metadata with defaults applied to absent fields.
func (c *Client) Repository(ctx context.Context, id model.RepoIdentifier) (model.RepositoryMetadata, error) {
	body, err := c.API(ctx, c.RepoURL(id))
	if err != nil {
		return model.RepositoryMetadata{}, err
	}
	return model.DecodeRepositoryMetadata(body, id.String())
}

// Languages fetches the per-language byte counts in upstream order.
func (c *Client) Languages(ctx context.Context, id model.RepoIdentifier) (model.LanguageStats, error) {
	body, err := c.API(ctx, c.RepoURL(id)+"/languages")
	if err != nil {
		return nil, err
	}

	var stats model.LanguageStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode language statistics: %w", err)
	}
	return stats, nil
}

// BranchCommitSHA returns the tip commit of branch, or "" when the response has none.
func (c *Client) BranchCommitSHA(ctx context.Context, id model.RepoIdentifier, branch string) (string, error) {
	body, err := c.API(ctx, fmt.Sprintf("%s/branches/%s", c.RepoURL(id), branch))
	if err != nil {
		return "", err
	}

	var br branchResponse
	if err := json.Unmarshal(body, &br); err != nil {
		return "", fmt.Errorf("decode branch: %w", err)
	}
	return br.Commit.SHA, nil
}

// ViaTreesAPI lists the recursive tree at sha and counts its blob entries.
// Directory ("tree") and submodule ("commit") entries are not counted.
func (c *Client) ViaTreesAPI(ctx context.Context, id model.RepoIdentifier, sha string) (model.FileTreeSummary, error) {
	body, err := c.API(ctx, fmt.Sprintf("%s/git/trees/%s?recursive=1", c.RepoURL(id), sha))
	if err != nil {
		return model.FileTreeSummary{}, err
	}

	var treeResponse TreeResponse
	if err := json.Unmarshal(body, &treeResponse); err != nil {
		return model.FileTreeSummary{}, fmt.Errorf("decode tree: %w", err)
	}

	summary := model.FileTreeSummary{Truncated: treeResponse.Truncated}
	for _, item := range treeResponse.Tree {
		if item.Type == "blob" {
			summary.FileCount++
		}
	}

	if summary.Truncated {
		c.log.Warn("tree listing truncated, file count is approximate",
			"repo", id.String(),
			"sha", sha,
			"entries", len(treeResponse.Tree),
		)
	}

	return summary, nil
}
