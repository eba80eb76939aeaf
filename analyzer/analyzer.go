// Package analyzer collects metadata, language statistics and a file count for
// one repository and renders them as a single text report for a host runtime.
//
// An analysis is four sequential GET requests:
//
//	/repos/{owner}/{repo}
//	/repos/{owner}/{repo}/languages
//	/repos/{owner}/{repo}/branches/{default_branch}
//	/repos/{owner}/{repo}/git/trees/{sha}?recursive=1
//
// Any failure aborts the analysis and discards what was fetched so far.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"repo-analyzer/config"
	"repo-analyzer/gh"
	"repo-analyzer/helpers"
	"repo-analyzer/model"
)

const (
	msgFetchDetails   = "Fetching repository details for %s"
	msgFetchLanguages = "Fetching language statistics"
	msgFetchTree      = "Fetching repository file tree"
	msgComplete       = "Repository analysis complete"
)

// Analyzer runs repository analyses. The configuration is copied at
// construction, so one Analyzer may serve concurrent calls.
type Analyzer struct {
	cfg    config.Config
	client *gh.Client
	log    *slog.Logger
}

// New validates cfg and returns an Analyzer bound to it.
func New(cfg config.Config, log *slog.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{
		cfg:    cfg,
		client: gh.NewClient(cfg.APIBaseURL, cfg.AuthToken, cfg.Timeout(), log),
		log:    log,
	}, nil
}

// Config returns the configuration the Analyzer was built with.
func (a *Analyzer) Config() config.Config {
	return a.cfg
}

// Analyze runs an analysis and returns the host-facing string: the wrapped
// report on success, or "Error analyzing repository: ..." on failure. Failures
// are not wrapped in the instruction envelope. Analyze never returns an error.
func (a *Analyzer) Analyze(ctx context.Context, identifier string, sink Sink) string {
	if sink == nil {
		sink = NopSink{}
	}

	report, err := a.Run(ctx, identifier, sink)
	if err != nil {
		var failure *AnalysisFailure
		if !errors.As(err, &failure) {
			failure = &AnalysisFailure{Err: err}
		}
		msg := failure.Message()
		sink.Status(ctx, status(msg, true))
		return msg
	}

	block := Render(report)
	sink.Citation(ctx, CitationEvent{
		DocumentContent: block,
		SourceURL:       report.SourceURL,
		SourceTitle:     CitationTitle,
	})
	sink.Status(ctx, status(msgComplete, true))

	return Wrap(block)
}

// Run fetches everything for identifier and returns the collected report.
// Progress is reported to sink before each stage; the final completion or
// error status is left to the caller. Every error is an *AnalysisFailure.
func (a *Analyzer) Run(ctx context.Context, identifier string, sink Sink) (*model.Report, error) {
	if sink == nil {
		sink = NopSink{}
	}
	identifier = strings.TrimSpace(identifier)
	log := a.log.With("repo", identifier)

	sink.Status(ctx, status(fmt.Sprintf(msgFetchDetails, identifier), false))

	id, err := helpers.ParseRepoIdentifier(identifier)
	if err != nil {
		return nil, a.fail(log, StageIdentifier, err)
	}

	meta, err := a.client.Repository(ctx, id)
	if err != nil {
		return nil, a.fail(log, StageMetadata, err)
	}

	sink.Status(ctx, status(msgFetchLanguages, false))

	languages, err := a.client.Languages(ctx, id)
	if err != nil {
		return nil, a.fail(log, StageLanguages, err)
	}

	sink.Status(ctx, status(msgFetchTree, false))

	sha, err := a.client.BranchCommitSHA(ctx, id, meta.DefaultBranch)
	if err != nil {
		return nil, a.fail(log, StageBranch, err)
	}

	tree, err := a.client.ViaTreesAPI(ctx, id, sha)
	if err != nil {
		return nil, a.fail(log, StageTree, err)
	}

	log.Info("repository analyzed",
		"branch", meta.DefaultBranch,
		"sha", sha,
		"files", tree.FileCount,
		"languages", len(languages),
	)

	return &model.Report{
		Identifier: id,
		SourceURL:  a.client.RepoURL(id),
		Metadata:   meta,
		Languages:  languages,
		CommitSHA:  sha,
		Tree:       tree,
	}, nil
}

func (a *Analyzer) fail(log *slog.Logger, stage Stage, err error) *AnalysisFailure {
	log.Warn("repository analysis failed", "stage", string(stage), "error", err)
	return &AnalysisFailure{Stage: stage, Err: err}
}
