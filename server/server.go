// Package server exposes the analyzer to a host runtime over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"repo-analyzer/analyzer"
)

// Analyzer is the part of *analyzer.Analyzer the handlers use.
type Analyzer interface {
	Analyze(ctx context.Context, identifier string, sink analyzer.Sink) string
}

// Handler translates HTTP requests into analyzer calls.
type Handler struct {
	analyzer Analyzer
	log      *slog.Logger
}

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Repository string `json:"repository" binding:"required"`
}

// AnalyzeResponse carries the tool output and every event the analysis emitted.
type AnalyzeResponse struct {
	Result  string           `json:"result"`
	Success bool             `json:"success"`
	Events  []analyzer.Event `json:"events"`
}

// NewRouter builds a gin engine with the tool routes mounted.
func NewRouter(a Analyzer, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	RegisterRoutes(r, a, log)
	return r
}

// RegisterRoutes mounts the tool API onto the given Gin engine.
func RegisterRoutes(r *gin.Engine, a Analyzer, log *slog.Logger) {
	h := &Handler{analyzer: a, log: log}

	r.GET("/healthz", h.Health)
	r.GET("/v1/tool", h.Tool)
	r.POST("/v1/analyze", h.Analyze)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Tool(c *gin.Context) {
	c.JSON(http.StatusOK, Descriptor())
}

// Analyze runs one analysis. An analysis failure is still a 200: the result
// string carries the error text, as the host runtime expects.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must contain a repository field"})
		return
	}

	rec := &analyzer.Recorder{}
	result := h.analyzer.Analyze(c.Request.Context(), req.Repository, rec)
	success := !strings.HasPrefix(result, analyzer.ErrorPrefix)
	if !success {
		h.log.Info("analysis returned failure", "repo", req.Repository)
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Result:  result,
		Success: success,
		Events:  rec.Events(),
	})
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
