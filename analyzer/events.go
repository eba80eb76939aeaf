package analyzer

import (
	"context"
	"sync"
)

const (
	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
)

// StatusEvent reports progress to the host runtime.
type StatusEvent struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// CitationEvent attaches a source document to the displayed output.
type CitationEvent struct {
	DocumentContent string `json:"documentContent"`
	SourceURL       string `json:"sourceUrl"`
	SourceTitle     string `json:"sourceTitle"`
}

// Sink receives progress and citation events from an analysis.
type Sink interface {
	Status(ctx context.Context, ev StatusEvent)
	Citation(ctx context.Context, ev CitationEvent)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Status(context.Context, StatusEvent)     {}
func (NopSink) Citation(context.Context, CitationEvent) {}

// Event is one recorded sink call. Exactly one of Status and Citation is set.
type Event struct {
	Type     string         `json:"type"`
	Status   *StatusEvent   `json:"status,omitempty"`
	Citation *CitationEvent `json:"citation,omitempty"`
}

const (
	EventTypeStatus   = "status"
	EventTypeCitation = "citation"
)

// Recorder is a Sink that keeps every event in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Status(_ context.Context, ev StatusEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Type: EventTypeStatus, Status: &ev})
}

func (r *Recorder) Citation(_ context.Context, ev CitationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Type: EventTypeCitation, Citation: &ev})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func status(description string, done bool) StatusEvent {
	s := StatusInProgress
	if done {
		s = StatusComplete
	}
	return StatusEvent{Status: s, Description: description, Done: done}
}
