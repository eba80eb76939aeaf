package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"repo-analyzer/analyzer"
)

// analysisSteps is the number of in-progress statuses an analysis emits.
const analysisSteps = 3

const barTemplate = `{{string . "step"}} {{counters . }} {{bar . }}`

// consoleSink renders analysis progress on a terminal: a step bar while the
// requests run, then a single success or error line.
type consoleSink struct {
	bar     *pb.ProgressBar
	started bool

	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

func newConsoleSink(w io.Writer) *consoleSink {
	bar := pb.ProgressBarTemplate(barTemplate).New(analysisSteps)
	bar.SetWriter(w)

	return &consoleSink{
		bar:     bar,
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		failure: pterm.Error.WithWriter(w),
	}
}

func (s *consoleSink) Status(_ context.Context, ev analyzer.StatusEvent) {
	if !ev.Done {
		s.bar.Set("step", ev.Description)
		if !s.started {
			s.bar.Start()
			s.started = true
			return
		}
		s.bar.Increment()
		return
	}

	failed := strings.HasPrefix(ev.Description, analyzer.ErrorPrefix)
	if s.started {
		if !failed {
			s.bar.SetCurrent(analysisSteps)
		}
		s.bar.Finish()
		s.started = false
	}

	if failed {
		s.failure.Println(ev.Description)
		return
	}
	s.success.Println(ev.Description)
}

func (s *consoleSink) Citation(_ context.Context, ev analyzer.CitationEvent) {
	s.info.Printfln("%s: %s", ev.SourceTitle, ev.SourceURL)
}
