package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"sampleview/internal/layout"
	"sampleview/internal/samples"
)

// loadSamplesCmd rescans the results folder off the update loop.
// Thumbnail resolution failures are not fatal for a listing; the entry
// simply has no preview.
func (a *AppModel) loadSamplesCmd() tea.Cmd {
	cfg, tracer := a.Cfg, a.Tracer
	return func() tea.Msg {
		_, span := tracer.StartSpan(context.Background(), "samples.list",
			attribute.String("results_folder", cfg.ResultsFolder))
		defer span.End()

		found, err := samples.List(cfg.ResultsFolder, cfg.FilterResultsByExistanceOf)
		if err != nil {
			return SamplesLoadedMsg{Err: err}
		}
		entries := make([]SampleEntry, 0, len(found))
		for _, s := range found {
			thumb, _ := samples.Thumbnail(s, cfg.ThumbnailPath)
			entries = append(entries, SampleEntry{Sample: s, Thumbnail: thumb})
		}
		span.SetAttributes(attribute.Int("samples", len(entries)))
		return SamplesLoadedMsg{Entries: entries}
	}
}

// resolveSampleCmd runs one full layout resolution pass for a sample.
func (a *AppModel) resolveSampleCmd(sample samples.Sample) tea.Cmd {
	cfg, tracer, strict := a.Cfg, a.Tracer, a.Strict
	return func() tea.Msg {
		_, span := tracer.StartSpan(context.Background(), "layout.resolve",
			attribute.String("sample", sample.Name),
			attribute.Bool("strict", strict))
		defer span.End()

		resolved, failures := layout.Resolve(cfg.Layout, sample.Dir, layout.Options{Strict: strict})
		span.SetAttributes(attribute.Int("failures", len(failures)))
		return SampleResolvedMsg{Sample: sample, Resolved: resolved, Failures: failures}
	}
}
