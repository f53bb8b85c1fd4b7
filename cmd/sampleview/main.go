package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sampleview/internal/config"
	"sampleview/internal/samples"
	"sampleview/internal/telemetry"
	"sampleview/internal/ui"
)

var strict bool

var rootCmd = &cobra.Command{
	Use:   "sampleview <config.yaml>",
	Short: "Browse and inspect result samples with a configurable layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}

		tracer, err := telemetry.New(cmd.Context())
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			tracer.Shutdown(ctx)
		}()

		// Config and listing failures affect the whole run and surface as
		// startup failures, never as placeholder UI.
		found, err := samples.List(cfg.ResultsFolder, cfg.FilterResultsByExistanceOf)
		if err != nil {
			return err
		}
		entries := make([]ui.SampleEntry, 0, len(found))
		for _, s := range found {
			thumb, _ := samples.Thumbnail(s, cfg.ThumbnailPath)
			entries = append(entries, ui.SampleEntry{Sample: s, Thumbnail: thumb})
		}

		model := ui.NewAppModel(cfg, tracer, entries, strict).AsTeaModel()
		p := tea.NewProgram(model, ui.ProgramOptions(cfg)...)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run viewer: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false, "abort a sample's render on the first node failure")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
