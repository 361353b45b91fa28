package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/reverie/internal/metrics"
	"git.home.luguber.info/inful/reverie/internal/migrate"
)

// MigrateCmd implements the 'migrate' command.
type MigrateCmd struct {
	Source      string `short:"s" required:"" help:"Directory holding the posts to convert"`
	Output      string `short:"o" default:"src/content/blog" help:"Directory the converted .mdx posts are written to"`
	ImageDir    string `name:"image-dir" default:"public/images/blog" help:"Directory referenced images are copied to"`
	ImagePrefix string `name:"image-prefix" default:"/images/blog/" help:"URL prefix for rewritten relative image links"`
	DryRun      bool   `name:"dry-run" help:"Convert and report without writing any files"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format when done"`
}

func (m *MigrateCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if m.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	report, err := migrate.Run(ctx, migrate.Options{
		SourceDir:   m.Source,
		OutputDir:   m.Output,
		ImageDir:    m.ImageDir,
		ImagePrefix: m.ImagePrefix,
		DryRun:      m.DryRun,
		Recorder:    recorder,
	})
	if err != nil {
		return err
	}
	if prom != nil {
		if err := prom.WriteTextfile(m.MetricsFile); err != nil {
			return err
		}
	}

	out := g.stdout()
	for _, f := range report.Files {
		switch {
		case f.Err != nil:
			fmt.Fprintf(out, "  FAIL %s: %v\n", f.Source, f.Err)
		case m.DryRun:
			fmt.Fprintf(out, "  would write %s -> %s\n", f.Source, f.Output)
		default:
			fmt.Fprintf(out, "  ok   %s -> %s\n", f.Source, f.Output)
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(out, "  warn %s: %v\n", f.Source, w)
		}
	}
	fmt.Fprintf(out, "Found %d, migrated %d, failed %d\n", report.Found, report.Migrated, report.Failed)
	return nil
}
