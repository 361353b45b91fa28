package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/reverie/internal/logfields"
	"git.home.luguber.info/inful/reverie/internal/metrics"
	"git.home.luguber.info/inful/reverie/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Override output.directory from the configuration"`
	Watch       bool   `short:"w" help:"Rebuild whenever the content directory changes"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format after each build"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if b.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}
	builder := site.NewBuilder(cfg, site.WithRecorder(recorder))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	build := func(ctx context.Context) error {
		res, err := builder.Run(ctx)
		if prom != nil {
			if werr := prom.WriteTextfile(b.MetricsFile); werr != nil {
				slog.Warn("Failed to write metrics file", logfields.Path(b.MetricsFile), logfields.Error(werr))
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(g.stdout(), "Built %d posts (%d drafts skipped) into %s in %s\n",
			res.Published, res.Drafts, cfg.Output.Directory, res.Duration)
		return nil
	}

	if err := build(ctx); err != nil {
		if !b.Watch {
			return err
		}
		slog.Warn("Initial build failed; waiting for changes", logfields.Error(err))
	}
	if !b.Watch {
		return nil
	}

	w := &site.Watcher{Dirs: []string{cfg.Content.Directory}, Rebuild: build}
	return w.Run(ctx)
}
