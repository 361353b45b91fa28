// Package site writes the page data for a build: theme stylesheet, localized
// strings, per-post JSON, the post index, the RSS feed and the sitemap.
package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/reverie/internal/config"
	"git.home.luguber.info/inful/reverie/internal/content"
	"git.home.luguber.info/inful/reverie/internal/dates"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/logfields"
	"git.home.luguber.info/inful/reverie/internal/metrics"
)

// Status is the overall outcome of a build.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result summarizes one build.
type Result struct {
	Status    Status
	Published int
	Drafts    int
	Files     []string
	StartTime time.Time
	Duration  time.Duration
}

// Builder generates the output directory from posts and configuration.
type Builder struct {
	cfg      *config.Config
	recorder metrics.Recorder
	clock    clockwork.Clock
	loader   content.Loader
}

// Option configures a Builder.
type Option func(*Builder)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithClock sets the clock used for relative dates and the feed build date.
func WithClock(c clockwork.Clock) Option {
	return func(b *Builder) { b.clock = c }
}

// WithLoader replaces the content loader.
func WithLoader(l content.Loader) Option {
	return func(b *Builder) { b.loader = l }
}

// NewBuilder creates a Builder for cfg.
func NewBuilder(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run loads posts from the configured content directory and builds.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	records, err := b.loader.Load(b.cfg.Content.Directory)
	if err != nil {
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return &Result{Status: StatusFailed, StartTime: b.clock.Now()}, err
	}
	return b.Build(ctx, records)
}

// state is shared between the stages of one build.
type state struct {
	outDir    string
	site      config.Site
	formatter *dates.Formatter
	records   []content.Record
	published []content.Record
	pages     []PostPage
	files     []string
}

type stage struct {
	name string
	run  func(context.Context, *state) error
}

// Build writes all outputs for records. Drafts are counted but not rendered.
func (b *Builder) Build(ctx context.Context, records []content.Record) (*Result, error) {
	start := b.clock.Now()
	result := &Result{StartTime: start}

	fail := func(err error) (*Result, error) {
		result.Status = StatusFailed
		result.Duration = b.clock.Since(start)
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return result, err
	}

	if b.cfg == nil {
		return fail(foundationerrors.InternalError("builder has no configuration").Build())
	}

	site := b.cfg.Site()
	formatter, err := dates.NewFormatter(site.Language(), dates.WithClock(b.clock))
	if err != nil {
		return fail(err)
	}

	st := &state{
		outDir:    b.cfg.Output.Directory,
		site:      site,
		formatter: formatter,
		records:   records,
		published: content.Published(records),
	}
	content.SortNewestFirst(st.published)
	result.Published = len(st.published)
	result.Drafts = len(records) - len(st.published)
	b.recorder.SetPosts(metrics.PostsPublished, result.Published)
	b.recorder.SetPosts(metrics.PostsDraft, result.Drafts)

	stages := []stage{
		{"prepare_output", b.prepareOutput},
		{"theme", b.writeTheme},
		{"i18n", b.writeTranslations},
		{"site", b.writeSiteData},
		{"posts", b.writePosts},
		{"index", b.writeIndex},
		{"feed", b.writeFeed},
		{"sitemap", b.writeSitemap},
	}
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return fail(foundationerrors.BuildError("build canceled").
				WithCause(err).
				WithContext("stage", s.name).
				Build())
		}
		stageStart := b.clock.Now()
		err := s.run(ctx, st)
		b.recorder.ObserveStageDuration(s.name, b.clock.Since(stageStart))
		if err != nil {
			b.recorder.IncStageResult(s.name, metrics.ResultFatal)
			slog.Error("Build stage failed", logfields.Stage(s.name), logfields.Error(err))
			return fail(err)
		}
		b.recorder.IncStageResult(s.name, metrics.ResultSuccess)
		slog.Debug("Build stage complete", logfields.Stage(s.name), logfields.Duration(b.clock.Since(stageStart)))
	}

	result.Status = StatusSuccess
	result.Files = st.files
	result.Duration = b.clock.Since(start)
	b.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	b.recorder.ObserveBuildDuration(result.Duration)
	slog.Info("Build complete",
		logfields.Count(result.Published),
		logfields.Output(st.outDir),
		logfields.Duration(result.Duration))
	return result, nil
}

func (b *Builder) prepareOutput(_ context.Context, st *state) error {
	abs, err := filepath.Abs(st.outDir)
	if err != nil {
		return fsError(err, "resolve output directory", st.outDir)
	}
	if abs == filepath.Dir(abs) {
		return foundationerrors.ConfigError("refusing to use filesystem root as output directory").
			WithContext("path", st.outDir).
			Build()
	}
	if b.cfg.Output.Clean {
		if err := os.RemoveAll(abs); err != nil {
			return fsError(err, "clean output directory", abs)
		}
	}
	return mkdir(filepath.Join(st.outDir, postsDir))
}
