package migrate

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/reverie/internal/foundation"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/logfields"
	"git.home.luguber.info/inful/reverie/internal/metrics"
)

// SourceExtensions lists the file types picked up from the source directory.
var SourceExtensions = []string{".md", ".mdx", ".txt"}

// Options configures a migration run.
type Options struct {
	SourceDir string
	OutputDir string
	// ImageDir receives copies of relative images that exist next to the source post.
	ImageDir    string
	ImagePrefix string
	DryRun      bool
	Clock       clockwork.Clock
	Recorder    metrics.Recorder
}

var optionValidators = foundation.NewValidatorChain(
	foundation.Field(func(o Options) string { return o.SourceDir }, foundation.Required("source")),
	foundation.Field(func(o Options) string { return o.OutputDir }, foundation.Required("output")),
)

// FileResult is the outcome for one source file. Warnings hold images that
// could not be copied; the post itself was still written.
type FileResult struct {
	Source   string
	Output   string
	Slug     string
	Err      error
	Warnings []error
}

// Report summarizes a migration run.
type Report struct {
	Found    int
	Migrated int
	Failed   int
	Files    []FileResult
}

// Run converts every post under SourceDir and writes <slug>.mdx into OutputDir.
// A file that fails is logged and counted; it does not stop the run.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if err := optionValidators.Validate(opts).ToError(); err != nil {
		return nil, err
	}

	files, err := findSources(opts.SourceDir)
	if err != nil {
		return nil, err
	}
	report := &Report{Found: len(files)}
	if len(files) == 0 {
		slog.Warn("No posts found in source directory", logfields.Path(opts.SourceDir))
		return report, nil
	}

	if !opts.DryRun {
		for _, dir := range []string{opts.OutputDir, opts.ImageDir} {
			if dir == "" {
				continue
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "create output directory").
					Fatal().
					WithContext("path", dir).
					Build()
			}
		}
	}

	conv := Converter{Now: opts.Clock.Now, ImagePrefix: opts.ImagePrefix}
	written := map[string]string{}
	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := migrateFile(conv, opts, src, written)
		report.Files = append(report.Files, res)
		opts.Recorder.IncMigrationResult(res.Err == nil)
		if res.Err != nil {
			report.Failed++
			slog.Error("Failed to migrate post", logfields.Path(src), logfields.Error(res.Err))
			continue
		}
		report.Migrated++
		slog.Info("Migrated post", logfields.Path(src), logfields.Slug(res.Slug), logfields.Output(res.Output))
		for _, w := range res.Warnings {
			slog.Warn("Image not copied", logfields.Path(src), logfields.Error(w))
		}
	}
	return report, nil
}

func migrateFile(conv Converter, opts Options, src string, written map[string]string) FileResult {
	res := FileResult{Source: src}
	data, err := os.ReadFile(src)
	if err != nil {
		res.Err = foundationerrors.FileSystemError("read source").
			WithSeverity(foundationerrors.SeverityError).
			WithCause(err).
			WithContext("path", src).
			Build()
		return res
	}
	post, err := conv.Convert(src, data)
	if err != nil {
		res.Err = foundationerrors.WrapError(err, foundationerrors.CategoryMigration, "convert post").
			WithContext("path", src).
			Build()
		return res
	}
	res.Slug = post.Slug
	if prev, dup := written[post.Slug]; dup {
		res.Err = foundationerrors.MigrationError("duplicate slug").
			WithContextMap(foundationerrors.ErrorContext{"slug": post.Slug, "path": src, "first": prev}).
			Build()
		return res
	}

	out, err := post.Render()
	if err != nil {
		res.Err = foundationerrors.WrapError(err, foundationerrors.CategoryMigration, "render post").Build()
		return res
	}
	res.Output = filepath.Join(opts.OutputDir, post.Slug+".mdx")
	written[post.Slug] = src
	if opts.DryRun {
		return res
	}
	if err := os.WriteFile(res.Output, out, 0o644); err != nil {
		res.Err = foundationerrors.FileSystemError("write post").
			WithSeverity(foundationerrors.SeverityError).
			WithCause(err).
			WithContext("path", res.Output).
			Build()
		return res
	}
	if opts.ImageDir != "" {
		res.Warnings = copyImages(filepath.Dir(src), opts.ImageDir, post.Images)
	}
	return res
}

func findSources(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, foundationerrors.ValidationError("source directory does not exist").
			WithContext("path", dir).
			WithCause(err).
			Build()
	}
	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Cannot read directory entry", logfields.Path(path), logfields.Error(err))
			return nil
		}
		if !d.IsDir() && slices.Contains(SourceExtensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// copyImages copies relative images that exist beside the post into imageDir.
// Images escaping the post directory, missing or failing to copy are skipped
// and returned as warnings.
func copyImages(srcDir, imageDir string, images []string) []error {
	var warnings []error
	for _, rel := range images {
		ctx := foundationerrors.ErrorContext{"image": rel, "dir": srcDir}
		clean := filepath.Clean(filepath.FromSlash(rel))
		if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
			warnings = append(warnings, foundationerrors.ValidationError("image is outside the post directory").
				Warning().
				WithContextMap(ctx).
				Build())
			continue
		}
		from := filepath.Join(srcDir, clean)
		if _, err := os.Stat(from); err != nil {
			warnings = append(warnings, foundationerrors.FileSystemError("referenced image not found").
				Warning().
				WithCause(err).
				WithContextMap(ctx).
				Build())
			continue
		}
		if err := copyFile(from, filepath.Join(imageDir, clean)); err != nil {
			warnings = append(warnings, foundationerrors.FileSystemError("copy image").
				Warning().
				WithCause(err).
				WithContextMap(ctx).
				Build())
		}
	}
	return warnings
}

func copyFile(from, to string) error {
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return err
	}
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
