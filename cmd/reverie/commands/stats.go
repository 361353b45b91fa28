package commands

import (
	"encoding/json"
	"fmt"
	"os"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/frontmatter"
	"git.home.luguber.info/inful/reverie/internal/i18n"
	"git.home.luguber.info/inful/reverie/internal/readingtime"
)

// StatsCmd implements the 'stats' command.
type StatsCmd struct {
	File     string `arg:"" type:"existingfile" help:"Markdown file to analyze"`
	Language string `short:"l" name:"lang" default:"en" help:"Language of the reading time label (en or zh)"`
	JSON     bool   `name:"json" help:"Print the result as JSON"`
}

func (s *StatsCmd) Run(g *Global) error {
	lang, err := i18n.ParseLanguage(s.Language)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(s.File)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "read file").
			WithContext("path", s.File).
			Build()
	}
	doc, err := frontmatter.Parse(data)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryContent, "parse front matter").
			WithContext("path", s.File).
			Build()
	}
	stats, err := readingtime.Analyze(lang, string(doc.Body))
	if err != nil {
		return err
	}

	out := g.stdout()
	if s.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	fmt.Fprintf(out, "words:    %d (chinese %d, english %d)\n", stats.Words.Total, stats.Words.Chinese, stats.Words.English)
	fmt.Fprintf(out, "language: %s\n", stats.Language)
	fmt.Fprintf(out, "reading:  %s\n", stats.Label)
	return nil
}
