package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/reverie/internal/i18n"
)

// TranslationsCmd implements the 'translations' command.
type TranslationsCmd struct {
	Language string `short:"l" name:"lang" default:"en" help:"Language whose table is printed (en or zh)"`
	Check    bool   `help:"Only verify that every language defines every key"`
}

func (c *TranslationsCmd) Run(g *Global) error {
	if err := i18n.Validate(); err != nil {
		return err
	}
	out := g.stdout()
	if c.Check {
		fmt.Fprintf(out, "%d keys present in all %d languages\n", len(i18n.Keys()), len(i18n.Supported))
		return nil
	}

	lang, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return err
	}
	tr, err := i18n.NewTranslator(lang)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, key := range i18n.Keys() {
		value, err := tr.T(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%q\n", key, value)
	}
	return tw.Flush()
}
