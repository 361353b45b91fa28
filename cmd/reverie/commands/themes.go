package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/reverie/internal/theme"
)

// ThemesCmd groups the theme subcommands.
type ThemesCmd struct {
	List ThemesListCmd `cmd:"" default:"1" help:"List available themes"`
	CSS  ThemesCSSCmd  `cmd:"" name:"css" help:"Print the stylesheet for a theme"`
}

// ThemesListCmd implements 'themes list'.
type ThemesListCmd struct{}

func (ThemesListCmd) Run(g *Global) error {
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	for _, t := range theme.All() {
		marker := ""
		if t.Name == theme.Default {
			marker = " (default)"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\n", t.Name, marker, t.DisplayName, t.Description)
	}
	return tw.Flush()
}

// ThemesCSSCmd implements 'themes css'.
type ThemesCSSCmd struct {
	Name string `arg:"" optional:"" help:"Theme name; the default theme when omitted"`
}

func (c *ThemesCSSCmd) Run(g *Global) error {
	name := c.Name
	if name == "" {
		name = theme.Default
	}
	t, err := theme.Resolve(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.stdout(), theme.Stylesheet(t))
	return err
}
