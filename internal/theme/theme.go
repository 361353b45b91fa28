// Package theme holds the colour palettes a site can be rendered with and
// turns them into CSS custom properties.
package theme

import (
	"fmt"
	"strings"
)

// Palette is the fixed set of colours a theme applies across the site.
// Values are trusted static strings and are not validated.
type Palette struct {
	Background    string `json:"bg"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	TextTertiary  string `json:"textTertiary"`
	Accent        string `json:"accent"`
	AccentLight   string `json:"accentLight"`
	Border        string `json:"border"`
	BorderLight   string `json:"borderLight"`
}

// Theme is a named palette.
type Theme struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description"`
	Colors      Palette `json:"colors"`
}

// Variable is one CSS custom property derived from a palette field.
type Variable struct {
	Name  string
	Value string
}

// Variables lists the palette as CSS custom properties in declaration order.
func (p Palette) Variables() []Variable {
	return []Variable{
		{"--color-bg", p.Background},
		{"--color-surface", p.Surface},
		{"--color-text", p.Text},
		{"--color-text-secondary", p.TextSecondary},
		{"--color-text-tertiary", p.TextTertiary},
		{"--color-accent", p.Accent},
		{"--color-accent-light", p.AccentLight},
		{"--color-border", p.Border},
		{"--color-border-light", p.BorderLight},
	}
}

// RenderVariables formats the palette as one declaration per line, with no
// surrounding selector and no trailing newline.
func RenderVariables(p Palette) string {
	vars := p.Variables()
	lines := make([]string, len(vars))
	for i, v := range vars {
		lines[i] = fmt.Sprintf("%s: %s;", v.Name, v.Value)
	}
	return strings.Join(lines, "\n")
}

// Stylesheet wraps the theme's variables in a :root rule.
func Stylesheet(t Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s: %s */\n", t.DisplayName, t.Description)
	b.WriteString(":root {\n")
	for _, line := range strings.Split(RenderVariables(t.Colors), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
