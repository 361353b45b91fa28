package theme

import (
	"slices"
	"strings"
	"sync"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

// Default is the theme used when a configuration does not name one.
const Default = "sageGreen"

var (
	regMu sync.RWMutex
	reg   = map[string]Theme{}
)

func init() {
	for _, t := range builtins {
		Register(t)
	}
}

// Register adds a theme to the registry. The first registration of a name wins.
func Register(t Theme) {
	if t.Name == "" {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name]; !ok {
		reg[t.Name] = t
	}
}

// Resolve returns the theme registered under name.
// Unknown names are an error; there is no silent fallback to Default.
func Resolve(name string) (Theme, error) {
	regMu.RLock()
	t, ok := reg[name]
	regMu.RUnlock()
	if !ok {
		return Theme{}, foundationerrors.ThemeError("unknown theme").
			WithContext("theme", name).
			WithContext("available", strings.Join(Names(), ", ")).
			Build()
	}
	return t, nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every registered theme sorted by name.
func All() []Theme {
	names := Names()
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]Theme, 0, len(names))
	for _, n := range names {
		out = append(out, reg[n])
	}
	return out
}

var builtins = []Theme{
	{
		Name:        "sageGreen",
		DisplayName: "Sage Green",
		Description: "Calming and natural, perfect for thoughtful writing",
		Colors: Palette{
			Background: "#faf8f5", Surface: "#ffffff",
			Text: "#2d342f", TextSecondary: "#6b7a6f", TextTertiary: "#8a9a8f",
			Accent: "#7c9885", AccentLight: "#a4b8a8",
			Border: "#d4e0d7", BorderLight: "#e8f0eb",
		},
	},
	{
		Name:        "warmTerracotta",
		DisplayName: "Warm Terracotta",
		Description: "Earthy and cozy with Mediterranean warmth",
		Colors: Palette{
			Background: "#faf7f4", Surface: "#ffffff",
			Text: "#3a2e26", TextSecondary: "#7a6b5d", TextTertiary: "#9a8b7d",
			Accent: "#c67b5c", AccentLight: "#d4967a",
			Border: "#e8d5c8", BorderLight: "#f0e6dc",
		},
	},
	{
		Name:        "dustyRose",
		DisplayName: "Dusty Rose",
		Description: "Gentle and romantic with soft elegance",
		Colors: Palette{
			Background: "#faf7f7", Surface: "#ffffff",
			Text: "#3a2d2d", TextSecondary: "#7a6b6b", TextTertiary: "#9a8b8b",
			Accent: "#d4a5a5", AccentLight: "#e2bebe",
			Border: "#e8d5d5", BorderLight: "#f0e6e6",
		},
	},
	{
		Name:        "warmHoney",
		DisplayName: "Warm Honey",
		Description: "Golden and inviting with optimistic energy",
		Colors: Palette{
			Background: "#faf8f4", Surface: "#ffffff",
			Text: "#3a3426", TextSecondary: "#7a705d", TextTertiary: "#9a907d",
			Accent: "#d4a574", AccentLight: "#e4b885",
			Border: "#e8dcc8", BorderLight: "#f0e9dc",
		},
	},
	{
		Name:        "softLavender",
		DisplayName: "Soft Lavender",
		Description: "Creative and thoughtful with artistic flair",
		Colors: Palette{
			Background: "#f9f7fa", Surface: "#ffffff",
			Text: "#342d3a", TextSecondary: "#6b5d7a", TextTertiary: "#8b7d9a",
			Accent: "#b8a5d1", AccentLight: "#c8b5e1",
			Border: "#d5c8e8", BorderLight: "#e6dcf0",
		},
	},
	{
		Name:        "warmSteel",
		DisplayName: "Warm Steel",
		Description: "Trustworthy and balanced with professional warmth",
		Colors: Palette{
			Background: "#f7f8fa", Surface: "#ffffff",
			Text: "#2d343a", TextSecondary: "#5d6b7a", TextTertiary: "#7d8b9a",
			Accent: "#7a9bb8", AccentLight: "#8aabc8",
			Border: "#c8d5e8", BorderLight: "#dce6f0",
		},
	},
}
