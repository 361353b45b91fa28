package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

func TestResolve_EveryBuiltinRendersOneDeclarationPerField(t *testing.T) {
	for _, name := range []string{"sageGreen", "warmTerracotta", "dustyRose", "warmHoney", "softLavender", "warmSteel"} {
		t.Run(name, func(t *testing.T) {
			th, err := Resolve(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)

			out := RenderVariables(th.Colors)
			lines := strings.Split(out, "\n")
			require.Len(t, lines, 9)

			expected := map[string]string{
				"--color-bg":             th.Colors.Background,
				"--color-surface":        th.Colors.Surface,
				"--color-text":           th.Colors.Text,
				"--color-text-secondary": th.Colors.TextSecondary,
				"--color-text-tertiary":  th.Colors.TextTertiary,
				"--color-accent":         th.Colors.Accent,
				"--color-accent-light":   th.Colors.AccentLight,
				"--color-border":         th.Colors.Border,
				"--color-border-light":   th.Colors.BorderLight,
			}
			seen := map[string]int{}
			for _, line := range lines {
				name, value, ok := strings.Cut(strings.TrimSuffix(line, ";"), ": ")
				require.True(t, ok, line)
				seen[name]++
				assert.Equal(t, expected[name], value, name)
			}
			for name := range expected {
				assert.Equal(t, 1, seen[name], name)
			}
		})
	}
}

func TestRenderVariables_Format(t *testing.T) {
	th, err := Resolve("sageGreen")
	require.NoError(t, err)

	want := strings.Join([]string{
		"--color-bg: #faf8f5;",
		"--color-surface: #ffffff;",
		"--color-text: #2d342f;",
		"--color-text-secondary: #6b7a6f;",
		"--color-text-tertiary: #8a9a8f;",
		"--color-accent: #7c9885;",
		"--color-accent-light: #a4b8a8;",
		"--color-border: #d4e0d7;",
		"--color-border-light: #e8f0eb;",
	}, "\n")
	assert.Equal(t, want, RenderVariables(th.Colors))
}

func TestResolve_UnknownThemeIsAnError(t *testing.T) {
	_, err := Resolve("neonPunk")
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryTheme))
	assert.Contains(t, err.Error(), "sageGreen")
}

func TestStylesheet(t *testing.T) {
	th, err := Resolve("warmSteel")
	require.NoError(t, err)

	css := Stylesheet(th)
	assert.True(t, strings.HasPrefix(css, "/* Warm Steel: "))
	assert.Contains(t, css, ":root {\n  --color-bg: #f7f8fa;\n")
	assert.True(t, strings.HasSuffix(css, "  --color-border-light: #dce6f0;\n}\n"))
}

func TestRegister_FirstWins(t *testing.T) {
	name := fmt.Sprintf("testTheme%d", len(Names()))
	Register(Theme{Name: name, DisplayName: "First", Colors: Palette{Background: "#000"}})
	Register(Theme{Name: name, DisplayName: "Second", Colors: Palette{Background: "#fff"}})
	Register(Theme{})

	got, err := Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, "First", got.DisplayName)
	assert.Contains(t, Names(), name)
}

func TestAll_SortedByName(t *testing.T) {
	all := All()
	require.GreaterOrEqual(t, len(all), 6)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
	assert.Contains(t, Names(), Default)
}
