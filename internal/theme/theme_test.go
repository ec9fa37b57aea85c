package theme_test

import (
	"testing"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/theme"
)

func TestSetBuiltinPalette(t *testing.T) {
	defer theme.Set("default")

	theme.Set("mono")
	if got := theme.Current().FocusedBorder; got != lipgloss.Color("255") {
		t.Errorf("mono focused border = %v, want 255", got)
	}

	theme.Set("default")
	if got := theme.Current().Accent; got != lipgloss.Color("212") {
		t.Errorf("default accent = %v, want 212", got)
	}
}

func TestSetUnknownNameKeepsCurrent(t *testing.T) {
	defer theme.Set("default")

	theme.Set("mono")
	before := theme.Current()

	theme.Set("definitely-not-a-theme")
	if theme.Current() != before {
		t.Error("unknown theme name should keep the current palette")
	}
}

func TestSetResolvesTintRegistryThemes(t *testing.T) {
	defer theme.Set("default")

	theme.Set("dracula")
	got := theme.Current()
	if got.Body != tint.Current().Fg {
		t.Errorf("tint-backed body = %v, want registry fg %v", got.Body, tint.Current().Fg)
	}
	if got.Accent == nil || got.FocusedBorder == nil {
		t.Error("tint-backed palette should be fully populated")
	}
}

func TestTitleEmphasisTier(t *testing.T) {
	under := theme.TitleStyle(theme.TitleEmphasisSize - 1)
	over := theme.TitleStyle(theme.TitleEmphasisSize)

	if under.GetBold() {
		t.Error("titles under the emphasis size should not be bold")
	}
	if !over.GetBold() {
		t.Error("titles at the emphasis size should be bold")
	}
}

func TestCategoryIcons(t *testing.T) {
	seen := map[string]strip.Category{}
	for _, cat := range []strip.Category{
		strip.CategoryNote, strip.CategoryTask, strip.CategoryTerminal, strip.Category("other"),
	} {
		icon := theme.CategoryIcon(cat)
		if icon == "" {
			t.Errorf("category %s has no icon", cat)
		}
		if prev, dup := seen[icon]; dup {
			t.Errorf("categories %s and %s share icon %q", prev, cat, icon)
		}
		seen[icon] = cat
	}
}
