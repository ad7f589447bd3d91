package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if got != "▁▂▃▄▅▆▇█" {
		t.Errorf("unexpected sparkline %q", got)
	}

	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("expected empty line, got %q", got)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("got %d %d %d", r, g, b)
	}
	if hexColor(r, g, b) != "#ff8000" {
		t.Errorf("round trip failed: %s", hexColor(r, g, b))
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("missing").Name != "cyberpunk" {
		t.Error("expected fallback theme")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("theme cycle should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestPlot(t *testing.T) {
	curves := []analysis.Curve{
		{Method: integrators.Euler, Series: ode.Series{Xs: []float64{1, 2, 3}, Ys: []float64{2, 8, 26}}},
		{Method: integrators.Exact, Series: ode.Series{Xs: []float64{1}, Ys: []float64{2}}},
		{Method: integrators.RungeKutta4},
	}

	out := Plot(curves, analysis.ViewSolutions, 40, 8, ThemeMinimal)
	if !strings.Contains(out, "Solutions") {
		t.Errorf("missing caption:\n%s", out)
	}

	empty := Plot([]analysis.Curve{{}}, analysis.ViewSteps, 40, 8, ThemeMinimal)
	if !strings.Contains(empty, "no samples") {
		t.Errorf("expected notice, got %q", empty)
	}
}
