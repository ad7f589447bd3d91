package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/paramstore"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	formWidth     = 28
)

// App is the interactive front-end. It implements tea.Model with a pointer
// receiver so store observers can reach it.
type App struct {
	store   *paramstore.Store
	initial ode.Params
	names   []string

	theme  Theme
	styles styles
	view   analysis.View

	cursor  int
	editing bool
	editBuf string

	stale     bool
	report    *analysis.Report
	summaries []analysis.Summary
	err       error
	status    string

	width, height int
}

// NewApp binds an app to store and renders the initial report.
func NewApp(store *paramstore.Store, theme Theme) (*App, error) {
	a := &App{
		store:   store,
		initial: store.Params(),
		names:   paramstore.Names(),
		theme:   theme,
		styles:  newStyles(theme),
		view:    analysis.ViewSolutions,
		width:   defaultWidth,
		height:  defaultHeight,
	}

	for _, name := range a.names {
		if err := store.Subscribe(name, a.markStale); err != nil {
			return nil, err
		}
	}
	store.Initialize()
	a.refresh()
	return a, nil
}

func (a *App) markStale() { a.stale = true }

func (a *App) refresh() {
	if !a.stale {
		return
	}
	a.stale = false
	a.report, a.err = a.store.Report()
	a.summaries = nil
	if a.err == nil {
		a.summaries = a.report.Summarize()
	}
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n\n")

	plotWidth := max(a.width-formWidth-16, 20)
	plotHeight := max(a.height-14, 6)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.panel.Width(formWidth).Render(a.viewForm()),
		a.styles.panel.Render(a.viewPlot(plotWidth, plotHeight)),
	))
	b.WriteString("\n")
	b.WriteString(a.viewSummary())
	b.WriteString("\n")
	b.WriteString(a.viewStatus())
	b.WriteString("\n")
	b.WriteString(a.styles.keyHints("j/k", "select", "enter", "edit", "h/l", "adjust", "v", "view", "r", "reset", "t", "theme", "q", "quit"))
	b.WriteString("\n")
	return b.String()
}

func (a *App) viewHeader() string {
	title := GradientText("ODELAB", a.theme.Primary, a.theme.Secondary)
	eq := ""
	if p := a.store.Problem(); p != nil {
		eq = p.Equation()
	}
	tabs := make([]string, 0, len(analysis.Views()))
	for _, v := range analysis.Views() {
		if v == a.view {
			tabs = append(tabs, a.styles.active.Render("["+v.Title()+"]"))
		} else {
			tabs = append(tabs, a.styles.sub.Render(" "+v.Title()+" "))
		}
	}
	return "  " + title + "  " + a.styles.sub.Render(eq) + "\n  " + strings.Join(tabs, " ")
}

func (a *App) viewForm() string {
	params := a.store.Params()
	var b strings.Builder
	b.WriteString(a.styles.title.Render("parameters"))
	b.WriteString("\n\n")
	for i, name := range a.names {
		v, _ := paramstore.Get(params, name)
		val := strconv.FormatFloat(v, 'g', 6, 64)
		if a.editing && i == a.cursor {
			val = a.editBuf + "_"
		}

		if i == a.cursor {
			b.WriteString(a.styles.cursor.Render("▸ "))
			b.WriteString(a.styles.label.Render(name))
			b.WriteString(a.styles.active.Render(val))
		} else {
			b.WriteString("  ")
			b.WriteString(a.styles.label.Render(name))
			b.WriteString(a.styles.value.Render(val))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) viewPlot(width, height int) string {
	if a.err != nil {
		return a.styles.err.Render(wrap(a.err.Error(), width))
	}
	if a.report == nil {
		return a.styles.sub.Render("no data")
	}
	return Plot(a.report.Curves(a.view), a.view, width, height, a.theme)
}

func (a *App) viewSummary() string {
	if len(a.summaries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range a.summaries {
		order := "n/a"
		if !math.IsNaN(s.Order) {
			order = fmt.Sprintf("%.2f", s.Order)
		}
		spark := ""
		if i < len(a.report.Global) {
			spark = Sparkline(a.report.Global[i].Series.Ys, 20)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
			a.styles.label.Width(16).Render(s.Method.Label()),
			a.styles.value.Render(fmt.Sprintf("final %-11.4g", s.Metrics["final"])),
			a.styles.value.Render(fmt.Sprintf("max %-11.4g", s.Metrics["max"])),
			a.styles.value.Render("order "+order),
			a.styles.ok.Render(spark),
		))
	}
	return b.String()
}

func (a *App) viewStatus() string {
	if a.status == "" {
		return ""
	}
	if strings.HasPrefix(a.status, "error:") {
		return "  " + a.styles.err.Render(a.status)
	}
	return "  " + a.styles.ok.Render(a.status)
}

func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var lines []string
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	return strings.Join(append(lines, s), "\n")
}

// Run starts the full-screen program.
func Run(store *paramstore.Store, theme Theme) error {
	app, err := NewApp(store, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
