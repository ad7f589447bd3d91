package viz

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/paramstore"
)

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	a.refresh()
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.editing {
		a.editKey(msg)
		return nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		v, _ := a.store.Get(a.selected())
		a.editing, a.editBuf = true, strconv.FormatFloat(v, 'g', -1, 64)
	case "left", "h":
		a.nudge(-1)
	case "right", "l":
		a.nudge(1)
	case "v", "tab":
		a.view = a.view.Next()
		a.status = ""
	case "r":
		if err := a.store.Apply(a.initial); err != nil {
			a.status = "error: " + err.Error()
		} else {
			a.status = "parameters reset"
		}
	case "t":
		a.theme = NextTheme(a.theme)
		a.styles = newStyles(a.theme)
		a.status = "theme " + a.theme.Name
	}
	return nil
}

func (a *App) editKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		name := a.selected()
		if err := a.store.SetString(name, a.editBuf); err != nil {
			a.status = "error: " + err.Error()
		} else {
			a.status = fmt.Sprintf("%s = %s", name, a.editBuf)
		}
		a.editing, a.editBuf = false, ""
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			a.editBuf += string(msg.Runes)
		}
	}
}

// nudge moves the selected value one notch. Step sizes double or halve;
// everything else moves by 0.5.
func (a *App) nudge(dir int) {
	name := a.selected()
	v, _ := a.store.Get(name)

	next := v + 0.5*float64(dir)
	if name == paramstore.Step || name == paramstore.SStep {
		if dir > 0 {
			next = v * 2
		} else {
			next = v / 2
		}
	}

	if err := a.store.Set(name, next); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("%s = %g", name, next)
}

func (a *App) selected() string {
	return a.names[a.cursor]
}
