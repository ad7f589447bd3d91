package analysis

import (
	"fmt"
	"strings"
)

// View selects one result set of a report for display.
type View int

const (
	ViewSolutions View = iota
	ViewGlobal
	ViewLocal
	ViewSteps
)

var viewNames = [...]string{
	ViewSolutions: "solutions",
	ViewGlobal:    "global",
	ViewLocal:     "local",
	ViewSteps:     "steps",
}

var viewTitles = [...]string{
	ViewSolutions: "Solutions",
	ViewGlobal:    "Global error",
	ViewLocal:     "Local error",
	ViewSteps:     "Error vs 1/step",
}

func Views() []View {
	return []View{ViewSolutions, ViewGlobal, ViewLocal, ViewSteps}
}

func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range viewNames {
		if n == name {
			return View(i), nil
		}
	}
	switch name {
	case "graphs", "trajectories":
		return ViewSolutions, nil
	case "step":
		return ViewSteps, nil
	}
	return 0, fmt.Errorf("unknown view: %s", name)
}

func (v View) valid() bool { return v >= ViewSolutions && v <= ViewSteps }

func (v View) String() string {
	if !v.valid() {
		return fmt.Sprintf("view(%d)", int(v))
	}
	return viewNames[v]
}

func (v View) Title() string {
	if !v.valid() {
		return v.String()
	}
	return viewTitles[v]
}

// Axes returns the x and y axis labels.
func (v View) Axes() (string, string) {
	switch v {
	case ViewGlobal, ViewLocal:
		return "x", "error"
	case ViewSteps:
		return "1/step", "error at x limit"
	}
	return "x", "y"
}

// Next cycles solutions → global → local → steps → solutions.
func (v View) Next() View {
	return (v + 1) % View(len(viewNames))
}

// Curves returns the result set shown by v.
func (r *Report) Curves(v View) []Curve {
	switch v {
	case ViewGlobal:
		return r.Global
	case ViewLocal:
		return r.Local
	case ViewSteps:
		return r.Steps
	}
	return r.Trajectories
}
