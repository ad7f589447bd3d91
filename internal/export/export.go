// Package export writes result sets to files for use outside the terminal.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/integrators"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
)

func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatSVG, FormatPNG, FormatHTML}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format: %s", s)
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Options control chart output. CSV, JSON and HTML always carry every view.
type Options struct {
	View   analysis.View
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{View: analysis.ViewSolutions, Width: 800, Height: 500}
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r *analysis.Report, opts Options) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatSVG:
		_, err := io.WriteString(w, ReportToSVG(r, opts.View, opts.Width, opts.Height))
		return err
	case FormatPNG:
		return WritePNG(w, r, opts)
	case FormatHTML:
		return WriteHTML(w, r)
	}
	return fmt.Errorf("unknown export format: %s", f)
}

// WriteFile creates path and writes r into it.
func WriteFile(path string, f Format, r *analysis.Report, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, f, r, opts)
}

var methodColors = map[integrators.Method]string{
	integrators.Euler:         "#ff5252",
	integrators.ImprovedEuler: "#ffb300",
	integrators.RungeKutta4:   "#40c4ff",
	integrators.Exact:         "#69f0ae",
}

// MethodColor is the hex color used for m in every chart format.
func MethodColor(m integrators.Method) string {
	if c, ok := methodColors[m]; ok {
		return c
	}
	return "#e0e0e0"
}
