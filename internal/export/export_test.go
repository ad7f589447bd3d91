package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

func testReport(t *testing.T) *analysis.Report {
	t.Helper()
	r, err := analysis.Run(problems.NewPracticum(), ode.DefaultParams())
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := FormatFromPath("out/Result.PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, got)

	_, err = FormatFromPath("result")
	assert.Error(t, err)
	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// 4 trajectories + 3 global + 3 local + 3 sweep series, 10 points each
	assert.Len(t, rows, 1+13*10)
	assert.Equal(t, []string{"view", "method", "x", "y"}, rows[0])
	assert.Equal(t, []string{"solutions", "euler", "1", "2"}, rows[1])
	assert.Equal(t, []string{"solutions", "euler", "2", "8"}, rows[2])
}

func TestWriteJSON(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))

	assert.Equal(t, "practicum", data.Problem)
	assert.Equal(t, 9.0, data.Params.GridSize)
	assert.Len(t, data.Views["solutions"], 4)
	assert.Len(t, data.Views["steps"], 3)
	assert.Equal(t, "exact", data.Views["solutions"][3].Method)
	require.Len(t, data.Summaries, 3)
	assert.NotNil(t, data.Summaries[0].Order)
}

func TestSVG(t *testing.T) {
	r := testReport(t)

	svg := ReportToSVG(r, analysis.ViewGlobal, 400, 300)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 3, strings.Count(svg, "<path"))
	assert.Contains(t, svg, "Improved Euler")
	assert.Contains(t, svg, MethodColor(r.Global[2].Method))
}

func TestSVGEmptyCurves(t *testing.T) {
	curves := []analysis.Curve{{}}
	svg := CurvesToSVG(curves, "empty", 100, 100)
	assert.NotContains(t, svg, "<path")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestWritePNG(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, r, DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestWriteHTML(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Global error")
	assert.Contains(t, out, "Local error")
}

func TestWriteFile(t *testing.T) {
	r := testReport(t)
	dir := t.TempDir()

	for _, f := range Formats() {
		path := filepath.Join(dir, "report."+string(f))
		require.NoError(t, WriteFile(path, f, r, DefaultOptions()), f)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), f)
	}
}

func TestHexColor(t *testing.T) {
	r, g, b, _ := hexColor("#ff5252").RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x5252), g)
	assert.Equal(t, uint32(0x5252), b)
}
