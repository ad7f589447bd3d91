// Package storage archives experiment results on disk, one directory per
// run holding metadata.json and curves.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/integrators"
)

const (
	metadataFile = "metadata.json"
	curvesFile   = "curves.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the archived summary of one result.
type RunMetadata struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Timestamp time.Time              `json:"timestamp"`
	Problem   string                 `json:"problem"`
	Equation  string                 `json:"equation"`
	Params    export.ExportParams    `json:"params"`
	Summaries []export.ExportSummary `json:"summaries"`
}

// Save writes res under a fresh run directory and returns its id.
func (s *Store) Save(res *experiment.Result) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	data := export.NewExportData(res.Report)
	ts := s.now()
	name := res.Name
	if name == "" {
		name = res.Report.Problem
	}
	runID := fmt.Sprintf("%s_%d", sanitize(name), ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.Mkdir(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      res.Name,
		Timestamp: ts,
		Problem:   data.Problem,
		Equation:  data.Equation,
		Params:    data.Params,
		Summaries: data.Summaries,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, curvesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.WriteCSV(csvFile, res.Report); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the metadata of every archived run, oldest first. Entries
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

// LoadCurves reads the archived curves of a run grouped by view. Curves
// keep the order in which they were written.
func (s *Store) LoadCurves(runID string) (map[analysis.View][]analysis.Curve, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, curvesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make(map[analysis.View][]analysis.Curve)
	for i := 1; i < len(records); i++ {
		rec := records[i]

		v, err := analysis.ParseView(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		m, err := integrators.ParseMethod(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		x, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		curves := out[v]
		if n := len(curves); n == 0 || curves[n-1].Method != m {
			curves = append(curves, analysis.Curve{Method: m})
		}
		last := &curves[len(curves)-1]
		last.Series.Xs = append(last.Series.Xs, x)
		last.Series.Ys = append(last.Series.Ys, y)
		out[v] = curves
	}
	return out, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, name)
}
