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

	"github.com/google/uuid"

	"github.com/san-kum/rlocus/internal/analysis"
)

const (
	metadataFile = "metadata.json"
	locusFile    = "locus.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is what metadata.json holds: the report without its locus
// samples, which live in locus.csv.
type RunMetadata struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
	Samples   int              `json:"samples"`
	Report    *analysis.Report `json:"report"`
}

// Save writes r into a fresh run directory and returns its id.
func (s *Store) Save(r *analysis.Report) (string, error) {
	runID := fmt.Sprintf("%s_%s", dirName(r.Name), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      r.Name,
		Timestamp: time.Now(),
		Samples:   len(r.Locus),
		Report:    r,
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

	csvFile, err := os.Create(filepath.Join(runDir, locusFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"re", "im"}); err != nil {
		return "", err
	}
	for _, p := range r.Locus {
		row := []string{
			strconv.FormatFloat(p.Re, 'g', -1, 64),
			strconv.FormatFloat(p.Im, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
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
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if meta.Report == nil {
		return nil, fmt.Errorf("run %s: metadata has no report", runID)
	}
	return &meta, nil
}

// LoadLocus reads the locus samples of a run.
func (s *Store) LoadLocus(runID string) ([]analysis.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, locusFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []analysis.Point{}, nil
	}

	pts := make([]analysis.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		re, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
		}
		im, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
		}
		pts = append(pts, analysis.Point{Re: re, Im: im})
	}
	return pts, nil
}

// LoadReport restores a full report, locus samples included.
func (s *Store) LoadReport(runID string) (*analysis.Report, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	pts, err := s.LoadLocus(runID)
	if err != nil {
		return nil, err
	}
	meta.Report.Locus = pts
	return meta.Report, nil
}

func dirName(name string) string {
	if name == "" {
		return "study"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
