package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	linesFile    = "lines.csv"
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

// RunMetadata describes a stored trace. Terminations holds one code per
// traced direction for every seed, forward first.
type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Field        string             `json:"field"`
	FieldParams  map[string]float64 `json:"field_params,omitempty"`
	Direction    int                `json:"direction"`
	StepSize     float64            `json:"step_size"`
	MaxSteps     int                `json:"max_steps"`
	Workers      int                `json:"workers"`
	Seeds        [][3]float64       `json:"seeds"`
	NPoints      []int              `json:"n_points"`
	Terminations [][]int            `json:"terminations"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes meta and lines under a new run directory and returns the run
// id. meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, lines [][]dynamo.Vec3) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.NPoints = make([]int, len(lines))
	for i, l := range lines {
		meta.NPoints[i] = len(l)
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

	csvFile, err := os.Create(filepath.Join(runDir, linesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"line", "point", "x", "y", "z"}); err != nil {
		return "", err
	}
	for i, line := range lines {
		for j, p := range line {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(p[0], 'g', -1, 64),
				strconv.FormatFloat(p[1], 'g', -1, 64),
				strconv.FormatFloat(p[2], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns stored runs, oldest first. Unreadable run directories are
// skipped.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadLines reads the traced lines of a run.
func (s *Store) LoadLines(runID string) ([][]dynamo.Vec3, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, linesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	lines := make([][]dynamo.Vec3, len(meta.NPoints))
	for i, n := range meta.NPoints {
		lines[i] = make([]dynamo.Vec3, 0, n)
	}

	for row, record := range records {
		if row == 0 {
			continue
		}

		idx, err := strconv.Atoi(record[0])
		if err != nil || idx < 0 || idx >= len(lines) {
			return nil, fmt.Errorf("%s row %d: bad line index %q", linesFile, row, record[0])
		}

		var p dynamo.Vec3
		for c := 0; c < 3; c++ {
			p[c], err = strconv.ParseFloat(record[2+c], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", linesFile, row, err)
			}
		}
		lines[idx] = append(lines[idx], p)
	}

	return lines, nil
}
