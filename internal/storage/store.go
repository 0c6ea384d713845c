package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/cordic/internal/analysis"
	"github.com/san-kum/cordic/internal/cordic"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
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

type RunMetadata struct {
	ID             string    `json:"id"`
	Representation string    `json:"representation"`
	Timestamp      time.Time `json:"timestamp"`
	Angle          float64   `json:"angle"`
	Iterations     int       `json:"iterations"`
	FracBits       uint      `json:"frac_bits"`
	AngleBits      uint      `json:"angle_bits"`
	Sin            float64   `json:"sin"`
	Cos            float64   `json:"cos"`
	Residual       float64   `json:"residual"`
	SinErr         float64   `json:"sin_err"`
	CosErr         float64   `json:"cos_err"`
}

// TraceRow is one line of trace.csv.
type TraceRow struct {
	I int     `csv:"i" json:"i"`
	X float64 `csv:"x" json:"x"`
	Y float64 `csv:"y" json:"y"`
	Z float64 `csv:"z" json:"z"`
}

func TraceRows(steps []cordic.Step) []*TraceRow {
	rows := make([]*TraceRow, len(steps))
	for i, st := range steps {
		rows[i] = &TraceRow{I: st.I, X: st.X, Y: st.Y, Z: st.Z}
	}
	return rows
}

func Steps(rows []*TraceRow) []cordic.Step {
	steps := make([]cordic.Step, len(rows))
	for i, r := range rows {
		steps[i] = cordic.Step{I: r.I, X: r.X, Y: r.Y, Z: r.Z}
	}
	return steps
}

// Save writes metadata.json and trace.csv into a new run directory.
func (s *Store) Save(res cordic.Result, cfg cordic.Config, steps []cordic.Step) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", res.Representation, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Representation: string(res.Representation),
		Timestamp:      now,
		Angle:          res.Angle,
		Iterations:     res.Iterations,
		FracBits:       cfg.FracBits,
		AngleBits:      cfg.AngleBits,
		Sin:            res.Sin,
		Cos:            res.Cos,
		Residual:       res.Residual,
		SinErr:         math.Abs(res.Sin - math.Sin(res.Angle)),
		CosErr:         math.Abs(res.Cos - math.Cos(res.Angle)),
	}

	if err := writeRun(runDir, meta, steps); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, steps []cordic.Step) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("writing %s: %w", metadataFile, err)
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	if len(steps) == 0 {
		return nil
	}
	if err := gocsv.MarshalFile(TraceRows(steps), csvFile); err != nil {
		return fmt.Errorf("writing %s: %w", traceFile, err)
	}
	return nil
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
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]cordic.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []cordic.Step{}, nil
	}

	var rows []*TraceRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", traceFile, err)
	}
	return Steps(rows), nil
}

type ExportData struct {
	Run   *RunMetadata `json:"run"`
	Trace []*TraceRow  `json:"trace"`
}

// ExportJSON writes a run's metadata and trace to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: meta, Trace: TraceRows(steps)})
}

// WriteTraceCSV writes steps as CSV with a header row.
func WriteTraceCSV(w io.Writer, steps []cordic.Step) error {
	return gocsv.Marshal(TraceRows(steps), w)
}

// WriteSamplesCSV writes sweep samples as CSV with a header row.
func WriteSamplesCSV(w io.Writer, samples []analysis.Sample) error {
	rows := make([]*analysis.Sample, len(samples))
	for i := range samples {
		rows[i] = &samples[i]
	}
	return gocsv.Marshal(rows, w)
}
