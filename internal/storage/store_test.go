package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/cordic/internal/analysis"
	"github.com/san-kum/cordic/internal/cordic"
	"github.com/san-kum/cordic/internal/trace"
)

func rotate(t *testing.T, repr cordic.Representation, angle float64) (cordic.Result, []cordic.Step) {
	t.Helper()
	p, err := cordic.New(repr, cordic.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	rec := trace.NewRecorder()
	p.AddObserver(rec)
	res, err := p.Rotate(angle)
	if err != nil {
		t.Fatal(err)
	}
	return res, rec.Steps()
}

func TestStoreSaveLoad(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	res, steps := rotate(t, cordic.Fixed, 1.0)
	runID, err := st.Save(res, cordic.DefaultConfig(), steps)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runID).To(HavePrefix("fixed_"))

	meta, err := st.Load(runID)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(meta.Representation).To(Equal("fixed"))
	g.Expect(meta.Angle).To(Equal(1.0))
	g.Expect(meta.Sin).To(Equal(res.Sin))
	g.Expect(meta.AngleBits).To(Equal(uint(cordic.DefaultAngleBits)))
	g.Expect(meta.SinErr).To(BeNumerically("<=", cordic.DefaultTable.Smallest()))

	loaded, err := st.LoadTrace(runID)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded).To(HaveLen(len(steps)))
	for i := range steps {
		g.Expect(loaded[i].I).To(Equal(steps[i].I))
		g.Expect(loaded[i].Z).To(BeNumerically("~", steps[i].Z, 1e-15))
	}
}

func TestStoreList(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	runs, err := st.List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(BeEmpty())

	for _, repr := range cordic.Representations() {
		res, steps := rotate(t, repr, 0.5)
		_, err := st.Save(res, cordic.DefaultConfig(), steps)
		g.Expect(err).NotTo(HaveOccurred())
	}

	runs, err = st.List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(HaveLen(3))
	g.Expect(runs[0].Representation).To(Equal("float"))
	g.Expect(runs[2].Representation).To(Equal("fixed"))
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreSaveFailureLeavesNoRun(t *testing.T) {
	g := NewWithT(t)
	tmpDir := t.TempDir()
	st := New(tmpDir)
	g.Expect(st.Init()).To(Succeed())

	res, steps := rotate(t, cordic.Float, 0.5)
	res.Sin = math.NaN()

	_, err := st.Save(res, cordic.DefaultConfig(), steps)
	g.Expect(err).To(HaveOccurred())

	entries, err := os.ReadDir(tmpDir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(entries).To(BeEmpty())
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res, _ := rotate(t, cordic.Float, 0.2)
	runID, err := st.Save(res, cordic.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "trace.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	steps, err := st.LoadTrace(runID)
	if err != nil || len(steps) != 0 {
		t.Errorf("expected empty trace, got %v, %v", steps, err)
	}
}

func TestExportJSON(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	res, steps := rotate(t, cordic.SignMagnitude, -0.4)
	runID, err := st.Save(res, cordic.DefaultConfig(), steps)
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer
	g.Expect(st.ExportJSON(&buf, runID)).To(Succeed())

	var out ExportData
	g.Expect(json.Unmarshal(buf.Bytes(), &out)).To(Succeed())
	g.Expect(out.Run.ID).To(Equal(runID))
	g.Expect(out.Trace).To(HaveLen(cordic.DefaultIterations))
}

func TestWriteCSV(t *testing.T) {
	g := NewWithT(t)

	_, steps := rotate(t, cordic.Float, 1)
	var buf bytes.Buffer
	g.Expect(WriteTraceCSV(&buf, steps)).To(Succeed())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	g.Expect(lines).To(HaveLen(cordic.DefaultIterations + 1))
	g.Expect(lines[0]).To(Equal("i,x,y,z"))

	samples, err := analysis.Sweep(analysis.FactoryFor(cordic.Float, cordic.DefaultConfig()), 0, 1, 5)
	g.Expect(err).NotTo(HaveOccurred())
	buf.Reset()
	g.Expect(WriteSamplesCSV(&buf, samples)).To(Succeed())
	g.Expect(buf.String()).To(HavePrefix("angle,sin,cos,residual,sin_err,cos_err\n"))
	g.Expect(strings.Count(buf.String(), "\n")).To(Equal(6))
}
