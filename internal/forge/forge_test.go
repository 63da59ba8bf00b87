package forge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelsmith/internal/gen"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

type recordingSaver struct {
	entries []LevelEntry
}

func (r *recordingSaver) SaveLevelEntry(e LevelEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

type failingSaver struct{}

func (failingSaver) SaveLevelEntry(LevelEntry) error {
	return errors.New("catalog closed")
}

func TestRunWritesLevelChain(t *testing.T) {
	root := filepath.Join(t.TempDir(), "levels")
	f := New(Options{Count: 3, Root: root, Seed: 42, Logger: quietLogger()})

	results, err := f.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i, res := range results {
		want := i + 1
		if res.Index != want {
			t.Errorf("result %d has index %d, want %d", i, res.Index, want)
		}
		name := fmt.Sprintf("level%d", want)
		data, err := os.ReadFile(filepath.Join(root, name, name+".map"))
		if err != nil {
			t.Fatalf("read %s map: %v", name, err)
		}
		if got := bytes.Count(data, []byte("\n")); got != res.Grid.H {
			t.Errorf("%s map has %d rows, want %d", name, got, res.Grid.H)
		}
		if _, err := os.Stat(filepath.Join(root, name, name+".json")); err != nil {
			t.Errorf("missing %s sidecar: %v", name, err)
		}
	}

	// Sizes chain upward from the virtual base level.
	if results[0].Grid.W <= gen.DefaultWidth {
		t.Errorf("level1 width %d did not grow past base %d", results[0].Grid.W, gen.DefaultWidth)
	}
	if results[1].Grid.W <= results[0].Grid.W {
		t.Errorf("level2 width %d did not grow past level1 width %d", results[1].Grid.W, results[0].Grid.W)
	}
}

func TestRunResumesNumbering(t *testing.T) {
	root := t.TempDir()

	first, err := New(Options{Count: 2, Root: root, Seed: 7, Logger: quietLogger()}).Run()
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	second, err := New(Options{Count: 2, Root: root, Seed: 7, Logger: quietLogger()}).Run()
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("second run produced %d levels, want 2", len(second))
	}
	if second[0].Index != 3 || second[1].Index != 4 {
		t.Fatalf("second run indices %d, %d, want 3, 4", second[0].Index, second[1].Index)
	}

	// The resumed batch measures the last level on disk and keeps growing.
	if second[0].Grid.W <= first[1].Grid.W {
		t.Errorf("level3 width %d did not grow past level2 width %d", second[0].Grid.W, first[1].Grid.W)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	seqRoot := filepath.Join(t.TempDir(), "seq")
	parRoot := filepath.Join(t.TempDir(), "par")

	if _, err := New(Options{Count: 4, Root: seqRoot, Seed: 99, Workers: 1, Logger: quietLogger()}).Run(); err != nil {
		t.Fatalf("sequential run: %v", err)
	}
	if _, err := New(Options{Count: 4, Root: parRoot, Seed: 99, Workers: 4, Logger: quietLogger()}).Run(); err != nil {
		t.Fatalf("parallel run: %v", err)
	}

	for idx := 1; idx <= 4; idx++ {
		name := fmt.Sprintf("level%d", idx)
		for _, file := range []string{name + ".map", name + ".json"} {
			a, err := os.ReadFile(filepath.Join(seqRoot, name, file))
			if err != nil {
				t.Fatalf("read sequential %s: %v", file, err)
			}
			b, err := os.ReadFile(filepath.Join(parRoot, name, file))
			if err != nil {
				t.Fatalf("read parallel %s: %v", file, err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("%s differs between sequential and parallel runs", file)
			}
		}
	}
}

func TestRunRecordsCatalogEntries(t *testing.T) {
	saver := &recordingSaver{}
	f := New(Options{Count: 3, Root: t.TempDir(), Seed: 5, Saver: saver, Logger: quietLogger()})

	results, err := f.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(saver.entries) != 3 {
		t.Fatalf("saver recorded %d entries, want 3", len(saver.entries))
	}

	for i, e := range saver.entries {
		res := results[i]
		if e.Index != res.Index {
			t.Errorf("entry %d index %d, want %d", i, e.Index, res.Index)
		}
		if e.Width != res.Grid.W || e.Height != res.Grid.H {
			t.Errorf("entry %d size %dx%d, want %dx%d", i, e.Width, e.Height, res.Grid.W, res.Grid.H)
		}
		if e.Capability != res.Capability {
			t.Errorf("entry %d capability %+v, want %+v", i, e.Capability, res.Capability)
		}
		if e.Seed == 0 {
			t.Errorf("entry %d has zero stream seed", i)
		}
		if e.Difficulty != gen.Difficulty(e.Index) {
			t.Errorf("entry %d difficulty %v, want %v", i, e.Difficulty, gen.Difficulty(e.Index))
		}
		if e.Attempts < 1 {
			t.Errorf("entry %d attempts %d, want at least 1", i, e.Attempts)
		}
		if e.GenMillis < 0 {
			t.Errorf("entry %d negative generation time %d", i, e.GenMillis)
		}
	}
}

func TestRunToleratesSaverFailure(t *testing.T) {
	root := t.TempDir()
	f := New(Options{Count: 1, Root: root, Seed: 3, Saver: failingSaver{}, Logger: quietLogger()})

	results, err := f.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if _, err := os.Stat(filepath.Join(root, "level1", "level1.map")); err != nil {
		t.Errorf("level still expected on disk after saver failure: %v", err)
	}
}

func TestRunRejectsNonPositiveCount(t *testing.T) {
	f := New(Options{Root: t.TempDir(), Logger: quietLogger()})
	if _, err := f.Run(); err == nil {
		t.Fatal("expected error for zero count")
	}
}
