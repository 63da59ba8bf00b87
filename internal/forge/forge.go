// Package forge orchestrates level generation batches. It resumes numbering
// from what is already on disk, sizes each level from its predecessor,
// derives one independent random stream per level, runs the generators,
// optionally in parallel, and writes accepted levels out in index order.
package forge

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelsmith/internal/gen"
	"github.com/vovakirdan/levelsmith/internal/levels"
)

// LevelEntry describes one generated level for cataloging.
type LevelEntry struct {
	Index      int
	Width      int
	Height     int
	Seed       uint64 // stream seed of this level, not the batch master seed
	Difficulty float64
	Capability gen.Capability
	Attempts   int
	GenMillis  int64
}

// CatalogSaver persists catalog entries for generated levels.
// This allows the forge to record batches without depending on the storage
// package; the caller wires an implementation in.
type CatalogSaver interface {
	SaveLevelEntry(e LevelEntry) error
}

// Options configures a generation batch.
type Options struct {
	Count      int    // how many new levels to generate
	Root       string // levels root directory
	Seed       uint64 // master seed; 0 seeds from the wall clock
	Workers    int    // parallel generation workers; below 2 runs sequentially
	Attempts   int    // per-level retry ceiling; gen.DefaultAttempts when 0
	BaseWidth  int    // virtual level-zero size used when the root is empty
	BaseHeight int
	Music      levels.MusicMeta
	Saver      CatalogSaver // optional, can be nil
	Logger     *log.Logger  // optional, a default stderr logger is built when nil
}

// Forge runs generation batches.
type Forge struct {
	opts   Options
	logger *log.Logger
}

// New creates a forge, filling unset options with defaults.
func New(opts Options) *Forge {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "levelsmith",
		})
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BaseWidth <= 0 {
		opts.BaseWidth = gen.DefaultWidth
	}
	if opts.BaseHeight <= 0 {
		opts.BaseHeight = gen.DefaultHeight
	}
	if opts.Music.Playlist == nil && opts.Music.Bitcrusher == (levels.BitcrusherMeta{}) {
		opts.Music = levels.DefaultMusic()
	}
	return &Forge{opts: opts, logger: logger}
}

// plan is one scheduled level: its parameters plus the random stream that
// already produced its size and will drive its generation.
type plan struct {
	params gen.Params
	seed   uint64
	rng    *gen.SimpleRNG
}

// Run generates the configured number of new levels and returns them in
// index order. Levels are written as level{k} directories after the whole
// batch has generated; a failed level aborts the batch but leaves the
// successfully written predecessors in place.
func (f *Forge) Run() ([]*gen.Result, error) {
	if f.opts.Count <= 0 {
		return nil, fmt.Errorf("forge: count must be positive, got %d", f.opts.Count)
	}

	master := f.opts.Seed
	if master == 0 {
		master = uint64(time.Now().UnixNano())
	}

	scanner := levels.NewScanner(f.opts.Root)
	lastIdx, err := scanner.LastIndex()
	if err != nil {
		return nil, err
	}

	prevW, prevH := f.opts.BaseWidth, f.opts.BaseHeight
	if lastIdx > 0 {
		prevW, prevH = scanner.LastSize(lastIdx)
		f.logger.Info("resuming existing levels root", "after", lastIdx, "size", fmt.Sprintf("%dx%d", prevW, prevH))
	}

	f.logger.Info("starting batch", "count", f.opts.Count, "seed", master, "root", f.opts.Root)

	// Sizes chain from level to level, so they are drawn sequentially up
	// front. Each level's stream begins with its own sizing draws and then
	// keeps driving that level's attempts, which is what makes a parallel
	// run produce byte-identical output to a sequential one.
	plans := make([]plan, f.opts.Count)
	for i := range plans {
		idx := lastIdx + 1 + i
		seed := gen.LevelSeed(master, idx)
		rng := gen.NewRNG(seed)
		w, h := gen.NextSize(prevW, prevH, idx, rng)
		plans[i] = plan{
			params: gen.Params{Index: idx, Width: w, Height: h, Attempts: f.opts.Attempts},
			seed:   seed,
			rng:    rng,
		}
		prevW, prevH = w, h
	}

	results := make([]*gen.Result, len(plans))
	errs := make([]error, len(plans))
	millis := make([]int64, len(plans))

	generate := func(i int) {
		start := time.Now()
		results[i], errs[i] = gen.NewGenerator(plans[i].rng).Generate(plans[i].params)
		millis[i] = time.Since(start).Milliseconds()
	}

	workers := f.opts.Workers
	if workers > len(plans) {
		workers = len(plans)
	}

	if workers <= 1 {
		for i := range plans {
			generate(i)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					generate(i)
				}
			}()
		}
		for i := range plans {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	writer := levels.NewWriter(f.opts.Root, f.opts.Music)
	var written []*gen.Result
	for i := range plans {
		if errs[i] != nil {
			return written, errs[i]
		}
		res := results[i]

		if err := writer.Write(res); err != nil {
			return written, err
		}
		if f.opts.Saver != nil {
			entry := LevelEntry{
				Index:      res.Index,
				Width:      res.Grid.W,
				Height:     res.Grid.H,
				Seed:       plans[i].seed,
				Difficulty: gen.Difficulty(res.Index),
				Capability: res.Capability,
				Attempts:   res.Attempts,
				GenMillis:  millis[i],
			}
			if err := f.opts.Saver.SaveLevelEntry(entry); err != nil {
				f.logger.Warn("could not record level in catalog", "index", res.Index, "error", err)
			}
		}

		f.logger.Info("generated level",
			"index", res.Index,
			"size", fmt.Sprintf("%dx%d", res.Grid.W, res.Grid.H),
			"jump_up", res.Capability.MaxJumpUp,
			"gap", res.Capability.MaxGap,
			"attempts", res.Attempts,
		)
		written = append(written, res)
	}
	return written, nil
}
