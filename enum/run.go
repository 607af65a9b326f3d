package enum

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lootsmuggler/logictools/logic"
)

// A Result holds the finished catalog of a run together with how the run
// ended.
type Result struct {
	Catalog *Catalog

	// N and MaxOps are the effective run parameters.
	N      int
	MaxOps int
	// Generated counts the formulas produced and ingested.
	Generated int
	// Complete reports whether all 2^(2^n) truth tables were discovered.
	// A false value is the expected outcome when the ceiling is below
	// what full coverage requires; the partial catalog is still valid.
	Complete bool
	// Interrupted reports that the context was cancelled between size
	// classes. The catalog holds everything ingested up to that point.
	Interrupted bool
	Elapsed     time.Duration
}

// NumTables returns the number of distinct n-ary boolean functions,
// 2^(2^n).
func NumTables(n int) uint64 {
	return uint64(1) << (uint(1) << uint(n))
}

// Run enumerates formulas size class by size class, evaluates their truth
// tables and builds the catalog. It stops as soon as every table has been
// discovered, when the size ceiling is reached, or when ctx is cancelled.
//
// Within one size class, evaluation fans out over the configured workers;
// ingestion stays with a single owner and follows generation order, so
// results are identical whatever the worker count. Class k+1 only starts
// once class k is fully ingested, because it reads the frozen class pools
// as shared building material.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	cfg := makeconfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.n >= 4 {
		cfg.log.WithField("n", cfg.n).Warn("full table coverage is intractable for n >= 4; expect an incomplete catalog")
	}

	start := time.Now()
	gen := NewGenerator(cfg.n)
	cat := NewCatalog(cfg.n)
	res := &Result{Catalog: cat, N: cfg.n, MaxOps: cfg.maxOps}

	wanted := NumTables(cfg.n)
	for k := 0; k <= cfg.maxOps; k++ {
		if ctx.Err() != nil {
			res.Interrupted = true
			break
		}
		class := gen.Grow()
		tables := evalClass(ctx, class, cfg.n, cfg.workers)
		for i, f := range class {
			if err := cat.Ingest(f, tables[i]); err != nil {
				return nil, err
			}
		}
		res.Generated += len(class)
		cfg.log.WithFields(logrus.Fields{
			"ops":      k,
			"formulas": len(class),
			"tables":   cat.Len(),
		}).Debug("size class ingested")
		if uint64(cat.Len()) == wanted {
			res.Complete = true
			break
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// evalClass computes the truth table of every formula in the class, fanning
// out over the given number of workers. The result slice is indexed like the
// class, so ingestion order is independent of scheduling.
func evalClass(ctx context.Context, class []logic.Formula, n, workers int) []logic.Table {
	tables := make([]logic.Table, len(class))
	if workers > len(class) {
		workers = len(class)
	}
	if workers <= 1 {
		for i, f := range class {
			tables[i] = logic.TableOf(f, n)
		}
		return tables
	}
	g, _ := errgroup.WithContext(ctx)
	chunk := (len(class) + workers - 1) / workers
	for start := 0; start < len(class); start += chunk {
		lo, hi := start, start+chunk
		if hi > len(class) {
			hi = len(class)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				tables[i] = logic.TableOf(class[i], n)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return tables
}
