// Package bench runs one solving session per dictionary word against the
// simulated authority and aggregates the outcomes. Sessions are fully
// independent and share only the read-only dictionary index, so the outer
// loop can fan out over a bounded worker pool.
package bench

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/henkexbg/gowordlesolver/solver"
	"github.com/henkexbg/gowordlesolver/words"
)

// Options configures a benchmark run.
type Options struct {
	Opener   words.Word // first guess for every session
	MaxTurns int        // per-session turn limit
	Workers  int        // concurrent sessions; <= 1 runs sequentially
	Progress bool       // render a progress bar
	Logger   *zerolog.Logger
}

// Stats aggregates all sessions of one run.
type Stats struct {
	Successes    int
	Failures     int
	AverageTurns float64       // mean turns among successful sessions
	MaxTurns     int           // worst successful session
	Elapsed      time.Duration // wall clock for the whole run
}

// Run plays every dictionary word as the secret and reduces the results.
func Run(dict *words.Dictionary, opts Options) (Stats, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	idx := solver.NewIndex(dict)
	sessionOpts := solver.Options{
		Opener:   opts.Opener,
		MaxTurns: opts.MaxTurns,
		Logger:   opts.Logger,
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(dict.Len()))
	} else {
		bar = progressbar.DefaultSilent(int64(dict.Len()))
	}

	var (
		mu         sync.Mutex
		stats      Stats
		totalTurns int
	)

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < dict.Len(); i++ {
		secret := dict.At(i)
		g.Go(func() error {
			result, err := solver.Play(idx, solver.Simulator{Secret: secret}, sessionOpts)
			if err != nil {
				return err
			}
			mu.Lock()
			if result.Status == solver.Won {
				stats.Successes++
				totalTurns += result.Turns
				if result.Turns > stats.MaxTurns {
					stats.MaxTurns = result.Turns
				}
			} else {
				stats.Failures++
			}
			mu.Unlock()
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats.Elapsed = time.Since(start)
	if stats.Successes > 0 {
		stats.AverageTurns = float64(totalTurns) / float64(stats.Successes)
	}
	return stats, nil
}
