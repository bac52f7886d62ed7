// Package verify cross-checks the table-driven evaluator against the
// pattern classifier, either over every 5-card hand or over random deals.
package verify

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	ph "github.com/paulhankin/poker"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

// Mode selects how hands are generated.
type Mode string

const (
	ModeExhaustive Mode = "exhaustive"
	ModeSample     Mode = "sample"
)

// sampleBatch is how many sampled hands a worker evaluates between
// progress updates and cancellation checks.
const sampleBatch = 1024

// Options configures a run.
type Options struct {
	Mode          Mode
	Workers       int
	Samples       int
	Seed          int64
	MaxMismatches int
	Interval      time.Duration
	Reference     bool
}

// Progress is a snapshot of a running verification.
type Progress struct {
	Done    int
	Total   int
	Elapsed time.Duration
}

// Fraction returns completion in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// Runner executes verification runs.
type Runner struct {
	opts       Options
	logger     *log.Logger
	clock      quartz.Clock
	onProgress func(Progress)
}

// NewRunner creates a runner. Zero Workers uses GOMAXPROCS and a zero
// Interval reports progress every second.
func NewRunner(opts Options, logger *log.Logger, clock quartz.Clock) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.MaxMismatches < 0 {
		opts.MaxMismatches = 0
	}
	return &Runner{
		opts:   opts,
		logger: logger.WithPrefix("verify"),
		clock:  clock,
	}
}

// OnProgress registers fn to receive progress snapshots. fn is called from
// the progress goroutine and once more when the run ends.
func (r *Runner) OnProgress(fn func(Progress)) {
	r.onProgress = fn
}

// Run evaluates hands until the mode is exhausted or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	opts := r.opts
	var total int
	switch opts.Mode {
	case ModeExhaustive:
		total = TotalHands
	case ModeSample:
		if opts.Samples < 1 {
			return nil, fmt.Errorf("sample mode needs a positive sample count, got %d", opts.Samples)
		}
		total = opts.Samples
	default:
		return nil, fmt.Errorf("unknown verification mode %q", opts.Mode)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var deck *[52]ph.Card
	if opts.Reference {
		var err error
		if deck, err = referenceDeck(); err != nil {
			return nil, err
		}
	}

	r.logger.Info("Verification started",
		"mode", opts.Mode,
		"hands", total,
		"workers", opts.Workers,
		"reference", opts.Reference)

	start := r.clock.Now()
	var done atomic.Int64
	stop := r.watchProgress(ctx, &done, total, start)

	var (
		t   *tally
		err error
	)
	if opts.Mode == ModeExhaustive {
		t, err = r.runExhaustive(ctx, deck, &done)
	} else {
		t, err = r.runSample(ctx, deck, &done)
	}
	stop()

	elapsed := r.clock.Since(start)
	r.emit(Progress{Done: int(done.Load()), Total: total, Elapsed: elapsed})
	if err != nil {
		return nil, err
	}

	report := newReport(opts, t, elapsed)
	for _, m := range report.Mismatches {
		r.logger.Warn("Evaluators disagree",
			"hand", m.Hand,
			"strength", int(m.Strength),
			"fast", m.Fast,
			"pattern", m.Pattern)
	}
	r.logger.Info("Verification finished",
		"hands", report.Hands,
		"distinct", report.DistinctStrengths,
		"mismatches", report.MismatchCount,
		"elapsed", elapsed.Round(time.Millisecond))
	return report, nil
}

// watchProgress reports progress on every tick until the returned stop
// function is called.
func (r *Runner) watchProgress(ctx context.Context, done *atomic.Int64, total int, start time.Time) func() {
	ticker := r.clock.NewTicker(r.opts.Interval, "verify", "progress")
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p := Progress{Done: int(done.Load()), Total: total, Elapsed: r.clock.Since(start)}
				r.logger.Debug("Progress", "done", p.Done, "total", p.Total, "percent", fmt.Sprintf("%.1f", 100*p.Fraction()))
				r.emit(p)
			}
		}
	}()

	return func() {
		cancel()
		ticker.Stop()
		wg.Wait()
	}
}

func (r *Runner) emit(p Progress) {
	if r.onProgress != nil {
		r.onProgress(p)
	}
}

func (r *Runner) newTally(deck *[52]ph.Card) *tally {
	t := &tally{}
	if deck != nil {
		t.ref = newReferenceChecker(deck)
	}
	return t
}

// runExhaustive splits the enumeration by its first two card indices and
// feeds those prefixes to a fixed pool of workers.
func (r *Runner) runExhaustive(ctx context.Context, deck *[52]ph.Card, done *atomic.Int64) (*tally, error) {
	type prefix struct{ a, b int }

	cards := poker.AllCards()
	g, ctx := errgroup.WithContext(ctx)
	prefixes := make(chan prefix)
	results := make(chan *tally, r.opts.Workers)

	g.Go(func() error {
		defer close(prefixes)
		for a := 0; a < len(cards)-4; a++ {
			for b := a + 1; b < len(cards)-3; b++ {
				select {
				case prefixes <- prefix{a, b}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})

	for w := 0; w < r.opts.Workers; w++ {
		g.Go(func() error {
			t := r.newTally(deck)
			for p := range prefixes {
				if err := ctx.Err(); err != nil {
					return err
				}
				h := poker.Hand{cards[p.a], cards[p.b]}
				n := 0
				for c := p.b + 1; c < len(cards)-2; c++ {
					h[2] = cards[c]
					for d := c + 1; d < len(cards)-1; d++ {
						h[3] = cards[d]
						for e := d + 1; e < len(cards); e++ {
							h[4] = cards[e]
							t.observe(h, r.opts.MaxMismatches)
							n++
						}
					}
				}
				done.Add(int64(n))
			}

			select {
			case results <- t:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	return r.collect(g, results)
}

// runSample deals random hands. Each worker draws from its own stream so a
// seed reproduces the same hands for the same worker count.
func (r *Runner) runSample(ctx context.Context, deck *[52]ph.Card, done *atomic.Int64) (*tally, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *tally, r.opts.Workers)

	perWorker := r.opts.Samples / r.opts.Workers
	remainder := r.opts.Samples % r.opts.Workers

	for w := 0; w < r.opts.Workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}

		g.Go(func() error {
			d := poker.NewDeck(randutil.Stream(r.opts.Seed, w))
			t := r.newTally(deck)
			for i := 0; i < n; i++ {
				if i%sampleBatch == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
					if i > 0 {
						done.Add(sampleBatch)
					}
				}
				d.Shuffle()
				h, _ := d.DealHand()
				t.observe(h, r.opts.MaxMismatches)
			}
			if n > 0 {
				done.Add(int64((n-1)%sampleBatch + 1))
			}

			select {
			case results <- t:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	return r.collect(g, results)
}

func (r *Runner) collect(g *errgroup.Group, results chan *tally) (*tally, error) {
	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	merged := &tally{}
	for t := range results {
		merged.merge(t, r.opts.MaxMismatches)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}
