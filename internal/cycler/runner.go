package cycler

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hello/internal/core"
)

// Ticker is the subset of *time.Ticker the Runner needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Runner drives a Cycler from a ticker without a terminal UI.
type Runner struct {
	cycler    *Cycler
	period    time.Duration
	newTicker TickerFunc
	logger    *log.Logger
	onTick    func(tick uint64, color string)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-tick and lifecycle messages.
func WithLogger(logger *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTickerFunc replaces the ticker source. Used by tests.
func WithTickerFunc(fn TickerFunc) RunnerOption {
	return func(r *Runner) {
		r.newTicker = fn
	}
}

// WithOnTick registers a callback invoked after every applied tick.
func WithOnTick(fn func(tick uint64, color string)) RunnerOption {
	return func(r *Runner) {
		r.onTick = fn
	}
}

// NewRunner creates a Runner ticking c every core.TickPeriod.
func NewRunner(c *Cycler, opts ...RunnerOption) *Runner {
	r := &Runner{
		cycler:    c,
		period:    core.TickPeriod,
		newTicker: NewTimeTicker,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks, ticking the cycler every period until ctx is done or the
// cycler is stopped. The first tick happens one full period after Run starts.
// Returns ctx.Err() on cancellation and nil when stopped.
func (r *Runner) Run(ctx context.Context) error {
	if !r.cycler.HasTarget() {
		r.logger.Warn("target element not found, ticks will not recolor anything", "element", core.TargetID)
	}

	ticker := r.newTicker(r.period)
	defer ticker.Stop()

	r.logger.Info("cycling started", "element", core.TargetID, "period", r.period)

	for {
		select {
		case <-ctx.Done():
			r.cycler.Stop()
			r.logger.Info("cycling stopped", "ticks", r.cycler.Index(), "reason", ctx.Err())
			return ctx.Err()
		case <-r.cycler.Done():
			r.logger.Info("cycling stopped", "ticks", r.cycler.Index())
			return nil
		case <-ticker.C():
			tick := r.cycler.Index()
			color := r.cycler.Tick()
			if color == "" {
				continue // Stopped between select and Tick; Done fires next
			}
			r.logger.Debug("recolor", "element", core.TargetID, "tick", tick, "color", color)
			if r.onTick != nil {
				r.onTick(tick, color)
			}
		}
	}
}
