// Package cycler recolors a single page element through a fixed palette,
// one palette entry per tick.
//
// A Cycler holds no timer of its own. The host owns scheduling and calls Tick
// once per period, strictly sequentially: the TUI host chains tea.Tick
// commands, the headless host uses a Runner.
package cycler

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/page"
)

// Target is anything whose text color can be set.
type Target interface {
	SetColor(hex string)
}

// Cycler owns the palette and the cycle index for one target element.
type Cycler struct {
	palette core.Palette
	target  Target
	index   uint64

	stopped  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a cycler for target. A nil target is allowed: ticks still
// advance the index but apply nothing.
func New(target Target) *Cycler {
	return &Cycler{
		palette: core.DefaultPalette,
		target:  target,
		done:    make(chan struct{}),
	}
}

// Attach resolves core.TargetID in doc once and binds a cycler to it.
// If the element is absent the cycler runs without a target.
func Attach(doc *page.Document) *Cycler {
	el, ok := doc.ElementByID(core.TargetID)
	if !ok {
		return New(nil)
	}
	return New(el)
}

// Tick applies the color for the current index to the target and advances
// the index. It returns the color selected, or "" once stopped.
func (c *Cycler) Tick() string {
	if c.stopped.Load() {
		return ""
	}

	color := c.palette.At(c.index)
	if c.target != nil {
		c.target.SetColor(color)
	}
	c.index++
	return color
}

// Index returns the number of ticks processed so far.
func (c *Cycler) Index() uint64 {
	return c.index
}

// HasTarget reports whether the target element was found.
func (c *Cycler) HasTarget() bool {
	return c.target != nil
}

// Palette returns a copy of the palette in use.
func (c *Cycler) Palette() core.Palette {
	return c.palette
}

// Stop ends cycling. Safe to call more than once and from any goroutine.
func (c *Cycler) Stop() {
	c.stopOnce.Do(func() {
		c.stopped.Store(true)
		close(c.done)
	})
}

// Stopped reports whether Stop has been called.
func (c *Cycler) Stopped() bool {
	return c.stopped.Load()
}

// Done returns a channel closed by Stop.
func (c *Cycler) Done() <-chan struct{} {
	return c.done
}
