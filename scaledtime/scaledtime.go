// Package scaledtime presents virtual time to in-process Go code. It
// applies the same anchor-plus-scale transform as the syscall hooks, but on
// top of an injected time manager, so components written against the pion
// time-manager API can run against scaled time without interposition.
package scaledtime

import (
	"errors"
	"time"

	"github.com/pion/transport/v3/stdtime"
	"github.com/pion/transport/v3/xtime"
)

var errInvalidScale = errors.New("scale factor must be a positive real number")

// Clock maps the readings and waits of a reference time manager onto a
// virtual timeline. The anchor is captured once at construction; the clock
// is immutable afterward and safe for concurrent use.
type Clock struct {
	tm     xtime.Manager
	scale  float64
	anchor time.Time
}

// Option configures a Clock.
type Option func(*Clock) error

// WithTimeManager sets the reference time manager the clock tracks. The
// default is the standard manager backed by real time.
func WithTimeManager(tm xtime.Manager) Option {
	return func(c *Clock) error {
		c.tm = tm

		return nil
	}
}

// WithScale sets the ratio of reference elapsed time to virtual elapsed
// time. Values above one make virtual time elapse slower than the
// reference.
func WithScale(scale float64) Option {
	return func(c *Clock) error {
		if scale <= 0 {
			return errInvalidScale
		}
		c.scale = scale

		return nil
	}
}

// NewClock builds a clock anchored at the reference manager's current time.
func NewClock(options ...Option) (*Clock, error) {
	c := &Clock{
		tm:    stdtime.Manager{},
		scale: 1.0,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	c.anchor = c.tm.Now()

	return c, nil
}

// Scale returns the clock's scale factor.
func (c *Clock) Scale() float64 {
	return c.scale
}

// Anchor returns the reference instant at which virtual and reference time
// coincide.
func (c *Clock) Anchor() time.Time {
	return c.anchor
}

// Real converts a virtual duration into the reference duration it occupies.
func (c *Clock) Real(d time.Duration) time.Duration {
	return time.Duration(float64(d) * c.scale)
}

// Virtual converts a reference duration into the virtual duration it is
// perceived as.
func (c *Clock) Virtual(d time.Duration) time.Duration {
	return time.Duration(float64(d) / c.scale)
}

// Now returns the current virtual time. It equals the reference time
// exactly at the anchor instant and advances monotonically with it.
func (c *Clock) Now() time.Time {
	return c.anchor.Add(c.Virtual(c.tm.Now().Sub(c.anchor)))
}

// Since returns the virtual time elapsed since t.
func (c *Clock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Until returns the virtual duration until t.
func (c *Clock) Until(t time.Time) time.Duration {
	return t.Sub(c.Now())
}

// Sleep suspends the calling goroutine for at least the given virtual
// duration. Non-positive durations return immediately.
func (c *Clock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	tick := <-c.tm.NewTimer(c.Real(d), true).C()
	tick.Done()
}

// NewTimer returns a timer firing once after the given virtual duration has
// elapsed on the virtual timeline.
func (c *Clock) NewTimer(d time.Duration) xtime.Timer {
	return c.tm.NewTimer(c.Real(d), true)
}

// NewTicker returns a ticker firing every virtual interval.
func (c *Clock) NewTicker(d time.Duration) xtime.Ticker {
	return c.tm.NewTicker(c.Real(d))
}
