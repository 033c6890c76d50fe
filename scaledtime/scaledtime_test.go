package scaledtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationConversions(t *testing.T) {
	c, err := NewClock(WithScale(2.0))
	require.NoError(t, err)

	assert.Equal(t, 4*time.Second, c.Real(2*time.Second))
	assert.Equal(t, time.Second, c.Virtual(2*time.Second))
	assert.Equal(t, 2.0, c.Scale())
}

func TestInvalidScale(t *testing.T) {
	_, err := NewClock(WithScale(0))
	assert.Error(t, err)

	_, err = NewClock(WithScale(-1))
	assert.Error(t, err)
}

func TestNowTracksAnchor(t *testing.T) {
	// A large scale factor almost freezes virtual time: after a real
	// pause, the virtual clock has moved forward, but by no more than
	// the real elapsed time shrunk by the scale.
	c, err := NewClock(WithScale(100.0))
	require.NoError(t, err)

	start := time.Now()
	time.Sleep(50 * time.Millisecond)
	realElapsed := time.Since(start)

	virtualElapsed := c.Since(c.Anchor())
	assert.GreaterOrEqual(t, virtualElapsed, time.Duration(0))
	assert.Less(t, virtualElapsed, realElapsed)
}

func TestNowMonotonic(t *testing.T) {
	c, err := NewClock(WithScale(3.0))
	require.NoError(t, err)

	previous := c.Now()
	for i := 0; i < 100; i++ {
		now := c.Now()
		assert.False(t, now.Before(previous))
		previous = now
	}
}

func TestSleep(t *testing.T) {
	c, err := NewClock()
	require.NoError(t, err)

	start := time.Now()
	c.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	// Non-positive durations return immediately.
	start = time.Now()
	c.Sleep(0)
	c.Sleep(-time.Second)
	assert.Less(t, time.Since(start), time.Second)
}
