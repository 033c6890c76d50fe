package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSystemResolvesEverything(t *testing.T) {
	assert.Empty(t, System().Missing())
}

func TestSystemReads(t *testing.T) {
	table := System()

	now, err := table.Time()
	require.NoError(t, err)
	assert.Greater(t, now, int64(0))

	var tv unix.Timeval
	require.NoError(t, table.Gettimeofday(&tv))
	assert.InDelta(t, now, tv.Sec, 1)

	var ts unix.Timespec
	require.NoError(t, table.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	assert.Greater(t, ts.Sec, int64(0))

	ticks, err := table.Clock()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ticks, int64(0))
}

func TestSystemNanosleep(t *testing.T) {
	table := System()
	req := unix.Timespec{Nsec: 1_000_000}
	assert.NoError(t, table.Nanosleep(&req, nil))
}
