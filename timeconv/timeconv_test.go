package timeconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestTimespecRoundTrip(t *testing.T) {
	for _, ts := range []unix.Timespec{
		{Sec: 0, Nsec: 0},
		{Sec: 1, Nsec: 0},
		{Sec: 1000, Nsec: 500_000_000},
		{Sec: -2, Nsec: 500_000_000},
		{Sec: 0, Nsec: 1},
		{Sec: 12345, Nsec: 999_999_999},
	} {
		got := ToTimespec(FromTimespec(ts))
		assert.Equal(t, ts, got)
	}
}

func TestTimevalRoundTrip(t *testing.T) {
	for _, tv := range []unix.Timeval{
		{Sec: 0, Usec: 0},
		{Sec: 1, Usec: 0},
		{Sec: 1000, Usec: 500_000},
		{Sec: -2, Usec: 500_000},
		{Sec: 0, Usec: 1},
		{Sec: 12345, Usec: 999_999},
	} {
		got := ToTimeval(FromTimeval(tv))
		assert.Equal(t, tv, got)
	}
}

func TestToTimespecNormalizes(t *testing.T) {
	ts := ToTimespec(1.5)
	assert.Equal(t, int64(1), ts.Sec)
	assert.Equal(t, int64(500_000_000), ts.Nsec)

	ts = ToTimespec(-1.5)
	assert.Equal(t, int64(-2), ts.Sec)
	assert.Equal(t, int64(500_000_000), ts.Nsec)

	assert.Equal(t, -1.5, FromTimespec(ts))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, 10.0, FromTicks(1000, 100))
	assert.Equal(t, int64(1000), ToTicks(10.0, 100))
	assert.Equal(t, int64(0), ToTicks(0, 100))
	assert.Equal(t, int64(-500), ToTicks(-5, 100))
}

func TestScaleMillis(t *testing.T) {
	assert.Equal(t, 500, ScaleMillis(250, 2.0))
	assert.Equal(t, 125, ScaleMillis(250, 0.5))

	// Sentinels pass through unchanged.
	assert.Equal(t, -1, ScaleMillis(-1, 2.0))
	assert.Equal(t, 0, ScaleMillis(0, 2.0))
}
