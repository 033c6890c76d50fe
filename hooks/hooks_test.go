package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	id, ok := Lookup("nanosleep")
	assert.True(t, ok)
	assert.Equal(t, Nanosleep, id)

	_, ok = Lookup("NANOSLEEP")
	assert.False(t, ok, "matching is case-sensitive")

	_, ok = Lookup("gettime")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	assert.True(t, All.Has(Futex))
	assert.False(t, None.Has(Futex))

	s := None.With(Select).With(Pselect)
	assert.True(t, s.Has(Select))
	assert.True(t, s.Has(Pselect))
	assert.False(t, s.Has(Poll))

	s = s.Without(Select)
	assert.False(t, s.Has(Select))
	assert.True(t, s.Has(Pselect))
}

func TestNames(t *testing.T) {
	s := None.With(Time).With(Alarm)
	assert.Equal(t, []string{"alarm", "time"}, s.Names())

	assert.Len(t, All.Names(), 19)
}

func TestString(t *testing.T) {
	assert.Equal(t, "clock_gettime", ClockGettime.String())
	assert.Equal(t, "unknown", ID(0).String())
}
