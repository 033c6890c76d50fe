package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestMissing(t *testing.T) {
	assert.Len(t, Table{}.Missing(), 19)

	table := Table{
		Nanosleep: func(_, _ *unix.Timespec) error { return nil },
	}
	missing := table.Missing()
	assert.Len(t, missing, 18)
	assert.NotContains(t, missing, "nanosleep")
	assert.Contains(t, missing, "futex")
}

func TestUnresolved(t *testing.T) {
	err := Unresolved("nanosleep")
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Contains(t, err.Error(), "nanosleep")
}
