package timescaler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/pion/timescaler/config"
)

// The process-wide engine bootstraps once, no matter how many callers race
// to be first. Shared state makes this a single test.
func TestBootstrapOnce(t *testing.T) {
	t.Setenv(config.EnvScale, "1.0")

	var group errgroup.Group
	engines := make([]*Engine, 8)
	for i := range engines {
		i := i
		group.Go(func() error {
			if err := Bootstrap(); err != nil {
				return err
			}
			engines[i] = Default()

			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.Equal(t, StateReady, State())
	for _, engine := range engines {
		assert.Same(t, engines[0], engine)
	}

	assert.Equal(t, 1.0, Default().Scale())

	// Identity configuration: an intercepted read matches the platform
	// within jitter.
	var tloc int64
	now, err := Default().Time(&tloc)
	require.NoError(t, err)
	assert.Equal(t, now, tloc)
	assert.Greater(t, now, int64(0))
}
