package introspect

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/pion/timescaler"
	"github.com/pion/timescaler/config"
	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/platform"
)

func testEngine(t *testing.T) *timescaler.Engine {
	t.Helper()

	table := platform.Table{
		Gettimeofday: func(tv *unix.Timeval) error {
			*tv = unix.Timeval{Sec: 1000}

			return nil
		},
	}
	engine, err := timescaler.NewEngine(
		timescaler.WithConfig(config.Config{Scale: 2.0, Verbosity: config.Silent, Hooks: hooks.All}),
		timescaler.WithTable(table),
	)
	require.NoError(t, err)

	return engine
}

func TestStreamsSnapshots(t *testing.T) {
	handler, err := NewHandler(testEngine(t), WithInterval(10*time.Millisecond))
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = conn.Close() }()

	for i := 0; i < 2; i++ {
		var snap timescaler.Snapshot
		require.NoError(t, conn.ReadJSON(&snap))
		assert.Equal(t, 2.0, snap.Scale)
		assert.Equal(t, 1000.0, snap.WallAnchor)
		assert.Equal(t, 1000.0, snap.VirtualWall)
		assert.Contains(t, snap.Hooks, "clock_gettime")
	}
}
