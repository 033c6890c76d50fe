// Package introspect streams engine state over a websocket so that a test
// harness or operator tooling can watch the transform live: effective
// scale, hook selection, anchors, and current real versus virtual readings.
package introspect

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	pionlogging "github.com/pion/logging"

	"github.com/pion/timescaler"
	"github.com/pion/timescaler/logging"
)

const defaultInterval = time.Second

// Snapshotter is the engine-state source; *timescaler.Engine implements it.
type Snapshotter interface {
	Snapshot() timescaler.Snapshot
}

// Handler upgrades each request to a websocket and pushes one snapshot
// immediately, then one per interval, until the peer goes away.
type Handler struct {
	source   Snapshotter
	interval time.Duration
	upgrader websocket.Upgrader
	log      pionlogging.LeveledLogger
}

// Option configures a Handler.
type Option func(*Handler) error

// WithInterval sets the snapshot period. The default is one second.
func WithInterval(interval time.Duration) Option {
	return func(h *Handler) error {
		h.interval = interval

		return nil
	}
}

// WithLoggerFactory sets the factory used for the handler's diagnostics.
func WithLoggerFactory(factory pionlogging.LoggerFactory) Option {
	return func(h *Handler) error {
		h.log = factory.NewLogger("introspect")

		return nil
	}
}

// NewHandler builds a Handler streaming snapshots from source.
func NewHandler(source Snapshotter, options ...Option) (*Handler, error) {
	h := &Handler{
		source:   source,
		interval: defaultInterval,
	}

	for _, option := range options {
		if err := option(h); err != nil {
			return nil, err
		}
	}

	if h.log == nil {
		h.log = logging.NewLoggerFactory(0).NewLogger("introspect")
	}

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("upgrade: %v", err)

		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			h.log.Debugf("close: %v", err)
		}
	}()

	// Drain control frames so pings and close handshakes are processed.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(h.source.Snapshot()); err != nil {
		h.log.Debugf("write: %v", err)

		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteJSON(h.source.Snapshot()); err != nil {
			h.log.Debugf("write: %v", err)

			return
		}
	}
}
