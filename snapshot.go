package timescaler

import (
	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/timeconv"
)

// Snapshot is a point-in-time view of the engine for diagnostics.
type Snapshot struct {
	Scale       float64  `json:"scale"`
	Verbosity   int      `json:"verbosity"`
	Hooks       []string `json:"hooks"`
	Passthrough bool     `json:"passthrough"`

	WallAnchor float64 `json:"wallAnchor"`
	MonoAnchor float64 `json:"monoAnchor"`
	CPUAnchor  float64 `json:"cpuAnchor"`

	// RealWall and VirtualWall are the current calendar reading and its
	// transform, in seconds. Zero when the wall handle is unresolved.
	RealWall    float64 `json:"realWall"`
	VirtualWall float64 `json:"virtualWall"`
}

// Snapshot reports the engine's immutable state together with a current
// wall reading taken through the real handle.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Scale:       e.cfg.Scale,
		Verbosity:   e.cfg.Verbosity,
		Hooks:       e.Hooks().Names(),
		Passthrough: e.passthrough,
		WallAnchor:  e.anchors.wall,
		MonoAnchor:  e.anchors.mono,
		CPUAnchor:   e.anchors.cpu,
	}

	if e.real.Gettimeofday != nil {
		var tv unix.Timeval
		if err := e.real.Gettimeofday(&tv); err == nil {
			snap.RealWall = timeconv.FromTimeval(tv)
			snap.VirtualWall = e.toVirtual(e.anchors.wall, snap.RealWall)
		}
	}

	return snap
}
