package timescaler

import (
	"sync/atomic"

	"github.com/pion/timescaler/config"
	"github.com/pion/timescaler/logging"
	"github.com/pion/timescaler/platform"
)

// Bootstrap states of the process-wide engine. Ready is terminal.
const (
	StateUninitialized int32 = iota
	StateInitializing
	StateReady
)

var (
	state   atomic.Int32
	ready   = make(chan struct{})
	deflt   *Engine
	bootErr error
)

// Bootstrap initializes the process-wide engine from the environment,
// exactly once. The first entrant wins the atomic transition and performs
// configuration resolution, table binding and anchor capture; every other
// concurrent entrant blocks until the winner publishes Ready.
//
// The returned error is non-nil only for an unusable scale factor; the
// engine still comes up, in forced passthrough, so the hosted process keeps
// running with real time.
func Bootstrap() error {
	if state.CompareAndSwap(StateUninitialized, StateInitializing) {
		deflt, bootErr = bootstrapFromEnv()
		state.Store(StateReady)
		close(ready)

		return bootErr
	}

	<-ready

	return bootErr
}

func bootstrapFromEnv() (*Engine, error) {
	cfg, warnings, err := config.Load()

	factory := logging.NewLoggerFactory(cfg.Verbosity)
	log := factory.NewLogger("timescaler")
	for _, warning := range warnings {
		log.Warnf("%s", warning)
	}
	if err != nil {
		log.Errorf("configuration: %v", err)
		cfg.Scale = 0 // NewEngine refuses it and forces passthrough
	}

	engine, newErr := NewEngine(
		WithConfig(cfg),
		WithTable(platform.System()),
		WithLoggerFactory(factory),
	)
	if newErr != nil {
		// None of the options above can fail; keep the contract anyway.
		return engine, newErr
	}

	return engine, err
}

// State returns the bootstrap state of the process-wide engine.
func State() int32 {
	return state.Load()
}

// Default returns the process-wide engine, bootstrapping it if no call has
// done so yet.
func Default() *Engine {
	//nolint:errcheck // a bad scale already surfaced to the bootstrap caller
	Bootstrap()

	return deflt
}
