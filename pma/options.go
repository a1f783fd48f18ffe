package pma

import "go.uber.org/zap"

// Option configures a PMA at construction time. This is the only
// environmental parameter surface the engine has: no wire protocol, CLI,
// or file format to configure.
type Option func(*PMA)

// WithDensityThresholds overrides the calibrator tree's root thresholds
// ρ_h and τ_h (defaults 0.25 and 0.75).
func WithDensityThresholds(rhoH, tauH float64) Option {
	return func(p *PMA) {
		p.rhoH = rhoH
		p.tauH = tauH
	}
}

// WithLogger injects a *zap.Logger for resize/spread/underflow events.
// Unset, the PMA logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(p *PMA) {
		p.logger = logger.Named("pma")
	}
}

// WithMaxCapacity sets a ceiling on total slot capacity. A resize that
// would exceed it returns ErrAllocationFailed instead of growing — Go has
// no recoverable allocation-failure signal, so a configured ceiling is the
// idiomatic stand-in.
func WithMaxCapacity(maxCapacity int) Option {
	return func(p *PMA) {
		p.maxCapacity = maxCapacity
	}
}
