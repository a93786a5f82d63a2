// Package rating implements the premium rating engines: deterministic,
// multi-factor pricing for vehicle and group health insurance driven by
// an external rating table. Every calculation is a pure function of its
// input and the table; the engine holds no mutable pricing state.
package rating

import (
	"sync/atomic"
	"time"

	"github.com/insrate/insrate/internal/ratetable"
)

// Logger is the minimal logging surface the engine needs. The zero
// engine logs nowhere.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// FallbackStats counts the silent substitutions the engine performs.
// The fallbacks themselves are deliberate (a quote is always produced);
// the counters exist so misconfiguration is visible to whoever watches
// the logs or scrapes these numbers.
type FallbackStats struct {
	UnknownVehicleCategory atomic.Uint64
	UnknownCoverageTier    atomic.Uint64
	UnknownSector          atomic.Uint64
	UnknownLossType        atomic.Uint64
	UnknownFrequency       atomic.Uint64
	InsuredCountClamped    atomic.Uint64
}

// Engine evaluates premium calculations against one rating table. A nil
// table is valid and prices everything with the hardcoded defaults.
// Engines are safe for concurrent use: the table is never mutated and
// the stats counters are atomic.
type Engine struct {
	Table *ratetable.Table

	// CurrentYear pins "today" for vehicle-age math; zero means the
	// wall clock's year.
	CurrentYear int

	// Now supplies quote timestamps; nil means time.Now.
	Now func() time.Time

	Stats  FallbackStats
	logger Logger
}

// NewEngine creates an engine priced from t. A nil t degrades to
// default pricing.
func NewEngine(t *ratetable.Table) *Engine {
	return &Engine{Table: t, logger: nopLogger{}}
}

// SetLogger routes fallback warnings and debug output to l.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	e.logger = l
}

func (e *Engine) log() Logger {
	if e.logger == nil {
		return nopLogger{}
	}
	return e.logger
}

func (e *Engine) currentYear() int {
	if e.CurrentYear != 0 {
		return e.CurrentYear
	}
	return e.now().Year()
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
