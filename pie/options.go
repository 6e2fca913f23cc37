package pie

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("pie")

// ---------------------------------------------------------------------------
// Runtime options
// ---------------------------------------------------------------------------

// Options are the two global toggles of the object model, scoped to a
// Catalog instead of living in package globals.
type Options struct {
	// Warnings enables diagnostic warnings. Warnings are informational
	// only and never affect control flow.
	Warnings bool

	// ForeignWrites permits external writes of undeclared keys onto a
	// Facade. A permitted write is warned about and stored where the
	// object's own methods never look: external readers see the value,
	// internal logic does not.
	ForeignWrites bool
}

// DefaultOptions returns the defaults: warnings on, foreign writes off.
func DefaultOptions() Options {
	return Options{Warnings: true}
}

// warnf emits a diagnostic warning unless suppressed.
func (o Options) warnf(format string, args ...any) {
	if !o.Warnings {
		return
	}
	log.Warningf(format, args...)
}
