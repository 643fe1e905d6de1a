package cosim

import (
	"log/slog"

	"github.com/wiredelta/cosim/internal/engine"
)

// Option configures a Kernel at construction time.
type Option = engine.Option

// WithConvergenceBound overrides the delta-loop iteration bound used to
// detect combinational loops (default 1000). Values <= 0 are ignored.
func WithConvergenceBound(n int) Option {
	return engine.WithConvergenceBound(n)
}

// WithLogger overrides the kernel's structured logger. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return engine.WithLogger(l)
}
