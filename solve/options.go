// Functional options for the linear solver, in the teacher's
// builder.BuilderOption idiom (functional options resolving into an
// immutable config, no hidden globals).
package solve

import "github.com/silvanis/pivot/field"

// Method selects the reduction strategy: EXACT (math/big.Rat, no
// precision loss) or FLOAT (float64, compatible with common numeric
// back-ends). Spec 6, "Recognized options".
type Method int

const (
	// EXACT reduces using the abstract field; integers promote to exact
	// rationals as needed.
	EXACT Method = iota
	// FLOAT reduces using double-precision floating point.
	FLOAT
)

type config struct {
	method Method
}

// Option customizes SolveEquationSet's behavior by mutating a config
// instance before solving begins.
type Option func(*config)

// WithMethod selects EXACT or FLOAT reduction. Default is EXACT.
func WithMethod(m Method) Option {
	return func(c *config) { c.method = m }
}

func newConfig(opts ...Option) config {
	cfg := config{method: EXACT}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) field() field.Field {
	if c.method == FLOAT {
		return field.FloatField
	}
	return field.Exact
}
