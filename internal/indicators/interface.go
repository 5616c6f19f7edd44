// Package indicators implements stateful, incrementally-updated moving
// averages and oscillators. Every indicator exposes the same maturity
// contract: callers must gate on Matured(t) before trusting Value().
package indicators

// Indicator is the contract every moving average, oscillator, and
// composite (MACD, Stochastic) satisfies.
type Indicator interface {
	// Update feeds the next price into the indicator's running state.
	Update(price float64)
	// Value returns the current indicator value. Unspecified before
	// maturity; callers must check Matured first.
	Value() float64
	// Maturity is the zero-based index of the first update after which
	// Value is meaningful (one less than the number of samples needed).
	Maturity() int
}

// Matured reports whether the indicator is mature once the update with
// zero-based index t has been applied (t+1 samples seen).
func Matured(ind Indicator, t int) bool {
	return t >= ind.Maturity()
}
