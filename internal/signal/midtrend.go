// Package signal provides the composable building blocks that turn raw
// indicator crossings into trading Advice: mid-trend suppression,
// persistence debouncing, change detection, and advice combination.
package signal

import "github.com/quantbt/enginecore/pkg/types"

// MidTrendPolicy controls whether a strategy starting mid-trend is allowed
// to enter on its very first advice.
type MidTrendPolicy int

const (
	Current MidTrendPolicy = iota
	Previous
	Ignore
)

func (p MidTrendPolicy) String() string {
	switch p {
	case Previous:
		return "previous"
	case Ignore:
		return "ignore"
	default:
		return "current"
	}
}

// MidTrend suppresses the very first advice when Policy is Ignore, so a
// strategy that starts mid-trend does not enter on tick one. Current and
// Previous are both the identity: the suppression logic below only gates
// on Ignore.
type MidTrend struct {
	policy     MidTrendPolicy
	disabled   bool
	lastAdvice types.Advice
	haveLast   bool
}

func NewMidTrend(policy MidTrendPolicy) *MidTrend {
	m := &MidTrend{policy: policy}
	if policy != Ignore {
		m.disabled = true
	}
	return m
}

// Maturity is 0 for Current, 1 otherwise (one tick is consumed observing
// the first advice before Ignore can compare against it).
func (m *MidTrend) Maturity() int {
	if m.policy == Current {
		return 0
	}
	return 1
}

// Update returns v unchanged once disabled. In Ignore mode it returns None
// until a second, different advice is observed, at which point it emits
// that advice and disables itself permanently.
func (m *MidTrend) Update(v types.Advice) types.Advice {
	if m.disabled {
		return v
	}
	if !m.haveLast {
		m.haveLast = true
		m.lastAdvice = v
		return types.None
	}
	if v != m.lastAdvice {
		m.disabled = true
		return v
	}
	return types.None
}
