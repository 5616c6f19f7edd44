package signal

import "github.com/quantbt/enginecore/pkg/types"

// Combine merges two advices: None dominates, equal values pass through,
// and unequal non-None values yield Liquidate (an explicit veto, used to
// merge e.g. an oscillator filter with a raw crossing signal).
func Combine(a, b types.Advice) types.Advice {
	if a == types.None || b == types.None {
		return types.None
	}
	if a == b {
		return a
	}
	return types.Liquidate
}
