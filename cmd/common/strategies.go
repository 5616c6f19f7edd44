package common

import (
	"fmt"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/strategy"
)

// StrategyFamily pairs a fresh-chromosome constructor with the
// Signal-builder that interprets it, so both the backtest and optimize
// CLIs can select a strategy by name.
type StrategyFamily struct {
	NewParams func() chromosome.Chromosome
	NewSignal func(chromosome.Chromosome) strategy.Signal
}

// Strategies is the fixed catalog of strategy families the CLIs expose via
// -strategy.
var Strategies = map[string]StrategyFamily{
	"single-ma": {
		NewParams: func() chromosome.Chromosome { return &strategy.MAParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewSingleMA(c.(*strategy.MAParams)) },
	},
	"double-ma": {
		NewParams: func() chromosome.Chromosome { return &strategy.DoubleMAParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewDoubleMA(c.(*strategy.DoubleMAParams)) },
	},
	"triple-ma": {
		NewParams: func() chromosome.Chromosome { return &strategy.TripleMAParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewTripleMA(c.(*strategy.TripleMAParams)) },
	},
	"mamacx": {
		NewParams: func() chromosome.Chromosome { return &strategy.MAMACXParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewMAMACX(c.(*strategy.MAMACXParams)) },
	},
	"macd": {
		NewParams: func() chromosome.Chromosome { return &strategy.MacdParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewMacd(c.(*strategy.MacdParams)) },
	},
	"macd-rsi": {
		NewParams: func() chromosome.Chromosome { return &strategy.MacdRsiParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewMacdRsi(c.(*strategy.MacdRsiParams)) },
	},
	"four-week-rule": {
		NewParams: func() chromosome.Chromosome { return &strategy.FourWeekRuleParams{} },
		NewSignal: func(c chromosome.Chromosome) strategy.Signal { return strategy.NewFourWeekRule(c.(*strategy.FourWeekRuleParams)) },
	},
}

// ResolveStrategy looks up a strategy family by name, returning a
// formatted error listing the valid names on a miss.
func ResolveStrategy(name string) (StrategyFamily, error) {
	fam, ok := Strategies[name]
	if !ok {
		return StrategyFamily{}, fmt.Errorf("unknown strategy %q (valid: single-ma, double-ma, triple-ma, mamacx, macd, macd-rsi, four-week-rule)", name)
	}
	return fam, nil
}
