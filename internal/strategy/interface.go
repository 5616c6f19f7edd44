// Package strategy implements the composite Signal strategies the trading
// simulator consults for advice each candle: SingleMA, DoubleMA, TripleMA,
// MAMACX, Macd, MacdRsi, FourWeekRule, and the generic Sig/SigOsc wrappers.
package strategy

import (
	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/pkg/types"
)

// Strategy is the contract every strategy implementation satisfies.
type Strategy interface {
	Params() chromosome.Chromosome
	Maturity() int
	Mature() bool
	Update(candle types.Candle)
}

// Signal strategies additionally expose the advice they currently hold.
type Signal interface {
	Strategy
	Advice() types.Advice
}

// Oscillator strategies expose overbought/oversold state instead of (or in
// addition to) a directional advice, for use as a Sig/SigOsc filter.
type Oscillator interface {
	Strategy
	Overbought() bool
	Oversold() bool
}

// maturityCounter tracks candles seen, saturating once the strategy has
// matured. t counts calls to tick (one per Update); a strategy is mature
// once it has processed t1+1 candles (candle index t1, zero-based), i.e.
// once t > t1.
type maturityCounter struct {
	t, t1 int
}

func newMaturityCounter(t1 int) maturityCounter {
	return maturityCounter{t1: t1}
}

func (m *maturityCounter) tick() {
	if m.t <= m.t1 {
		m.t++
	}
}

func (m maturityCounter) Maturity() int { return m.t1 }
func (m maturityCounter) Mature() bool  { return m.t > m.t1 }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
