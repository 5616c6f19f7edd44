package optimization

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
)

// TradingParams is the full chromosome the genetic algorithm evolves: a
// trader-level gene block plus whatever strategy-specific genes the
// configured strategy contributes. Gene indices 0..TraderParams.Len()-1
// address the trader genes; the rest dispatch into Strategy.
type TradingParams struct {
	Trader   TraderParams
	Strategy chromosome.Chromosome
}

func (p *TradingParams) Len() int { return p.Trader.Len() + p.Strategy.Len() }

func (p *TradingParams) Generate(rng *rand.Rand) {
	p.Trader.Generate(rng)
	p.Strategy.Generate(rng)
}

func (p *TradingParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*TradingParams)
	base := p.Trader.Len()
	if i < base {
		p.Trader.Cross(&other.Trader, i)
		return
	}
	p.Strategy.Cross(other.Strategy, i-base)
}

func (p *TradingParams) Mutate(rng *rand.Rand, i int) {
	base := p.Trader.Len()
	if i < base {
		p.Trader.Mutate(rng, i)
		return
	}
	p.Strategy.Mutate(rng, i-base)
}

// CopyFrom overwrites every gene of p with src's, gene by gene, so p ends
// up an independent value-equal copy (p.Strategy must already be a fresh
// instance of the matching concrete type, e.g. from the same factory
// that produced src.Strategy).
func (p *TradingParams) CopyFrom(src *TradingParams) {
	for i := 0; i < p.Len(); i++ {
		p.Cross(src, i)
	}
}

// Individual is one TradingParams chromosome plus the fitness last
// computed for it. Fitness is NaN until the population is evaluated.
type Individual struct {
	Params  *TradingParams
	Fitness float64
}
