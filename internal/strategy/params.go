package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
)

// MAParams is the gene pair every single-MA-based strategy shares: which
// moving average to use, and over what period.
type MAParams struct {
	MA     indicators.MAChoice
	Period int
}

func genPeriod(rng *rand.Rand) int { return 2 + rng.Intn(98) } // [2,99]

// MAParams carries two differently-typed genes (an MA choice and an int
// period), so it implements Chromosome directly rather than through the
// single-typed Genes[T] table used elsewhere.
func (p *MAParams) Len() int { return 2 }

func (p *MAParams) Generate(rng *rand.Rand) {
	p.MA = indicators.GenMA(rng)
	p.Period = genPeriod(rng)
}

func (p *MAParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*MAParams)
	switch i {
	case 0:
		p.MA = other.MA
	case 1:
		p.Period = other.Period
	}
}

func (p *MAParams) Mutate(rng *rand.Rand, i int) {
	switch i {
	case 0:
		p.MA = indicators.GenMA(rng)
	case 1:
		p.Period = genPeriod(rng)
	}
}

// New builds a fresh Indicator instance from these params.
func (p *MAParams) New() indicators.Indicator { return p.MA.New(p.Period) }
