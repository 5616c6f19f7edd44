package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// DoubleMAParams holds the short and long moving-average configurations.
type DoubleMAParams struct {
	Short MAParams
	Long  MAParams
}

func (p *DoubleMAParams) Len() int { return p.Short.Len() + p.Long.Len() }

func (p *DoubleMAParams) Generate(rng *rand.Rand) {
	p.Short.Generate(rng)
	p.Long.Generate(rng)
}

func (p *DoubleMAParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*DoubleMAParams)
	if i < p.Short.Len() {
		p.Short.Cross(&other.Short, i)
		return
	}
	p.Long.Cross(&other.Long, i-p.Short.Len())
}

func (p *DoubleMAParams) Mutate(rng *rand.Rand, i int) {
	if i < p.Short.Len() {
		p.Short.Mutate(rng, i)
		return
	}
	p.Long.Mutate(rng, i-p.Short.Len())
}

// DoubleMA advises on a short-MA crossing a long-MA, emitting advice only
// on the crossing event (not every mature candle).
type DoubleMA struct {
	maturityCounter
	params     *DoubleMAParams
	short, long indicators.Indicator
	prevAbove   bool
	havePrev    bool
	advice      types.Advice
}

func NewDoubleMA(params *DoubleMAParams) *DoubleMA {
	short := params.Short.New()
	long := params.Long.New()
	return &DoubleMA{
		maturityCounter: newMaturityCounter(maxInt(short.Maturity(), long.Maturity())),
		params:          params,
		short:           short,
		long:            long,
	}
}

func (d *DoubleMA) Params() chromosome.Chromosome { return d.params }

func (d *DoubleMA) Update(candle types.Candle) {
	d.short.Update(candle.Close)
	d.long.Update(candle.Close)
	d.tick()

	d.advice = types.None
	if !d.Mature() {
		return
	}

	above := d.short.Value() > d.long.Value()
	if d.havePrev && above != d.prevAbove {
		if above {
			d.advice = types.Long
		} else {
			d.advice = types.Short
		}
	}
	d.prevAbove = above
	d.havePrev = true
}

func (d *DoubleMA) Advice() types.Advice { return d.advice }
