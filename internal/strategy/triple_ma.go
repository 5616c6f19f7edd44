package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// TripleMAParams holds three moving-average configurations, ordered
// short/medium/long.
type TripleMAParams struct {
	Short, Medium, Long MAParams
}

func (p *TripleMAParams) Len() int {
	return p.Short.Len() + p.Medium.Len() + p.Long.Len()
}

func (p *TripleMAParams) Generate(rng *rand.Rand) {
	p.Short.Generate(rng)
	p.Medium.Generate(rng)
	p.Long.Generate(rng)
}

func (p *TripleMAParams) parts() []*MAParams { return []*MAParams{&p.Short, &p.Medium, &p.Long} }

func (p *TripleMAParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*TripleMAParams)
	mine, theirs := p.parts(), other.parts()
	for idx, part := range mine {
		if i < part.Len() {
			part.Cross(theirs[idx], i)
			return
		}
		i -= part.Len()
	}
}

func (p *TripleMAParams) Mutate(rng *rand.Rand, i int) {
	for _, part := range p.parts() {
		if i < part.Len() {
			part.Mutate(rng, i)
			return
		}
		i -= part.Len()
	}
}

// TripleMA advises Long when short>medium>long, Short when
// short<medium<long, and Liquidate otherwise.
type TripleMA struct {
	maturityCounter
	params              *TripleMAParams
	short, medium, long indicators.Indicator
	advice              types.Advice
}

func NewTripleMA(params *TripleMAParams) *TripleMA {
	short := params.Short.New()
	medium := params.Medium.New()
	long := params.Long.New()
	t1 := maxInt(short.Maturity(), maxInt(medium.Maturity(), long.Maturity()))
	return &TripleMA{
		maturityCounter: newMaturityCounter(t1),
		params:          params,
		short:           short,
		medium:          medium,
		long:            long,
	}
}

func (t *TripleMA) Params() chromosome.Chromosome { return t.params }

func (t *TripleMA) Update(candle types.Candle) {
	t.short.Update(candle.Close)
	t.medium.Update(candle.Close)
	t.long.Update(candle.Close)
	t.tick()

	if !t.Mature() {
		t.advice = types.None
		return
	}

	s, m, l := t.short.Value(), t.medium.Value(), t.long.Value()
	switch {
	case s > m && m > l:
		t.advice = types.Long
	case s < m && m < l:
		t.advice = types.Short
	default:
		t.advice = types.Liquidate
	}
}

func (t *TripleMA) Advice() types.Advice { return t.advice }
