package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// MAMACXParams is DoubleMAParams plus the relative-spread gating
// thresholds.
type MAMACXParams struct {
	DoubleMAParams
	NegThreshold float64
	PosThreshold float64
}

func (p *MAMACXParams) Len() int { return p.DoubleMAParams.Len() + 2 }

func (p *MAMACXParams) Generate(rng *rand.Rand) {
	p.DoubleMAParams.Generate(rng)
	p.NegThreshold = -chromoUniform(rng, 0, 0.1)
	p.PosThreshold = chromoUniform(rng, 0, 0.1)
}

func (p *MAMACXParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*MAMACXParams)
	base := p.DoubleMAParams.Len()
	if i < base {
		p.DoubleMAParams.Cross(&other.DoubleMAParams, i)
		return
	}
	switch i - base {
	case 0:
		p.NegThreshold = other.NegThreshold
	case 1:
		p.PosThreshold = other.PosThreshold
	}
}

func (p *MAMACXParams) Mutate(rng *rand.Rand, i int) {
	base := p.DoubleMAParams.Len()
	if i < base {
		p.DoubleMAParams.Mutate(rng, i)
		return
	}
	switch i - base {
	case 0:
		p.NegThreshold = -chromoUniform(rng, 0, 0.1)
	case 1:
		p.PosThreshold = chromoUniform(rng, 0, 0.1)
	}
}

func chromoUniform(rng *rand.Rand, lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

// MAMACX is DoubleMA with a threshold gate on the relative spread
// (short-long)/long: advice only fires once the spread has moved past
// neg_threshold (short) or pos_threshold (long).
type MAMACX struct {
	maturityCounter
	params      *MAMACXParams
	short, long indicators.Indicator
	prevState   int // -1 below neg, 0 neutral, 1 above pos
	haveState   bool
	advice      types.Advice
}

func NewMAMACX(params *MAMACXParams) *MAMACX {
	short := params.Short.New()
	long := params.Long.New()
	return &MAMACX{
		maturityCounter: newMaturityCounter(maxInt(short.Maturity(), long.Maturity())),
		params:          params,
		short:           short,
		long:            long,
	}
}

func (m *MAMACX) Params() chromosome.Chromosome { return m.params }

func (m *MAMACX) Update(candle types.Candle) {
	m.short.Update(candle.Close)
	m.long.Update(candle.Close)
	m.tick()

	m.advice = types.None
	if !m.Mature() {
		return
	}

	l := m.long.Value()
	spread := (m.short.Value() - l) / l
	state := 0
	switch {
	case spread <= m.params.NegThreshold:
		state = -1
	case spread >= m.params.PosThreshold:
		state = 1
	}

	if m.haveState && state != m.prevState {
		switch state {
		case 1:
			m.advice = types.Long
		case -1:
			m.advice = types.Short
		}
	}
	m.prevState = state
	m.haveState = true
}

func (m *MAMACX) Advice() types.Advice { return m.advice }
