package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// MacdParams holds the MACD's three periods (short, long, signal).
type MacdParams struct {
	ShortPeriod, LongPeriod, SignalPeriod int
}

func genMacdPeriod(rng *rand.Rand) int { return 2 + rng.Intn(98) }

func (p *MacdParams) Len() int { return 3 }

func (p *MacdParams) Generate(rng *rand.Rand) {
	p.ShortPeriod = genMacdPeriod(rng)
	p.LongPeriod = genMacdPeriod(rng)
	p.SignalPeriod = genMacdPeriod(rng)
}

func (p *MacdParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*MacdParams)
	switch i {
	case 0:
		p.ShortPeriod = other.ShortPeriod
	case 1:
		p.LongPeriod = other.LongPeriod
	case 2:
		p.SignalPeriod = other.SignalPeriod
	}
}

func (p *MacdParams) Mutate(rng *rand.Rand, i int) {
	switch i {
	case 0:
		p.ShortPeriod = genMacdPeriod(rng)
	case 1:
		p.LongPeriod = genMacdPeriod(rng)
	case 2:
		p.SignalPeriod = genMacdPeriod(rng)
	}
}

// Macd advises on the sign change of the MACD histogram (macd - signal):
// Long when the histogram crosses from non-positive to positive, Short on
// the opposite crossing.
type Macd struct {
	maturityCounter
	params       *MacdParams
	macd         *indicators.MACD
	prevPositive bool
	havePrev     bool
	advice       types.Advice
}

func NewMacd(params *MacdParams) *Macd {
	macd := indicators.NewMACD(params.ShortPeriod, params.LongPeriod, params.SignalPeriod)
	return &Macd{
		maturityCounter: newMaturityCounter(macd.Maturity()),
		params:          params,
		macd:            macd,
	}
}

func (m *Macd) Params() chromosome.Chromosome { return m.params }

func (m *Macd) Update(candle types.Candle) {
	m.macd.Update(candle.Close)
	m.tick()

	m.advice = types.None
	if !m.Mature() {
		return
	}

	positive := m.macd.Histogram() > 0
	if m.havePrev && positive != m.prevPositive {
		if positive {
			m.advice = types.Long
		} else {
			m.advice = types.Short
		}
	}
	m.prevPositive = positive
	m.havePrev = true
}

func (m *Macd) Advice() types.Advice { return m.advice }
