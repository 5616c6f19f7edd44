package strategy

import (
	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// SingleMA advises Long when price crosses above its moving average, Short
// when it crosses below, re-emitting the raw advice every mature candle.
type SingleMA struct {
	maturityCounter
	params *MAParams
	ma     indicators.Indicator
	advice types.Advice
}

func NewSingleMA(params *MAParams) *SingleMA {
	ma := params.New()
	return &SingleMA{
		maturityCounter: newMaturityCounter(ma.Maturity()),
		params:          params,
		ma:              ma,
	}
}

func (s *SingleMA) Params() chromosome.Chromosome { return s.params }

func (s *SingleMA) Update(candle types.Candle) {
	s.ma.Update(candle.Close)
	s.tick()
	if !s.Mature() {
		s.advice = types.None
		return
	}
	if candle.Close > s.ma.Value() {
		s.advice = types.Long
	} else {
		s.advice = types.Short
	}
}

func (s *SingleMA) Advice() types.Advice { return s.advice }
