package strategy

import (
	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/signal"
	"github.com/quantbt/enginecore/pkg/types"
)

// Sig wraps any Signal strategy with mid-trend suppression and persistence
// debouncing, the generic composition the source applies uniformly to its
// directional signals instead of hand-duplicating the wrapping in each one.
type Sig struct {
	maturityCounter
	sig         Signal
	midTrend    *signal.MidTrend
	persistence *signal.Persistence
	advice      types.Advice
}

func NewSig(sig Signal, midTrend *signal.MidTrend, persistence *signal.Persistence) *Sig {
	t1 := sig.Maturity() + maxInt(midTrend.Maturity(), persistence.Maturity()) - 1
	if t1 < 0 {
		t1 = 0
	}
	return &Sig{
		maturityCounter: newMaturityCounter(t1),
		sig:             sig,
		midTrend:        midTrend,
		persistence:     persistence,
	}
}

func (s *Sig) Params() chromosome.Chromosome { return s.sig.Params() }

func (s *Sig) Update(candle types.Candle) {
	s.sig.Update(candle)
	s.tick()

	v := types.None
	if s.sig.Mature() {
		raw := s.sig.Advice()
		v = signal.Combine(s.midTrend.Update(raw), s.persistence.Update(raw))
	}

	if !s.Mature() {
		s.advice = types.None
		return
	}
	s.advice = v
}

func (s *Sig) Advice() types.Advice { return s.advice }

// OscillatorMode controls how SigOsc's oscillator filter interacts with the
// wrapped signal.
type OscillatorMode int

const (
	// Enforce requires the oscillator to agree (Overbought for Short,
	// Oversold for Long); otherwise the signal is replaced by Liquidate.
	Enforce OscillatorMode = iota
	// Prevent replaces the signal by Liquidate when the oscillator
	// disagrees (Overbought blocks Long, Oversold blocks Short).
	Prevent
)

// SigOsc is Sig additionally filtered by an Oscillator, in either Enforce
// or Prevent mode. Its maturity composes the wrapped signal's and the
// oscillator's maturities with the mid-trend/persistence warm-up:
//
//	t1 = max(sig.maturity, osc.maturity) + max(midtrend.maturity, persistence.maturity) - 1
type SigOsc struct {
	maturityCounter
	sig         Signal
	osc         Oscillator
	mode        OscillatorMode
	midTrend    *signal.MidTrend
	persistence *signal.Persistence
	advice      types.Advice
}

func NewSigOsc(sig Signal, osc Oscillator, mode OscillatorMode, midTrend *signal.MidTrend, persistence *signal.Persistence) *SigOsc {
	t1 := maxInt(sig.Maturity(), osc.Maturity()) + maxInt(midTrend.Maturity(), persistence.Maturity()) - 1
	if t1 < 0 {
		t1 = 0
	}
	return &SigOsc{
		maturityCounter: newMaturityCounter(t1),
		sig:             sig,
		osc:             osc,
		mode:            mode,
		midTrend:        midTrend,
		persistence:     persistence,
	}
}

func (s *SigOsc) Params() chromosome.Chromosome { return s.sig.Params() }

// filter enforces or prevents a directional advice based on the oscillator,
// yielding Liquidate (not None) on disagreement: a blocked Long/Short still
// forces an exit of any open position, it does not merely withhold entry.
func (s *SigOsc) filter(v types.Advice) types.Advice {
	switch s.mode {
	case Enforce:
		switch v {
		case types.Long:
			if !s.osc.Oversold() {
				return types.Liquidate
			}
		case types.Short:
			if !s.osc.Overbought() {
				return types.Liquidate
			}
		}
	case Prevent:
		switch v {
		case types.Long:
			if s.osc.Overbought() {
				return types.Liquidate
			}
		case types.Short:
			if s.osc.Oversold() {
				return types.Liquidate
			}
		}
	}
	return v
}

func (s *SigOsc) Update(candle types.Candle) {
	s.sig.Update(candle)
	s.osc.Update(candle)
	s.tick()

	v := types.None
	if s.sig.Mature() && s.osc.Mature() {
		raw := s.filter(s.sig.Advice())
		v = signal.Combine(s.midTrend.Update(raw), s.persistence.Update(raw))
	}

	if !s.Mature() {
		s.advice = types.None
		return
	}
	s.advice = v
}

func (s *SigOsc) Advice() types.Advice { return s.advice }
