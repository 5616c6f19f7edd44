package indicators

// Stochastic is the %K/%D stochastic oscillator. Unlike the close-only
// indicators above it needs the full high/low/close of each candle, so it
// exposes UpdateHLC instead of the single-price Update.
type Stochastic struct {
	kPeriod, dPeriod, smooth int
	highs, lows              []float64
	pos, filled              int
	rawK                     *SMA // smooths raw %K into %K when smooth > 1
	kSMA                     *SMA
	k, d                     float64
}

func NewStochastic(kPeriod, dPeriod, smooth int) *Stochastic {
	if smooth < 1 {
		smooth = 1
	}
	return &Stochastic{
		kPeriod: kPeriod,
		dPeriod: dPeriod,
		smooth:  smooth,
		highs:   make([]float64, kPeriod),
		lows:    make([]float64, kPeriod),
		rawK:    NewSMA(smooth),
		kSMA:    NewSMA(dPeriod),
	}
}

func (s *Stochastic) UpdateHLC(high, low, close float64) {
	s.highs[s.pos] = high
	s.lows[s.pos] = low
	s.pos = (s.pos + 1) % s.kPeriod
	if s.filled < s.kPeriod {
		s.filled++
	}
	if s.filled < s.kPeriod {
		return
	}

	hh, ll := s.highs[0], s.lows[0]
	for i := 1; i < s.kPeriod; i++ {
		if s.highs[i] > hh {
			hh = s.highs[i]
		}
		if s.lows[i] < ll {
			ll = s.lows[i]
		}
	}
	rawK := 50.0
	if hh != ll {
		rawK = (close - ll) / (hh - ll) * 100
	}
	s.rawK.Update(rawK)
	s.k = s.rawK.Value()
	s.kSMA.Update(s.k)
	s.d = s.kSMA.Value()
}

func (s *Stochastic) K() float64 { return s.k }
func (s *Stochastic) D() float64 { return s.d }

func (s *Stochastic) Maturity() int {
	return (s.kPeriod - 1) + s.smooth - 1 + s.dPeriod - 1
}
