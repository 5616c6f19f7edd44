package indicators

// MACD is the moving-average convergence/divergence oscillator: the
// difference of a short and long EMA, smoothed again by a signal EMA. The
// histogram (macd - signal) is what strategies key crossings off of.
type MACD struct {
	shortPeriod, longPeriod, signalPeriod int
	shortEMA, longEMA, signalEMA         *EMA
	macd, signal                          float64
}

func NewMACD(shortPeriod, longPeriod, signalPeriod int) *MACD {
	return &MACD{
		shortPeriod:  shortPeriod,
		longPeriod:   longPeriod,
		signalPeriod: signalPeriod,
		shortEMA:     NewEMA(shortPeriod),
		longEMA:      NewEMA(longPeriod),
		signalEMA:    NewEMA(signalPeriod),
	}
}

func (m *MACD) Update(price float64) {
	m.shortEMA.Update(price)
	m.longEMA.Update(price)
	m.macd = m.shortEMA.Value() - m.longEMA.Value()
	m.signalEMA.Update(m.macd)
	m.signal = m.signalEMA.Value()
}

// Value returns the MACD line (short EMA - long EMA).
func (m *MACD) Value() float64 { return m.macd }

// Signal returns the signal line (EMA of the MACD line).
func (m *MACD) Signal() float64 { return m.signal }

// Histogram returns macd - signal, the value strategies watch for sign
// changes.
func (m *MACD) Histogram() float64 { return m.macd - m.signal }

func (m *MACD) Maturity() int {
	base := m.longEMA.Maturity()
	if m.shortEMA.Maturity() > base {
		base = m.shortEMA.Maturity()
	}
	return base + m.signalEMA.Maturity()
}
