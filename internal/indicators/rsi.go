package indicators

// RSI is the relative strength index over `period`, smoothed with Wilder's
// method (SMMA of gains and losses).
type RSI struct {
	period      int
	avgGain     *SMMA
	avgLoss     *SMMA
	lastPrice   float64
	initialized bool
	value       float64
}

func NewRSI(period int) *RSI {
	return &RSI{period: period, avgGain: NewSMMA(period), avgLoss: NewSMMA(period)}
}

func (r *RSI) Update(price float64) {
	if !r.initialized {
		r.lastPrice = price
		r.initialized = true
		return
	}
	change := price - r.lastPrice
	gain, loss := 0.0, 0.0
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}
	r.avgGain.Update(gain)
	r.avgLoss.Update(loss)
	r.lastPrice = price

	avgLoss := r.avgLoss.Value()
	if avgLoss == 0 {
		r.value = 100
		return
	}
	rs := r.avgGain.Value() / avgLoss
	r.value = 100 - 100/(1+rs)
}

func (r *RSI) Value() float64 { return r.value }

// Maturity requires `period` changes (period+1 prices) before the Wilder
// smoothing has enough samples, plus the seed price itself.
func (r *RSI) Maturity() int { return r.period }
