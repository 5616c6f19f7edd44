package indicators

// DEMA is the double exponential moving average: 2*EMA1 - EMA2(EMA1),
// reducing the lag inherent in a plain EMA.
type DEMA struct {
	period int
	ema1   *EMA
	ema2   *EMA
	value  float64
}

func NewDEMA(period int) *DEMA {
	alpha := 2.0 / float64(period+1)
	return &DEMA{
		period: period,
		ema1:   newEMAWithAlpha(period, alpha),
		ema2:   newEMAWithAlpha(period, alpha),
	}
}

func (d *DEMA) Update(price float64) {
	d.ema1.Update(price)
	d.ema2.Update(d.ema1.Value())
	d.value = 2*d.ema1.Value() - d.ema2.Value()
}

func (d *DEMA) Value() float64 { return d.value }

func (d *DEMA) Maturity() int { return 2 * (d.period - 1) }
