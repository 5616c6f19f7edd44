package indicators

import "math"

// KAMA is Kaufman's adaptive moving average: the smoothing constant scales
// between fast and slow EMA alphas by the efficiency ratio of recent price
// movement.
type KAMA struct {
	period      int
	fastAlpha   float64
	slowAlpha   float64
	window      []float64
	pos         int
	filled      int
	value       float64
	initialized bool
}

// NewKAMA creates a KAMA with the conventional fast=2, slow=30 periods.
func NewKAMA(period int) *KAMA {
	return &KAMA{
		period:    period,
		fastAlpha: 2.0 / (2.0 + 1.0),
		slowAlpha: 2.0 / (30.0 + 1.0),
		window:    make([]float64, period+1),
	}
}

func (k *KAMA) Update(price float64) {
	k.window[k.pos] = price
	k.pos = (k.pos + 1) % len(k.window)
	if k.filled < len(k.window) {
		k.filled++
	}

	if !k.initialized {
		k.value = price
		k.initialized = true
		return
	}

	if k.filled <= k.period {
		// Not enough history yet for an efficiency ratio; follow price.
		k.value = price
		return
	}

	change := math.Abs(price - k.oldest())
	volatility := 0.0
	idx := k.pos
	prev := k.at(idx)
	for i := 1; i <= k.period; i++ {
		cur := k.at((idx + i) % len(k.window))
		volatility += math.Abs(cur - prev)
		prev = cur
	}

	var er float64
	if volatility != 0 {
		er = change / volatility
	}
	sc := er*(k.fastAlpha-k.slowAlpha) + k.slowAlpha
	sc *= sc
	k.value = k.value + sc*(price-k.value)
}

func (k *KAMA) oldest() float64 {
	idx := k.pos
	return k.at(idx)
}

func (k *KAMA) at(idx int) float64 {
	return k.window[idx%len(k.window)]
}

func (k *KAMA) Value() float64 { return k.value }

func (k *KAMA) Maturity() int { return k.period }
