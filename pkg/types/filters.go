package types

import "github.com/quantbt/enginecore/internal/xmath"

// Range describes a min/max/step constraint on price or size.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Filters are the per-symbol exchange constraints an order must respect.
type Filters struct {
	Price       Range   `json:"price"`
	Size        Range   `json:"size"`
	MinNotional float64 `json:"min_notional"`
}

// RoundSize floors size to the nearest step below it.
func (f Filters) RoundSize(size float64) float64 {
	return roundToStep(size, f.Size.Step)
}

// RoundPrice floors price to the nearest step below it.
func (f Filters) RoundPrice(price float64) float64 {
	return roundToStep(price, f.Price.Step)
}

func roundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return xmath.FloorMultiple(v, step)
}

// Valid reports whether (price, size) respects min/max/step and min notional.
func (f Filters) Valid(price, size float64) bool {
	if size < f.Size.Min || (f.Size.Max > 0 && size > f.Size.Max) {
		return false
	}
	if price < f.Price.Min || (f.Price.Max > 0 && price > f.Price.Max) {
		return false
	}
	if f.Size.Step > 0 && f.RoundSize(size) != size {
		return false
	}
	if f.Price.Step > 0 && f.RoundPrice(price) != price {
		return false
	}
	if f.MinNotional > 0 && price*size < f.MinNotional {
		return false
	}
	return true
}
