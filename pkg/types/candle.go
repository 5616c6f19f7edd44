package types

import "github.com/quantbt/enginecore/internal/boterrors"

// Candle is an OHLCV bar covering one interval of time. Candles are
// immutable once produced by a CandleStore.
type Candle struct {
	Time   int64 `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// NewCandle validates the OHLC invariant before returning a Candle. Storage
// sits outside this module, so malformed candles are a boundary condition,
// not a programmer error.
func NewCandle(time int64, open, high, low, close, volume float64) (Candle, error) {
	c := Candle{Time: time, Open: open, High: high, Low: low, Close: close, Volume: volume}
	if err := c.Validate(); err != nil {
		return Candle{}, err
	}
	return c, nil
}

// Validate checks low <= min(open,close) <= max(open,close) <= high and volume >= 0.
func (c Candle) Validate() error {
	lo := c.Open
	if c.Close < lo {
		lo = c.Close
	}
	hi := c.Open
	if c.Close > hi {
		hi = c.Close
	}
	if c.Low > lo || hi > c.High {
		return boterrors.New(boterrors.Validation, "candle", "validate", "high/low out of range for open/close")
	}
	if c.Volume < 0 {
		return boterrors.New(boterrors.Validation, "candle", "validate", "negative volume")
	}
	return nil
}
