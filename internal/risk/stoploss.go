// Package risk implements the stop-loss and take-profit gates the trading
// simulator consults before closing a position: Noop (never fires),
// Basic (fixed fraction from entry), and Trailing (fraction from the
// running extremum since entry).
package risk

import "github.com/quantbt/enginecore/pkg/types"

// StopLoss gates a long/short exit on an adverse price move.
type StopLoss interface {
	// Clear resets the reference price when a new position opens.
	Clear(entryPrice float64)
	// Update ingests the next candle's close.
	Update(candle types.Candle)
	// UpsideHit reports a long-position stop trigger (price has fallen).
	UpsideHit() bool
	// DownsideHit reports a short-position stop trigger (price has risen).
	DownsideHit() bool
}

// NoopStopLoss never fires.
type NoopStopLoss struct{}

func (NoopStopLoss) Clear(float64)            {}
func (NoopStopLoss) Update(types.Candle)      {}
func (NoopStopLoss) UpsideHit() bool          { return false }
func (NoopStopLoss) DownsideHit() bool        { return false }

// BasicStopLoss triggers at a fixed fraction away from the entry price.
type BasicStopLoss struct {
	threshold float64
	entry     float64
	close     float64
}

func NewBasicStopLoss(threshold float64) *BasicStopLoss {
	return &BasicStopLoss{threshold: threshold}
}

func (b *BasicStopLoss) Clear(entryPrice float64) { b.entry = entryPrice; b.close = entryPrice }
func (b *BasicStopLoss) Update(candle types.Candle) { b.close = candle.Close }

// UpsideHit fires for a long position once close <= entry*(1-threshold).
func (b *BasicStopLoss) UpsideHit() bool {
	if b.threshold == 0 {
		return false
	}
	return b.close <= b.entry*(1-b.threshold)
}

// DownsideHit fires for a short position once close >= entry*(1+threshold).
func (b *BasicStopLoss) DownsideHit() bool {
	if b.threshold == 0 {
		return false
	}
	return b.close >= b.entry*(1+b.threshold)
}

// TrailingStopLoss is the same fixed-fraction rule, but compared to the
// running extremum since entry (max close for longs, min close for shorts)
// instead of the fixed entry price.
type TrailingStopLoss struct {
	threshold float64
	maxClose  float64
	minClose  float64
	last      float64
}

func NewTrailingStopLoss(threshold float64) *TrailingStopLoss {
	return &TrailingStopLoss{threshold: threshold}
}

func (t *TrailingStopLoss) Clear(entryPrice float64) {
	t.maxClose = entryPrice
	t.minClose = entryPrice
	t.last = entryPrice
}

func (t *TrailingStopLoss) Update(candle types.Candle) {
	t.last = candle.Close
	if candle.Close > t.maxClose {
		t.maxClose = candle.Close
	}
	if t.minClose == 0 || candle.Close < t.minClose {
		t.minClose = candle.Close
	}
}

// UpsideHit fires for a long position once close has retraced threshold
// from the running maximum close.
func (t *TrailingStopLoss) UpsideHit() bool {
	if t.threshold == 0 {
		return false
	}
	return t.lastClose() <= t.maxClose*(1-t.threshold)
}

// DownsideHit fires for a short position once close has rallied threshold
// from the running minimum close.
func (t *TrailingStopLoss) DownsideHit() bool {
	if t.threshold == 0 {
		return false
	}
	return t.lastClose() >= t.minClose*(1+t.threshold)
}

func (t *TrailingStopLoss) lastClose() float64 {
	return t.last
}
