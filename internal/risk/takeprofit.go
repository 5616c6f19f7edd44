package risk

import "github.com/quantbt/enginecore/pkg/types"

// TakeProfit gates a long/short exit on a favorable price move; the dual
// of StopLoss, crossing a gain threshold instead of a loss threshold.
type TakeProfit interface {
	Clear(entryPrice float64)
	Update(candle types.Candle)
	UpsideHit() bool
	DownsideHit() bool
}

// NoopTakeProfit never fires.
type NoopTakeProfit struct{}

func (NoopTakeProfit) Clear(float64)       {}
func (NoopTakeProfit) Update(types.Candle) {}
func (NoopTakeProfit) UpsideHit() bool     { return false }
func (NoopTakeProfit) DownsideHit() bool   { return false }

// BasicTakeProfit triggers at a fixed fraction away from the entry price.
type BasicTakeProfit struct {
	threshold float64
	entry     float64
	close     float64
}

func NewBasicTakeProfit(threshold float64) *BasicTakeProfit {
	return &BasicTakeProfit{threshold: threshold}
}

func (b *BasicTakeProfit) Clear(entryPrice float64)   { b.entry = entryPrice; b.close = entryPrice }
func (b *BasicTakeProfit) Update(candle types.Candle) { b.close = candle.Close }

// UpsideHit fires for a long position once close >= entry*(1+threshold).
func (b *BasicTakeProfit) UpsideHit() bool {
	if b.threshold == 0 {
		return false
	}
	return b.close >= b.entry*(1+b.threshold)
}

// DownsideHit fires for a short position once close <= entry*(1-threshold).
func (b *BasicTakeProfit) DownsideHit() bool {
	if b.threshold == 0 {
		return false
	}
	return b.close <= b.entry*(1-b.threshold)
}

// TrailingTakeProfit arms once the position has reached the gain threshold
// at least once, then locks in profit by firing when price retraces by the
// same fraction from the extremum reached since arming. This is the gain
// counterpart to TrailingStopLoss's loss-side retracement rule; the source
// material does not specify trailing take-profit behavior beyond "the dual
// of stop-loss", so this arm-then-trail shape is this implementation's
// resolution of that open question (see DESIGN.md).
type TrailingTakeProfit struct {
	threshold float64
	entry     float64
	maxClose  float64
	minClose  float64
	last      float64
	armedLong bool
	armedShort bool
}

func NewTrailingTakeProfit(threshold float64) *TrailingTakeProfit {
	return &TrailingTakeProfit{threshold: threshold}
}

func (t *TrailingTakeProfit) Clear(entryPrice float64) {
	t.entry = entryPrice
	t.maxClose = entryPrice
	t.minClose = entryPrice
	t.last = entryPrice
	t.armedLong = false
	t.armedShort = false
}

func (t *TrailingTakeProfit) Update(candle types.Candle) {
	t.last = candle.Close
	if candle.Close > t.maxClose {
		t.maxClose = candle.Close
	}
	if t.minClose == 0 || candle.Close < t.minClose {
		t.minClose = candle.Close
	}
	if t.threshold > 0 {
		if candle.Close >= t.entry*(1+t.threshold) {
			t.armedLong = true
		}
		if candle.Close <= t.entry*(1-t.threshold) {
			t.armedShort = true
		}
	}
}

// UpsideHit fires for a long position once armed and price has retraced
// threshold from the peak reached since entry.
func (t *TrailingTakeProfit) UpsideHit() bool {
	if t.threshold == 0 || !t.armedLong {
		return false
	}
	return t.last <= t.maxClose*(1-t.threshold)
}

// DownsideHit fires for a short position once armed and price has rallied
// threshold from the trough reached since entry.
func (t *TrailingTakeProfit) DownsideHit() bool {
	if t.threshold == 0 || !t.armedShort {
		return false
	}
	return t.last >= t.minClose*(1+t.threshold)
}
