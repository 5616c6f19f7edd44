// Package backtest implements the deterministic trading simulator: a
// Flat/InLong/InShort position state machine driven by strategy advice,
// stop-loss/take-profit gates, exchange filters, fees, and margin borrowing
// for shorts.
package backtest

import (
	"context"
	"math"

	"github.com/quantbt/enginecore/internal/boterrors"
	"github.com/quantbt/enginecore/internal/risk"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/types"
)

const component = "backtest"

// Trade runs the simulator over tc.Candles and returns the resulting
// TradingSummary. It never panics on market data: a filter-rejected entry
// is silently skipped, and a run that opens no position carries profit 0.
// Apart from a cancelled ctx's error, InsufficientData (which includes an
// empty candle stream) and InvalidParams are the only returned error
// categories; storage errors are the caller's concern before Trade is
// invoked.
func Trade(ctx context.Context, tc TradeContext) (*TradingSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tc.Interval <= 0 {
		return nil, boterrors.New(boterrors.InvalidParams, component, "trade", "interval must be positive")
	}

	sig := tc.NewSignal()
	sl := tc.NewStopLoss()
	tp := tc.NewTakeProfit()

	candles, restartAt := resolveCandles(tc.Candles, tc.Interval, tc.MissedCandlePolicy)

	if len(candles) < sig.Maturity()+1 {
		return nil, boterrors.New(boterrors.InsufficientData, component, "trade",
			"candle count below strategy maturity")
	}

	e := &engine{
		tc:    tc,
		sig:   sig,
		sl:    sl,
		tp:    tp,
		state: stateFlat,
		quote: tc.Quote,
	}

	summary := &TradingSummary{
		Start:        candles[0].Time,
		InitialQuote: tc.Quote,
	}

	for i, candle := range candles {
		if restartAt != nil && restartAt[i] {
			e.sig = tc.NewSignal()
			e.sl = tc.NewStopLoss()
			e.tp = tc.NewTakeProfit()
		}
		e.step(candle, summary)
	}

	summary.End = candles[len(candles)-1].Time
	summary.FinalQuote = e.quote
	return summary, nil
}

type engine struct {
	tc    TradeContext
	sig   strategy.Signal
	sl    risk.StopLoss
	tp    risk.TakeProfit
	state state
	quote float64

	open Position // in-progress position, valid when state != stateFlat
}

// step advances the simulation by one candle, following the fixed
// sub-step order: (1) update strategy, (2) update SL/TP, (3) evaluate exit
// predicates, (4) evaluate entry predicates, (5) advance clock (implicit:
// the caller moves to the next candle).
func (e *engine) step(candle types.Candle, summary *TradingSummary) {
	e.sig.Update(candle)
	e.sl.Update(candle)
	e.tp.Update(candle)
	advice := e.sig.Advice()

	switch e.state {
	case stateLong:
		strategyExit := advice == types.Short || advice == types.Liquidate
		if strategyExit || e.sl.UpsideHit() || e.tp.UpsideHit() {
			e.closeLong(candle, closeReasonFor(strategyExit, e.sl.UpsideHit()), summary)
		}
	case stateShort:
		strategyExit := advice == types.Long || advice == types.Liquidate
		if strategyExit || e.sl.DownsideHit() || e.tp.DownsideHit() {
			e.closeShort(candle, closeReasonFor(strategyExit, e.sl.DownsideHit()), summary)
		}
	}

	if e.state == stateFlat {
		switch {
		case advice == types.Long && e.tc.EnableLong:
			e.openLong(candle)
		case advice == types.Short && e.tc.EnableShort:
			e.openShort(candle)
		}
	}
}

func closeReasonFor(strategyExit, slHit bool) CloseReason {
	if strategyExit {
		return CloseStrategy
	}
	if slHit {
		return CloseStopLoss
	}
	return CloseTakeProfit
}

func (e *engine) openLong(candle types.Candle) {
	taker := e.tc.Fees.Taker
	size := e.tc.Filters.RoundSize(e.quote / candle.Close / (1 + taker))
	if size <= 0 || !e.tc.Filters.Valid(candle.Close, size) {
		return
	}
	e.sl.Clear(candle.Close)
	e.tp.Clear(candle.Close)
	e.state = stateLong
	e.open = Position{
		Side:      types.SideLong,
		OpenTime:  candle.Time,
		OpenPrice: candle.Close,
		Size:      size,
		Quote:     -e.quote,
	}
}

func (e *engine) closeLong(candle types.Candle, reason CloseReason, summary *TradingSummary) {
	taker := e.tc.Fees.Taker
	received := e.open.Size * candle.Close * (1 - taker)
	e.open.CloseTime = candle.Time
	e.open.ClosePrice = candle.Close
	e.open.Reason = reason
	e.open.Quote += received
	e.quote = received
	summary.Positions = append(summary.Positions, e.open)
	e.state = stateFlat
	e.open = Position{}
}

func (e *engine) openShort(candle types.Candle) {
	taker := e.tc.Fees.Taker
	borrowed := e.quote * e.tc.MarginMultiplier / candle.Close
	if e.tc.BorrowInfo.Limit > 0 && borrowed > e.tc.BorrowInfo.Limit {
		borrowed = e.tc.BorrowInfo.Limit
	}
	borrowed = e.tc.Filters.RoundSize(borrowed)
	if borrowed <= 0 || !e.tc.Filters.Valid(candle.Close, borrowed) {
		return
	}
	received := borrowed * candle.Close * (1 - taker)
	e.sl.Clear(candle.Close)
	e.tp.Clear(candle.Close)
	e.state = stateShort
	e.open = Position{
		Side:      types.SideShort,
		OpenTime:  candle.Time,
		OpenPrice: candle.Close,
		Size:      borrowed,
		Borrowed:  borrowed,
		Quote:     received,
	}
	e.quote += received
}

func (e *engine) closeShort(candle types.Candle, reason CloseReason, summary *TradingSummary) {
	taker := e.tc.Fees.Taker
	elapsed := candle.Time - e.open.OpenTime
	days := math.Ceil(float64(elapsed) / float64(types.DayMS))
	if days < 0 {
		days = 0
	}
	interest := days * e.tc.BorrowInfo.DailyInterestRate * e.open.Borrowed
	cost := (e.open.Borrowed + interest) * candle.Close * (1 + taker)

	e.open.CloseTime = candle.Time
	e.open.ClosePrice = candle.Close
	e.open.Interest = interest
	e.open.Reason = reason
	e.open.Quote -= cost
	e.quote -= cost
	summary.Positions = append(summary.Positions, e.open)
	e.state = stateFlat
	e.open = Position{}
}
