// Package stats turns a TradingSummary into the portfolio statistics the
// genetic optimizer ranks individuals by: a daily repricing walk over the
// underlying candles, log returns, annualized risk ratios, drawdowns, and
// per-position aggregates.
package stats

import (
	"math"
	"sort"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/internal/xmath"
	"github.com/quantbt/enginecore/pkg/types"
)

// Statistics is the full set of derived metrics for one TradingSummary.
type Statistics struct {
	Profit       float64 `json:"profit"`
	SharpeRatio  float64 `json:"sharpe_ratio"`
	SortinoRatio float64 `json:"sortino_ratio"`
	MeanDrawdown float64 `json:"mean_drawdown"`
	MaxDrawdown  float64 `json:"max_drawdown"`

	MeanPositionProfit   float64 `json:"mean_position_profit"`
	MeanPositionDuration float64 `json:"mean_position_duration_ms"`
	NumPositionsInProfit int     `json:"num_positions_in_profit"`
	NumPositionsInLoss   int     `json:"num_positions_in_loss"`
	NumPositions         int     `json:"num_positions"`
}

// EvaluationStatistic selects which Statistics field the optimizer treats
// as fitness.
type EvaluationStatistic int

const (
	Profit EvaluationStatistic = iota
	MeanDrawdown
	MaxDrawdown
	SharpeRatio
	SortinoRatio
	MeanPositionProfit
)

func (s EvaluationStatistic) String() string {
	switch s {
	case MeanDrawdown:
		return "mean_drawdown"
	case MaxDrawdown:
		return "max_drawdown"
	case SharpeRatio:
		return "sharpe_ratio"
	case SortinoRatio:
		return "sortino_ratio"
	case MeanPositionProfit:
		return "mean_position_profit"
	default:
		return "profit"
	}
}

// Select extracts the fitness scalar this EvaluationStatistic names.
func (s EvaluationStatistic) Select(st Statistics) float64 {
	switch s {
	case MeanDrawdown:
		return st.MeanDrawdown
	case MaxDrawdown:
		return st.MaxDrawdown
	case SharpeRatio:
		return st.SharpeRatio
	case SortinoRatio:
		return st.SortinoRatio
	case MeanPositionProfit:
		return st.MeanPositionProfit
	default:
		return st.Profit
	}
}

// EvaluationAggregation combines per-symbol fitness scalars into one.
type EvaluationAggregation int

const (
	Linear EvaluationAggregation = iota
	LogAgg
	Ln1p
)

// Aggregate combines per-symbol fitnesses per the chosen scheme.
func (a EvaluationAggregation) Aggregate(values []float64) float64 {
	switch a {
	case LogAgg:
		// geometric-mean-style combination over strictly positive growth
		// factors; non-positive inputs degrade to 0 contribution.
		factors := make([]float64, 0, len(values))
		for _, v := range values {
			if v > 0 {
				factors = append(factors, v)
			}
		}
		if len(factors) == 0 {
			return 0
		}
		return xmath.GMean(factors)
	case Ln1p:
		// dampen outliers by combining in log1p space, then map back;
		// a value below -1 (total loss beyond the quote) floors at -1.
		sum := 0.0
		for _, v := range values {
			if v < -1 {
				v = -1
			}
			sum += math.Log1p(v)
		}
		return math.Expm1(sum / float64(len(values)))
	default:
		return xmath.Mean(values)
	}
}

// Compose walks basePrices (and optionally quotePrices, for converting the
// quote asset into a reference currency) at statsInterval granularity,
// marking any open position to market, then derives the full Statistics
// set from the resulting equity curve and the summary's closed positions.
func Compose(summary backtest.TradingSummary, basePrices []types.Candle, quotePrices []types.Candle, statsInterval int64) Statistics {
	values := equityCurve(summary, basePrices, quotePrices, statsInterval)
	returns := logReturns(values)

	st := Statistics{
		Profit:       summary.Profit(),
		SharpeRatio:  xmath.AnnualizedSharpe(returns, 365),
		SortinoRatio: xmath.AnnualizedSortino(returns, 365),
		NumPositions: len(summary.Positions),
	}

	drawdowns := drawdownSeries(values)
	st.MeanDrawdown = xmath.Mean(drawdowns)
	st.MaxDrawdown = maxOf(drawdowns)

	profitFracs := make([]float64, 0, len(summary.Positions))
	durations := make([]float64, 0, len(summary.Positions))
	for _, p := range summary.Positions {
		basis := p.OpenPrice * p.Size
		if basis != 0 {
			profitFracs = append(profitFracs, p.Quote/basis)
		}
		durations = append(durations, float64(p.CloseTime-p.OpenTime))
		switch {
		case p.Quote > 0:
			st.NumPositionsInProfit++
		case p.Quote < 0:
			st.NumPositionsInLoss++
		}
	}
	st.MeanPositionProfit = xmath.Mean(profitFracs)
	st.MeanPositionDuration = xmath.Mean(durations)

	return st
}

// equityCurve marks the portfolio to market at each statsInterval boundary
// spanned by basePrices, using the realized quote balance between
// positions and a directional mark-to-market estimate while one is open.
func equityCurve(summary backtest.TradingSummary, basePrices []types.Candle, quotePrices []types.Candle, statsInterval int64) []float64 {
	if len(basePrices) == 0 || statsInterval <= 0 {
		return nil
	}
	sorted := make([]types.Candle, len(basePrices))
	copy(sorted, basePrices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	priceAt := candleLookup(sorted)
	quoteAt := candleLookup(quotePrices)

	start := int64(xmath.FloorMultiple(float64(sorted[0].Time), float64(statsInterval)))
	end := sorted[len(sorted)-1].Time

	cash := summary.InitialQuote
	posIdx := 0
	var values []float64

	for t := start; t <= end; t += statsInterval {
		for posIdx < len(summary.Positions) && summary.Positions[posIdx].CloseTime <= t {
			cash += summary.Positions[posIdx].Quote
			posIdx++
		}
		value := cash
		if posIdx < len(summary.Positions) {
			p := summary.Positions[posIdx]
			if p.OpenTime <= t && t < p.CloseTime {
				price := priceAt(t)
				if p.Side == types.SideLong {
					value = cash + p.Size*(price-p.OpenPrice)
				} else {
					value = cash + p.Borrowed*(p.OpenPrice-price)
				}
			}
		}
		if len(quotePrices) > 0 {
			value *= quoteAt(t)
		}
		values = append(values, value)
	}
	return values
}

// candleLookup returns a function giving the most recent close at or
// before t (or the first close, if t precedes all candles).
func candleLookup(candles []types.Candle) func(t int64) float64 {
	if len(candles) == 0 {
		return func(int64) float64 { return 1 }
	}
	return func(t int64) float64 {
		idx := sort.Search(len(candles), func(i int) bool { return candles[i].Time > t })
		if idx == 0 {
			return candles[0].Close
		}
		return candles[idx-1].Close
	}
}

func logReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if prev <= 0 || cur <= 0 {
			continue
		}
		returns = append(returns, math.Log(cur/prev))
	}
	return returns
}

func drawdownSeries(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	drawdowns := make([]float64, 0, len(values))
	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak <= 0 {
			drawdowns = append(drawdowns, 0)
			continue
		}
		drawdowns = append(drawdowns, (peak-v)/peak)
	}
	return drawdowns
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
