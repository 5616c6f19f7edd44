package optimization

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/types"
)

// SymbolData is one training symbol's candles and exchange context, fed to
// every individual's simulation during evaluation.
type SymbolData struct {
	Symbol      string
	Candles     []types.Candle
	QuotePrices []types.Candle
	Fees        types.Fees
	Filters     types.Filters
	BorrowInfo  types.BorrowInfo
}

// NewSignal builds the strategy.Signal the simulator consults for a given
// strategy chromosome.
type NewSignal func(chromosome.Chromosome) strategy.Signal

// evalConfig bundles everything evaluate needs beyond the individuals
// themselves.
type evalConfig struct {
	Symbols          []SymbolData
	Interval         int64
	Quote            float64
	MarginMultiplier float64
	NewSignal        NewSignal
	Statistic        stats.EvaluationStatistic
	Aggregation      stats.EvaluationAggregation
	Workers          int
}

// evaluatePopulation fills in Fitness for every individual whose Fitness
// is not already set (NaN sentinel), running the simulator over every
// training symbol and aggregating per-symbol fitness. Work is
// parallelized at the individual level across a bounded worker pool, but
// merged back into the population slice by index so results never depend
// on goroutine completion order.
func evaluatePopulation(ctx context.Context, cfg evalConfig, population []*Individual) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(population) {
		workers = len(population)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				ind := population[idx]
				if !math.IsNaN(ind.Fitness) {
					continue
				}
				ind.Fitness = evaluateIndividual(ctx, cfg, ind.Params)
			}
		}()
	}
	for i := range population {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// evaluateIndividual runs the simulator over every configured symbol and
// combines the per-symbol fitness scalars. A storage/programmer error on
// any symbol marks the whole individual unfit (-Inf), so it cannot
// survive selection.
func evaluateIndividual(ctx context.Context, cfg evalConfig, params *TradingParams) float64 {
	fitness, _ := evaluateWithStats(ctx, cfg, params)
	return fitness
}

// evaluateWithStats additionally returns the per-symbol Statistics, used
// when building hall-of-fame entries (where the caller wants the full
// breakdown, not just the scalar fitness).
func evaluateWithStats(ctx context.Context, cfg evalConfig, params *TradingParams) (float64, []stats.Statistics) {
	if len(cfg.Symbols) == 0 {
		return math.Inf(-1), nil
	}
	fitnesses := make([]float64, 0, len(cfg.Symbols))
	perSymbol := make([]stats.Statistics, 0, len(cfg.Symbols))
	for _, sym := range cfg.Symbols {
		tc := backtest.TradeContext{
			NewSignal:          func() strategy.Signal { return cfg.NewSignal(params.Strategy) },
			NewStopLoss:        params.Trader.NewStopLoss,
			NewTakeProfit:      params.Trader.NewTakeProfit,
			Candles:            sym.Candles,
			Fees:               sym.Fees,
			Filters:            sym.Filters,
			BorrowInfo:         sym.BorrowInfo,
			MarginMultiplier:   cfg.MarginMultiplier,
			Interval:           cfg.Interval,
			Quote:              cfg.Quote,
			MissedCandlePolicy: params.Trader.MissedCandlePolicy,
			EnableLong:         params.Trader.EnableLong,
			EnableShort:        params.Trader.EnableShort,
		}

		summary, err := backtest.Trade(ctx, tc)
		if err != nil {
			return math.Inf(-1), nil
		}
		st := stats.Compose(*summary, sym.Candles, sym.QuotePrices, cfg.Interval)
		fitnesses = append(fitnesses, cfg.Statistic.Select(st))
		perSymbol = append(perSymbol, st)
	}
	return cfg.Aggregation.Aggregate(fitnesses), perSymbol
}
