package optimization

import (
	"context"
	"testing"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticCandles(n int, start, step float64) []types.Candle {
	out := make([]types.Candle, n)
	price := start
	for i := 0; i < n; i++ {
		price += step
		out[i] = types.Candle{
			Time: int64(i) * types.MinuteMS, Open: price, High: price, Low: price, Close: price, Volume: 1,
		}
	}
	return out
}

func smokeEvolveConfig(seed uint64) EvolveConfig {
	candles := syntheticCandles(50, 100, 0.5)
	return EvolveConfig{
		PopulationSize: 8,
		Generations:    3,
		HallOfFameSize: 2,
		Seed:           &seed,
		NewParams: func() *TradingParams {
			return &TradingParams{Strategy: &strategy.MAParams{}}
		},
		NewSignal: func(c chromosome.Chromosome) strategy.Signal {
			return strategy.NewSingleMA(c.(*strategy.MAParams))
		},
		Symbols: []SymbolData{
			{Symbol: "BTC-USDT", Candles: candles, Fees: types.Fees{Taker: 0.001}},
		},
		Interval:    types.MinuteMS,
		Quote:       1000,
		Statistic:   stats.Profit,
		Aggregation: stats.Linear,
		Selection:   EliteSelection{Shuffle: false},
		Crossover:   UniformCrossover{P: 0.5},
		Mutation:    UniformMutation{P: 0.25},
		Reinsertion: EliteReinsertion{EliteRate: 0.5, OffspringRate: 0.5},
		Workers:     2,
	}
}

func TestEvolve_DeterministicAcrossRuns(t *testing.T) {
	ctx := context.Background()
	ev1, err := Evolve(ctx, smokeEvolveConfig(42))
	require.NoError(t, err)
	ev2, err := Evolve(ctx, smokeEvolveConfig(42))
	require.NoError(t, err)

	require.Equal(t, ev1.Seed, ev2.Seed)
	require.Equal(t, len(ev1.Generations), len(ev2.Generations))
	for i := range ev1.Generations {
		require.Equal(t, len(ev1.Generations[i].HallOfFame), len(ev2.Generations[i].HallOfFame))
		for j := range ev1.Generations[i].HallOfFame {
			assert.Equal(t, ev1.Generations[i].HallOfFame[j].Fitness, ev2.Generations[i].HallOfFame[j].Fitness)
		}
	}
}

func TestEvolve_RejectsOddPopulation(t *testing.T) {
	cfg := smokeEvolveConfig(1)
	cfg.PopulationSize = 7
	_, err := Evolve(context.Background(), cfg)
	require.Error(t, err)
}
