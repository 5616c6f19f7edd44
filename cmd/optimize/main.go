// Command optimize runs the genetic algorithm over one or more symbols'
// historical candles, searching for the strategy/trader chromosome with
// the best aggregated fitness, and prints/exports the resulting evolution.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantbt/enginecore/cmd/common"
	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/logger"
	"github.com/quantbt/enginecore/internal/monitoring"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/config"
	"github.com/quantbt/enginecore/pkg/optimization"
	"github.com/quantbt/enginecore/pkg/reporting"
	"github.com/quantbt/enginecore/pkg/types"
)

func main() {
	var (
		envFile      = flag.String("env", ".env", "path to .env file")
		candlesFiles = flag.String("candles", "", "comma-separated list of symbol=path base-asset OHLCV CSV files (required)")
		strategyName = flag.String("strategy", "single-ma", "strategy family to evolve")
		interval     = flag.Int64("interval", types.HourMS, "candle interval in milliseconds")
		quote        = flag.Float64("quote", 10000, "initial quote balance per symbol")
		taker        = flag.Float64("taker-fee", 0.001, "taker fee fraction")
		maker        = flag.Float64("maker-fee", 0.001, "maker fee fraction")
		seedFlag     = flag.Uint64("seed", 0, "RNG seed, applied only with -has-seed (otherwise GA_SEED, or else entropy)")
		hasSeed      = flag.Bool("has-seed", false, "fix the seed to the -seed value instead of drawing from entropy")
		jsonOut      = flag.String("json", "", "optional path to write the full evolution as JSON")
		xlsxOut      = flag.String("xlsx", "", "optional path to write the evolution as XLSX")
		healthPort   = flag.Int("health-port", 0, "if nonzero, serve /healthz and /metrics on this port")
	)
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("load env file: %v", err)
	}
	cfg := config.Load()

	health := monitoring.NewHealthChecker()
	if *healthPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/healthz", health)
		mux.Handle("/metrics", promhttp.Handler())
		go http.ListenAndServe(fmt.Sprintf(":%d", *healthPort), mux)
	}
	health.SetRunning(true)
	defer health.SetRunning(false)

	if *candlesFiles == "" {
		log.Fatal("-candles is required, e.g. -candles BTC-USDT=data/btc.csv,ETH-USDT=data/eth.csv")
	}

	fam, err := common.ResolveStrategy(*strategyName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	symbols, err := loadSymbols(*candlesFiles, *taker, *maker)
	if err != nil {
		log.Fatalf("load symbols: %v", err)
	}

	l, err := logger.New("optimize")
	if err != nil {
		log.Fatalf("new logger: %v", err)
	}
	defer l.Close()

	var genStart time.Time
	evCfg := optimization.EvolveConfig{
		PopulationSize: cfg.GA.PopulationSize,
		Generations:    cfg.GA.Generations,
		HallOfFameSize: cfg.GA.HallOfFameSize,
		NewParams: func() *optimization.TradingParams {
			return &optimization.TradingParams{Strategy: fam.NewParams()}
		},
		NewSignal:        func(c chromosome.Chromosome) strategy.Signal { return fam.NewSignal(c) },
		Symbols:          symbols,
		Interval:         *interval,
		Quote:            *quote,
		MarginMultiplier: cfg.Exchange.MarginMultiplier,
		Statistic:        stats.Profit,
		Aggregation:      stats.Linear,
		Selection:        optimization.TournamentSelection{K: 3},
		Crossover:        optimization.UniformCrossover{P: 0.5},
		Mutation:         optimization.UniformMutation{P: 0.1},
		Reinsertion:      optimization.EliteReinsertion{EliteRate: 0.1, OffspringRate: 0.9},
		Workers:          cfg.GA.Workers,
		OnGeneration: func(nr int, ranked []*optimization.Individual) {
			best := 0.0
			if len(ranked) > 0 {
				best = ranked[0].Fitness
			}
			l.Generation(nr, best, cfg.GA.HallOfFameSize)
			monitoring.RecordGeneration("optimize", best, time.Since(genStart).Seconds(), len(ranked))
			genStart = time.Now()
			health.Progress(nr)
		},
	}
	if cfg.GA.HasSeed || *hasSeed {
		seed := cfg.GA.Seed
		if *hasSeed {
			seed = *seedFlag
		}
		evCfg.Seed = &seed
	}

	start := time.Now()
	genStart = start
	evolution, err := optimization.Evolve(context.Background(), evCfg)
	if err != nil {
		l.Error("evolve failed: %v", err)
		log.Fatalf("evolve: %v", err)
	}
	l.Info("evolution finished seed=%d generations=%d duration=%s", evolution.Seed, len(evolution.Generations), time.Since(start))

	reporting.NewConsoleReporter().PrintEvolution(evolution)

	if *jsonOut != "" {
		if err := reporting.WriteEvolutionJSON(*jsonOut, evolution); err != nil {
			l.Error("write json report: %v", err)
		}
	}
	if *xlsxOut != "" {
		if err := reporting.NewExcelReporter().WriteEvolutionXLSX(evolution, *xlsxOut); err != nil {
			l.Error("write xlsx report: %v", err)
		}
	}
}

// loadSymbols parses "SYMBOL=path,SYMBOL=path" and loads each file's
// candles into optimization.SymbolData.
func loadSymbols(spec string, taker, maker float64) ([]optimization.SymbolData, error) {
	var out []optimization.SymbolData
	for _, part := range strings.Split(spec, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed symbol spec %q, want SYMBOL=path", part)
		}
		candles, err := common.LoadCandlesCSV(kv[1])
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", kv[0], err)
		}
		out = append(out, optimization.SymbolData{
			Symbol:  kv[0],
			Candles: candles,
			Fees:    types.Fees{Maker: maker, Taker: taker},
			Filters: types.Filters{Size: types.Range{Step: 0.0001}, Price: types.Range{Step: 0.01}},
		})
	}
	return out, nil
}
