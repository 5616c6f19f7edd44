// Command backtest runs a single strategy/trader configuration over one
// symbol's historical candles and prints the resulting statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantbt/enginecore/cmd/common"
	"github.com/quantbt/enginecore/internal/backtest"
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
		candlesFile  = flag.String("candles", "", "path to a base-asset OHLCV CSV file (required)")
		quoteFile    = flag.String("quote-candles", "", "path to a quote-asset OHLCV CSV file, for cross-denominated equity curves")
		symbol       = flag.String("symbol", "BTC-USDT", "symbol label for reporting")
		strategyName = flag.String("strategy", "single-ma", "strategy family to run")
		seed         = flag.Uint64("seed", 1, "RNG seed used to generate the strategy/trader parameters")
		quote        = flag.Float64("quote", 10000, "initial quote balance")
		interval     = flag.Int64("interval", types.HourMS, "candle interval in milliseconds")
		taker        = flag.Float64("taker-fee", 0.001, "taker fee fraction")
		maker        = flag.Float64("maker-fee", 0.001, "maker fee fraction")
		jsonOut      = flag.String("json", "", "optional path to write a JSON report")
		xlsxOut      = flag.String("xlsx", "", "optional path to write an XLSX report")
		healthPort   = flag.Int("health-port", 0, "if nonzero, serve /healthz and /metrics on this port")
	)
	flag.Parse()

	health := monitoring.NewHealthChecker()
	if *healthPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/healthz", health)
		mux.Handle("/metrics", promhttp.Handler())
		go http.ListenAndServe(fmt.Sprintf(":%d", *healthPort), mux)
	}
	health.SetRunning(true)
	defer health.SetRunning(false)

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("load env file: %v", err)
	}
	if *candlesFile == "" {
		log.Fatal("-candles is required")
	}

	candles, err := common.LoadCandlesCSV(*candlesFile)
	if err != nil {
		log.Fatalf("load candles: %v", err)
	}

	var quoteCandles []types.Candle
	if *quoteFile != "" {
		quoteCandles, err = common.LoadCandlesCSV(*quoteFile)
		if err != nil {
			log.Fatalf("load quote candles: %v", err)
		}
	}

	fam, err := common.ResolveStrategy(*strategyName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	l, err := logger.New(fmt.Sprintf("backtest-%s", *symbol))
	if err != nil {
		log.Fatalf("new logger: %v", err)
	}
	defer l.Close()

	rng := rand.New(rand.NewSource(int64(*seed)))
	params := fam.NewParams()
	params.Generate(rng)

	trader := &optimization.TraderParams{}
	trader.Generate(rng)

	tc := backtest.TradeContext{
		NewSignal:          func() strategy.Signal { return fam.NewSignal(params) },
		NewStopLoss:        trader.NewStopLoss,
		NewTakeProfit:      trader.NewTakeProfit,
		Candles:            candles,
		Fees:               types.Fees{Maker: *maker, Taker: *taker},
		Filters:            types.Filters{Size: types.Range{Step: 0.0001}, Price: types.Range{Step: 0.01}},
		MarginMultiplier:   2,
		Interval:           *interval,
		Quote:              *quote,
		MissedCandlePolicy: trader.MissedCandlePolicy,
		EnableLong:         trader.EnableLong,
		EnableShort:        trader.EnableShort,
	}

	l.Info("starting backtest symbol=%s strategy=%s candles=%d", *symbol, *strategyName, len(candles))

	summary, err := backtest.Trade(context.Background(), tc)
	if err != nil {
		l.Error("trade failed: %v", err)
		log.Fatalf("trade: %v", err)
	}

	st := stats.Compose(*summary, candles, quoteCandles, *interval)

	console := reporting.NewConsoleReporter()
	console.PrintSummary(*symbol, summary, st)
	console.PrintPositions(summary)

	for _, p := range summary.Positions {
		l.PositionClosed(p.Side.String(), string(p.Reason), p.Quote)
		monitoring.RecordPosition(*symbol, p.Side.String(), string(p.Reason), p.Quote)
	}
	health.Progress(len(summary.Positions))

	if *jsonOut != "" {
		if err := reporting.WriteBacktestJSON(*jsonOut, *symbol, summary, st); err != nil {
			l.Error("write json report: %v", err)
		}
	}
	if *xlsxOut != "" {
		if err := reporting.NewExcelReporter().WriteBacktestXLSX(summary, st, *xlsxOut); err != nil {
			l.Error("write xlsx report: %v", err)
		}
	}

	os.Exit(0)
}
