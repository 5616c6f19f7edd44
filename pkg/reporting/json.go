package reporting

import (
	"encoding/json"
	"os"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/pkg/optimization"
)

// backtestReport is the on-disk shape written by WriteBacktestJSON.
type backtestReport struct {
	Symbol     string                  `json:"symbol"`
	Summary    *backtest.TradingSummary `json:"summary"`
	Statistics stats.Statistics        `json:"statistics"`
}

// WriteBacktestJSON writes one symbol's summary and statistics as
// indented JSON to path.
func WriteBacktestJSON(path, symbol string, summary *backtest.TradingSummary, st stats.Statistics) error {
	report := backtestReport{Symbol: symbol, Summary: summary, Statistics: st}
	return writeJSON(path, report)
}

// WriteEvolutionJSON writes a full Evolution (seed + recorded generations)
// as indented JSON to path.
func WriteEvolutionJSON(path string, ev *optimization.Evolution) error {
	return writeJSON(path, ev)
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
