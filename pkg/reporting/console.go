// Package reporting renders backtest and optimization results to the
// console, JSON, and XLSX.
package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/pkg/optimization"
)

// ConsoleReporter prints backtest and optimization results as tables.
type ConsoleReporter struct{}

func NewConsoleReporter() *ConsoleReporter { return &ConsoleReporter{} }

// PrintSummary renders one symbol's TradingSummary and derived Statistics.
func (r *ConsoleReporter) PrintSummary(symbol string, summary *backtest.TradingSummary, st stats.Statistics) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("BACKTEST RESULT: %s", symbol))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Initial Quote", fmt.Sprintf("%.2f", summary.InitialQuote)},
		{"Final Quote", fmt.Sprintf("%.2f", summary.FinalQuote)},
		{"Profit", fmt.Sprintf("%.2f%%", summary.Profit()*100)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Sharpe Ratio", fmt.Sprintf("%.3f", st.SharpeRatio)},
		{"Sortino Ratio", fmt.Sprintf("%.3f", st.SortinoRatio)},
		{"Mean Drawdown", fmt.Sprintf("%.2f%%", st.MeanDrawdown*100)},
		{"Max Drawdown", fmt.Sprintf("%.2f%%", st.MaxDrawdown*100)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Positions", fmt.Sprintf("%d", st.NumPositions)},
		{"In Profit", fmt.Sprintf("%d", st.NumPositionsInProfit)},
		{"In Loss", fmt.Sprintf("%d", st.NumPositionsInLoss)},
		{"Mean Position Profit", fmt.Sprintf("%.2f%%", st.MeanPositionProfit*100)},
		{"Mean Position Duration (ms)", fmt.Sprintf("%.0f", st.MeanPositionDuration)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 28, WidthMax: 28, Align: text.AlignLeft},
		{Number: 2, WidthMin: 16, WidthMax: 20, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// PrintPositions renders a TradingSummary's individual closed positions.
func (r *ConsoleReporter) PrintPositions(summary *backtest.TradingSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("POSITIONS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Side", "Open", "Close", "Open Price", "Close Price", "Quote Δ", "Reason"})
	for _, p := range summary.Positions {
		t.AppendRow(table.Row{
			p.Side.String(), p.OpenTime, p.CloseTime,
			fmt.Sprintf("%.4f", p.OpenPrice), fmt.Sprintf("%.4f", p.ClosePrice),
			fmt.Sprintf("%.4f", p.Quote), p.Reason,
		})
	}
	t.Render()
	fmt.Println()
}

// PrintEvolution renders a genetic-algorithm run's recorded generations,
// one row per hall-of-fame entry.
func (r *ConsoleReporter) PrintEvolution(ev *optimization.Evolution) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("EVOLUTION (seed=%d)", ev.Seed))
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Gen", "Rank", "Fitness", "Missed Candle Policy", "Stop Loss", "Take Profit"})
	for _, gen := range ev.Generations {
		for rank, entry := range gen.HallOfFame {
			tp := entry.Chromosome.Trader
			t.AppendRow(table.Row{
				gen.Nr, rank + 1, fmt.Sprintf("%.6f", entry.Fitness),
				tp.MissedCandlePolicy, fmt.Sprintf("%.4f", tp.StopLoss), fmt.Sprintf("%.4f", tp.TakeProfit),
			})
		}
	}
	t.Render()
	fmt.Println()
}
