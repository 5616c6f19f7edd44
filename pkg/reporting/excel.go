package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/internal/stats"
	"github.com/quantbt/enginecore/pkg/optimization"
)

// excelStyles holds the cell styles shared across sheets.
type excelStyles struct {
	header   int
	currency int
	percent  int
}

func newExcelStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles, err
	}

	styles.currency, err = fx.NewStyle(&excelize.Style{
		NumFmt:    7,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.percent, err = fx.NewStyle(&excelize.Style{
		NumFmt:    9,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	return styles, err
}

// ExcelReporter writes backtest and optimization results to XLSX workbooks.
type ExcelReporter struct{}

func NewExcelReporter() *ExcelReporter { return &ExcelReporter{} }

// WriteBacktestXLSX writes a single symbol's positions and statistics to
// path, as a "Positions" and a "Statistics" sheet.
func (r *ExcelReporter) WriteBacktestXLSX(summary *backtest.TradingSummary, st stats.Statistics, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const positionsSheet = "Positions"
	const statsSheet = "Statistics"
	fx.SetSheetName(fx.GetSheetName(0), positionsSheet)
	fx.NewSheet(statsSheet)

	styles, err := newExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writePositionsSheet(fx, positionsSheet, summary, styles); err != nil {
		return err
	}
	if err := r.writeStatisticsSheet(fx, statsSheet, st, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writePositionsSheet(fx *excelize.File, sheet string, summary *backtest.TradingSummary, styles excelStyles) error {
	headers := []string{"Side", "Open Time", "Close Time", "Open Price", "Close Price", "Size", "Quote Δ", "Reason"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.header)
	}

	for i, p := range summary.Positions {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Side.String())
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.OpenTime)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.CloseTime)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.OpenPrice)
		fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.ClosePrice)
		fx.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Size)
		fx.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Quote)
		fx.SetCellValue(sheet, fmt.Sprintf("H%d", row), string(p.Reason))
		fx.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), styles.currency)
		fx.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), styles.currency)
	}
	return nil
}

func (r *ExcelReporter) writeStatisticsSheet(fx *excelize.File, sheet string, st stats.Statistics, styles excelStyles) error {
	rows := []struct {
		label string
		value float64
		pct   bool
	}{
		{"Profit", st.Profit, true},
		{"Sharpe Ratio", st.SharpeRatio, false},
		{"Sortino Ratio", st.SortinoRatio, false},
		{"Mean Drawdown", st.MeanDrawdown, true},
		{"Max Drawdown", st.MaxDrawdown, true},
		{"Mean Position Profit", st.MeanPositionProfit, true},
		{"Mean Position Duration (ms)", st.MeanPositionDuration, false},
		{"Positions In Profit", float64(st.NumPositionsInProfit), false},
		{"Positions In Loss", float64(st.NumPositionsInLoss), false},
		{"Total Positions", float64(st.NumPositions), false},
	}

	fx.SetCellValue(sheet, "A1", "Metric")
	fx.SetCellValue(sheet, "B1", "Value")
	fx.SetCellStyle(sheet, "A1", "B1", styles.header)

	for i, row := range rows {
		r := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.label)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.value)
		if row.pct {
			fx.SetCellStyle(sheet, fmt.Sprintf("B%d", r), fmt.Sprintf("B%d", r), styles.percent)
		}
	}
	return nil
}

// WriteEvolutionXLSX writes a genetic-algorithm run's recorded generations
// to path as a "Generations" sheet, one row per hall-of-fame entry.
func (r *ExcelReporter) WriteEvolutionXLSX(ev *optimization.Evolution, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Generations"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	styles, err := newExcelStyles(fx)
	if err != nil {
		return err
	}

	headers := []string{"Generation", "Rank", "Fitness", "Missed Candle Policy", "Stop Loss", "Trail Stop Loss", "Take Profit", "Trail Take Profit", "Enable Long", "Enable Short"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.header)
	}

	row := 2
	for _, gen := range ev.Generations {
		for rank, entry := range gen.HallOfFame {
			tp := entry.Chromosome.Trader
			fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), gen.Nr)
			fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), rank+1)
			fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.Fitness)
			fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), tp.MissedCandlePolicy.String())
			fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), tp.StopLoss)
			fx.SetCellValue(sheet, fmt.Sprintf("F%d", row), tp.TrailStopLoss)
			fx.SetCellValue(sheet, fmt.Sprintf("G%d", row), tp.TakeProfit)
			fx.SetCellValue(sheet, fmt.Sprintf("H%d", row), tp.TrailTakeProfit)
			fx.SetCellValue(sheet, fmt.Sprintf("I%d", row), tp.EnableLong)
			fx.SetCellValue(sheet, fmt.Sprintf("J%d", row), tp.EnableShort)
			row++
		}
	}

	return fx.SaveAs(path)
}
