// Package common holds small loading/formatting helpers shared by the
// backtest and optimize CLIs.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/quantbt/enginecore/pkg/types"
)

// LoadCandlesCSV reads a "time,open,high,low,close,volume" CSV file, where
// time is either a unix-millisecond integer or a "2006-01-02 15:04:05"
// timestamp. Malformed rows are skipped rather than aborting the whole
// load, matching how a backtest should tolerate a dirty data export.
func LoadCandlesCSV(path string) ([]types.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candles file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var candles []types.Candle
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line++
				continue
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		if len(record) < 6 {
			continue
		}
		ts, ok := parseTime(record[0])
		if !ok {
			continue
		}
		open, err1 := strconv.ParseFloat(record[1], 64)
		high, err2 := strconv.ParseFloat(record[2], 64)
		low, err3 := strconv.ParseFloat(record[3], 64)
		cls, err4 := strconv.ParseFloat(record[4], 64)
		vol, err5 := strconv.ParseFloat(record[5], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		c, err := types.NewCandle(ts, open, high, low, cls, vol)
		if err != nil {
			continue
		}
		candles = append(candles, c)
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Time < candles[j].Time })
	return candles, nil
}

func parseTime(s string) (int64, bool) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UnixMilli(), true
	}
	return 0, false
}
