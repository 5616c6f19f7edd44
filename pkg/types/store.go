package types

import "context"

// CandleStore is an external collaborator that yields candle slices. The
// core treats it as opaque: candle persistence, backfill, and exchange
// connectivity live outside this module.
type CandleStore interface {
	ListCandles(ctx context.Context, exchange, symbol, interval string, start, end int64) ([]Candle, error)
}

// ExchangeInfo bundles the per-symbol trading metadata an exchange publishes.
type ExchangeInfo struct {
	Fees       map[string]Fees
	Filters    map[string]Filters
	BorrowInfo map[string]map[string]BorrowInfo
}

// ExchangeInfoStore is an external collaborator that retrieves exchange
// metadata (fees, filters, margin terms) for a given exchange.
type ExchangeInfoStore interface {
	GetExchangeInfo(ctx context.Context, exchange string) (ExchangeInfo, error)
}
