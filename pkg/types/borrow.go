package types

// BorrowInfo describes margin-borrowing terms for a (symbol, asset) pair.
type BorrowInfo struct {
	DailyInterestRate float64 `json:"daily_interest_rate"`
	Limit             float64 `json:"limit"`
}
