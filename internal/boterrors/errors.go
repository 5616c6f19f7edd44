// Package boterrors provides categorized errors for the backtesting core,
// adapted from the bot's original ad hoc error categories to the five kinds
// the engine distinguishes: invalid parameters, insufficient data, storage
// failures, filter violations, and numeric degeneracy, plus a validation
// category for malformed input data.
package boterrors

import "fmt"

// Category classifies an error for the purposes of fatality and retry.
type Category string

const (
	// InvalidParams marks a chromosome field out of its declared domain, or
	// an MA tag absent from the fixed MA_CHOICES catalog. Fatal: a
	// programmer error, never expected from well-formed input.
	InvalidParams Category = "invalid_params"
	// InsufficientData marks a candle count below the maximum maturity of
	// some constituent indicator/strategy.
	InsufficientData Category = "insufficient_data"
	// StoreFailure marks a failed candle or exchange-info lookup,
	// propagated from an external collaborator.
	StoreFailure Category = "store_failure"
	// FilterViolation marks a computed order that fails exchange filters.
	// Non-fatal: the simulator skips the entry and records no position.
	FilterViolation Category = "filter_violation"
	// NumericDegenerate marks statistics computed on too few returns;
	// surfaced as NaN fields, not as an error condition by itself.
	NumericDegenerate Category = "numeric_degenerate"
	// Validation marks malformed input data crossing a storage boundary
	// (e.g. a candle failing its OHLC invariant).
	Validation Category = "validation"
)

// BotError is a categorized error with enough context to decide whether the
// caller should treat it as fatal.
type BotError struct {
	Category   Category
	Component  string
	Operation  string
	Message    string
	Underlying error
}

func (e *BotError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

func (e *BotError) Unwrap() error { return e.Underlying }

// IsFatal reports whether this error category should stop the caller rather
// than being absorbed (skip-and-continue, NaN field, -Inf fitness, ...).
func (e *BotError) IsFatal() bool {
	switch e.Category {
	case InvalidParams, Validation:
		return true
	default:
		return false
	}
}

// New creates a BotError without an underlying cause.
func New(category Category, component, operation, message string) *BotError {
	return &BotError{Category: category, Component: component, Operation: operation, Message: message}
}

// Wrap attaches category/component/operation context to an existing error.
func Wrap(err error, category Category, component, operation string) *BotError {
	if err == nil {
		return nil
	}
	return &BotError{Category: category, Component: component, Operation: operation, Message: "operation failed", Underlying: err}
}
