package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// FX errors
	ErrRatesUnavailable = errors.New("fx rates unavailable")

	// Benchmark errors
	ErrBenchmarkNotFound = errors.New("benchmark not found")
)
