package service

// LedgerMetrics records business counters for committed ledger operations.
type LedgerMetrics interface {
	// TransactionRecorded counts one committed transaction row and its signed amount.
	TransactionRecorded(txType string, amount int64)

	// PromotionsConsumed counts one-time promotions marked as used.
	PromotionsConsumed(count int)

	// RateLimited counts a request refused by the rate limiter.
	RateLimited(operation string)
}
