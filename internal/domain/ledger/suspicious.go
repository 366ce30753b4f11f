package ledger

import "loyalty/internal/domain/entity"

// SuspiciousDelta returns the balance change for the transaction owner when the
// suspicious flag moves to value. Flagging withdraws the amount, clearing gives
// it back, and setting the current value changes nothing.
func SuspiciousDelta(tx *entity.Transaction, value bool) (delta int64, changed bool) {
	if tx.Suspicious == value {
		return 0, false
	}
	if value {
		return -tx.Amount, true
	}

	return tx.Amount, true
}
