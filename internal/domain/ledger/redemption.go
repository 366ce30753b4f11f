package ledger

import (
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
)

// ValidateRedemptionRequest checks that user may redeem amount points.
func ValidateRedemptionRequest(user *entity.User, amount int64) error {
	if amount <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}
	if !user.Verified {
		return domainerrors.ErrUnverifiedUser
	}
	if !user.CanAfford(amount) {
		return domainerrors.ErrInsufficientBalance
	}

	return nil
}

// ProcessRedemption moves a redemption from pending to processed. The balance
// was debited when the redemption was requested; with restoreOnProcess the
// redeemed amount is credited back and returned as credit.
func ProcessRedemption(tx *entity.Transaction, restoreOnProcess bool) (credit int64, err error) {
	if tx.Type != entity.TransactionRedemption {
		return 0, domainerrors.ErrValidationFailed.WithDetails("transaction is not a redemption")
	}
	if tx.IsProcessed() {
		return 0, domainerrors.ErrRedemptionAlreadyProcessed
	}
	if !restoreOnProcess {
		return 0, nil
	}
	if tx.Redeemed != nil {
		return *tx.Redeemed, nil
	}

	return -tx.Amount, nil
}
