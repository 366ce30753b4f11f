package repository

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTransactionNotFound is returned when a ledger transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrPromotionNotFound is returned when a promotion is not found.
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrDuplicateUser is returned when the utorid or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrPromotionAlreadyUsed is returned when a one-time promotion is consumed twice.
	ErrPromotionAlreadyUsed = errors.New("promotion already used")
	// ErrDuplicateGuest is returned when the user is already on the guest list.
	ErrDuplicateGuest = errors.New("guest already exists")
	// ErrDuplicateOrganizer is returned when the user already organizes the event.
	ErrDuplicateOrganizer = errors.New("organizer already exists")
)
