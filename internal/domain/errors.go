package domain

import "errors"

var (
	// Input errors
	ErrInvalidDateFormat    = errors.New("invalid date format: want mm/dd/yyyy")
	ErrInvalidDate          = errors.New("not a valid calendar date")
	ErrFutureDateOfBirth    = errors.New("date of birth is in the future")
	ErrBlankName            = errors.New("name cannot be blank")
	ErrInvalidName          = errors.New("name cannot contain digits")
	ErrBlankOrInvalidAmount = errors.New("amount is blank or invalid")
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrMissingCampus        = errors.New("college campus not selected")
	ErrUnknownAccountKind   = errors.New("unknown account kind")

	// Ledger errors
	ErrAccountNotFound            = errors.New("account not found")
	ErrDuplicateAccount           = errors.New("account already exists")
	ErrAccountClosed              = errors.New("account is closed")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrInsufficientInitialDeposit = errors.New("insufficient initial deposit")
	ErrEmptyLedger                = errors.New("ledger is empty")
)
