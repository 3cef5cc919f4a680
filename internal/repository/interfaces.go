package repository

import (
	"context"
	"errors"

	"bank_teller/internal/domain"
)

// NotFound is the index Find reports for an account the ledger does not hold.
const NotFound = -1

// AccountRepository is the account ledger. Every operation takes a
// transient account as lookup key and payload. Stored accounts never leave
// the repository: GetIfExists and Accounts return copies.
type AccountRepository interface {
	Open(ctx context.Context, account domain.Account) error
	Find(ctx context.Context, account domain.Account) int
	GetIfExists(ctx context.Context, account domain.Account) domain.Account
	Reopen(ctx context.Context, account domain.Account) error
	Close(ctx context.Context, account domain.Account) error
	Deposit(ctx context.Context, account domain.Account) error
	Withdraw(ctx context.Context, account domain.Account) error
	Len(ctx context.Context) int
	Accounts(ctx context.Context) []domain.Account

	Print(ctx context.Context) string
	PrintByAccountType(ctx context.Context) string
	PrintFeeAndInterest(ctx context.Context) string
	PrintWithUpdatedBalance(ctx context.Context) string
}

var (
	ErrNotFound = errors.New("not found")
	// ErrWithdrawRejected covers both a missing account and insufficient
	// funds; callers that need to tell them apart look the account up first.
	ErrWithdrawRejected = errors.New("withdraw rejected")
)
