package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"bank_teller/internal/domain"
	"bank_teller/internal/repository"
)

const capacityIncrement = 4

// AccountRepository is an ordered, in-memory account ledger. Insertion
// order is kept until PrintByAccountType reorders the accounts in place.
type AccountRepository struct {
	mu       sync.Mutex
	accounts []domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make([]domain.Account, 0, capacityIncrement),
	}
}

func (r *AccountRepository) Open(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == cap(r.accounts) {
		r.grow()
	}
	r.accounts = append(r.accounts, account)

	return nil
}

func (r *AccountRepository) grow() {
	grown := make([]domain.Account, len(r.accounts), cap(r.accounts)+capacityIncrement)
	copy(grown, r.accounts)
	r.accounts = grown
}

func (r *AccountRepository) Find(ctx context.Context, account domain.Account) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(account)
}

func (r *AccountRepository) find(account domain.Account) int {
	key := account.Key()
	for i, stored := range r.accounts {
		if stored.Key().Matches(key) {
			return i
		}
	}
	return repository.NotFound
}

func (r *AccountRepository) GetIfExists(ctx context.Context, account domain.Account) domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.find(account); i != repository.NotFound {
		return domain.Clone(r.accounts[i])
	}
	return nil
}

func (r *AccountRepository) Reopen(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(account)
	if i == repository.NotFound {
		return fmt.Errorf("%w: %s %s", repository.ErrNotFound, account.ShortType(), account.Holder())
	}

	r.accounts[i].Reopen(account)
	return nil
}

func (r *AccountRepository) Close(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(account)
	if i == repository.NotFound {
		return fmt.Errorf("%w: %s %s", repository.ErrNotFound, account.ShortType(), account.Holder())
	}

	r.accounts[i].Close()
	return nil
}

// Deposit adds the transient account's balance to the stored one.
func (r *AccountRepository) Deposit(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(account)
	if i == repository.NotFound {
		return fmt.Errorf("%w: %s %s", repository.ErrNotFound, account.ShortType(), account.Holder())
	}

	r.accounts[i].Deposit(account.Balance())
	return nil
}

// Withdraw takes the transient account's balance from the stored one.
func (r *AccountRepository) Withdraw(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(account)
	if i == repository.NotFound || !r.accounts[i].CanBeWithdrawn(account.Balance()) {
		return repository.ErrWithdrawRejected
	}

	r.accounts[i].Withdraw(account.Balance())
	return nil
}

func (r *AccountRepository) Len(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.accounts)
}

func (r *AccountRepository) Accounts(ctx context.Context) []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Account, len(r.accounts))
	for i, account := range r.accounts {
		out[i] = domain.Clone(account)
	}
	return out
}

func (r *AccountRepository) Print(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.render()
}

func (r *AccountRepository) PrintByAccountType(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	slices.SortStableFunc(r.accounts, func(a, b domain.Account) int {
		return strings.Compare(a.Type(), b.Type())
	})

	return r.render()
}

func (r *AccountRepository) PrintFeeAndInterest(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for _, account := range r.accounts {
		fmt.Fprintf(&sb, "%s::fee %s::monthly interest %s\n",
			account,
			domain.FormatMoney(account.Fee()),
			domain.FormatMoney(account.MonthlyInterest()))
	}
	return sb.String()
}

func (r *AccountRepository) PrintWithUpdatedBalance(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		account.UpdateBalanceWithFeeAndMonthlyInterest()
	}

	return r.render()
}

func (r *AccountRepository) render() string {
	var sb strings.Builder
	for _, account := range r.accounts {
		sb.WriteString(account.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// capacity reports the size of the backing array.
func (r *AccountRepository) capacity() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cap(r.accounts)
}
