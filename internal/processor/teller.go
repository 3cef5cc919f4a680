package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bank_teller/internal/domain"
	"bank_teller/internal/repository"
	"bank_teller/pkg/validator"
)

const (
	MsgOpened            = "Account opened."
	MsgReopened          = "Account reopened."
	MsgClosed            = "Account closed."
	MsgAlreadyClosed     = "Account is closed already."
	MsgDeposited         = "Deposit - balance updated."
	MsgWithdrawn         = "Withdraw - balance updated."
	MsgInsufficientFunds = "Withdraw - insufficient fund."
	MsgChooseCampus      = "Choose a college campus"
	MsgInvalidKind       = "Invalid Account Type"
	MsgEmptyLedger       = "Account Database is empty!"
	MsgInvalidAmount     = "Amount can't be blank or invalid."
	MsgBlankDOB          = "Date of birth can't be blank."
	MsgInvalidDOB        = "Date of birth invalid, not a valid calendar date."
	MsgFutureDOB         = "Date of birth invalid, it's a future date."

	msgOpenNonPositive     = "Initial deposit cannot be 0 or negative."
	msgDepositNonPositive  = "Deposit - amount cannot be 0 or negative."
	msgWithdrawNonPositive = "Withdraw - amount cannot be 0 or negative."
	msgDepositClosed       = "Cannot deposit into a closed account."
	msgWithdrawClosed      = "Cannot withdraw from a closed account."
)

// Request is a teller form submission. Every field is raw user input.
type Request struct {
	Kind      string
	FirstName string
	LastName  string
	DOB       string
	Amount    string
	Loyal     bool
	Campus    string
}

// Rejection is returned when a request is refused. Message is the text to
// show the teller; Err is one of the domain sentinel errors.
type Rejection struct {
	Err     error
	Message string
}

func (r *Rejection) Error() string { return r.Message }
func (r *Rejection) Unwrap() error { return r.Err }

func reject(err error, message string) *Rejection {
	return &Rejection{Err: err, Message: message}
}

// KindSummary aggregates the ledger by account kind.
type KindSummary struct {
	Kind    domain.AccountKind
	Count   int
	Balance decimal.Decimal
}

// Teller runs teller operations against the ledger. Validation always
// completes before the ledger is touched. mu makes each operation's lookup
// and mutation one step, so concurrent requests cannot both open the same
// key or act on an account closed in between.
type Teller struct {
	mu        sync.Mutex
	ledger    repository.AccountRepository
	validator *validator.RequestValidator
	logger    *slog.Logger
}

func NewTeller(ledger repository.AccountRepository, now func() time.Time, logger *slog.Logger) *Teller {
	if logger == nil {
		logger = slog.Default()
	}

	return &Teller{
		ledger:    ledger,
		validator: validator.NewRequestValidator(now),
		logger:    logger,
	}
}

func (t *Teller) Open(ctx context.Context, req Request) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kind, campus, err := t.kindAndCampus(req, true)
	if err != nil {
		return "", err
	}

	account, err := t.buildAccount(req, kind, campus, msgOpenNonPositive)
	if err != nil {
		return "", err
	}

	if existing := t.ledger.GetIfExists(ctx, account); existing != nil {
		if !existing.IsClosed() {
			return "", t.duplicate(account)
		}
		if err := t.ledger.Reopen(ctx, account); err != nil {
			return "", fmt.Errorf("reopen failed: %w", err)
		}
		t.logger.InfoContext(ctx, "Account reopened",
			slog.String("kind", string(kind)),
			slog.String("holder", account.Holder().String()))
		return MsgReopened, nil
	}

	if t.hasConflictingChecking(ctx, account) {
		return "", t.duplicate(account)
	}

	if mm, ok := account.(*domain.MoneyMarket); ok && !mm.HasMinimumInitialDeposit() {
		return "", reject(domain.ErrInsufficientInitialDeposit,
			fmt.Sprintf("Minimum of $%s to open a MoneyMarket account.", domain.MoneyMarketMinimum()))
	}

	if err := t.ledger.Open(ctx, account); err != nil {
		return "", fmt.Errorf("open failed: %w", err)
	}
	t.logger.InfoContext(ctx, "Account opened",
		slog.String("kind", string(kind)),
		slog.String("holder", account.Holder().String()),
		slog.String("balance", account.Balance().String()))
	return MsgOpened, nil
}

func (t *Teller) Close(ctx context.Context, req Request) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kind, campus, err := t.kindAndCampus(req, true)
	if err != nil {
		return "", err
	}

	holder, err := t.holder(req)
	if err != nil {
		return "", err
	}
	account, err := domain.NewAccount(domain.Params{Kind: kind, Holder: holder, Campus: campus})
	if err != nil {
		return "", reject(err, MsgInvalidKind)
	}

	existing := t.ledger.GetIfExists(ctx, account)
	if existing == nil {
		return "", t.notFound(account)
	}
	if existing.IsClosed() {
		return "", reject(domain.ErrAccountClosed, MsgAlreadyClosed)
	}

	if err := t.ledger.Close(ctx, account); err != nil {
		return "", fmt.Errorf("close failed: %w", err)
	}
	t.logger.InfoContext(ctx, "Account closed",
		slog.String("kind", string(kind)),
		slog.String("holder", holder.String()))
	return MsgClosed, nil
}

func (t *Teller) Deposit(ctx context.Context, req Request) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	account, err := t.openAccountFor(ctx, req, msgDepositNonPositive, msgDepositClosed)
	if err != nil {
		return "", err
	}

	if err := t.ledger.Deposit(ctx, account); err != nil {
		return "", fmt.Errorf("deposit failed: %w", err)
	}
	t.logger.InfoContext(ctx, "Deposit applied",
		slog.String("kind", string(account.Kind())),
		slog.String("holder", account.Holder().String()),
		slog.String("amount", account.Balance().String()))
	return MsgDeposited, nil
}

func (t *Teller) Withdraw(ctx context.Context, req Request) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	account, err := t.openAccountFor(ctx, req, msgWithdrawNonPositive, msgWithdrawClosed)
	if err != nil {
		return "", err
	}

	if err := t.ledger.Withdraw(ctx, account); err != nil {
		if errors.Is(err, repository.ErrWithdrawRejected) {
			return "", reject(domain.ErrInsufficientFunds, MsgInsufficientFunds)
		}
		return "", fmt.Errorf("withdraw failed: %w", err)
	}
	t.logger.InfoContext(ctx, "Withdrawal applied",
		slog.String("kind", string(account.Kind())),
		slog.String("holder", account.Holder().String()),
		slog.String("amount", account.Balance().String()))
	return MsgWithdrawn, nil
}

func (t *Teller) Print(ctx context.Context) (string, error) {
	return t.report(ctx, t.ledger.Print)
}

func (t *Teller) PrintByAccountType(ctx context.Context) (string, error) {
	return t.report(ctx, t.ledger.PrintByAccountType)
}

func (t *Teller) PrintFeeAndInterest(ctx context.Context) (string, error) {
	return t.report(ctx, t.ledger.PrintFeeAndInterest)
}

// PrintWithUpdatedBalance applies the monthly fee and interest to every
// account before rendering.
func (t *Teller) PrintWithUpdatedBalance(ctx context.Context) (string, error) {
	out, err := t.report(ctx, t.ledger.PrintWithUpdatedBalance)
	if err == nil {
		t.logger.InfoContext(ctx, "Monthly balances updated",
			slog.Int("accounts", t.ledger.Len(ctx)))
	}
	return out, err
}

func (t *Teller) Accounts(ctx context.Context) []domain.Account {
	return t.ledger.Accounts(ctx)
}

// Summary reports count and total balance for every kind, in Kinds order.
func (t *Teller) Summary(ctx context.Context) []KindSummary {
	byKind := make(map[domain.AccountKind]*KindSummary, len(domain.Kinds))
	out := make([]KindSummary, len(domain.Kinds))
	for i, kind := range domain.Kinds {
		out[i] = KindSummary{Kind: kind, Balance: decimal.Zero}
		byKind[kind] = &out[i]
	}

	for _, account := range t.ledger.Accounts(ctx) {
		s := byKind[account.Kind()]
		s.Count++
		s.Balance = s.Balance.Add(account.Balance())
	}
	return out
}

func (t *Teller) report(ctx context.Context, render func(context.Context) string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ledger.Len(ctx) == 0 {
		return "", reject(domain.ErrEmptyLedger, MsgEmptyLedger)
	}
	return render(ctx), nil
}

// openAccountFor validates a deposit or withdraw request and returns the
// transient account carrying the amount, once the stored account is known
// to exist and be open.
func (t *Teller) openAccountFor(ctx context.Context, req Request, nonPositiveMsg, closedMsg string) (domain.Account, error) {
	kind, campus, err := t.kindAndCampus(req, false)
	if err != nil {
		return nil, err
	}

	account, err := t.buildAccount(req, kind, campus, nonPositiveMsg)
	if err != nil {
		return nil, err
	}

	existing := t.ledger.GetIfExists(ctx, account)
	if existing == nil {
		return nil, t.notFound(account)
	}
	if existing.IsClosed() {
		return nil, reject(domain.ErrAccountClosed, closedMsg)
	}
	return account, nil
}

func (t *Teller) kindAndCampus(req Request, campusRequired bool) (domain.AccountKind, domain.Campus, error) {
	kind, err := domain.ParseAccountKind(req.Kind)
	if err != nil {
		return "", "", reject(err, MsgInvalidKind)
	}
	if kind != domain.KindCollegeChecking {
		return kind, "", nil
	}

	campus, err := t.validator.ValidateCampus(req.Campus)
	if err != nil && campusRequired {
		return "", "", reject(domain.ErrMissingCampus, MsgChooseCampus)
	}
	return kind, campus, nil
}

func (t *Teller) buildAccount(req Request, kind domain.AccountKind, campus domain.Campus, nonPositiveMsg string) (domain.Account, error) {
	holder, err := t.holder(req)
	if err != nil {
		return nil, err
	}

	amount, err := t.validator.ParseAmount(req.Amount)
	switch {
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return nil, reject(err, nonPositiveMsg)
	case err != nil:
		return nil, reject(err, MsgInvalidAmount)
	}

	account, err := domain.NewAccount(domain.Params{
		Kind:    kind,
		Holder:  holder,
		Balance: amount,
		Loyal:   req.Loyal,
		Campus:  campus,
	})
	if err != nil {
		return nil, reject(err, MsgInvalidKind)
	}
	return account, nil
}

func (t *Teller) holder(req Request) (domain.Profile, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)

	if err := t.validator.ValidateName("first name", first); err != nil {
		return domain.Profile{}, reject(err, nameMessage("First Name", err))
	}
	if err := t.validator.ValidateName("last name", last); err != nil {
		return domain.Profile{}, reject(err, nameMessage("Last Name", err))
	}

	dob, err := t.validator.ValidateDateOfBirth(req.DOB)
	switch {
	case errors.Is(err, domain.ErrFutureDateOfBirth):
		return domain.Profile{}, reject(err, MsgFutureDOB)
	case errors.Is(err, domain.ErrInvalidDate):
		return domain.Profile{}, reject(err, MsgInvalidDOB)
	case err != nil:
		return domain.Profile{}, reject(err, MsgBlankDOB)
	}

	return domain.NewProfile(first, last, dob), nil
}

// hasConflictingChecking reports whether the holder already has the other
// checking variant; a holder keeps at most one of Checking and College
// Checking, open or closed.
func (t *Teller) hasConflictingChecking(ctx context.Context, account domain.Account) bool {
	var sibling domain.Account
	switch account.Kind() {
	case domain.KindChecking:
		sibling = domain.NewCollegeChecking(account.Holder(), decimal.Zero, "")
	case domain.KindCollegeChecking:
		sibling = domain.NewChecking(account.Holder(), decimal.Zero)
	default:
		return false
	}
	return t.ledger.GetIfExists(ctx, sibling) != nil
}

func (t *Teller) duplicate(account domain.Account) *Rejection {
	return reject(domain.ErrDuplicateAccount,
		account.Holder().String()+" same account(type) is in the database.")
}

func (t *Teller) notFound(account domain.Account) *Rejection {
	return reject(domain.ErrAccountNotFound,
		account.Holder().String()+" "+account.ShortType()+" is not in the database.")
}

func nameMessage(field string, err error) string {
	if errors.Is(err, domain.ErrInvalidName) {
		return field + " cannot have numbers!"
	}
	return field + " cannot be blank!"
}
