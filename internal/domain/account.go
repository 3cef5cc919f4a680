package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind selects one of the account variants.
type AccountKind string

const (
	KindChecking        AccountKind = "checking"
	KindCollegeChecking AccountKind = "college_checking"
	KindSavings         AccountKind = "savings"
	KindMoneyMarket     AccountKind = "money_market"
)

// Kinds lists every account kind.
var Kinds = []AccountKind{KindChecking, KindCollegeChecking, KindSavings, KindMoneyMarket}

func ParseAccountKind(s string) (AccountKind, error) {
	kind := AccountKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountKind, s)
	}
	return kind, nil
}

func (k AccountKind) Valid() bool {
	switch k {
	case KindChecking, KindCollegeChecking, KindSavings, KindMoneyMarket:
		return true
	}
	return false
}

// Key is the identity of an account inside the ledger. Balance, loyalty,
// campus and withdrawal count do not take part in it.
type Key struct {
	Kind   AccountKind
	Holder Profile
}

func (k Key) Matches(other Key) bool {
	return k.Kind == other.Kind && k.Holder.Equal(other.Holder)
}

// Account is the behaviour shared by every account variant.
type Account interface {
	Key() Key
	Kind() AccountKind
	Holder() Profile
	Balance() decimal.Decimal
	IsClosed() bool

	MonthlyInterest() decimal.Decimal
	Fee() decimal.Decimal
	Type() string
	ShortType() string

	Deposit(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal)
	CanBeWithdrawn(amount decimal.Decimal) bool
	Close()
	Reopen(from Account)
	UpdateBalanceWithFeeAndMonthlyInterest()

	fmt.Stringer
}

// Loyalty is implemented by the savings variants.
type Loyalty interface {
	IsLoyal() bool
	SetLoyalty(loyal bool)
}

// Params describes an account to build. Loyal is read by Savings only,
// Campus by College Checking only.
type Params struct {
	Kind    AccountKind
	Holder  Profile
	Balance decimal.Decimal
	Loyal   bool
	Campus  Campus
}

func NewAccount(p Params) (Account, error) {
	switch p.Kind {
	case KindChecking:
		return NewChecking(p.Holder, p.Balance), nil
	case KindCollegeChecking:
		return NewCollegeChecking(p.Holder, p.Balance, p.Campus), nil
	case KindSavings:
		return NewSavings(p.Holder, p.Balance, p.Loyal), nil
	case KindMoneyMarket:
		return NewMoneyMarket(p.Holder, p.Balance), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountKind, p.Kind)
	}
}

// Clone returns an independent copy of account, so it can be read while the
// original keeps changing.
func Clone(account Account) Account {
	switch a := account.(type) {
	case *Checking:
		c := *a
		return &c
	case *CollegeChecking:
		c := *a
		return &c
	case *Savings:
		c := *a
		return &c
	case *MoneyMarket:
		c := *a
		return &c
	}
	return account
}

var monthsPerYear = decimal.NewFromInt(12)

// base carries the state and behaviour every variant shares.
type base struct {
	kind    AccountKind
	holder  Profile
	balance decimal.Decimal
	closed  bool
}

func newBase(kind AccountKind, holder Profile, balance decimal.Decimal) base {
	return base{kind: kind, holder: holder, balance: balance}
}

func (b *base) Key() Key                 { return Key{Kind: b.kind, Holder: b.holder} }
func (b *base) Kind() AccountKind        { return b.kind }
func (b *base) Holder() Profile          { return b.holder }
func (b *base) Balance() decimal.Decimal { return b.balance }
func (b *base) IsClosed() bool           { return b.closed }

func (b *base) Deposit(amount decimal.Decimal) {
	b.balance = b.balance.Add(amount)
}

// Withdraw does not check the balance; see CanBeWithdrawn.
func (b *base) Withdraw(amount decimal.Decimal) {
	b.balance = b.balance.Sub(amount)
}

func (b *base) CanBeWithdrawn(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(b.balance)
}

func (b *base) Close() {
	b.balance = decimal.Zero
	b.closed = true
}

func (b *base) reopen(from Account) {
	b.balance = from.Balance()
	b.closed = false
}

func (b *base) settle(fee, interest decimal.Decimal) {
	if b.closed {
		return
	}
	b.balance = b.balance.Sub(fee).Add(interest)
}

// interestAt takes the annual rate as a fraction (0.10 is 10%), so one month
// is balance*rate/12. A 1200 divisor would only be right for rates given in
// percent, and gives $0.0417 instead of $4.1667 on a $500 Checking account.
func (b *base) interestAt(annualRate decimal.Decimal) decimal.Decimal {
	return b.balance.Mul(annualRate).Div(monthsPerYear)
}

func (b *base) describe() string {
	return b.holder.String() + "::Balance " + FormatMoney(b.balance)
}

var (
	_ Account = (*Checking)(nil)
	_ Account = (*CollegeChecking)(nil)
	_ Account = (*Savings)(nil)
	_ Account = (*MoneyMarket)(nil)
	_ Loyalty = (*Savings)(nil)
	_ Loyalty = (*MoneyMarket)(nil)
)
