package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	savingsRate        = decimal.New(30, -2)
	loyaltyBonusRate   = decimal.New(15, -2)
	savingsFee         = decimal.NewFromInt(6)
	savingsFeeWaiver   = decimal.NewFromInt(300)
	moneyMarketRate    = decimal.New(80, -2)
	moneyMarketFee     = decimal.NewFromInt(10)
	moneyMarketMinimum = decimal.NewFromInt(2500)
)

// MaxFreeWithdrawals is how many Money Market withdrawals a period allows
// before the monthly fee applies regardless of balance.
const MaxFreeWithdrawals = 3

// MoneyMarketMinimum is the balance a Money Market account needs to open,
// to count as loyal, and to waive its fee.
func MoneyMarketMinimum() decimal.Decimal { return moneyMarketMinimum }

type Savings struct {
	base
	loyal bool
}

func NewSavings(holder Profile, balance decimal.Decimal, loyal bool) *Savings {
	return &Savings{base: newBase(KindSavings, holder, balance), loyal: loyal}
}

func (s *Savings) IsLoyal() bool         { return s.loyal }
func (s *Savings) SetLoyalty(loyal bool) { s.loyal = loyal }

func (s *Savings) MonthlyInterest() decimal.Decimal {
	return s.interestAt(annualSavingsRate(savingsRate, s.loyal))
}

func (s *Savings) Fee() decimal.Decimal {
	if s.closed || s.balance.GreaterThanOrEqual(savingsFeeWaiver) {
		return decimal.Zero
	}
	return savingsFee
}

func (s *Savings) Type() string      { return "Savings" }
func (s *Savings) ShortType() string { return s.Type() }

func (s *Savings) Reopen(from Account) {
	s.reopen(from)
	if other, ok := from.(Loyalty); ok {
		s.loyal = other.IsLoyal()
	}
}

func (s *Savings) UpdateBalanceWithFeeAndMonthlyInterest() {
	s.settle(s.Fee(), s.MonthlyInterest())
}

func (s *Savings) String() string {
	return savingsLine(s.Type(), &s.base, s.loyal)
}

// MoneyMarket is a savings account whose loyalty follows its balance and
// whose fee also depends on the number of withdrawals.
type MoneyMarket struct {
	base
	withdrawals int
}

func NewMoneyMarket(holder Profile, balance decimal.Decimal) *MoneyMarket {
	return &MoneyMarket{base: newBase(KindMoneyMarket, holder, balance)}
}

func (m *MoneyMarket) IsLoyal() bool {
	return m.balance.GreaterThanOrEqual(moneyMarketMinimum)
}

// SetLoyalty is a no-op: loyalty is derived from the balance.
func (m *MoneyMarket) SetLoyalty(bool) {}

func (m *MoneyMarket) HasMinimumInitialDeposit() bool {
	return m.IsLoyal()
}

func (m *MoneyMarket) Withdrawals() int { return m.withdrawals }

func (m *MoneyMarket) MonthlyInterest() decimal.Decimal {
	return m.interestAt(annualSavingsRate(moneyMarketRate, m.IsLoyal()))
}

func (m *MoneyMarket) Fee() decimal.Decimal {
	if m.closed {
		return decimal.Zero
	}
	if m.balance.GreaterThanOrEqual(moneyMarketMinimum) && m.withdrawals <= MaxFreeWithdrawals {
		return decimal.Zero
	}
	return moneyMarketFee
}

func (m *MoneyMarket) Withdraw(amount decimal.Decimal) {
	m.base.Withdraw(amount)
	m.withdrawals++
}

func (m *MoneyMarket) Close() {
	m.base.Close()
	m.withdrawals = 0
}

func (m *MoneyMarket) Type() string      { return "Money Market Savings" }
func (m *MoneyMarket) ShortType() string { return "Money Market" }

func (m *MoneyMarket) Reopen(from Account) {
	m.reopen(from)
}

func (m *MoneyMarket) UpdateBalanceWithFeeAndMonthlyInterest() {
	m.settle(m.Fee(), m.MonthlyInterest())
}

func (m *MoneyMarket) String() string {
	return savingsLine(m.Type(), &m.base, m.IsLoyal()) + "::withdrawal: " + strconv.Itoa(m.withdrawals)
}

func annualSavingsRate(rate decimal.Decimal, loyal bool) decimal.Decimal {
	if loyal {
		return rate.Add(loyaltyBonusRate)
	}
	return rate
}

func savingsLine(typeName string, b *base, loyal bool) string {
	line := typeName + "::" + b.describe()
	switch {
	case b.closed:
		line += "::CLOSED"
	case loyal:
		line += "::Loyal"
	}
	return line
}
