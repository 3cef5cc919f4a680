package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Campus is the Rutgers campus a College Checking account belongs to.
type Campus string

const (
	CampusNewBrunswick Campus = "NEW_BRUNSWICK"
	CampusNewark       Campus = "NEWARK"
	CampusCamden       Campus = "CAMDEN"
)

var campusCodes = map[string]Campus{
	"0": CampusNewBrunswick,
	"1": CampusNewark,
	"2": CampusCamden,
}

// ParseCampus accepts a campus name or its numeric code.
func ParseCampus(s string) (Campus, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if c, ok := campusCodes[s]; ok {
		return c, nil
	}
	switch c := Campus(s); c {
	case CampusNewBrunswick, CampusNewark, CampusCamden:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMissingCampus, s)
}

var (
	checkingRate        = decimal.New(10, -2)
	checkingFee         = decimal.NewFromInt(25)
	checkingFeeWaiver   = decimal.NewFromInt(1000)
	collegeCheckingRate = decimal.New(25, -2)
)

type Checking struct {
	base
}

func NewChecking(holder Profile, balance decimal.Decimal) *Checking {
	return &Checking{base: newBase(KindChecking, holder, balance)}
}

func (c *Checking) MonthlyInterest() decimal.Decimal {
	return c.interestAt(checkingRate)
}

func (c *Checking) Fee() decimal.Decimal {
	if c.closed || c.balance.GreaterThanOrEqual(checkingFeeWaiver) {
		return decimal.Zero
	}
	return checkingFee
}

func (c *Checking) Type() string      { return "Checking" }
func (c *Checking) ShortType() string { return c.Type() }

func (c *Checking) Reopen(from Account) {
	c.reopen(from)
}

func (c *Checking) UpdateBalanceWithFeeAndMonthlyInterest() {
	c.settle(c.Fee(), c.MonthlyInterest())
}

func (c *Checking) String() string {
	return checkingLine(c.Type(), &c.base)
}

// CollegeChecking is a fee-free checking account for students.
type CollegeChecking struct {
	base
	campus Campus
}

func NewCollegeChecking(holder Profile, balance decimal.Decimal, campus Campus) *CollegeChecking {
	return &CollegeChecking{base: newBase(KindCollegeChecking, holder, balance), campus: campus}
}

func (c *CollegeChecking) Campus() Campus { return c.campus }

func (c *CollegeChecking) MonthlyInterest() decimal.Decimal {
	return c.interestAt(collegeCheckingRate)
}

func (c *CollegeChecking) Fee() decimal.Decimal {
	return decimal.Zero
}

func (c *CollegeChecking) Type() string      { return "College Checking" }
func (c *CollegeChecking) ShortType() string { return c.Type() }

func (c *CollegeChecking) Reopen(from Account) {
	c.reopen(from)
	if cc, ok := from.(*CollegeChecking); ok {
		c.campus = cc.campus
	}
}

func (c *CollegeChecking) UpdateBalanceWithFeeAndMonthlyInterest() {
	c.settle(c.Fee(), c.MonthlyInterest())
}

func (c *CollegeChecking) String() string {
	return checkingLine(c.Type(), &c.base) + "::" + string(c.campus)
}

func checkingLine(typeName string, b *base) string {
	line := typeName + "::" + b.describe()
	if b.closed {
		line += "::CLOSED"
	}
	return line
}
