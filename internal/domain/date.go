package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400
	februaryLeapDay  = 29
	daysEnd          = 31
)

// Date is a calendar date. It is not validated on construction; call
// IsValid before trusting it.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate reads a date written as mm/dd/yyyy.
func ParseDate(s string) (Date, error) {
	tokens := strings.Split(strings.TrimSpace(s), "/")
	if len(tokens) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	parts := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		parts[i] = n
	}

	return NewDate(parts[2], parts[0], parts[1]), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) IsValid() bool {
	if d.Day < 1 || d.Day > daysEnd {
		return false
	}

	switch time.Month(d.Month) {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return true
	case time.February:
		if d.isLeapYear() && d.Day == februaryLeapDay {
			return true
		}
		return d.Day < februaryLeapDay
	case time.April, time.June, time.September, time.November:
		return d.Day < daysEnd
	default:
		return false
	}
}

func (d Date) isLeapYear() bool {
	if d.Year%quadrennial != 0 {
		return false
	}
	if d.Year%centennial != 0 {
		return true
	}
	return d.Year%quatercentennial == 0
}

// Compare orders dates by year, then month, then day.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) IsInTheFuture() bool {
	return d.Compare(Today()) > 0
}

func (d Date) IsInThePast() bool {
	return d.Compare(Today()) < 0
}

func (d Date) IsInTheFutureAt(now time.Time) bool {
	return d.Compare(DateOf(now)) > 0
}

func (d Date) IsInThePastAt(now time.Time) bool {
	return d.Compare(DateOf(now)) < 0
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
