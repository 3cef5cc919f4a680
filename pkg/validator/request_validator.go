package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bank_teller/internal/domain"
)

// RequestValidator checks teller input before any ledger access.
type RequestValidator struct {
	digitRegex *regexp.Regexp
	now        func() time.Time
}

// NewRequestValidator builds a validator whose notion of today comes from
// now; nil means time.Now.
func NewRequestValidator(now func() time.Time) *RequestValidator {
	if now == nil {
		now = time.Now
	}
	return &RequestValidator{
		digitRegex: regexp.MustCompile(`[0-9]`),
		now:        now,
	}
}

// ValidateName rejects blank names and names containing digits. field is
// used only to label the returned error.
func (v *RequestValidator) ValidateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrBlankName, field)
	}
	if v.digitRegex.MatchString(name) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidName, field)
	}
	return nil
}

// ValidateDateOfBirth parses raw as mm/dd/yyyy and requires a real calendar
// date that is not after today.
func (v *RequestValidator) ValidateDateOfBirth(raw string) (domain.Date, error) {
	dob, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, err
	}
	if !dob.IsValid() {
		return domain.Date{}, fmt.Errorf("%w: %s", domain.ErrInvalidDate, dob)
	}
	if dob.IsInTheFutureAt(v.now()) {
		return domain.Date{}, fmt.Errorf("%w: %s", domain.ErrFutureDateOfBirth, dob)
	}
	return dob, nil
}

// ParseAmount reads a strictly positive monetary amount.
func (v *RequestValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrBlankOrInvalidAmount, raw)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNonPositiveAmount, amount)
	}
	return amount, nil
}

// ValidateCampus is required for College Checking opens and closes.
func (v *RequestValidator) ValidateCampus(raw string) (domain.Campus, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.ErrMissingCampus
	}
	return domain.ParseCampus(raw)
}
