package validator

import (
	"errors"
	"testing"
	"time"

	"bank_teller/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
}

func TestRequestValidator_ValidateName(t *testing.T) {
	v := NewRequestValidator(fixedNow)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "Jane", wantErr: nil},
		{name: "blank", input: "   ", wantErr: domain.ErrBlankName},
		{name: "empty", input: "", wantErr: domain.ErrBlankName},
		{name: "leading digit", input: "1Jane", wantErr: domain.ErrInvalidName},
		{name: "trailing digit", input: "Jane2", wantErr: domain.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateName("First Name", tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidator_ValidateDateOfBirth(t *testing.T) {
	v := NewRequestValidator(fixedNow)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "01/01/1990", wantErr: nil},
		{name: "today", input: "06/10/2024", wantErr: nil},
		{name: "tomorrow", input: "06/11/2024", wantErr: domain.ErrFutureDateOfBirth},
		{name: "not a calendar date", input: "02/30/1990", wantErr: domain.ErrInvalidDate},
		{name: "blank", input: "", wantErr: domain.ErrInvalidDateFormat},
		{name: "garbage", input: "yesterday", wantErr: domain.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateDateOfBirth(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDateOfBirth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidator_ParseAmount(t *testing.T) {
	v := NewRequestValidator(fixedNow)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "cents", input: "0.01", want: "0.01"},
		{name: "padded", input: " 25.50 ", want: "25.5"},
		{name: "zero", input: "0", wantErr: domain.ErrNonPositiveAmount},
		{name: "negative", input: "-5", wantErr: domain.ErrNonPositiveAmount},
		{name: "blank", input: "", wantErr: domain.ErrBlankOrInvalidAmount},
		{name: "letters", input: "abc", wantErr: domain.ErrBlankOrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ParseAmount(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequestValidator_ValidateCampus(t *testing.T) {
	v := NewRequestValidator(fixedNow)

	if _, err := v.ValidateCampus(""); !errors.Is(err, domain.ErrMissingCampus) {
		t.Errorf("expected ErrMissingCampus, got %v", err)
	}
	campus, err := v.ValidateCampus("camden")
	if err != nil || campus != domain.CampusCamden {
		t.Errorf("expected CAMDEN, got %s, %v", campus, err)
	}
}
