package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr error
	}{
		{name: "padded", input: "03/15/2024", want: NewDate(2024, 3, 15)},
		{name: "unpadded", input: "3/5/1999", want: NewDate(1999, 3, 5)},
		{name: "invalid day still parses", input: "02/30/2023", want: NewDate(2023, 2, 30)},
		{name: "two tokens", input: "03/2024", wantErr: ErrInvalidDateFormat},
		{name: "four tokens", input: "1/2/3/4", wantErr: ErrInvalidDateFormat},
		{name: "letters", input: "aa/bb/cccc", wantErr: ErrInvalidDateFormat},
		{name: "empty", input: "", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_IsValid(t *testing.T) {
	tests := []struct {
		date Date
		want bool
	}{
		{NewDate(2024, 1, 31), true},
		{NewDate(2024, 4, 30), true},
		{NewDate(2024, 4, 31), false},
		{NewDate(2024, 2, 29), true},
		{NewDate(2023, 2, 29), false},
		{NewDate(2023, 2, 28), true},
		{NewDate(1900, 2, 29), false},
		{NewDate(2000, 2, 29), true},
		{NewDate(2024, 0, 10), false},
		{NewDate(2024, 13, 10), false},
		{NewDate(2024, 5, 0), false},
		{NewDate(2024, 5, 32), false},
	}

	for _, tt := range tests {
		if got := tt.date.IsValid(); got != tt.want {
			t.Errorf("%s IsValid() = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(1990, 1, 1)
	b := NewDate(1990, 1, 2)
	c := NewDate(1990, 2, 1)
	d := NewDate(1991, 1, 1)

	ordered := []Date{a, b, c, d}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Compare(ordered[j]); got != want {
				t.Errorf("%s.Compare(%s) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestDate_String(t *testing.T) {
	d, err := ParseDate("03/15/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "3/15/2024" {
		t.Errorf("expected 3/15/2024, got %s", d.String())
	}
}

func TestDate_IsInTheFutureAt(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	if !NewDate(2024, 6, 11).IsInTheFutureAt(now) {
		t.Error("expected tomorrow to be in the future")
	}
	if NewDate(2024, 6, 10).IsInTheFutureAt(now) {
		t.Error("expected today not to be in the future")
	}
	if !NewDate(2024, 6, 9).IsInThePastAt(now) {
		t.Error("expected yesterday to be in the past")
	}
	if NewDate(2024, 6, 10).IsInThePastAt(now) {
		t.Error("expected today not to be in the past")
	}
}

func TestDate_IsInTheFuture(t *testing.T) {
	today := Today()
	next := NewDate(today.Year+1, today.Month, 1)
	last := NewDate(today.Year-1, today.Month, 1)

	if today.IsInTheFuture() || today.IsInThePast() {
		t.Errorf("expected today %s to be neither future nor past", today)
	}
	if !next.IsInTheFuture() {
		t.Errorf("expected %s to be in the future", next)
	}
	if !last.IsInThePast() {
		t.Errorf("expected %s to be in the past", last)
	}
}
