package domain

import "testing"

func TestProfile_Equal(t *testing.T) {
	dob := NewDate(1990, 1, 1)
	p := NewProfile("Jane", "Doe", dob)

	tests := []struct {
		name  string
		other Profile
		want  bool
	}{
		{name: "identical", other: NewProfile("Jane", "Doe", dob), want: true},
		{name: "case insensitive", other: NewProfile("JANE", "doe", dob), want: true},
		{name: "different first name", other: NewProfile("John", "Doe", dob), want: false},
		{name: "different last name", other: NewProfile("Jane", "Roe", dob), want: false},
		{name: "different dob", other: NewProfile("Jane", "Doe", NewDate(1990, 1, 2)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfile_String(t *testing.T) {
	p := NewProfile("Jane", "Doe", NewDate(1990, 1, 1))
	if p.String() != "Jane Doe 1/1/1990" {
		t.Errorf("unexpected profile string %q", p.String())
	}
}
