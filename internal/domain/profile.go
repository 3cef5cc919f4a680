package domain

import "strings"

// Profile identifies an account holder.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       Date   `json:"dob"`
}

func NewProfile(firstName, lastName string, dob Date) Profile {
	return Profile{FirstName: firstName, LastName: lastName, DOB: dob}
}

// Equal reports whether both profiles name the same person: names compared
// case-insensitively, dates of birth exactly.
func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.FirstName, other.FirstName) &&
		strings.EqualFold(p.LastName, other.LastName) &&
		p.DOB.Compare(other.DOB) == 0
}

func (p Profile) String() string {
	return p.FirstName + " " + p.LastName + " " + p.DOB.String()
}
