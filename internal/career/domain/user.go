package domain

import "time"

type User struct {
	ID              int64
	Name            string
	Email           string // login identifier, globally unique
	PasswordHash    string // argon2 encoded, never logged
	AcademicDetails *AcademicDetails // nil until the user saves their profile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AcademicDetails is the education background a user submits once logged in.
// Fields are free-form strings; blank means "not provided".
type AcademicDetails struct {
	Grade10    string `json:"grade10"`
	Grade12    string `json:"grade12"`
	Graduation string `json:"graduation"`
}
