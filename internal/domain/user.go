package domain

import "time"

// User is the domain model for people who report and work on tickets.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Avatar       *string
	PasswordHash string
	CreatedAt    time.Time
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
