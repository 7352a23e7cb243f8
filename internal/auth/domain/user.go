package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	Firstname    string
	Middlename   *string
	Surname      string
	PasswordHash string // lowercase hex md5(password + salt)
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName is "firstname [middlename] surname".
func (u User) FullName() string {
	parts := []string{u.Firstname}
	if u.Middlename != nil && *u.Middlename != "" {
		parts = append(parts, *u.Middlename)
	}
	parts = append(parts, u.Surname)
	return strings.Join(parts, " ")
}

// NewUser is the input for creating an account.
type NewUser struct {
	Email      string
	Password   string
	Firstname  string
	Middlename *string
	Surname    string
}
