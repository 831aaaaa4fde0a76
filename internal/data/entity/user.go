package entity

import "strings"

type User struct {
	Base
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	PhoneNumber  string `db:"phone_number"`
	RoleID       int64  `db:"role_id"`
	IsActive     bool   `db:"is_active"`
}

// FullName is the display name carried in tokens.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
