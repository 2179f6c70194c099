package models

import "github.com/google/uuid"

// User is an account row; Student or Teacher points at the person it belongs to.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     *string   `db:"email" json:"email"`
	Role      UserRole  `db:"role" json:"role"`
	Student   *int64    `db:"student" json:"student,omitempty"`
	Teacher   *int64    `db:"teacher" json:"teacher,omitempty"`
	Onboarded bool      `db:"onboarded" json:"onboarded"`
	IsAdmin   bool      `db:"is_admin" json:"is_admin"`
}

// StudentID returns the linked student id for student accounts.
func (u *User) StudentID() (int64, bool) {
	if u == nil || u.Role != RoleStudent || u.Student == nil {
		return 0, false
	}
	return *u.Student, true
}
