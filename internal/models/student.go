package models

import (
	"time"

	"github.com/lib/pq"
)

// StudentRow is a student joined with its person record.
type StudentRow struct {
	ID           int64         `db:"id"`
	CreatedAt    *time.Time    `db:"created_at"`
	StdID        string        `db:"std_id"`
	PersonID     int64         `db:"person"`
	PrefixTH     string        `db:"prefix_th"`
	PrefixEN     *string       `db:"prefix_en"`
	FirstNameTH  string        `db:"first_name_th"`
	FirstNameEN  *string       `db:"first_name_en"`
	LastNameTH   string        `db:"last_name_th"`
	LastNameEN   *string       `db:"last_name_en"`
	MiddleNameTH *string       `db:"middle_name_th"`
	MiddleNameEN *string       `db:"middle_name_en"`
	NicknameTH   *string       `db:"nickname_th"`
	NicknameEN   *string       `db:"nickname_en"`
	Birthdate    time.Time     `db:"birthdate"`
	Contacts     pq.Int64Array `db:"contacts"`
	Profile      *string       `db:"profile"`
}

// QueryableStudent lists the filterable student fields.
type QueryableStudent struct {
	ID        *int64  `json:"id"`
	StudentID *string `json:"student_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Nickname  *string `json:"nickname"`
}
