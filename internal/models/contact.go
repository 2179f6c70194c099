package models

import "time"

// ContactRow mirrors the contacts table.
type ContactRow struct {
	ID              int64       `db:"id"`
	CreatedAt       *time.Time  `db:"created_at"`
	NameTH          *string     `db:"name_th"`
	NameEN          *string     `db:"name_en"`
	Value           string      `db:"value"`
	Type            ContactType `db:"type"`
	IncludeStudents *bool       `db:"include_students"`
	IncludeTeachers *bool       `db:"include_teachers"`
	IncludeParents  *bool       `db:"include_parents"`
}

// QueryableContact lists the filterable contact fields.
type QueryableContact struct {
	ID    *int64       `json:"id"`
	Name  *string      `json:"name"`
	Value *string      `json:"value"`
	Type  *ContactType `json:"type"`
}

// CreatableContact is the payload for attaching a new contact to a club.
type CreatableContact struct {
	NameTH          *string     `json:"name_th"`
	NameEN          *string     `json:"name_en"`
	Value           string      `json:"value" validate:"required"`
	Type            ContactType `json:"type" validate:"required"`
	IncludeStudents *bool       `json:"include_students"`
	IncludeTeachers *bool       `json:"include_teachers"`
	IncludeParents  *bool       `json:"include_parents"`
}
