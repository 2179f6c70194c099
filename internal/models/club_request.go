package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrActiveClubRequest is returned when the student already holds a pending
// or approved request for the club in the same academic year.
var ErrActiveClubRequest = errors.New("student already has an active request for this club and year")

// ClubRequestRow is one club_members row: a join request or a membership.
type ClubRequestRow struct {
	ID               uuid.UUID        `db:"id"`
	ClubID           uuid.UUID        `db:"club_id"`
	StudentID        int64            `db:"student_id"`
	Year             int64            `db:"year"`
	MembershipStatus SubmissionStatus `db:"membership_status"`
	CreatedAt        *time.Time       `db:"created_at"`
}

// QueryableClubRequest lists the filterable join-request fields.
type QueryableClubRequest struct {
	ID               *uuid.UUID        `json:"id"`
	ClubID           *uuid.UUID        `json:"club_id"`
	StudentID        *int64            `json:"student_id"`
	Year             *int64            `json:"year"`
	MembershipStatus *SubmissionStatus `json:"membership_status"`
}

// CreatableClubRequest is inserted by the join flow.
type CreatableClubRequest struct {
	ClubID           uuid.UUID
	StudentID        int64
	Year             int64
	MembershipStatus SubmissionStatus
}

// UpdatableClubRequest is the review payload. Only the status can change.
type UpdatableClubRequest struct {
	MembershipStatus *SubmissionStatus `json:"membership_status" validate:"required"`
}
