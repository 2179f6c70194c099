package models

import (
	"fmt"
	"strings"
)

// ActivityDayHouse is the activity-day group a club belongs to.
type ActivityDayHouse string

const (
	HouseFelis     ActivityDayHouse = "felis"
	HouseCornicula ActivityDayHouse = "cornicula"
	HouseSciurus   ActivityDayHouse = "sciurus"
	HouseCyprinus  ActivityDayHouse = "cyprinus"
)

func (h ActivityDayHouse) Valid() bool {
	switch h {
	case HouseFelis, HouseCornicula, HouseSciurus, HouseCyprinus:
		return true
	}
	return false
}

func (h *ActivityDayHouse) UnmarshalText(text []byte) error {
	v := ActivityDayHouse(text)
	if !v.Valid() {
		return fmt.Errorf("unknown house %q", string(text))
	}
	*h = v
	return nil
}

// SubmissionStatus is the lifecycle state of a join request.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusDeclined SubmissionStatus = "declined"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

func (s *SubmissionStatus) UnmarshalText(text []byte) error {
	v := SubmissionStatus(text)
	if !v.Valid() {
		return fmt.Errorf("unknown membership status %q", string(text))
	}
	*s = v
	return nil
}

// ContactType names the channel of a contact entry.
type ContactType string

const (
	ContactPhone     ContactType = "Phone"
	ContactEmail     ContactType = "Email"
	ContactFacebook  ContactType = "Facebook"
	ContactLine      ContactType = "Line"
	ContactInstagram ContactType = "Instagram"
	ContactWebsite   ContactType = "Website"
	ContactDiscord   ContactType = "Discord"
	ContactOther     ContactType = "Other"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactPhone, ContactEmail, ContactFacebook, ContactLine,
		ContactInstagram, ContactWebsite, ContactDiscord, ContactOther:
		return true
	}
	return false
}

func (t *ContactType) UnmarshalText(text []byte) error {
	v := ContactType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown contact type %q", string(text))
	}
	*t = v
	return nil
}

// UserRole is the role recorded on a user account.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

// Scan accepts both bare and JSON-quoted role strings; the users table stores
// the latter.
func (r *UserRole) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*r = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into UserRole", src)
	}
	*r = UserRole(strings.Trim(strings.TrimSpace(raw), `"`))
	return nil
}
