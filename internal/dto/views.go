// Package dto holds the serialisable fetch-level views returned by the API.
//
// Every entity has three views (IDOnly, Compact, Default) behind a sealed
// interface. A view always marshals as its own fields; there is no wrapper
// or variant tag on the wire.
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

// Club is implemented by IDOnlyClub, CompactClub and DefaultClub.
type Club interface{ isClub() }

// Student is implemented by IDOnlyStudent, CompactStudent and DefaultStudent.
type Student interface{ isStudent() }

// Contact is implemented by IDOnlyContact, CompactContact and DefaultContact.
type Contact interface{ isContact() }

// Classroom is implemented by IDOnlyClassroom, CompactClassroom and DefaultClassroom.
type Classroom interface{ isClassroom() }

// ClubRequest is implemented by IDOnlyClubRequest, CompactClubRequest and DefaultClubRequest.
type ClubRequest interface{ isClubRequest() }

// Date marshals as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format("2006-01-02"))
}

type IDOnlyClub struct {
	ID uuid.UUID `json:"id"`
}

type CompactClub struct {
	ID          uuid.UUID                `json:"id"`
	Name        models.MultiLangString   `json:"name"`
	Description *models.MultiLangString  `json:"description"`
	LogoURL     *string                  `json:"logo_url"`
	House       *models.ActivityDayHouse `json:"house"`
	MapLocation *int64                   `json:"map_location"`
}

type DefaultClub struct {
	ID              uuid.UUID                `json:"id"`
	Name            models.MultiLangString   `json:"name"`
	Description     *models.MultiLangString  `json:"description"`
	LogoURL         *string                  `json:"logo_url"`
	House           *models.ActivityDayHouse `json:"house"`
	MapLocation     *int64                   `json:"map_location"`
	BackgroundColor *string                  `json:"background_color"`
	AccentColor     *string                  `json:"accent_color"`
	MainRoom        *string                  `json:"main_room"`
	Staffs          []Student                `json:"staffs"`
	Members         []Student                `json:"members"`
	Contacts        []Contact                `json:"contacts"`
}

func (IDOnlyClub) isClub()  {}
func (CompactClub) isClub() {}
func (DefaultClub) isClub() {}

type IDOnlyStudent struct {
	ID int64 `json:"id"`
}

type CompactStudent struct {
	ID         int64                  `json:"id"`
	Prefix     models.MultiLangString `json:"prefix"`
	FirstName  models.MultiLangString `json:"first_name"`
	LastName   models.MultiLangString `json:"last_name"`
	ProfileURL *string                `json:"profile_url"`
	Birthdate  Date                   `json:"birthdate"`
	StudentID  string                 `json:"student_id"`
}

type DefaultStudent struct {
	ID          int64                   `json:"id"`
	Prefix      models.MultiLangString  `json:"prefix"`
	FirstName   models.MultiLangString  `json:"first_name"`
	LastName    models.MultiLangString  `json:"last_name"`
	MiddleName  *models.MultiLangString `json:"middle_name"`
	Nickname    *models.MultiLangString `json:"nickname"`
	ProfileURL  *string                 `json:"profile_url"`
	Birthdate   Date                    `json:"birthdate"`
	StudentID   string                  `json:"student_id"`
	Contacts    []Contact               `json:"contacts"`
	Class       Classroom               `json:"class"`
	ClassNumber *int64                  `json:"class_number"`
	User        *models.User            `json:"user"`
}

func (IDOnlyStudent) isStudent()  {}
func (CompactStudent) isStudent() {}
func (DefaultStudent) isStudent() {}

type IDOnlyContact struct {
	ID int64 `json:"id"`
}

type CompactContact struct {
	ID    int64                  `json:"id"`
	Name  models.MultiLangString `json:"name"`
	Value string                 `json:"value"`
	Type  models.ContactType     `json:"type"`
}

type DefaultContact struct {
	ID              int64                  `json:"id"`
	Name            models.MultiLangString `json:"name"`
	Value           string                 `json:"value"`
	Type            models.ContactType     `json:"type"`
	IncludeStudents *bool                  `json:"include_students"`
	IncludeTeachers *bool                  `json:"include_teachers"`
	IncludeParents  *bool                  `json:"include_parents"`
}

func (IDOnlyContact) isContact()  {}
func (CompactContact) isContact() {}
func (DefaultContact) isContact() {}

type IDOnlyClassroom struct {
	ID int64 `json:"id"`
}

type CompactClassroom struct {
	ID     int64 `json:"id"`
	Number int64 `json:"number"`
	Year   int64 `json:"year"`
}

type DefaultClassroom struct {
	ID       int64     `json:"id"`
	Number   int64     `json:"number"`
	Year     int64     `json:"year"`
	Students []Student `json:"students"`
	Contacts []Contact `json:"contacts"`
}

func (IDOnlyClassroom) isClassroom()  {}
func (CompactClassroom) isClassroom() {}
func (DefaultClassroom) isClassroom() {}

type IDOnlyClubRequest struct {
	ID uuid.UUID `json:"id"`
}

type CompactClubRequest struct {
	ID               uuid.UUID               `json:"id"`
	ClubID           uuid.UUID               `json:"club_id"`
	StudentID        int64                   `json:"student_id"`
	Year             int64                   `json:"year"`
	MembershipStatus models.SubmissionStatus `json:"membership_status"`
	CreatedAt        *time.Time              `json:"created_at"`
}

type DefaultClubRequest struct {
	ID               uuid.UUID               `json:"id"`
	Club             Club                    `json:"club"`
	Student          Student                 `json:"student"`
	Year             int64                   `json:"year"`
	MembershipStatus models.SubmissionStatus `json:"membership_status"`
	CreatedAt        *time.Time              `json:"created_at"`
}

func (IDOnlyClubRequest) isClubRequest()  {}
func (CompactClubRequest) isClubRequest() {}
func (DefaultClubRequest) isClubRequest() {}
