package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

type clubReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ClubRow, error)
	MemberRows(ctx context.Context, clubID uuid.UUID, year int) ([]models.StudentRow, error)
	StaffRows(ctx context.Context, clubID uuid.UUID, year int) ([]models.StudentRow, error)
	ContactRows(ctx context.Context, clubID uuid.UUID) ([]models.ContactRow, error)
}

type studentReader interface {
	FindByID(ctx context.Context, id int64) (*models.StudentRow, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.StudentRow, error)
}

type contactReader interface {
	FindByID(ctx context.Context, id int64) (*models.ContactRow, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.ContactRow, error)
}

type classroomReader interface {
	FindByID(ctx context.Context, id int64) (*models.ClassroomRow, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.ClassroomRow, error)
	FindByStudent(ctx context.Context, studentID int64, year int) (*models.ClassroomRow, error)
}

type studentUserReader interface {
	FindByStudentID(ctx context.Context, studentID int64) (*models.User, error)
}

// ProjectionRecorder counts constructed views per entity and fetch level.
type ProjectionRecorder interface {
	RecordProjection(entity string, level models.FetchLevel)
}

// AcademicCalendar resolves the academic year used to scope memberships.
type AcademicCalendar struct {
	StartMonth int
	Now        func() time.Time
}

// CurrentYear returns the academic year containing the current time.
func (c AcademicCalendar) CurrentYear() int {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return models.AcademicYear(now(), c.StartMonth)
}

// ViewSources groups the readers needed to expand relations.
type ViewSources struct {
	Clubs      clubReader
	Students   studentReader
	Contacts   contactReader
	Classrooms classroomReader
	Users      studentUserReader
}

// ViewBuilder turns table rows into fetch-level views. IdOnly and Compact views
// never touch storage; Default views load one collection per relation and
// project it with the plan's nested level.
type ViewBuilder struct {
	src      ViewSources
	calendar AcademicCalendar
	recorder ProjectionRecorder
}

// NewViewBuilder constructs a ViewBuilder. recorder may be nil.
func NewViewBuilder(src ViewSources, calendar AcademicCalendar, recorder ProjectionRecorder) *ViewBuilder {
	return &ViewBuilder{src: src, calendar: calendar, recorder: recorder}
}

func (b *ViewBuilder) record(entity string, level models.FetchLevel) {
	if b.recorder != nil {
		b.recorder.RecordProjection(entity, level)
	}
}

func unknownLevel(entity string, level models.FetchLevel) error {
	return appErrors.Internal(fmt.Errorf("unknown fetch level %q", level), fmt.Sprintf("cannot project %s", entity))
}

// orderByIDs returns rows in the order of ids, omitting ids without a row.
func orderByIDs[K comparable, R any](ids []K, rows []R, key func(R) K) []R {
	index := make(map[K]R, len(rows))
	for _, row := range rows {
		index[key(row)] = row
	}
	out := make([]R, 0, len(ids))
	for _, id := range ids {
		if row, ok := index[id]; ok {
			out = append(out, row)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Club projects a club row.
func (b *ViewBuilder) Club(ctx context.Context, row models.ClubRow, plan models.FetchPlan) (dto.Club, error) {
	b.record("club", plan.Level)
	switch plan.Level {
	case models.FetchLevelIDOnly:
		return dto.IDOnlyClub{ID: row.ID}, nil
	case models.FetchLevelCompact:
		return compactClub(row), nil
	case models.FetchLevelDefault:
		year := b.calendar.CurrentYear()
		nested := plan.Nested()

		staffRows, err := b.src.Clubs.StaffRows(ctx, row.ID, year)
		if err != nil {
			return nil, err
		}
		staffs, err := b.studentsFromRows(ctx, staffRows, nested)
		if err != nil {
			return nil, err
		}

		memberRows, err := b.src.Clubs.MemberRows(ctx, row.ID, year)
		if err != nil {
			return nil, err
		}
		members, err := b.studentsFromRows(ctx, memberRows, nested)
		if err != nil {
			return nil, err
		}

		contactRows, err := b.src.Clubs.ContactRows(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		contacts, err := b.contactsFromRows(contactRows, nested)
		if err != nil {
			return nil, err
		}

		c := compactClub(row)
		return dto.DefaultClub{
			ID:              c.ID,
			Name:            c.Name,
			Description:     c.Description,
			LogoURL:         c.LogoURL,
			House:           c.House,
			MapLocation:     c.MapLocation,
			BackgroundColor: row.BackgroundColor,
			AccentColor:     row.AccentColor,
			MainRoom:        row.MainRoom,
			Staffs:          staffs,
			Members:         members,
			Contacts:        contacts,
		}, nil
	default:
		return nil, unknownLevel("club", plan.Level)
	}
}

func compactClub(row models.ClubRow) dto.CompactClub {
	return dto.CompactClub{
		ID:          row.ID,
		Name:        models.NewMultiLangString(row.NameTH, row.NameEN),
		Description: models.OptionalMultiLangString(row.DescriptionTH, row.DescriptionEN),
		LogoURL:     row.LogoURL,
		House:       row.House,
		MapLocation: row.MapLocation,
	}
}

// ClubByID loads and projects a club. A missing club yields sql.ErrNoRows.
func (b *ViewBuilder) ClubByID(ctx context.Context, id uuid.UUID, plan models.FetchPlan) (dto.Club, error) {
	row, err := b.src.Clubs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.Club(ctx, *row, plan)
}

// Student projects a student row.
func (b *ViewBuilder) Student(ctx context.Context, row models.StudentRow, plan models.FetchPlan) (dto.Student, error) {
	b.record("student", plan.Level)
	switch plan.Level {
	case models.FetchLevelIDOnly:
		return dto.IDOnlyStudent{ID: row.ID}, nil
	case models.FetchLevelCompact:
		return compactStudent(row), nil
	case models.FetchLevelDefault:
		nested := plan.Nested()

		contacts, err := b.ContactsFromIDs(ctx, row.Contacts, nested)
		if err != nil {
			return nil, err
		}

		var (
			class       dto.Classroom
			classNumber *int64
		)
		classroom, err := b.src.Classrooms.FindByStudent(ctx, row.ID, b.calendar.CurrentYear())
		if err != nil {
			return nil, err
		}
		if classroom != nil {
			if class, err = b.Classroom(ctx, *classroom, nested); err != nil {
				return nil, err
			}
			classNumber = classroom.ClassNumber(row.ID)
		}

		user, err := b.src.Users.FindByStudentID(ctx, row.ID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
			user = nil
		}

		c := compactStudent(row)
		return dto.DefaultStudent{
			ID:          c.ID,
			Prefix:      c.Prefix,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			MiddleName:  models.OptionalMultiLangString(row.MiddleNameTH, row.MiddleNameEN),
			Nickname:    models.OptionalMultiLangString(row.NicknameTH, row.NicknameEN),
			ProfileURL:  c.ProfileURL,
			Birthdate:   c.Birthdate,
			StudentID:   c.StudentID,
			Contacts:    contacts,
			Class:       class,
			ClassNumber: classNumber,
			User:        user,
		}, nil
	default:
		return nil, unknownLevel("student", plan.Level)
	}
}

func compactStudent(row models.StudentRow) dto.CompactStudent {
	return dto.CompactStudent{
		ID:         row.ID,
		Prefix:     models.NewMultiLangString(row.PrefixTH, row.PrefixEN),
		FirstName:  models.NewMultiLangString(row.FirstNameTH, row.FirstNameEN),
		LastName:   models.NewMultiLangString(row.LastNameTH, row.LastNameEN),
		ProfileURL: row.Profile,
		Birthdate:  dto.Date(row.Birthdate),
		StudentID:  row.StdID,
	}
}

// StudentByID loads and projects a student.
func (b *ViewBuilder) StudentByID(ctx context.Context, id int64, plan models.FetchPlan) (dto.Student, error) {
	row, err := b.src.Students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.Student(ctx, *row, plan)
}

// StudentsFromIDs projects the students in input order, omitting unknown ids.
func (b *ViewBuilder) StudentsFromIDs(ctx context.Context, ids []int64, plan models.FetchPlan) ([]dto.Student, error) {
	rows, err := b.src.Students.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return b.studentsFromRows(ctx, orderByIDs(ids, rows, func(r models.StudentRow) int64 { return r.ID }), plan)
}

func (b *ViewBuilder) studentsFromRows(ctx context.Context, rows []models.StudentRow, plan models.FetchPlan) ([]dto.Student, error) {
	out := make([]dto.Student, 0, len(rows))
	for _, row := range rows {
		v, err := b.Student(ctx, row, plan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Contact projects a contact row. Contacts have no relations.
func (b *ViewBuilder) Contact(row models.ContactRow, plan models.FetchPlan) (dto.Contact, error) {
	b.record("contact", plan.Level)
	switch plan.Level {
	case models.FetchLevelIDOnly:
		return dto.IDOnlyContact{ID: row.ID}, nil
	case models.FetchLevelCompact:
		return compactContact(row), nil
	case models.FetchLevelDefault:
		c := compactContact(row)
		return dto.DefaultContact{
			ID:              c.ID,
			Name:            c.Name,
			Value:           c.Value,
			Type:            c.Type,
			IncludeStudents: row.IncludeStudents,
			IncludeTeachers: row.IncludeTeachers,
			IncludeParents:  row.IncludeParents,
		}, nil
	default:
		return nil, unknownLevel("contact", plan.Level)
	}
}

func compactContact(row models.ContactRow) dto.CompactContact {
	return dto.CompactContact{
		ID:    row.ID,
		Name:  models.NewMultiLangString(deref(row.NameTH), row.NameEN),
		Value: row.Value,
		Type:  row.Type,
	}
}

// ContactByID loads and projects a contact.
func (b *ViewBuilder) ContactByID(ctx context.Context, id int64, plan models.FetchPlan) (dto.Contact, error) {
	row, err := b.src.Contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.Contact(*row, plan)
}

// ContactsFromIDs projects the contacts in input order, omitting unknown ids.
func (b *ViewBuilder) ContactsFromIDs(ctx context.Context, ids []int64, plan models.FetchPlan) ([]dto.Contact, error) {
	rows, err := b.src.Contacts.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return b.contactsFromRows(orderByIDs(ids, rows, func(r models.ContactRow) int64 { return r.ID }), plan)
}

func (b *ViewBuilder) contactsFromRows(rows []models.ContactRow, plan models.FetchPlan) ([]dto.Contact, error) {
	out := make([]dto.Contact, 0, len(rows))
	for _, row := range rows {
		v, err := b.Contact(row, plan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Classroom projects a classroom row.
func (b *ViewBuilder) Classroom(ctx context.Context, row models.ClassroomRow, plan models.FetchPlan) (dto.Classroom, error) {
	b.record("classroom", plan.Level)
	switch plan.Level {
	case models.FetchLevelIDOnly:
		return dto.IDOnlyClassroom{ID: row.ID}, nil
	case models.FetchLevelCompact:
		return dto.CompactClassroom{ID: row.ID, Number: row.Number, Year: row.Year}, nil
	case models.FetchLevelDefault:
		nested := plan.Nested()
		students, err := b.StudentsFromIDs(ctx, row.Students, nested)
		if err != nil {
			return nil, err
		}
		contacts, err := b.ContactsFromIDs(ctx, row.Contacts, nested)
		if err != nil {
			return nil, err
		}
		return dto.DefaultClassroom{
			ID:       row.ID,
			Number:   row.Number,
			Year:     row.Year,
			Students: students,
			Contacts: contacts,
		}, nil
	default:
		return nil, unknownLevel("classroom", plan.Level)
	}
}

// ClassroomByID loads and projects a classroom.
func (b *ViewBuilder) ClassroomByID(ctx context.Context, id int64, plan models.FetchPlan) (dto.Classroom, error) {
	row, err := b.src.Classrooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.Classroom(ctx, *row, plan)
}

// ClubRequest projects a join request row. A club or student that no longer
// exists is rendered as null in the Default view.
func (b *ViewBuilder) ClubRequest(ctx context.Context, row models.ClubRequestRow, plan models.FetchPlan) (dto.ClubRequest, error) {
	b.record("club_request", plan.Level)
	switch plan.Level {
	case models.FetchLevelIDOnly:
		return dto.IDOnlyClubRequest{ID: row.ID}, nil
	case models.FetchLevelCompact:
		return dto.CompactClubRequest{
			ID:               row.ID,
			ClubID:           row.ClubID,
			StudentID:        row.StudentID,
			Year:             row.Year,
			MembershipStatus: row.MembershipStatus,
			CreatedAt:        row.CreatedAt,
		}, nil
	case models.FetchLevelDefault:
		nested := plan.Nested()

		club, err := b.ClubByID(ctx, row.ClubID, nested)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		student, err := b.StudentByID(ctx, row.StudentID, nested)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return dto.DefaultClubRequest{
			ID:               row.ID,
			Club:             club,
			Student:          student,
			Year:             row.Year,
			MembershipStatus: row.MembershipStatus,
			CreatedAt:        row.CreatedAt,
		}, nil
	default:
		return nil, unknownLevel("club_request", plan.Level)
	}
}

// storageError maps repository failures onto API errors. sql.ErrNoRows
// becomes a 404 naming the entity; anything untyped is logged and hidden
// behind a 500.
func storageError(logger *zap.Logger, err error, entity, operation string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	logger.Error("storage failure", zap.String("entity", entity), zap.String("operation", operation), zap.Error(err))
	return appErrors.Internal(err, fmt.Sprintf("failed to %s %s", operation, entity))
}
