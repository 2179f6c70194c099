package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

var fixedNow = func() time.Time { return time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC) }

var testCalendar = AcademicCalendar{StartMonth: 5, Now: fixedNow}

type clubRepoStub struct {
	clubs    map[uuid.UUID]models.ClubRow
	staffs   []models.StudentRow
	members  []models.StudentRow
	contacts []models.ContactRow
	rows     []models.ClubRow
	total    int

	calls       map[string]int
	years       []int
	updates     []models.UpdatableClub
	newContacts []models.CreatableContact
	err         error
}

func newClubRepoStub(rows ...models.ClubRow) *clubRepoStub {
	s := &clubRepoStub{clubs: map[uuid.UUID]models.ClubRow{}, calls: map[string]int{}}
	for _, row := range rows {
		s.clubs[row.ID] = row
	}
	return s
}

func (s *clubRepoStub) FindByID(_ context.Context, id uuid.UUID) (*models.ClubRow, error) {
	s.calls["find"]++
	row, ok := s.clubs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (s *clubRepoStub) MemberRows(_ context.Context, _ uuid.UUID, year int) ([]models.StudentRow, error) {
	s.calls["members"]++
	s.years = append(s.years, year)
	return s.members, s.err
}

func (s *clubRepoStub) StaffRows(_ context.Context, _ uuid.UUID, year int) ([]models.StudentRow, error) {
	s.calls["staffs"]++
	s.years = append(s.years, year)
	return s.staffs, s.err
}

func (s *clubRepoStub) ContactRows(_ context.Context, _ uuid.UUID) ([]models.ContactRow, error) {
	s.calls["contacts"]++
	return s.contacts, s.err
}

func (s *clubRepoStub) Query(_ context.Context, _ models.ListQuery[models.QueryableClub]) ([]models.ClubRow, int, error) {
	s.calls["query"]++
	return s.rows, s.total, s.err
}

func (s *clubRepoStub) UpdateByID(_ context.Context, id uuid.UUID, u models.UpdatableClub) error {
	s.calls["update"]++
	s.updates = append(s.updates, u)
	if _, ok := s.clubs[id]; !ok {
		return sql.ErrNoRows
	}
	return s.err
}

func (s *clubRepoStub) CreateContact(_ context.Context, _ uuid.UUID, c models.CreatableContact) (int64, error) {
	s.calls["create_contact"]++
	s.newContacts = append(s.newContacts, c)
	return int64(len(s.newContacts)), s.err
}

func (s *clubRepoStub) queries() int {
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

type studentRepoStub struct {
	rows  map[int64]models.StudentRow
	calls int
}

func newStudentRepoStub(rows ...models.StudentRow) *studentRepoStub {
	s := &studentRepoStub{rows: map[int64]models.StudentRow{}}
	for _, row := range rows {
		s.rows[row.ID] = row
	}
	return s
}

func (s *studentRepoStub) FindByID(_ context.Context, id int64) (*models.StudentRow, error) {
	s.calls++
	row, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

// FindByIDs returns rows in descending id order to exercise reordering.
func (s *studentRepoStub) FindByIDs(_ context.Context, ids []int64) ([]models.StudentRow, error) {
	s.calls++
	out := []models.StudentRow{}
	for i := len(ids) - 1; i >= 0; i-- {
		if row, ok := s.rows[ids[i]]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *studentRepoStub) Query(_ context.Context, _ models.ListQuery[models.QueryableStudent]) ([]models.StudentRow, int, error) {
	s.calls++
	out := []models.StudentRow{}
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, len(out), nil
}

type contactRepoStub struct {
	rows  map[int64]models.ContactRow
	calls int
}

func newContactRepoStub(rows ...models.ContactRow) *contactRepoStub {
	s := &contactRepoStub{rows: map[int64]models.ContactRow{}}
	for _, row := range rows {
		s.rows[row.ID] = row
	}
	return s
}

func (s *contactRepoStub) FindByID(_ context.Context, id int64) (*models.ContactRow, error) {
	s.calls++
	row, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (s *contactRepoStub) FindByIDs(_ context.Context, ids []int64) ([]models.ContactRow, error) {
	s.calls++
	out := []models.ContactRow{}
	for i := len(ids) - 1; i >= 0; i-- {
		if row, ok := s.rows[ids[i]]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *contactRepoStub) Query(_ context.Context, _ models.ListQuery[models.QueryableContact]) ([]models.ContactRow, int, error) {
	s.calls++
	out := []models.ContactRow{}
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, len(out), nil
}

type classroomRepoStub struct {
	rows      map[int64]models.ClassroomRow
	byStudent map[int64]int64
	calls     int
	years     []int
}

func newClassroomRepoStub(rows ...models.ClassroomRow) *classroomRepoStub {
	s := &classroomRepoStub{rows: map[int64]models.ClassroomRow{}, byStudent: map[int64]int64{}}
	for _, row := range rows {
		s.rows[row.ID] = row
		for _, studentID := range row.Students {
			s.byStudent[studentID] = row.ID
		}
	}
	return s
}

func (s *classroomRepoStub) FindByID(_ context.Context, id int64) (*models.ClassroomRow, error) {
	s.calls++
	row, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (s *classroomRepoStub) FindByIDs(_ context.Context, ids []int64) ([]models.ClassroomRow, error) {
	s.calls++
	out := []models.ClassroomRow{}
	for _, id := range ids {
		if row, ok := s.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *classroomRepoStub) FindByStudent(_ context.Context, studentID int64, year int) (*models.ClassroomRow, error) {
	s.calls++
	s.years = append(s.years, year)
	id, ok := s.byStudent[studentID]
	if !ok {
		return nil, nil
	}
	row := s.rows[id]
	return &row, nil
}

func (s *classroomRepoStub) Query(_ context.Context, _ models.ListQuery[models.QueryableClassroom]) ([]models.ClassroomRow, int, error) {
	s.calls++
	out := []models.ClassroomRow{}
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, len(out), nil
}

type userRepoStub struct {
	byID      map[uuid.UUID]models.User
	byStudent map[int64]models.User
	calls     int
	err       error
}

func newUserRepoStub(users ...models.User) *userRepoStub {
	s := &userRepoStub{byID: map[uuid.UUID]models.User{}, byStudent: map[int64]models.User{}}
	for _, u := range users {
		s.byID[u.ID] = u
		if u.Student != nil {
			s.byStudent[*u.Student] = u
		}
	}
	return s
}

func (s *userRepoStub) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (s *userRepoStub) FindByStudentID(_ context.Context, studentID int64) (*models.User, error) {
	s.calls++
	u, ok := s.byStudent[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

type authorizerStub struct {
	err   error
	calls int
}

func (s *authorizerStub) EnsureClubStaff(_ context.Context, _ *models.User, _ uuid.UUID) error {
	s.calls++
	return s.err
}

type recorderStub struct {
	projections map[string]int
	locks       []string
}

func (s *recorderStub) RecordProjection(entity string, level models.FetchLevel) {
	if s.projections == nil {
		s.projections = map[string]int{}
	}
	s.projections[entity+"/"+string(level)]++
}

func (s *recorderStub) RecordJoinLock(outcome string) {
	s.locks = append(s.locks, outcome)
}

type fixture struct {
	clubs      *clubRepoStub
	students   *studentRepoStub
	contacts   *contactRepoStub
	classrooms *classroomRepoStub
	users      *userRepoStub
	recorder   *recorderStub
	views      *ViewBuilder
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func houseFelis() *models.ActivityDayHouse {
	h := models.ActivityDayHouse("felis")
	return &h
}

var (
	clubID = uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962")
	userID = uuid.MustParse("9a1f0c44-5a6f-4fb5-9f37-1c3c2f1f2b10")
)

func studentRow(id int64, contacts ...int64) models.StudentRow {
	return models.StudentRow{
		ID:          id,
		StdID:       "2650" + strconv.FormatInt(id, 10),
		PrefixTH:    "นาย",
		FirstNameTH: "นักเรียน",
		LastNameTH:  "ทดสอบ",
		NicknameTH:  strPtr("ต้น"),
		Birthdate:   time.Date(2009, 3, 14, 0, 0, 0, 0, time.UTC),
		Contacts:    contacts,
	}
}

func newFixture() *fixture {
	f := &fixture{
		clubs: newClubRepoStub(models.ClubRow{
			ID:          clubID,
			NameTH:      "ชมรมหุ่นยนต์",
			NameEN:      strPtr("Robotics"),
			MainRoom:    strPtr("421"),
			House:       houseFelis(),
			MapLocation: int64Ptr(3),
		}),
		students: newStudentRepoStub(studentRow(1, 10), studentRow(2), studentRow(3)),
		contacts: newContactRepoStub(
			models.ContactRow{ID: 10, NameTH: strPtr("อีเมล"), Value: "a@example.com", Type: models.ContactEmail},
			models.ContactRow{ID: 11, Value: "0812345678", Type: models.ContactPhone},
		),
		classrooms: newClassroomRepoStub(models.ClassroomRow{
			ID: 7, Number: 501, Year: 2026, Students: []int64{1, 2}, NoList: []int64{4, 5}, Contacts: []int64{11},
		}),
		users:    newUserRepoStub(models.User{ID: userID, Role: models.RoleStudent, Student: int64Ptr(1)}),
		recorder: &recorderStub{},
	}
	f.clubs.staffs = []models.StudentRow{studentRow(1, 10)}
	f.clubs.members = []models.StudentRow{studentRow(2), studentRow(3)}
	f.clubs.contacts = []models.ContactRow{f.contacts.rows[10]}
	f.views = NewViewBuilder(ViewSources{
		Clubs:      f.clubs,
		Students:   f.students,
		Contacts:   f.contacts,
		Classrooms: f.classrooms,
		Users:      f.users,
	}, testCalendar, f.recorder)
	return f
}

func (f *fixture) storageCalls() int {
	return f.clubs.queries() + f.students.calls + f.contacts.calls + f.classrooms.calls + f.users.calls
}

func plan(level, descendant models.FetchLevel, budget int) models.FetchPlan {
	return models.NewFetchPlan(&level, &descendant, budget)
}
