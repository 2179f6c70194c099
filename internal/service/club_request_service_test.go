package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

type clubRequestRepoStub struct {
	rows    map[uuid.UUID]models.ClubRequestRow
	created  []models.CreatableClubRequest
	updated  []models.UpdatableClubRequest
	attempts int
}

func newClubRequestRepoStub(rows ...models.ClubRequestRow) *clubRequestRepoStub {
	s := &clubRequestRepoStub{rows: map[uuid.UUID]models.ClubRequestRow{}}
	for _, row := range rows {
		s.rows[row.ID] = row
	}
	return s
}

func (s *clubRequestRepoStub) FindByID(_ context.Context, id uuid.UUID) (*models.ClubRequestRow, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (s *clubRequestRepoStub) Query(_ context.Context, _ models.ListQuery[models.QueryableClubRequest]) ([]models.ClubRequestRow, int, error) {
	out := []models.ClubRequestRow{}
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, len(out), nil
}

func (s *clubRequestRepoStub) Create(_ context.Context, c models.CreatableClubRequest) (uuid.UUID, error) {
	s.attempts++
	for _, row := range s.rows {
		active := row.MembershipStatus == models.StatusPending || row.MembershipStatus == models.StatusApproved
		if active && row.ClubID == c.ClubID && row.StudentID == c.StudentID && row.Year == c.Year {
			return uuid.Nil, models.ErrActiveClubRequest
		}
	}
	s.created = append(s.created, c)
	id := uuid.New()
	s.rows[id] = models.ClubRequestRow{ID: id, ClubID: c.ClubID, StudentID: c.StudentID, Year: c.Year, MembershipStatus: c.MembershipStatus}
	return id, nil
}

func (s *clubRequestRepoStub) UpdateByID(_ context.Context, id uuid.UUID, u models.UpdatableClubRequest) error {
	s.updated = append(s.updated, u)
	row := s.rows[id]
	row.MembershipStatus = *u.MembershipStatus
	s.rows[id] = row
	return nil
}

type lockStub struct {
	acquired bool
	err      error
	keys     []string
	released int
}

func (s *lockStub) Acquire(_ context.Context, key string, _ time.Duration) (func(), bool, error) {
	s.keys = append(s.keys, key)
	if s.err != nil || !s.acquired {
		return nil, false, s.err
	}
	return func() { s.released++ }, true, nil
}

type joinFixture struct {
	*fixture
	requests *clubRequestRepoStub
	locks    *lockStub
	authz    *authorizerStub
	svc      *ClubRequestService
}

func newJoinFixture(rows ...models.ClubRequestRow) *joinFixture {
	f := newFixture()
	jf := &joinFixture{
		fixture:  f,
		requests: newClubRequestRepoStub(rows...),
		locks:    &lockStub{acquired: true},
		authz:    &authorizerStub{},
	}
	jf.svc = NewClubRequestService(jf.requests, f.clubs, f.views, jf.authz, jf.locks, f.recorder, testCalendar, ClubRequestConfig{}, nil, nil)
	return jf
}

func compactPlan() models.FetchPlan {
	compact := models.FetchLevelCompact
	return models.NewFetchPlan(&compact, nil, 2)
}

func TestJoinCreatesPendingRequest(t *testing.T) {
	jf := newJoinFixture()
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	view, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	require.NoError(t, err)

	c, ok := view.(dto.CompactClubRequest)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, c.MembershipStatus)
	assert.Equal(t, int64(2026), c.Year)
	assert.Equal(t, []string{"club-join:" + clubID.String() + ":2:2026"}, jf.locks.keys)
	assert.Equal(t, 1, jf.locks.released)
	assert.Equal(t, []string{JoinLockAcquired}, jf.recorder.locks)
}

func TestJoinConflictDoesNotInsert(t *testing.T) {
	jf := newJoinFixture(models.ClubRequestRow{ID: uuid.New(), ClubID: clubID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusApproved})
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	_, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrConflict)
	assert.Empty(t, jf.requests.created)
	assert.Equal(t, 1, jf.locks.released)
}

func TestJoinBusyLockIsConflict(t *testing.T) {
	jf := newJoinFixture()
	jf.locks.acquired = false
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	_, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrConflict)
	assert.Zero(t, jf.requests.attempts)
	assert.Empty(t, jf.requests.created)
	assert.Equal(t, []string{JoinLockBusy}, jf.recorder.locks)
}

func TestJoinProceedsWhenLockBackendFails(t *testing.T) {
	jf := newJoinFixture()
	jf.locks.err = errors.New("redis: connection refused")
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	_, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	require.NoError(t, err)
	assert.Len(t, jf.requests.created, 1)
	assert.Equal(t, []string{JoinLockError}, jf.recorder.locks)
}

func TestJoinWithoutDistributedLockStillRejectsDuplicates(t *testing.T) {
	jf := newJoinFixture()
	jf.locks.err = errors.New("redis: connection refused")
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	_, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	require.NoError(t, err)
	_, err = jf.svc.Join(context.Background(), student, clubID, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrConflict)

	assert.Equal(t, 2, jf.requests.attempts)
	assert.Len(t, jf.requests.created, 1)
}

func TestJoinAllowsNewRequestAfterDecline(t *testing.T) {
	jf := newJoinFixture(models.ClubRequestRow{ID: uuid.New(), ClubID: clubID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusDeclined})
	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}

	_, err := jf.svc.Join(context.Background(), student, clubID, compactPlan())
	require.NoError(t, err)
	assert.Len(t, jf.requests.created, 1)
}

func TestJoinRejectsTeachersAndUnknownClubs(t *testing.T) {
	jf := newJoinFixture()
	teacher := &models.User{ID: uuid.New(), Role: models.RoleTeacher, Teacher: int64Ptr(4)}

	_, err := jf.svc.Join(context.Background(), teacher, clubID, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	student := &models.User{ID: uuid.New(), Role: models.RoleStudent, Student: int64Ptr(2)}
	_, err = jf.svc.Join(context.Background(), student, uuid.New(), compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	assert.Empty(t, jf.requests.created)
	assert.Empty(t, jf.locks.keys)
}

func TestReviewRejectsPendingStatus(t *testing.T) {
	requestID := uuid.New()
	jf := newJoinFixture(models.ClubRequestRow{ID: requestID, ClubID: clubID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusPending})
	pending := models.StatusPending

	_, err := jf.svc.Review(context.Background(), staffUser(), requestID, models.UpdatableClubRequest{MembershipStatus: &pending}, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrBadRequest)

	_, err = jf.svc.Review(context.Background(), staffUser(), requestID, models.UpdatableClubRequest{}, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrBadRequest)
	assert.Empty(t, jf.requests.updated)
}

func TestReviewRequiresStaffBeforeWriting(t *testing.T) {
	requestID := uuid.New()
	jf := newJoinFixture(models.ClubRequestRow{ID: requestID, ClubID: clubID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusPending})
	jf.authz.err = appErrors.ErrForbidden
	approved := models.StatusApproved

	_, err := jf.svc.Review(context.Background(), staffUser(), requestID, models.UpdatableClubRequest{MembershipStatus: &approved}, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.Empty(t, jf.requests.updated)
}

func TestReviewApprovesAndRereads(t *testing.T) {
	requestID := uuid.New()
	jf := newJoinFixture(models.ClubRequestRow{ID: requestID, ClubID: clubID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusPending})
	approved := models.StatusApproved

	view, err := jf.svc.Review(context.Background(), staffUser(), requestID, models.UpdatableClubRequest{MembershipStatus: &approved}, models.NewFetchPlan(nil, nil, 2))
	require.NoError(t, err)

	d, ok := view.(dto.DefaultClubRequest)
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, d.MembershipStatus)
	assert.Equal(t, dto.IDOnlyClub{ID: clubID}, d.Club)
	assert.Equal(t, 1, jf.authz.calls)
}

func TestReviewUnknownRequestIsNotFound(t *testing.T) {
	jf := newJoinFixture()
	declined := models.StatusDeclined

	_, err := jf.svc.Review(context.Background(), staffUser(), uuid.New(), models.UpdatableClubRequest{MembershipStatus: &declined}, compactPlan())
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Zero(t, jf.authz.calls)
}
