package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

func TestClubIDOnlyAndCompactIssueNoQueries(t *testing.T) {
	f := newFixture()
	row := f.clubs.clubs[clubID]

	idOnly, err := f.views.Club(context.Background(), row, plan(models.FetchLevelIDOnly, models.FetchLevelDefault, 2))
	require.NoError(t, err)
	assert.Equal(t, dto.IDOnlyClub{ID: clubID}, idOnly)

	compact, err := f.views.Club(context.Background(), row, plan(models.FetchLevelCompact, models.FetchLevelDefault, 2))
	require.NoError(t, err)
	c, ok := compact.(dto.CompactClub)
	require.True(t, ok)
	assert.Equal(t, "ชมรมหุ่นยนต์", c.Name.TH)
	assert.Nil(t, c.Description)

	assert.Zero(t, f.storageCalls())
}

func TestDefaultClubLoadsOneQueryPerRelation(t *testing.T) {
	f := newFixture()

	club, err := f.views.ClubByID(context.Background(), clubID, plan(models.FetchLevelDefault, models.FetchLevelIDOnly, 2))
	require.NoError(t, err)

	d, ok := club.(dto.DefaultClub)
	require.True(t, ok)
	assert.Equal(t, []dto.Student{dto.IDOnlyStudent{ID: 1}}, d.Staffs)
	assert.Equal(t, []dto.Student{dto.IDOnlyStudent{ID: 2}, dto.IDOnlyStudent{ID: 3}}, d.Members)
	assert.Equal(t, []dto.Contact{dto.IDOnlyContact{ID: 10}}, d.Contacts)

	assert.Equal(t, 1, f.clubs.calls["staffs"])
	assert.Equal(t, 1, f.clubs.calls["members"])
	assert.Equal(t, 1, f.clubs.calls["contacts"])
	assert.Equal(t, []int{2026, 2026}, f.clubs.years)
	assert.Zero(t, f.students.calls+f.contacts.calls+f.classrooms.calls+f.users.calls)
}

func TestDefaultClubWithCompactDescendants(t *testing.T) {
	f := newFixture()

	club, err := f.views.ClubByID(context.Background(), clubID, plan(models.FetchLevelDefault, models.FetchLevelCompact, 2))
	require.NoError(t, err)

	d := club.(dto.DefaultClub)
	require.Len(t, d.Members, 2)
	member, ok := d.Members[0].(dto.CompactStudent)
	require.True(t, ok)
	assert.Equal(t, "26502", member.StudentID)
	assert.Zero(t, f.students.calls+f.classrooms.calls+f.users.calls)
}

func TestNestedDefaultStopsAtGrandchildren(t *testing.T) {
	f := newFixture()

	club, err := f.views.ClubByID(context.Background(), clubID, plan(models.FetchLevelDefault, models.FetchLevelDefault, 2))
	require.NoError(t, err)

	d := club.(dto.DefaultClub)
	staff, ok := d.Staffs[0].(dto.DefaultStudent)
	require.True(t, ok)
	assert.Equal(t, []dto.Contact{dto.IDOnlyContact{ID: 10}}, staff.Contacts)
	assert.Equal(t, dto.IDOnlyClassroom{ID: 7}, staff.Class)
	require.NotNil(t, staff.ClassNumber)
	assert.Equal(t, int64(4), *staff.ClassNumber)
	require.NotNil(t, staff.User)
	assert.Equal(t, userID, staff.User.ID)

	// Student 3 has no classroom and no account.
	other := d.Members[1].(dto.DefaultStudent)
	assert.Nil(t, other.Class)
	assert.Nil(t, other.User)
	assert.NotNil(t, other.Contacts)
	assert.Empty(t, other.Contacts)
}

func TestExhaustedBudgetForcesIDOnly(t *testing.T) {
	f := newFixture()

	club, err := f.views.ClubByID(context.Background(), clubID, plan(models.FetchLevelDefault, models.FetchLevelDefault, 1))
	require.NoError(t, err)

	d := club.(dto.DefaultClub)
	assert.Equal(t, dto.IDOnlyStudent{ID: 1}, d.Staffs[0])
	assert.Zero(t, f.students.calls+f.classrooms.calls+f.users.calls)
}

func TestStudentsFromIDsPreservesOrderAndOmitsMissing(t *testing.T) {
	f := newFixture()

	students, err := f.views.StudentsFromIDs(context.Background(), []int64{3, 99, 1, 2}, plan(models.FetchLevelIDOnly, models.FetchLevelIDOnly, 2))
	require.NoError(t, err)

	assert.Equal(t, []dto.Student{dto.IDOnlyStudent{ID: 3}, dto.IDOnlyStudent{ID: 1}, dto.IDOnlyStudent{ID: 2}}, students)
	assert.Equal(t, 1, f.students.calls)
}

func TestContactsFromIDsEmptyInput(t *testing.T) {
	f := newFixture()

	contacts, err := f.views.ContactsFromIDs(context.Background(), nil, plan(models.FetchLevelCompact, models.FetchLevelIDOnly, 2))
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestDefaultClassroomLoadsStudentsAndContacts(t *testing.T) {
	f := newFixture()

	classroom, err := f.views.ClassroomByID(context.Background(), 7, plan(models.FetchLevelDefault, models.FetchLevelCompact, 2))
	require.NoError(t, err)

	d := classroom.(dto.DefaultClassroom)
	require.Len(t, d.Students, 2)
	assert.IsType(t, dto.CompactStudent{}, d.Students[0])
	assert.Equal(t, []dto.Contact{dto.CompactContact{ID: 11, Name: models.MultiLangString{}, Value: "0812345678", Type: models.ContactPhone}}, d.Contacts)
}

func TestClubRequestDefaultRendersMissingClubAsNull(t *testing.T) {
	f := newFixture()
	row := models.ClubRequestRow{ID: userID, ClubID: userID, StudentID: 2, Year: 2026, MembershipStatus: models.StatusPending}

	view, err := f.views.ClubRequest(context.Background(), row, plan(models.FetchLevelDefault, models.FetchLevelIDOnly, 2))
	require.NoError(t, err)

	d := view.(dto.DefaultClubRequest)
	assert.Nil(t, d.Club)
	assert.Equal(t, dto.IDOnlyStudent{ID: 2}, d.Student)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"club":null`)
	assert.Contains(t, string(raw), `"student":{"id":2}`)
}

func TestUnknownFetchLevelIsInternalError(t *testing.T) {
	f := newFixture()
	bogus := models.FetchPlan{Level: "everything", Budget: 2}

	_, err := f.views.Club(context.Background(), f.clubs.clubs[clubID], bogus)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInternal)

	_, err = f.views.Contact(models.ContactRow{ID: 1}, bogus)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

func TestViewsSerialiseWithoutVariantTag(t *testing.T) {
	f := newFixture()

	page := []dto.Club{}
	for _, level := range []models.FetchLevel{models.FetchLevelIDOnly, models.FetchLevelCompact} {
		v, err := f.views.Club(context.Background(), f.clubs.clubs[clubID], plan(level, models.FetchLevelIDOnly, 2))
		require.NoError(t, err)
		page = append(page, v)
	}

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]interface{}{"id": clubID.String()}, decoded[0])
	assert.Equal(t, "Robotics", decoded[1]["name"].(map[string]interface{})["en-US"])
	assert.NotContains(t, string(raw), "IDOnly")
	assert.NotContains(t, string(raw), "Compact")
}

func TestProjectionsAreRecorded(t *testing.T) {
	f := newFixture()

	_, err := f.views.ClubByID(context.Background(), clubID, plan(models.FetchLevelDefault, models.FetchLevelCompact, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, f.recorder.projections["club/default"])
	assert.Equal(t, 3, f.recorder.projections["student/compact"])
	assert.Equal(t, 1, f.recorder.projections["contact/compact"])
}
