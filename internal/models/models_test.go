package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelPtr(l FetchLevel) *FetchLevel { return &l }

func TestNewFetchPlanDefaults(t *testing.T) {
	plan := NewFetchPlan(nil, nil, 0)

	assert.Equal(t, FetchLevelDefault, plan.Level)
	assert.Equal(t, FetchLevelIDOnly, plan.Descendant)
	assert.Equal(t, DefaultMaxFetchDepth, plan.Budget)
}

func TestFetchPlanNestedThreadsDescendantOnce(t *testing.T) {
	plan := NewFetchPlan(levelPtr(FetchLevelDefault), levelPtr(FetchLevelDefault), 2)

	child := plan.Nested()
	assert.Equal(t, FetchLevelDefault, child.Level)
	assert.Equal(t, FetchLevelIDOnly, child.Descendant)
	assert.Equal(t, 1, child.Budget)

	grandchild := child.Nested()
	assert.Equal(t, FetchLevelIDOnly, grandchild.Level)
	assert.Equal(t, 0, grandchild.Budget)
}

func TestFetchPlanBudgetCapsDepth(t *testing.T) {
	plan := FetchPlan{Level: FetchLevelDefault, Descendant: FetchLevelDefault, Budget: 1}

	assert.Equal(t, FetchLevelIDOnly, plan.Nested().Level)
}

func TestFetchLevelUnmarshal(t *testing.T) {
	var l FetchLevel
	require.NoError(t, l.UnmarshalText([]byte("compact")))
	assert.Equal(t, FetchLevelCompact, l)
	assert.Error(t, l.UnmarshalText([]byte("IdOnly")))
}

func TestAcademicYear(t *testing.T) {
	assert.Equal(t, 2023, AcademicYear(time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), 5))
	assert.Equal(t, 2024, AcademicYear(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), 5))
	assert.Equal(t, 2024, AcademicYear(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 0))
}

func TestSortableFieldsAreClosed(t *testing.T) {
	var f ClubSortableField
	require.NoError(t, f.UnmarshalText([]byte("name_th")))
	assert.Equal(t, "o.name_th", f.Column())
	assert.Error(t, f.UnmarshalText([]byte("name_th; DROP TABLE clubs")))

	var s StudentSortableField
	require.NoError(t, s.UnmarshalText([]byte("student_id")))
	assert.Equal(t, "s.std_id", s.Column())
}

func TestToListQueryMapsColumnsAndClampsSize(t *testing.T) {
	size := 500
	asc := false
	q := "chess"
	req := &Request[UpdatableClub, QueryableClub, ClubSortableField]{
		Pagination: &PaginationConfig{P: 2, Size: &size},
		Filter:     &FilterConfig[QueryableClub]{Q: &q},
		Sorting:    &SortingConfig[ClubSortableField]{By: []ClubSortableField{"house"}, Ascending: &asc},
	}

	lq := ToListQuery(req, 50, 200)

	assert.Equal(t, 2, lq.Page)
	assert.Equal(t, 200, lq.Size)
	assert.Equal(t, []string{"c.house"}, lq.SortBy)
	assert.False(t, lq.Ascending)
	assert.Equal(t, "chess", lq.Search)
	assert.Nil(t, lq.Filter)
}

func TestToListQueryDefaults(t *testing.T) {
	var req Request[UpdatableClub, QueryableClub, ClubSortableField]
	lq := ToListQuery(&req, 50, 200)

	assert.Equal(t, 0, lq.Page)
	assert.Equal(t, 50, lq.Size)
	assert.True(t, lq.Ascending)
	assert.Empty(t, lq.SortBy)
}

func TestUpdatableClubSplitsTables(t *testing.T) {
	name := "Chess"
	house := HouseSciurus
	u := UpdatableClub{NameTH: &name, House: &house}

	assert.Equal(t, map[string]interface{}{"name_th": "Chess"}, u.OrganizationFields())
	assert.Equal(t, map[string]interface{}{"house": "sciurus"}, u.ClubFields())
	assert.False(t, u.Empty())
	assert.True(t, UpdatableClub{}.Empty())
}

func TestClassNumber(t *testing.T) {
	row := ClassroomRow{Students: []int64{10, 11, 12}, NoList: []int64{1, 2}}

	require.NotNil(t, row.ClassNumber(11))
	assert.EqualValues(t, 2, *row.ClassNumber(11))
	assert.Nil(t, row.ClassNumber(12))
	assert.Nil(t, row.ClassNumber(99))
}

func TestUserRoleScanStripsQuotes(t *testing.T) {
	var r UserRole
	require.NoError(t, r.Scan([]byte(`"teacher"`)))
	assert.Equal(t, RoleTeacher, r)
	require.NoError(t, r.Scan("student"))
	assert.Equal(t, RoleStudent, r)
	assert.Error(t, r.Scan(42))
}

func TestOptionalMultiLangString(t *testing.T) {
	assert.Nil(t, OptionalMultiLangString(nil, nil))
	th := "ชมรม"
	v := OptionalMultiLangString(&th, nil)
	require.NotNil(t, v)
	assert.Equal(t, th, v.TH)
}
