package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

func TestStudentServiceGetDefault(t *testing.T) {
	f := newFixture()
	svc := NewStudentService(f.students, f.views, nil)

	student, err := svc.Get(context.Background(), 1, models.NewFetchPlan(nil, nil, 2))
	require.NoError(t, err)

	d, ok := student.(dto.DefaultStudent)
	require.True(t, ok)
	assert.Equal(t, "ต้น", d.Nickname.TH)
	assert.Nil(t, d.MiddleName)
	assert.Equal(t, dto.IDOnlyClassroom{ID: 7}, d.Class)
	assert.Equal(t, []int{2026}, f.classrooms.years)
}

func TestStudentServiceGetMissing(t *testing.T) {
	f := newFixture()
	svc := NewStudentService(f.students, f.views, nil)

	_, err := svc.Get(context.Background(), 404, models.NewFetchPlan(nil, nil, 2))
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestStudentServiceQueryCompactIssuesOnlyTheListQuery(t *testing.T) {
	f := newFixture()
	svc := NewStudentService(f.students, f.views, nil)
	compact := models.FetchLevelCompact

	page, err := svc.Query(context.Background(), models.ListQuery[models.QueryableStudent]{Page: 1, Size: 50}, models.NewFetchPlan(&compact, nil, 2))
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, f.storageCalls())
}

func TestContactServiceGetAndQuery(t *testing.T) {
	f := newFixture()
	svc := NewContactService(f.contacts, f.views, nil)

	contact, err := svc.Get(context.Background(), 10, models.NewFetchPlan(nil, nil, 2))
	require.NoError(t, err)
	assert.IsType(t, dto.DefaultContact{}, contact)

	idOnly := models.FetchLevelIDOnly
	page, err := svc.Query(context.Background(), models.ListQuery[models.QueryableContact]{Size: 50}, models.NewFetchPlan(&idOnly, nil, 2))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)

	_, err = svc.Get(context.Background(), 999, models.NewFetchPlan(nil, nil, 2))
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestClassroomServiceGetAndQuery(t *testing.T) {
	f := newFixture()
	svc := NewClassroomService(f.classrooms, f.views, nil)

	classroom, err := svc.Get(context.Background(), 7, models.NewFetchPlan(nil, nil, 2))
	require.NoError(t, err)
	d := classroom.(dto.DefaultClassroom)
	assert.Equal(t, []dto.Student{dto.IDOnlyStudent{ID: 1}, dto.IDOnlyStudent{ID: 2}}, d.Students)

	compact := models.FetchLevelCompact
	page, err := svc.Query(context.Background(), models.ListQuery[models.QueryableClassroom]{Size: 10}, models.NewFetchPlan(&compact, nil, 2))
	require.NoError(t, err)
	assert.Equal(t, []dto.Classroom{dto.CompactClassroom{ID: 7, Number: 501, Year: 2026}}, page.Items)
}
