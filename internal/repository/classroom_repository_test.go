package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classroomRowColumns = []string{"id", "created_at", "number", "year", "students", "advisors", "contacts", "subjects", "no_list"}

func TestClassroomRepositoryFindByStudent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classroom cr WHERE $1 = ANY(cr.students) AND cr.year = $2 LIMIT 1")).
		WithArgs(int64(5), 2026).
		WillReturnRows(sqlmock.NewRows(classroomRowColumns).
			AddRow(9, time.Now(), 501, 2026, "{4,5,6}", "{1}", "{}", "{}", "{1,2,3}"))

	classroom, err := repo.FindByStudent(context.Background(), 5, 2026)
	require.NoError(t, err)
	require.NotNil(t, classroom)
	assert.Equal(t, int64(501), classroom.Number)
	require.NotNil(t, classroom.ClassNumber(5))
	assert.Equal(t, int64(2), *classroom.ClassNumber(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassroomRepositoryFindByStudentUnassigned(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db, nil)

	mock.ExpectQuery("FROM classroom cr").WillReturnRows(sqlmock.NewRows(classroomRowColumns))

	classroom, err := repo.FindByStudent(context.Background(), 5, 2026)
	require.NoError(t, err)
	assert.Nil(t, classroom)
}
