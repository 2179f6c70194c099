package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

var userRowColumns = []string{"id", "email", "role", "student", "teacher", "onboarded", "is_admin"}

func TestUserRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db, nil)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, role, student, teacher, onboarded, is_admin FROM users WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(id.String(), "a@example.com", `"student"`, 5, nil, true, false))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	studentID, ok := user.StudentID()
	assert.True(t, ok)
	assert.Equal(t, int64(5), studentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByStudentIDMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE student = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindByStudentID(context.Background(), 5)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
