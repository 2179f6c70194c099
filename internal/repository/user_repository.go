package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

const userColumns = `id, email, role, student, teacher, onboarded, is_admin`

// UserRepository reads user accounts.
type UserRepository struct {
	base
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB, observer QueryObserver) *UserRepository {
	return &UserRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the user does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	defer r.observe("user.find_by_id", time.Now())
	var user models.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = $1", id.String()); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByStudentID returns the account linked to the student or sql.ErrNoRows.
func (r *UserRepository) FindByStudentID(ctx context.Context, studentID int64) (*models.User, error) {
	defer r.observe("user.find_by_student", time.Now())
	var user models.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE student = $1 LIMIT 1", studentID); err != nil {
		return nil, err
	}
	return &user, nil
}
