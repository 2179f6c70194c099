package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/pkg/query"
)

const (
	studentColumns = `s.id, s.created_at, s.std_id, s.person, p.prefix_th, p.prefix_en, p.first_name_th, p.first_name_en, p.last_name_th, p.last_name_en, p.middle_name_th, p.middle_name_en, p.nickname_th, p.nickname_en, p.birthdate, p.contacts, p.profile`
	studentFrom    = `student s JOIN people p ON p.id = s.person`
)

// StudentRepository reads students joined with their person records.
type StudentRepository struct {
	base
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the student does not exist.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.StudentRow, error) {
	defer r.observe("student.find_by_id", time.Now())
	q := fmt.Sprintf("SELECT %s FROM %s WHERE s.id = $1", studentColumns, studentFrom)
	var row models.StudentRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs loads students in one round trip. Order is unspecified.
func (r *StudentRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.StudentRow, error) {
	if len(ids) == 0 {
		return []models.StudentRow{}, nil
	}
	defer r.observe("student.find_by_ids", time.Now())
	q := fmt.Sprintf("SELECT %s FROM %s WHERE s.id = ANY($1)", studentColumns, studentFrom)
	rows := []models.StudentRow{}
	if err := r.db.SelectContext(ctx, &rows, q, int64Array(ids)); err != nil {
		return nil, fmt.Errorf("find students by ids: %w", err)
	}
	return rows, nil
}

// Query lists students matching the filter together with the total match count.
func (r *StudentRepository) Query(ctx context.Context, lq models.ListQuery[models.QueryableStudent]) ([]models.StudentRow, int, error) {
	defer r.observe("student.query", time.Now())
	b := query.New(studentColumns, studentFrom)
	if f := lq.Filter; f != nil {
		if f.ID != nil {
			b.Where("s.id = %s", *f.ID)
		}
		if f.StudentID != nil {
			b.Where("s.std_id = %s", *f.StudentID)
		}
		if f.FirstName != nil {
			b.Search(*f.FirstName, "p.first_name_th", "p.first_name_en")
		}
		if f.LastName != nil {
			b.Search(*f.LastName, "p.last_name_th", "p.last_name_en")
		}
		if f.Nickname != nil {
			b.Search(*f.Nickname, "p.nickname_th", "p.nickname_en")
		}
	}
	b.Search(lq.Search, "s.std_id", "p.first_name_th", "p.first_name_en", "p.last_name_th", "p.last_name_en", "p.nickname_th", "p.nickname_en")
	b.OrderBy(lq.SortBy, lq.Ascending, "s.id").Paginate(lq.Page, lq.Size)

	return selectPage[models.StudentRow](ctx, r.db, b, "students")
}

// selectPage runs the paginated statement and its count.
func selectPage[T any](ctx context.Context, db *sqlx.DB, b *query.Builder, entity string) ([]T, int, error) {
	q, args := b.Build()
	rows := []T{}
	if err := db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", entity, err)
	}

	countQ, countArgs := b.CountQuery()
	var total int
	if err := db.GetContext(ctx, &total, countQ, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", entity, err)
	}
	return rows, total, nil
}
