package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/pkg/query"
)

const classroomColumns = `cr.id, cr.created_at, cr.number, cr.year, cr.students, cr.advisors, cr.contacts, cr.subjects, cr.no_list`

// ClassroomRepository reads classrooms.
type ClassroomRepository struct {
	base
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB, observer QueryObserver) *ClassroomRepository {
	return &ClassroomRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the classroom does not exist.
func (r *ClassroomRepository) FindByID(ctx context.Context, id int64) (*models.ClassroomRow, error) {
	defer r.observe("classroom.find_by_id", time.Now())
	q := fmt.Sprintf("SELECT %s FROM classroom cr WHERE cr.id = $1", classroomColumns)
	var row models.ClassroomRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs loads classrooms in one round trip. Order is unspecified.
func (r *ClassroomRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.ClassroomRow, error) {
	if len(ids) == 0 {
		return []models.ClassroomRow{}, nil
	}
	defer r.observe("classroom.find_by_ids", time.Now())
	q := fmt.Sprintf("SELECT %s FROM classroom cr WHERE cr.id = ANY($1)", classroomColumns)
	rows := []models.ClassroomRow{}
	if err := r.db.SelectContext(ctx, &rows, q, int64Array(ids)); err != nil {
		return nil, fmt.Errorf("find classrooms by ids: %w", err)
	}
	return rows, nil
}

// FindByStudent returns the student's classroom for the year, or nil when unassigned.
func (r *ClassroomRepository) FindByStudent(ctx context.Context, studentID int64, year int) (*models.ClassroomRow, error) {
	defer r.observe("classroom.find_by_student", time.Now())
	q := fmt.Sprintf("SELECT %s FROM classroom cr WHERE $1 = ANY(cr.students) AND cr.year = $2 LIMIT 1", classroomColumns)
	var row models.ClassroomRow
	if err := r.db.GetContext(ctx, &row, q, studentID, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find classroom by student: %w", err)
	}
	return &row, nil
}

// Query lists classrooms matching the filter together with the total match count.
func (r *ClassroomRepository) Query(ctx context.Context, lq models.ListQuery[models.QueryableClassroom]) ([]models.ClassroomRow, int, error) {
	defer r.observe("classroom.query", time.Now())
	b := query.New(classroomColumns, "classroom cr")
	if f := lq.Filter; f != nil {
		if f.ID != nil {
			b.Where("cr.id = %s", *f.ID)
		}
		if f.Number != nil {
			b.Where("cr.number = %s", *f.Number)
		}
		if f.Year != nil {
			b.Where("cr.year = %s", *f.Year)
		}
	}
	if lq.Search != "" {
		b.Search(lq.Search, "cr.number::text")
	}
	b.OrderBy(prefixColumns("cr.", lq.SortBy), lq.Ascending, "cr.id").Paginate(lq.Page, lq.Size)

	return selectPage[models.ClassroomRow](ctx, r.db, b, "classrooms")
}
