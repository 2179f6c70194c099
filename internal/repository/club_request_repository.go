package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/pkg/query"
)

const clubRequestColumns = `id, club_id, student_id, year, membership_status, created_at`

// ClubRequestRepository manages club_members rows.
type ClubRequestRepository struct {
	base
}

// NewClubRequestRepository constructs a ClubRequestRepository.
func NewClubRequestRepository(db *sqlx.DB, observer QueryObserver) *ClubRequestRepository {
	return &ClubRequestRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the request does not exist.
func (r *ClubRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ClubRequestRow, error) {
	defer r.observe("club_request.find_by_id", time.Now())
	q := fmt.Sprintf("SELECT %s FROM club_members WHERE id = $1", clubRequestColumns)
	var row models.ClubRequestRow
	if err := r.db.GetContext(ctx, &row, q, id.String()); err != nil {
		return nil, err
	}
	return &row, nil
}

// Query lists requests matching the filter together with the total match count.
func (r *ClubRequestRepository) Query(ctx context.Context, lq models.ListQuery[models.QueryableClubRequest]) ([]models.ClubRequestRow, int, error) {
	defer r.observe("club_request.query", time.Now())
	b := query.New(clubRequestColumns, "club_members")
	if f := lq.Filter; f != nil {
		if f.ID != nil {
			b.Where("id = %s", f.ID.String())
		}
		if f.ClubID != nil {
			b.Where("club_id = %s", f.ClubID.String())
		}
		if f.StudentID != nil {
			b.Where("student_id = %s", *f.StudentID)
		}
		if f.Year != nil {
			b.Where("year = %s", *f.Year)
		}
		if f.MembershipStatus != nil {
			b.Where("membership_status = %s", string(*f.MembershipStatus))
		}
	}
	b.OrderBy(lq.SortBy, lq.Ascending, "id").Paginate(lq.Page, lq.Size)

	return selectPage[models.ClubRequestRow](ctx, r.db, b, "club requests")
}

// Create inserts a request unless the student already
// holds an active one for the same club and year, in which case it returns
// models.ErrActiveClubRequest. A transaction-scoped advisory lock on
// (club, student, year) serialises concurrent submissions.
func (r *ClubRequestRepository) Create(ctx context.Context, c models.CreatableClubRequest) (id uuid.UUID, err error) {
	defer r.observe("club_request.create", time.Now())
	id = uuid.New()
	stmt, args, err := pg.Insert("club_members").Prepared(true).Rows(goqu.Record{
		"id":                id.String(),
		"club_id":           c.ClubID.String(),
		"student_id":        c.StudentID,
		"year":              c.Year,
		"membership_status": string(c.MembershipStatus),
	}).ToSQL()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build club request insert: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin create club request: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	lockKey := fmt.Sprintf("club_members:%s:%d:%d", c.ClubID, c.StudentID, c.Year)
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return uuid.Nil, fmt.Errorf("lock club request: %w", err)
	}

	const countActive = `SELECT COUNT(*) FROM club_members WHERE club_id = $1 AND student_id = $2 AND year = $3 AND membership_status IN ($4, $5)`
	var active int
	if err = tx.GetContext(ctx, &active, countActive, c.ClubID.String(), c.StudentID, c.Year, string(models.StatusPending), string(models.StatusApproved)); err != nil {
		return uuid.Nil, fmt.Errorf("count active club requests: %w", err)
	}
	if active > 0 {
		err = models.ErrActiveClubRequest
		return uuid.Nil, err
	}

	if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
		return uuid.Nil, fmt.Errorf("insert club request: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit club request: %w", err)
	}
	return id, nil
}

// UpdateByID applies the supplied fields. Returns sql.ErrNoRows when nothing matched.
func (r *ClubRequestRepository) UpdateByID(ctx context.Context, id uuid.UUID, u models.UpdatableClubRequest) error {
	if u.MembershipStatus == nil {
		return nil
	}
	defer r.observe("club_request.update", time.Now())
	stmt, args, err := pg.Update("club_members").Prepared(true).
		Set(goqu.Record{"membership_status": string(*u.MembershipStatus)}).
		Where(goqu.C("id").Eq(id.String())).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build club request update: %w", err)
	}
	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update club request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
