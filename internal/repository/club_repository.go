package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/pkg/query"
)

const (
	clubColumns = `c.id, c.created_at, c.organization_id, o.name_th, o.name_en, o.description_th, o.description_en, o.main_room, c.logo_url, c.background_color, c.accent_color, c.house, c.map_location`
	clubFrom    = `clubs c JOIN organizations o ON o.id = c.organization_id`
)

// ClubRepository reads and writes clubs and their organization records.
type ClubRepository struct {
	base
}

// NewClubRepository constructs a ClubRepository.
func NewClubRepository(db *sqlx.DB, observer QueryObserver) *ClubRepository {
	return &ClubRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the club does not exist.
func (r *ClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ClubRow, error) {
	defer r.observe("club.find_by_id", time.Now())
	q := fmt.Sprintf("SELECT %s FROM %s WHERE c.id = $1", clubColumns, clubFrom)
	var row models.ClubRow
	if err := r.db.GetContext(ctx, &row, q, id.String()); err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs loads clubs in one round trip. Order is unspecified.
func (r *ClubRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ClubRow, error) {
	if len(ids) == 0 {
		return []models.ClubRow{}, nil
	}
	defer r.observe("club.find_by_ids", time.Now())
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	q := fmt.Sprintf("SELECT %s FROM %s WHERE c.id = ANY($1::uuid[])", clubColumns, clubFrom)
	rows := []models.ClubRow{}
	if err := r.db.SelectContext(ctx, &rows, q, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("find clubs by ids: %w", err)
	}
	return rows, nil
}

// Query lists clubs matching the filter together with the total match count.
func (r *ClubRepository) Query(ctx context.Context, lq models.ListQuery[models.QueryableClub]) ([]models.ClubRow, int, error) {
	defer r.observe("club.query", time.Now())
	b := query.New(clubColumns, clubFrom)
	if f := lq.Filter; f != nil {
		if f.ID != nil {
			b.Where("c.id = %s", f.ID.String())
		}
		if f.Name != nil {
			b.Search(*f.Name, "o.name_th", "o.name_en")
		}
		if f.Description != nil {
			b.Search(*f.Description, "o.description_th", "o.description_en")
		}
		if f.MainRoom != nil {
			b.Where("o.main_room = %s", *f.MainRoom)
		}
		if f.House != nil {
			b.Where("c.house = %s", string(*f.House))
		}
		if f.MapLocation != nil {
			b.Where("c.map_location = %s", *f.MapLocation)
		}
	}
	b.Search(lq.Search, "o.name_th", "o.name_en", "o.description_th", "o.description_en")
	b.OrderBy(lq.SortBy, lq.Ascending, "c.id").Paginate(lq.Page, lq.Size)

	return selectPage[models.ClubRow](ctx, r.db, b, "clubs")
}

// MemberRows returns the approved members of the club for the academic year.
func (r *ClubRepository) MemberRows(ctx context.Context, clubID uuid.UUID, year int) ([]models.StudentRow, error) {
	defer r.observe("club.members", time.Now())
	q := fmt.Sprintf(`SELECT %s FROM club_members m
JOIN student s ON s.id = m.student_id JOIN people p ON p.id = s.person
WHERE m.club_id = $1 AND m.year = $2 AND m.membership_status = $3 ORDER BY s.id`, studentColumns)
	rows := []models.StudentRow{}
	if err := r.db.SelectContext(ctx, &rows, q, clubID.String(), year, string(models.StatusApproved)); err != nil {
		return nil, fmt.Errorf("list club members: %w", err)
	}
	return rows, nil
}

// StaffRows returns the club staff for the academic year.
func (r *ClubRepository) StaffRows(ctx context.Context, clubID uuid.UUID, year int) ([]models.StudentRow, error) {
	defer r.observe("club.staffs", time.Now())
	q := fmt.Sprintf(`SELECT %s FROM club_staffs cs
JOIN student s ON s.id = cs.student_id JOIN people p ON p.id = s.person
WHERE cs.club_id = $1 AND cs.year = $2 ORDER BY s.id`, studentColumns)
	rows := []models.StudentRow{}
	if err := r.db.SelectContext(ctx, &rows, q, clubID.String(), year); err != nil {
		return nil, fmt.Errorf("list club staffs: %w", err)
	}
	return rows, nil
}

// ContactRows returns the contacts attached to the club.
func (r *ClubRepository) ContactRows(ctx context.Context, clubID uuid.UUID) ([]models.ContactRow, error) {
	defer r.observe("club.contacts", time.Now())
	q := fmt.Sprintf(`SELECT %s FROM club_contacts cc JOIN contacts ct ON ct.id = cc.contact_id
WHERE cc.club_id = $1 ORDER BY ct.id`, contactColumns)
	rows := []models.ContactRow{}
	if err := r.db.SelectContext(ctx, &rows, q, clubID.String()); err != nil {
		return nil, fmt.Errorf("list club contacts: %w", err)
	}
	return rows, nil
}

// IsStaff reports whether the student is on the club staff for the year.
func (r *ClubRepository) IsStaff(ctx context.Context, clubID uuid.UUID, studentID int64, year int) (bool, error) {
	defer r.observe("club.is_staff", time.Now())
	const q = `SELECT EXISTS(SELECT 1 FROM club_staffs WHERE club_id = $1 AND student_id = $2 AND year = $3)`
	var ok bool
	if err := r.db.GetContext(ctx, &ok, q, clubID.String(), studentID, year); err != nil {
		return false, fmt.Errorf("check club staff: %w", err)
	}
	return ok, nil
}

// UpdateByID applies a partial update to the organization and club rows in one
// transaction. Tables without supplied fields are not touched. Returns
// sql.ErrNoRows when the club does not exist.
func (r *ClubRepository) UpdateByID(ctx context.Context, id uuid.UUID, u models.UpdatableClub) (err error) {
	orgFields, clubFields := u.OrganizationFields(), u.ClubFields()
	if len(orgFields) == 0 && len(clubFields) == 0 {
		return nil
	}
	defer r.observe("club.update", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update club: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var organizationID int64
	if err = tx.GetContext(ctx, &organizationID, `SELECT organization_id FROM clubs WHERE id = $1 FOR UPDATE`, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("lock club: %w", err)
	}

	if len(orgFields) > 0 {
		stmt, args, buildErr := pg.Update("organizations").Prepared(true).
			Set(goqu.Record(orgFields)).
			Where(goqu.C("id").Eq(organizationID)).
			ToSQL()
		if buildErr != nil {
			err = fmt.Errorf("build organization update: %w", buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("update organization: %w", err)
		}
	}

	if len(clubFields) > 0 {
		stmt, args, buildErr := pg.Update("clubs").Prepared(true).
			Set(goqu.Record(clubFields)).
			Where(goqu.C("id").Eq(id.String())).
			ToSQL()
		if buildErr != nil {
			err = fmt.Errorf("build club update: %w", buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("update club: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit update club: %w", err)
	}
	return nil
}

// CreateContact inserts a contact and links it to the club in one transaction.
func (r *ClubRepository) CreateContact(ctx context.Context, clubID uuid.UUID, c models.CreatableContact) (id int64, err error) {
	defer r.observe("club.create_contact", time.Now())

	record := goqu.Record{
		"value": c.Value,
		"type":  string(c.Type),
	}
	if c.NameTH != nil {
		record["name_th"] = *c.NameTH
	}
	if c.NameEN != nil {
		record["name_en"] = *c.NameEN
	}
	if c.IncludeStudents != nil {
		record["include_students"] = *c.IncludeStudents
	}
	if c.IncludeTeachers != nil {
		record["include_teachers"] = *c.IncludeTeachers
	}
	if c.IncludeParents != nil {
		record["include_parents"] = *c.IncludeParents
	}
	stmt, args, err := pg.Insert("contacts").Prepared(true).Rows(record).Returning("id").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build contact insert: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create contact: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = tx.QueryRowxContext(ctx, stmt, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO club_contacts (club_id, contact_id) VALUES ($1, $2)`, clubID.String(), id); err != nil {
		return 0, fmt.Errorf("link club contact: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create contact: %w", err)
	}
	return id, nil
}
