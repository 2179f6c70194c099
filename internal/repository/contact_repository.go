package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/pkg/query"
)

const contactColumns = `ct.id, ct.created_at, ct.name_th, ct.name_en, ct.value, ct.type, ct.include_students, ct.include_teachers, ct.include_parents`

// ContactRepository reads contacts.
type ContactRepository struct {
	base
}

// NewContactRepository constructs a ContactRepository.
func NewContactRepository(db *sqlx.DB, observer QueryObserver) *ContactRepository {
	return &ContactRepository{base{db: db, observer: observer}}
}

// FindByID returns sql.ErrNoRows when the contact does not exist.
func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*models.ContactRow, error) {
	defer r.observe("contact.find_by_id", time.Now())
	q := fmt.Sprintf("SELECT %s FROM contacts ct WHERE ct.id = $1", contactColumns)
	var row models.ContactRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs loads contacts in one round trip. Order is unspecified.
func (r *ContactRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.ContactRow, error) {
	if len(ids) == 0 {
		return []models.ContactRow{}, nil
	}
	defer r.observe("contact.find_by_ids", time.Now())
	q := fmt.Sprintf("SELECT %s FROM contacts ct WHERE ct.id = ANY($1)", contactColumns)
	rows := []models.ContactRow{}
	if err := r.db.SelectContext(ctx, &rows, q, int64Array(ids)); err != nil {
		return nil, fmt.Errorf("find contacts by ids: %w", err)
	}
	return rows, nil
}

// Query lists contacts matching the filter together with the total match count.
func (r *ContactRepository) Query(ctx context.Context, lq models.ListQuery[models.QueryableContact]) ([]models.ContactRow, int, error) {
	defer r.observe("contact.query", time.Now())
	b := query.New(contactColumns, "contacts ct")
	if f := lq.Filter; f != nil {
		if f.ID != nil {
			b.Where("ct.id = %s", *f.ID)
		}
		if f.Name != nil {
			b.Search(*f.Name, "ct.name_th", "ct.name_en")
		}
		if f.Value != nil {
			b.Where("ct.value = %s", *f.Value)
		}
		if f.Type != nil {
			b.Where("ct.type = %s", string(*f.Type))
		}
	}
	b.Search(lq.Search, "ct.name_th", "ct.name_en", "ct.value")
	b.OrderBy(prefixColumns("ct.", lq.SortBy), lq.Ascending, "ct.id").Paginate(lq.Page, lq.Size)

	return selectPage[models.ContactRow](ctx, r.db, b, "contacts")
}

func prefixColumns(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + c
	}
	return out
}
