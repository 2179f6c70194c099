package models

// PaginationConfig is the `pagination` member of a request envelope. P is 1-based.
type PaginationConfig struct {
	P    int  `json:"p" validate:"gte=0"`
	Size *int `json:"size" validate:"omitempty,gte=1"`
}

// FilterConfig carries the structured filter and the free-text query.
type FilterConfig[F any] struct {
	Data *F      `json:"data"`
	Q    *string `json:"q"`
}

// SortingConfig lists sort fields sharing one direction.
type SortingConfig[S any] struct {
	By        []S   `json:"by"`
	Ascending *bool `json:"ascending"`
}

// Request is the generic envelope accepted by every endpoint. D is the write
// payload, F the entity's queryable filter and S its sortable field enum.
type Request[D any, F any, S any] struct {
	Data                 *D                `json:"data"`
	Pagination           *PaginationConfig `json:"pagination"`
	Filter               *FilterConfig[F]  `json:"filter"`
	Sorting              *SortingConfig[S] `json:"sorting"`
	FetchLevel           *FetchLevel       `json:"fetch_level"`
	DescendantFetchLevel *FetchLevel       `json:"descendant_fetch_level"`
}

// Plan resolves the fetch plan with read defaults.
func (r *Request[D, F, S]) Plan(maxDepth int) FetchPlan {
	if r == nil {
		return NewFetchPlan(nil, nil, maxDepth)
	}
	return NewFetchPlan(r.FetchLevel, r.DescendantFetchLevel, maxDepth)
}

// Page returns the requested page and size, zero when omitted.
func (r *Request[D, F, S]) Page() (page, size int) {
	if r == nil || r.Pagination == nil {
		return 0, 0
	}
	page = r.Pagination.P
	if r.Pagination.Size != nil {
		size = *r.Pagination.Size
	}
	return page, size
}

// FilterData returns the structured filter or nil.
func (r *Request[D, F, S]) FilterData() *F {
	if r == nil || r.Filter == nil {
		return nil
	}
	return r.Filter.Data
}

// SearchTerm returns the free-text query or "".
func (r *Request[D, F, S]) SearchTerm() string {
	if r == nil || r.Filter == nil || r.Filter.Q == nil {
		return ""
	}
	return *r.Filter.Q
}

// SortBy returns the requested sort fields and direction (ascending by default).
func (r *Request[D, F, S]) SortBy() ([]S, bool) {
	if r == nil || r.Sorting == nil {
		return nil, true
	}
	ascending := true
	if r.Sorting.Ascending != nil {
		ascending = *r.Sorting.Ascending
	}
	return r.Sorting.By, ascending
}

// ListQuery is the entity-independent form of a list request handed to repositories.
type ListQuery[F any] struct {
	Filter    *F
	Search    string
	SortBy    []string
	Ascending bool
	Page      int
	Size      int
}

// Sortable is implemented by each entity's closed sort-field enum.
type Sortable interface {
	Column() string
}

// ToListQuery flattens the envelope, mapping sort fields to their columns and
// clamping the page size to maxSize.
func ToListQuery[D any, F any, S Sortable](r *Request[D, F, S], defaultSize, maxSize int) ListQuery[F] {
	page, size := r.Page()
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	fields, asc := r.SortBy()
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column())
	}
	return ListQuery[F]{
		Filter:    r.FilterData(),
		Search:    r.SearchTerm(),
		SortBy:    columns,
		Ascending: asc,
		Page:      page,
		Size:      size,
	}
}
