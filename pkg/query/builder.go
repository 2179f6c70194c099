// Package query assembles parameterized SELECT statements for list endpoints.
//
// A Builder owns both the SQL fragments and their bound values, so a
// placeholder index is handed out exactly once, in the order fragments are
// appended.
package query

import (
	"fmt"
	"strings"
)

const (
	// DefaultPage is used when the caller omits a page or sends a non-positive one.
	DefaultPage = 1
	// DefaultPageSize is used when the caller omits a size or sends a non-positive one.
	DefaultPageSize = 50
)

// Builder accumulates predicates, ordering and pagination for a single SELECT.
type Builder struct {
	selectClause string
	fromClause   string

	predicates []string
	args       []interface{}

	orderBy []string
	asc     bool

	page int
	size int
}

// New starts a builder for `SELECT <selectClause> FROM <fromClause>`.
func New(selectClause, fromClause string) *Builder {
	return &Builder{
		selectClause: selectClause,
		fromClause:   fromClause,
		asc:          true,
		page:         DefaultPage,
		size:         DefaultPageSize,
	}
}

func (b *Builder) bind(value interface{}) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// Where appends one predicate. format must contain exactly one %s verb which
// receives the placeholder bound to value.
func (b *Builder) Where(format string, value interface{}) *Builder {
	b.predicates = append(b.predicates, fmt.Sprintf(format, b.bind(value)))
	return b
}

// WhereRaw appends a predicate that binds no value.
func (b *Builder) WhereRaw(predicate string) *Builder {
	b.predicates = append(b.predicates, predicate)
	return b
}

// likeEscaper makes LIKE metacharacters in user input match literally under
// the default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search appends `(c1 ILIKE $n OR c2 ILIKE $n+1 ...)` for a non-blank term.
// The term matches as a literal substring.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE %s", column, b.bind(pattern)))
	}
	b.predicates = append(b.predicates, "("+strings.Join(parts, " OR ")+")")
	return b
}

// OrderBy sets the sort columns. tieBreaker (normally the primary key) is
// always the last sort key so pages are stable.
func (b *Builder) OrderBy(columns []string, ascending bool, tieBreaker string) *Builder {
	ordered := make([]string, 0, len(columns)+1)
	seen := make(map[string]struct{}, len(columns)+1)
	for _, column := range columns {
		if column == "" {
			continue
		}
		if _, dup := seen[column]; dup {
			continue
		}
		seen[column] = struct{}{}
		ordered = append(ordered, column)
	}
	if _, ok := seen[tieBreaker]; !ok && tieBreaker != "" {
		ordered = append(ordered, tieBreaker)
	}

	b.orderBy = ordered
	b.asc = ascending
	return b
}

// Paginate sets page (1-based) and size. Non-positive values fall back to defaults.
func (b *Builder) Paginate(page, size int) *Builder {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	b.page = page
	b.size = size
	return b
}

// Page returns the effective page number.
func (b *Builder) Page() int { return b.page }

// Size returns the effective page size.
func (b *Builder) Size() int { return b.size }

// Offset returns (page-1)*size.
func (b *Builder) Offset() int { return (b.page - 1) * b.size }

func (b *Builder) whereClause() string {
	if len(b.predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.predicates, " AND ")
}

// Build renders the paginated statement. LIMIT and OFFSET are always the last
// two placeholders.
func (b *Builder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.selectClause)
	sb.WriteString(" FROM ")
	sb.WriteString(b.fromClause)
	sb.WriteString(b.whereClause())

	if len(b.orderBy) > 0 {
		direction := "ASC"
		if !b.asc {
			direction = "DESC"
		}
		keys := make([]string, len(b.orderBy))
		for i, column := range b.orderBy {
			keys[i] = column + " " + direction
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(keys, ", "))
	}

	args := make([]interface{}, len(b.args), len(b.args)+2)
	copy(args, b.args)
	args = append(args, b.size, b.Offset())
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args
}

// CountQuery renders `SELECT COUNT(*)` over the same predicates, without
// ordering or pagination.
func (b *Builder) CountQuery() (string, []interface{}) {
	args := make([]interface{}, len(b.args))
	copy(args, b.args)
	return "SELECT COUNT(*) FROM " + b.fromClause + b.whereClause(), args
}
