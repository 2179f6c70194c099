package repository

import (
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

type recordingObserver struct {
	mu     sync.Mutex
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels = append(o.labels, label)
}

var studentRowColumns = []string{
	"id", "created_at", "std_id", "person", "prefix_th", "prefix_en", "first_name_th", "first_name_en",
	"last_name_th", "last_name_en", "middle_name_th", "middle_name_en", "nickname_th", "nickname_en",
	"birthdate", "contacts", "profile",
}

func addStudentRow(rows *sqlmock.Rows, id int64, stdID, firstName string) *sqlmock.Rows {
	return rows.AddRow(id, time.Now(), stdID, id+100, "นาย", "Mr.", firstName, nil, "ใจดี", nil, nil, nil, nil, nil, time.Date(2008, 5, 1, 0, 0, 0, 0, time.UTC), "{1,2}", nil)
}

var contactRowColumns = []string{"id", "created_at", "name_th", "name_en", "value", "type", "include_students", "include_teachers", "include_parents"}

func sqlmockRow(v interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"value"}).AddRow(v)
}
