package repository

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// QueryObserver receives the duration of each statement labelled entity.operation.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// pg builds write statements with $n placeholders.
var pg = goqu.Dialect("postgres")

type base struct {
	db       *sqlx.DB
	observer QueryObserver
}

func (b base) observe(label string, start time.Time) {
	if b.observer != nil {
		b.observer.ObserveDBQuery(label, time.Since(start))
	}
}

func int64Array(ids []int64) interface{} {
	if ids == nil {
		ids = []int64{}
	}
	return pq.Array(ids)
}
