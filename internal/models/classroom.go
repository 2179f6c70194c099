package models

import (
	"time"

	"github.com/lib/pq"
)

// ClassroomRow mirrors the classroom table. NoList holds class numbers aligned
// with Students.
type ClassroomRow struct {
	ID        int64         `db:"id"`
	CreatedAt *time.Time    `db:"created_at"`
	Number    int64         `db:"number"`
	Year      int64         `db:"year"`
	Students  pq.Int64Array `db:"students"`
	Advisors  pq.Int64Array `db:"advisors"`
	Contacts  pq.Int64Array `db:"contacts"`
	Subjects  pq.Int64Array `db:"subjects"`
	NoList    pq.Int64Array `db:"no_list"`
}

// ClassNumber returns the student's number in the class, if recorded.
func (r ClassroomRow) ClassNumber(studentID int64) *int64 {
	for i, id := range r.Students {
		if id == studentID && i < len(r.NoList) {
			n := r.NoList[i]
			return &n
		}
	}
	return nil
}

// QueryableClassroom lists the filterable classroom fields.
type QueryableClassroom struct {
	ID     *int64 `json:"id"`
	Number *int64 `json:"number"`
	Year   *int64 `json:"year"`
}
