package models

import "time"

// MultiLangString is the wire form of a Thai/English column pair.
type MultiLangString struct {
	TH string  `json:"th"`
	EN *string `json:"en-US,omitempty"`
}

// NewMultiLangString pairs a required Thai value with an optional English one.
func NewMultiLangString(th string, en *string) MultiLangString {
	return MultiLangString{TH: th, EN: en}
}

// OptionalMultiLangString returns nil when the Thai value is absent.
func OptionalMultiLangString(th, en *string) *MultiLangString {
	if th == nil {
		return nil
	}
	v := NewMultiLangString(*th, en)
	return &v
}

// AcademicYear returns the academic year containing now. Months before
// startMonth belong to the previous year.
func AcademicYear(now time.Time, startMonth int) int {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 5
	}
	year := now.Year()
	if int(now.Month()) < startMonth {
		year--
	}
	return year
}
