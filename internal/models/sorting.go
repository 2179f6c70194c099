package models

import "fmt"

func unmarshalSortable(name string, columns map[string]string, text []byte) (string, error) {
	v := string(text)
	if _, ok := columns[v]; !ok {
		return "", fmt.Errorf("unknown %s sort field %q", name, v)
	}
	return v, nil
}

var clubSortColumns = map[string]string{
	"id":           "c.id",
	"name_th":      "o.name_th",
	"name_en":      "o.name_en",
	"house":        "c.house",
	"map_location": "c.map_location",
	"created_at":   "c.created_at",
}

// ClubSortableField is a closed set of club sort keys.
type ClubSortableField string

func (f *ClubSortableField) UnmarshalText(text []byte) error {
	v, err := unmarshalSortable("club", clubSortColumns, text)
	*f = ClubSortableField(v)
	return err
}

// Column returns the qualified column for ORDER BY.
func (f ClubSortableField) Column() string { return clubSortColumns[string(f)] }

var studentSortColumns = map[string]string{
	"id":            "s.id",
	"student_id":    "s.std_id",
	"first_name_th": "p.first_name_th",
	"first_name_en": "p.first_name_en",
	"last_name_th":  "p.last_name_th",
	"last_name_en":  "p.last_name_en",
}

// StudentSortableField is a closed set of student sort keys.
type StudentSortableField string

func (f *StudentSortableField) UnmarshalText(text []byte) error {
	v, err := unmarshalSortable("student", studentSortColumns, text)
	*f = StudentSortableField(v)
	return err
}

func (f StudentSortableField) Column() string { return studentSortColumns[string(f)] }

var contactSortColumns = map[string]string{
	"id":      "id",
	"name_th": "name_th",
	"name_en": "name_en",
	"value":   "value",
	"type":    "type",
}

// ContactSortableField is a closed set of contact sort keys.
type ContactSortableField string

func (f *ContactSortableField) UnmarshalText(text []byte) error {
	v, err := unmarshalSortable("contact", contactSortColumns, text)
	*f = ContactSortableField(v)
	return err
}

func (f ContactSortableField) Column() string { return contactSortColumns[string(f)] }

var classroomSortColumns = map[string]string{
	"id":     "id",
	"number": "number",
	"year":   "year",
}

// ClassroomSortableField is a closed set of classroom sort keys.
type ClassroomSortableField string

func (f *ClassroomSortableField) UnmarshalText(text []byte) error {
	v, err := unmarshalSortable("classroom", classroomSortColumns, text)
	*f = ClassroomSortableField(v)
	return err
}

func (f ClassroomSortableField) Column() string { return classroomSortColumns[string(f)] }

var clubRequestSortColumns = map[string]string{
	"id":                "id",
	"club_id":           "club_id",
	"student_id":        "student_id",
	"year":              "year",
	"membership_status": "membership_status",
	"created_at":        "created_at",
}

// ClubRequestSortableField is a closed set of join-request sort keys.
type ClubRequestSortableField string

func (f *ClubRequestSortableField) UnmarshalText(text []byte) error {
	v, err := unmarshalSortable("join request", clubRequestSortColumns, text)
	*f = ClubRequestSortableField(v)
	return err
}

func (f ClubRequestSortableField) Column() string { return clubRequestSortColumns[string(f)] }
