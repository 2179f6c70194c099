package models

import (
	"time"

	"github.com/google/uuid"
)

// ClubRow is a club joined with its organization. Relations are loaded separately.
type ClubRow struct {
	ID              uuid.UUID         `db:"id"`
	CreatedAt       *time.Time        `db:"created_at"`
	OrganizationID  int64             `db:"organization_id"`
	NameTH          string            `db:"name_th"`
	NameEN          *string           `db:"name_en"`
	DescriptionTH   *string           `db:"description_th"`
	DescriptionEN   *string           `db:"description_en"`
	MainRoom        *string           `db:"main_room"`
	LogoURL         *string           `db:"logo_url"`
	BackgroundColor *string           `db:"background_color"`
	AccentColor     *string           `db:"accent_color"`
	House           *ActivityDayHouse `db:"house"`
	MapLocation     *int64            `db:"map_location"`
}

// QueryableClub lists the filterable club fields. Unset means unconstrained.
type QueryableClub struct {
	ID          *uuid.UUID        `json:"id"`
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	MainRoom    *string           `json:"main_room"`
	House       *ActivityDayHouse `json:"house"`
	MapLocation *int64            `json:"map_location"`
}

// UpdatableClub is a partial update across organizations and clubs.
type UpdatableClub struct {
	NameTH          *string           `json:"name_th" validate:"omitempty,min=1"`
	NameEN          *string           `json:"name_en"`
	DescriptionTH   *string           `json:"description_th"`
	DescriptionEN   *string           `json:"description_en"`
	MainRoom        *string           `json:"main_room"`
	LogoURL         *string           `json:"logo_url" validate:"omitempty,url"`
	BackgroundColor *string           `json:"background_color" validate:"omitempty,hexcolor"`
	AccentColor     *string           `json:"accent_color" validate:"omitempty,hexcolor"`
	House           *ActivityDayHouse `json:"house"`
	MapLocation     *int64            `json:"map_location" validate:"omitempty,gte=0"`
}

// OrganizationFields returns the supplied organizations columns.
func (u UpdatableClub) OrganizationFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "name_th", u.NameTH)
	setIf(fields, "name_en", u.NameEN)
	setIf(fields, "description_th", u.DescriptionTH)
	setIf(fields, "description_en", u.DescriptionEN)
	setIf(fields, "main_room", u.MainRoom)
	return fields
}

// ClubFields returns the supplied clubs columns.
func (u UpdatableClub) ClubFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "logo_url", u.LogoURL)
	setIf(fields, "background_color", u.BackgroundColor)
	setIf(fields, "accent_color", u.AccentColor)
	if u.House != nil {
		fields["house"] = string(*u.House)
	}
	if u.MapLocation != nil {
		fields["map_location"] = *u.MapLocation
	}
	return fields
}

// Empty reports whether no field was supplied.
func (u UpdatableClub) Empty() bool {
	return len(u.OrganizationFields()) == 0 && len(u.ClubFields()) == 0
}

func setIf(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}
