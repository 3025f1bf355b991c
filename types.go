package persondex

import (
	"time"

	"github.com/google/uuid"
)

// SortOrder selects the direction for person sorting.
type SortOrder string

const (
	ASC  SortOrder = "ASC"
	DESC SortOrder = "DESC"
)

// ParseSortOrder maps a wire-level sort order to its typed value.
// Anything other than "DESC" (case-insensitive) is treated as ASC.
func ParseSortOrder(s string) SortOrder {
	if s == "DESC" || s == "desc" {
		return DESC
	}
	return ASC
}

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// PersonResponse is the display projection of a stored person.
// Country holds the resolved country name (empty when the reference is
// absent or unresolved) and Age is recomputed on every projection.
type PersonResponse struct {
	PersonID           uuid.UUID  `json:"personID"`
	PersonName         string     `json:"personName"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Age                *int       `json:"age,omitempty"`
	Gender             string     `json:"gender"`
	CountryID          *uuid.UUID `json:"countryID,omitempty"`
	Country            string     `json:"country"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	TIN                string     `json:"tin,omitempty"`
}

// PersonAddRequest carries the fields for inserting a new person.
type PersonAddRequest struct {
	PersonName         string     `json:"personName" validate:"required,max=40"`
	Email              string     `json:"email" validate:"required,max=40,email"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Gender             string     `json:"gender" validate:"required,oneof=Male Female Other"`
	CountryID          *uuid.UUID `json:"countryID" validate:"required"`
	Address            string     `json:"address" validate:"max=200"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	TIN                string     `json:"tin" validate:"omitempty,len=8"`
}

// PersonUpdateRequest carries a full field-by-field overwrite of an
// existing person.
type PersonUpdateRequest struct {
	PersonID           uuid.UUID  `json:"personID" validate:"required"`
	PersonName         string     `json:"personName" validate:"required,max=40"`
	Email              string     `json:"email" validate:"required,max=40,email"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Gender             string     `json:"gender" validate:"required,oneof=Male Female Other"`
	CountryID          *uuid.UUID `json:"countryID" validate:"required"`
	Address            string     `json:"address" validate:"max=200"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	TIN                string     `json:"tin" validate:"omitempty,len=8"`
}

type CountryResponse struct {
	CountryID   uuid.UUID `json:"countryID"`
	CountryName string    `json:"countryName"`
}

type CountryAddRequest struct {
	CountryName string `json:"countryName" validate:"required,max=40"`
}

// Event is published on the signal channel after a successful mutation.
type Event struct {
	Type string `json:"type"`
	Body any    `json:"body,omitempty"`
}

const (
	EventPersonCreated  = "person.created"
	EventPersonUpdated  = "person.updated"
	EventPersonDeleted  = "person.deleted"
	EventCountryCreated = "country.created"
)
