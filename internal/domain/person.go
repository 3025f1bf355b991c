package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a stored person record. Country carries the
// eagerly resolved country association when CountryID is set; the
// reference stays a weak lookup and may be nil even when the id is
// present.
type Person struct {
	ID                 uuid.UUID
	PersonName         string
	Email              string
	DateOfBirth        *time.Time
	Gender             string
	CountryID          *uuid.UUID
	Country            *Country
	Address            string
	ReceiveNewsLetters bool
	TIN                string
}
