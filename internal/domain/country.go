package domain

import "github.com/google/uuid"

// Country represents a stored country record.
type Country struct {
	ID   uuid.UUID
	Name string
}
