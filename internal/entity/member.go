package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a family member for data transfer between layers.
type Member struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Relation  *string    `json:"relation,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
