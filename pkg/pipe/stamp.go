package pipe

import (
	"time"

	"github.com/google/uuid"
)

// Stamp identifies one builder or pipe value. Every derivation carries a
// fresh stamp: descendants are distinct objects even when they behave
// identically.
type Stamp struct {
	id        uuid.UUID
	createdAt time.Time
}

func NewStamp() Stamp {
	return Stamp{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (s Stamp) Id() uuid.UUID {
	return s.id
}

func (s Stamp) CreatedAt() time.Time {
	return s.createdAt
}
