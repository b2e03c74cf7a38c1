package pipe

import (
	"time"

	"github.com/google/uuid"
)

// Traceable is implemented by every builder and pipe value in this module.
type Traceable interface {
	// Id returns the identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Finalizer describes a lazy composition that materializes into an
// executable function of shape F without consuming the builder.
type Finalizer[F any] interface {
	Traceable
	// Finalize flattens the accumulated stages into a plain function
	Finalize() F
}
