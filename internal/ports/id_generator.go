package ports

import "github.com/google/uuid"

// IDGenerator produces record identifiers.
type IDGenerator interface {
	NewID() uuid.UUID
}
