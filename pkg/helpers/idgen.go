package helpers

import "github.com/google/uuid"

// UUIDGenerator issues random UUIDv4 identifiers for new entities.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}
