package utils

import "github.com/google/uuid"

// UUIDGenerator issues note IDs. IDs are UUIDv7 so they sort by creation
// time; when the time-ordered generator fails a random v4 is returned.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new note ID.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
