package utils

import "github.com/google/uuid"

// UUIDGenerator issues merge run identifiers. Version 7 ids sort by
// creation time, so reports from successive runs order naturally.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 id if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
