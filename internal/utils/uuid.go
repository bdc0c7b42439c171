package utils

import "github.com/google/uuid"

// UUIDGenerator issues session identifiers as UUIDv7 strings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random v4 one when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return NewTraceID()
	}

	return id.String()
}

// NewTraceID returns a random identifier for a request that arrived without
// an X-Trace-ID header.
func NewTraceID() string {
	return uuid.NewString()
}
