package types

import (
	"fmt"

	"github.com/google/uuid"
)

// NewCandidateID generates a UUIDv7 candidate identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewCandidateID() CandidateID {
	return CandidateID(uuid.Must(uuid.NewV7()).String())
}

// NewReportID generates a UUIDv7 report identifier.
// Time-ordered IDs let reports from one run sort in screening order.
func NewReportID() ReportID {
	return ReportID(uuid.Must(uuid.NewV7()).String())
}

// ParseCandidateID validates and converts a string to CandidateID.
func ParseCandidateID(s string) (CandidateID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("%w: candidate %q: %w", ErrInvalidID, s, err)
	}
	return CandidateID(s), nil
}
