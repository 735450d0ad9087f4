// Package types provides domain models shared across the screener components.
//
// The rule engine in internal/rules is generic and does not depend on this
// package; these types describe the candidate records the hiring example
// evaluates and the identifiers attached to them. ID utilities in ids.go
// import uuid; everything else is dependency-free.
package types

// CandidateID represents a UUIDv7 candidate identifier.
// String alias enables type safety while keeping plain string serialization.
type CandidateID string

// ReportID represents a UUIDv7 screening report identifier.
type ReportID string

// Resource limits enforced when loading candidate rosters.
const (
	// MaxRosterSize bounds the number of candidates screened in one run.
	MaxRosterSize = 10000

	// MaxLanguages bounds the languages listed per candidate.
	MaxLanguages = 64

	// MaxNameLength bounds candidate display names.
	MaxNameLength = 256
)
