package types

import "errors"

// Sentinel errors for roster loading, candidate validation and policy checks.
var (
	// ErrEmptyRoster indicates a roster with no candidates.
	ErrEmptyRoster = errors.New("roster has no candidates")

	// ErrRosterTooLarge indicates a roster exceeding MaxRosterSize.
	ErrRosterTooLarge = errors.New("roster exceeds maximum size")

	// ErrDuplicateCandidate indicates two candidates share an ID.
	ErrDuplicateCandidate = errors.New("duplicate candidate id")

	// ErrMissingName indicates a candidate without a name.
	ErrMissingName = errors.New("candidate name required")

	// ErrNameTooLong indicates a candidate name exceeding MaxNameLength.
	ErrNameTooLong = errors.New("candidate name too long")

	// ErrNegativeValue indicates a negative experience, contribution or salary figure.
	ErrNegativeValue = errors.New("candidate value must not be negative")

	// ErrTooManyLanguages indicates a candidate listing more than MaxLanguages.
	ErrTooManyLanguages = errors.New("candidate lists too many languages")

	// ErrInvalidPolicy indicates hiring policy thresholds that cannot be satisfied consistently.
	ErrInvalidPolicy = errors.New("invalid hiring policy")

	// ErrInvalidID indicates a malformed candidate or report identifier.
	ErrInvalidID = errors.New("invalid identifier")
)
