// internal/types/candidate.go
package types

import (
	"fmt"
	"slices"
)

/*
 * Candidate records.
 *
 * Candidate is the value the hiring rules evaluate. It is a plain record:
 * rules read it, nothing in the engine writes it. Roster is the on-disk
 * shape of a list of candidates (see internal/hiring for parsing).
 *
 * Validation happens once at load time so rules can assume sane values
 * (non-negative figures, bounded language lists) without re-checking.
 */

// Candidate is a job applicant evaluated by the hiring rules.
type Candidate struct {
	ID                  CandidateID `yaml:"id,omitempty"`
	Name                string      `yaml:"name"`
	YearsOfExperience   float64     `yaml:"years_of_experience"`
	GithubContributions int64       `yaml:"github_contributions"`
	LanguagesWorkedWith []string    `yaml:"languages_worked_with"`
	DesiredSalary       int64       `yaml:"desired_salary"`
	ScienceDegree       bool        `yaml:"science_degree"`
}

// Roster is a list of candidates to screen.
type Roster struct {
	Candidates []Candidate `yaml:"candidates"`
}

// WorkedWith reports whether language appears in the candidate's languages.
// Comparison is exact; "Go" and "go" are different languages.
func (c Candidate) WorkedWith(language string) bool {
	return slices.Contains(c.LanguagesWorkedWith, language)
}

// Validate checks candidate fields against resource limits.
func (c Candidate) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if len(c.Name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(c.Name))
	}
	if c.YearsOfExperience < 0 || c.GithubContributions < 0 || c.DesiredSalary < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeValue, c.Name)
	}
	if len(c.LanguagesWorkedWith) > MaxLanguages {
		return fmt.Errorf("%w: %s lists %d", ErrTooManyLanguages, c.Name, len(c.LanguagesWorkedWith))
	}
	return nil
}
