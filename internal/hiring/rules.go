// Package hiring composes candidate-screening rules on top of the rules engine.
package hiring

import (
	"fmt"

	"github.com/solatis/predicate/internal/rules"
	"github.com/solatis/predicate/internal/types"
)

// MinimumYearsOfExperience holds when the candidate has at least MinYears of experience.
type MinimumYearsOfExperience struct {
	MinYears float64
}

// IsSatisfiedBy implements rules.Rule.
func (r MinimumYearsOfExperience) IsSatisfiedBy(c types.Candidate) bool {
	return rules.Compare(rules.OpGte, c.YearsOfExperience, r.MinYears)
}

// String renders the requirement as it reads in an explanation.
func (r MinimumYearsOfExperience) String() string {
	return fmt.Sprintf("at least %g years of experience", r.MinYears)
}

// MinimumGithubContributions holds when the candidate has at least MinContributions.
type MinimumGithubContributions struct {
	MinContributions int64
}

// IsSatisfiedBy implements rules.Rule.
func (r MinimumGithubContributions) IsSatisfiedBy(c types.Candidate) bool {
	return rules.Compare(rules.OpGte, c.GithubContributions, r.MinContributions)
}

// String renders the requirement as it reads in an explanation.
func (r MinimumGithubContributions) String() string {
	return fmt.Sprintf("at least %d GitHub contributions", r.MinContributions)
}

// WorkedWithLanguage holds when Language is among the candidate's languages.
type WorkedWithLanguage struct {
	Language string
}

// IsSatisfiedBy implements rules.Rule.
func (r WorkedWithLanguage) IsSatisfiedBy(c types.Candidate) bool {
	return c.WorkedWith(r.Language)
}

// String renders the requirement as it reads in an explanation.
func (r WorkedWithLanguage) String() string {
	return "worked with " + r.Language
}

// MaxDesiredSalary holds when the candidate asks for no more than MaxSalary.
type MaxDesiredSalary struct {
	MaxSalary int64
}

// IsSatisfiedBy implements rules.Rule.
func (r MaxDesiredSalary) IsSatisfiedBy(c types.Candidate) bool {
	return rules.Compare(rules.OpLte, c.DesiredSalary, r.MaxSalary)
}

// String renders the requirement as it reads in an explanation.
func (r MaxDesiredSalary) String() string {
	return fmt.Sprintf("desired salary at most %d", r.MaxSalary)
}

// HasScienceDegree holds for candidates with a science degree.
type HasScienceDegree struct{}

// IsSatisfiedBy implements rules.Rule.
func (HasScienceDegree) IsSatisfiedBy(c types.Candidate) bool {
	return c.ScienceDegree
}

// String renders the requirement as it reads in an explanation.
func (HasScienceDegree) String() string {
	return "has a science degree"
}
