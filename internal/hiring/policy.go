package hiring

import (
	"fmt"
	"strings"

	"github.com/solatis/predicate/internal/core/config"
	"github.com/solatis/predicate/internal/rules"
	"github.com/solatis/predicate/internal/types"
)

// Policy holds the thresholds GoodForInterview is built from. The shape of
// the rule is fixed; only these parameters vary.
type Policy struct {
	MinYearsOfExperience        float64
	ReducedMinYearsOfExperience float64
	MinGithubContributions      int64
	PrimaryLanguages            []string
	PremiumLanguage             string
	PremiumSalaryCap            int64
	StandardSalaryCap           int64
}

// DefaultPolicy returns the stock interview thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MinYearsOfExperience:        10,
		ReducedMinYearsOfExperience: 5,
		MinGithubContributions:      5,
		PrimaryLanguages:            []string{"C++", "Python"},
		PremiumLanguage:             "Rust",
		PremiumSalaryCap:            130000,
		StandardSalaryCap:           90000,
	}
}

// PolicyFromConfig converts loaded configuration into a validated Policy.
func PolicyFromConfig(cfg config.PolicyConfig) (Policy, error) {
	p := Policy{
		MinYearsOfExperience:        cfg.MinYearsOfExperience,
		ReducedMinYearsOfExperience: cfg.ReducedMinYearsOfExperience,
		MinGithubContributions:      cfg.MinGithubContributions,
		PrimaryLanguages:            cfg.PrimaryLanguages,
		PremiumLanguage:             cfg.PremiumLanguage,
		PremiumSalaryCap:            cfg.PremiumSalaryCap,
		StandardSalaryCap:           cfg.StandardSalaryCap,
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Validate rejects thresholds that make the policy meaningless.
func (p Policy) Validate() error {
	switch {
	case p.MinYearsOfExperience < 0 || p.ReducedMinYearsOfExperience < 0:
		return fmt.Errorf("%w: experience thresholds must not be negative", types.ErrInvalidPolicy)
	case p.ReducedMinYearsOfExperience > p.MinYearsOfExperience:
		return fmt.Errorf("%w: reduced experience %g exceeds full experience %g",
			types.ErrInvalidPolicy, p.ReducedMinYearsOfExperience, p.MinYearsOfExperience)
	case p.MinGithubContributions < 0:
		return fmt.Errorf("%w: contributions must not be negative, got %d", types.ErrInvalidPolicy, p.MinGithubContributions)
	case len(p.PrimaryLanguages) == 0:
		return fmt.Errorf("%w: at least one primary language required", types.ErrInvalidPolicy)
	case strings.TrimSpace(p.PremiumLanguage) == "":
		return fmt.Errorf("%w: premium language required", types.ErrInvalidPolicy)
	case p.PremiumSalaryCap <= 0 || p.StandardSalaryCap <= 0:
		return fmt.Errorf("%w: salary caps must be positive", types.ErrInvalidPolicy)
	}
	return nil
}

// GoodForInterview composes the interview rule:
//
//	minimum:    contributions AND any primary language
//	salary:     (premium AND premium cap) OR (NOT premium AND standard cap)
//	experience: full years OR (reduced years AND science degree)
//
// and requires all three.
func GoodForInterview(p Policy) rules.Node[types.Candidate] {
	primary := make([]rules.Rule[types.Candidate], 0, len(p.PrimaryLanguages))
	for _, lang := range p.PrimaryLanguages {
		primary = append(primary, WorkedWithLanguage{Language: lang})
	}

	minimum := rules.Wrap[types.Candidate](MinimumGithubContributions{MinContributions: p.MinGithubContributions}).
		And(rules.Any(primary...))

	premium := WorkedWithLanguage{Language: p.PremiumLanguage}
	salary := rules.And[types.Candidate](premium, MaxDesiredSalary{MaxSalary: p.PremiumSalaryCap}).
		Or(rules.Not[types.Candidate](premium).And(MaxDesiredSalary{MaxSalary: p.StandardSalaryCap}))

	experience := rules.Wrap[types.Candidate](MinimumYearsOfExperience{MinYears: p.MinYearsOfExperience}).
		Or(rules.And[types.Candidate](MinimumYearsOfExperience{MinYears: p.ReducedMinYearsOfExperience}, HasScienceDegree{}))

	return minimum.And(salary).And(experience)
}
