package hiring

import (
	"context"
	"log/slog"

	"github.com/solatis/predicate/internal/log"
	"github.com/solatis/predicate/internal/rules"
	"github.com/solatis/predicate/internal/types"
)

// Report is the screening outcome for one candidate. Unmet renders the part
// of the rule the candidate failed and is empty when the candidate passed.
type Report struct {
	ID               types.ReportID    `yaml:"id"`
	CandidateID      types.CandidateID `yaml:"candidate_id"`
	Name             string            `yaml:"name"`
	GoodForInterview bool              `yaml:"good_for_interview"`
	Unmet            string            `yaml:"unmet,omitempty"`
}

// Screen evaluates rule against every candidate in roster order.
func Screen(ctx context.Context, rule rules.Rule[types.Candidate], roster types.Roster) []Report {
	logger := log.FromContext(ctx)

	reports := make([]Report, 0, len(roster.Candidates))
	for _, c := range roster.Candidates {
		result := rules.Check(rule, c)

		report := Report{
			ID:               types.NewReportID(),
			CandidateID:      c.ID,
			Name:             c.Name,
			GoodForInterview: result.Satisfied,
			Unmet:            result.Explain(),
		}
		reports = append(reports, report)

		logger.DebugContext(ctx, "screened candidate",
			slog.String("candidate_id", string(c.ID)),
			slog.String("name", c.Name),
			slog.Bool("good_for_interview", report.GoodForInterview),
			slog.String("unmet", report.Unmet))
	}

	return reports
}
