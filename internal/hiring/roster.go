package hiring

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/solatis/predicate/internal/types"
)

// ParseRoster decodes a YAML roster, validates every candidate and assigns
// an ID to candidates without one. Unknown keys are rejected.
func ParseRoster(data []byte) (types.Roster, error) {
	var roster types.Roster
	if err := yaml.UnmarshalWithOptions(data, &roster, yaml.Strict()); err != nil {
		return types.Roster{}, fmt.Errorf("failed to decode roster: %w", err)
	}

	if err := prepareRoster(&roster); err != nil {
		return types.Roster{}, err
	}

	return roster, nil
}

// LoadRoster reads and parses the roster at path.
func LoadRoster(path string) (types.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Roster{}, fmt.Errorf("failed to read roster: %w", err)
	}

	roster, err := ParseRoster(data)
	if err != nil {
		return types.Roster{}, fmt.Errorf("%s: %w", path, err)
	}

	return roster, nil
}

func prepareRoster(roster *types.Roster) error {
	switch n := len(roster.Candidates); {
	case n == 0:
		return types.ErrEmptyRoster
	case n > types.MaxRosterSize:
		return fmt.Errorf("%w: %d candidates (max %d)", types.ErrRosterTooLarge, n, types.MaxRosterSize)
	}

	seen := make(map[types.CandidateID]struct{}, len(roster.Candidates))
	for i := range roster.Candidates {
		c := &roster.Candidates[i]

		if err := c.Validate(); err != nil {
			return fmt.Errorf("candidate %d: %w", i, err)
		}

		if c.ID == "" {
			c.ID = types.NewCandidateID()
		} else if _, err := types.ParseCandidateID(string(c.ID)); err != nil {
			return fmt.Errorf("candidate %d: %w", i, err)
		}

		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %s", types.ErrDuplicateCandidate, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}
