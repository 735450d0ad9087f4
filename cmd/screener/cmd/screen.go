package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/solatis/predicate/internal/core/config"
	"github.com/solatis/predicate/internal/hiring"
	"github.com/solatis/predicate/internal/log"
	"github.com/solatis/predicate/internal/types"
	"github.com/solatis/predicate/samples"
)

func newScreenCmd(ra *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen [roster]",
		Short: "Screen a candidate roster against the interview policy",
		Long: `Screen evaluates every candidate in a YAML roster against the interview
policy and reports, for each rejected candidate, the part of the policy
they did not meet. Without a roster argument or configured roster path the
bundled sample roster is screened.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, ra, args)
		},
	}

	cmd.Flags().String("output", config.OutputText,
		fmt.Sprintf("Output format, one of: %s", []string{config.OutputText, config.OutputYAML}))

	return cmd
}

func runScreen(cmd *cobra.Command, ra *RootArgs, args []string) error {
	ctx := cmd.Context()
	cfg := ra.cfg

	path := cfg.RosterPath
	if len(args) == 1 {
		path = args[0]
	}

	var (
		roster types.Roster
		err    error
	)
	if path == "" {
		log.FromContext(ctx).DebugContext(ctx, "screening bundled sample roster")
		roster, err = hiring.ParseRoster(samples.Roster)
	} else {
		roster, err = hiring.LoadRoster(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	reports := hiring.Screen(ctx, hiring.GoodForInterview(ra.policy), roster)

	if cfg.Output == config.OutputYAML {
		return writeYAML(cmd.OutOrStdout(), reports)
	}
	return writeText(cmd.OutOrStdout(), reports)
}

func writeText(w io.Writer, reports []hiring.Report) error {
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "Candidate %s, is good for interview: %s\n", r.Name, yesOrNo(r.GoodForInterview)); err != nil {
			return err
		}
		if r.Unmet == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "Candidate %s is not good for interview because %s\n", r.Name, r.Unmet); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, reports []hiring.Report) error {
	out, err := yaml.Marshal(map[string][]hiring.Report{"reports": reports})
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func yesOrNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
