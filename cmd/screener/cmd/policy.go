package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solatis/predicate/internal/hiring"
)

func newPolicyCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the interview rule built from the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), hiring.GoodForInterview(ra.policy))
			return err
		},
	}
}
