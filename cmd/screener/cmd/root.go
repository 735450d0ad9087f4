package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/solatis/predicate/internal/core/config"
	"github.com/solatis/predicate/internal/hiring"
	"github.com/solatis/predicate/internal/log"
)

const (
	cmdName = "screener"
	cmdDesc = "Screen job candidates against composable interview rules"
)

// RootArgs holds persistent flags and the configuration resolved from them.
type RootArgs struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string

	cfg    *config.ScreenerConfig
	policy hiring.Policy
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&ra.ConfigFile, "config", "", "config file path")
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

// NewRootCmd builds the screener command tree.
func NewRootCmd() *cobra.Command {
	args := &RootArgs{}

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		SilenceUsage:      true,
		PersistentPreRunE: setup(args),
	}

	args.AddFlags(cmd)
	cmd.AddCommand(newScreenCmd(args), newPolicyCmd(args))

	return cmd
}

// setup loads configuration, applies flag overrides, validates the result
// and installs the logger. Validation runs only after overrides so that a
// flag can replace a bad environment or file value.
func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(ra.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = ra.LogLevel
		}
		if flags.Changed("log-format") {
			cfg.LogFormat = ra.LogFormat
		}
		if flags.Changed("output") {
			cfg.Output, _ = flags.GetString("output")
		}
		if err := config.ValidateConfig(cfg); err != nil {
			return err
		}

		policy, err := hiring.PolicyFromConfig(cfg.Policy)
		if err != nil {
			return fmt.Errorf("failed to build policy: %w", err)
		}

		logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}

		slog.SetDefault(logger)
		cmd.SetContext(log.IntoContext(cmd.Context(), logger))

		ra.cfg = cfg
		ra.policy = policy
		return nil
	}
}

func Execute() error {
	return NewRootCmd().Execute()
}
