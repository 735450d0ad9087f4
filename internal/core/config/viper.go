package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/solatis/predicate/internal/log"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence. Flags are
// applied by the caller, which then calls ValidateConfig; policy thresholds
// are validated by hiring.Policy.
func LoadConfig(configPath string) (*ScreenerConfig, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.format", def.LogFormat)
	v.SetDefault("screen.output", def.Output)
	v.SetDefault("screen.roster", def.RosterPath)
	v.SetDefault("policy.min_years_of_experience", def.Policy.MinYearsOfExperience)
	v.SetDefault("policy.reduced_min_years_of_experience", def.Policy.ReducedMinYearsOfExperience)
	v.SetDefault("policy.min_github_contributions", def.Policy.MinGithubContributions)
	v.SetDefault("policy.primary_languages", def.Policy.PrimaryLanguages)
	v.SetDefault("policy.premium_language", def.Policy.PremiumLanguage)
	v.SetDefault("policy.premium_salary_cap", def.Policy.PremiumSalaryCap)
	v.SetDefault("policy.standard_salary_cap", def.Policy.StandardSalaryCap)

	// SCREENER_POLICY_PRIMARY_LANGUAGES takes a space-separated list.
	v.SetEnvPrefix("SCREENER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := validateNoRulesInConfig(v); err != nil {
		return nil, err
	}

	cfg := &ScreenerConfig{
		LogLevel:   v.GetString("log.level"),
		LogFormat:  v.GetString("log.format"),
		Output:     v.GetString("screen.output"),
		RosterPath: v.GetString("screen.roster"),
		Policy: PolicyConfig{
			MinYearsOfExperience:        v.GetFloat64("policy.min_years_of_experience"),
			ReducedMinYearsOfExperience: v.GetFloat64("policy.reduced_min_years_of_experience"),
			MinGithubContributions:      v.GetInt64("policy.min_github_contributions"),
			PrimaryLanguages:            v.GetStringSlice("policy.primary_languages"),
			PremiumLanguage:             v.GetString("policy.premium_language"),
			PremiumSalaryCap:            v.GetInt64("policy.premium_salary_cap"),
			StandardSalaryCap:           v.GetInt64("policy.standard_salary_cap"),
		},
	}

	return cfg, nil
}

// ValidateConfig checks log settings and output format.
func ValidateConfig(cfg *ScreenerConfig) error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := log.ParseFormat(cfg.LogFormat); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	if cfg.Output != OutputText && cfg.Output != OutputYAML {
		return fmt.Errorf("screen.output must be %q or %q, got %q", OutputText, OutputYAML, cfg.Output)
	}
	return nil
}

// validateNoRulesInConfig enforces that rules are composed in code. Config
// files tune thresholds only.
func validateNoRulesInConfig(v *viper.Viper) error {
	if v.IsSet("rules") || v.IsSet("policy.rules") {
		return fmt.Errorf("rules not allowed in config files (rules are built in code; configure policy thresholds instead)")
	}
	return nil
}
