// Package config provides configuration management for the screener CLI.
package config

// ScreenerConfig holds CLI-level settings and the hiring policy parameters.
type ScreenerConfig struct {
	LogLevel   string
	LogFormat  string
	Output     string
	RosterPath string
	Policy     PolicyConfig
}

// PolicyConfig holds the tunable thresholds of the interview rule. The rule
// structure itself is built in code and is not configurable.
type PolicyConfig struct {
	MinYearsOfExperience        float64
	ReducedMinYearsOfExperience float64
	MinGithubContributions      int64
	PrimaryLanguages            []string
	PremiumLanguage             string
	PremiumSalaryCap            int64
	StandardSalaryCap           int64
}

// Output formats accepted by the screen command.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// DefaultConfig returns configuration with default values.
func DefaultConfig() *ScreenerConfig {
	return &ScreenerConfig{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    OutputText,
		Policy: PolicyConfig{
			MinYearsOfExperience:        10,
			ReducedMinYearsOfExperience: 5,
			MinGithubContributions:      5,
			PrimaryLanguages:            []string{"C++", "Python"},
			PremiumLanguage:             "Rust",
			PremiumSalaryCap:            130000,
			StandardSalaryCap:           90000,
		},
	}
}
