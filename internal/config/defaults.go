package config

import (
	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These defaults are the base layer that config files, environment
// variables, and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		// Identity: empty means resolve interactively at publish time.
		Identity: "",

		// Repository: the canonical showcase repository name.
		Repository: constants.DefaultRepoName,

		// Output: styled terminal text. Scripts override with "json".
		Output: "text",

		// CreateTimeout: enough for a typical presentation tree push.
		CreateTimeout: constants.RepoCreateTimeout,
	}
}
