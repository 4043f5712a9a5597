// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Default values applied after all configuration sources are merged.
const (
	// DefaultVault is the vault used when none is configured.
	DefaultVault = "Shared Notes"

	// DefaultExpiresIn is the share-link lifetime passed to the 1Password
	// CLI when none is configured. The format is opaque to this program.
	DefaultExpiresIn = "7d"

	// DefaultOpBinary is the 1Password CLI executable name resolved via
	// PATH when no explicit path is configured.
	DefaultOpBinary = "op"

	// DefaultTemplateKind is the item template kind fetched from the CLI.
	DefaultTemplateKind = "Secure Note"
)

// StructuredConfig is the top-level configuration container for the
// note-share CLI. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Share holds the sharing parameters: target vault, link expiration,
	// and recipient restrictions.
	Share Share `envPrefix:"NOTESHARE_"`

	// Op holds settings for the external 1Password CLI invocation.
	Op Op `envPrefix:"NOTESHARE_OP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the NOTESHARE_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"NOTESHARE_CONFIG"`
}

// Share groups the parameters of a single note-sharing run.
type Share struct {
	// Vault is the name of the 1Password vault the note is stored in.
	// The vault is created when it does not exist yet.
	// Env: NOTESHARE_VAULT
	Vault string `env:"VAULT"`

	// ExpiresIn is the share-link lifetime (e.g. "7d", "24h"). The value
	// is forwarded to the 1Password CLI verbatim; the CLI is the sole
	// validator of its format.
	// Env: NOTESHARE_EXPIRES_IN
	ExpiresIn string `env:"EXPIRES_IN"`

	// Emails restricts the share link to the given recipient addresses,
	// in order. Empty means anyone with the link can view the note.
	// Env: NOTESHARE_EMAILS (space-delimited)
	Emails []string `env:"EMAILS" envSeparator:" "`
}

// Op holds settings for invoking the external 1Password CLI.
type Op struct {
	// Binary is the path or name of the 1Password CLI executable.
	// Env: NOTESHARE_OP_BINARY
	Binary string `env:"BINARY"`

	// TemplateKind is the item template kind fetched before publishing
	// (e.g. "Secure Note").
	// Env: NOTESHARE_OP_TEMPLATE_KIND
	TemplateKind string `env:"TEMPLATE_KIND"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
