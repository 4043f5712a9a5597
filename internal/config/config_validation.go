// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required to run. Built-in defaults fill any field left empty
// by the sources, so these checks act as a backstop.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Share.Vault == "" || cfg.Share.ExpiresIn == "" {
		return ErrInvalidShareConfigs
	}

	if cfg.Op.Binary == "" || cfg.Op.TemplateKind == "" {
		return ErrInvalidOpConfigs
	}

	return nil
}
