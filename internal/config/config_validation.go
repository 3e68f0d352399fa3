// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"unicode"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// host invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.ContainsFunc(cfg.App.DeploymentID, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("%,/\\", r)
	}) {
		return fmt.Errorf("%w: deployment id %q", ErrInvalidAppConfigs, cfg.App.DeploymentID)
	}

	if cfg.App.ResourceDir == "" {
		return fmt.Errorf("%w: empty resource directory", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress != "" && cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
