// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// SupportedTokenAlgorithms lists the accepted values of App.TokenAlgorithm.
var SupportedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrConfiguration] otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenAlgorithm == "" {
		return ErrMissingTokenAlgorithm
	}

	if !slices.Contains(SupportedTokenAlgorithms, cfg.App.TokenAlgorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedTokenAlgorithm, cfg.App.TokenAlgorithm)
	}

	if cfg.App.TokenExpireMinutes < 0 || cfg.App.PasswordHashCost < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
