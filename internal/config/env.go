// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the unprefixed variable names used by earlier deployments
// of the guide backend.
type legacyEnv struct {
	SecretKey                string `env:"SECRET_KEY"`
	Algorithm                string `env:"ALGORITHM"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	GoogleMapsAPIKey         string `env:"GOOGLE_MAPS_API_KEY"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       legacy.SecretKey,
			TokenAlgorithm:     legacy.Algorithm,
			TokenExpireMinutes: legacy.AccessTokenExpireMinutes,
		},
		Places: Places{
			APIKey: legacy.GoogleMapsAPIKey,
		},
	}, nil
}
