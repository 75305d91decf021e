// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the optional dotenv files into the process environment, then
// resolves the EnvSpec. Variables already set in the environment win.
func Load(files ...string) (*EnvSpec, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}
