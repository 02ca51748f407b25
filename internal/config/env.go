// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The caarlos0/env tags on
// [StructuredConfig] decide which variable feeds which field.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
