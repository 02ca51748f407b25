// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

// Package config loads the go-notas configuration.
//
// Values are merged from three sources in priority order: environment
// variables, command-line flags, and an optional JSON file whose path comes
// from the first two sources. The merge is performed with mergo; earlier
// sources win for fields they set. [GetClientConfig] produces the validated
// view the client runtime consumes, with defaults for the backend address
// and request timeout.
package config
