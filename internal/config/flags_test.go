// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "http://notas.example.com",
		"-request-timeout", "20s",
		"-cache-file", "/tmp/notas.db",
		"-refresh-interval", "2m",
		"-gallery-dir", "/home/user/Pictures",
		"-log-level", "warn",
		"-c", "/etc/notas/config.json",
	})

	require.NotNil(t, cfg)
	assert.Equal(t, "http://notas.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/notas.db", cfg.Storage.CacheFile)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/home/user/Pictures", cfg.App.GalleryDir)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/etc/notas/config.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg := parseFlags(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags([]string{"-config", "/etc/notas/config.json"})
	assert.Equal(t, "/etc/notas/config.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlagIgnored(t *testing.T) {
	// El FlagSet usa ContinueOnError: un flag desconocido no debe abortar.
	assert.NotPanics(t, func() {
		_ = parseFlags([]string{"-definitely-unknown-flag", "x"})
	})
}
