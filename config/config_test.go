// Copyright (c) 2025 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Eclipse Public License 2.0 which is available at
// https://www.eclipse.org/legal/epl-2.0, or the Apache License, Version 2.0
// which is available at https://www.apache.org/licenses/LICENSE-2.0.
//
// SPDX-License-Identifier: EPL-2.0 OR Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "workload", cfg.Application)
	assert.Equal(t, "partitioned", cfg.RolloutStyle)
	assert.Equal(t, "all", cfg.PauseAfterUnitRefresh)
	assert.Equal(t, 3, cfg.DeterminingWindow)
	assert.Equal(t, "refresh_versions.toml", cfg.VersionsFile)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	require.NotNil(t, cfg.MQTT)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.BrokerURL)
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"application": "postgresql",
		"unit": 2,
		"rolloutStyle": "independent",
		"pauseAfterUnitRefresh": "first",
		"determiningWindow": 5,
		"connection": {"brokerUrl": "tcp://broker:1883"}
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg := DefaultConfig()
	require.NoError(t, LoadConfigFromFile(configPath, cfg))
	assert.Equal(t, "postgresql", cfg.Application)
	assert.Equal(t, 2, cfg.Unit)
	assert.Equal(t, "independent", cfg.RolloutStyle)
	assert.Equal(t, "first", cfg.PauseAfterUnitRefresh)
	assert.Equal(t, 5, cfg.DeterminingWindow)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTT.BrokerURL)
	// untouched values keep the defaults
	assert.Equal(t, "refresh_versions.toml", cfg.VersionsFile)
}

func TestLoadConfigFromFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"), cfg))

	brokenPath := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(brokenPath, []byte("{"), 0o600))
	assert.Error(t, LoadConfigFromFile(brokenPath, cfg))
}

func TestParseRolloutStyle(t *testing.T) {
	cfg := DefaultConfig()
	style, err := cfg.ParseRolloutStyle()
	require.NoError(t, err)
	assert.Equal(t, types.StylePartitioned, style)

	cfg.RolloutStyle = "Independent"
	style, err = cfg.ParseRolloutStyle()
	require.NoError(t, err)
	assert.Equal(t, types.StyleIndependent, style)

	cfg.RolloutStyle = "rolling"
	_, err = cfg.ParseRolloutStyle()
	configError := &types.ConfigurationError{}
	require.ErrorAs(t, err, &configError)
	assert.Equal(t, "rolloutStyle", configError.Option)
	assert.Equal(t, "rolling", configError.Value)
}
