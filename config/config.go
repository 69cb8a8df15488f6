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
	"encoding/json"
	"os"
	"strings"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
	"github.com/eclipse-kanto/refresh-coordinator/mqtt"
)

const (
	// default log config
	logFileDefault       = ""
	logLevelDefault      = "INFO"
	logFileSizeDefault   = 2
	logFileCountDefault  = 5
	logFileMaxAgeDefault = 28

	applicationDefault           = "workload"
	rolloutStyleDefault          = "partitioned"
	pauseAfterUnitRefreshDefault = "all"
	determiningWindowDefault     = 3
	versionsFileDefault          = "refresh_versions.toml"
	metadataFileDefault          = ""
)

// Config represents the Refresh Coordinator configuration.
type Config struct {
	Log                   *logger.LogConfig      `json:"log,omitempty"`
	MQTT                  *mqtt.ConnectionConfig `json:"connection,omitempty"`
	Application           string                 `json:"application,omitempty"`
	Unit                  int                    `json:"unit"`
	RolloutStyle          string                 `json:"rolloutStyle,omitempty"`
	PauseAfterUnitRefresh string                 `json:"pauseAfterUnitRefresh,omitempty"`
	DeterminingWindow     int                    `json:"determiningWindow,omitempty"`
	VersionsFile          string                 `json:"versionsFile,omitempty"`
	MetadataFile          string                 `json:"metadataFile,omitempty"`
}

// DefaultConfig creates a new configuration filled with default values for all config properties.
func DefaultConfig() *Config {
	return &Config{
		Log: &logger.LogConfig{
			LogFile:       logFileDefault,
			LogLevel:      logLevelDefault,
			LogFileSize:   logFileSizeDefault,
			LogFileCount:  logFileCountDefault,
			LogFileMaxAge: logFileMaxAgeDefault,
		},
		MQTT:                  mqtt.NewDefaultConfig(),
		Application:           applicationDefault,
		RolloutStyle:          rolloutStyleDefault,
		PauseAfterUnitRefresh: pauseAfterUnitRefreshDefault,
		DeterminingWindow:     determiningWindowDefault,
		VersionsFile:          versionsFileDefault,
		MetadataFile:          metadataFileDefault,
	}
}

// LoadConfig loads a new configuration instance using flags and config file (if set).
func LoadConfig(version string) (*Config, error) {
	configFilePath := ParseConfigFilePath()
	config := DefaultConfig()
	if configFilePath != "" {
		if err := LoadConfigFromFile(configFilePath, config); err != nil {
			return nil, err
		}
	}
	parseFlags(config, version)
	return config, nil
}

// LoadConfigFromFile reads the file contents and unmarshal them into the given config structure.
func LoadConfigFromFile(filePath string, config interface{}) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(file, config); err != nil {
		return err
	}
	return nil
}

// ParseRolloutStyle maps the configured rollout style to its typed value.
func (cfg *Config) ParseRolloutStyle() (types.RolloutStyle, error) {
	switch strings.ToLower(cfg.RolloutStyle) {
	case "partitioned":
		return types.StylePartitioned, nil
	case "independent":
		return types.StyleIndependent, nil
	default:
		return "", &types.ConfigurationError{Option: "rolloutStyle", Value: cfg.RolloutStyle}
	}
}
