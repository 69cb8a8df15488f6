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

package main

import (
	"log"
	"os"
	"runtime"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/cmd/refresh-coordinator/app"
	"github.com/eclipse-kanto/refresh-coordinator/config"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
	"github.com/eclipse-kanto/refresh-coordinator/mqtt"
	"github.com/eclipse-kanto/refresh-coordinator/refreshm/fleet"
	"github.com/eclipse-kanto/refresh-coordinator/refreshm/progression"
)

var (
	version = "development"
)

func main() {
	cfg, err := config.LoadConfig(version)
	if err != nil {
		log.Fatal("failed to load local configuration: ", err)
	}

	loggerOut, err := logger.SetupLogger(cfg.Log, "[refresh-coordinator]")
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer loggerOut.Close()

	style, err := cfg.ParseRolloutStyle()
	if err == nil {
		var platformClient api.PlatformClient
		platformClient, err = mqtt.NewPlatformClient(cfg.Application, cfg.MQTT)
		if err == nil {
			var operatorClient api.OperatorClient
			operatorClient, err = mqtt.NewOperatorClient(cfg.Application, platformClient)
			if err == nil {
				engine := progression.NewEngine(cfg.Application, style, cfg.DeterminingWindow, nil, nil, loadWorkloadValidator(cfg))
				engine.SeedPolicy(cfg.PauseAfterUnitRefresh)
				platform := fleet.NewMQTTPlatform(style, platformClient)
				coordinator := fleet.NewCoordinator(cfg.Application, cfg.Unit, engine, platform)
				err = app.Launch(coordinator, platformClient, operatorClient, platform)
			}
		}
	}

	if err != nil {
		logger.ErrorErr(err, "failed to init Refresh Coordinator")
		loggerOut.Close()
		os.Exit(1)
	}
}

func loadWorkloadValidator(cfg *config.Config) api.WorkloadValidator {
	validator := &progression.PinnedWorkloadValidator{Architecture: runtime.GOARCH}
	if cfg.VersionsFile != "" {
		pinned, err := config.LoadPinnedVersions(cfg.VersionsFile)
		if err != nil {
			logger.WarnErr(err, "pinned versions not loaded, the workload gate will not enforce them")
		} else {
			validator.WorkloadVersion = pinned.Workload
			validator.Revisions = pinned.Revisions
			if _, ok := pinned.RevisionFor(runtime.GOARCH); !ok {
				logger.Warn("no workload revision is pinned for architecture %s", runtime.GOARCH)
			}
		}
	}
	if cfg.MetadataFile != "" {
		pin, err := config.LoadWorkloadContainerPin(cfg.MetadataFile)
		if err != nil {
			logger.WarnErr(err, "workload container pin not loaded, the workload gate will not enforce it")
		} else {
			validator.WorkloadContainer = pin
		}
	}
	return validator
}
