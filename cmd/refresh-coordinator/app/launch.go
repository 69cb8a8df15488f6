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

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
	"github.com/eclipse-kanto/refresh-coordinator/refreshm/fleet"
)

// Launch is the entry point for launching of the Refresh Coordinator instance
func Launch(coordinator api.Coordinator, platformClient api.PlatformClient, operatorClient api.OperatorClient, observer fleet.PlatformObserver) error {
	agent := fleet.NewCoordinationAgent(coordinator, platformClient, operatorClient, observer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := agent.Start(ctx); err != nil {
		logger.ErrorErr(err, "failed to start Refresh Coordinator")
		return err
	}
	logger.Debug("successfully started Refresh Coordinator")

	var signalChan = make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-signalChan
	cancel()
	logger.Debug("received OS SIGNAL >> %d ! Will exit!", sig)

	if err := agent.Stop(); err != nil {
		logger.WarnErr(err, "error stopping Refresh Coordinator")
	}
	return nil
}
