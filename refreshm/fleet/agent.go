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

package fleet

import (
	"context"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
)

// PlatformObserver consumes the lifecycle event stream for platform state caching.
type PlatformObserver interface {
	Observe(sessionID string, event *types.LifecycleEvent)
}

type coordinationAgent struct {
	ctx            context.Context
	coordinator    api.Coordinator
	platformClient api.PlatformClient
	operatorClient api.OperatorClient
	observer       PlatformObserver
}

// NewCoordinationAgent instantiates a new coordination agent bridging the
// MQTT clients and the refresh coordinator. The observer may be nil.
func NewCoordinationAgent(coordinator api.Coordinator, platformClient api.PlatformClient, operatorClient api.OperatorClient, observer PlatformObserver) api.CoordinationAgent {
	return &coordinationAgent{
		coordinator:    coordinator,
		platformClient: platformClient,
		operatorClient: operatorClient,
		observer:       observer,
	}
}

// Start connects the clients and starts watching platform events.
func (agent *coordinationAgent) Start(ctx context.Context) error {
	agent.ctx = ctx
	agent.coordinator.SetCallback(agent)
	if err := agent.platformClient.Connect(agent); err != nil {
		return err
	}
	if err := agent.operatorClient.Subscribe(agent); err != nil {
		agent.platformClient.Disconnect()
		return err
	}
	agent.coordinator.WatchEvents(ctx)
	return nil
}

// Stop disconnects the clients and disposes the coordinator.
func (agent *coordinationAgent) Stop() error {
	if err := agent.operatorClient.Unsubscribe(); err != nil {
		logger.WarnErr(err, "[%s] error unsubscribing from operator commands", agent.coordinator.Name())
	}
	agent.platformClient.Disconnect()
	return agent.coordinator.Dispose()
}

// HandleLifecycleEvent handles a raw lifecycle event received from the platform.
func (agent *coordinationAgent) HandleLifecycleEvent(bytes []byte) error {
	sessionID, event, err := types.FromLifecycleEventBytes(bytes)
	if err != nil {
		return err
	}
	if agent.observer != nil {
		agent.observer.Observe(sessionID, event)
	}
	return agent.coordinator.HandleEvent(agent.ctx, event)
}

// HandlePreRefreshCheck handles a raw pre-refresh-check operator request.
func (agent *coordinationAgent) HandlePreRefreshCheck(bytes []byte) error {
	envelope, err := types.FromEnvelope(bytes, nil)
	if err != nil {
		return err
	}
	sessionID := envelope.SessionID
	result := &types.CommandResult{}
	if err := agent.coordinator.StartPreRefreshChecks(agent.ctx); err != nil {
		result.Error = err.Error()
	} else {
		result.Result = "pre-refresh checks passed"
	}
	return agent.publishCommandResult(sessionID, result)
}

// HandleResumeRefresh handles a raw resume-refresh operator request.
func (agent *coordinationAgent) HandleResumeRefresh(bytes []byte) error {
	sessionID, request, err := types.FromResumeRequestBytes(bytes)
	if err != nil {
		return err
	}
	result := &types.CommandResult{}
	message, err := agent.coordinator.Resume(agent.ctx, request.CheckHealthOrDefault())
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Result = message
	}
	return agent.publishCommandResult(sessionID, result)
}

// HandleForceRefreshStart handles a raw force-refresh-start operator request.
func (agent *coordinationAgent) HandleForceRefreshStart(bytes []byte) error {
	sessionID, request, err := types.FromForceRequestBytes(bytes)
	if err != nil {
		return err
	}
	result := &types.CommandResult{}
	message, err := agent.coordinator.ForceAdvance(agent.ctx, request.Unit, request.Flags)
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Result = message
	}
	return agent.publishCommandResult(sessionID, result)
}

func (agent *coordinationAgent) publishCommandResult(sessionID string, result *types.CommandResult) error {
	bytes, err := types.ToCommandResultBytes(sessionID, result)
	if err != nil {
		return err
	}
	return agent.operatorClient.PublishCommandResult(bytes)
}

// HandleRefreshStatusEvent publishes the refresh status on progression state transitions.
func (agent *coordinationAgent) HandleRefreshStatusEvent(application string, sessionID string, status *types.RefreshStatus) {
	bytes, err := types.ToRefreshStatusBytes(sessionID, status)
	if err != nil {
		logger.ErrorErr(err, "[%s] cannot marshal refresh status", application)
		return
	}
	if err := agent.platformClient.PublishRefreshStatus(bytes); err != nil {
		logger.ErrorErr(err, "[%s] cannot publish refresh status", application)
	}
}
