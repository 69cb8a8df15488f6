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
	"sync"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
	"github.com/eclipse-kanto/refresh-coordinator/refreshm/progression"
)

type coordinator struct {
	lock sync.Mutex

	name     string
	unit     int
	engine   *progression.Engine
	platform api.Platform
	callback api.CoordinatorCallback
	disposed bool
}

// NewCoordinator creates the refresh coordinator for one application. The
// engine decides, the platform executes, the coordinator is the glue between
// them and serializes all access.
func NewCoordinator(name string, unit int, engine *progression.Engine, platform api.Platform) api.Coordinator {
	return &coordinator{
		name:     name,
		unit:     unit,
		engine:   engine,
		platform: platform,
	}
}

// Name returns the name of the coordinated application.
func (coord *coordinator) Name() string {
	return coord.name
}

// SetCallback sets the callback for refresh status transitions.
func (coord *coordinator) SetCallback(callback api.CoordinatorCallback) {
	coord.callback = callback
}

// WatchEvents feeds the initial platform state into the engine, the rest
// arrives through HandleEvent.
func (coord *coordinator) WatchEvents(ctx context.Context) {
	coord.lock.Lock()
	defer coord.lock.Unlock()

	leader, err := coord.platform.IsLeader(ctx, coord.unit)
	if err != nil {
		logger.WarnErr(err, "[%s] cannot determine leadership of unit %d", coord.name, coord.unit)
	} else {
		coord.dispatch(ctx, &types.LifecycleEvent{Type: types.EventLeadershipChanged, Leader: &leader})
	}
	version, err := coord.platform.CurrentVersion(ctx, coord.unit)
	if err != nil {
		logger.WarnErr(err, "[%s] cannot read the current version of unit %d", coord.name, coord.unit)
		return
	}
	coord.dispatch(ctx, &types.LifecycleEvent{Type: types.EventVersionReported, Unit: coord.unit, Version: version})
}

// HandleEvent feeds one lifecycle event into the progression engine and
// executes the resulting adapter commands.
func (coord *coordinator) HandleEvent(ctx context.Context, event *types.LifecycleEvent) error {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	if coord.disposed {
		return types.ErrNoRefreshInProgress
	}
	coord.dispatch(ctx, event)
	return nil
}

func (coord *coordinator) dispatch(ctx context.Context, event *types.LifecycleEvent) {
	before := coord.engine.State()
	commands := coord.engine.HandleEvent(ctx, event)
	coord.execute(ctx, commands)
	coord.notifyOnTransition(before)
}

func (coord *coordinator) execute(ctx context.Context, commands []types.AdapterCommand) {
	for _, command := range commands {
		switch command.Type {
		case types.CommandSetCoordinationPoint:
			// the engine emits point writes on the leader only, verify against
			// the platform to close the lost-leadership window
			leader, err := coord.platform.IsLeader(ctx, coord.unit)
			if err != nil {
				logger.ErrorErr(err, "[%s] cannot verify leadership before writing coordination point %d", coord.name, command.Point)
				continue
			}
			if !leader {
				logger.Warn("[%s] leadership lost, skipping coordination point write %d", coord.name, command.Point)
				continue
			}
			if err := coord.platform.SetCoordinationPoint(ctx, command.Point); err != nil {
				logger.ErrorErr(err, "[%s] cannot write coordination point %d", coord.name, command.Point)
			}
		case types.CommandAdvance:
			if err := coord.platform.Advance(ctx, command.Unit); err != nil {
				logger.ErrorErr(err, "[%s] cannot advance unit %d", coord.name, command.Unit)
			}
		}
	}
}

func (coord *coordinator) notifyOnTransition(before types.RefreshState) {
	after := coord.engine.State()
	if coord.callback == nil {
		return
	}
	if before == after {
		return
	}
	logger.Info("[%s] refresh state changed %s -> %s", coord.name, before, after)
	coord.callback.HandleRefreshStatusEvent(coord.name, coord.engine.SessionID(), coord.engine.Status())
}

// RefreshStatus reports the current progression state.
func (coord *coordinator) RefreshStatus() *types.RefreshStatus {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	return coord.engine.Status()
}

// StartPreRefreshChecks runs the pre-refresh checks on demand, before a refresh starts.
func (coord *coordinator) StartPreRefreshChecks(ctx context.Context) error {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	return coord.engine.StartPreRefreshChecks(ctx)
}

// Resume advances past a paused state.
func (coord *coordinator) Resume(ctx context.Context, checkHealth bool) (string, error) {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	before := coord.engine.State()
	commands, result, err := coord.engine.Resume(ctx, checkHealth)
	if err != nil {
		return "", err
	}
	coord.execute(ctx, commands)
	coord.notifyOnTransition(before)
	return result, nil
}

// ForceAdvance bypasses selected start gates for the first unit of the session.
func (coord *coordinator) ForceAdvance(ctx context.Context, unit int, flags types.ForceFlags) (string, error) {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	before := coord.engine.State()
	commands, result, err := coord.engine.ForceAdvance(ctx, unit, flags)
	if err != nil {
		coord.notifyOnTransition(before)
		return "", err
	}
	coord.execute(ctx, commands)
	coord.notifyOnTransition(before)
	return result, nil
}

// WorkloadAllowedToStart reports whether a replaced unit may start its workload.
func (coord *coordinator) WorkloadAllowedToStart(unit int) bool {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	return coord.engine.WorkloadAllowedToStart(unit)
}

// Dispose marks the coordinator as stopped.
func (coord *coordinator) Dispose() error {
	coord.lock.Lock()
	defer coord.lock.Unlock()
	coord.disposed = true
	return nil
}
