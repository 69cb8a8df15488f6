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

package api

import (
	"context"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
)

// Coordinator provides the refresh coordination abstraction for one application.
type Coordinator interface {
	Name() string

	SetCallback(callback CoordinatorCallback)
	WatchEvents(ctx context.Context)

	// HandleEvent feeds one lifecycle event into the progression engine.
	HandleEvent(ctx context.Context, event *types.LifecycleEvent) error

	// RefreshStatus reports the current progression state.
	RefreshStatus() *types.RefreshStatus
	// StartPreRefreshChecks runs the pre-refresh checks on demand, before a refresh starts.
	StartPreRefreshChecks(ctx context.Context) error
	// Resume advances past a paused state.
	Resume(ctx context.Context, checkHealth bool) (string, error)
	// ForceAdvance bypasses selected start gates for the first unit of the session.
	ForceAdvance(ctx context.Context, unit int, flags types.ForceFlags) (string, error)
	// WorkloadAllowedToStart reports whether a replaced unit may start its workload.
	WorkloadAllowedToStart(unit int) bool

	Dispose() error
}

// RefreshStatusHandler defines a callback for handling refresh status transitions
type RefreshStatusHandler interface {
	HandleRefreshStatusEvent(application string, sessionID string, status *types.RefreshStatus)
}

// CoordinatorCallback defines a callback for event handling
type CoordinatorCallback interface {
	RefreshStatusHandler
}

// CoordinationAgent defines the interface for starting/stopping a coordination agent.
type CoordinationAgent interface {
	Start(context.Context) error
	Stop() error
}
