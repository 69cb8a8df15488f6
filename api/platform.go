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

// Platform abstracts the orchestration platform that owns the units.
// Both staged-rollout styles are served through this one contract.
type Platform interface {
	// Style returns the platform's staged-rollout style. It determines when
	// the refresh start gates run relative to the first unit's replacement.
	Style() types.RolloutStyle

	// CurrentVersion reads the code and workload versions a unit currently runs.
	CurrentVersion(ctx context.Context, unit int) (*types.UnitVersion, error)

	// Advance triggers the actual version swap for one unit. The call is
	// asynchronous; completion is observed via a later lifecycle event.
	Advance(ctx context.Context, unit int) error

	// SetCoordinationPoint writes the fleet-shared coordination point.
	// Only the leader unit may call this.
	SetCoordinationPoint(ctx context.Context, value int) error
	// CoordinationPoint reads the fleet-shared coordination point.
	CoordinationPoint(ctx context.Context) (int, error)

	// UnitHealth reports whether a unit is currently healthy.
	UnitHealth(ctx context.Context, unit int) (bool, error)
	// WorkloadRunning reports whether a unit's workload process is running.
	WorkloadRunning(ctx context.Context, unit int) (bool, error)
	// IsLeader reports whether the given unit holds fleet leadership.
	IsLeader(ctx context.Context, unit int) (bool, error)
}

// CompatibilityChecker decides whether a refresh from the original to the
// target versions is supported. Supplied by the target-version code.
type CompatibilityChecker interface {
	IsCompatible(original types.OriginalVersions, target types.TargetVersion) bool
}

// PreRefreshChecker runs the idempotent pre-refresh health checks and
// preparations. A failure is reported as *types.PrecheckFailedError.
type PreRefreshChecker interface {
	// RunBeforeAnyUnitRefreshed runs the checks while every unit still runs
	// the original versions (independent rollout style, and the on-demand
	// operator command).
	RunBeforeAnyUnitRefreshed(ctx context.Context) error
	// RunAfterFirstUnitRefreshed runs the checks on the new code after the
	// first unit has been replaced (partitioned rollout style).
	RunAfterFirstUnitRefreshed(ctx context.Context) error
}

// WorkloadValidator checks that the target workload variant has been
// validated to work with the target code version.
type WorkloadValidator interface {
	ValidateWorkload(target types.TargetVersion) error
}
