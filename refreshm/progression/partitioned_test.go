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

package progression

import (
	"context"
	"testing"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedFirstUnitReplacedBeforeGates(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(test.Application, types.StylePartitioned, 2, failingCompatibility{}, nil, nil)
	seedFleet(ctx, engine, 3, true)

	// the first unit is let through before any gate runs
	commands := engine.HandleEvent(ctx, test.TargetDeclared(test.Target))
	assert.Equal(t, types.StateInProgress, engine.State())
	advances := commandsOfType(commands, types.CommandAdvance)
	require.Len(t, advances, 1)
	assert.Equal(t, 2, advances[0].Unit)

	// once the first unit runs the new code the gates run and block
	engine.HandleEvent(ctx, test.VersionReported(2, test.Target))
	assert.Equal(t, types.StateBlockedIncompatible, engine.State())
}

func TestPartitionedWaitsForFirstUnitReplacement(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(test.Application, types.StylePartitioned, 2, failingCompatibility{}, nil, nil)
	seedFleet(ctx, engine, 3, true)
	engine.HandleEvent(ctx, test.TargetDeclared(test.Target))

	// re-evaluation while the first unit is mid-change stays quiet
	commands := engine.HandleEvent(ctx, &types.LifecycleEvent{Type: types.EventEvaluate})
	assert.Empty(t, commands)
	assert.Equal(t, types.StateInProgress, engine.State())
}

func TestPartitionedPrechecksRunOnRefreshedCode(t *testing.T) {
	ctx := context.Background()
	prechecks := &styleAwarePrechecks{}
	engine := NewEngine(test.Application, types.StylePartitioned, 2, nil, prechecks, nil)
	seedFleet(ctx, engine, 2, true)

	engine.HandleEvent(ctx, test.TargetDeclared(test.Target))
	engine.HandleEvent(ctx, test.VersionReported(1, test.Target))

	assert.Equal(t, 0, prechecks.beforeRuns)
	assert.Equal(t, 1, prechecks.afterRuns)
}

func TestWorkloadAllowedToStartPartitioned(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(test.Application, types.StylePartitioned, 2, failingCompatibility{}, nil, nil)
	seedFleet(ctx, engine, 3, true)
	engine.HandleEvent(ctx, test.HealthReported(2, true))

	// no session active
	assert.True(t, engine.WorkloadAllowedToStart(2))

	engine.HandleEvent(ctx, test.TargetDeclared(test.Target))
	// units still on the original versions are never held back
	assert.True(t, engine.WorkloadAllowedToStart(0))
	assert.True(t, engine.WorkloadAllowedToStart(2))

	// the first unit runs the new code, its workload is held until the gates pass
	engine.HandleEvent(ctx, test.VersionReported(2, test.Target))
	require.Equal(t, types.StateBlockedIncompatible, engine.State())
	assert.False(t, engine.WorkloadAllowedToStart(2))
	assert.True(t, engine.WorkloadAllowedToStart(0))

	engine.HandleEvent(ctx, test.HealthReported(2, true))
	flags := types.AllChecks()
	flags.CheckCompatibility = false
	_, _, err := engine.ForceAdvance(ctx, 2, flags)
	require.NoError(t, err)
	assert.True(t, engine.WorkloadAllowedToStart(2))
}

func TestWorkloadAllowedToStartIndependent(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(types.StyleIndependent)
	seedFleet(ctx, engine, 2, true)
	engine.HandleEvent(ctx, test.TargetDeclared(test.Target))

	assert.True(t, engine.WorkloadAllowedToStart(1))
	assert.True(t, engine.WorkloadAllowedToStart(0))
}

type styleAwarePrechecks struct {
	beforeRuns int
	afterRuns  int
}

func (prechecks *styleAwarePrechecks) RunBeforeAnyUnitRefreshed(ctx context.Context) error {
	prechecks.beforeRuns++
	return nil
}

func (prechecks *styleAwarePrechecks) RunAfterFirstUnitRefreshed(ctx context.Context) error {
	prechecks.afterRuns++
	return nil
}
