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

package test

import (
	"sync"
	"testing"
	"time"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
)

// UnitVersion creates a test unit version record on the given target versions
func UnitVersion(unit int, target types.TargetVersion) *types.UnitVersion {
	return &types.UnitVersion{
		Unit:              unit,
		CodeVersion:       target.CodeVersion,
		WorkloadVersion:   target.WorkloadVersion,
		WorkloadContainer: target.WorkloadContainer,
	}
}

// VersionReported creates a test version-reported lifecycle event
func VersionReported(unit int, target types.TargetVersion) *types.LifecycleEvent {
	return &types.LifecycleEvent{
		Type:    types.EventVersionReported,
		Unit:    unit,
		Version: UnitVersion(unit, target),
	}
}

// TargetDeclared creates a test target-declared lifecycle event
func TargetDeclared(target types.TargetVersion) *types.LifecycleEvent {
	declared := target
	return &types.LifecycleEvent{
		Type:   types.EventTargetDeclared,
		Target: &declared,
	}
}

// HealthReported creates a test health-reported lifecycle event
func HealthReported(unit int, healthy bool) *types.LifecycleEvent {
	value := healthy
	return &types.LifecycleEvent{
		Type:    types.EventHealthReported,
		Unit:    unit,
		Healthy: &value,
	}
}

// LeadershipChanged creates a test leadership-changed lifecycle event
func LeadershipChanged(leader bool) *types.LifecycleEvent {
	value := leader
	return &types.LifecycleEvent{
		Type:   types.EventLeadershipChanged,
		Leader: &value,
	}
}

// UnitRemoved creates a test unit-removed lifecycle event
func UnitRemoved(unit int) *types.LifecycleEvent {
	return &types.LifecycleEvent{
		Type: types.EventUnitRemoved,
		Unit: unit,
	}
}

// PolicyChanged creates a test policy-changed lifecycle event
func PolicyChanged(policy string) *types.LifecycleEvent {
	return &types.LifecycleEvent{
		Type:   types.EventPolicyChanged,
		Policy: policy,
	}
}

// AssertWithTimeout asserts that an operation is completed within a certain period of time
func AssertWithTimeout(t *testing.T, waitGroup *sync.WaitGroup, testTimeout time.Duration) {
	testWaitChan := make(chan struct{})
	go func() {
		defer close(testWaitChan)
		waitGroup.Wait()
	}()
	select {
	case <-testWaitChan:
		return // completed normally
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for ", testTimeout)
	}
}
