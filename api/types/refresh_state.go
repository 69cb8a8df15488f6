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

package types

// RefreshState defines values for the coordinator's refresh progression state
type RefreshState string

const (
	// StateIdle denotes that no refresh session is active and all units run the declared target.
	StateIdle RefreshState = "IDLE"
	// StateDetermining denotes that the coordinator cannot yet distinguish "no refresh" from "mid-refresh".
	StateDetermining RefreshState = "DETERMINING"
	// StateInProgress denotes that a refresh session is active and units are being refreshed.
	StateInProgress RefreshState = "IN_PROGRESS"
	// StatePausedByPolicy denotes that progression is paused per the pause-after-unit-refresh configuration.
	StatePausedByPolicy RefreshState = "PAUSED_BY_POLICY"
	// StatePausedUnhealthy denotes that progression is paused because a unit is unhealthy.
	StatePausedUnhealthy RefreshState = "PAUSED_UNHEALTHY"
	// StateBlockedIncompatible denotes that the target version is not compatible with the original version.
	StateBlockedIncompatible RefreshState = "BLOCKED_INCOMPATIBLE"
	// StateBlockedPrecheckFailed denotes that a pre-refresh health check or preparation failed.
	StateBlockedPrecheckFailed RefreshState = "BLOCKED_PRECHECK_FAILED"
	// StateBlockedVersionMismatch denotes that the target workload variant is not validated for the target code version.
	StateBlockedVersionMismatch RefreshState = "BLOCKED_VERSION_MISMATCH"
	// StateCompleted denotes that every unit's current version equals the session target.
	StateCompleted RefreshState = "COMPLETED"
)

// Blocked returns true for the states that require a rollback or an explicit force to recover from.
func (state RefreshState) Blocked() bool {
	switch state {
	case StateBlockedIncompatible, StateBlockedPrecheckFailed, StateBlockedVersionMismatch:
		return true
	default:
		return false
	}
}

// RolloutStyle defines the staged-rollout style of the underlying platform
type RolloutStyle string

const (
	// StylePartitioned denotes an ordered rollout bounded by a shared partition value,
	// where start gates run after the first unit has been replaced.
	StylePartitioned RolloutStyle = "PARTITIONED"
	// StyleIndependent denotes a rollout of fully independent units,
	// where start gates run before any unit is replaced.
	StyleIndependent RolloutStyle = "INDEPENDENT"
)

// PausePolicy defines values for the pause-after-unit-refresh configuration option
type PausePolicy string

const (
	// PauseNone denotes that the refresh flows through all units without pausing.
	PauseNone PausePolicy = "none"
	// PauseFirst denotes that the refresh pauses once, after the first unit has refreshed.
	PauseFirst PausePolicy = "first"
	// PauseAll denotes that the refresh pauses after every unit.
	PauseAll PausePolicy = "all"
	// PauseUnknown denotes an invalid configuration value, treated as the strictest policy.
	PauseUnknown PausePolicy = "unknown"
)

// ParsePausePolicy maps a raw configuration value to a PausePolicy, PauseUnknown for anything invalid.
func ParsePausePolicy(value string) PausePolicy {
	switch PausePolicy(value) {
	case PauseNone, PauseFirst, PauseAll:
		return PausePolicy(value)
	default:
		return PauseUnknown
	}
}

var pausePriorities = map[PausePolicy]int{PauseNone: 0, PauseFirst: 1, PauseAll: 2, PauseUnknown: 3}

// Stricter returns the stricter of the two pause policies.
// Used to aggregate the policy values reported by individual units into the fleet policy.
func (policy PausePolicy) Stricter(other PausePolicy) PausePolicy {
	if pausePriorities[other] > pausePriorities[policy] {
		return other
	}
	return policy
}
