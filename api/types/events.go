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

// EventType defines the lifecycle event kinds delivered by the platform.
type EventType string

const (
	// EventVersionReported denotes that a unit reported its currently running versions.
	EventVersionReported EventType = "VERSION_REPORTED"
	// EventTargetDeclared denotes that the operator declared a new target version for the application.
	EventTargetDeclared EventType = "TARGET_DECLARED"
	// EventHealthReported denotes a per-unit health signal.
	EventHealthReported EventType = "HEALTH_REPORTED"
	// EventPolicyChanged denotes a change of the pause-after-unit-refresh configuration.
	EventPolicyChanged EventType = "POLICY_CHANGED"
	// EventUnitCompleted denotes that the platform confirmed completion of a unit's version change.
	EventUnitCompleted EventType = "UNIT_COMPLETED"
	// EventUnitRemoved denotes that a unit departed the fleet, e.g. on scale-in.
	EventUnitRemoved EventType = "UNIT_REMOVED"
	// EventLeadershipChanged denotes that this unit gained or lost fleet leadership.
	EventLeadershipChanged EventType = "LEADERSHIP_CHANGED"
	// EventEvaluate denotes a host-driven re-evaluation with no new payload.
	EventEvaluate EventType = "EVALUATE"
)

// LifecycleEvent is one externally delivered event of a unit's reactive loop.
// Exactly the fields relevant for its Type are set.
type LifecycleEvent struct {
	Type    EventType      `json:"type"`
	Unit    int            `json:"unit,omitempty"`
	Healthy *bool          `json:"healthy,omitempty"`
	Leader  *bool          `json:"leader,omitempty"`
	Policy  string         `json:"policy,omitempty"`
	Version *UnitVersion   `json:"version,omitempty"`
	Target  *TargetVersion `json:"target,omitempty"`
}

// CommandType defines the adapter commands the progression engine can emit.
type CommandType string

const (
	// CommandAdvance denotes a request to swap one unit to the target version.
	CommandAdvance CommandType = "ADVANCE"
	// CommandSetCoordinationPoint denotes a request to write the fleet-shared coordination point.
	CommandSetCoordinationPoint CommandType = "SET_COORDINATION_POINT"
)

// AdapterCommand is one instruction for the platform adapter, emitted by an engine evaluation.
type AdapterCommand struct {
	Type  CommandType `json:"type"`
	Unit  int         `json:"unit,omitempty"`
	Point int         `json:"point,omitempty"`
}

// HealthVerdict is the aggregated fleet health decision.
type HealthVerdict struct {
	Healthy bool `json:"healthy"`
	// UnhealthyUnit is the lowest ordinal among unhealthy units, nil if Healthy.
	UnhealthyUnit *int `json:"unhealthyUnit,omitempty"`
}
