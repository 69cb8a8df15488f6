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
	"time"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/google/uuid"
)

// RefreshSession holds the state of one refresh attempt, created when a
// version change toward a new target is first observed and discarded when the
// fleet converges or the target is superseded.
type RefreshSession struct {
	ID        string
	Target    types.TargetVersion
	StartTime time.Time

	// IsRollback is fixed at session creation and never re-evaluated.
	IsRollback bool

	// RefreshStarted is set once the start gates passed, were force-skipped,
	// or the session is a rollback.
	RefreshStarted bool

	// Gate results, nil until the gate ran for the first time.
	WorkloadValidated *bool
	Compatible        *bool
	PreChecksPassed   *bool

	// Forced records the accumulated force-refresh-start flags, a field set
	// to false marks the matching gate as permanently skipped.
	Forced types.ForceFlags
}

func newRefreshSession(target types.TargetVersion, rollback bool) *RefreshSession {
	return &RefreshSession{
		ID:             uuid.New().String(),
		Target:         target,
		StartTime:      time.Now(),
		IsRollback:     rollback,
		RefreshStarted: rollback,
		Forced:         types.AllChecks(),
	}
}

func (session *RefreshSession) gatePassed(gate types.Gate) bool {
	switch gate {
	case types.GateWorkloadContainer:
		return session.WorkloadValidated != nil && *session.WorkloadValidated
	case types.GateCompatibility:
		return session.Compatible != nil && *session.Compatible
	case types.GatePreRefreshChecks:
		return session.PreChecksPassed != nil && *session.PreChecksPassed
	}
	return false
}

func (session *RefreshSession) recordGate(gate types.Gate, passed bool) {
	result := passed
	switch gate {
	case types.GateWorkloadContainer:
		session.WorkloadValidated = &result
	case types.GateCompatibility:
		session.Compatible = &result
	case types.GatePreRefreshChecks:
		session.PreChecksPassed = &result
	}
}
