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
	"fmt"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
)

type startGate struct {
	gate    types.Gate
	skipped func(types.ForceFlags) bool
	run     func(ctx context.Context) error
}

func (engine *Engine) startGates() []startGate {
	session := engine.session
	return []startGate{
		{
			gate:    types.GateWorkloadContainer,
			skipped: func(flags types.ForceFlags) bool { return !flags.CheckWorkloadContainer },
			run: func(ctx context.Context) error {
				if engine.workload == nil {
					return nil
				}
				return engine.workload.ValidateWorkload(session.Target)
			},
		},
		{
			gate:    types.GateCompatibility,
			skipped: func(flags types.ForceFlags) bool { return !flags.CheckCompatibility },
			run: func(ctx context.Context) error {
				original := engine.ledger.SnapshotOriginal()
				if original.IsZero() {
					return nil
				}
				if engine.compatibility.IsCompatible(original, session.Target) {
					return nil
				}
				return fmt.Errorf("refresh from %s to %s is not compatible, rollback or run force-refresh-start with check-compatibility=false",
					original.CodeVersion, session.Target.CodeVersion)
			},
		},
		{
			gate:    types.GatePreRefreshChecks,
			skipped: func(flags types.ForceFlags) bool { return !flags.RunPreRefreshChecks },
			run: func(ctx context.Context) error {
				if engine.prechecks == nil {
					return nil
				}
				if engine.style == types.StylePartitioned {
					return engine.prechecks.RunAfterFirstUnitRefreshed(ctx)
				}
				return engine.prechecks.RunBeforeAnyUnitRefreshed(ctx)
			},
		},
	}
}

// runStartGates executes the start gates in order with the given force flags,
// short-circuiting on the first failing gate that is not skipped. Passes are
// recorded on the session and not re-run, failures are recorded and re-run on
// the next evaluation.
func (engine *Engine) runStartGates(ctx context.Context, flags types.ForceFlags) *types.GateFailureError {
	for _, gate := range engine.startGates() {
		if gate.skipped(flags) {
			logger.Warn("[%s] %s gate skipped by force flags", engine.application, gate.gate)
			continue
		}
		if engine.session.gatePassed(gate.gate) {
			continue
		}
		if err := gate.run(ctx); err != nil {
			engine.session.recordGate(gate.gate, false)
			logger.Warn("[%s] %s gate failed: %v", engine.application, gate.gate, err)
			return &types.GateFailureError{Gate: gate.gate, Reason: err.Error()}
		}
		engine.session.recordGate(gate.gate, true)
		logger.Debug("[%s] %s gate passed", engine.application, gate.gate)
	}
	return nil
}

func blockedState(gate types.Gate) types.RefreshState {
	switch gate {
	case types.GateWorkloadContainer:
		return types.StateBlockedVersionMismatch
	case types.GateCompatibility:
		return types.StateBlockedIncompatible
	default:
		return types.StateBlockedPrecheckFailed
	}
}

// DefaultCompatibilityPolicy implements the built-in version compatibility
// rule: both versions released, same track, no major downgrade or skip, and
// the new version not older than the original.
type DefaultCompatibilityPolicy struct{}

// IsCompatible reports whether refreshing from the original versions to the target is allowed.
func (DefaultCompatibilityPolicy) IsCompatible(original types.OriginalVersions, target types.TargetVersion) bool {
	from, to := original.CodeVersion, target.CodeVersion
	if from.Equal(to) {
		return true
	}
	if !from.Released || !to.Released {
		return false
	}
	if from.Track != to.Track || from.Major != to.Major {
		return false
	}
	result, err := to.Compare(from)
	if err != nil {
		return false
	}
	return result >= 0
}
