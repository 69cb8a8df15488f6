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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Operational precondition errors, returned synchronously to the caller of an
// operator command without mutating any state.
var (
	// ErrNoRefreshInProgress is returned when a command requires an active refresh session.
	ErrNoRefreshInProgress = errors.New("no refresh in progress")
	// ErrRefreshInProgress is returned when a command requires that no refresh session is active.
	ErrRefreshInProgress = errors.New("refresh already in progress")
	// ErrPausePolicyNone is returned by resume when the pause policy is "none" and the command is not applicable.
	ErrPausePolicyNone = errors.New(`pause-after-unit-refresh config is set to "none", resume is not applicable`)
	// ErrNoFlagsSet is returned by force-refresh-start when no gate is requested to be skipped.
	ErrNoFlagsSet = errors.New("at least one of check-workload-container, check-compatibility or run-pre-refresh-checks must be disabled")
	// ErrNotLeader is returned when a command must run on the leader unit.
	ErrNotLeader = errors.New("must run on the leader unit")
	// ErrRefreshAlreadyStarted is returned by force-refresh-start when the start gates already passed.
	ErrRefreshAlreadyStarted = errors.New("refresh already started")
)

// WrongUnitError is returned when an operator command is invoked on a unit
// other than the one it must run on.
type WrongUnitError struct {
	Expected int
}

func (e *WrongUnitError) Error() string {
	return fmt.Sprintf("must run on unit %d", e.Expected)
}

// UnitUnhealthyError is returned by resume when a refreshed unit is unhealthy
// and health checking was not explicitly disabled.
type UnitUnhealthyError struct {
	Unit int
}

func (e *UnitUnhealthyError) Error() string {
	return fmt.Sprintf("unit %d is unhealthy, refresh will not resume", e.Unit)
}

// Gate identifies one of the ordered refresh start gates.
type Gate string

const (
	// GateWorkloadContainer denotes the check that the workload container is validated for the code version.
	GateWorkloadContainer Gate = "workload-container"
	// GateCompatibility denotes the check that the target version is compatible with the original version.
	GateCompatibility Gate = "compatibility"
	// GatePreRefreshChecks denotes the pre-refresh health checks and preparations.
	GatePreRefreshChecks Gate = "pre-refresh-checks"
)

// GateFailureError is a failed, non-skipped refresh start gate. It blocks
// progression and is recoverable via rollback or an explicit force.
type GateFailureError struct {
	Gate   Gate
	Reason string
}

func (e *GateFailureError) Error() string {
	return fmt.Sprintf("%s check failed: %s", e.Gate, e.Reason)
}

// PrecheckFailedError is raised by a pre-refresh health check or preparation.
// The message is shown to the operator and must not be empty.
type PrecheckFailedError struct {
	Message string
}

func (e *PrecheckFailedError) Error() string {
	return e.Message
}

// ConfigurationError is an invalid user configuration value. It has the
// highest status priority and is independent of the refresh state.
type ConfigurationError struct {
	Option string
	Value  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid value %q for config option %q", e.Value, e.Option)
}
