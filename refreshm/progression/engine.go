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

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/logger"
)

const pointUnset = -1

// Engine evaluates the refresh progression. Every lifecycle event is applied
// to the engine's bookkeeping and followed by a full re-evaluation that
// recomputes the state and the adapter commands from scratch, so repeating an
// evaluation with unchanged inputs produces no new side effects.
// The engine is not safe for concurrent use, callers serialize access.
type Engine struct {
	application       string
	style             types.RolloutStyle
	determiningWindow int

	ledger        *VersionLedger
	compatibility api.CompatibilityChecker
	prechecks     api.PreRefreshChecker
	workload      api.WorkloadValidator

	target    *types.TargetVersion
	session   *RefreshSession
	policy    types.PausePolicy
	policyRaw string
	health    map[int]*bool
	leader    bool

	inFlight           *int
	resumeGranted      bool
	resumeIgnoreHealth bool

	state           types.RefreshState
	blockingReason  string
	determiningLeft int

	// sessionPoint is the coordination point written during the current
	// session, pointUnset before the first write. Writes within one session
	// only ever lower the point, a fresh session may raise it again.
	sessionPoint int
}

// NewEngine creates an engine for the given rollout style. The compatibility
// checker falls back to the built-in policy when nil, the pre-refresh checker
// and the workload validator may be nil.
func NewEngine(application string, style types.RolloutStyle, determiningWindow int,
	compatibility api.CompatibilityChecker, prechecks api.PreRefreshChecker, workload api.WorkloadValidator) *Engine {
	if compatibility == nil {
		compatibility = DefaultCompatibilityPolicy{}
	}
	if determiningWindow < 1 {
		determiningWindow = 1
	}
	return &Engine{
		application:       application,
		style:             style,
		determiningWindow: determiningWindow,
		ledger:            NewVersionLedger(),
		compatibility:     compatibility,
		prechecks:         prechecks,
		workload:          workload,
		policy:            types.PauseAll,
		policyRaw:         string(types.PauseAll),
		health:            map[int]*bool{},
		state:             types.StateDetermining,
		determiningLeft:   determiningWindow,
		sessionPoint:      pointUnset,
	}
}

// Ledger exposes the engine's version ledger for state restoration.
func (engine *Engine) Ledger() *VersionLedger {
	return engine.ledger
}

// SeedPolicy sets the configured pause policy before the first policy event arrives.
func (engine *Engine) SeedPolicy(raw string) {
	engine.policyRaw = raw
	engine.policy = types.ParsePausePolicy(raw)
}

// HandleEvent applies one lifecycle event and re-evaluates the progression,
// returning the adapter commands the caller must execute.
func (engine *Engine) HandleEvent(ctx context.Context, event *types.LifecycleEvent) []types.AdapterCommand {
	engine.apply(event)
	return engine.evaluate(ctx)
}

func (engine *Engine) apply(event *types.LifecycleEvent) {
	switch event.Type {
	case types.EventVersionReported:
		if event.Version == nil {
			return
		}
		previous, known := engine.ledger.Read(event.Version.Unit)
		engine.ledger.RecordCurrent(*event.Version)
		changed := known && !previous.CodeVersion.Equal(event.Version.CodeVersion)
		if changed {
			// the unit's workload restarted, its last health signal is stale
			engine.health[event.Version.Unit] = nil
		}
		// any version change of the in-flight unit ends its pending change,
		// also one toward a target superseded in the meantime
		if engine.inFlight != nil && *engine.inFlight == event.Version.Unit &&
			(changed || (engine.target != nil && engine.target.Matches(*event.Version))) {
			engine.inFlight = nil
		}
	case types.EventTargetDeclared:
		if event.Target != nil {
			engine.target = event.Target
		}
	case types.EventHealthReported:
		engine.health[event.Unit] = event.Healthy
	case types.EventPolicyChanged:
		engine.policyRaw = event.Policy
		engine.policy = types.ParsePausePolicy(event.Policy)
	case types.EventUnitCompleted:
		if engine.inFlight != nil && *engine.inFlight == event.Unit {
			engine.inFlight = nil
		}
		engine.health[event.Unit] = nil
	case types.EventUnitRemoved:
		engine.ledger.Forget(event.Unit)
		delete(engine.health, event.Unit)
		if engine.inFlight != nil && *engine.inFlight == event.Unit {
			engine.inFlight = nil
		}
	case types.EventLeadershipChanged:
		if event.Leader != nil {
			engine.leader = *event.Leader
		}
	case types.EventEvaluate:
		// re-evaluation only
	}
}

func (engine *Engine) evaluate(ctx context.Context) []types.AdapterCommand {
	var commands []types.AdapterCommand

	if engine.target == nil {
		engine.state = types.StateIdle
		engine.blockingReason = ""
		return engine.resetPoint(commands)
	}
	target := *engine.target

	if missing := engine.unitsWithoutVersions(); len(engine.ledger.Units()) == 0 || len(missing) > 0 {
		engine.state = types.StateDetermining
		if engine.determiningLeft > 0 {
			engine.determiningLeft--
			engine.blockingReason = ""
		} else if len(missing) > 0 {
			engine.blockingReason = fmt.Sprintf("cannot determine refresh state, units %v have not reported their versions", missing)
		} else {
			engine.blockingReason = "cannot determine refresh state, no unit has reported its versions"
		}
		return commands
	}

	outdated := engine.ledger.OutdatedUnits(target)
	if len(outdated) == 0 {
		return engine.converge(target, commands)
	}
	engine.determiningLeft = engine.determiningWindow

	if engine.session == nil || !engine.session.Target.Equal(target) {
		engine.startSession(target)
	}
	session := engine.session

	if !session.RefreshStarted {
		if engine.style == types.StylePartitioned && !engine.firstUnitReplaced(target) {
			if engine.inFlight != nil {
				engine.state = types.StateInProgress
				engine.blockingReason = ""
				return commands
			}
			// the partition is the only brake here, the first unit's workload
			// is held back separately until the start gates pass
			return engine.permitUnit(outdated[0], commands)
		}
		if failure := engine.runStartGates(ctx, session.Forced); failure != nil {
			engine.state = blockedState(failure.Gate)
			engine.blockingReason = failure.Reason
			return commands
		}
		session.RefreshStarted = true
	}

	if engine.inFlight != nil {
		engine.state = types.StateInProgress
		engine.blockingReason = ""
		return commands
	}

	next := outdated[0]
	refreshed := engine.ledger.UnitsOnTarget(target)
	index := len(refreshed)

	if !(engine.resumeGranted && engine.resumeIgnoreHealth) {
		verdict := EvaluateHealth(engine.health, refreshed)
		if !verdict.Healthy {
			engine.state = types.StatePausedUnhealthy
			if verdict.UnhealthyUnit != nil {
				engine.blockingReason = fmt.Sprintf("waiting for unit %d to become healthy", *verdict.UnhealthyUnit)
			} else {
				engine.blockingReason = "waiting for refreshed units to become healthy"
			}
			return commands
		}
	}

	if !engine.pauseAllows(index) {
		engine.state = types.StatePausedByPolicy
		engine.blockingReason = fmt.Sprintf("refresh paused by pause-after-unit-refresh=%s, run resume-refresh to continue with unit %d",
			engine.policyRaw, next)
		return commands
	}

	if engine.resumeGranted {
		engine.resumeGranted = false
		engine.resumeIgnoreHealth = false
	}
	return engine.permitUnit(next, commands)
}

// pauseAllows reports whether the pause policy permits refreshing the unit at
// the given position in the refresh order. The first unit is never paused,
// a granted resume always allows exactly one unit.
func (engine *Engine) pauseAllows(index int) bool {
	if index == 0 || engine.resumeGranted {
		return true
	}
	switch engine.policy {
	case types.PauseNone:
		return true
	case types.PauseFirst:
		return index >= 2
	default:
		return false
	}
}

func (engine *Engine) permitUnit(unit int, commands []types.AdapterCommand) []types.AdapterCommand {
	if engine.leader && (engine.sessionPoint == pointUnset || unit < engine.sessionPoint) {
		commands = append(commands, types.AdapterCommand{Type: types.CommandSetCoordinationPoint, Point: unit})
		engine.sessionPoint = unit
	}
	pending := unit
	engine.inFlight = &pending
	commands = append(commands, types.AdapterCommand{Type: types.CommandAdvance, Unit: unit})
	engine.state = types.StateInProgress
	engine.blockingReason = ""
	logger.Info("[%s] unit %d is refreshing next", engine.application, unit)
	return commands
}

func (engine *Engine) converge(target types.TargetVersion, commands []types.AdapterCommand) []types.AdapterCommand {
	if engine.session != nil {
		logger.Info("[%s] refresh %s to %s completed", engine.application, engine.session.ID, target.CodeVersion)
		engine.ledger.PromoteOriginal(target)
		engine.session = nil
		engine.state = types.StateCompleted
	} else {
		if engine.ledger.SnapshotOriginal().IsZero() {
			engine.ledger.PromoteOriginal(target)
		}
		engine.state = types.StateIdle
	}
	engine.inFlight = nil
	engine.resumeGranted = false
	engine.resumeIgnoreHealth = false
	engine.blockingReason = ""
	engine.determiningLeft = engine.determiningWindow
	return engine.resetPoint(commands)
}

// resetPoint lowers the coordination point to zero when no refresh is in
// progress, freeing all units. Leader-only like every point write.
func (engine *Engine) resetPoint(commands []types.AdapterCommand) []types.AdapterCommand {
	if engine.leader && engine.sessionPoint != 0 {
		commands = append(commands, types.AdapterCommand{Type: types.CommandSetCoordinationPoint, Point: 0})
		engine.sessionPoint = 0
	}
	return commands
}

func (engine *Engine) startSession(target types.TargetVersion) {
	rollback := engine.ledger.SnapshotOriginal().MatchesTarget(target) && engine.ledger.AnyUnitOnOriginal()
	engine.session = newRefreshSession(target, rollback)
	engine.resumeGranted = false
	engine.resumeIgnoreHealth = false
	engine.sessionPoint = pointUnset
	if rollback {
		logger.Warn("[%s] refresh %s is a rollback to %s, start gates will not run", engine.application, engine.session.ID, target.CodeVersion)
	} else {
		logger.Info("[%s] refresh %s to %s started", engine.application, engine.session.ID, target.CodeVersion)
	}
}

func (engine *Engine) firstUnitReplaced(target types.TargetVersion) bool {
	units := engine.ledger.Units()
	if len(units) == 0 {
		return false
	}
	return !engine.ledger.IsOutdated(units[0], target)
}

// unitsWithoutVersions returns units known from health signals that have not
// reported their running versions yet.
func (engine *Engine) unitsWithoutVersions() []int {
	var missing []int
	for unit := range engine.health {
		if _, ok := engine.ledger.Read(unit); !ok {
			missing = append(missing, unit)
		}
	}
	return missing
}

// Status returns a snapshot of the current progression for reporting.
func (engine *Engine) Status() *types.RefreshStatus {
	status := &types.RefreshStatus{
		State:          engine.state,
		BlockingReason: engine.blockingReason,
		ForcedFlags:    types.AllChecks(),
	}
	if engine.policy == types.PauseUnknown {
		status.ConfigError = (&types.ConfigurationError{Option: "pause-after-unit-refresh", Value: engine.policyRaw}).Error()
	}
	if engine.session != nil {
		status.Target = &engine.session.Target
		status.IsRollback = engine.session.IsRollback
		status.ForcedFlags = engine.session.Forced
		if outdated := engine.ledger.OutdatedUnits(engine.session.Target); len(outdated) > 0 {
			next := outdated[0]
			status.NextUnit = &next
		}
	}
	return status
}

// State returns the current refresh progression state.
func (engine *Engine) State() types.RefreshState {
	return engine.state
}

// SessionID returns the identifier of the active refresh session, empty when none is active.
func (engine *Engine) SessionID() string {
	if engine.session == nil {
		return ""
	}
	return engine.session.ID
}

// WorkloadAllowedToStart reports whether a unit's workload may start. With the
// partitioned style the first unit's process is replaced before the start
// gates run, so its workload is held back until the gates pass. Units still
// on the original versions and rollbacks are never held back.
func (engine *Engine) WorkloadAllowedToStart(unit int) bool {
	if engine.style != types.StylePartitioned || engine.session == nil {
		return true
	}
	if engine.session.RefreshStarted || engine.session.IsRollback {
		return true
	}
	version, ok := engine.ledger.Read(unit)
	if !ok {
		return false
	}
	original := engine.ledger.SnapshotOriginal()
	return !original.IsZero() && original.CodeVersion.Equal(version.CodeVersion) &&
		original.WorkloadContainer == version.WorkloadContainer
}

// StartPreRefreshChecks runs the pre-refresh checks outside of a refresh,
// on the leader only.
func (engine *Engine) StartPreRefreshChecks(ctx context.Context) error {
	if engine.session != nil {
		return types.ErrRefreshInProgress
	}
	if !engine.leader {
		return types.ErrNotLeader
	}
	if engine.prechecks == nil {
		return nil
	}
	if err := engine.prechecks.RunBeforeAnyUnitRefreshed(ctx); err != nil {
		return &types.PrecheckFailedError{Message: err.Error()}
	}
	return nil
}

// Resume grants a one-shot permission to refresh the next unit while the
// progression is paused. With checkHealth the grant is refused while any
// refreshed unit is unhealthy, without it the health verdict is overridden
// for this single unit.
func (engine *Engine) Resume(ctx context.Context, checkHealth bool) ([]types.AdapterCommand, string, error) {
	if engine.session == nil {
		return nil, "", types.ErrNoRefreshInProgress
	}
	if checkHealth && engine.policy == types.PauseNone {
		return nil, "", types.ErrPausePolicyNone
	}
	target := engine.session.Target
	if checkHealth {
		verdict := EvaluateHealth(engine.health, engine.ledger.UnitsOnTarget(target))
		if !verdict.Healthy {
			unit := -1
			if verdict.UnhealthyUnit != nil {
				unit = *verdict.UnhealthyUnit
			}
			return nil, "", &types.UnitUnhealthyError{Unit: unit}
		}
	}
	engine.resumeGranted = true
	engine.resumeIgnoreHealth = !checkHealth
	commands := engine.evaluate(ctx)

	outdated := engine.ledger.OutdatedUnits(target)
	if len(outdated) == 0 {
		return commands, "refresh completed", nil
	}
	return commands, fmt.Sprintf("refresh resumed, unit %d is refreshing next", outdated[0]), nil
}
