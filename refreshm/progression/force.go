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

// ForceAdvance starts a blocked refresh by skipping the start gates named in
// the given flags. The request is only valid on the first unit eligible to
// change, before the refresh has started, and with at least one gate skipped.
// Skips are recorded on the session permanently for the audit trail.
func (engine *Engine) ForceAdvance(ctx context.Context, unit int, flags types.ForceFlags) ([]types.AdapterCommand, string, error) {
	if engine.session == nil {
		return nil, "", types.ErrNoRefreshInProgress
	}
	if !flags.SkipsAnything() {
		return nil, "", types.ErrNoFlagsSet
	}
	outdated := engine.ledger.OutdatedUnits(engine.session.Target)
	if len(outdated) == 0 {
		return nil, "", types.ErrNoRefreshInProgress
	}
	first := outdated[0]
	if engine.style == types.StylePartitioned && engine.firstUnitReplaced(engine.session.Target) {
		// with the partitioned style the first unit is replaced before the
		// gates run, the force still has to be addressed to it
		first = engine.ledger.Units()[0]
	}
	if unit != first {
		return nil, "", &types.WrongUnitError{Expected: first}
	}
	if engine.session.RefreshStarted {
		return nil, "", types.ErrRefreshAlreadyStarted
	}

	target := engine.session.Target
	merged := engine.session.Forced.Merge(flags)
	if failure := engine.runStartGates(ctx, merged); failure != nil {
		engine.session.Forced = merged
		engine.state = blockedState(failure.Gate)
		engine.blockingReason = failure.Reason
		return nil, "", failure
	}
	engine.session.Forced = merged
	engine.session.RefreshStarted = true
	logger.Warn("[%s] refresh %s force-started on unit %d, skipped gates recorded", engine.application, engine.session.ID, unit)

	commands := engine.evaluate(ctx)
	next := unit
	if remaining := engine.ledger.OutdatedUnits(target); len(remaining) > 0 {
		next = remaining[0]
	}
	return commands, fmt.Sprintf("refresh started, unit %d is refreshing next", next), nil
}
