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
	"sort"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
)

// VersionLedger tracks the currently running versions of every known unit and
// the original-versions snapshot captured after the last completed refresh.
// Pure storage: absence of a record for a newly joined unit is a normal
// initial state, not an error.
type VersionLedger struct {
	units    map[int]types.UnitVersion
	original types.OriginalVersions
}

// NewVersionLedger creates an empty ledger.
func NewVersionLedger() *VersionLedger {
	return &VersionLedger{units: map[int]types.UnitVersion{}}
}

// RecordCurrent stores the reported versions of one unit, replacing any prior record.
func (ledger *VersionLedger) RecordCurrent(version types.UnitVersion) {
	ledger.units[version.Unit] = version
}

// Read returns the recorded versions of one unit.
func (ledger *VersionLedger) Read(unit int) (types.UnitVersion, bool) {
	version, ok := ledger.units[unit]
	return version, ok
}

// Forget drops the record of a departed unit.
func (ledger *VersionLedger) Forget(unit int) {
	delete(ledger.units, unit)
}

// Units returns all known unit ordinals sorted from highest to lowest, the refresh order.
func (ledger *VersionLedger) Units() []int {
	units := make([]int, 0, len(ledger.units))
	for unit := range ledger.units {
		units = append(units, unit)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(units)))
	return units
}

// IsOutdated reports whether a unit's recorded versions differ from the declared target.
// Units without a record are not considered outdated until they report.
func (ledger *VersionLedger) IsOutdated(unit int, target types.TargetVersion) bool {
	version, ok := ledger.units[unit]
	if !ok {
		return false
	}
	return !target.Matches(version)
}

// OutdatedUnits returns the ordinals of units not yet on the target, highest first.
func (ledger *VersionLedger) OutdatedUnits(target types.TargetVersion) []int {
	var outdated []int
	for _, unit := range ledger.Units() {
		if ledger.IsOutdated(unit, target) {
			outdated = append(outdated, unit)
		}
	}
	return outdated
}

// UnitsOnTarget returns the ordinals of units already on the target, highest first.
func (ledger *VersionLedger) UnitsOnTarget(target types.TargetVersion) []int {
	var refreshed []int
	for _, unit := range ledger.Units() {
		if !ledger.IsOutdated(unit, target) {
			refreshed = append(refreshed, unit)
		}
	}
	return refreshed
}

// AnyUnitOnOriginal reports whether at least one unit still runs the original-versions snapshot.
func (ledger *VersionLedger) AnyUnitOnOriginal() bool {
	if ledger.original.IsZero() {
		return false
	}
	for _, version := range ledger.units {
		if ledger.original.CodeVersion.Equal(version.CodeVersion) &&
			ledger.original.WorkloadContainer == version.WorkloadContainer {
			return true
		}
	}
	return false
}

// SnapshotOriginal returns the original-versions snapshot.
func (ledger *VersionLedger) SnapshotOriginal() types.OriginalVersions {
	return ledger.original
}

// PromoteOriginal overwrites the snapshot with the given target. Called only
// when a refresh completes, or at initial deployment when no snapshot exists.
func (ledger *VersionLedger) PromoteOriginal(target types.TargetVersion) {
	ledger.original = types.OriginalVersions{
		CodeVersion:       target.CodeVersion,
		CodeRevision:      target.CodeRevision,
		WorkloadVersion:   target.WorkloadVersion,
		WorkloadContainer: target.WorkloadContainer,
	}
}

// RestoreOriginal seeds the snapshot from externally persisted state.
func (ledger *VersionLedger) RestoreOriginal(original types.OriginalVersions) {
	ledger.original = original
}
