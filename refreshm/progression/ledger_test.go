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
	"testing"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerUnitsDescending(t *testing.T) {
	ledger := NewVersionLedger()
	for _, unit := range []int{1, 4, 0, 2} {
		ledger.RecordCurrent(*test.UnitVersion(unit, test.Original))
	}
	assert.Equal(t, []int{4, 2, 1, 0}, ledger.Units())

	ledger.Forget(2)
	assert.Equal(t, []int{4, 1, 0}, ledger.Units())

	version, ok := ledger.Read(4)
	require.True(t, ok)
	assert.Equal(t, 4, version.Unit)
	_, ok = ledger.Read(2)
	assert.False(t, ok)
}

func TestLedgerOutdatedUnits(t *testing.T) {
	ledger := NewVersionLedger()
	ledger.RecordCurrent(*test.UnitVersion(0, test.Original))
	ledger.RecordCurrent(*test.UnitVersion(1, test.Original))
	ledger.RecordCurrent(*test.UnitVersion(2, test.Target))

	assert.Equal(t, []int{1, 0}, ledger.OutdatedUnits(test.Target))
	assert.Equal(t, []int{2}, ledger.UnitsOnTarget(test.Target))
	assert.True(t, ledger.IsOutdated(0, test.Target))
	assert.False(t, ledger.IsOutdated(2, test.Target))

	// units that never reported are not outdated until they do
	assert.False(t, ledger.IsOutdated(7, test.Target))
}

func TestLedgerOriginalSnapshot(t *testing.T) {
	ledger := NewVersionLedger()
	assert.True(t, ledger.SnapshotOriginal().IsZero())
	assert.False(t, ledger.AnyUnitOnOriginal())

	ledger.PromoteOriginal(test.Original)
	original := ledger.SnapshotOriginal()
	require.False(t, original.IsZero())
	assert.True(t, original.CodeVersion.Equal(test.OriginalCode))
	assert.Equal(t, test.Original.WorkloadContainer, original.WorkloadContainer)
	assert.True(t, original.MatchesTarget(test.Original))
	assert.False(t, original.MatchesTarget(test.Target))

	// no unit recorded yet
	assert.False(t, ledger.AnyUnitOnOriginal())

	ledger.RecordCurrent(*test.UnitVersion(0, test.Original))
	ledger.RecordCurrent(*test.UnitVersion(1, test.Target))
	assert.True(t, ledger.AnyUnitOnOriginal())

	ledger.RecordCurrent(*test.UnitVersion(0, test.Target))
	assert.False(t, ledger.AnyUnitOnOriginal())

	ledger.PromoteOriginal(test.Target)
	assert.True(t, ledger.AnyUnitOnOriginal())
}

func TestLedgerRestoreOriginal(t *testing.T) {
	ledger := NewVersionLedger()
	ledger.RestoreOriginal(types.OriginalVersions{
		CodeVersion:       test.OriginalCode,
		WorkloadContainer: test.Original.WorkloadContainer,
	})
	assert.True(t, ledger.SnapshotOriginal().MatchesTarget(test.Original))
}
