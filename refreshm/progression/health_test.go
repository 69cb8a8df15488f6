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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(value bool) *bool {
	return &value
}

func TestEvaluateHealthAllHealthy(t *testing.T) {
	signals := map[int]*bool{0: boolPtr(true), 1: boolPtr(true), 2: boolPtr(true)}
	verdict := EvaluateHealth(signals, []int{2})
	assert.True(t, verdict.Healthy)
	assert.Nil(t, verdict.UnhealthyUnit)
}

func TestEvaluateHealthUnknownNotRefreshedIsHealthy(t *testing.T) {
	// units that were not refreshed yet may not have reported health
	signals := map[int]*bool{2: boolPtr(true)}
	verdict := EvaluateHealth(signals, []int{2})
	assert.True(t, verdict.Healthy)
}

func TestEvaluateHealthUnknownRefreshedIsUnhealthy(t *testing.T) {
	signals := map[int]*bool{2: nil, 1: boolPtr(true)}
	verdict := EvaluateHealth(signals, []int{2, 1})
	require.False(t, verdict.Healthy)
	require.NotNil(t, verdict.UnhealthyUnit)
	assert.Equal(t, 2, *verdict.UnhealthyUnit)
}

func TestEvaluateHealthLowestExplicitFalseWins(t *testing.T) {
	signals := map[int]*bool{0: boolPtr(false), 1: boolPtr(false), 2: nil}
	verdict := EvaluateHealth(signals, []int{2})
	require.False(t, verdict.Healthy)
	require.NotNil(t, verdict.UnhealthyUnit)
	// explicit failures are named before unknown refreshed units
	assert.Equal(t, 0, *verdict.UnhealthyUnit)
}

func TestEvaluateHealthLowestUnknownRefreshed(t *testing.T) {
	signals := map[int]*bool{0: boolPtr(true), 1: nil, 2: nil}
	verdict := EvaluateHealth(signals, []int{2, 1})
	require.False(t, verdict.Healthy)
	require.NotNil(t, verdict.UnhealthyUnit)
	assert.Equal(t, 1, *verdict.UnhealthyUnit)
}
