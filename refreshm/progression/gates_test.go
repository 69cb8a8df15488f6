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
	"github.com/stretchr/testify/assert"
)

func TestDefaultCompatibilityPolicy(t *testing.T) {
	testCases := []struct {
		name       string
		from       string
		to         string
		compatible bool
	}{
		{"patch upgrade", "1/1.2.0", "1/1.2.5", true},
		{"minor upgrade", "1/1.2.0", "1/1.3.0", true},
		{"equal versions", "1/1.2.0", "1/1.2.0", true},
		{"downgrade", "1/1.3.0", "1/1.2.0", false},
		{"track change", "1/1.2.0", "2/1.3.0", false},
		{"major change", "1/1.2.0", "1/2.0.0", false},
		{"unreleased original", "1/1.2.0.dev0", "1/1.3.0", false},
		{"unreleased target", "1/1.2.0", "1/1.3.0+dirty", false},
		{"equal unreleased", "1/1.2.0.dev0", "1/1.2.0.dev0", true},
	}
	policy := DefaultCompatibilityPolicy{}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			original := types.OriginalVersions{CodeVersion: types.MustParseCodeVersion(testCase.from)}
			target := types.TargetVersion{CodeVersion: types.MustParseCodeVersion(testCase.to)}
			assert.Equal(t, testCase.compatible, policy.IsCompatible(original, target))
		})
	}
}

func TestBlockedStateMapping(t *testing.T) {
	assert.Equal(t, types.StateBlockedVersionMismatch, blockedState(types.GateWorkloadContainer))
	assert.Equal(t, types.StateBlockedIncompatible, blockedState(types.GateCompatibility))
	assert.Equal(t, types.StateBlockedPrecheckFailed, blockedState(types.GatePreRefreshChecks))
}
