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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceFlagsDefaults(t *testing.T) {
	flags := AllChecks()
	assert.False(t, flags.SkipsAnything())

	flags.CheckCompatibility = false
	assert.True(t, flags.SkipsAnything())
}

func TestForceFlagsMergeKeepsSkips(t *testing.T) {
	recorded := AllChecks()
	recorded.CheckCompatibility = false

	request := AllChecks()
	request.RunPreRefreshChecks = false

	merged := recorded.Merge(request)
	assert.True(t, merged.CheckWorkloadContainer)
	assert.False(t, merged.CheckCompatibility)
	assert.False(t, merged.RunPreRefreshChecks)
}

func TestForceFlagsUnmarshalDefaultsOmittedToTrue(t *testing.T) {
	flags := ForceFlags{}
	require.NoError(t, json.Unmarshal([]byte(`{"checkCompatibility":false}`), &flags))
	assert.True(t, flags.CheckWorkloadContainer)
	assert.False(t, flags.CheckCompatibility)
	assert.True(t, flags.RunPreRefreshChecks)

	flags = ForceFlags{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &flags))
	assert.Equal(t, AllChecks(), flags)

	assert.Error(t, json.Unmarshal([]byte(`{"checkCompatibility":"no"}`), &flags))
}
