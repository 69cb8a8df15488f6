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

func TestParseCodeVersion(t *testing.T) {
	version, err := ParseCodeVersion("14/1.12.0")
	require.NoError(t, err)
	assert.Equal(t, "14", version.Track)
	assert.Equal(t, 1, version.Major)
	assert.True(t, version.Released)
	assert.Equal(t, "14/1.12.0", version.String())
	assert.False(t, version.IsZero())
}

func TestParseCodeVersionUnreleased(t *testing.T) {
	version, err := ParseCodeVersion("14/1.12.0.post1.dev0+71201f4.dirty")
	require.NoError(t, err)
	assert.Equal(t, "14", version.Track)
	assert.False(t, version.Released)
}

func TestParseCodeVersionInvalid(t *testing.T) {
	for _, raw := range []string{"", "1.12.0", "14/", "14/1.12", "14/a.b.c", "14/1/1.12.0"} {
		_, err := ParseCodeVersion(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestCodeVersionCompare(t *testing.T) {
	older := MustParseCodeVersion("14/1.11.9")
	newer := MustParseCodeVersion("14/1.12.0")

	result, err := newer.Compare(older)
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	result, err = older.Compare(newer)
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	result, err = newer.Compare(newer)
	require.NoError(t, err)
	assert.Equal(t, 0, result)

	otherTrack := MustParseCodeVersion("15/1.12.0")
	_, err = newer.Compare(otherTrack)
	assert.ErrorContains(t, err, "different tracks")
}

func TestCodeVersionEqualComparesSuffix(t *testing.T) {
	released := MustParseCodeVersion("14/1.12.0")
	dev := MustParseCodeVersion("14/1.12.0.dev0")
	assert.False(t, released.Equal(dev))
	assert.True(t, dev.Equal(dev))
}

func TestCodeVersionTextRoundTrip(t *testing.T) {
	type record struct {
		Version CodeVersion `json:"version"`
	}
	encoded, err := json.Marshal(record{Version: MustParseCodeVersion("14/1.12.0")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"14/1.12.0"}`, string(encoded))

	decoded := record{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, decoded.Version.Equal(MustParseCodeVersion("14/1.12.0")))

	empty := record{}
	require.NoError(t, json.Unmarshal([]byte(`{"version":""}`), &empty))
	assert.True(t, empty.Version.IsZero())
}

func TestTargetVersionMatches(t *testing.T) {
	target := TargetVersion{
		CodeVersion:       MustParseCodeVersion("14/1.12.0"),
		WorkloadContainer: "registry/app@sha256:abc",
	}
	assert.True(t, target.Matches(UnitVersion{
		CodeVersion:       MustParseCodeVersion("14/1.12.0"),
		WorkloadContainer: "registry/app@sha256:abc",
	}))
	assert.False(t, target.Matches(UnitVersion{
		CodeVersion:       MustParseCodeVersion("14/1.12.0"),
		WorkloadContainer: "registry/app@sha256:other",
	}))
	assert.False(t, target.Matches(UnitVersion{
		CodeVersion:       MustParseCodeVersion("14/1.11.0"),
		WorkloadContainer: "registry/app@sha256:abc",
	}))
}
