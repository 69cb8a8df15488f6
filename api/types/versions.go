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
	"regexp"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

var codeVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(.*)$`)

// CodeVersion is a charm code version of the form "<track>/<major>.<minor>.<patch>[suffix]".
// A non-empty suffix marks a development build that was not released to the store.
type CodeVersion struct {
	raw     string
	version *goversion.Version

	// Track is the store track the version was released to (e.g. "14" in "14/1.12.0").
	Track string
	// Major is incremented when a refresh from older code is not supported
	// or requires an intermediate version.
	Major int
	// Released is false for development builds (e.g. "14/1.12.0.post1.dev0+71201f4.dirty").
	Released bool
}

// ParseCodeVersion parses a raw charm code version string.
func ParseCodeVersion(raw string) (CodeVersion, error) {
	track, rest, found := strings.Cut(raw, "/")
	if !found || track == "" || strings.Contains(rest, "/") {
		return CodeVersion{}, errors.Errorf("invalid code version %q: expected <track>/<version>", raw)
	}
	match := codeVersionPattern.FindStringSubmatch(rest)
	if match == nil {
		return CodeVersion{}, errors.Errorf("invalid code version %q: expected 3 number components after track", raw)
	}
	parsed, err := goversion.NewVersion(fmt.Sprintf("%s.%s.%s", match[1], match[2], match[3]))
	if err != nil {
		return CodeVersion{}, errors.Wrapf(err, "invalid code version %q", raw)
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return CodeVersion{}, errors.Wrapf(err, "invalid code version %q", raw)
	}
	return CodeVersion{
		raw:      raw,
		version:  parsed,
		Track:    track,
		Major:    major,
		Released: match[4] == "",
	}, nil
}

// MustParseCodeVersion parses a raw charm code version string, panicking on error. For tests and constants.
func MustParseCodeVersion(raw string) CodeVersion {
	version, err := ParseCodeVersion(raw)
	if err != nil {
		panic(err)
	}
	return version
}

func (v CodeVersion) String() string {
	return v.raw
}

// IsZero returns true for the zero value, i.e. no version recorded yet.
func (v CodeVersion) IsZero() bool {
	return v.raw == ""
}

// Equal compares the full raw version strings.
func (v CodeVersion) Equal(other CodeVersion) bool {
	return v.raw == other.raw
}

// Compare returns -1, 0 or 1 ordering v against other.
// Versions on different tracks are not comparable.
func (v CodeVersion) Compare(other CodeVersion) (int, error) {
	if v.Track != other.Track {
		return 0, errors.Errorf("unable to compare versions with different tracks: %q and %q", v.raw, other.raw)
	}
	return v.version.Compare(other.version), nil
}

// MarshalText implements encoding.TextMarshaler.
func (v CodeVersion) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CodeVersion) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*v = CodeVersion{}
		return nil
	}
	parsed, err := ParseCodeVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnitVersion is the recorded version pair of one unit.
type UnitVersion struct {
	Unit              int         `json:"unit"`
	CodeVersion       CodeVersion `json:"codeVersion"`
	WorkloadVersion   string      `json:"workloadVersion"`
	WorkloadContainer string      `json:"workloadContainer,omitempty"`
}

// TargetVersion is the operator-declared version an application refreshes to.
type TargetVersion struct {
	CodeVersion       CodeVersion `json:"codeVersion"`
	CodeRevision      string      `json:"codeRevision,omitempty"`
	WorkloadVersion   string      `json:"workloadVersion"`
	WorkloadContainer string      `json:"workloadContainer,omitempty"`
}

// Equal reports whether two targets denote the same code and workload container versions.
func (target TargetVersion) Equal(other TargetVersion) bool {
	return target.CodeVersion.Equal(other.CodeVersion) && target.WorkloadContainer == other.WorkloadContainer
}

// Matches reports whether a unit currently runs this target.
func (target TargetVersion) Matches(unit UnitVersion) bool {
	return target.CodeVersion.Equal(unit.CodeVersion) && unit.WorkloadContainer == target.WorkloadContainer
}

// OriginalVersions is the snapshot of the fleet's versions immediately after
// the last completed refresh, or after the initial deployment if no refresh
// has ever completed. Used to recognize rollbacks.
type OriginalVersions struct {
	CodeVersion       CodeVersion `json:"codeVersion"`
	CodeRevision      string      `json:"codeRevision"`
	WorkloadVersion   string      `json:"workloadVersion"`
	WorkloadContainer string      `json:"workloadContainer"`
}

// IsZero returns true if no snapshot has been captured yet.
func (original OriginalVersions) IsZero() bool {
	return original.CodeVersion.IsZero()
}

// MatchesTarget reports whether a declared target equals the snapshot,
// i.e. whether refreshing to it is a return to the previously running versions.
func (original OriginalVersions) MatchesTarget(target TargetVersion) bool {
	return original.CodeVersion.Equal(target.CodeVersion) &&
		original.WorkloadContainer == target.WorkloadContainer
}
