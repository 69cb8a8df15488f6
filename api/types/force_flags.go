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

import "encoding/json"

// ForceFlags holds the per-gate switches of a force-refresh-start request.
// Every flag defaults to true (gate is checked); false skips the gate.
type ForceFlags struct {
	CheckWorkloadContainer bool `json:"checkWorkloadContainer"`
	CheckCompatibility     bool `json:"checkCompatibility"`
	RunPreRefreshChecks    bool `json:"runPreRefreshChecks"`
}

// AllChecks returns flags with every gate enabled, the request default.
func AllChecks() ForceFlags {
	return ForceFlags{CheckWorkloadContainer: true, CheckCompatibility: true, RunPreRefreshChecks: true}
}

// SkipsAnything returns true if at least one gate is skipped.
func (flags ForceFlags) SkipsAnything() bool {
	return !flags.CheckWorkloadContainer || !flags.CheckCompatibility || !flags.RunPreRefreshChecks
}

// Merge combines the flags with previously recorded ones, a gate once skipped stays skipped.
func (flags ForceFlags) Merge(other ForceFlags) ForceFlags {
	return ForceFlags{
		CheckWorkloadContainer: flags.CheckWorkloadContainer && other.CheckWorkloadContainer,
		CheckCompatibility:     flags.CheckCompatibility && other.CheckCompatibility,
		RunPreRefreshChecks:    flags.RunPreRefreshChecks && other.RunPreRefreshChecks,
	}
}

// UnmarshalJSON decodes the flags, defaulting omitted gates to true.
func (flags *ForceFlags) UnmarshalJSON(bytes []byte) error {
	raw := struct {
		CheckWorkloadContainer *bool `json:"checkWorkloadContainer"`
		CheckCompatibility     *bool `json:"checkCompatibility"`
		RunPreRefreshChecks    *bool `json:"runPreRefreshChecks"`
	}{}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return err
	}
	*flags = AllChecks()
	if raw.CheckWorkloadContainer != nil {
		flags.CheckWorkloadContainer = *raw.CheckWorkloadContainer
	}
	if raw.CheckCompatibility != nil {
		flags.CheckCompatibility = *raw.CheckCompatibility
	}
	if raw.RunPreRefreshChecks != nil {
		flags.RunPreRefreshChecks = *raw.RunPreRefreshChecks
	}
	return nil
}
