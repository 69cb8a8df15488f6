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

import "github.com/pkg/errors"

// RefreshStatus is the operator-visible summary of the current refresh.
type RefreshStatus struct {
	State          RefreshState   `json:"state"`
	BlockingReason string         `json:"blockingReason,omitempty"`
	ConfigError    string         `json:"configError,omitempty"`
	NextUnit       *int           `json:"nextUnit,omitempty"`
	Target         *TargetVersion `json:"target,omitempty"`
	IsRollback     bool           `json:"isRollback,omitempty"`
	// ForcedFlags records the force-refresh-start audit trail for the current
	// session; a flag set to false marks the matching gate as skipped.
	ForcedFlags ForceFlags `json:"forcedFlags"`
}

// ResumeRequest is the payload of a resume-refresh operator command.
type ResumeRequest struct {
	CheckHealth *bool `json:"checkHealthOfRefreshedUnits,omitempty"`
}

// CheckHealthOrDefault returns the health-check switch, defaulting to true.
func (request *ResumeRequest) CheckHealthOrDefault() bool {
	if request == nil || request.CheckHealth == nil {
		return true
	}
	return *request.CheckHealth
}

// ForceRequest is the payload of a force-refresh-start operator command.
type ForceRequest struct {
	Unit  int        `json:"unit"`
	Flags ForceFlags `json:"flags"`
}

// CommandResult is the payload of an operator command response.
type CommandResult struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// FromRefreshStatusBytes receives an Envelope as raw bytes and converts its payload to a RefreshStatus instance.
func FromRefreshStatusBytes(bytes []byte) (string, *RefreshStatus, error) {
	payload := &RefreshStatus{}
	envelope, err := FromEnvelope(bytes, payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot unmarshal refresh status")
	}
	return envelope.SessionID, payload, nil
}

// FromLifecycleEventBytes receives an Envelope as raw bytes and converts its payload to a LifecycleEvent instance.
func FromLifecycleEventBytes(bytes []byte) (string, *LifecycleEvent, error) {
	payload := &LifecycleEvent{}
	envelope, err := FromEnvelope(bytes, payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot unmarshal lifecycle event")
	}
	return envelope.SessionID, payload, nil
}

// ToAdapterCommandBytes returns the Envelope as raw bytes, setting session ID and command payload.
func ToAdapterCommandBytes(sessionID string, command *AdapterCommand) ([]byte, error) {
	bytes, err := ToEnvelope(sessionID, command)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal adapter command")
	}
	return bytes, nil
}

// ToRefreshStatusBytes returns the Envelope as raw bytes, setting session ID and status payload.
func ToRefreshStatusBytes(sessionID string, status *RefreshStatus) ([]byte, error) {
	bytes, err := ToEnvelope(sessionID, status)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal refresh status")
	}
	return bytes, nil
}

// FromResumeRequestBytes receives an Envelope as raw bytes and converts its payload to a ResumeRequest instance.
func FromResumeRequestBytes(bytes []byte) (string, *ResumeRequest, error) {
	payload := &ResumeRequest{}
	envelope, err := FromEnvelope(bytes, payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot unmarshal resume-refresh request")
	}
	return envelope.SessionID, payload, nil
}

// FromForceRequestBytes receives an Envelope as raw bytes and converts its payload to a ForceRequest instance.
func FromForceRequestBytes(bytes []byte) (string, *ForceRequest, error) {
	payload := &ForceRequest{}
	envelope, err := FromEnvelope(bytes, payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot unmarshal force-refresh-start request")
	}
	return envelope.SessionID, payload, nil
}

// ToCommandResultBytes returns the Envelope as raw bytes, setting session ID and command result payload.
func ToCommandResultBytes(sessionID string, result *CommandResult) ([]byte, error) {
	bytes, err := ToEnvelope(sessionID, result)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal command result")
	}
	return bytes, nil
}
