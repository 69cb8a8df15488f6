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

package fleet

import (
	"context"
	"sync"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/pkg/errors"
)

// MQTTPlatform implements the platform contract over the platform MQTT
// client. Commands are published to the platform adapter, reads are served
// from the state observed in the lifecycle event stream.
type MQTTPlatform struct {
	lock sync.RWMutex

	style     types.RolloutStyle
	client    api.PlatformClient
	sessionID string

	leaders  map[int]bool
	versions map[int]*types.UnitVersion
	health   map[int]bool
	point    int
}

// NewMQTTPlatform creates a platform backed by the given platform client.
func NewMQTTPlatform(style types.RolloutStyle, client api.PlatformClient) *MQTTPlatform {
	return &MQTTPlatform{
		style:    style,
		client:   client,
		leaders:  map[int]bool{},
		versions: map[int]*types.UnitVersion{},
		health:   map[int]bool{},
	}
}

// Observe caches the platform state carried by one lifecycle event. The
// envelope session ID is reused for the command envelopes sent back.
func (platform *MQTTPlatform) Observe(sessionID string, event *types.LifecycleEvent) {
	platform.lock.Lock()
	defer platform.lock.Unlock()
	if sessionID != "" {
		platform.sessionID = sessionID
	}
	switch event.Type {
	case types.EventVersionReported:
		if event.Version != nil {
			version := *event.Version
			platform.versions[version.Unit] = &version
		}
	case types.EventHealthReported:
		if event.Healthy != nil {
			platform.health[event.Unit] = *event.Healthy
		}
	case types.EventLeadershipChanged:
		if event.Leader != nil {
			platform.leaders[event.Unit] = *event.Leader
		}
	case types.EventUnitRemoved:
		delete(platform.versions, event.Unit)
		delete(platform.health, event.Unit)
		delete(platform.leaders, event.Unit)
	}
}

// Style returns the platform's staged-rollout style.
func (platform *MQTTPlatform) Style() types.RolloutStyle {
	return platform.style
}

// CurrentVersion reads the last reported versions of a unit.
func (platform *MQTTPlatform) CurrentVersion(ctx context.Context, unit int) (*types.UnitVersion, error) {
	platform.lock.RLock()
	defer platform.lock.RUnlock()
	version, ok := platform.versions[unit]
	if !ok {
		return nil, errors.Errorf("unit %d has not reported its versions", unit)
	}
	return version, nil
}

// Advance publishes an advance command for one unit to the platform adapter.
func (platform *MQTTPlatform) Advance(ctx context.Context, unit int) error {
	bytes, err := types.ToAdapterCommandBytes(platform.currentSessionID(), &types.AdapterCommand{Type: types.CommandAdvance, Unit: unit})
	if err != nil {
		return err
	}
	return platform.client.PublishAdvance(bytes)
}

// SetCoordinationPoint publishes the fleet-shared coordination point, retained.
func (platform *MQTTPlatform) SetCoordinationPoint(ctx context.Context, value int) error {
	bytes, err := types.ToAdapterCommandBytes(platform.currentSessionID(), &types.AdapterCommand{Type: types.CommandSetCoordinationPoint, Point: value})
	if err != nil {
		return err
	}
	if err := platform.client.PublishCoordinationPoint(bytes); err != nil {
		return err
	}
	platform.lock.Lock()
	platform.point = value
	platform.lock.Unlock()
	return nil
}

// CoordinationPoint reads the last written coordination point.
func (platform *MQTTPlatform) CoordinationPoint(ctx context.Context) (int, error) {
	platform.lock.RLock()
	defer platform.lock.RUnlock()
	return platform.point, nil
}

// UnitHealth reports the last observed health signal of a unit.
func (platform *MQTTPlatform) UnitHealth(ctx context.Context, unit int) (bool, error) {
	platform.lock.RLock()
	defer platform.lock.RUnlock()
	healthy, ok := platform.health[unit]
	if !ok {
		return false, errors.Errorf("unit %d has not reported health", unit)
	}
	return healthy, nil
}

// WorkloadRunning reports whether a unit's workload is running, derived from its health signal.
func (platform *MQTTPlatform) WorkloadRunning(ctx context.Context, unit int) (bool, error) {
	return platform.UnitHealth(ctx, unit)
}

// IsLeader reports the last observed leadership of a unit.
func (platform *MQTTPlatform) IsLeader(ctx context.Context, unit int) (bool, error) {
	platform.lock.RLock()
	defer platform.lock.RUnlock()
	return platform.leaders[unit], nil
}

func (platform *MQTTPlatform) currentSessionID() string {
	platform.lock.RLock()
	defer platform.lock.RUnlock()
	return platform.sessionID
}
