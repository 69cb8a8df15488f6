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
	"encoding/json"
	"testing"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/eclipse-kanto/refresh-coordinator/test"
	"github.com/eclipse-kanto/refresh-coordinator/test/mocks"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agentTestFixture struct {
	coordinator    *mocks.MockCoordinator
	platformClient *mocks.MockPlatformClient
	operatorClient *mocks.MockOperatorClient
	agent          *coordinationAgent
}

func newAgentTestFixture(mockCtrl *gomock.Controller, observer PlatformObserver) *agentTestFixture {
	fixture := &agentTestFixture{
		coordinator:    mocks.NewMockCoordinator(mockCtrl),
		platformClient: mocks.NewMockPlatformClient(mockCtrl),
		operatorClient: mocks.NewMockOperatorClient(mockCtrl),
	}
	fixture.agent = NewCoordinationAgent(fixture.coordinator, fixture.platformClient, fixture.operatorClient, observer).(*coordinationAgent)
	return fixture
}

func decodeCommandResult(t *testing.T, bytes []byte) (string, *types.CommandResult) {
	t.Helper()
	result := &types.CommandResult{}
	envelope, err := types.FromEnvelope(bytes, result)
	require.NoError(t, err)
	return envelope.SessionID, result
}

func TestAgentStartAndStop(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.coordinator.EXPECT().SetCallback(fixture.agent)
	fixture.platformClient.EXPECT().Connect(fixture.agent).Return(nil)
	fixture.operatorClient.EXPECT().Subscribe(fixture.agent).Return(nil)
	fixture.coordinator.EXPECT().WatchEvents(ctx)
	require.NoError(t, fixture.agent.Start(ctx))

	fixture.operatorClient.EXPECT().Unsubscribe().Return(nil)
	fixture.platformClient.EXPECT().Disconnect()
	fixture.coordinator.EXPECT().Dispose().Return(nil)
	require.NoError(t, fixture.agent.Stop())
}

func TestAgentStartSubscribeFailureDisconnects(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.coordinator.EXPECT().SetCallback(fixture.agent)
	fixture.platformClient.EXPECT().Connect(fixture.agent).Return(nil)
	fixture.operatorClient.EXPECT().Subscribe(fixture.agent).Return(errors.New("subscribe failed"))
	fixture.platformClient.EXPECT().Disconnect()

	assert.ErrorContains(t, fixture.agent.Start(context.Background()), "subscribe failed")
}

type recordingObserver struct {
	sessionID string
	event     *types.LifecycleEvent
}

func (observer *recordingObserver) Observe(sessionID string, event *types.LifecycleEvent) {
	observer.sessionID = sessionID
	observer.event = event
}

func TestAgentHandleLifecycleEvent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	observer := &recordingObserver{}
	fixture := newAgentTestFixture(mockCtrl, observer)

	fixture.coordinator.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *types.LifecycleEvent) error {
			assert.Equal(t, types.EventHealthReported, event.Type)
			assert.Equal(t, 1, event.Unit)
			require.NotNil(t, event.Healthy)
			assert.True(t, *event.Healthy)
			return nil
		})

	bytes := []byte(`{"sessionId":"testSessionId","payload":{"type":"HEALTH_REPORTED","unit":1,"healthy":true}}`)
	require.NoError(t, fixture.agent.HandleLifecycleEvent(bytes))
	assert.Equal(t, test.SessionID, observer.sessionID)
	require.NotNil(t, observer.event)
	assert.Equal(t, types.EventHealthReported, observer.event.Type)

	assert.Error(t, fixture.agent.HandleLifecycleEvent([]byte("not json")))
}

func TestAgentHandlePreRefreshCheck(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.coordinator.EXPECT().StartPreRefreshChecks(gomock.Any()).Return(nil)
	fixture.operatorClient.EXPECT().PublishCommandResult(gomock.Any()).DoAndReturn(
		func(bytes []byte) error {
			sessionID, result := decodeCommandResult(t, bytes)
			assert.Equal(t, test.SessionID, sessionID)
			assert.Equal(t, "pre-refresh checks passed", result.Result)
			assert.Empty(t, result.Error)
			return nil
		})

	require.NoError(t, fixture.agent.HandlePreRefreshCheck([]byte(`{"sessionId":"testSessionId"}`)))
}

func TestAgentHandleResumeRefresh(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.coordinator.EXPECT().Resume(gomock.Any(), false).Return("refresh resumed, unit 1 is refreshing next", nil)
	fixture.operatorClient.EXPECT().PublishCommandResult(gomock.Any()).DoAndReturn(
		func(bytes []byte) error {
			_, result := decodeCommandResult(t, bytes)
			assert.Equal(t, "refresh resumed, unit 1 is refreshing next", result.Result)
			return nil
		})

	bytes := []byte(`{"sessionId":"testSessionId","payload":{"checkHealthOfRefreshedUnits":false}}`)
	require.NoError(t, fixture.agent.HandleResumeRefresh(bytes))
}

func TestAgentHandleResumeRefreshError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.coordinator.EXPECT().Resume(gomock.Any(), true).Return("", types.ErrNoRefreshInProgress)
	fixture.operatorClient.EXPECT().PublishCommandResult(gomock.Any()).DoAndReturn(
		func(bytes []byte) error {
			_, result := decodeCommandResult(t, bytes)
			assert.Empty(t, result.Result)
			assert.Equal(t, types.ErrNoRefreshInProgress.Error(), result.Error)
			return nil
		})

	require.NoError(t, fixture.agent.HandleResumeRefresh([]byte(`{"sessionId":"testSessionId","payload":{}}`)))
}

func TestAgentHandleForceRefreshStart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	expectedFlags := types.AllChecks()
	expectedFlags.CheckCompatibility = false
	fixture.coordinator.EXPECT().ForceAdvance(gomock.Any(), 2, expectedFlags).Return("refresh started, unit 2 is refreshing next", nil)
	fixture.operatorClient.EXPECT().PublishCommandResult(gomock.Any()).DoAndReturn(
		func(bytes []byte) error {
			_, result := decodeCommandResult(t, bytes)
			assert.Equal(t, "refresh started, unit 2 is refreshing next", result.Result)
			return nil
		})

	bytes := []byte(`{"sessionId":"testSessionId","payload":{"unit":2,"flags":{"checkCompatibility":false}}}`)
	require.NoError(t, fixture.agent.HandleForceRefreshStart(bytes))
}

func TestAgentHandleRefreshStatusEvent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	fixture := newAgentTestFixture(mockCtrl, nil)

	fixture.platformClient.EXPECT().PublishRefreshStatus(gomock.Any()).DoAndReturn(
		func(bytes []byte) error {
			envelope := struct {
				SessionID string               `json:"sessionId"`
				Payload   *types.RefreshStatus `json:"payload"`
			}{}
			require.NoError(t, json.Unmarshal(bytes, &envelope))
			assert.Equal(t, test.SessionID, envelope.SessionID)
			assert.Equal(t, types.StatePausedByPolicy, envelope.Payload.State)
			return nil
		})

	fixture.agent.HandleRefreshStatusEvent(test.Application, test.SessionID, &types.RefreshStatus{
		State:       types.StatePausedByPolicy,
		ForcedFlags: types.AllChecks(),
	})
}
