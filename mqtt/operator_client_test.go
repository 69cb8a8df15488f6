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

package mqtt

import (
	"testing"
	"time"

	mqttmocks "github.com/eclipse-kanto/refresh-coordinator/mqtt/mock"
	"github.com/eclipse-kanto/refresh-coordinator/test"
	mocks "github.com/eclipse-kanto/refresh-coordinator/test/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperatorClient(mockPaho *mqttmocks.MockClient) *operatorClient {
	return &operatorClient{
		mqttClient:  newInternalClient(test.Application, testConnectionConfig, mockPaho),
		application: test.Application,
	}
}

func TestNewOperatorClientSharesConnection(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	platform := newTestPlatformClient(mockPaho)

	client, err := NewOperatorClient(test.Application, platform)
	require.NoError(t, err)
	assert.Equal(t, test.Application, client.Application())
	assert.Same(t, mockPaho, client.(*operatorClient).pahoClient)

	_, err = NewOperatorClient(test.Application, mocks.NewMockPlatformClient(mockCtrl))
	assert.ErrorContains(t, err, "unsupported platform client type")
}

func TestOperatorClientSubscribe(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	handler := mocks.NewMockOperatorCommandHandler(mockCtrl)
	client := newTestOperatorClient(mockPaho)

	topics := map[string]byte{
		"testapprefresh/prerefreshcheck":   1,
		"testapprefresh/resumerefresh":     1,
		"testapprefresh/forcerefreshstart": 1,
	}
	mockPaho.EXPECT().SubscribeMultiple(topics, gomock.Any()).Return(mockToken)
	mockToken.EXPECT().WaitTimeout(15 * time.Second).Return(true)
	mockToken.EXPECT().Error().Return(nil)

	require.NoError(t, client.Subscribe(handler))
}

func TestOperatorClientUnsubscribe(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	client := newTestOperatorClient(mockPaho)
	client.handler = mocks.NewMockOperatorCommandHandler(mockCtrl)

	mockPaho.EXPECT().Unsubscribe(
		"testapprefresh/prerefreshcheck",
		"testapprefresh/resumerefresh",
		"testapprefresh/forcerefreshstart",
	).Return(mockToken)
	mockToken.EXPECT().WaitTimeout(5 * time.Second).Return(true)
	mockToken.EXPECT().Error().Return(nil)

	require.NoError(t, client.Unsubscribe())
	assert.Nil(t, client.handler)
}

func TestHandleCommandRequestDispatch(t *testing.T) {
	testCases := []struct {
		name   string
		topic  string
		expect func(handler *mocks.MockOperatorCommandHandler, payload []byte)
	}{
		{
			name:  "pre-refresh-check",
			topic: "testapprefresh/prerefreshcheck",
			expect: func(handler *mocks.MockOperatorCommandHandler, payload []byte) {
				handler.EXPECT().HandlePreRefreshCheck(payload).Return(nil)
			},
		},
		{
			name:  "resume-refresh",
			topic: "testapprefresh/resumerefresh",
			expect: func(handler *mocks.MockOperatorCommandHandler, payload []byte) {
				handler.EXPECT().HandleResumeRefresh(payload).Return(nil)
			},
		},
		{
			name:  "force-refresh-start",
			topic: "testapprefresh/forcerefreshstart",
			expect: func(handler *mocks.MockOperatorCommandHandler, payload []byte) {
				handler.EXPECT().HandleForceRefreshStart(payload).Return(nil)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			mockPaho := mqttmocks.NewMockClient(mockCtrl)
			mockMessage := mqttmocks.NewMockMessage(mockCtrl)
			handler := mocks.NewMockOperatorCommandHandler(mockCtrl)
			client := newTestOperatorClient(mockPaho)
			client.handler = handler

			payload := []byte(`{"sessionId":"testSessionId","payload":{}}`)
			mockMessage.EXPECT().Topic().Return(testCase.topic)
			mockMessage.EXPECT().Payload().Return(payload)
			testCase.expect(handler, payload)

			client.handleCommandRequest(mockPaho, mockMessage)
		})
	}
}

func TestPublishCommandResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	client := newTestOperatorClient(mockPaho)

	result := []byte(`{"result":"refresh resumed"}`)
	mockPaho.EXPECT().Publish("testapprefresh/commandresult", uint8(1), false, result).Return(mockToken)
	mockToken.EXPECT().WaitTimeout(15 * time.Second).Return(true)
	mockToken.EXPECT().Error().Return(nil)

	require.NoError(t, client.PublishCommandResult(result))
}
