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
	"fmt"

	"github.com/eclipse-kanto/refresh-coordinator/api"
	"github.com/eclipse-kanto/refresh-coordinator/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

type operatorClient struct {
	*mqttClient
	application string
	handler     api.OperatorCommandHandler
}

// NewOperatorClient instantiates a new OperatorClient sharing the connection of the given PlatformClient.
func NewOperatorClient(application string, platform api.PlatformClient) (api.OperatorClient, error) {
	parent, ok := platform.(*platformClient)
	if !ok {
		return nil, fmt.Errorf("[%s] unsupported platform client type", application)
	}
	return &operatorClient{
		mqttClient:  newInternalClient(application, parent.mqttConfig, parent.pahoClient),
		application: application,
	}, nil
}

// Application returns the name of the application that is handled by this client.
func (client *operatorClient) Application() string {
	return client.application
}

// Subscribe makes the client subscribe for the operator command topics.
func (client *operatorClient) Subscribe(handler api.OperatorCommandHandler) error {
	client.handler = handler
	topicPreRefreshCheck := client.topic(suffixPreRefreshCheck)
	topicResumeRefresh := client.topic(suffixResumeRefresh)
	topicForceRefreshStart := client.topic(suffixForceRefreshStart)
	topicsMap := map[string]byte{
		topicPreRefreshCheck:   1,
		topicResumeRefresh:     1,
		topicForceRefreshStart: 1,
	}
	logger.Debug("subscribing for '%v' topics", []string{topicPreRefreshCheck, topicResumeRefresh, topicForceRefreshStart})
	subscribeTimeout := convertToMilliseconds(client.mqttConfig.SubscribeTimeout)
	token := client.pahoClient.SubscribeMultiple(topicsMap, client.handleCommandRequest)
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("cannot subscribe for topics '%s,%s,%s' in '%v'", topicPreRefreshCheck, topicResumeRefresh, topicForceRefreshStart, subscribeTimeout)
	}
	return token.Error()
}

// Unsubscribe makes the client unsubscribe from the operator command topics.
func (client *operatorClient) Unsubscribe() error {
	topics := []string{
		client.topic(suffixPreRefreshCheck),
		client.topic(suffixResumeRefresh),
		client.topic(suffixForceRefreshStart),
	}
	logger.Debug("unsubscribing from '%v' topics", topics)
	token := client.pahoClient.Unsubscribe(topics...)
	unsubscribeTimeout := convertToMilliseconds(client.mqttConfig.UnsubscribeTimeout)
	if !token.WaitTimeout(unsubscribeTimeout) {
		return fmt.Errorf("cannot unsubscribe from topics '%v' in '%v'", topics, unsubscribeTimeout)
	}
	client.handler = nil
	return token.Error()
}

func (client *operatorClient) handleCommandRequest(mqttClient pahomqtt.Client, message pahomqtt.Message) {
	topic := message.Topic()
	if topic == client.topic(suffixPreRefreshCheck) {
		logger.Debug("[%s] received pre-refresh-check request", client.Application())
		if err := client.handler.HandlePreRefreshCheck(message.Payload()); err != nil {
			logger.ErrorErr(err, "[%s] error processing pre-refresh-check request", client.Application())
		}
		return
	}
	if topic == client.topic(suffixResumeRefresh) {
		logger.Debug("[%s] received resume-refresh request", client.Application())
		if err := client.handler.HandleResumeRefresh(message.Payload()); err != nil {
			logger.ErrorErr(err, "[%s] error processing resume-refresh request", client.Application())
		}
		return
	}
	logger.Debug("[%s] received force-refresh-start request", client.Application())
	if err := client.handler.HandleForceRefreshStart(message.Payload()); err != nil {
		logger.ErrorErr(err, "[%s] error processing force-refresh-start request", client.Application())
	}
}

// PublishCommandResult makes the client send the given raw bytes as an operator command result message.
func (client *operatorClient) PublishCommandResult(result []byte) error {
	logger.Debug("[%s] publishing command result '%s'", client.Application(), result)
	return client.publish(client.topic(suffixCommandResult), false, result)
}
