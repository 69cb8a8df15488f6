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

type platformClient struct {
	*mqttClient
	application string
	handler     api.LifecycleEventHandler
}

// NewPlatformClient instantiates a new PlatformClient instance using the provided configuration options.
func NewPlatformClient(application string, config *ConnectionConfig) (api.PlatformClient, error) {
	client := &platformClient{
		mqttClient: &mqttClient{
			mqttPrefix: applicationAsTopic(application),
			mqttConfig: config,
		},
		application: application,
	}
	pahoClient, err := newClient(config, client.onConnect)
	if err != nil {
		return nil, err
	}
	client.pahoClient = pahoClient
	return client, nil
}

// Application returns the name of the application that is handled by this client.
func (client *platformClient) Application() string {
	return client.application
}

// Connect connects the client to the MQTT broker.
func (client *platformClient) Connect(handler api.LifecycleEventHandler) error {
	client.handler = handler
	connectTimeout := convertToMilliseconds(client.mqttConfig.ConnectTimeout)
	token := client.pahoClient.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("[%s] connect timed out", client.Application())
	}
	return token.Error()
}

// Disconnect disconnects the client from the MQTT broker.
func (client *platformClient) Disconnect() {
	if err := client.unsubscribeEventTopic(); err != nil {
		logger.WarnErr(err, "[%s] error unsubscribing for lifecycle events", client.Application())
	} else {
		logger.Debug("[%s] unsubscribed for lifecycle events", client.Application())
	}
	client.pahoClient.Disconnect(disconnectQuiesce)
	client.handler = nil
}

func (client *platformClient) onConnect(mqttClient pahomqtt.Client) {
	if err := client.subscribeEventTopic(); err != nil {
		logger.ErrorErr(err, "[%s] error subscribing for lifecycle events", client.Application())
	} else {
		logger.Debug("[%s] subscribed for lifecycle events", client.Application())
	}
}

func (client *platformClient) subscribeEventTopic() error {
	topicEvent := client.topic(suffixLifecycleEvent)
	logger.Debug("subscribing for '%s' topic", topicEvent)
	subscribeTimeout := convertToMilliseconds(client.mqttConfig.SubscribeTimeout)
	token := client.pahoClient.Subscribe(topicEvent, 1, client.handleLifecycleEvent)
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("cannot subscribe for topic '%s' in '%v'", topicEvent, subscribeTimeout)
	}
	return token.Error()
}

func (client *platformClient) unsubscribeEventTopic() error {
	topicEvent := client.topic(suffixLifecycleEvent)
	logger.Debug("unsubscribing from '%s' topic", topicEvent)
	token := client.pahoClient.Unsubscribe(topicEvent)
	unsubscribeTimeout := convertToMilliseconds(client.mqttConfig.UnsubscribeTimeout)
	if !token.WaitTimeout(unsubscribeTimeout) {
		return fmt.Errorf("cannot unsubscribe from topic '%s' in '%v'", topicEvent, unsubscribeTimeout)
	}
	return token.Error()
}

func (client *platformClient) handleLifecycleEvent(mqttClient pahomqtt.Client, message pahomqtt.Message) {
	logger.Trace("[%s] received lifecycle event", client.Application())
	if err := client.handler.HandleLifecycleEvent(message.Payload()); err != nil {
		logger.ErrorErr(err, "[%s] error processing lifecycle event", client.Application())
	}
}

// PublishAdvance makes the client send the given raw bytes as an advance command message.
func (client *platformClient) PublishAdvance(command []byte) error {
	logger.Debug("[%s] publishing advance command '%s'", client.Application(), command)
	return client.publish(client.topic(suffixAdvance), false, command)
}

// PublishCoordinationPoint makes the client send the given raw bytes as the retained coordination point message.
func (client *platformClient) PublishCoordinationPoint(point []byte) error {
	logger.Debug("[%s] publishing coordination point '%s'", client.Application(), point)
	return client.publish(client.topic(suffixCoordinationPoint), true, point)
}

// PublishRefreshStatus makes the client send the given raw bytes as the retained refresh status message.
func (client *platformClient) PublishRefreshStatus(status []byte) error {
	if logger.IsTraceEnabled() {
		logger.Trace("[%s] publishing refresh status '%s'....", client.Application(), status)
	} else {
		logger.Debug("[%s] publishing refresh status...", client.Application())
	}
	return client.publish(client.topic(suffixRefreshStatus), true, status)
}
