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
	"strings"
	"time"

	"github.com/eclipse-kanto/refresh-coordinator/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const (
	suffixLifecycleEvent    = "/lifecycleevent"
	suffixAdvance           = "/advance"
	suffixCoordinationPoint = "/coordinationpoint"
	suffixRefreshStatus     = "/refreshstatus"

	suffixPreRefreshCheck   = "/prerefreshcheck"
	suffixResumeRefresh     = "/resumerefresh"
	suffixForceRefreshStart = "/forcerefreshstart"
	suffixCommandResult     = "/commandresult"

	disconnectQuiesce uint = 10000
)

type mqttClient struct {
	mqttPrefix string
	mqttConfig *ConnectionConfig
	pahoClient pahomqtt.Client
}

func newInternalClient(application string, config *ConnectionConfig, pahoClient pahomqtt.Client) *mqttClient {
	return &mqttClient{
		mqttPrefix: applicationAsTopic(application),
		mqttConfig: config,
		pahoClient: pahoClient,
	}
}

func (client *mqttClient) topic(topicSuffix string) string {
	return client.mqttPrefix + topicSuffix
}

func (client *mqttClient) publish(topic string, retained bool, message []byte) error {
	logger.Debug("publishing to topic '%s'", topic)
	token := client.pahoClient.Publish(topic, 1, retained, message)
	if !token.WaitTimeout(convertToMilliseconds(client.mqttConfig.AcknowledgeTimeout)) {
		return newErrorf("cannot publish to topic '%s' in time", topic)
	}
	return token.Error()
}

func applicationAsTopic(application string) string {
	application = strings.ReplaceAll(application, "-", "")
	if strings.HasSuffix(application, "refresh") {
		return application
	}
	return application + "refresh"
}

func convertToMilliseconds(value int64) time.Duration {
	return time.Duration(value) * time.Millisecond
}

func newClient(config *ConnectionConfig, onConnect pahomqtt.OnConnectHandler) (pahomqtt.Client, error) {
	clientOptions := pahomqtt.NewClientOptions().
		SetClientID(uuid.New().String()).
		AddBroker(config.BrokerURL).
		SetKeepAlive(convertToMilliseconds(config.KeepAlive)).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetProtocolVersion(4).
		SetConnectTimeout(convertToMilliseconds(config.ConnectTimeout)).
		SetOnConnectHandler(onConnect).
		SetUsername(config.ClientUsername).
		SetPassword(config.ClientPassword)

	if config.RootCA != "" {
		tlsConfig, err := NewTLSConfig(config)
		if err != nil {
			return nil, err
		}
		clientOptions.SetTLSConfig(tlsConfig)
	}
	return pahomqtt.NewClient(clientOptions), nil
}
