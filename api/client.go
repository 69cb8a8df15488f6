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

package api

// LifecycleEventHandler defines functions for handling the raw lifecycle event stream
type LifecycleEventHandler interface {
	HandleLifecycleEvent([]byte) error
}

// PlatformClient defines an interface for receiving lifecycle events from the
// platform and sending adapter commands back to it.
type PlatformClient interface {
	Application() string

	Connect(LifecycleEventHandler) error
	Disconnect()

	PublishAdvance([]byte) error
	PublishCoordinationPoint([]byte) error
	PublishRefreshStatus([]byte) error
}

// OperatorCommandHandler defines functions for handling the operator command requests
type OperatorCommandHandler interface {
	HandlePreRefreshCheck([]byte) error
	HandleResumeRefresh([]byte) error
	HandleForceRefreshStart([]byte) error
}

// OperatorClient defines an interface for receiving operator commands and
// publishing their results.
type OperatorClient interface {
	Application() string

	Subscribe(OperatorCommandHandler) error
	Unsubscribe() error

	PublishCommandResult([]byte) error
}
