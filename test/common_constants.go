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

package test

import (
	"time"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
)

// SessionID test constant
const SessionID = "testSessionId"

// Application test constant
const Application = "testapp"

// Interval test constant
const Interval = 1 * time.Second

// OriginalCode test constant, the code version the fleet starts from
var OriginalCode = types.MustParseCodeVersion("1/1.2.0")

// TargetCode test constant, the code version the fleet refreshes to
var TargetCode = types.MustParseCodeVersion("1/1.3.0")

// Target test constant
var Target = types.TargetVersion{
	CodeVersion:       TargetCode,
	CodeRevision:      "103",
	WorkloadVersion:   "14.11",
	WorkloadContainer: "registry/testapp@sha256:target",
}

// Original test constant, matching the versions of a not yet refreshed fleet
var Original = types.TargetVersion{
	CodeVersion:       OriginalCode,
	CodeRevision:      "102",
	WorkloadVersion:   "14.10",
	WorkloadContainer: "registry/testapp@sha256:original",
}
