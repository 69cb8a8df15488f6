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

package progression

import (
	"fmt"

	"github.com/eclipse-kanto/refresh-coordinator/api/types"
)

// PinnedWorkloadValidator validates a target against the versions pinned in
// the distributed artifact. Empty pins are not enforced.
type PinnedWorkloadValidator struct {
	// WorkloadVersion is the workload version validated for the pinned code version.
	WorkloadVersion string
	// WorkloadContainer is the validated workload container image reference.
	WorkloadContainer string
	// Revisions maps processor architectures to validated workload revisions.
	Revisions map[string]string
	// Architecture is the architecture this unit runs on.
	Architecture string
}

// ValidateWorkload checks that the target runs the workload variant pinned for its code version.
func (validator *PinnedWorkloadValidator) ValidateWorkload(target types.TargetVersion) error {
	if validator.WorkloadVersion != "" && target.WorkloadVersion != validator.WorkloadVersion {
		return fmt.Errorf("workload version %s is not validated to work with code version %s, expected %s",
			target.WorkloadVersion, target.CodeVersion, validator.WorkloadVersion)
	}
	if validator.WorkloadContainer != "" && target.WorkloadContainer != validator.WorkloadContainer {
		return fmt.Errorf("workload container %s is not validated to work with code version %s, expected %s",
			target.WorkloadContainer, target.CodeVersion, validator.WorkloadContainer)
	}
	if len(validator.Revisions) > 0 && validator.Architecture != "" {
		pinned, ok := validator.Revisions[validator.Architecture]
		if !ok {
			return fmt.Errorf("no workload revision is pinned for architecture %s", validator.Architecture)
		}
		if target.CodeRevision != "" && target.CodeRevision != pinned {
			return fmt.Errorf("workload revision %s is not validated for architecture %s, expected %s",
				target.CodeRevision, validator.Architecture, pinned)
		}
	}
	return nil
}
