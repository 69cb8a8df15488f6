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

import "github.com/eclipse-kanto/refresh-coordinator/api/types"

// EvaluateHealth aggregates per-unit health signals into a single verdict.
// The signals map uses nil for units whose health is unknown. A refreshed unit
// with an unknown signal counts as unhealthy so that the next unit never
// advances before the previous one confirmed its workload recovered.
// The verdict names the lowest unhealthy ordinal, unknown units last.
func EvaluateHealth(signals map[int]*bool, refreshed []int) types.HealthVerdict {
	verdict := types.HealthVerdict{Healthy: true}
	lowestUnhealthy := -1
	lowestUnknown := -1

	for unit, healthy := range signals {
		if healthy != nil && !*healthy {
			verdict.Healthy = false
			if lowestUnhealthy == -1 || unit < lowestUnhealthy {
				lowestUnhealthy = unit
			}
		}
	}
	for _, unit := range refreshed {
		healthy, reported := signals[unit]
		if !reported || healthy == nil {
			verdict.Healthy = false
			if lowestUnknown == -1 || unit < lowestUnknown {
				lowestUnknown = unit
			}
		}
	}

	if lowestUnhealthy != -1 {
		verdict.UnhealthyUnit = &lowestUnhealthy
	} else if lowestUnknown != -1 {
		verdict.UnhealthyUnit = &lowestUnknown
	}
	return verdict
}
