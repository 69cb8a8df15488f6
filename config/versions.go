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

package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/eclipse-kanto/refresh-coordinator/api/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PinnedVersions holds the versions pinned by the distributed artifact, read
// from the versions TOML file shipped next to the code.
type PinnedVersions struct {
	// Code is the pinned code version, "track/X.Y.Z" with an optional suffix.
	Code string `toml:"code"`
	// Workload is the user-facing version of the operated workload.
	Workload string `toml:"workload"`
	// Revisions maps processor architectures to pinned workload revisions.
	Revisions map[string]string `toml:"revisions"`
}

// LoadPinnedVersions reads and validates the pinned versions TOML file.
func LoadPinnedVersions(filePath string) (*PinnedVersions, error) {
	pinned := &PinnedVersions{}
	if _, err := toml.DecodeFile(filePath, pinned); err != nil {
		return nil, errors.Wrapf(err, "cannot read pinned versions from %s", filePath)
	}
	if _, err := pinned.CodeVersion(); err != nil {
		return nil, errors.Wrapf(err, "invalid pinned code version in %s", filePath)
	}
	return pinned, nil
}

// CodeVersion returns the pinned code version in its typed form.
func (pinned *PinnedVersions) CodeVersion() (types.CodeVersion, error) {
	return types.ParseCodeVersion(pinned.Code)
}

// RevisionFor returns the pinned workload revision for the given architecture.
func (pinned *PinnedVersions) RevisionFor(architecture string) (string, bool) {
	revision, ok := pinned.Revisions[architecture]
	return revision, ok
}

type workloadMetadata struct {
	Name      string `yaml:"name"`
	Resources map[string]struct {
		Type           string `yaml:"type"`
		UpstreamSource string `yaml:"upstream-source"`
	} `yaml:"resources"`
}

// LoadWorkloadContainerPin reads the pinned workload container image reference
// from the YAML metadata file. Returns the upstream source of the first
// container-image resource.
func LoadWorkloadContainerPin(filePath string) (string, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read metadata from %s", filePath)
	}
	metadata := &workloadMetadata{}
	if err = yaml.Unmarshal(file, metadata); err != nil {
		return "", errors.Wrapf(err, "cannot parse metadata from %s", filePath)
	}
	for _, resource := range metadata.Resources {
		if resource.Type == "oci-image" && resource.UpstreamSource != "" {
			return resource.UpstreamSource, nil
		}
	}
	return "", errors.Errorf("no container-image resource with an upstream source in %s", filePath)
}
