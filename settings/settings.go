// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds the editor session settings that the scene
// editing core consumes, persisted as TOML.
package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/worldview/scene"
)

// Settings are the editing session settings.
type Settings struct {
	// AssetRoot is the directory that asset paths are resolved
	// relative to.
	AssetRoot string `toml:"asset-root"`

	// InstantiationScale is the local scale applied to freshly
	// instantiated asset instances.
	InstantiationScale scene.Vector3 `toml:"instantiation-scale"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{
		AssetRoot:          "assets",
		InstantiationScale: scene.One(),
	}
}

// Open reads settings from the given TOML file, with defaults for any
// fields the file does not set.
func Open(filename string) (*Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("settings: parsing %s: %w", filename, err)
	}
	return s, nil
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}
