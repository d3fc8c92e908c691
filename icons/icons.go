// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icons provides the built-in node icons of the hierarchy panel
// as embedded, lazily decoded images. Lookups are pure: decoding either
// succeeds and is cached, or the icon is reported as unavailable; there
// is no error path for callers to handle.
package icons

import (
	"bytes"
	_ "embed"
	"image"
	_ "image/png"
	"sync"

	"github.com/h2non/filetype"
)

// Built-in icon image data. Each is the byte-encoded key for [Load].
var (
	//go:embed png/light.png
	Light []byte

	//go:embed png/joint.png
	Joint []byte

	//go:embed png/rigid_body.png
	RigidBody []byte

	//go:embed png/collider.png
	Collider []byte

	//go:embed png/sound_source.png
	SoundSource []byte

	// Cube is the generic fallback icon for nodes with no more
	// specific classification.
	//go:embed png/cube.png
	Cube []byte
)

var (
	cacheMu sync.Mutex
	cache   = map[string]image.Image{}
)

// Load decodes the given byte-encoded icon, returning the image and true
// on success. Results are cached, so repeated lookups of the same key
// are cheap. It returns nil and false if the bytes are not a supported
// image or fail to decode.
func Load(data []byte) (image.Image, bool) {
	key := string(data)
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if img, ok := cache[key]; ok {
		return img, true
	}
	if !filetype.IsImage(data) {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	cache[key] = img
	return img, true
}
