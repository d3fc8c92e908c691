// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/worldview/icons"
)

func TestLoadBuiltins(t *testing.T) {
	for _, data := range [][]byte{
		icons.Light, icons.Joint, icons.RigidBody,
		icons.Collider, icons.SoundSource, icons.Cube,
	} {
		img, ok := icons.Load(data)
		require.True(t, ok)
		require.NotNil(t, img)
	}
}

func TestLoadIsCached(t *testing.T) {
	a, ok := icons.Load(icons.Cube)
	require.True(t, ok)
	b, ok := icons.Load(icons.Cube)
	require.True(t, ok)
	assert.Same(t, a, b)
}

func TestLoadBadData(t *testing.T) {
	img, ok := icons.Load([]byte("definitely not an image"))
	assert.False(t, ok)
	assert.Nil(t, img)

	// valid PNG magic but truncated body: sniffs as an image yet
	// fails to decode
	img, ok = icons.Load([]byte("\x89PNG\r\n\x1a\n\x00\x00"))
	assert.False(t, ok)
	assert.Nil(t, img)
}
