// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/worldview/resource"
	"cogentcore.org/worldview/scene"
)

const barrelDoc = `
name: barrel
root:
  name: barrel
  kind: rigid-body
  scale: [2, 2, 2]
  children:
    - name: shape
      kind: collider
    - name: creak
      kind: sound
      source: creak.ogg
`

func newTestManager(t *testing.T) *resource.Manager {
	t.Helper()
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fsys, "props", 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys,
		"props/barrel.model.yaml", []byte(barrelDoc), 0o644))
	require.NoError(t, hackpadfs.WriteFullFile(fsys,
		"props/broken.model.yaml", []byte("root: [unclosed"), 0o644))
	return resource.NewManager(fsys)
}

func TestNormalizePath(t *testing.T) {
	got, err := resource.NormalizePath("/assets", "/assets/props/barrel.model.yaml")
	require.NoError(t, err)
	assert.Equal(t, "props/barrel.model.yaml", got)

	got, err = resource.NormalizePath("/assets", "props/../props/barrel.model.yaml")
	require.NoError(t, err)
	assert.Equal(t, "props/barrel.model.yaml", got)

	_, err = resource.NormalizePath("/assets", "/etc/passwd")
	assert.ErrorIs(t, err, resource.ErrOutsideRoot)

	_, err = resource.NormalizePath("/assets", "../outside.model.yaml")
	assert.ErrorIs(t, err, resource.ErrOutsideRoot)
}

func TestTryRequestWrongExtension(t *testing.T) {
	m := newTestManager(t)
	assert.Nil(t, m.TryRequest("props/barrel.png"))
	assert.Nil(t, m.TryRequest("props/barrel"))
}

func TestLoadAndInstantiate(t *testing.T) {
	m := newTestManager(t)
	pending := m.TryRequest("props/barrel.model.yaml")
	require.NotNil(t, pending)
	model, err := pending.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "barrel", model.Name)

	g := scene.New()
	h := model.Instantiate(g)
	require.True(t, g.IsValidHandle(h))
	assert.Equal(t, 4, g.Len()) // content root + barrel + shape + creak

	n, _ := g.TryGet(h)
	assert.Equal(t, "barrel", n.Name)
	assert.Equal(t, scene.RigidBody, n.Kind)
	assert.Equal(t, scene.Vec3(2, 2, 2), n.Transform.Scale)
	assert.Equal(t, "props/barrel.model.yaml", n.Resource)
	assert.True(t, n.IsInstance())
	assert.Equal(t, g.Root(), n.Parent())
	require.Len(t, n.Children(), 2)

	shape, _ := g.TryGet(n.Children()[0])
	assert.Equal(t, scene.Collider, shape.Kind)
	assert.False(t, shape.IsInstance())
	creak, _ := g.TryGet(n.Children()[1])
	assert.Equal(t, "creak.ogg", creak.Source)
}

func TestInstancesAreIndependent(t *testing.T) {
	m := newTestManager(t)
	model, err := m.TryRequest("props/barrel.model.yaml").Await(context.Background())
	require.NoError(t, err)

	g := scene.New()
	a := model.Instantiate(g)
	b := model.Instantiate(g)
	an, _ := g.TryGet(a)
	bn, _ := g.TryGet(b)
	an.Name = "renamed"
	assert.Equal(t, "barrel", bn.Name)
}

func TestLoadMissing(t *testing.T) {
	m := newTestManager(t)
	_, err := m.TryRequest("props/nope.model.yaml").Await(context.Background())
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestLoadBadFormat(t *testing.T) {
	m := newTestManager(t)
	_, err := m.TryRequest("props/broken.model.yaml").Await(context.Background())
	assert.ErrorIs(t, err, resource.ErrBadFormat)
}

func TestLoadCaches(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()
	a, err := m.TryRequest("props/barrel.model.yaml").Await(ctx)
	require.NoError(t, err)
	b, err := m.TryRequest("props/barrel.model.yaml").Await(ctx)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDirManagerInvalidatesOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "barrel.model.yaml")
	require.NoError(t, os.WriteFile(file, []byte(barrelDoc), 0o644))

	m, err := resource.NewDirManager(dir)
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	model, err := m.TryRequest("barrel.model.yaml").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "barrel", model.Name)

	renamed := strings.Replace(barrelDoc, "name: barrel", "name: keg", 1)
	require.NoError(t, os.WriteFile(file, []byte(renamed), 0o644))

	// the watcher drops the cache entry asynchronously; poll until a
	// fresh load observes the rewritten document
	require.Eventually(t, func() bool {
		model, err := m.TryRequest("barrel.model.yaml").Await(ctx)
		return err == nil && model.Name == "keg"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestAwaitHonorsContext(t *testing.T) {
	m := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := m.TryRequest("props/barrel.model.yaml")
	_, err := p.Await(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
