// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/worldview/pool"
	"cogentcore.org/worldview/selection"
)

func eh(i int32) pool.ErasedHandle {
	return pool.ErasedHandle{Index: i, Generation: 1}
}

func TestToggleFromNone(t *testing.T) {
	var s selection.Selection
	assert.Equal(t, selection.None, s.Kind())

	s = s.Toggle(eh(1))
	require.Equal(t, selection.Graph, s.Kind())
	gs, ok := s.GraphSelection()
	require.True(t, ok)
	assert.Equal(t, []pool.ErasedHandle{eh(1)}, gs.Nodes)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := selection.NewGraph(selection.GraphSelection{
		Nodes: []pool.ErasedHandle{eh(1), eh(2)},
	})
	twice := s.Toggle(eh(3)).Toggle(eh(3))
	assert.True(t, s.Equal(twice))

	// also for a handle already present
	twice = s.Toggle(eh(1)).Toggle(eh(1))
	assert.True(t, s.Equal(twice))
}

func TestToggleDoesNotMutateOriginal(t *testing.T) {
	s := selection.NewGraph(selection.SingleOrEmpty(eh(1)))
	_ = s.Toggle(eh(2))
	gs, _ := s.GraphSelection()
	assert.Equal(t, []pool.ErasedHandle{eh(1)}, gs.Nodes)
}

func TestToggleOnOtherIsNoOp(t *testing.T) {
	s := selection.NewOther("navmesh:3")
	got := s.Toggle(eh(1))
	assert.True(t, s.Equal(got))
	assert.Equal(t, selection.Other, got.Kind())
}

func TestEqualIsOrderIndependent(t *testing.T) {
	a := selection.NewGraph(selection.GraphSelection{
		Nodes: []pool.ErasedHandle{eh(1), eh(2)},
	})
	b := selection.NewGraph(selection.GraphSelection{
		Nodes: []pool.ErasedHandle{eh(2), eh(1)},
	})
	assert.True(t, a.Equal(b))

	c := selection.NewGraph(selection.SingleOrEmpty(eh(1)))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(selection.Selection{}))
	assert.False(t, a.Equal(selection.NewOther("x")))
}

func TestEqualCountsDuplicates(t *testing.T) {
	aa := selection.GraphSelection{
		Nodes: []pool.ErasedHandle{eh(1), eh(1)},
	}
	ab := selection.GraphSelection{
		Nodes: []pool.ErasedHandle{eh(1), eh(2)},
	}
	assert.False(t, aa.Equal(ab))
	assert.False(t, ab.Equal(aa))
	assert.True(t, aa.Equal(aa.Clone()))
}

func TestSingleOrEmpty(t *testing.T) {
	gs := selection.SingleOrEmpty(pool.ErasedHandle{})
	assert.Empty(t, gs.Nodes)
	gs = selection.SingleOrEmpty(eh(7))
	assert.True(t, gs.Contains(eh(7)))
}
