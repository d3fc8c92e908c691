// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection provides the editor's selection model: a tagged
// variant over the kinds of things that can be selected. The graph-node
// variant is an ordered set of handles with insert-or-exclude (toggle)
// semantics; other editor domains contribute opaque variants that this
// package carries but does not interpret.
package selection

import (
	"slices"

	"cogentcore.org/worldview/pool"
)

// Kind is the variant tag of a [Selection].
type Kind int32

const (
	// None means nothing is selected.
	None Kind = iota

	// Graph means a set of scene graph nodes is selected.
	Graph

	// Other means something outside the scene graph (another editor
	// domain) is selected; its value is opaque to this package.
	Other
)

// GraphSelection is an ordered set of selected graph node handles.
// Order is insertion order; set membership is what matters for equality.
type GraphSelection struct {
	// Nodes is the ordered set of selected node handles.
	Nodes []pool.ErasedHandle
}

// SingleOrEmpty returns a selection of just the given handle, or an empty
// selection if the handle is nil.
func SingleOrEmpty(h pool.ErasedHandle) GraphSelection {
	if h.IsNil() {
		return GraphSelection{}
	}
	return GraphSelection{Nodes: []pool.ErasedHandle{h}}
}

// Contains reports whether the handle is in the selection.
func (s *GraphSelection) Contains(h pool.ErasedHandle) bool {
	return slices.Contains(s.Nodes, h)
}

// InsertOrExclude toggles the handle: if it is already selected it is
// removed, otherwise it is appended.
func (s *GraphSelection) InsertOrExclude(h pool.ErasedHandle) {
	if i := slices.Index(s.Nodes, h); i >= 0 {
		s.Nodes = slices.Delete(s.Nodes, i, i+1)
		return
	}
	s.Nodes = append(s.Nodes, h)
}

// Equal reports whether the two selections contain the same handles with
// the same multiplicities, regardless of order.
func (s GraphSelection) Equal(o GraphSelection) bool {
	if len(s.Nodes) != len(o.Nodes) {
		return false
	}
	counts := make(map[pool.ErasedHandle]int, len(s.Nodes))
	for _, h := range s.Nodes {
		counts[h]++
	}
	for _, h := range o.Nodes {
		counts[h]--
		if counts[h] < 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of the selection that shares no storage with the
// original.
func (s GraphSelection) Clone() GraphSelection {
	return GraphSelection{Nodes: slices.Clone(s.Nodes)}
}

// Selection is the active editor selection: [None], a [Graph] node set,
// or an opaque [Other] domain value. The zero value is [None].
type Selection struct {
	kind  Kind
	graph GraphSelection
	other any
}

// NewGraph returns a [Graph] selection over the given node set.
func NewGraph(gs GraphSelection) Selection {
	return Selection{kind: Graph, graph: gs}
}

// NewOther returns an opaque selection owned by another editor domain.
func NewOther(value any) Selection {
	return Selection{kind: Other, other: value}
}

// Kind returns the variant tag.
func (s Selection) Kind() Kind {
	return s.kind
}

// GraphSelection returns the graph node set and true if this is a
// [Graph] selection, and the empty set and false otherwise.
func (s Selection) GraphSelection() (GraphSelection, bool) {
	if s.kind != Graph {
		return GraphSelection{}, false
	}
	return s.graph, true
}

// Other returns the opaque selection value for the [Other] variant.
func (s Selection) Other() any {
	return s.other
}

// Toggle returns the selection with the given handle toggled per
// insert-or-exclude semantics. On [None] it produces a [Graph] selection
// of just that handle; on [Other] it is a no-op, since toggling graph
// nodes has no meaning for foreign selections.
func (s Selection) Toggle(h pool.ErasedHandle) Selection {
	switch s.kind {
	case None:
		return NewGraph(SingleOrEmpty(h))
	case Graph:
		gs := s.graph.Clone()
		gs.InsertOrExclude(h)
		return NewGraph(gs)
	default:
		return s
	}
}

// Equal reports whether the two selections are structurally equal:
// same variant, and for [Graph] the same node set.
func (s Selection) Equal(o Selection) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case Graph:
		return s.graph.Equal(o.graph)
	case Other:
		return s.other == o.other
	default:
		return true
	}
}

// Clone returns a copy of the selection that shares no storage with the
// original.
func (s Selection) Clone() Selection {
	if s.kind == Graph {
		return NewGraph(s.graph.Clone())
	}
	return s
}
