// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"iter"
	"slices"

	"cogentcore.org/worldview/pool"
)

// Handle is a typed handle to a scene [Node].
type Handle = pool.Handle[Node]

// Graph is an owning arena of scene [Node]s with a designated content
// root. All hierarchy mutation goes through the graph so the
// bidirectional parent/child invariant always holds: every linked node's
// parent lists it as a child, and vice versa.
//
// Graph is exclusively owned by the editing session; it is not safe for
// concurrent use.
type Graph struct {
	nodes pool.Pool[Node]
	root  Handle
}

// New returns a new graph containing only the content root node.
func New() *Graph {
	g := &Graph{}
	g.root = g.nodes.Spawn(NewNode("Root"))
	return g
}

// Root returns the handle of the content root.
func (g *Graph) Root() Handle {
	return g.root
}

// AddNode places the node into the graph and links it under the content
// root, returning its handle. Use [Graph.LinkNodes] to move it elsewhere.
func (g *Graph) AddNode(n *Node) Handle {
	h := g.nodes.Spawn(n)
	g.LinkNodes(h, g.root)
	return h
}

// TryGet resolves the handle, returning nil and false if it does not
// refer to a live node. It never panics.
func (g *Graph) TryGet(h Handle) (*Node, bool) {
	return g.nodes.TryGet(h)
}

// IsValidHandle reports whether the handle refers to a live node.
func (g *Graph) IsValidHandle(h Handle) bool {
	return g.nodes.IsValidHandle(h)
}

// Len returns the number of live nodes in the graph, including nodes of
// detached sub-trees that have not been taken out with
// [Graph.TakeReserveSubGraph].
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// All returns an iterator over all live (handle, node) pairs in arena
// order.
func (g *Graph) All() iter.Seq2[Handle, *Node] {
	return g.nodes.All()
}

// LinkNodes makes child a child of parent, unlinking it from its current
// parent first. Both handles must be live; invalid handles make this a
// no-op. LinkNodes does not check for cycles: callers that relink
// user-supplied handles must verify that parent is not a descendant of
// child first (see [Graph.IsDescendant]).
func (g *Graph) LinkNodes(child, parent Handle) {
	cn, ok := g.nodes.TryGet(child)
	if !ok {
		return
	}
	pn, ok := g.nodes.TryGet(parent)
	if !ok {
		return
	}
	g.Unlink(child)
	cn.parent = parent
	pn.children = append(pn.children, child)
}

// Unlink detaches the node from its parent, leaving it (and its
// sub-tree) in the graph but outside the hierarchy. Invalid handles and
// already detached nodes are a no-op.
func (g *Graph) Unlink(child Handle) {
	cn, ok := g.nodes.TryGet(child)
	if !ok {
		return
	}
	if pn, ok := g.nodes.TryGet(cn.parent); ok {
		if i := slices.Index(pn.children, child); i >= 0 {
			pn.children = slices.Delete(pn.children, i, i+1)
		}
	}
	cn.parent = Handle{}
}

// IsDescendant reports whether h is node or one of node's descendants,
// by walking parent links upward from h. Walking up is always finite
// because the hierarchy is acyclic.
func (g *Graph) IsDescendant(h, node Handle) bool {
	for p := h; p.IsSome(); {
		if p == node {
			return true
		}
		n, ok := g.nodes.TryGet(p)
		if !ok {
			return false
		}
		p = n.parent
	}
	return false
}

// SubGraph is a detached sub-tree taken out of a [Graph] with
// [Graph.TakeReserveSubGraph]. The arena slots of its nodes stay
// reserved while detached, so all handles into the sub-tree (including
// those held by selections and undo records) become valid again when it
// is put back.
type SubGraph struct {
	// Root is the handle of the sub-tree's root node.
	Root Handle

	// Parent is the handle the root was linked under when taken.
	Parent Handle

	nodes []subGraphNode
}

type subGraphNode struct {
	handle Handle
	node   *Node
}

// TakeReserveSubGraph detaches the node and all of its descendants from
// the graph as one transferable unit. It returns nil if the handle is
// not live.
func (g *Graph) TakeReserveSubGraph(h Handle) *SubGraph {
	n, ok := g.nodes.TryGet(h)
	if !ok {
		return nil
	}
	sg := &SubGraph{Root: h, Parent: n.parent}
	g.Unlink(h)
	g.takeInto(h, sg)
	return sg
}

// takeInto reserves the node and its descendants into the sub-graph,
// depth first.
func (g *Graph) takeInto(h Handle, sg *SubGraph) {
	n, ok := g.nodes.ReserveTake(h)
	if !ok {
		return
	}
	sg.nodes = append(sg.nodes, subGraphNode{handle: h, node: n})
	for _, c := range n.children {
		g.takeInto(c, sg)
	}
}

// PutSubGraphBack restores a detached sub-graph into the graph, relinking
// its root under the parent it was taken from (or the content root if
// that parent is no longer live). All previous handles into the sub-tree
// are valid again afterward.
func (g *Graph) PutSubGraphBack(sg *SubGraph) {
	if sg == nil {
		return
	}
	for _, sn := range sg.nodes {
		g.nodes.Restore(sn.handle, sn.node)
	}
	parent := sg.Parent
	if !g.nodes.IsValidHandle(parent) {
		parent = g.root
	}
	g.LinkNodes(sg.Root, parent)
}
