// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the editable scene graph: an arena of [Node]s
// connected by parent and child [pool.Handle]s, with a designated content
// root. The graph maintains the hierarchy invariants (a node's parent
// always lists it as a child, and no node is its own ancestor as long as
// relinking goes through [Graph.LinkNodes] with cycle-checked inputs),
// supports detaching whole sub-graphs as transferable units, and runs a
// per-node structural validation pass.
package scene

import "cogentcore.org/worldview/pool"

// Node is one element of the scene hierarchy. The linkage fields (parent
// and children) are unexported and maintained exclusively by [Graph]
// methods so the bidirectional invariant cannot be broken from outside;
// the data fields are plain exported values and are deep-copied during
// asset instantiation.
type Node struct {
	// Name is the display name of the node.
	Name string

	// Kind is the concrete kind of the node.
	Kind Kind

	// Transform is the node's local transform relative to its parent.
	Transform Transform

	// Resource is the normalized path of the asset this node was
	// instantiated from. It is empty for directly authored nodes; a
	// non-empty value marks the node as an asset instance.
	Resource string

	// Source is the audio buffer path for [Sound] nodes.
	Source string

	parent   pool.Handle[Node]
	children []pool.Handle[Node]
}

// NewNode returns a new [Base] node with the given name and an identity
// transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: Identity()}
}

// NewNodeOf returns a new node of the given kind with the given name and
// an identity transform.
func NewNodeOf(kind Kind, name string) *Node {
	return &Node{Name: name, Kind: kind, Transform: Identity()}
}

// Parent returns the handle of the node's parent, which is nil for the
// content root and for detached nodes.
func (n *Node) Parent() pool.Handle[Node] {
	return n.parent
}

// Children returns the node's ordered child handles. The returned slice
// is owned by the node and must not be modified.
func (n *Node) Children() []pool.Handle[Node] {
	return n.children
}

// IsInstance reports whether the node was instantiated from an asset
// (its origin resource link is set) rather than authored directly.
func (n *Node) IsInstance() bool {
	return n.Resource != ""
}

// Capability predicates. These classify what a node can do without
// reference to its concrete kind, for dispatch without inheritance.

// IsPointLight reports whether the node is a point light.
func (n *Node) IsPointLight() bool { return n.Kind == PointLight }

// IsDirectionalLight reports whether the node is a directional light.
func (n *Node) IsDirectionalLight() bool { return n.Kind == DirectionalLight }

// IsSpotLight reports whether the node is a spot light.
func (n *Node) IsSpotLight() bool { return n.Kind == SpotLight }

// IsLight reports whether the node is any kind of light.
func (n *Node) IsLight() bool {
	return n.IsPointLight() || n.IsDirectionalLight() || n.IsSpotLight()
}

// IsJoint reports whether the node is a physics joint, 2D or 3D.
func (n *Node) IsJoint() bool {
	return n.Kind == Joint || n.Kind == Joint2D
}

// IsRigidBody reports whether the node is a rigid body, 2D or 3D.
func (n *Node) IsRigidBody() bool {
	return n.Kind == RigidBody || n.Kind == RigidBody2D
}

// IsCollider reports whether the node is a collider, 2D or 3D.
func (n *Node) IsCollider() bool {
	return n.Kind == Collider || n.Kind == Collider2D
}

// IsSound reports whether the node is a sound source.
func (n *Node) IsSound() bool { return n.Kind == Sound }
