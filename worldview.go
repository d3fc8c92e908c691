// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package worldview is the scene-graph editing core behind an editor's
// world / hierarchy panel. It connects a generic tree view to the live
// [scene.Graph] through the [DataProvider] contract: read queries are
// total and degrade to neutral defaults on invalid handles, and every
// mutation request is turned into reversible [commands] submitted as a
// single undoable unit, never applied directly.
package worldview

import (
	"context"
	"image"

	"cogentcore.org/worldview/icons"
	"cogentcore.org/worldview/pool"
	"cogentcore.org/worldview/scene"
)

// DataProvider is the contract the world / hierarchy panel edits a scene
// through. The read side is total: invalid or stale handles yield
// neutral defaults (empty lists, nil handles, false), never panics. The
// mutation side never touches the graph directly; it builds commands and
// submits them for ordered execution, so every user action is one
// undoable step.
type DataProvider interface {
	// Root returns the handle of the scene's content root.
	Root() pool.ErasedHandle

	// Path returns the file path of the scene being edited, if any.
	Path() string

	// ChildrenOf returns the ordered child handles of the node, empty
	// if the handle is invalid.
	ChildrenOf(node pool.ErasedHandle) []pool.ErasedHandle

	// ChildCountOf returns the number of children of the node, zero if
	// the handle is invalid.
	ChildCountOf(node pool.ErasedHandle) int

	// HasChild reports whether child is a direct child of node.
	HasChild(node, child pool.ErasedHandle) bool

	// ParentOf returns the parent handle of the node, nil for the root
	// and for invalid handles.
	ParentOf(node pool.ErasedHandle) pool.ErasedHandle

	// NameOf returns the display name of the node, and false if the
	// handle is invalid.
	NameOf(node pool.ErasedHandle) (string, bool)

	// IsValidHandle reports whether the handle refers to a live node.
	IsValidHandle(node pool.ErasedHandle) bool

	// IconFor returns the classification icon for the node, and false
	// if the handle is invalid or the icon cannot be decoded.
	IconFor(node pool.ErasedHandle) (image.Image, bool)

	// IsInstance reports whether the node was instantiated from an
	// asset rather than authored directly.
	IsInstance(node pool.ErasedHandle) bool

	// Selection returns the handles of the currently selected nodes,
	// empty unless the active selection is the graph-node variant.
	Selection() []pool.ErasedHandle

	// RequestReparent asks to move the selected nodes under newParent.
	// See [SceneProvider.RequestReparent] for the exact semantics.
	RequestReparent(child, newParent pool.ErasedHandle)

	// RequestAssetDrop asks to instantiate the asset at the given path
	// under the target node. See [SceneProvider.RequestAssetDrop].
	RequestAssetDrop(ctx context.Context, path string, target pool.ErasedHandle)

	// OnSelectionChanged folds the given handles into a fresh selection
	// and submits a selection change if it differs from the active one.
	OnSelectionChanged(nodes []pool.ErasedHandle)

	// Validate runs the structural validation pass over every live
	// node, returning one result per node.
	Validate() []Result
}

// Result is the validation outcome for one node: Err is nil if the node
// is valid, and the diagnostic to display otherwise.
type Result struct {
	// Node is the validated node.
	Node pool.ErasedHandle

	// Err is the diagnostic, or nil if the node is valid.
	Err error
}

// Capabilities classifies what a node can do, for icon dispatch without
// reference to concrete node kinds. [scene.Node] implements it.
type Capabilities interface {
	// IsLight reports whether the node emits light of any kind.
	IsLight() bool

	// IsJoint reports whether the node is a 2D or 3D physics joint.
	IsJoint() bool

	// IsRigidBody reports whether the node is a 2D or 3D rigid body.
	IsRigidBody() bool

	// IsCollider reports whether the node is a 2D or 3D collider.
	IsCollider() bool

	// IsSound reports whether the node is a sound source.
	IsSound() bool
}

// iconClasses is the icon classification table, evaluated in order with
// first match winning. The precedence (light, joint, rigid body,
// collider, sound, generic) is part of the panel's contract and must not
// be reordered.
var iconClasses = []struct {
	match func(Capabilities) bool
	data  []byte
}{
	{Capabilities.IsLight, icons.Light},
	{Capabilities.IsJoint, icons.Joint},
	{Capabilities.IsRigidBody, icons.RigidBody},
	{Capabilities.IsCollider, icons.Collider},
	{Capabilities.IsSound, icons.SoundSource},
}

// IconDataFor returns the byte-encoded icon key for the first matching
// capability of the node, or the generic cube icon if none match.
func IconDataFor(c Capabilities) []byte {
	for _, ic := range iconClasses {
		if ic.match(c) {
			return ic.data
		}
	}
	return icons.Cube
}

var (
	_ DataProvider = (*SceneProvider)(nil)
	_ Capabilities = (*scene.Node)(nil)
)
