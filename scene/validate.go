// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "errors"

// Validation errors returned by [Node.Validate]. The messages are
// user-facing; the hierarchy panel displays them next to the offending
// node.
var (
	ErrJointNoBody      = errors.New("joint has no rigid body among its ancestors")
	ErrJoint2DNoBody    = errors.New("2d joint has no 2d rigid body among its ancestors")
	ErrColliderNoBody   = errors.New("collider is not a direct child of a rigid body")
	ErrCollider2DNoBody = errors.New("2d collider is not a direct child of a 2d rigid body")
	ErrSoundNoSource    = errors.New("sound source has no audio buffer set")
	ErrZeroScale        = errors.New("node has zero scale and is invisible")
)

// Validate checks the node's structural and semantic constraints against
// the graph it lives in, dispatching on the node's capabilities. It
// returns nil if the node is valid and a diagnostic error otherwise.
// Validate never mutates the graph.
func (n *Node) Validate(g *Graph) error {
	if n.Transform.Scale.Length() == 0 {
		return ErrZeroScale
	}
	switch {
	case n.IsJoint():
		want := RigidBody
		err := ErrJointNoBody
		if n.Kind == Joint2D {
			want = RigidBody2D
			err = ErrJoint2DNoBody
		}
		for p := n.parent; p.IsSome(); {
			pn, ok := g.TryGet(p)
			if !ok {
				break
			}
			if pn.Kind == want {
				return nil
			}
			p = pn.parent
		}
		return err
	case n.IsCollider():
		want := RigidBody
		err := ErrColliderNoBody
		if n.Kind == Collider2D {
			want = RigidBody2D
			err = ErrCollider2DNoBody
		}
		if pn, ok := g.TryGet(n.parent); ok && pn.Kind == want {
			return nil
		}
		return err
	case n.IsSound():
		if n.Source == "" {
			return ErrSoundNoSource
		}
	}
	return nil
}
