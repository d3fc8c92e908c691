// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// Kind is the concrete kind of a scene [Node]. Editing code should prefer
// the capability predicates on [Node] (IsLight, IsJoint, ...) over
// switching on kinds directly, so that behavior keyed on what a node can
// do survives the addition of new kinds.
type Kind int32

const (
	// Base is a plain hierarchy node with no additional behavior.
	Base Kind = iota

	// PointLight emits light uniformly in all directions.
	PointLight

	// DirectionalLight emits parallel light, like the sun.
	DirectionalLight

	// SpotLight emits a cone of light.
	SpotLight

	// Joint is a 3D physics joint binding its rigid body to another.
	Joint

	// Joint2D is the 2D variant of [Joint].
	Joint2D

	// RigidBody is a 3D physics body.
	RigidBody

	// RigidBody2D is the 2D variant of [RigidBody].
	RigidBody2D

	// Collider is a 3D collision shape; it must be parented to a rigid body.
	Collider

	// Collider2D is the 2D variant of [Collider].
	Collider2D

	// Sound is an audio source playing a buffer at the node's position.
	Sound
)

var kindNames = []string{"base", "point-light", "directional-light",
	"spot-light", "joint", "joint2d", "rigid-body", "rigid-body2d",
	"collider", "collider2d", "sound"}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// KindFromString returns the kind with the given string representation,
// as produced by [Kind.String]. It returns an error for unknown names;
// the empty string maps to [Base].
func KindFromString(s string) (Kind, error) {
	if s == "" {
		return Base, nil
	}
	for i, nm := range kindNames {
		if nm == s {
			return Kind(i), nil
		}
	}
	return Base, fmt.Errorf("scene: unknown node kind %q", s)
}
