// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/chewxy/math32"

// Vector3 is a 3D vector of float32 values.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new [Vector3] with the given components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// One is the unit-scale vector (1, 1, 1).
func One() Vector3 {
	return Vector3{X: 1, Y: 1, Z: 1}
}

// Mul returns the component-wise product of the two vectors.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Length returns the Euclidean length of the vector.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Transform is the local transform of a node relative to its parent.
type Transform struct {
	// Position is the local translation.
	Position Vector3

	// Rotation is the local rotation as Euler angles in radians.
	Rotation Vector3

	// Scale is the local scale; identity is (1, 1, 1).
	Scale Vector3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Scale: One()}
}
