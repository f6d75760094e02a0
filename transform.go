package spincube

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the fixed viewing parameters.
type Camera struct {
	FovY     float32 // vertical field of view in degrees
	Aspect   float32
	Near     float32
	Far      float32
	Distance float32 // how far the camera sits back along +Z
}

// Transforms are the three matrices uploaded as uniforms every frame.
type Transforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Transforms rebuilds the model, view and projection matrices for the
// given rotation angle in degrees.
func (c Camera) Transforms(angle float32) Transforms {
	return Transforms{
		Model:      RotationY(angle),
		View:       Translation(0, 0, -c.Distance),
		Projection: Perspective(c.FovY, c.Aspect, c.Near, c.Far),
	}
}

// Perspective creates a symmetric perspective projection mapping
// right-handed view space to a [-1,1] depth range.
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(mgl32.DegToRad(fovY)/2)
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}

// Translation creates a pure translation matrix.
func Translation(x, y, z float32) mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotationY creates a rotation about the vertical axis. The angle is in degrees.
func RotationY(angle float32) mgl32.Mat4 {
	rad := mgl32.DegToRad(angle)
	c, s := math32.Cos(rad), math32.Sin(rad)
	return mgl32.Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Advance integrates the rotation angle by one Euler step.
func Advance(angle, rate, dt float32) float32 {
	return angle + rate*dt
}
