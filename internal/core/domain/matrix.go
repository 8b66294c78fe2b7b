// Package domain contains core domain types for the frame graph.
package domain

import "math"

// Mat4 is a 4x4 homogeneous rigid-body transform in row-major order.
// The upper-left 3x3 block is an orthogonal rotation and the last column
// holds the translation, so the inverse never needs a general solver.
type Mat4 [16]float64

// Vec3 is a 3D point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Pose6 is a position plus an orientation given as Euler angles applied
// in fixed axis order X, Y, Z.
type Pose6 struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64
}

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a pure translation transform.
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// RotationX returns a rotation about the X axis by angle radians.
func RotationX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[5] = c
	m[6] = -s
	m[9] = s
	m[10] = c
	return m
}

// RotationY returns a rotation about the Y axis by angle radians.
func RotationY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	return m
}

// RotationZ returns a rotation about the Z axis by angle radians.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0] = c
	m[1] = -s
	m[4] = s
	m[5] = c
	return m
}

// FromEuler returns the rotation built from the given Euler angles in
// fixed axis order X, Y, Z: R = Rx(roll) * Ry(pitch) * Rz(yaw).
func FromEuler(roll, pitch, yaw float64) Mat4 {
	return RotationX(roll).Mul(RotationY(pitch)).Mul(RotationZ(yaw))
}

// FromPose returns the rigid transform that first rotates by the pose's
// Euler angles and then translates to the pose's position.
func FromPose(p Pose6) Mat4 {
	m := FromEuler(p.Roll, p.Pitch, p.Yaw)
	m[3] = p.X
	m[7] = p.Y
	m[11] = p.Z
	return m
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[i*4+k] * o[k*4+j]
			}
			r[i*4+j] = sum
		}
	}
	return r
}

// Inverse returns the algebraic inverse of the rigid transform: the
// rotation block transposed, the translation rotated back and negated.
// Valid input is never singular, so no error is reported.
func (m Mat4) Inverse() Mat4 {
	r := Identity()
	// Transposed rotation block.
	for i := range 3 {
		for j := range 3 {
			r[i*4+j] = m[j*4+i]
		}
	}
	// t' = -R^T * t
	tx, ty, tz := m[3], m[7], m[11]
	r[3] = -(r[0]*tx + r[1]*ty + r[2]*tz)
	r[7] = -(r[4]*tx + r[5]*ty + r[6]*tz)
	r[11] = -(r[8]*tx + r[9]*ty + r[10]*tz)
	return r
}

// TransformPoint applies the homogeneous transform to a 3D point and
// drops the homogeneous coordinate.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// Rotation returns the transform with its translation cleared, leaving
// only the rotation block.
func (m Mat4) Rotation() Mat4 {
	m[3], m[7], m[11] = 0, 0, 0
	return m
}

// Translation returns the translation column as a vector.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// EulerXYZ extracts the Euler angles of the rotation block in fixed axis
// order X, Y, Z, so that FromEuler(roll, pitch, yaw) reproduces the
// rotation. Pitch is reported on the principal branch [-pi/2, pi/2].
func (m Mat4) EulerXYZ() (roll, pitch, yaw float64) {
	// R = Rx(roll)*Ry(pitch)*Rz(yaw):
	//   r02 = sin(pitch)
	//   r12 = -sin(roll)*cos(pitch),  r22 = cos(roll)*cos(pitch)
	//   r01 = -cos(pitch)*sin(yaw),   r00 = cos(pitch)*cos(yaw)
	r02 := m[2]
	if r02 >= 1 {
		// Gimbal lock looking straight up: roll and yaw are coupled.
		return math.Atan2(m[4], m[5]), math.Pi / 2, 0
	}
	if r02 <= -1 {
		return math.Atan2(-m[4], m[5]), -math.Pi / 2, 0
	}
	pitch = math.Asin(r02)
	roll = math.Atan2(-m[6], m[10])
	yaw = math.Atan2(-m[1], m[0])
	return roll, pitch, yaw
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Mat4) ApproxEqual(o Mat4, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
