package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
)

const tol = 1e-12

func TestMat4_MulIdentity(t *testing.T) {
	m := domain.FromPose(domain.Pose6{X: 1, Y: 2, Z: 3, Roll: 0.3, Pitch: -0.2, Yaw: 1.1})

	assert.True(t, m.Mul(domain.Identity()).ApproxEqual(m, tol))
	assert.True(t, domain.Identity().Mul(m).ApproxEqual(m, tol))
}

func TestMat4_InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Mat4
	}{
		{name: "identity", m: domain.Identity()},
		{name: "pure translation", m: domain.Translation(1, -2, 3)},
		{name: "pure rotation", m: domain.FromEuler(0.4, -1.1, 2.2)},
		{name: "full pose", m: domain.FromPose(domain.Pose6{X: 5, Y: -1, Z: 0.5, Roll: 0.1, Pitch: 0.2, Yaw: 0.3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.m.Mul(tt.m.Inverse()).ApproxEqual(domain.Identity(), 1e-9))
			assert.True(t, tt.m.Inverse().Mul(tt.m).ApproxEqual(domain.Identity(), 1e-9))
		})
	}
}

func TestMat4_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Mat4
		in   domain.Vec3
		want domain.Vec3
	}{
		{
			name: "translation only",
			m:    domain.Translation(1, 2, 3),
			in:   domain.Vec3{X: 1, Y: 1, Z: 1},
			want: domain.Vec3{X: 2, Y: 3, Z: 4},
		},
		{
			name: "quarter turn about z",
			m:    domain.RotationZ(math.Pi / 2),
			in:   domain.Vec3{X: 1},
			want: domain.Vec3{Y: 1},
		},
		{
			name: "rotate then translate",
			m:    domain.FromPose(domain.Pose6{X: 10, Yaw: math.Pi / 2}),
			in:   domain.Vec3{X: 1},
			want: domain.Vec3{X: 10, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestMat4_EulerXYZRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{name: "zero", roll: 0, pitch: 0, yaw: 0},
		{name: "single axis", roll: 0.7},
		{name: "mixed", roll: 0.3, pitch: -0.4, yaw: 1.9},
		{name: "near lock", roll: 0.2, pitch: 1.5, yaw: -0.1},
		{name: "negative angles", roll: -2.0, pitch: 0.9, yaw: -3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.FromEuler(tt.roll, tt.pitch, tt.yaw)
			roll, pitch, yaw := m.EulerXYZ()
			// Angles may differ from the inputs outside the principal
			// branch; the rebuilt rotation is what must match.
			rebuilt := domain.FromEuler(roll, pitch, yaw)
			assert.True(t, rebuilt.ApproxEqual(m, 1e-9))
		})
	}
}

func TestMat4_EulerXYZGimbalLock(t *testing.T) {
	up := domain.FromEuler(0.5, math.Pi/2, 0)
	roll, pitch, yaw := up.EulerXYZ()
	require.InDelta(t, math.Pi/2, pitch, 1e-9)
	assert.Zero(t, yaw)
	rebuilt := domain.FromEuler(roll, pitch, yaw)
	assert.True(t, rebuilt.ApproxEqual(up, 1e-9))

	down := domain.FromEuler(-0.3, -math.Pi/2, 0)
	roll, pitch, yaw = down.EulerXYZ()
	require.InDelta(t, -math.Pi/2, pitch, 1e-9)
	assert.Zero(t, yaw)
	rebuilt = domain.FromEuler(roll, pitch, yaw)
	assert.True(t, rebuilt.ApproxEqual(down, 1e-9))
}

func TestMat4_RotationClearsTranslation(t *testing.T) {
	m := domain.FromPose(domain.Pose6{X: 4, Y: 5, Z: 6, Roll: 0.2})
	r := m.Rotation()

	assert.Equal(t, domain.Vec3{}, r.Translation())
	assert.Equal(t, domain.Vec3{X: 4, Y: 5, Z: 6}, m.Translation())
}

func TestFromPose_ComposesRotationAndTranslation(t *testing.T) {
	p := domain.Pose6{X: 1, Y: 2, Z: 3, Roll: 0.1, Pitch: 0.2, Yaw: 0.3}
	m := domain.FromPose(p)

	want := domain.Translation(1, 2, 3).Mul(domain.FromEuler(0.1, 0.2, 0.3))
	assert.True(t, m.ApproxEqual(want, tol))
}
