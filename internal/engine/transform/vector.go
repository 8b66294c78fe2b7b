package transform

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
)

// TransformPoint expresses a point given in orig's frame in dest's frame.
func (c *Cache) TransformPoint(ctx context.Context, dest string, p domain.Vec3, orig string) (domain.Vec3, error) {
	m, err := c.Transform(ctx, dest, orig)
	if err != nil {
		return domain.Vec3{}, err
	}
	return m.TransformPoint(p), nil
}

// TransformOrigin returns the position of orig's frame origin expressed
// in dest's frame.
func (c *Cache) TransformOrigin(ctx context.Context, dest, orig string) (domain.Vec3, error) {
	return c.TransformPoint(ctx, dest, domain.Vec3{}, orig)
}

// TransformPose expresses a full pose given in orig's frame in dest's
// frame. The position goes through the homogeneous transform; the
// orientation composes the transform's rotation block with the pose's
// own rotation and re-extracts Euler angles in the same X,Y,Z order.
func (c *Cache) TransformPose(ctx context.Context, dest string, pose domain.Pose6, orig string) (domain.Pose6, error) {
	m, err := c.Transform(ctx, dest, orig)
	if err != nil {
		return domain.Pose6{}, err
	}

	p := m.TransformPoint(domain.Vec3{X: pose.X, Y: pose.Y, Z: pose.Z})
	rot := m.Rotation().Mul(domain.FromEuler(pose.Roll, pose.Pitch, pose.Yaw))
	roll, pitch, yaw := rot.EulerXYZ()

	return domain.Pose6{
		X: p.X, Y: p.Y, Z: p.Z,
		Roll: roll, Pitch: pitch, Yaw: yaw,
	}, nil
}
