package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/app"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <dest> <orig>",
		Short: "Compute the transform mapping orig's frame into dest's frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenePath, _ := cmd.Flags().GetString("scene")
			pointFlag, _ := cmd.Flags().GetString("point")
			poseFlag, _ := cmd.Flags().GetString("pose")

			opts := app.QueryOptions{
				ScenePath: scenePath,
				Dest:      args[0],
				Orig:      args[1],
			}

			if pointFlag != "" {
				p, err := parsePoint(pointFlag)
				if err != nil {
					return err
				}
				opts.Point = &p
			}

			if poseFlag != "" {
				p, err := parsePose(poseFlag)
				if err != nil {
					return err
				}
				opts.Pose = &p
			}

			result, err := c.app.Query(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringP("scene", "s", "scene.yaml", "Path to the scene file")
	cmd.Flags().StringP("point", "p", "", "Point in orig's frame as x,y,z")
	cmd.Flags().String("pose", "", "Pose in orig's frame as x,y,z,roll,pitch,yaw")
	return cmd
}

func printResult(w io.Writer, r *app.QueryResult) {
	_, _ = fmt.Fprintf(w, "transform %s -> %s:\n", r.Orig, r.Dest)
	for row := range 4 {
		_, _ = fmt.Fprintf(w, "  [% .6f % .6f % .6f % .6f]\n",
			r.Matrix[row*4], r.Matrix[row*4+1], r.Matrix[row*4+2], r.Matrix[row*4+3])
	}
	if r.Point != nil {
		_, _ = fmt.Fprintf(w, "point: (%.6f, %.6f, %.6f)\n", r.Point.X, r.Point.Y, r.Point.Z)
	}
	if r.Pose != nil {
		_, _ = fmt.Fprintf(w, "pose: (%.6f, %.6f, %.6f) rpy=(%.6f, %.6f, %.6f)\n",
			r.Pose.X, r.Pose.Y, r.Pose.Z, r.Pose.Roll, r.Pose.Pitch, r.Pose.Yaw)
	}
}

func parseFloats(value string, want int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != want {
		return nil, zerr.With(zerr.With(zerr.New("wrong number of components"), "value", value), "want", want)
	}
	out := make([]float64, want)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid component"), "value", value)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(value string) (domain.Vec3, error) {
	f, err := parseFloats(value, 3)
	if err != nil {
		return domain.Vec3{}, err
	}
	return domain.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

func parsePose(value string) (domain.Pose6, error) {
	f, err := parseFloats(value, 6)
	if err != nil {
		return domain.Pose6{}, err
	}
	return domain.Pose6{X: f[0], Y: f[1], Z: f[2], Roll: f[3], Pitch: f[4], Yaw: f[5]}, nil
}
