package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/geom"
	"github.com/contestkit/contestkit/internal/judge"
)

func hullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hull",
		Short: "Convex hull of a point set",
		Long: `Reads N followed by N "x y" coordinate pairs and prints the hull
vertices in counter-clockwise order, one per line, starting from the
lexicographically smallest point.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := judge.NewScanner(os.Stdin)
			out := judge.NewWriter(os.Stdout)

			n, err := in.Int()
			if err != nil {
				return err
			}
			pts := make([]geom.Point, n)
			for i := range pts {
				if pts[i].X, err = in.Float(); err != nil {
					return err
				}
				if pts[i].Y, err = in.Float(); err != nil {
					return err
				}
			}

			for _, p := range geom.ConvexHull(pts) {
				out.Printf("%g %g\n", p.X, p.Y)
			}
			return out.Flush()
		},
	}
}
