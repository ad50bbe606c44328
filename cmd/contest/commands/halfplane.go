package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/geom"
	"github.com/contestkit/contestkit/internal/judge"
)

func halfplaneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "halfplane",
		Short: "Intersection of directed half-planes",
		Long: `Reads N followed by N lines "x1 y1 x2 y2", each a directed line
admitting its left side. Prints the vertices of the intersection polygon in
counter-clockwise order, or "EMPTY" when the intersection has no area.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := judge.NewScanner(os.Stdin)
			out := judge.NewWriter(os.Stdout)

			n, err := in.Int()
			if err != nil {
				return err
			}
			hs := make([]geom.Line, n)
			for i := range hs {
				var a, b geom.Point
				if a.X, err = in.Float(); err != nil {
					return err
				}
				if a.Y, err = in.Float(); err != nil {
					return err
				}
				if b.X, err = in.Float(); err != nil {
					return err
				}
				if b.Y, err = in.Float(); err != nil {
					return err
				}
				hs[i] = geom.LineThrough(a, b)
			}

			poly := geom.HalfPlaneIntersect(hs)
			if len(poly) == 0 {
				out.Println("EMPTY")
			} else {
				for _, p := range poly {
					out.Printf("%.6f %.6f\n", p.X, p.Y)
				}
			}
			return out.Flush()
		},
	}
}
