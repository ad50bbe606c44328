package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/gridpath"
	"github.com/contestkit/contestkit/internal/judge"
)

func dronerouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "droneroute",
		Short: "Minimum tax-line crossings on a city grid",
		Long: `Reads R C, then R grid rows ('#' building, 'S' start, 'E' end),
then V followed by V vertical tax-line columns, then H followed by H
horizontal tax-line rows. Prints the minimum number of crossings, or
"Impossible" when no route exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := judge.NewScanner(os.Stdin)
			out := judge.NewWriter(os.Stdout)

			r, err := in.Int()
			if err != nil {
				return err
			}
			if _, err := in.Int(); err != nil { // C is implied by the rows
				return err
			}
			rows := make([]string, r)
			for i := range rows {
				if rows[i], err = in.Word(); err != nil {
					return err
				}
			}
			v, err := in.Int()
			if err != nil {
				return err
			}
			vtax, err := in.Ints(v)
			if err != nil {
				return err
			}
			h, err := in.Int()
			if err != nil {
				return err
			}
			htax, err := in.Ints(h)
			if err != nil {
				return err
			}

			g, err := gridpath.Parse(rows, vtax, htax)
			if err != nil {
				return err
			}
			d, err := g.Solve()
			switch {
			case errors.Is(err, gridpath.ErrImpossible):
				out.Println("Impossible")
			case err != nil:
				return err
			default:
				out.Println(d)
			}
			return out.Flush()
		},
	}
}
