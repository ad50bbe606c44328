package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/internal/judge"
	"github.com/contestkit/contestkit/merkle"
)

func merkleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merkle",
		Short: "Merkle roots over transaction lists",
		Long: `Reads T test cases. Each case is a count N followed by N transaction
lines; prints the hex Merkle root per case.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := judge.NewLineScanner(os.Stdin)
			out := judge.NewWriter(os.Stdout)

			t, err := in.Int()
			if err != nil {
				return err
			}
			tree := merkle.New()
			for ; t > 0; t-- {
				n, err := in.Int()
				if err != nil {
					return err
				}
				txs := make([]string, n)
				for i := range txs {
					if txs[i], err = in.Line(); err != nil {
						return err
					}
				}
				root, err := tree.Root(txs)
				if err != nil {
					return err
				}
				out.Println(root)
			}
			return out.Flush()
		},
	}
}
