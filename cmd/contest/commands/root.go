package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/logger"
)

var verbose bool

func Execute() error {
	root := &cobra.Command{
		Use:           "contest",
		Short:         "Competitive-programming judge solvers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log := logger.Logger().Level(zerolog.InfoLevel)
				logger.Set(log)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(merkleCmd(), logscanCmd(), dronerouteCmd(), hullCmd(), halfplaneCmd())
	return root.Execute()
}
