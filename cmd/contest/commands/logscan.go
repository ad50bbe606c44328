package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/contestkit/contestkit/internal/judge"
	"github.com/contestkit/contestkit/logscan"
)

func logscanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logscan [capture.csv]",
		Short: "SQL-injection triage of a capture CSV",
		Long: `Scans a packet-capture CSV export for SQL injection attempts and
prints the five-line answer block. The file path is taken from the first
argument, or read as a single stdin token when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				if path, err = judge.NewScanner(os.Stdin).Word(); err != nil {
					return err
				}
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			report, err := logscan.Scan(f)
			if err != nil {
				return err
			}
			return report.WriteAnswers(os.Stdout)
		},
	}
}
