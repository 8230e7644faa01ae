// Command cflreach runs one CFL-reachability saturation over a graph file
// and a grammar file (spec.md §6), reporting initial edge count, new-edge
// count, and wall time.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cflreach/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cflreach",
		Short:         "CFL-reachability saturation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(cmd.Flags(), configPath)
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

			return run(cmd.Context(), cfg, logger)
		},
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}
