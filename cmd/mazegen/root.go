package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegen/maze"
)

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:          "mazegen",
		Short:        "Generate and solve grid mazes",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "text", "Log format (text or json)")

	root.AddCommand(newGenCmd(rf), newAlgorithmsCmd())

	return root
}

// newLogger builds the logger every subcommand writes to; logs go to w so
// stdout carries only the maze.
func (rf *rootFlags) newLogger(w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	level, err := logrus.ParseLevel(rf.logLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	switch rf.logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", rf.logFormat)
	}

	return log, nil
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, alg := range maze.Algorithms {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}

			return nil
		},
	}
}
