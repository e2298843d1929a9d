package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/7vars/observe"
	"github.com/7vars/observe/internal/replay"
	"github.com/7vars/observe/request"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "replay <requests-file>",
		Short:        "Replay recorded HTTP requests through an observable",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.PersistentFlags().StringP("config", "c", "", "config file")
	cmd.Flags().String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().String("log-format", "", "log formatter (text, json)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	conf, err := observe.LoadConfig(cfgFile)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		conf.Set("log.level", level)
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		conf.Set("log.formatter", format)
	}
	logger := observe.NewLoggerTo(cmd.ErrOrStderr(), conf)

	requests, err := request.LoadFile(args[0])
	if err != nil {
		return err
	}

	summary := replay.Run(requests, replay.Respond200, logger)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d requests, completed=%v\n", summary.RunID, summary.Requests, summary.Completed)

	statuses := make([]observe.Status, 0, len(summary.Statuses))
	for status := range summary.Statuses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i] < statuses[j]
	})
	for _, status := range statuses {
		fmt.Fprintf(out, "  %d: %d\n", status, summary.Statuses[status])
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
