package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"linetail/internal/tailer"
)

func newFollowCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var encodingName string
	var bufferSize int
	var pollInterval time.Duration

	cmd := &cobra.Command{
		Use:   "follow PATH",
		Short: "Print the last lines of a file, then keep watching it",
		Long: "Print the last lines of a file and keep polling it for appended\n" +
			"content, emitting each new line as it is completed. Truncation and\n" +
			"file replacement restart from the beginning of the new content.\n" +
			"Stops on Ctrl-C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("lines") {
				lines = cfg.Tail.Lines
			}
			if !cmd.Flags().Changed("encoding") {
				encodingName = cfg.Tail.Encoding
			}
			if !cmd.Flags().Changed("buffer-size") {
				bufferSize = cfg.Tail.BufferSize
			}
			if !cmd.Flags().Changed("poll-interval") {
				pollInterval = cfg.PollInterval()
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			follower, err := tailer.Follow(runCtx, args[0], lines,
				tailer.WithEncoding(encodingName),
				tailer.WithBufferSize(bufferSize),
				tailer.WithPollInterval(pollInterval),
				tailer.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for line := range follower.Lines() {
				if line.Err != nil {
					return line.Err
				}
				fmt.Fprintln(out, line.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of trailing lines to print before following")
	cmd.Flags().StringVar(&encodingName, "encoding", "", "Character encoding of the file")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "Chunk size in bytes for scans and incremental reads")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "How often to poll the file for growth")
	return cmd
}
