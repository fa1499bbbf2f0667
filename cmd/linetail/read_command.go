package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"linetail/internal/tailer"
)

func newReadCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var encodingName string
	var bufferSize int

	cmd := &cobra.Command{
		Use:   "read PATH",
		Short: "Print the last lines of a file",
		Long: "Print the last lines of a file without reading it from the beginning.\n" +
			"The output is the exact byte range covering those lines, so a trailing\n" +
			"newline in the file is preserved.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
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

			text, err := tailer.ReadLast(args[0], lines,
				tailer.WithEncoding(encodingName),
				tailer.WithBufferSize(bufferSize),
			)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of trailing lines to print")
	cmd.Flags().StringVar(&encodingName, "encoding", "", "Character encoding of the file")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "Chunk size in bytes for the backward scan")
	return cmd
}
