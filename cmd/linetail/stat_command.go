package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"linetail/internal/tailer"
)

const lastLinePreviewLimit = 48

func newStatCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat PATH...",
		Short: "Summarize files before tailing them",
		Long: "Show size, modification time, read access, and the final line of\n" +
			"each file. Useful to sanity-check paths before a long follow.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			headers := []string{"PATH", "SIZE", "MODIFIED", "ACCESS", "LAST LINE"}
			rows := make([][]string, 0, len(args))
			for _, path := range args {
				rows = append(rows, statRow(path, cfg.Tail.Encoding))
			}

			out := cmd.OutOrStdout()
			if file, ok := out.(*os.File); ok && isTerminal(file) {
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{
					alignLeft, alignRight, alignLeft, alignLeft, alignLeft,
				}))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintln(out, strings.Join(row, "\t"))
			}
			return nil
		},
	}
	return cmd
}

func statRow(path, encodingName string) []string {
	info, err := os.Stat(path)
	if err != nil {
		return []string{path, "-", "-", "-", fmt.Sprintf("error: %v", err)}
	}
	if info.IsDir() {
		return []string{path, "-", "-", "-", "error: is a directory"}
	}

	access := "ok"
	if err := unix.Access(path, unix.R_OK); err != nil {
		access = fmt.Sprintf("denied (%v)", err)
	}

	lastLine := "-"
	if access == "ok" {
		if text, err := tailer.ReadLast(path, 1, tailer.WithEncoding(encodingName)); err == nil {
			lastLine = previewLine(text)
		}
	}

	return []string{
		path,
		strconv.FormatInt(info.Size(), 10),
		info.ModTime().UTC().Format(time.RFC3339),
		access,
		lastLine,
	}
}

func previewLine(text string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return "-"
	}
	runes := []rune(text)
	if len(runes) > lastLinePreviewLimit {
		return string(runes[:lastLinePreviewLimit-1]) + "…"
	}
	return text
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
