// Package main implements the coloring CLI, a batch generator for printable
// coloring pages backed by the Gemini image API. It schedules generation
// jobs with bounded concurrency and paced starts, retries rate-limited jobs
// with escalating backoff, and keeps a durable queue of failed jobs for
// later retry.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hachi2308/coloring/internal/redact"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "coloring: %s\n", redact.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return nil
	}

	app, err := initializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	return app.dispatch(ctx, command, rest)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: coloring <command> [options] [args]

Commands:
  generate    generate pages from one or more prompts
  edit        re-generate selected pages with an edit instruction
  upscale     re-generate selected pages at a higher resolution
  colorize    turn selected line-art pages into colored versions
  decolorize  turn selected colored pages into line art
  retry       retry one failed job by ID
  retry-all   retry every failed job
  history     list generated pages
  failed      list failed jobs
  export      export generated pages to a zip archive
  clear       clear history or the failed-job queue
  styles      list available styles and palettes
  defaults    save generation defaults for future runs
  style-add   add or replace a custom style
  style-hide  hide a style from listings (style-unhide reverses)
  palette-add add or replace a custom palette

Run 'coloring <command> -h' for command options.
`)
}
