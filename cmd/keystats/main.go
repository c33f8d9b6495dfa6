package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/example/keystats/internal/agg"
	"github.com/example/keystats/internal/buffer"
	"github.com/example/keystats/internal/report"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel scan workers")
	sortKeys := flag.Bool("sort", false, "sort output lines by key")
	header := flag.Bool("header", false, "print a column header line")
	profileMode := flag.String("profile", "", "write a cpu or mem profile for this run")
	verbose := flag.Bool("v", false, "log run diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q (want cpu or mem)\n", *profileMode)
		os.Exit(2)
	}

	opts := report.Options{SortKeys: *sortKeys, Header: *header}
	if err := run(flag.Arg(0), *workers, opts, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, workers int, opts report.Options, logger *slog.Logger) error {
	start := time.Now()

	buf, err := buffer.Map(path)
	if err != nil {
		return err
	}
	defer buf.Close()

	result, err := agg.Run(buf.Data, workers)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout, result, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("run complete",
		"bytes", buf.Len(),
		"workers", workers,
		"keys", len(result),
		"elapsed", time.Since(start))
	return nil
}
