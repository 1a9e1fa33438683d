// Command ddfmt validates and reformats .dd difficulty files.
//
// Usage:
//
//	ddfmt [-w] [-check] [-events=policy] [-log-level=level] file...
//
// By default each file is decoded and its canonical encoding is written
// to standard output. With -w the file is rewritten in place instead, and
// with -check it is only validated. Defaults for every flag can be set in
// a YAML file named by DDFMT_CONFIG or through DDFMT_* environment
// variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-dd"
	"github.com/KimNorgaard/go-dd/internal/config"
	"github.com/KimNorgaard/go-dd/pkg/logger"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "ddfmt: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("ddfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		write    = fs.Bool("w", false, "write result to the source file instead of stdout")
		check    = fs.Bool("check", cfg.Check, "only validate files and print a summary")
		events   = fs.String("events", cfg.UnknownEvents, "unknown event policy: drop, preserve or reject")
		logLevel = fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ddfmt [flags] file...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg.Check = *check
	cfg.UnknownEvents = *events
	cfg.LogLevel = *logLevel
	policy, err := cfg.Policy()
	if err != nil {
		fmt.Fprintf(stderr, "ddfmt: %v\n", err)
		return exitUsage
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "ddfmt: %v\n", err)
		return exitUsage
	}

	f := &formatter{
		log:    logger.New(stderr, level),
		stdout: stdout,
		write:  *write,
		check:  cfg.Check,
	}
	f.opts = []dd.Option{dd.UnknownEvents(policy), dd.WithLogger(f.log.Named("dd"))}

	code := exitOK
	for _, path := range fs.Args() {
		if err := f.file(ctx, path); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			code = exitFail
		}
	}
	return code
}

type formatter struct {
	log    logger.Logger
	opts   []dd.Option
	stdout io.Writer
	write  bool
	check  bool
}

func (f *formatter) file(ctx context.Context, path string) error {
	d, err := dd.ReadFile(path, f.opts...)
	if err != nil {
		return err
	}

	switch {
	case f.check:
		events := len(d.SpeedEvents) + len(d.BPMEvents) + len(d.FeverEvents) + len(d.UnknownEvents)
		_, err = fmt.Fprintf(f.stdout, "%s: %s (%d notes, %d events)\n", path, d.FullName(), len(d.Notes), events)
	case f.write:
		err = dd.WriteFile(path, d, f.opts...)
		if err == nil {
			f.log.Info(ctx, "rewrote file", logger.String("path", path))
		}
	default:
		var out []byte
		out, err = dd.Marshal(d, f.opts...)
		if err == nil {
			_, err = f.stdout.Write(out)
		}
	}
	return err
}
