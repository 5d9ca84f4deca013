/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command kschema inspects, exports and generates Kaseya VSA entity catalogues.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/suparena/kaseyaschema"
	"github.com/suparena/kaseyaschema/config"
	"github.com/suparena/kaseyaschema/logger"
)

type command struct {
	usage string
	run   func(ctx context.Context, env *environment, args []string) error
}

var commands = map[string]command{
	"entities": {"entities", runEntities},
	"fields":   {"fields -entity NAME [-filterable|-sortable]", runFields},
	"export":   {"export [-o FILE]", runExport},
	"gen":      {"gen -in FILE [-openapi] -pkg NAME [-var NAME] [-o FILE]", runGen},
	"snapshot": {"snapshot get|list -entity NAME [-key KEY] [-prefix P] [-limit N]", runSnapshot},
}

// environment is what every subcommand runs with.
type environment struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kschema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	versionFlag := fs.Bool("version", false, "Show version information")
	vFlag := fs.Bool("v", false, "Show version information (short)")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		info := kaseyaschema.GetVersionInfo()
		fmt.Fprintf(stdout, "kschema version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		fmt.Fprintf(stdout, "Entities: %d\n", info.Entities)
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}
	logCfg := cfg.Log
	switch logCfg.Output {
	case "", "stderr":
		logCfg.Writer = stderr
	case "stdout":
		logCfg.Writer = stdout
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}
	if *debugFlag {
		logger.SetLevel(zerolog.DebugLevel)
	}

	env := &environment{cfg: cfg, log: logger.WithComponent(fs.Arg(0)), stdout: stdout, stderr: stderr}
	if err := cmd.run(ctx, env, fs.Args()[1:]); err != nil {
		logger.Error().Err(err).Str("command", fs.Arg(0)).Msg("command failed")
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: kschema [-version] [-debug] <command> [flags]")
	fmt.Fprintln(w, "\nCommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}
