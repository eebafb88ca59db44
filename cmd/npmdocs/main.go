package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails when GOMAXPROCS is invalid, in
	// which case the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain dispatches the subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "build":
		flags, positional, err := parseBuildFlags(args[1:])
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			printBuildUsage(env.Stderr)
			return ExitUsage
		}
		if flags.help {
			printBuildUsage(env.Stdout)
			return ExitSuccess
		}

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if err := runBuild(ctx, positional, flags, env); err != nil {
			fmt.Fprintln(env.Stderr, formatError(err))
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "npmdocs %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(args[1:], env)

	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
