package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: npmdocs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build man, HTML and markdown docs")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'npmdocs help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: npmdocs build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Expand the documentation templates in content-dir and render them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown source tree (default: paths.content from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -r, --registry <path>       Registry file with commands and options")
	fmt.Fprintln(w, "      --version-string <s>    Version substituted for @VERSION@")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --man-dir <path>        Man page output directory")
	fmt.Fprintln(w, "      --html-dir <path>       HTML output directory")
	fmt.Fprintln(w, "      --md-dir <path>         Markdown output directory")
	fmt.Fprintln(w, "      --no-man                Skip man pages")
	fmt.Fprintln(w, "      --no-html               Skip HTML pages")
	fmt.Fprintln(w, "      --no-md                 Skip expanded markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timings and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NPMDOCS_CONFIG, NPMDOCS_REGISTRY, NPMDOCS_VERSION,")
	fmt.Fprintln(w, "  NPMDOCS_WORKERS, NPMDOCS_MAN_DATE, SOURCE_DATE_EPOCH")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: npmdocs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: npmdocs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
