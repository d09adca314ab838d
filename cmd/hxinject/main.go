package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pthm/hxinject/lib/generator"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(args)
	case "clean":
		err = runClean(args)
	case "render":
		err = runRender(context.Background(), args, os.Stdout, os.Stderr)
	case "version":
		fmt.Printf("hxinject version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hxinject - props injection for Go components

Usage:
  hxinject <command> [arguments]

Commands:
  generate [packages]   Generate props codecs for //hxinject:props structs
  clean [packages]      Remove generated files (*_props.go)
  render [pages]        Render the example pages (all of them by default)
  version               Print version
  help                  Show this help

Options for generate and clean:
  --dry-run             Show what would change without writing files

Options for render:
  --lang=<tag>          Switch the current language after the pages are composed

Environment:
  HXINJECT_LANGUAGE     Starting language (default en)
  HXINJECT_WELCOME      Welcome message of the page template (default "Welcome!")
  HXINJECT_YEAR         Footer year of the page template (default 2021)
  LOG_LEVEL             debug, info, warn or error (default info)

Examples:
  hxinject generate ./...                 Generate for all packages
  hxinject generate --dry-run ./...       Preview generation
  hxinject clean ./...                    Remove all generated files
  hxinject render --lang=fr localized     Render one page in French`)
}

// splitDryRun separates --dry-run from the package patterns.
func splitDryRun(args []string) (bool, []string) {
	var dryRun bool
	var patterns []string

	for _, arg := range args {
		if arg == "--dry-run" {
			dryRun = true
		} else {
			patterns = append(patterns, arg)
		}
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	return dryRun, patterns
}

func runGenerate(args []string) error {
	dryRun, patterns := splitDryRun(args)
	gen := generator.New(generator.Options{
		DryRun: dryRun,
	})
	return gen.Generate(patterns...)
}

func runClean(args []string) error {
	dryRun, patterns := splitDryRun(args)
	gen := generator.New(generator.Options{
		DryRun: dryRun,
	})
	return gen.Clean(patterns...)
}
