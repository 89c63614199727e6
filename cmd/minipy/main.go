// Command minipy runs a minipy source file: either named directly on the
// command line, or resolved from a minipy.yml manifest's entry field in
// the current directory.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"able/minipy/pkg/driver"
)

const cliToolVersion = "minipy-cli 0.0.0-dev"

var errManifestNotFound = errors.New("minipy.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch {
	case len(args) == 0:
		return runEntry()
	case args[0] == "--help", args[0] == "-h":
		printUsage()
		return 0
	case args[0] == "--version", args[0] == "-V", args[0] == "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case args[0] == "run":
		return runFileOrManifest(args[1:])
	default:
		return runFileOrManifest(args)
	}
}

// runFileOrManifest runs the file named by args[0], or — with no
// arguments — resolves the entry script from minipy.yml in the current
// directory, mirroring the teacher CLI's manifest-first, file-fallback
// resolution order.
func runFileOrManifest(args []string) int {
	if len(args) == 0 {
		return runEntry()
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", args[1:])
		return 1
	}
	return execute(args[0])
}

func runEntry() int {
	manifest, err := loadManifestFrom(".")
	if err != nil {
		if errors.Is(err, errManifestNotFound) {
			printUsage()
			return 1
		}
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}
	return execute(manifest.EntryPath())
}

func execute(path string) int {
	if err := driver.RunFile(path, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func loadManifestFrom(start string) (*driver.Manifest, error) {
	absStart, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest search path %q: %w", start, err)
	}
	manifestPath := filepath.Join(absStart, "minipy.yml")
	if info, statErr := os.Stat(manifestPath); statErr != nil || info.IsDir() {
		return nil, errManifestNotFound
	}
	return driver.LoadManifest(manifestPath)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  minipy run <file.mpy>")
	fmt.Fprintln(os.Stderr, "  minipy <file.mpy>")
	fmt.Fprintln(os.Stderr, "  minipy run            (resolves entry from ./minipy.yml)")
}
