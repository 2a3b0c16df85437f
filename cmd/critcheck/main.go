// Package main implements the critcheck CLI tool.
//
// critcheck verifies, before a program is ever run, that a build using the
// critsection module is configured correctly:
//
//  1. Exactly one critical-section backend is registered — a blank import
//     of a backend package, or a critical.SetImpl call. Zero backends means
//     every Acquire would panic; two means program initialization would
//     panic. Both are configuration mistakes that belong at build time,
//     and critcheck finds them by parsing the source, without running it.
//  2. At most one critical_restorestate_* width tag is passed to the
//     build. (Conflicting tags also fail to compile; critcheck reports
//     them as what they are instead of as duplicate declarations.)
//
// Usage:
//
//	critcheck check .              # check the module in the current directory
//	critcheck check -tags critical_restorestate_u32 ./firmware
//
// critcheck exits 0 when the build is cleanly configured and 1 otherwise.
//
// This is the CLI entry point for the standalone checker.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "check":
		os.Exit(checkCommand(os.Args[2:]))
	case "version", "--version", "-v":
		fmt.Printf("critcheck version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`critcheck - build-time configuration checker for critsection

USAGE:
    critcheck <command> [arguments]

COMMANDS:
    check      Verify exactly one backend registration in a module
    version    Show version information
    help       Show this help message

EXAMPLES:
    # Check the module in the current directory
    critcheck check

    # Check another module, with the build tags the build will use
    critcheck check -tags "critical_restorestate_u32" ./firmware

EXIT STATUS:
    0  exactly one backend is registered and the width tags are consistent
    1  zero or multiple registrations, conflicting width tags, or bad usage
`)
}
