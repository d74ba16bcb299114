package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("relpick %s\n", Version)
			return
		case "resolve":
			// Handle relpick resolve subcommand
			if err := runResolve(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "detect":
			// Handle relpick detect subcommand
			if err := runDetect(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "--help", "-h", "help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	printUsage()
}

func printUsage() {
	fmt.Println("relpick - pick the release asset to install for this host")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  relpick resolve --manifest <path|url> [--target <triple>] [--json]")
	fmt.Println("  relpick detect [--json]")
	fmt.Println("  relpick --version")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  RELPICK_TARGET        force a target triple")
	fmt.Println("  RELPICK_PREFER_MUSL   prefer statically linked musl assets")
	fmt.Println("  RELPICK_NO_FALLBACK   fail instead of degrading to musl")
}
