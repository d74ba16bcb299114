package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/HaldisBrandt/relpick/internal/manifest"
	"github.com/HaldisBrandt/relpick/internal/platform"
	"github.com/HaldisBrandt/relpick/internal/resolve"
)

// runResolve handles the `relpick resolve` subcommand
func runResolve(args []string) error {
	var (
		manifestSource string
		targetFlag     string
		asJSON         bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			printResolveHelp()
			return nil
		case "--json":
			asJSON = true
		case "--manifest", "-m":
			i++
			if i >= len(args) {
				return fmt.Errorf("--manifest requires a value")
			}
			manifestSource = args[i]
		case "--target", "-t":
			i++
			if i >= len(args) {
				return fmt.Errorf("--target requires a value")
			}
			targetFlag = args[i]
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	if manifestSource == "" {
		return fmt.Errorf("--manifest is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m, err := manifest.Load(ctx, manifestSource)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	target := targetFlag
	if target == "" {
		info, err := platform.NewDetector().Detect(ctx)
		if err != nil {
			return fmt.Errorf("detect host: %w", err)
		}
		target, err = info.Target()
		if err != nil {
			return err
		}
	}

	// Overrides are read here, once per invocation, and handed to the
	// engine as a value; the engine itself never touches the environment.
	overrides := resolve.OverridesFromEnv(os.LookupEnv)

	resolver := resolve.NewResolver()
	asset, err := resolver.SelectWithFallback(ctx, m, target, overrides)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(asset, "", "  ")
		if err != nil {
			return fmt.Errorf("encode asset: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(asset.Name)
	fmt.Printf("  target: %s\n", asset.Target)
	fmt.Printf("  url:    %s\n", asset.URL)
	fmt.Printf("  sha256: %s\n", asset.SHA256)
	if asset.Compat != nil {
		fmt.Printf("  libc:   %s", asset.Compat.Libc)
		if asset.Compat.MinGlibc != "" {
			fmt.Printf(" (min glibc %s)", asset.Compat.MinGlibc)
		}
		fmt.Println()
	}
	return nil
}

func printResolveHelp() {
	fmt.Println("Usage: relpick resolve --manifest <path|url> [options]")
	fmt.Println()
	fmt.Println("Select the release asset matching the current host (or --target).")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -m, --manifest <path|url>  release manifest (JSON or YAML; file://, http(s)://, or plain path)")
	fmt.Println("  -t, --target <triple>      resolve for a specific target triple instead of detecting")
	fmt.Println("  --json                     print the selected asset as JSON")
	fmt.Println("  -h, --help                 show this help")
}
