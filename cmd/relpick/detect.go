package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HaldisBrandt/relpick/internal/platform"
)

// runDetect handles the `relpick detect` subcommand
func runDetect(args []string) error {
	asJSON := false

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			printDetectHelp()
			return nil
		case "--json":
			asJSON = true
		default:
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect host: %w", err)
	}

	target, targetErr := info.Target()

	if asJSON {
		payload := struct {
			OS           string `json:"os"`
			Arch         string `json:"arch"`
			Musl         bool   `json:"musl"`
			GlibcVersion string `json:"glibc_version"`
			Distro       string `json:"distro,omitempty"`
			DistroFamily string `json:"distro_family,omitempty"`
			Target       string `json:"target,omitempty"`
		}{
			OS:           info.OS,
			Arch:         info.Arch,
			Musl:         info.Musl,
			GlibcVersion: info.GlibcVersion,
			Distro:       info.Platform,
			DistroFamily: info.Family,
			Target:       target,
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode host profile: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("os:     %s\n", info.OS)
	fmt.Printf("arch:   %s\n", info.Arch)
	fmt.Printf("musl:   %v\n", info.Musl)
	fmt.Printf("glibc:  %s\n", info.GlibcVersion)
	if info.Platform != "" {
		fmt.Printf("distro: %s %s (%s family)\n", info.Platform, info.Version, info.Family)
	}
	if targetErr != nil {
		fmt.Printf("target: unsupported (%v)\n", targetErr)
	} else {
		fmt.Printf("target: %s\n", target)
	}
	return nil
}

func printDetectHelp() {
	fmt.Println("Usage: relpick detect [options]")
	fmt.Println()
	fmt.Println("Print the host profile and the release target it maps to.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --json      print the host profile as JSON")
	fmt.Println("  -h, --help  show this help")
}
