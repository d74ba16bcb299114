package platform

import (
	"fmt"
	"strings"
)

// Canonical release target triples. Manifests always use the aarch64
// spelling for 64-bit ARM.
const (
	TargetDarwinARM64    = "aarch64-apple-darwin"
	TargetDarwinAMD64    = "x86_64-apple-darwin"
	TargetLinuxAMD64Gnu  = "x86_64-unknown-linux-gnu"
	TargetLinuxAMD64Musl = "x86_64-unknown-linux-musl"
	TargetLinuxARM64Gnu  = "aarch64-unknown-linux-gnu"
	TargetLinuxARM64Musl = "aarch64-unknown-linux-musl"
	TargetWindowsAMD64   = "x86_64-pc-windows-msvc"
)

// UnsupportedHostError reports a (system, machine) pair with no known
// release target. It carries the raw inputs for diagnostics.
type UnsupportedHostError struct {
	System  string
	Machine string
}

func (e *UnsupportedHostError) Error() string {
	return fmt.Sprintf("unsupported host: system=%q machine=%q", e.System, e.Machine)
}

// DetectTarget maps raw host identifiers onto a canonical target triple.
// system and machine are the OS-reported names (e.g. "Darwin", "arm64");
// isMusl is meaningful only when system is "Linux". Pure function of its
// inputs; architecture aliases are normalized to the manifest spelling
// before matching.
func DetectTarget(system, machine string, isMusl bool) (string, error) {
	arch, ok := canonicalMachine(machine)
	if !ok {
		return "", &UnsupportedHostError{System: system, Machine: machine}
	}

	switch system {
	case "Darwin":
		switch arch {
		case "aarch64":
			return TargetDarwinARM64, nil
		case "x86_64":
			return TargetDarwinAMD64, nil
		}
	case "Linux":
		switch arch {
		case "x86_64":
			if isMusl {
				return TargetLinuxAMD64Musl, nil
			}
			return TargetLinuxAMD64Gnu, nil
		case "aarch64":
			if isMusl {
				return TargetLinuxARM64Musl, nil
			}
			return TargetLinuxARM64Gnu, nil
		}
	case "Windows":
		if arch == "x86_64" {
			return TargetWindowsAMD64, nil
		}
	}

	return "", &UnsupportedHostError{System: system, Machine: machine}
}

// MuslTarget returns the musl-ABI equivalent of a Linux glibc target.
// The substitution is purely textual; ok is false when target is not a
// -linux-gnu triple. No manifest lookup is involved.
func MuslTarget(target string) (string, bool) {
	if !strings.HasSuffix(target, "-linux-gnu") {
		return "", false
	}
	return strings.TrimSuffix(target, "-gnu") + "-musl", true
}

// Target returns the canonical release target for this host profile.
func (i *Info) Target() (string, error) {
	return DetectTarget(systemName(i.OS), machineName(i.Arch), i.Musl)
}

// canonicalMachine normalizes architecture aliases to the spelling release
// manifests use.
func canonicalMachine(machine string) (string, bool) {
	switch machine {
	case "x86_64", "amd64", "AMD64":
		return "x86_64", true
	case "aarch64", "arm64", "ARM64":
		return "aarch64", true
	default:
		return "", false
	}
}

// systemName converts GOOS values to the OS-reported system names that
// DetectTarget matches on.
func systemName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	default:
		return goos
	}
}

// machineName converts normalized architecture names back to machine names.
func machineName(arch string) string {
	switch arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return arch
	}
}
