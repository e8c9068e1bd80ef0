// Package system holds the startup environment and privilege probes.
// Everything here runs once before the menu loop; nothing is revalidated
// mid-session.
package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Startup failures. Both are fatal before the first menu is shown.
var (
	// ErrUnsupportedOS is returned when the host is not Fedora.
	ErrUnsupportedOS = errors.New("syswiz is designed strictly for Fedora Linux")
	// ErrDNFNotFound is returned when no dnf binary is on PATH.
	ErrDNFNotFound = errors.New("dnf executable not found")
	// ErrPrivilege is returned when sudo credentials cannot be acquired.
	ErrPrivilege = errors.New("sudo authentication failed or was cancelled")
)

// Info describes the probed environment, displayed on the splash screen.
type Info struct {
	OS         string
	OSVersion  string
	DNFPath    string
	DNFVersion string
	Root       bool
}

// Probe detects the distribution and the dnf installation. dnfOverride,
// when non-empty, names the binary to use instead of "dnf" from PATH.
func Probe(ctx context.Context, dnfOverride string) (*Info, error) {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("detecting distribution: %w", err)
	}
	if platform != "fedora" {
		return nil, fmt.Errorf("%w (detected %q)", ErrUnsupportedOS, platform)
	}

	binary := dnfOverride
	if binary == "" {
		binary = "dnf"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not on PATH", ErrDNFNotFound, binary)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", binary, err)
	}

	return &Info{
		OS:         "Fedora Linux",
		OSVersion:  version,
		DNFPath:    path,
		DNFVersion: ParseDNFVersion(string(out)),
		Root:       os.Geteuid() == 0,
	}, nil
}

// ParseDNFVersion extracts the version number from `dnf --version` output.
// dnf4 prints a bare version on the first line; dnf5 prints "dnf5 <ver>".
func ParseDNFVersion(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "unknown"
	}
	fields := strings.Fields(lines[0])
	return fields[len(fields)-1]
}

// IsRoot reports whether the process runs with euid 0.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// EnsurePrivileges performs the single controlled privilege phase: a no-op
// for root, otherwise one `sudo -v` to cache credentials. It never loops
// or retries; on failure the caller exits before any menu is shown.
func EnsurePrivileges(ctx context.Context) error {
	if IsRoot() {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sudo", "-v")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrPrivilege, err)
	}
	return nil
}

// DetectReleaseVer returns the numeric release of the running Fedora
// host, or "" when the host is not Fedora or detection fails.
func DetectReleaseVer(ctx context.Context) string {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil || platform != "fedora" {
		return ""
	}
	return ReleaseVer(version)
}

// ReleaseVer returns the numeric Fedora release ("42") from a probed
// version string, for templating release package URLs.
func ReleaseVer(osVersion string) string {
	fields := strings.Fields(osVersion)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
