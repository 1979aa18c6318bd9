package cmake

import (
	"context"
	"os/exec"
	"regexp"
	"time"
)

// versionTimeout bounds the --version probe; detection is decoration and
// must not stall a pass.
const versionTimeout = 5 * time.Second

// DetectVersion attempts to detect the version of the cmake binary.
// Returns the version string (e.g., "3.28.1") or empty string if detection
// fails. This is best-effort and will not error if cmake is unavailable.
func DetectVersion(ctx context.Context, binary string) string {
	if binary == "" {
		binary = "cmake"
	}

	binPath, err := exec.LookPath(binary)
	if err != nil {
		return ""
	}

	probeCtx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	// #nosec G204 -- binPath is from exec.LookPath, not user-controlled
	cmd := exec.CommandContext(probeCtx, binPath, "--version")
	cmd.WaitDelay = time.Second
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	// Expected format examples:
	//   cmake version 3.28.1
	//   cmake3 version 3.20.2 (CMake suite maintained by Kitware)
	return parseVersion(string(output))
}

// parseVersion extracts the semantic version from cmake version output.
// Returns empty string if parsing fails.
func parseVersion(output string) string {
	versionRegex := regexp.MustCompile(`version\s+(\d+\.\d+\.\d+)`)
	matches := versionRegex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}

	// Fallback: first occurrence of X.Y.Z anywhere in the output.
	simpleRegex := regexp.MustCompile(`(\d+\.\d+\.\d+)`)
	matches = simpleRegex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}

	return ""
}
