package cmake

import (
	"bufio"
	"strings"
)

// targetMarker separates a target name from its description in the output of
// `cmake --build <dir> --target help` ("foo...Build target foo").
const targetMarker = "..."

// TargetListing is the ordered list of target names parsed from tool output.
// Order follows the tool; duplicates are preserved.
type TargetListing []string

// ParseTargetListing extracts target names from raw target-help output.
// A line names a target when it is non-empty after trimming and contains the
// marker; the name is the trimmed text before the first marker occurrence.
// Every other line is ignored. Unrecognized output therefore yields an empty
// listing, never an error.
func ParseTargetListing(output string) TargetListing {
	var targets TargetListing

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx := strings.Index(line, targetMarker)
		if idx < 0 {
			continue
		}
		targets = append(targets, strings.TrimSpace(line[:idx]))
	}

	return targets
}
