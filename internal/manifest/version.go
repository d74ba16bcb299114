package manifest

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

// CompareVersion compares the manifest's release version against current
// using semantic version ordering. It returns -1 when the manifest is
// older, 0 when equal, and +1 when newer. Leading "v" prefixes are
// tolerated on both sides.
func (m *Manifest) CompareVersion(current string) (int, error) {
	latest, err := parseVersion(m.Version)
	if err != nil {
		return 0, fmt.Errorf("manifest version %q: %w", m.Version, err)
	}
	cur, err := parseVersion(current)
	if err != nil {
		return 0, fmt.Errorf("current version %q: %w", current, err)
	}
	return latest.Compare(cur), nil
}

func parseVersion(v string) (semver.Version, error) {
	return semver.Parse(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}
