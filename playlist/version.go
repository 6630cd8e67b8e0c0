package playlist

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// DefaultVersion is the rule based playlist format.
const DefaultVersion = "2.0"

const supportedVersions = ">= 1.0, < 3.0"

const legacyMajorVersion = 1

// ParseVersion parses and validates a playlist format version.
func ParseVersion(s string) (*version.Version, error) {
	ver, err := version.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid playlist version (%s): %w", s, err)
	}

	constraints, err := version.NewConstraint(supportedVersions)
	if err != nil {
		return nil, err
	}
	if !constraints.Check(ver) {
		return nil, fmt.Errorf("unsupported playlist version (%s), supported: %s", s, supportedVersions)
	}

	return ver, nil
}

// versionAttribute formats ver the way playlist consumers expect it, e.g. 2.0.
func versionAttribute(ver *version.Version) string {
	segments := ver.Segments()
	return fmt.Sprintf("%d.%d", segments[0], segments[1])
}

func isLegacy(ver *version.Version) bool {
	return ver.Segments()[0] == legacyMajorVersion
}
