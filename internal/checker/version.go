package checker

import (
	"errors"
	"fmt"

	"github.com/kata-containers/check-versions/internal/manifest"
)

// ErrMissingVersion is returned when a component has no tag, branch or version.
var ErrMissingVersion = errors.New("no version, tag or branch declared")

// UnknownVersion is displayed in place of a current version that could not be read.
const UnknownVersion = "unknown"

// CurrentVersion returns the component's declared version. A pinned tag is
// preferred over a branch, and a branch over a bare version string.
func CurrentVersion(c manifest.Component) (string, error) {
	switch {
	case c.Tag != "":
		return c.Tag, nil
	case c.Branch != "":
		return c.Branch, nil
	case c.Version != "":
		return c.Version, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrMissingVersion, c.Name)
	}
}
