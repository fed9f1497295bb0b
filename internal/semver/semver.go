package semver

import (
	"strings"

	semverlib "github.com/Masterminds/semver/v3"
)

type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ExactVersion strips a leading range or pin sigil so that a specifier
// like "~0.2.1", "=1.4.0", or "v1.4.0" resolves to the version it pins.
func ExactVersion(specifier string) string {
	s := specifier
	if strings.HasPrefix(s, "~") || strings.HasPrefix(s, "^") || strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.TrimPrefix(s, "v")
}

func Parse(s string) (Version, bool) {
	v, err := semverlib.StrictNewVersion(s)
	if err != nil {
		return Version{}, false
	}

	return Version{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, true
}

// Same reports whether two version specifiers are compatible. Stable
// versions are compatible when their majors match. Pre-1.0 versions are
// compatible when major and minor match; the patch never matters. When
// either side does not parse, the resolved strings are compared as is.
func Same(a, b string) bool {
	exactA := ExactVersion(a)
	exactB := ExactVersion(b)

	versionA, okA := Parse(exactA)
	versionB, okB := Parse(exactB)
	if !okA || !okB {
		return exactA == exactB
	}

	if versionA.Major >= 1 || versionB.Major >= 1 {
		return versionA.Major == versionB.Major
	}

	return versionA.Major == versionB.Major && versionA.Minor == versionB.Minor
}
