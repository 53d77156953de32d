// Package zenith is a markdown editing engine for terminal editors.
//
// The transforms live in the buffer, markdown and shortcode packages; the
// editor package wires them into a Bubble Tea component and cmd/zenith is the
// full-screen editor built on top.
package zenith

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// ErrInvalidVersion is returned by ParseVersion for strings that are not
// SemVer 2.0.0.
var ErrInvalidVersion = errors.New("zenith: invalid version")

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses v without a leading "v".
func ParseVersion(v string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	var out SemVer
	for i, dst := range []*int{&out.Major, &out.Minor, &out.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, v, err)
		}
		*dst = n
	}
	out.Pre, out.Build = m[4], m[5]
	return out, nil
}

// Version returns the embedded library version without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}
