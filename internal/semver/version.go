// Package semver provides immutable version values for Maven-style project
// versions (major[.minor[.patch]][-qualifier]) and the qualifier
// transformations the branch workflows rely on.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var versionRegex = regexp.MustCompile(`^(\d+)((?:\.\d+)*)(?:-(.+))?$`)

// ErrInvalidVersion is returned by Parse for strings that are not versions.
var ErrInvalidVersion = errors.New("invalid version")

// Version represents a project version.
// This type is immutable; all methods return new values.
//
// Unlike strict SemVer, the number of numeric segments is preserved as
// written: "2.1-SNAPSHOT" round-trips as "2.1-SNAPSHOT", not "2.1.0-SNAPSHOT".
type Version struct {
	segments  []int64
	qualifier string
}

// Parse parses a version string.
func Parse(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersion, s)
	}

	first, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: component %s", ErrInvalidVersion, matches[1])
	}
	segments := []int64{first}

	if matches[2] != "" {
		for _, part := range strings.Split(matches[2][1:], ".") {
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return Version{}, fmt.Errorf("%w: component %s", ErrInvalidVersion, part)
			}
			segments = append(segments, n)
		}
	}

	return Version{segments: segments, qualifier: matches[3]}, nil
}

// TryParse attempts to parse a version string.
// Returns the parsed version and true if successful.
func TryParse(s string) (Version, bool) {
	v, err := Parse(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// Major returns the first numeric segment.
func (v Version) Major() int64 {
	return v.segment(0)
}

// Minor returns the second numeric segment, or zero when absent.
func (v Version) Minor() int64 {
	return v.segment(1)
}

// Patch returns the third numeric segment, or zero when absent.
func (v Version) Patch() int64 {
	return v.segment(2)
}

func (v Version) segment(i int) int64 {
	if i >= len(v.segments) {
		return 0
	}
	return v.segments[i]
}

// Qualifier returns the qualifier portion, empty when absent.
func (v Version) Qualifier() string {
	return v.qualifier
}

// String renders the version with its original segment count.
func (v Version) String() string {
	parts := make([]string, len(v.segments))
	for i, n := range v.segments {
		parts[i] = strconv.FormatInt(n, 10)
	}
	s := strings.Join(parts, ".")
	if v.qualifier != "" {
		s += "-" + v.qualifier
	}
	return s
}

// HasQualifier reports whether the version ends with "-<q>".
func (v Version) HasQualifier(q string) bool {
	return v.qualifier == q || strings.HasSuffix(v.qualifier, "-"+q)
}

// StripQualifier removes a trailing "-<q>" when present; otherwise the
// version is returned unchanged. Applying it twice is a no-op.
func (v Version) StripQualifier(q string) Version {
	switch {
	case v.qualifier == q:
		return Version{segments: v.segments}
	case strings.HasSuffix(v.qualifier, "-"+q):
		return Version{
			segments:  v.segments,
			qualifier: strings.TrimSuffix(v.qualifier, "-"+q),
		}
	default:
		return v
	}
}

// WithQualifier appends "-<q>" to the version, keeping any existing
// qualifier in front of it. Whether a second qualifier is allowed is a
// call-site policy, not enforced here.
func (v Version) WithQualifier(q string) Version {
	if v.qualifier == "" {
		return Version{segments: v.segments, qualifier: q}
	}
	return Version{segments: v.segments, qualifier: v.qualifier + "-" + q}
}

// FeatureVersion returns the version qualified with a feature branch's short
// name. When the version carries the development qualifier the name is
// inserted in front of it, so "1.2.0-SNAPSHOT" becomes
// "1.2.0-login-SNAPSHOT"; otherwise the name is appended.
//
// StripFeature with the same name is the exact inverse for any name that
// does not itself contain the "-" separator ambiguously.
func (v Version) FeatureVersion(name, devQualifier string) Version {
	if name == "" {
		return v
	}
	if v.HasQualifier(devQualifier) {
		return v.StripQualifier(devQualifier).WithQualifier(name).WithQualifier(devQualifier)
	}
	return v.WithQualifier(name)
}

// StripFeature removes the first occurrence of "-<name>" from the version
// string. Removal is a literal string match, mirroring how the feature
// qualifier was attached; a feature name whose characters overlap a
// legitimate version token is a documented ambiguity of the scheme.
func (v Version) StripFeature(name string) Version {
	if name == "" {
		return v
	}
	stripped := strings.Replace(v.String(), "-"+name, "", 1)
	parsed, err := Parse(stripped)
	if err != nil {
		return v
	}
	return parsed
}

// ContainsFeature reports whether "-<name>" occurs in the version string.
func (v Version) ContainsFeature(name string) bool {
	return name != "" && strings.Contains(v.String(), "-"+name)
}

// NextDevelopment computes the next development iteration: the version
// without its development qualifier is incremented per the policy and the
// qualifier is re-appended.
func (v Version) NextDevelopment(p Policy, devQualifier string) Version {
	base := v.StripQualifier(devQualifier)
	return p.Increment(base).WithQualifier(devQualifier)
}

// CompareTo compares two versions numerically by segment.
// Returns a negative value, zero, or a positive value. A version without a
// qualifier is greater than the same version with one.
func (v Version) CompareTo(other Version) int {
	n := len(v.segments)
	if len(other.segments) > n {
		n = len(other.segments)
	}
	for i := 0; i < n; i++ {
		a, b := v.segment(i), other.segment(i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}

	switch {
	case v.qualifier == other.qualifier:
		return 0
	case v.qualifier == "":
		return 1
	case other.qualifier == "":
		return -1
	default:
		return strings.Compare(v.qualifier, other.qualifier)
	}
}
