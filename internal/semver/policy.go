package semver

// Policy decides which numeric component the next development version bumps.
// Multiple numbering schemes are in use across projects, so the increment
// rule is a strategy rather than a fixed behavior.
type Policy interface {
	Name() string

	// Increment returns a new version with the policy's component bumped.
	// The input is expected to have its development qualifier already
	// stripped; any remaining qualifier is preserved.
	Increment(v Version) Version
}

// PolicyByName resolves a configured policy name.
// Returns the default lowest-segment policy and false for unknown names.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", "lowest":
		return IncrementLowest{}, true
	case "major":
		return IncrementField{field: 0, name: "major"}, true
	case "minor":
		return IncrementField{field: 1, name: "minor"}, true
	case "patch":
		return IncrementField{field: 2, name: "patch"}, true
	default:
		return IncrementLowest{}, false
	}
}

// IncrementLowest bumps the last numeric segment present and leaves the
// others alone. This matches Maven's default next-version behavior:
// 1.2.3 -> 1.2.4, 2.1 -> 2.2.
type IncrementLowest struct{}

func (IncrementLowest) Name() string { return "lowest" }

func (IncrementLowest) Increment(v Version) Version {
	segments := append([]int64(nil), v.segments...)
	segments[len(segments)-1]++
	return Version{segments: segments, qualifier: v.qualifier}
}

// IncrementField bumps a fixed segment and zeroes every segment below it:
// a minor policy turns 1.2.3 into 1.3.0. Segments are created as needed,
// so a major policy applied to "2" still yields "3".
type IncrementField struct {
	field int
	name  string
}

func (p IncrementField) Name() string { return p.name }

func (p IncrementField) Increment(v Version) Version {
	n := len(v.segments)
	if n < p.field+1 {
		n = p.field + 1
	}
	segments := make([]int64, n)
	copy(segments, v.segments)
	segments[p.field]++
	for i := p.field + 1; i < n; i++ {
		segments[i] = 0
	}
	return Version{segments: segments, qualifier: v.qualifier}
}
