package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ValidVersions(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		major     int64
		minor     int64
		patch     int64
		qualifier string
	}{
		{"major only", "1", 1, 0, 0, ""},
		{"major.minor", "1.2", 1, 2, 0, ""},
		{"major.minor.patch", "1.2.3", 1, 2, 3, ""},
		{"snapshot", "1.2.3-SNAPSHOT", 1, 2, 3, "SNAPSHOT"},
		{"feature snapshot", "2.1.0-login-SNAPSHOT", 2, 1, 0, "login-SNAPSHOT"},
		{"short snapshot", "2.1-SNAPSHOT", 2, 1, 0, "SNAPSHOT"},
		{"four segments", "1.2.3.4", 1, 2, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.major, v.Major())
			require.Equal(t, tt.minor, v.Minor())
			require.Equal(t, tt.patch, v.Patch())
			require.Equal(t, tt.qualifier, v.Qualifier())
		})
	}
}

func TestParse_InvalidVersions(t *testing.T) {
	for _, input := range []string{"", "abc", "1..2", "-SNAPSHOT", "1.2.", "v1.2.3"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidVersion)
		})
	}
}

func TestString_PreservesSegmentCount(t *testing.T) {
	tests := []struct{ input string }{
		{"1"},
		{"2.1"},
		{"2.1-SNAPSHOT"},
		{"1.2.3-login-SNAPSHOT"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.input, v.String())
		})
	}
}

func TestStripQualifier(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		qualifier string
		want      string
	}{
		{"strips snapshot", "1.2.3-SNAPSHOT", "SNAPSHOT", "1.2.3"},
		{"keeps inner qualifier", "1.2.3-login-SNAPSHOT", "SNAPSHOT", "1.2.3-login"},
		{"no-op without qualifier", "1.2.3", "SNAPSHOT", "1.2.3"},
		{"no-op on other qualifier", "1.2.3-RC1", "SNAPSHOT", "1.2.3-RC1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, v.StripQualifier(tt.qualifier).String())

			// Stripping twice must equal stripping once.
			once := v.StripQualifier(tt.qualifier)
			require.Equal(t, once.String(), once.StripQualifier(tt.qualifier).String())
		})
	}
}

func TestWithQualifier_RoundTrip(t *testing.T) {
	for _, input := range []string{"1.2.3", "2.1", "0.0.1"} {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)
			require.Equal(t, input+"-SNAPSHOT", v.WithQualifier("SNAPSHOT").String())
			require.Equal(t, input, v.WithQualifier("SNAPSHOT").StripQualifier("SNAPSHOT").String())
		})
	}
}

func TestHasQualifier(t *testing.T) {
	tests := []struct {
		input     string
		qualifier string
		want      bool
	}{
		{"1.2.3-SNAPSHOT", "SNAPSHOT", true},
		{"1.2.3-login-SNAPSHOT", "SNAPSHOT", true},
		{"1.2.3", "SNAPSHOT", false},
		{"1.2.3-SNAPSHOT-fix", "SNAPSHOT", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, v.HasQualifier(tt.qualifier))
		})
	}
}

func TestFeatureVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		feat  string
		want  string
	}{
		{"inserts before snapshot", "1.2.0-SNAPSHOT", "login", "1.2.0-login-SNAPSHOT"},
		{"appends without snapshot", "2.1.0", "login", "2.1.0-login"},
		{"empty name unchanged", "1.2.0-SNAPSHOT", "", "1.2.0-SNAPSHOT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			got := v.FeatureVersion(tt.feat, "SNAPSHOT")
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestFeatureVersion_StripIsInverse(t *testing.T) {
	versions := []string{"1.2.0-SNAPSHOT", "2.1.0", "0.0.1-SNAPSHOT"}
	names := []string{"login", "issue42", "new_ui"}

	for _, raw := range versions {
		for _, name := range names {
			v, err := Parse(raw)
			require.NoError(t, err)
			qualified := v.FeatureVersion(name, "SNAPSHOT")
			require.Equal(t, raw, qualified.StripFeature(name).String(),
				"FeatureVersion(%q) then StripFeature must return %q", name, raw)
		}
	}
}

func TestStripFeature_FirstOccurrence(t *testing.T) {
	v, err := Parse("2.1.0-login-SNAPSHOT")
	require.NoError(t, err)
	require.Equal(t, "2.1.0-SNAPSHOT", v.StripFeature("login").String())
	require.True(t, v.ContainsFeature("login"))
	require.False(t, v.ContainsFeature("logout"))
}

func TestNextDevelopment(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		policy string
		want   string
	}{
		{"lowest bumps patch", "1.2.3-SNAPSHOT", "lowest", "1.2.4-SNAPSHOT"},
		{"lowest bumps short version", "2.1-SNAPSHOT", "lowest", "2.2-SNAPSHOT"},
		{"lowest on released version", "1.2.3", "lowest", "1.2.4-SNAPSHOT"},
		{"minor resets patch", "1.2.3-SNAPSHOT", "minor", "1.3.0-SNAPSHOT"},
		{"major resets below", "1.2.3-SNAPSHOT", "major", "2.0.0-SNAPSHOT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			policy, ok := PolicyByName(tt.policy)
			require.True(t, ok)
			require.Equal(t, tt.want, v.NextDevelopment(policy, "SNAPSHOT").String())
		})
	}
}

func TestCompareTo(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2", "1.2.0", 0},
		{"1.2.3", "1.2.3-SNAPSHOT", 1},
		{"1.2.3-SNAPSHOT", "1.2.3", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := Parse(tt.a)
			require.NoError(t, err)
			b, err := Parse(tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, a.CompareTo(b))
		})
	}
}
