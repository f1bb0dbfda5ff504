package config

import (
	"fmt"
	"strings"

	"github.com/alexist/gitflow/internal/semver"
)

// ValidationError reports an invalid configuration value or flag
// combination. It is always raised before any external command runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Effective is the resolved, immutable configuration a single invocation
// runs with. It is constructed once by Resolve and read-only thereafter.
type Effective struct {
	DevelopmentBranch string
	ProductionBranch  string
	FeaturePrefix     string
	ReleasePrefix     string
	HotfixPrefix      string
	SupportPrefix     string
	VersionTagPrefix  string

	Remote      string
	PushRemote  bool
	FetchRemote bool

	DevelopmentQualifier string
	VersionPolicy        semver.Policy

	InstallProject  bool
	SkipTestProject bool

	Messages EffectiveMessages
}

// EffectiveMessages is the resolved set of commit message templates.
type EffectiveMessages struct {
	FeatureStart           string
	FeatureFinish          string
	FeatureFinishIncrement string
	FeatureSquash          string
	FeatureDevMerge        string
	UpdateFeatureBack      string
	ReleaseStart           string
	ReleaseFinish          string
	ReleaseDevMerge        string
	NextDevelopment        string
	HotfixStart            string
	HotfixFinish           string
	HotfixDevMerge         string
	RestoreDevelopment     string
	SupportStart           string
	TagRelease             string
	TagHotfix              string
}

// Resolve merges cfg over the defaults and validates the result.
func Resolve(cfg *Config) (Effective, error) {
	merged := DefaultConfig()
	if cfg != nil {
		merged = Merge(merged, cfg)
	}

	policy, ok := semver.PolicyByName(*merged.VersionPolicy)
	if !ok {
		return Effective{}, &ValidationError{
			Field:  "version-policy",
			Reason: fmt.Sprintf("unknown policy %q", *merged.VersionPolicy),
		}
	}

	e := Effective{
		DevelopmentBranch:    *merged.DevelopmentBranch,
		ProductionBranch:     *merged.ProductionBranch,
		FeaturePrefix:        *merged.FeaturePrefix,
		ReleasePrefix:        *merged.ReleasePrefix,
		HotfixPrefix:         *merged.HotfixPrefix,
		SupportPrefix:        *merged.SupportPrefix,
		VersionTagPrefix:     *merged.VersionTagPrefix,
		Remote:               *merged.Remote,
		PushRemote:           *merged.PushRemote,
		FetchRemote:          *merged.FetchRemote,
		DevelopmentQualifier: *merged.DevelopmentQualifier,
		VersionPolicy:        policy,
		InstallProject:       *merged.InstallProject,
		SkipTestProject:      *merged.SkipTestProject,
		Messages: EffectiveMessages{
			FeatureStart:           *merged.Messages.FeatureStart,
			FeatureFinish:          *merged.Messages.FeatureFinish,
			FeatureFinishIncrement: *merged.Messages.FeatureFinishIncrement,
			FeatureSquash:          *merged.Messages.FeatureSquash,
			FeatureDevMerge:        *merged.Messages.FeatureDevMerge,
			UpdateFeatureBack:      *merged.Messages.UpdateFeatureBack,
			ReleaseStart:           *merged.Messages.ReleaseStart,
			ReleaseFinish:          *merged.Messages.ReleaseFinish,
			ReleaseDevMerge:        *merged.Messages.ReleaseDevMerge,
			NextDevelopment:        *merged.Messages.NextDevelopment,
			HotfixStart:            *merged.Messages.HotfixStart,
			HotfixFinish:           *merged.Messages.HotfixFinish,
			HotfixDevMerge:         *merged.Messages.HotfixDevMerge,
			RestoreDevelopment:     *merged.Messages.RestoreDevelopment,
			SupportStart:           *merged.Messages.SupportStart,
			TagRelease:             *merged.Messages.TagRelease,
			TagHotfix:              *merged.Messages.TagHotfix,
		},
	}

	for field, value := range map[string]string{
		"development-branch": e.DevelopmentBranch,
		"production-branch":  e.ProductionBranch,
		"feature-prefix":     e.FeaturePrefix,
		"release-prefix":     e.ReleasePrefix,
		"hotfix-prefix":      e.HotfixPrefix,
		"support-prefix":     e.SupportPrefix,
		"remote":             e.Remote,
	} {
		if strings.TrimSpace(value) == "" {
			return Effective{}, &ValidationError{Field: field, Reason: "must not be blank"}
		}
	}
	if e.DevelopmentBranch == e.ProductionBranch {
		return Effective{}, &ValidationError{
			Field:  "production-branch",
			Reason: "development and production branches must differ",
		}
	}

	return e, nil
}

// ValidateGoals rejects build goal strings that could escape a single tool
// invocation. Goals are passed as arguments, never through a shell, but
// newlines and shell metacharacters are refused up front so a bad value
// fails before any external command runs.
func ValidateGoals(goals ...string) error {
	for _, g := range goals {
		if strings.ContainsAny(g, "\n\r;&|<>`$") {
			return &ValidationError{Field: "goals", Reason: fmt.Sprintf("disallowed characters in %q", g)}
		}
	}
	return nil
}
