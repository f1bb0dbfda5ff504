// Package config provides YAML configuration loading, defaults, merging, and
// effective configuration resolution for the branch workflows.
package config

// Config is the root configuration as read from a .gitflow.yml file. All
// optional fields are pointers to support merge semantics during
// configuration building: a nil field means "not set, use the default".
type Config struct {
	// Branch naming.
	DevelopmentBranch *string `yaml:"development-branch"`
	ProductionBranch  *string `yaml:"production-branch"`
	FeaturePrefix     *string `yaml:"feature-prefix"`
	ReleasePrefix     *string `yaml:"release-prefix"`
	HotfixPrefix      *string `yaml:"hotfix-prefix"`
	SupportPrefix     *string `yaml:"support-prefix"`
	VersionTagPrefix  *string `yaml:"version-tag-prefix"`

	// Remote interaction.
	Remote      *string `yaml:"remote"`
	PushRemote  *bool   `yaml:"push-remote"`
	FetchRemote *bool   `yaml:"fetch-remote"`

	// Versioning.
	DevelopmentQualifier *string `yaml:"development-qualifier"`
	VersionPolicy        *string `yaml:"version-policy"`

	// Build tool behavior.
	InstallProject  *bool `yaml:"install-project"`
	SkipTestProject *bool `yaml:"skip-test-project"`

	// Commit message templates, keyed by action.
	Messages *Messages `yaml:"messages"`
}

// Messages holds the per-action commit message templates. Templates use
// {{placeholder}} tokens substituted by RenderMessage.
type Messages struct {
	FeatureStart           *string `yaml:"feature-start"`
	FeatureFinish          *string `yaml:"feature-finish"`
	FeatureFinishIncrement *string `yaml:"feature-finish-increment"`
	FeatureSquash          *string `yaml:"feature-squash"`
	FeatureDevMerge        *string `yaml:"feature-dev-merge"`
	UpdateFeatureBack      *string `yaml:"update-feature-back"`
	ReleaseStart           *string `yaml:"release-start"`
	ReleaseFinish          *string `yaml:"release-finish"`
	ReleaseDevMerge        *string `yaml:"release-dev-merge"`
	NextDevelopment        *string `yaml:"next-development"`
	HotfixStart            *string `yaml:"hotfix-start"`
	HotfixFinish           *string `yaml:"hotfix-finish"`
	HotfixDevMerge         *string `yaml:"hotfix-dev-merge"`
	RestoreDevelopment     *string `yaml:"restore-development"`
	SupportStart           *string `yaml:"support-start"`
	TagRelease             *string `yaml:"tag-release"`
	TagHotfix              *string `yaml:"tag-hotfix"`
}

// Merge overlays non-nil fields of override onto base and returns the result.
// Neither input is modified.
func Merge(base, override *Config) *Config {
	merged := *base

	mergeStr := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	mergeBool := func(dst **bool, src *bool) {
		if src != nil {
			*dst = src
		}
	}

	mergeStr(&merged.DevelopmentBranch, override.DevelopmentBranch)
	mergeStr(&merged.ProductionBranch, override.ProductionBranch)
	mergeStr(&merged.FeaturePrefix, override.FeaturePrefix)
	mergeStr(&merged.ReleasePrefix, override.ReleasePrefix)
	mergeStr(&merged.HotfixPrefix, override.HotfixPrefix)
	mergeStr(&merged.SupportPrefix, override.SupportPrefix)
	mergeStr(&merged.VersionTagPrefix, override.VersionTagPrefix)
	mergeStr(&merged.Remote, override.Remote)
	mergeBool(&merged.PushRemote, override.PushRemote)
	mergeBool(&merged.FetchRemote, override.FetchRemote)
	mergeStr(&merged.DevelopmentQualifier, override.DevelopmentQualifier)
	mergeStr(&merged.VersionPolicy, override.VersionPolicy)
	mergeBool(&merged.InstallProject, override.InstallProject)
	mergeBool(&merged.SkipTestProject, override.SkipTestProject)

	if override.Messages != nil {
		if merged.Messages == nil {
			merged.Messages = &Messages{}
		}
		m := *merged.Messages
		o := override.Messages
		mergeStr(&m.FeatureStart, o.FeatureStart)
		mergeStr(&m.FeatureFinish, o.FeatureFinish)
		mergeStr(&m.FeatureFinishIncrement, o.FeatureFinishIncrement)
		mergeStr(&m.FeatureSquash, o.FeatureSquash)
		mergeStr(&m.FeatureDevMerge, o.FeatureDevMerge)
		mergeStr(&m.UpdateFeatureBack, o.UpdateFeatureBack)
		mergeStr(&m.ReleaseStart, o.ReleaseStart)
		mergeStr(&m.ReleaseFinish, o.ReleaseFinish)
		mergeStr(&m.ReleaseDevMerge, o.ReleaseDevMerge)
		mergeStr(&m.NextDevelopment, o.NextDevelopment)
		mergeStr(&m.HotfixStart, o.HotfixStart)
		mergeStr(&m.HotfixFinish, o.HotfixFinish)
		mergeStr(&m.HotfixDevMerge, o.HotfixDevMerge)
		mergeStr(&m.RestoreDevelopment, o.RestoreDevelopment)
		mergeStr(&m.SupportStart, o.SupportStart)
		mergeStr(&m.TagRelease, o.TagRelease)
		mergeStr(&m.TagHotfix, o.TagHotfix)
		merged.Messages = &m
	}

	return &merged
}
