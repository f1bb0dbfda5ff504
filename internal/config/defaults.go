package config

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// DefaultConfig returns a fully-populated configuration with the standard
// git-flow branch names and the stock commit messages.
func DefaultConfig() *Config {
	return &Config{
		DevelopmentBranch: strPtr("develop"),
		ProductionBranch:  strPtr("master"),
		FeaturePrefix:     strPtr("feature/"),
		ReleasePrefix:     strPtr("release/"),
		HotfixPrefix:      strPtr("hotfix/"),
		SupportPrefix:     strPtr("support/"),
		VersionTagPrefix:  strPtr(""),

		Remote:      strPtr("origin"),
		PushRemote:  boolPtr(true),
		FetchRemote: boolPtr(true),

		DevelopmentQualifier: strPtr("SNAPSHOT"),
		VersionPolicy:        strPtr("lowest"),

		InstallProject:  boolPtr(false),
		SkipTestProject: boolPtr(false),

		Messages: &Messages{
			FeatureStart:           strPtr("Update versions for feature branch"),
			FeatureFinish:          strPtr("Update versions for development branch"),
			FeatureFinishIncrement: strPtr("Increment version for feature branch"),
			FeatureSquash:          strPtr(""),
			FeatureDevMerge:        strPtr("Merge branch '{{featureBranch}}' into {{developmentBranch}}"),
			UpdateFeatureBack:      strPtr("Update feature branch back to feature version"),
			ReleaseStart:           strPtr("Update versions for release"),
			ReleaseFinish:          strPtr("Update versions for release"),
			ReleaseDevMerge:        strPtr("Merge branch '{{releaseBranch}}' into {{developmentBranch}}"),
			NextDevelopment:        strPtr("Update versions for development"),
			HotfixStart:            strPtr("Update versions for hotfix"),
			HotfixFinish:           strPtr("Update versions for hotfix"),
			HotfixDevMerge:         strPtr("Merge branch '{{hotfixBranch}}' into {{developmentBranch}}"),
			RestoreDevelopment:     strPtr("Restore version for development branch"),
			SupportStart:           strPtr("Update versions for support branch"),
			TagRelease:             strPtr("Tag release {{version}}"),
			TagHotfix:              strPtr("Tag hotfix {{version}}"),
		},
	}
}
