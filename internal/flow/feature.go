package flow

import (
	"strings"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/semver"
)

// FeatureStartOptions controls a single feature-start run.
type FeatureStartOptions struct {
	// Name is the feature name without the branch prefix. Required in
	// non-interactive mode.
	Name string

	// Interactive asks for the name when it is not given.
	Interactive bool

	// SkipFeatureVersion leaves the project version untouched on the new
	// branch.
	SkipFeatureVersion bool
}

// FeatureStart creates a feature branch off the development branch and, by
// default, qualifies the project version with the feature name.
func (e *Engine) FeatureStart(opts FeatureStartOptions) error {
	r := &featureStartRun{engine: e, opts: opts}
	return e.run("feature-start", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve feature name", run: r.resolveName},
		{
			name: "fetch and compare development branch",
			when: func() bool { return e.cfg.FetchRemote },
			run:  func() error { return e.fetchAndCompare(e.cfg.DevelopmentBranch) },
		},
		{name: "create feature branch", run: r.createBranch},
		{
			name: "set feature version",
			when: func() bool { return !opts.SkipFeatureVersion },
			run:  r.setFeatureVersion,
		},
		{
			name: "install project",
			when: func() bool { return e.cfg.InstallProject },
			run:  e.mvn.CleanInstall,
		},
		{
			name: "push feature branch",
			when: func() bool { return e.cfg.PushRemote },
			run:  func() error { return e.git.Push(r.branch) },
		},
	})
}

type featureStartRun struct {
	engine *Engine
	opts   FeatureStartOptions

	name   string
	branch string
}

func (r *featureStartRun) resolveName() error {
	e := r.engine
	name := strings.TrimSpace(r.opts.Name)
	if name == "" && r.opts.Interactive {
		for name == "" {
			answer, err := e.prompt.Input("What is the feature branch name?", "")
			if err != nil {
				return err
			}
			name = strings.TrimSpace(answer)
		}
	}
	if name == "" {
		return resolutionErrorf("feature name is blank")
	}
	if !validRefName(name) {
		return resolutionErrorf("feature name %q is not a valid branch name", name)
	}
	r.name = name
	r.branch = e.cfg.FeaturePrefix + name
	return e.requireBranchAbsent(r.branch)
}

func (r *featureStartRun) createBranch() error {
	return r.engine.git.CreateAndCheckout(r.branch, r.engine.cfg.DevelopmentBranch)
}

func (r *featureStartRun) setFeatureVersion() error {
	e := r.engine
	current, err := e.currentVersion()
	if err != nil {
		return err
	}
	featureVersion := current.FeatureVersion(r.name, e.cfg.DevelopmentQualifier)
	if featureVersion.String() == current.String() {
		return nil
	}
	return e.setVersionAndCommit(featureVersion.String(), e.cfg.Messages.FeatureStart, map[string]string{
		"version":     featureVersion.String(),
		"featureName": r.name,
	})
}

// FeatureFinishOptions controls a single feature-finish run.
type FeatureFinishOptions struct {
	// Branch is the full feature branch name. It wins over Name when both
	// are set and must carry the feature prefix.
	Branch string

	// Name is the feature name without the branch prefix.
	Name string

	// Interactive offers a choice over the existing feature branches when
	// neither Branch nor Name is given.
	Interactive bool

	// IncrementVersion bumps the development version on the feature branch
	// before merging.
	IncrementVersion bool

	// Squash combines the feature commits into one commit on the
	// development branch.
	Squash bool

	// KeepBranch leaves the feature branch in place after the merge,
	// restoring its feature-qualified version.
	KeepBranch bool

	// PreGoals and PostGoals are build goals run on the feature branch
	// before the merge and on the development branch after it.
	PreGoals  string
	PostGoals string
}

// FeatureFinish merges a feature branch into the development branch,
// stripping the feature qualifier from the project version.
func (e *Engine) FeatureFinish(opts FeatureFinishOptions) error {
	if err := config.ValidateGoals(opts.PreGoals, opts.PostGoals); err != nil {
		return err
	}
	r := &featureFinishRun{engine: e, opts: opts}
	return e.run("feature-finish", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve feature branch", run: r.resolveBranch},
		{
			name: "fetch and compare remote",
			when: func() bool { return e.cfg.FetchRemote },
			run:  func() error { return e.fetchAndCompare(r.branch, e.cfg.DevelopmentBranch) },
		},
		{name: "checkout feature branch", run: func() error { return e.git.Checkout(r.branch) }},
		{
			name: "test project",
			when: func() bool { return !e.cfg.SkipTestProject },
			run:  e.mvn.CleanTest,
		},
		{
			name: "run pre-finish goals",
			when: func() bool { return opts.PreGoals != "" },
			run:  func() error { return e.mvn.RunGoals(opts.PreGoals) },
		},
		{name: "read project version", run: r.readVersion},
		{
			name: "increment feature version",
			when: func() bool { return opts.IncrementVersion },
			run:  r.incrementVersion,
		},
		{name: "strip feature qualifier", run: r.stripFeatureQualifier},
		{name: "checkout development branch", run: func() error { return e.git.Checkout(e.cfg.DevelopmentBranch) }},
		{name: "merge feature branch", run: r.merge},
		{
			name: "run post-finish goals",
			when: func() bool { return opts.PostGoals != "" },
			run:  func() error { return e.mvn.RunGoals(opts.PostGoals) },
		},
		{
			name: "install project",
			when: func() bool { return e.cfg.InstallProject },
			run:  e.mvn.CleanInstall,
		},
		{
			name: "restore feature branch version",
			when: func() bool { return opts.KeepBranch },
			run:  r.restoreFeatureVersion,
		},
		{
			name: "push",
			when: func() bool { return e.cfg.PushRemote },
			run:  r.push,
		},
		{
			name: "delete feature branch",
			when: func() bool { return !opts.KeepBranch },
			run:  func() error { return e.git.DeleteLocalBranch(r.branch, opts.Squash) },
		},
	})
}

type featureFinishRun struct {
	engine *Engine
	opts   FeatureFinishOptions

	branch string
	name   string

	// featureVersion is the version carried by the feature branch after the
	// optional increment; developmentVersion is the same version with the
	// feature qualifier stripped.
	featureVersion     semver.Version
	developmentVersion semver.Version
}

func (r *featureFinishRun) resolveBranch() error {
	e := r.engine
	branch, err := e.resolveFinishBranch("feature", e.cfg.FeaturePrefix, r.opts.Branch, r.opts.Name, r.opts.Interactive)
	if err != nil {
		return err
	}
	r.branch = branch
	r.name = strings.TrimPrefix(branch, e.cfg.FeaturePrefix)
	return nil
}

func (r *featureFinishRun) readVersion() error {
	v, err := r.engine.currentVersion()
	if err != nil {
		return err
	}
	r.featureVersion = v
	r.developmentVersion = v.StripFeature(r.name)
	return nil
}

// incrementVersion bumps the development version and re-applies the feature
// qualifier, committing the result on the feature branch. The feature name
// is stripped before incrementing so a numeric name is never bumped.
func (r *featureFinishRun) incrementVersion() error {
	e := r.engine
	next := r.developmentVersion.NextDevelopment(e.cfg.VersionPolicy, e.cfg.DevelopmentQualifier)
	featureNext := next.FeatureVersion(r.name, e.cfg.DevelopmentQualifier)
	if err := e.setVersionAndCommit(featureNext.String(), e.cfg.Messages.FeatureFinishIncrement, map[string]string{
		"version":     featureNext.String(),
		"featureName": r.name,
	}); err != nil {
		return err
	}
	r.featureVersion = featureNext
	r.developmentVersion = next
	return nil
}

func (r *featureFinishRun) stripFeatureQualifier() error {
	e := r.engine
	if !r.featureVersion.ContainsFeature(r.name) {
		return nil
	}
	return e.setVersionAndCommit(r.developmentVersion.String(), e.cfg.Messages.FeatureFinish, map[string]string{
		"version":     r.developmentVersion.String(),
		"featureName": r.name,
	})
}

func (r *featureFinishRun) merge() error {
	e := r.engine
	if r.opts.Squash {
		if err := e.git.MergeSquash(r.branch); err != nil {
			return err
		}
		message := e.cfg.Messages.FeatureSquash
		if message == "" {
			message = r.branch
		}
		return e.git.Commit(message)
	}
	message := config.RenderMessage(e.cfg.Messages.FeatureDevMerge, map[string]string{
		"featureBranch":     r.branch,
		"developmentBranch": e.cfg.DevelopmentBranch,
		"version":           r.developmentVersion.String(),
		"featureName":       r.name,
	})
	return e.git.MergeNoFF(r.branch, message)
}

func (r *featureFinishRun) restoreFeatureVersion() error {
	e := r.engine
	if err := e.git.Checkout(r.branch); err != nil {
		return err
	}
	if r.featureVersion.String() == r.developmentVersion.String() {
		return nil
	}
	return e.setVersionAndCommit(r.featureVersion.String(), e.cfg.Messages.UpdateFeatureBack, map[string]string{
		"version":     r.featureVersion.String(),
		"featureName": r.name,
	})
}

func (r *featureFinishRun) push() error {
	e := r.engine
	if err := e.git.Push(e.cfg.DevelopmentBranch); err != nil {
		return err
	}
	if r.opts.KeepBranch {
		return e.git.Push(r.branch)
	}
	return e.git.DeleteRemoteBranch(r.branch)
}
