package flow

import (
	"fmt"
	"strings"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/semver"
)

// ReleaseStartOptions controls a single release-start run.
type ReleaseStartOptions struct {
	// Version is the release version. When blank it defaults to the
	// current project version stripped of the development qualifier, or to
	// an interactive answer.
	Version string

	// Interactive asks for the release version, offering the default.
	Interactive bool
}

// ReleaseStart creates a release branch off the development branch and sets
// the release version on it. Only one release branch may exist at a time.
func (e *Engine) ReleaseStart(opts ReleaseStartOptions) error {
	r := &releaseStartRun{engine: e, opts: opts}
	return e.run("release-start", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "check for existing release branch", run: r.checkSingleRelease},
		{
			name: "fetch and compare development branch",
			when: func() bool { return e.cfg.FetchRemote },
			run:  func() error { return e.fetchAndCompare(e.cfg.DevelopmentBranch) },
		},
		{name: "checkout development branch", run: func() error { return e.git.Checkout(e.cfg.DevelopmentBranch) }},
		{name: "resolve release version", run: r.resolveVersion},
		{name: "create release branch", run: r.createBranch},
		{
			name: "set release version",
			when: func() bool { return r.version.String() != r.currentVersion.String() },
			run:  r.setReleaseVersion,
		},
		{
			name: "install project",
			when: func() bool { return e.cfg.InstallProject },
			run:  e.mvn.CleanInstall,
		},
		{
			name: "push release branch",
			when: func() bool { return e.cfg.PushRemote },
			run:  func() error { return e.git.Push(r.branch) },
		},
	})
}

type releaseStartRun struct {
	engine *Engine
	opts   ReleaseStartOptions

	currentVersion semver.Version
	version        semver.Version
	branch         string
}

func (r *releaseStartRun) checkSingleRelease() error {
	e := r.engine
	branches, err := e.git.ListBranches(e.cfg.ReleasePrefix)
	if err != nil {
		return err
	}
	if len(branches) > 0 {
		return resolutionErrorf("release branch %q already exists; finish it first", branches[0])
	}
	return nil
}

func (r *releaseStartRun) resolveVersion() error {
	e := r.engine
	current, err := e.currentVersion()
	if err != nil {
		return err
	}
	r.currentVersion = current

	def := current.StripQualifier(e.cfg.DevelopmentQualifier)
	raw := strings.TrimSpace(r.opts.Version)
	if raw == "" && r.opts.Interactive {
		answer, err := e.prompt.Input("What is the release version?", def.String())
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(answer)
	}
	if raw == "" {
		r.version = def
	} else {
		v, err := semver.Parse(raw)
		if err != nil {
			return resolutionErrorf("release version %q is not a valid version", raw)
		}
		r.version = v
	}

	r.branch = e.cfg.ReleasePrefix + r.version.String()
	return e.requireBranchAbsent(r.branch)
}

func (r *releaseStartRun) createBranch() error {
	return r.engine.git.CreateAndCheckout(r.branch, r.engine.cfg.DevelopmentBranch)
}

func (r *releaseStartRun) setReleaseVersion() error {
	e := r.engine
	return e.setVersionAndCommit(r.version.String(), e.cfg.Messages.ReleaseStart, map[string]string{
		"version": r.version.String(),
	})
}

// ReleaseFinishOptions controls a single release-finish run.
type ReleaseFinishOptions struct {
	// Branch is the full release branch name; Name is the version part
	// without the prefix. Branch wins when both are set.
	Branch string
	Name   string

	// Interactive offers a choice over the existing release branches.
	Interactive bool

	// SkipTag suppresses the release tag on the production branch.
	SkipTag bool

	// KeepBranch leaves the release branch in place after the merge.
	KeepBranch bool

	// PreGoals and PostGoals are build goals run on the release branch
	// before the production merge and after it.
	PreGoals  string
	PostGoals string
}

// ReleaseFinish merges a release branch into the production branch, tags the
// release, merges it back into the development branch, and moves development
// to the next development version.
func (e *Engine) ReleaseFinish(opts ReleaseFinishOptions) error {
	if err := config.ValidateGoals(opts.PreGoals, opts.PostGoals); err != nil {
		return err
	}
	r := &releaseFinishRun{engine: e, opts: opts}
	return e.run("release-finish", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve release branch", run: r.resolveBranch},
		{
			name: "fetch and compare remote",
			when: func() bool { return e.cfg.FetchRemote },
			run: func() error {
				return e.fetchAndCompare(r.branch, e.cfg.DevelopmentBranch, e.cfg.ProductionBranch)
			},
		},
		{name: "checkout release branch", run: func() error { return e.git.Checkout(r.branch) }},
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
			name: "set release version",
			when: func() bool { return r.snapshot },
			run:  r.setReleaseVersion,
		},
		{name: "checkout production branch", run: func() error { return e.git.Checkout(e.cfg.ProductionBranch) }},
		{name: "merge release branch", run: r.mergeIntoProduction},
		{
			name: "tag release",
			when: func() bool { return !opts.SkipTag },
			run:  r.tag,
		},
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
		{name: "checkout development branch", run: func() error { return e.git.Checkout(e.cfg.DevelopmentBranch) }},
		{name: "merge into development branch", run: r.mergeIntoDevelopment},
		{name: "set next development version", run: r.setNextDevelopmentVersion},
		{
			name: "push",
			when: func() bool { return e.cfg.PushRemote },
			run:  r.push,
		},
		{
			name: "delete release branch",
			when: func() bool { return !opts.KeepBranch },
			run:  func() error { return e.git.DeleteLocalBranch(r.branch, false) },
		},
	})
}

type releaseFinishRun struct {
	engine *Engine
	opts   ReleaseFinishOptions

	branch string

	releaseVersion semver.Version
	snapshot       bool
}

func (r *releaseFinishRun) resolveBranch() error {
	e := r.engine
	branch, err := e.resolveFinishBranch("release", e.cfg.ReleasePrefix, r.opts.Branch, r.opts.Name, r.opts.Interactive)
	if err != nil {
		return err
	}
	r.branch = branch
	return nil
}

func (r *releaseFinishRun) readVersion() error {
	e := r.engine
	v, err := e.currentVersion()
	if err != nil {
		return err
	}
	r.snapshot = v.HasQualifier(e.cfg.DevelopmentQualifier)
	r.releaseVersion = v.StripQualifier(e.cfg.DevelopmentQualifier)
	return nil
}

func (r *releaseFinishRun) setReleaseVersion() error {
	e := r.engine
	return e.setVersionAndCommit(r.releaseVersion.String(), e.cfg.Messages.ReleaseFinish, map[string]string{
		"version": r.releaseVersion.String(),
	})
}

func (r *releaseFinishRun) mergeIntoProduction() error {
	return r.engine.git.MergeNoFF(r.branch, fmt.Sprintf("Merge branch '%s'", r.branch))
}

func (r *releaseFinishRun) tag() error {
	e := r.engine
	name := e.cfg.VersionTagPrefix + r.releaseVersion.String()
	message := config.RenderMessage(e.cfg.Messages.TagRelease, map[string]string{
		"version": r.releaseVersion.String(),
	})
	return e.git.CreateTag(name, message)
}

func (r *releaseFinishRun) mergeIntoDevelopment() error {
	e := r.engine
	message := config.RenderMessage(e.cfg.Messages.ReleaseDevMerge, map[string]string{
		"releaseBranch":     r.branch,
		"developmentBranch": e.cfg.DevelopmentBranch,
		"version":           r.releaseVersion.String(),
	})
	return e.git.MergeNoFF(r.branch, message)
}

func (r *releaseFinishRun) setNextDevelopmentVersion() error {
	e := r.engine
	next := r.releaseVersion.NextDevelopment(e.cfg.VersionPolicy, e.cfg.DevelopmentQualifier)
	return e.setVersionAndCommit(next.String(), e.cfg.Messages.NextDevelopment, map[string]string{
		"version": next.String(),
	})
}

func (r *releaseFinishRun) push() error {
	e := r.engine
	if err := e.git.Push(e.cfg.ProductionBranch); err != nil {
		return err
	}
	if err := e.git.Push(e.cfg.DevelopmentBranch); err != nil {
		return err
	}
	if !r.opts.SkipTag {
		if err := e.git.Push(e.cfg.VersionTagPrefix + r.releaseVersion.String()); err != nil {
			return err
		}
	}
	if r.opts.KeepBranch {
		return nil
	}
	return e.git.DeleteRemoteBranch(r.branch)
}
