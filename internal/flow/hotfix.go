package flow

import (
	"fmt"
	"strings"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/semver"
)

// HotfixStartOptions controls a single hotfix-start run.
type HotfixStartOptions struct {
	// SupportBranch starts the hotfix from a support branch instead of the
	// production branch. It may be given with or without the support
	// prefix.
	SupportBranch string

	// Version overrides the computed hotfix version.
	Version string

	// UseSnapshot appends the development qualifier to the hotfix version.
	UseSnapshot bool
}

// HotfixStart creates a hotfix branch off the production branch (or a
// support branch) with the patch component incremented.
func (e *Engine) HotfixStart(opts HotfixStartOptions) error {
	r := &hotfixStartRun{engine: e, opts: opts}
	return e.run("hotfix-start", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve source branch", run: r.resolveSource},
		{
			name: "fetch and compare source branch",
			when: func() bool { return e.cfg.FetchRemote },
			run:  func() error { return e.fetchAndCompare(r.source) },
		},
		{name: "checkout source branch", run: func() error { return e.git.Checkout(r.source) }},
		{name: "resolve hotfix version", run: r.resolveVersion},
		{name: "create hotfix branch", run: r.createBranch},
		{name: "set hotfix version", run: r.setHotfixVersion},
		{
			name: "install project",
			when: func() bool { return e.cfg.InstallProject },
			run:  e.mvn.CleanInstall,
		},
		{
			name: "push hotfix branch",
			when: func() bool { return e.cfg.PushRemote },
			run:  func() error { return e.git.Push(r.branch) },
		},
	})
}

type hotfixStartRun struct {
	engine *Engine
	opts   HotfixStartOptions

	source  string
	version semver.Version
	branch  string
}

func (r *hotfixStartRun) resolveSource() error {
	e := r.engine
	if r.opts.SupportBranch == "" {
		r.source = e.cfg.ProductionBranch
		return nil
	}
	branch := r.opts.SupportBranch
	if !strings.HasPrefix(branch, e.cfg.SupportPrefix) {
		branch = e.cfg.SupportPrefix + branch
	}
	if err := e.requireBranch(branch); err != nil {
		return err
	}
	r.source = branch
	return nil
}

// resolveVersion computes the hotfix version: the source version with its
// lowest component incremented, unless an explicit version was given.
func (r *hotfixStartRun) resolveVersion() error {
	e := r.engine
	raw := strings.TrimSpace(r.opts.Version)
	if raw != "" {
		v, err := semver.Parse(raw)
		if err != nil {
			return resolutionErrorf("hotfix version %q is not a valid version", raw)
		}
		r.version = v.StripQualifier(e.cfg.DevelopmentQualifier)
	} else {
		current, err := e.currentVersion()
		if err != nil {
			return err
		}
		base := current.StripQualifier(e.cfg.DevelopmentQualifier)
		r.version = e.cfg.VersionPolicy.Increment(base)
	}

	r.branch = e.cfg.HotfixPrefix + r.version.String()
	return e.requireBranchAbsent(r.branch)
}

func (r *hotfixStartRun) createBranch() error {
	return r.engine.git.CreateAndCheckout(r.branch, r.source)
}

func (r *hotfixStartRun) setHotfixVersion() error {
	e := r.engine
	version := r.version
	if r.opts.UseSnapshot {
		version = version.WithQualifier(e.cfg.DevelopmentQualifier)
	}
	return e.setVersionAndCommit(version.String(), e.cfg.Messages.HotfixStart, map[string]string{
		"version": version.String(),
	})
}

// HotfixFinishOptions controls a single hotfix-finish run.
type HotfixFinishOptions struct {
	// Branch is the full hotfix branch name; Name is the version part
	// without the prefix. Branch wins when both are set.
	Branch string
	Name   string

	// Interactive offers a choice over the existing hotfix branches.
	Interactive bool

	// SkipTag suppresses the hotfix tag on the production branch.
	SkipTag bool

	// KeepBranch leaves the hotfix branch in place after the merge.
	KeepBranch bool

	// PreGoals and PostGoals are build goals run on the hotfix branch
	// before the production merge and after it.
	PreGoals  string
	PostGoals string
}

// HotfixFinish merges a hotfix branch into the production branch, tags it,
// and merges it back into the development branch. The development branch
// keeps its own version when it is already ahead of the hotfix.
func (e *Engine) HotfixFinish(opts HotfixFinishOptions) error {
	if err := config.ValidateGoals(opts.PreGoals, opts.PostGoals); err != nil {
		return err
	}
	r := &hotfixFinishRun{engine: e, opts: opts}
	return e.run("hotfix-finish", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve hotfix branch", run: r.resolveBranch},
		{
			name: "fetch and compare remote",
			when: func() bool { return e.cfg.FetchRemote },
			run: func() error {
				return e.fetchAndCompare(r.branch, e.cfg.DevelopmentBranch, e.cfg.ProductionBranch)
			},
		},
		{name: "checkout hotfix branch", run: func() error { return e.git.Checkout(r.branch) }},
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
			name: "set hotfix version",
			when: func() bool { return r.snapshot },
			run:  r.setHotfixVersion,
		},
		{name: "checkout production branch", run: func() error { return e.git.Checkout(e.cfg.ProductionBranch) }},
		{name: "merge hotfix branch", run: r.mergeIntoProduction},
		{
			name: "tag hotfix",
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
		{name: "read development version", run: r.readDevelopmentVersion},
		{name: "merge into development branch", run: r.mergeIntoDevelopment},
		{name: "set development version", run: r.setDevelopmentVersion},
		{
			name: "push",
			when: func() bool { return e.cfg.PushRemote },
			run:  r.push,
		},
		{
			name: "delete hotfix branch",
			when: func() bool { return !opts.KeepBranch },
			run:  func() error { return e.git.DeleteLocalBranch(r.branch, false) },
		},
	})
}

type hotfixFinishRun struct {
	engine *Engine
	opts   HotfixFinishOptions

	branch string

	hotfixVersion semver.Version
	snapshot      bool

	// developmentVersion is the development branch's version before the
	// merge, captured so it can be restored when the merge carries the
	// hotfix version over it.
	developmentVersion    semver.Version
	hasDevelopmentVersion bool
}

func (r *hotfixFinishRun) resolveBranch() error {
	e := r.engine
	branch, err := e.resolveFinishBranch("hotfix", e.cfg.HotfixPrefix, r.opts.Branch, r.opts.Name, r.opts.Interactive)
	if err != nil {
		return err
	}
	r.branch = branch
	return nil
}

func (r *hotfixFinishRun) readVersion() error {
	e := r.engine
	v, err := e.currentVersion()
	if err != nil {
		return err
	}
	r.snapshot = v.HasQualifier(e.cfg.DevelopmentQualifier)
	r.hotfixVersion = v.StripQualifier(e.cfg.DevelopmentQualifier)
	return nil
}

func (r *hotfixFinishRun) setHotfixVersion() error {
	e := r.engine
	return e.setVersionAndCommit(r.hotfixVersion.String(), e.cfg.Messages.HotfixFinish, map[string]string{
		"version": r.hotfixVersion.String(),
	})
}

func (r *hotfixFinishRun) mergeIntoProduction() error {
	return r.engine.git.MergeNoFF(r.branch, fmt.Sprintf("Merge branch '%s'", r.branch))
}

func (r *hotfixFinishRun) tag() error {
	e := r.engine
	name := e.cfg.VersionTagPrefix + r.hotfixVersion.String()
	message := config.RenderMessage(e.cfg.Messages.TagHotfix, map[string]string{
		"version": r.hotfixVersion.String(),
	})
	return e.git.CreateTag(name, message)
}

func (r *hotfixFinishRun) readDevelopmentVersion() error {
	e := r.engine
	raw, err := e.mvn.CurrentVersion()
	if err != nil {
		return err
	}
	v, ok := semver.TryParse(raw)
	if !ok {
		return nil
	}
	r.developmentVersion = v
	r.hasDevelopmentVersion = true
	return nil
}

func (r *hotfixFinishRun) mergeIntoDevelopment() error {
	e := r.engine
	message := config.RenderMessage(e.cfg.Messages.HotfixDevMerge, map[string]string{
		"hotfixBranch":      r.branch,
		"developmentBranch": e.cfg.DevelopmentBranch,
		"version":           r.hotfixVersion.String(),
	})
	return e.git.MergeNoFF(r.branch, message)
}

// setDevelopmentVersion restores the development branch's own snapshot
// version when it was already ahead of the hotfix; otherwise development
// moves to the next development version after the hotfix.
func (r *hotfixFinishRun) setDevelopmentVersion() error {
	e := r.engine
	if r.hasDevelopmentVersion &&
		r.developmentVersion.HasQualifier(e.cfg.DevelopmentQualifier) &&
		r.developmentVersion.StripQualifier(e.cfg.DevelopmentQualifier).CompareTo(r.hotfixVersion) > 0 {
		return e.setVersionAndCommit(r.developmentVersion.String(), e.cfg.Messages.RestoreDevelopment, map[string]string{
			"version": r.developmentVersion.String(),
		})
	}
	next := r.hotfixVersion.NextDevelopment(e.cfg.VersionPolicy, e.cfg.DevelopmentQualifier)
	return e.setVersionAndCommit(next.String(), e.cfg.Messages.NextDevelopment, map[string]string{
		"version": next.String(),
	})
}

func (r *hotfixFinishRun) push() error {
	e := r.engine
	if err := e.git.Push(e.cfg.ProductionBranch); err != nil {
		return err
	}
	if err := e.git.Push(e.cfg.DevelopmentBranch); err != nil {
		return err
	}
	if !r.opts.SkipTag {
		if err := e.git.Push(e.cfg.VersionTagPrefix + r.hotfixVersion.String()); err != nil {
			return err
		}
	}
	if r.opts.KeepBranch {
		return nil
	}
	return e.git.DeleteRemoteBranch(r.branch)
}
