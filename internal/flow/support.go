package flow

// SupportStartOptions controls a single support-start run.
type SupportStartOptions struct {
	// Tag is the tag the support branch starts from. When blank the tag is
	// chosen interactively or defaults to the most recent tag.
	Tag string

	// Name overrides the branch name, which otherwise defaults to the tag.
	Name string

	// Interactive asks which tag to branch from.
	Interactive bool

	// UseSnapshot bumps the branched version to a development snapshot
	// when it is not one already.
	UseSnapshot bool
}

// SupportStart creates a long-lived support branch from a release tag.
func (e *Engine) SupportStart(opts SupportStartOptions) error {
	r := &supportStartRun{engine: e, opts: opts}
	return e.run("support-start", []step{
		{name: "check uncommitted changes", run: e.requireCleanTree},
		{name: "resolve tag", run: r.resolveTag},
		{name: "create support branch", run: r.createBranch},
		{
			name: "set snapshot version",
			when: func() bool { return opts.UseSnapshot },
			run:  r.setSnapshotVersion,
		},
		{
			name: "install project",
			when: func() bool { return e.cfg.InstallProject },
			run:  e.mvn.CleanInstall,
		},
		{
			name: "push support branch",
			when: func() bool { return e.cfg.PushRemote },
			run:  func() error { return e.git.Push(r.branch) },
		},
	})
}

type supportStartRun struct {
	engine *Engine
	opts   SupportStartOptions

	tag    string
	branch string
}

func (r *supportStartRun) resolveTag() error {
	e := r.engine
	tag, err := e.resolveTag(r.opts.Tag, r.opts.Interactive)
	if err != nil {
		return err
	}
	r.tag = tag

	name := r.opts.Name
	if name == "" {
		name = tag
	}
	if !validRefName(name) {
		return resolutionErrorf("support branch name %q is not a valid branch name", name)
	}
	r.branch = e.cfg.SupportPrefix + name
	return e.requireBranchAbsent(r.branch)
}

func (r *supportStartRun) createBranch() error {
	return r.engine.git.CreateAndCheckout(r.branch, r.tag)
}

// setSnapshotVersion appends the development qualifier to the branched
// version. A version that is already a snapshot is left alone.
func (r *supportStartRun) setSnapshotVersion() error {
	e := r.engine
	current, err := e.currentVersion()
	if err != nil {
		return err
	}
	if current.HasQualifier(e.cfg.DevelopmentQualifier) {
		return nil
	}
	version := current.WithQualifier(e.cfg.DevelopmentQualifier)
	return e.setVersionAndCommit(version.String(), e.cfg.Messages.SupportStart, map[string]string{
		"version": version.String(),
	})
}
