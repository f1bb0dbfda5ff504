// Package flow implements the branch workflow engine. Every action
// (feature/release/hotfix/support start and finish) is a fixed, ordered list
// of steps over the git and maven command surfaces; optional steps are gated
// by conditions evaluated as the pipeline runs. The engine executes steps
// strictly in order and aborts the whole action on the first error. Steps
// already completed stay in effect; recovering a partially modified working
// tree is left to the operator.
package flow

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/git"
	"github.com/alexist/gitflow/internal/maven"
	"github.com/alexist/gitflow/internal/output"
	"github.com/alexist/gitflow/internal/prompt"
	"github.com/alexist/gitflow/internal/semver"
)

// Engine runs branch workflow actions. It is safe to run multiple actions
// sequentially with one Engine; nothing runs concurrently.
type Engine struct {
	cfg    config.Effective
	git    git.Repository
	mvn    maven.Runner
	prompt prompt.Prompter
	report *output.Reporter
}

// New creates an Engine. prompter may be nil when every action runs
// non-interactively.
func New(cfg config.Effective, repo git.Repository, mvn maven.Runner, prompter prompt.Prompter, out io.Writer) *Engine {
	return &Engine{
		cfg:    cfg,
		git:    repo,
		mvn:    mvn,
		prompt: prompter,
		report: output.NewReporter(out),
	}
}

// step is one unit of an action pipeline. when is evaluated immediately
// before the step would run, so it can depend on state accumulated by
// earlier steps; a nil when means the step always runs.
type step struct {
	name string
	when func() bool
	run  func() error
}

// run executes the pipeline for an action, in order, aborting on the first
// failing step.
func (e *Engine) run(action string, steps []step) error {
	e.report.Action(action)
	for _, s := range steps {
		if s.when != nil && !s.when() {
			e.report.Skip(s.name)
			continue
		}
		e.report.Step(s.name)
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %s: %w", action, s.name, err)
		}
	}
	e.report.Done(action)
	return nil
}

// requireCleanTree is the first step of every action.
func (e *Engine) requireCleanTree() error {
	dirty, err := e.git.HasUncommittedChanges()
	if err != nil {
		return err
	}
	if dirty {
		return ErrUncommittedChanges
	}
	return nil
}

// fetchAndCompare fetches the remote once and verifies that none of the
// given local refs have diverged from their remote counterparts.
func (e *Engine) fetchAndCompare(refs ...string) error {
	if err := e.git.Fetch(); err != nil {
		return err
	}
	for _, ref := range refs {
		if err := e.git.CompareWithRemote(ref); err != nil {
			return err
		}
	}
	return nil
}

// currentVersion reads and parses the project version.
func (e *Engine) currentVersion() (semver.Version, error) {
	raw, err := e.mvn.CurrentVersion()
	if err != nil {
		return semver.Version{}, err
	}
	v, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, fmt.Errorf("project version %q: %w", raw, err)
	}
	return v, nil
}

// setVersionAndCommit rewrites the project version and commits the change
// with a rendered message.
func (e *Engine) setVersionAndCommit(version, template string, props map[string]string) error {
	if err := e.mvn.SetVersions(version); err != nil {
		return err
	}
	return e.git.Commit(config.RenderMessage(template, props))
}

// validRefName rejects branch name fragments git would refuse.
func validRefName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") || strings.HasSuffix(name, ".lock") {
		return false
	}
	if strings.Contains(name, "..") || strings.Contains(name, "//") {
		return false
	}
	return !strings.ContainsAny(name, " ~^:?*[\\\t\n")
}
