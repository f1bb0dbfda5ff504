// Package gitflow provides a public Go API for the branch lifecycle
// workflows. It wires the same engine the CLI uses, without any terminal
// interaction.
//
// Basic usage:
//
//	client, err := gitflow.New(gitflow.Options{Path: "/path/to/repo"})
//	if err != nil {
//	    return err
//	}
//	err = client.FeatureStart(gitflow.FeatureStartOptions{Name: "login"})
package gitflow

import (
	"fmt"
	"io"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/flow"
	"github.com/alexist/gitflow/internal/git"
	"github.com/alexist/gitflow/internal/maven"
)

// Options configures a Client.
type Options struct {
	// Path to the git repository. Defaults to "." if empty.
	Path string

	// ConfigPath is the path to a gitflow YAML config file. If empty, a
	// .gitflow.yml in the repository root is auto-detected.
	ConfigPath string

	// Output receives step progress. Nil discards it.
	Output io.Writer
}

// FeatureStartOptions configures FeatureStart. Name is the feature name
// without the branch prefix.
type FeatureStartOptions struct {
	Name               string
	SkipFeatureVersion bool
}

// FeatureFinishOptions configures FeatureFinish. Exactly one of Branch
// (the full branch name) or Name must be set.
type FeatureFinishOptions struct {
	Branch           string
	Name             string
	IncrementVersion bool
	Squash           bool
	KeepBranch       bool
	PreGoals         string
	PostGoals        string
}

// ReleaseStartOptions configures ReleaseStart. A blank Version defaults to
// the current project version without the development qualifier.
type ReleaseStartOptions struct {
	Version string
}

// ReleaseFinishOptions configures ReleaseFinish.
type ReleaseFinishOptions struct {
	Branch     string
	Name       string
	SkipTag    bool
	KeepBranch bool
	PreGoals   string
	PostGoals  string
}

// HotfixStartOptions configures HotfixStart.
type HotfixStartOptions struct {
	SupportBranch string
	Version       string
	UseSnapshot   bool
}

// HotfixFinishOptions configures HotfixFinish.
type HotfixFinishOptions struct {
	Branch     string
	Name       string
	SkipTag    bool
	KeepBranch bool
	PreGoals   string
	PostGoals  string
}

// SupportStartOptions configures SupportStart. A blank Tag defaults to the
// most recent tag; a blank Name defaults to the tag.
type SupportStartOptions struct {
	Tag         string
	Name        string
	UseSnapshot bool
}

// Client runs branch workflow actions against one repository. All actions
// run non-interactively; a blank required input fails instead of prompting.
type Client struct {
	engine *flow.Engine
}

// New opens the repository, resolves its configuration, and returns a
// Client.
func New(opts Options) (*Client, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}

	repo, err := git.Open(path, "origin")
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	var cfg *config.Config
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFromFile(opts.ConfigPath)
	} else {
		cfg, err = config.Discover(repo.WorkingDirectory())
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if effective.Remote != "origin" {
		repo, err = git.Open(path, effective.Remote)
		if err != nil {
			return nil, fmt.Errorf("opening repository: %w", err)
		}
	}

	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	runner := maven.NewCLI(repo.WorkingDirectory())
	return &Client{engine: flow.New(effective, repo, runner, nil, out)}, nil
}

// FeatureStart creates a feature branch off the development branch.
func (c *Client) FeatureStart(opts FeatureStartOptions) error {
	return c.engine.FeatureStart(flow.FeatureStartOptions{
		Name:               opts.Name,
		SkipFeatureVersion: opts.SkipFeatureVersion,
	})
}

// FeatureFinish merges a feature branch into the development branch.
func (c *Client) FeatureFinish(opts FeatureFinishOptions) error {
	return c.engine.FeatureFinish(flow.FeatureFinishOptions{
		Branch:           opts.Branch,
		Name:             opts.Name,
		IncrementVersion: opts.IncrementVersion,
		Squash:           opts.Squash,
		KeepBranch:       opts.KeepBranch,
		PreGoals:         opts.PreGoals,
		PostGoals:        opts.PostGoals,
	})
}

// ReleaseStart creates a release branch off the development branch.
func (c *Client) ReleaseStart(opts ReleaseStartOptions) error {
	return c.engine.ReleaseStart(flow.ReleaseStartOptions{
		Version: opts.Version,
	})
}

// ReleaseFinish merges a release branch into production and development.
func (c *Client) ReleaseFinish(opts ReleaseFinishOptions) error {
	return c.engine.ReleaseFinish(flow.ReleaseFinishOptions{
		Branch:     opts.Branch,
		Name:       opts.Name,
		SkipTag:    opts.SkipTag,
		KeepBranch: opts.KeepBranch,
		PreGoals:   opts.PreGoals,
		PostGoals:  opts.PostGoals,
	})
}

// HotfixStart creates a hotfix branch off the production branch.
func (c *Client) HotfixStart(opts HotfixStartOptions) error {
	return c.engine.HotfixStart(flow.HotfixStartOptions{
		SupportBranch: opts.SupportBranch,
		Version:       opts.Version,
		UseSnapshot:   opts.UseSnapshot,
	})
}

// HotfixFinish merges a hotfix branch into production and development.
func (c *Client) HotfixFinish(opts HotfixFinishOptions) error {
	return c.engine.HotfixFinish(flow.HotfixFinishOptions{
		Branch:     opts.Branch,
		Name:       opts.Name,
		SkipTag:    opts.SkipTag,
		KeepBranch: opts.KeepBranch,
		PreGoals:   opts.PreGoals,
		PostGoals:  opts.PostGoals,
	})
}

// SupportStart creates a long-lived support branch from a release tag.
func (c *Client) SupportStart(opts SupportStartOptions) error {
	return c.engine.SupportStart(flow.SupportStartOptions{
		Tag:         opts.Tag,
		Name:        opts.Name,
		UseSnapshot: opts.UseSnapshot,
	})
}
