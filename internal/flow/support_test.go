package flow

import (
	"testing"

	"github.com/alexist/gitflow/internal/git"
	"github.com/alexist/gitflow/internal/maven"
	"github.com/alexist/gitflow/internal/prompt"
	"github.com/stretchr/testify/require"
)

func TestSupportStart_InteractiveTagChoice(t *testing.T) {
	repo := &git.MockRepository{
		ListTagsFunc: func() ([]string, error) { return []string{"1.1.0", "1.0.0"}, nil },
	}
	mvn := &maven.MockRunner{}
	p := &prompt.Static{Answers: []string{"1.1.0"}}
	e := newTestEngine(testConfig(t), repo, mvn, p)

	err := e.SupportStart(SupportStartOptions{Interactive: true})
	require.NoError(t, err)

	// The branch is created from the chosen tag and nothing else happens:
	// no snapshot bump, no install, no push.
	require.Equal(t, []string{
		"status",
		"list-tags",
		"branch-exists support/1.1.0",
		"checkout -b support/1.1.0 1.1.0",
	}, repo.Calls)
	require.Empty(t, mvn.Calls)
}

func TestSupportStart_NonExistentTagFailsBeforeBranchCreation(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc: func(string) (bool, error) { return false, nil },
	}
	e := newTestEngine(testConfig(t), repo, &maven.MockRunner{}, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "9.9.9"})
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	require.Equal(t, []string{"status", "tag-exists 9.9.9"}, repo.Calls)
}

func TestSupportStart_DefaultsToLastTag(t *testing.T) {
	repo := &git.MockRepository{
		LastTagFunc: func() (string, error) { return "2.3.0", nil },
	}
	e := newTestEngine(testConfig(t), repo, &maven.MockRunner{}, nil)

	err := e.SupportStart(SupportStartOptions{})
	require.NoError(t, err)
	require.Contains(t, repo.Calls, "checkout -b support/2.3.0 2.3.0")
}

func TestSupportStart_BranchNameOverride(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc: func(string) (bool, error) { return true, nil },
	}
	e := newTestEngine(testConfig(t), repo, &maven.MockRunner{}, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "1.1.0", Name: "1.1.x"})
	require.NoError(t, err)
	require.Contains(t, repo.Calls, "checkout -b support/1.1.x 1.1.0")
}

func TestSupportStart_ExistingBranchFails(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc:    func(string) (bool, error) { return true, nil },
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	e := newTestEngine(testConfig(t), repo, &maven.MockRunner{}, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "1.1.0"})
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	require.Contains(t, err.Error(), "already exists")
}

func TestSupportStart_UseSnapshotBumpsNonSnapshot(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.1.0", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "1.1.0", UseSnapshot: true})
	require.NoError(t, err)
	require.Contains(t, mvn.Calls, "set-versions 1.1.0-SNAPSHOT")
	require.Contains(t, repo.Calls, "commit Update versions for support branch")
}

func TestSupportStart_UseSnapshotLeavesSnapshotAlone(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.1.0-SNAPSHOT", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "1.1.0", UseSnapshot: true})
	require.NoError(t, err)
	require.Equal(t, []string{"current-version"}, mvn.Calls)
}

func TestSupportStart_PushWhenEnabled(t *testing.T) {
	repo := &git.MockRepository{
		TagExistsFunc: func(string) (bool, error) { return true, nil },
	}
	cfg := testConfig(t)
	cfg.PushRemote = true
	e := newTestEngine(cfg, repo, &maven.MockRunner{}, nil)

	err := e.SupportStart(SupportStartOptions{Tag: "1.1.0"})
	require.NoError(t, err)
	require.Contains(t, repo.Calls, "push support/1.1.0")
}
