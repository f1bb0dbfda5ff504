package flow

import (
	"testing"

	"github.com/alexist/gitflow/internal/git"
	"github.com/alexist/gitflow/internal/maven"
	"github.com/alexist/gitflow/internal/prompt"
	"github.com/stretchr/testify/require"
)

func TestFeatureFinish_DirtyTreeFailsFast(t *testing.T) {
	repo := &git.MockRepository{
		HasUncommittedChangesFunc: func() (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login"})
	require.ErrorIs(t, err, ErrUncommittedChanges)
	require.Equal(t, []string{"status"}, repo.Calls)
	require.Empty(t, mvn.Calls)
}

func TestFeatureFinish_StripsFeatureQualifierAndMerges(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(name string) (bool, error) { return name == "feature/login", nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "2.1.0-login", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login"})
	require.NoError(t, err)

	require.Equal(t, []string{
		"status",
		"branch-exists feature/login",
		"checkout feature/login",
		"commit Update versions for development branch",
		"checkout develop",
		"merge --no-ff feature/login",
		"branch -d feature/login",
	}, repo.Calls)
	require.Equal(t, []string{
		"current-version",
		"set-versions 2.1.0",
	}, mvn.Calls)
}

func TestFeatureFinish_NoFeatureQualifierSkipsVersionCommit(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "2.1.0-SNAPSHOT", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login"})
	require.NoError(t, err)

	require.Equal(t, []string{
		"status",
		"branch-exists feature/login",
		"checkout feature/login",
		"checkout develop",
		"merge --no-ff feature/login",
		"branch -d feature/login",
	}, repo.Calls)
	require.Equal(t, []string{"current-version"}, mvn.Calls)
}

func TestFeatureFinish_IncrementVersionAtFinish(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "2.1.0-login-SNAPSHOT", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login", IncrementVersion: true})
	require.NoError(t, err)

	// Increment strips the feature name first so a numeric name is never
	// bumped, then re-applies it before the strip commit.
	require.Equal(t, []string{
		"current-version",
		"set-versions 2.1.1-login-SNAPSHOT",
		"set-versions 2.1.1-SNAPSHOT",
	}, mvn.Calls)
	require.Contains(t, repo.Calls, "commit Increment version for feature branch")
	require.Contains(t, repo.Calls, "commit Update versions for development branch")
}

func TestFeatureFinish_SquashForceDeletesBranch(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.0.0-SNAPSHOT", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login", Squash: true})
	require.NoError(t, err)

	require.Contains(t, repo.Calls, "merge --squash feature/login")
	require.Contains(t, repo.Calls, "commit feature/login")
	require.Contains(t, repo.Calls, "branch -D feature/login")
	require.NotContains(t, repo.Calls, "merge --no-ff feature/login")
}

func TestFeatureFinish_KeepBranchRestoresFeatureVersion(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "2.1.0-login", nil },
	}
	cfg := testConfig(t)
	cfg.PushRemote = true
	e := newTestEngine(cfg, repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login", KeepBranch: true})
	require.NoError(t, err)

	require.Contains(t, mvn.Calls, "set-versions 2.1.0-login")
	require.Contains(t, repo.Calls, "commit Update feature branch back to feature version")
	require.Contains(t, repo.Calls, "push develop")
	require.Contains(t, repo.Calls, "push feature/login")
	require.NotContains(t, repo.Calls, "push --delete feature/login")
	require.NotContains(t, repo.Calls, "branch -d feature/login")
	require.NotContains(t, repo.Calls, "branch -D feature/login")
}

func TestFeatureFinish_PushDeletesRemoteBranch(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.0.0-SNAPSHOT", nil },
	}
	cfg := testConfig(t)
	cfg.PushRemote = true
	cfg.FetchRemote = true
	e := newTestEngine(cfg, repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login"})
	require.NoError(t, err)

	require.Contains(t, repo.Calls, "fetch")
	require.Contains(t, repo.Calls, "compare-with-remote feature/login")
	require.Contains(t, repo.Calls, "compare-with-remote develop")
	require.Contains(t, repo.Calls, "push develop")
	require.Contains(t, repo.Calls, "push --delete feature/login")
}

func TestFeatureFinish_DivergedRemoteAborts(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc:      func(string) (bool, error) { return true, nil },
		CompareWithRemoteFunc: func(string) error { return git.ErrDiverged },
	}
	mvn := &maven.MockRunner{}
	cfg := testConfig(t)
	cfg.FetchRemote = true
	e := newTestEngine(cfg, repo, mvn, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login"})
	require.ErrorIs(t, err, git.ErrDiverged)
	require.NotContains(t, repo.Calls, "checkout feature/login")
	require.Empty(t, mvn.Calls)
}

func TestFeatureFinish_RejectsShellMetacharactersInGoals(t *testing.T) {
	e := newTestEngine(testConfig(t), &git.MockRepository{}, &maven.MockRunner{}, nil)

	err := e.FeatureFinish(FeatureFinishOptions{Branch: "feature/login", PreGoals: "clean verify; rm -rf /"})
	require.Error(t, err)
}

func TestFeatureStart_CreatesQualifiedBranch(t *testing.T) {
	repo := &git.MockRepository{}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "0.9.0-SNAPSHOT", nil },
	}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureStart(FeatureStartOptions{Name: "login"})
	require.NoError(t, err)

	require.Equal(t, []string{
		"status",
		"branch-exists feature/login",
		"checkout -b feature/login develop",
		"commit Update versions for feature branch",
	}, repo.Calls)
	require.Equal(t, []string{
		"current-version",
		"set-versions 0.9.0-login-SNAPSHOT",
	}, mvn.Calls)
}

func TestFeatureStart_ExistingBranchFails(t *testing.T) {
	repo := &git.MockRepository{
		BranchExistsFunc: func(string) (bool, error) { return true, nil },
	}
	e := newTestEngine(testConfig(t), repo, &maven.MockRunner{}, nil)

	err := e.FeatureStart(FeatureStartOptions{Name: "login"})
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	require.NotContains(t, repo.Calls, "checkout -b feature/login develop")
}

func TestFeatureStart_InvalidNameFails(t *testing.T) {
	e := newTestEngine(testConfig(t), &git.MockRepository{}, &maven.MockRunner{}, nil)

	err := e.FeatureStart(FeatureStartOptions{Name: "bad name"})
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
}

func TestFeatureStart_InteractiveName(t *testing.T) {
	repo := &git.MockRepository{}
	mvn := &maven.MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.0.0-SNAPSHOT", nil },
	}
	p := &prompt.Static{Answers: []string{"", "login"}}
	e := newTestEngine(testConfig(t), repo, mvn, p)

	err := e.FeatureStart(FeatureStartOptions{Interactive: true})
	require.NoError(t, err)
	require.Contains(t, repo.Calls, "checkout -b feature/login develop")
}

func TestFeatureStart_SkipFeatureVersion(t *testing.T) {
	repo := &git.MockRepository{}
	mvn := &maven.MockRunner{}
	e := newTestEngine(testConfig(t), repo, mvn, nil)

	err := e.FeatureStart(FeatureStartOptions{Name: "login", SkipFeatureVersion: true})
	require.NoError(t, err)
	require.Empty(t, mvn.Calls)
}
