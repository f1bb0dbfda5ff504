package gitflow_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexist/gitflow/internal/testutil"
	"github.com/alexist/gitflow/pkg/gitflow"
	"github.com/stretchr/testify/require"
)

func TestNew_BasicRepo(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNew_NotARepository(t *testing.T) {
	_, err := gitflow.New(gitflow.Options{Path: t.TempDir()})
	require.Error(t, err)
}

func TestNew_InvalidConfigFile(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	cfgPath := filepath.Join(t.TempDir(), "gitflow.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version-policy: bogus\n"), 0o644))

	_, err := gitflow.New(gitflow.Options{Path: repo.Path(), ConfigPath: cfgPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "version-policy")
}

func TestFeatureFinish_MissingBranch(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.FeatureFinish(gitflow.FeatureFinishOptions{Name: "login"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `branch "feature/login" does not exist`)
}

func TestFeatureFinish_BlankName(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.FeatureFinish(gitflow.FeatureFinishOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "blank")
}

func TestFeatureFinish_DirtyTree(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")
	repo.WriteFile("pom.xml", "<project/>")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.FeatureFinish(gitflow.FeatureFinishOptions{Name: "login"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "uncommitted")
}

func TestSupportStart_NoTags(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.SupportStart(gitflow.SupportStartOptions{})
	require.Error(t, err)
}

func TestSupportStart_MissingTag(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.SupportStart(gitflow.SupportStartOptions{Tag: "9.9.9"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `tag "9.9.9" does not exist`)
}

func TestHotfixStart_MissingSupportBranch(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("initial commit")

	client, err := gitflow.New(gitflow.Options{Path: repo.Path()})
	require.NoError(t, err)

	err = client.HotfixStart(gitflow.HotfixStartOptions{SupportBranch: "1.1.0"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `branch "support/1.1.0" does not exist`)
}
