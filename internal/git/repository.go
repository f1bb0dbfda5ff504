package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Repo is the production Repository backed by a local clone. Read queries go
// through go-git; mutations shell out to the git CLI, which owns the
// porcelain behavior (--no-ff and --squash merges, working tree updates)
// that go-git does not implement.
type Repo struct {
	repo    *gogit.Repository
	workDir string
	remote  string
}

// Open opens the git repository at path. Mutating operations will target the
// given remote.
func Open(path, remote string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repo{
		repo:    r,
		workDir: wt.Filesystem.Root(),
		remote:  remote,
	}, nil
}

func (r *Repo) WorkingDirectory() string {
	return r.workDir
}

func (r *Repo) HasUncommittedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}

	for _, s := range status {
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) CurrentBranch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if !ref.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", ref.Hash().String()[:7])
	}
	return ref.Name().Short(), nil
}

func (r *Repo) BranchExists(name string) (bool, error) {
	return r.refExists(plumbing.NewBranchReferenceName(name))
}

func (r *Repo) TagExists(name string) (bool, error) {
	return r.refExists(plumbing.NewTagReferenceName(name))
}

func (r *Repo) refExists(name plumbing.ReferenceName) (bool, error) {
	_, err := r.repo.Reference(name, false)
	switch {
	case err == nil:
		return true, nil
	case err == plumbing.ErrReferenceNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("resolving %s: %w", name.Short(), err)
	}
}

func (r *Repo) ListBranches(prefix string) ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

func (r *Repo) ListTags() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	type datedTag struct {
		name string
		when time.Time
	}
	var tags []datedTag

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		when, peelErr := r.tagTime(ref)
		if peelErr != nil {
			return peelErr
		}
		tags = append(tags, datedTag{name: ref.Name().Short(), when: when})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	// Most recent first; name is the tie-breaker for same-second tags.
	sort.Slice(tags, func(i, j int) bool {
		if !tags[i].when.Equal(tags[j].when) {
			return tags[i].when.After(tags[j].when)
		}
		return tags[i].name > tags[j].name
	})

	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.name
	}
	return names, nil
}

func (r *Repo) LastTag() (string, error) {
	tags, err := r.ListTags()
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", nil
	}
	return tags[0], nil
}

// tagTime returns the committer date of the commit a tag points at, peeling
// annotated tags.
func (r *Repo) tagTime(ref *plumbing.Reference) (time.Time, error) {
	hash := ref.Hash()

	if tagObj, err := r.repo.TagObject(hash); err == nil {
		commit, err := tagObj.Commit()
		if err != nil {
			return time.Time{}, fmt.Errorf("peeling annotated tag %s: %w", ref.Name().Short(), err)
		}
		return commit.Committer.When, nil
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return time.Time{}, fmt.Errorf("tag %s does not point to a commit: %w", ref.Name().Short(), err)
	}
	return commit.Committer.When, nil
}

func (r *Repo) CompareWithRemote(ref string) error {
	local, err := r.repo.Reference(plumbing.NewBranchReferenceName(ref), true)
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return nil
		}
		return fmt.Errorf("resolving %s: %w", ref, err)
	}

	remote, err := r.repo.Reference(plumbing.NewRemoteReferenceName(r.remote, ref), true)
	if err != nil {
		// No remote counterpart: nothing to compare against.
		if err == plumbing.ErrReferenceNotFound {
			return nil
		}
		return fmt.Errorf("resolving %s/%s: %w", r.remote, ref, err)
	}

	if local.Hash() == remote.Hash() {
		return nil
	}

	localCommit, err := r.repo.CommitObject(local.Hash())
	if err != nil {
		return fmt.Errorf("loading commit %s: %w", local.Hash(), err)
	}
	remoteCommit, err := r.repo.CommitObject(remote.Hash())
	if err != nil {
		return fmt.Errorf("loading commit %s: %w", remote.Hash(), err)
	}

	ahead, err := remoteCommit.IsAncestor(localCommit)
	if err != nil {
		return fmt.Errorf("comparing %s with %s/%s: %w", ref, r.remote, ref, err)
	}
	if ahead {
		// Local is strictly ahead; pushing later is safe.
		return nil
	}
	return fmt.Errorf("branch %s: %w", ref, ErrDiverged)
}

func (r *Repo) Checkout(ref string) error {
	_, err := r.runGit("checkout", ref)
	return err
}

func (r *Repo) CreateAndCheckout(branch, from string) error {
	_, err := r.runGit("checkout", "-b", branch, from)
	return err
}

func (r *Repo) MergeNoFF(branch, message string) error {
	_, err := r.runGit("merge", "--no-ff", "-m", message, branch)
	return err
}

func (r *Repo) MergeSquash(branch string) error {
	_, err := r.runGit("merge", "--squash", branch)
	return err
}

func (r *Repo) Commit(message string) error {
	_, err := r.runGit("commit", "-a", "-m", message)
	return err
}

func (r *Repo) CreateTag(name, message string) error {
	_, err := r.runGit("tag", "-a", "-m", message, name)
	return err
}

func (r *Repo) DeleteLocalBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.runGit("branch", flag, name)
	return err
}

func (r *Repo) DeleteRemoteBranch(name string) error {
	_, err := r.runGit("push", r.remote, "--delete", name)
	return err
}

func (r *Repo) Push(ref string) error {
	_, err := r.runGit("push", r.remote, ref)
	return err
}

func (r *Repo) Fetch() error {
	_, err := r.runGit("fetch", "--quiet", r.remote)
	return err
}

// runGit executes a git command in the working directory and returns stdout.
// On failure the combined diagnostic output is preserved in a CommandError.
func (r *Repo) runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		return "", &CommandError{Op: args[0], Args: args, Output: output, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}
