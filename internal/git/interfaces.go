// Package git provides the version-control abstraction for the branch
// workflows: a Repository interface covering the read queries and porcelain
// mutations the workflow pipelines issue, a production adapter, and a
// configurable mock for testing.
package git

// Repository is the version-control half of the workflow's external command
// surface. Read queries never modify the repository; every mutating call is
// issued and awaited before the next step runs. Mutations that fail surface
// the tool's raw diagnostic output via CommandError.
type Repository interface {
	// WorkingDirectory returns the path to the working directory.
	WorkingDirectory() string

	// HasUncommittedChanges reports whether the working tree is dirty,
	// counting both staged and unstaged modifications.
	HasUncommittedChanges() (bool, error)

	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch() (string, error)

	// BranchExists reports whether a local branch with the name exists.
	BranchExists(name string) (bool, error)

	// TagExists reports whether a tag with the name exists.
	TagExists(name string) (bool, error)

	// ListBranches returns the local branches whose names start with
	// prefix, sorted by name.
	ListBranches(prefix string) ([]string, error)

	// ListTags returns all tag names, most recently created first.
	ListTags() ([]string, error)

	// LastTag returns the most recently created tag name, or an empty
	// string when the repository has no tags.
	LastTag() (string, error)

	// Checkout switches the working tree to the given ref.
	Checkout(ref string) error

	// CreateAndCheckout creates branch at from and switches to it.
	CreateAndCheckout(branch, from string) error

	// MergeNoFF merges branch into the current branch, always creating a
	// merge commit with the given message.
	MergeNoFF(branch, message string) error

	// MergeSquash stages the combined changes of branch onto the current
	// branch without committing.
	MergeSquash(branch string) error

	// Commit records all tracked changes with the given message.
	Commit(message string) error

	// CreateTag creates an annotated tag at HEAD.
	CreateTag(name, message string) error

	// DeleteLocalBranch removes a local branch. force is required when the
	// branch is not fully merged, e.g. after a squash merge.
	DeleteLocalBranch(name string, force bool) error

	// DeleteRemoteBranch removes a branch on the configured remote.
	DeleteRemoteBranch(name string) error

	// Push pushes a branch or tag ref to the configured remote.
	Push(ref string) error

	// Fetch updates remote-tracking refs from the configured remote.
	Fetch() error

	// CompareWithRemote checks a local ref against its remote-tracking
	// counterpart. It returns nil when the refs match, when the local ref
	// is strictly ahead, or when no remote counterpart exists; it returns
	// ErrDiverged otherwise.
	CompareWithRemote(ref string) error
}
