package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for
// testing. Each method is backed by a function field; a nil field returns
// a sensible zero value. Calls records every invocation in order as
// "op arg1 arg2", letting tests assert on exact command sequences.
type MockRepository struct {
	Calls []string

	WorkingDirectoryFunc      func() string
	HasUncommittedChangesFunc func() (bool, error)
	CurrentBranchFunc         func() (string, error)
	BranchExistsFunc          func(string) (bool, error)
	TagExistsFunc             func(string) (bool, error)
	ListBranchesFunc          func(string) ([]string, error)
	ListTagsFunc              func() ([]string, error)
	LastTagFunc               func() (string, error)
	CheckoutFunc              func(string) error
	CreateAndCheckoutFunc     func(string, string) error
	MergeNoFFFunc             func(string, string) error
	MergeSquashFunc           func(string) error
	CommitFunc                func(string) error
	CreateTagFunc             func(string, string) error
	DeleteLocalBranchFunc     func(string, bool) error
	DeleteRemoteBranchFunc    func(string) error
	PushFunc                  func(string) error
	FetchFunc                 func() error
	CompareWithRemoteFunc     func(string) error
}

func (m *MockRepository) record(parts ...string) {
	call := parts[0]
	for _, p := range parts[1:] {
		call += " " + p
	}
	m.Calls = append(m.Calls, call)
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) HasUncommittedChanges() (bool, error) {
	m.record("status")
	if m.HasUncommittedChangesFunc != nil {
		return m.HasUncommittedChangesFunc()
	}
	return false, nil
}

func (m *MockRepository) CurrentBranch() (string, error) {
	m.record("current-branch")
	if m.CurrentBranchFunc != nil {
		return m.CurrentBranchFunc()
	}
	return "", nil
}

func (m *MockRepository) BranchExists(name string) (bool, error) {
	m.record("branch-exists", name)
	if m.BranchExistsFunc != nil {
		return m.BranchExistsFunc(name)
	}
	return false, nil
}

func (m *MockRepository) TagExists(name string) (bool, error) {
	m.record("tag-exists", name)
	if m.TagExistsFunc != nil {
		return m.TagExistsFunc(name)
	}
	return false, nil
}

func (m *MockRepository) ListBranches(prefix string) ([]string, error) {
	m.record("list-branches", prefix)
	if m.ListBranchesFunc != nil {
		return m.ListBranchesFunc(prefix)
	}
	return nil, nil
}

func (m *MockRepository) ListTags() ([]string, error) {
	m.record("list-tags")
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc()
	}
	return nil, nil
}

func (m *MockRepository) LastTag() (string, error) {
	m.record("last-tag")
	if m.LastTagFunc != nil {
		return m.LastTagFunc()
	}
	return "", nil
}

func (m *MockRepository) Checkout(ref string) error {
	m.record("checkout", ref)
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ref)
	}
	return nil
}

func (m *MockRepository) CreateAndCheckout(branch, from string) error {
	m.record("checkout -b", branch, from)
	if m.CreateAndCheckoutFunc != nil {
		return m.CreateAndCheckoutFunc(branch, from)
	}
	return nil
}

func (m *MockRepository) MergeNoFF(branch, message string) error {
	m.record("merge --no-ff", branch)
	if m.MergeNoFFFunc != nil {
		return m.MergeNoFFFunc(branch, message)
	}
	return nil
}

func (m *MockRepository) MergeSquash(branch string) error {
	m.record("merge --squash", branch)
	if m.MergeSquashFunc != nil {
		return m.MergeSquashFunc(branch)
	}
	return nil
}

func (m *MockRepository) Commit(message string) error {
	m.record("commit", message)
	if m.CommitFunc != nil {
		return m.CommitFunc(message)
	}
	return nil
}

func (m *MockRepository) CreateTag(name, message string) error {
	m.record("tag", name)
	if m.CreateTagFunc != nil {
		return m.CreateTagFunc(name, message)
	}
	return nil
}

func (m *MockRepository) DeleteLocalBranch(name string, force bool) error {
	if force {
		m.record("branch -D", name)
	} else {
		m.record("branch -d", name)
	}
	if m.DeleteLocalBranchFunc != nil {
		return m.DeleteLocalBranchFunc(name, force)
	}
	return nil
}

func (m *MockRepository) DeleteRemoteBranch(name string) error {
	m.record("push --delete", name)
	if m.DeleteRemoteBranchFunc != nil {
		return m.DeleteRemoteBranchFunc(name)
	}
	return nil
}

func (m *MockRepository) Push(ref string) error {
	m.record("push", ref)
	if m.PushFunc != nil {
		return m.PushFunc(ref)
	}
	return nil
}

func (m *MockRepository) Fetch() error {
	m.record("fetch")
	if m.FetchFunc != nil {
		return m.FetchFunc()
	}
	return nil
}

func (m *MockRepository) CompareWithRemote(ref string) error {
	m.record("compare-with-remote", ref)
	if m.CompareWithRemoteFunc != nil {
		return m.CompareWithRemoteFunc(ref)
	}
	return nil
}
