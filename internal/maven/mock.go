package maven

// Compile-time check that MockRunner implements Runner.
var _ Runner = (*MockRunner)(nil)

// MockRunner is a configurable mock implementation of Runner for testing.
// Each method is backed by a function field; a nil field returns a zero
// value. Calls records every invocation in order.
type MockRunner struct {
	Calls []string

	CurrentVersionFunc func() (string, error)
	SetVersionsFunc    func(string) error
	RunGoalsFunc       func(string) error
	CleanTestFunc      func() error
	CleanInstallFunc   func() error
}

func (m *MockRunner) CurrentVersion() (string, error) {
	m.Calls = append(m.Calls, "current-version")
	if m.CurrentVersionFunc != nil {
		return m.CurrentVersionFunc()
	}
	return "", nil
}

func (m *MockRunner) SetVersions(version string) error {
	m.Calls = append(m.Calls, "set-versions "+version)
	if m.SetVersionsFunc != nil {
		return m.SetVersionsFunc(version)
	}
	return nil
}

func (m *MockRunner) RunGoals(goals string) error {
	m.Calls = append(m.Calls, "run-goals "+goals)
	if m.RunGoalsFunc != nil {
		return m.RunGoalsFunc(goals)
	}
	return nil
}

func (m *MockRunner) CleanTest() error {
	m.Calls = append(m.Calls, "clean test")
	if m.CleanTestFunc != nil {
		return m.CleanTestFunc()
	}
	return nil
}

func (m *MockRunner) CleanInstall() error {
	m.Calls = append(m.Calls, "clean install")
	if m.CleanInstallFunc != nil {
		return m.CleanInstallFunc()
	}
	return nil
}
