package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockGit is a testify mock of the git collaborator.
type MockGit struct {
	mock.Mock
}

func (m *MockGit) Stage(repoRoot string, paths ...string) error {
	args := m.Called(repoRoot, paths)
	return args.Error(0)
}

func (m *MockGit) UnstageAndDelete(repoRoot string, paths ...string) error {
	args := m.Called(repoRoot, paths)
	return args.Error(0)
}

func (m *MockGit) RepositoryRoot(start string) (string, error) {
	args := m.Called(start)
	return args.String(0), args.Error(1)
}

func (m *MockGit) IsCleanIndex(repoRoot string) (bool, error) {
	args := m.Called(repoRoot)
	return args.Bool(0), args.Error(1)
}

// NoopGit is a git collaborator that accepts every call. Tests that only
// exercise the pattern engine use it instead of expectation bookkeeping.
type NoopGit struct{}

func (NoopGit) Stage(repoRoot string, paths ...string) error            { return nil }
func (NoopGit) UnstageAndDelete(repoRoot string, paths ...string) error { return nil }
func (NoopGit) RepositoryRoot(start string) (string, error)             { return start, nil }
func (NoopGit) IsCleanIndex(repoRoot string) (bool, error)              { return true, nil }
