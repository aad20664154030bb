package contract

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// resolveRepoRoot returns the enclosing repository root, skipping the test
// when the working directory is not inside a git repository.
func resolveRepoRoot(t *testing.T, client GitClient) string {
	t.Helper()
	root, err := client.GetRepoRoot(context.Background(), ".")
	if err != nil {
		t.Skipf("not inside a git repository: %v", err)
	}
	return root
}

// TestMockGitClient_Run ensures the mock correctly records and returns
// expected values when its Run method is called.
func TestMockGitClient_Run(t *testing.T) {
	mockClient := new(MockGitClient)

	const expectedRepoPath = "/path/to/repo"
	expectedArgs := []string{"log", "-1", "--oneline"}

	expectedOutput := []byte("a1b2c3d commit message")
	expectedError := errors.New("mocked git error")

	// The `Run` method implementation in MockGitClient converts the inputs
	// (ctx, repoPath string, args ...string) into a single []any array
	// for `m.Called()`. We must match this structure in `.On()`.
	var calledArgs []any
	ctx := context.Background()
	calledArgs = append(calledArgs, ctx, expectedRepoPath)
	for _, arg := range expectedArgs {
		calledArgs = append(calledArgs, arg)
	}

	mockClient.
		On("Run", calledArgs...).
		Return(expectedOutput, expectedError).
		Once()

	actualOutput, actualError := mockClient.Run(ctx, expectedRepoPath, expectedArgs...)

	assert.Equal(t, expectedOutput, actualOutput, "Run should return the programmed output")
	assert.Equal(t, expectedError, actualError, "Run should return the programmed error")

	mockClient.AssertExpectations(t)
}

// TestNewLocalGitClient tests the constructor for LocalGitClient.
func TestNewLocalGitClient(t *testing.T) {
	client := NewLocalGitClient()
	assert.NotNil(t, client, "NewLocalGitClient should return a non-nil client")
	assert.IsType(t, &LocalGitClient{}, client, "NewLocalGitClient should return a LocalGitClient instance")
}

// TestLocalGitClient_Run tests the Run method with various scenarios.
func TestLocalGitClient_Run(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()
	repoRoot := resolveRepoRoot(t, client)

	tests := []struct {
		name        string
		repoPath    string
		args        []string
		expectError bool
	}{
		{
			name:        "invalid repo path",
			repoPath:    "/nonexistent/path",
			args:        []string{"status"},
			expectError: true,
		},
		{
			name:        "invalid git command",
			repoPath:    repoRoot,
			args:        []string{"invalid-command"},
			expectError: true,
		},
		{
			name:        "valid rev-parse",
			repoPath:    repoRoot,
			args:        []string{"rev-parse", "--git-dir"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Run(ctx, tt.repoPath, tt.args...)
			if tt.expectError {
				assert.Error(t, err, "Run should return an error for %s", tt.name)
			} else {
				assert.NoError(t, err, "Run should not return an error for %s", tt.name)
			}
		})
	}
}

// TestLocalGitClient_GetRepoRoot tests the GetRepoRoot method.
func TestLocalGitClient_GetRepoRoot(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()
	root := resolveRepoRoot(t, client)
	assert.NotEmpty(t, root, "GetRepoRoot should return a non-empty root path")

	// Asking from the root itself should be a fixed point
	root2, err := client.GetRepoRoot(ctx, root)
	assert.NoError(t, err, "GetRepoRoot should not return an error for absolute path")
	assert.Equal(t, root, root2, "GetRepoRoot should return the same root for absolute path")

	_, err = client.GetRepoRoot(ctx, "/nonexistent/path")
	assert.Error(t, err, "GetRepoRoot should return an error for non-git directory")
}

// TestLocalGitClient_GetCommitLog tests the GetCommitLog method.
func TestLocalGitClient_GetCommitLog(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()
	repoRoot := resolveRepoRoot(t, client)

	startTime := time.Now().AddDate(0, 0, -30) // 30 days ago
	endTime := time.Now()

	// Test with time range
	_, err := client.GetCommitLog(ctx, repoRoot, startTime, endTime)
	assert.NoError(t, err, "GetCommitLog should not return an error")
	// Log might be empty if no commits in range, but should not error

	// Test with zero times (no time filter)
	out, err := client.GetCommitLog(ctx, repoRoot, time.Time{}, time.Time{})
	assert.NoError(t, err, "GetCommitLog should not return an error with zero times")
	assert.NotEmpty(t, out, "full history of an active repository should not be empty")
}

// TestLocalGitClient_GetRepoHash tests the GetRepoHash method.
func TestLocalGitClient_GetRepoHash(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()
	repoRoot := resolveRepoRoot(t, client)

	hash, err := client.GetRepoHash(ctx, repoRoot)
	assert.NoError(t, err, "GetRepoHash should not return an error for HEAD")
	assert.NotEmpty(t, hash, "GetRepoHash should return a short hash")

	_, err = client.GetRepoHash(ctx, "/nonexistent/path")
	assert.Error(t, err, "GetRepoHash should return an error outside a repository")
}
