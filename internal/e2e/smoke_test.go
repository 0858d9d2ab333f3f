package e2e

import (
	"bytes"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/minitwitter-cli/internal/fakeapi"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	apiURL := startFakeAPI(t)

	_, stderr, err := runMT(t, binaryPath, home,
		"--api-url", apiURL,
		"register",
		"--username", "ana",
		"--email", "ana@example.com",
		"--password", "secret1",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runMT(t, binaryPath, home, "--api-url", apiURL, "post", "hello from e2e")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "signed in as @ana")
	assert.Contains(t, stdout, "hello from e2e")

	stdout, stderr, err = runMT(t, binaryPath, home, "--api-url", apiURL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "session: anonymous")
}

func TestSmokeSeededFeed(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	srv := fakeapi.New(fakeapi.Config{})
	brunoID, _, err := srv.SeedUser("bruno", "bruno@example.com", "secret1")
	require.NoError(t, err)
	_, err = srv.SeedPost(brunoID, "seeded post", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)
	apiURL := httpServer.URL + "/api"

	_, stderr, err := runMT(t, binaryPath, home, "--api-url", apiURL,
		"login", "--email", "bruno@example.com", "--password", "secret1")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runMT(t, binaryPath, home, "--api-url", apiURL, "feed")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "@bruno")
	assert.Contains(t, stdout, "seeded post")
}

func startFakeAPI(t *testing.T) string {
	t.Helper()

	httpServer := httptest.NewServer(fakeapi.New(fakeapi.Config{}).Handler())
	t.Cleanup(httpServer.Close)

	return httpServer.URL + "/api"
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "mt-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mt")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build mt binary: %s", string(output))
	return binaryPath
}

func runMT(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
