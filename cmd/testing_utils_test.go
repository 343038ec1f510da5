package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// setupTestEnvironment isolates a test from the runner environment and
// returns a project root holding package.json with an empty app directory.
func setupTestEnvironment(t *testing.T) (root, app string) {
	t.Helper()

	for _, name := range []string{
		"GITHUB_ACTIONS",
		"INPUT_APP_SECRETS",
		"INPUT_PREFIX_FILTER",
		"INPUT_ENV_FILE_NAME",
		"INPUT_DESTINATION_PATH",
		"INPUT_WORKING_DIRECTORY_PATH",
	} {
		t.Setenv(name, "")
	}

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write package.json: %v", err)
	}
	app = filepath.Join(root, "app")
	if err := os.Mkdir(app, 0755); err != nil {
		t.Fatalf("Failed to create app directory: %v", err)
	}
	return root, app
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// createTestCLI creates a complete CLI instance running the given arguments.
func createTestCLI(args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "envdrop",
		SilenceErrors: true,
	}
	rootCmd.AddCommand(CreateCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes args and returns the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
