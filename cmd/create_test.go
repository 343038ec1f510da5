package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PolarWolf314/envdrop/internal/audit"
	"github.com/PolarWolf314/envdrop/internal/configs"
	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
)

func TestCreate_FlagsOnly(t *testing.T) {
	root, app := setupTestEnvironment(t)

	output, err := runCLI(t, "create",
		"--secrets", `{"API_KEY":"s3cr3t-value","PORT":"8080"}`,
		"--working-directory", app,
	)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	want := "API_KEY = \"s3cr3t-value\"\r\nPORT = \"8080\"\r\n"
	if got := readFile(t, filepath.Join(root, ".env")); got != want {
		t.Errorf("Unexpected env file content: %q", got)
	}
	if !strings.Contains(output, "API_KEY, PORT copied") {
		t.Errorf("Expected copied keys in output, got: %s", output)
	}
	if !strings.Contains(output, ".env moved to "+root) {
		t.Errorf("Expected move message in output, got: %s", output)
	}
	if strings.Contains(output, "s3cr3t-value") {
		t.Errorf("Secret value leaked into output: %s", output)
	}
}

func TestCreate_ReadsInputs(t *testing.T) {
	root, app := setupTestEnvironment(t)
	t.Setenv("INPUT_APP_SECRETS", `{"APP_X":"1","OTHER":"2"}`)
	t.Setenv("INPUT_PREFIX_FILTER", "^APP_")
	t.Setenv("INPUT_ENV_FILE_NAME", "production")
	t.Setenv("INPUT_WORKING_DIRECTORY_PATH", app)

	output, err := runCLI(t, "create")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if got := readFile(t, filepath.Join(root, "production.env")); got != "APP_X = \"1\"\r\n" {
		t.Errorf("Unexpected env file content: %q", got)
	}
}

func TestCreate_FlagBeatsInput(t *testing.T) {
	root, app := setupTestEnvironment(t)
	t.Setenv("INPUT_APP_SECRETS", `{"APP_X":"1","WEB_Y":"2"}`)
	t.Setenv("INPUT_PREFIX_FILTER", "^APP_")

	output, err := runCLI(t, "create", "--filter", "^WEB_", "--working-directory", app)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if got := readFile(t, filepath.Join(root, ".env")); got != "WEB_Y = \"2\"\r\n" {
		t.Errorf("Unexpected env file content: %q", got)
	}
	if !strings.Contains(output, "Flags take precedence over inputs: PREFIX_FILTER") {
		t.Errorf("Expected shadowed input warning, got: %s", output)
	}
}

func TestShadowedInputs(t *testing.T) {
	flags := configs.Values{
		Secrets: configs.Optional(`{"A":"1"}`),
		Filter:  configs.Optional("^A"),
	}
	inputs := configs.Values{
		Secrets:     configs.Optional(`{"B":"2"}`),
		Destination: configs.Optional("deploy"),
	}

	got := shadowedInputs(flags, inputs)
	if diff := cmp.Diff([]string{"APP_SECRETS"}, got); diff != "" {
		t.Errorf("shadowedInputs() diff (-want +got)\n%s", diff)
	}
	if got := shadowedInputs(configs.Values{}, inputs); len(got) != 0 {
		t.Errorf("Expected nothing shadowed without flags, got %v", got)
	}
}

func TestCreate_ConfigFileApplies(t *testing.T) {
	root, app := setupTestEnvironment(t)
	config := "filter = \"^APP_\"\nname = \"local\"\ndestination = \"../deploy\"\n"
	if err := os.WriteFile(filepath.Join(app, ".envdrop.toml"), []byte(config), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write config: %v", err)
	}

	output, err := runCLI(t, "create",
		"--secrets", `{"APP_X":"1","OTHER":"2"}`,
		"--working-directory", app,
	)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if got := readFile(t, filepath.Join(root, "deploy", "local.env")); got != "APP_X = \"1\"\r\n" {
		t.Errorf("Unexpected env file content: %q", got)
	}
}

func TestCreate_InvalidPayloadFailsRun(t *testing.T) {
	root, app := setupTestEnvironment(t)

	output, err := runCLI(t, "create", "--secrets", "{oops", "--working-directory", app)
	if !errors.Is(err, ErrRunFailed) {
		t.Fatalf("Expected ErrRunFailed, got: %v\nOutput: %s", err, output)
	}

	if got := readFile(t, filepath.Join(root, ".env")); got != "" {
		t.Errorf("Expected empty env file, got %q", got)
	}
	if !strings.Contains(output, "No app secrets found to extract") {
		t.Errorf("Expected no-secrets message, got: %s", output)
	}
}

func TestCreate_NoOverwrite(t *testing.T) {
	root, app := setupTestEnvironment(t)
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("OLD"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write existing env file: %v", err)
	}

	output, err := runCLI(t, "create",
		"--secrets", `{"FOO":"1"}`,
		"--working-directory", app,
		"--no-overwrite",
	)
	if !errors.Is(err, kerrors.ErrMove) {
		t.Fatalf("Expected ErrMove, got: %v\nOutput: %s", err, output)
	}
	if got := readFile(t, filepath.Join(root, ".env")); got != "OLD" {
		t.Errorf("Existing file was modified: %q", got)
	}
}

func TestCreate_MarkerAndRecord(t *testing.T) {
	root, app := setupTestEnvironment(t)
	pkg := filepath.Join(app, "pkg")
	if err := os.Mkdir(pkg, 0755); err != nil {
		t.Fatalf("Failed to create pkg dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(app, "go.mod"), []byte("module x\n"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write go.mod: %v", err)
	}
	recordPath := filepath.Join(root, "runs.jsonl")

	output, err := runCLI(t, "create",
		"--secrets", `{"FOO":"1"}`,
		"--working-directory", pkg,
		"--marker", "go.{mod,work}",
		"--record", recordPath,
	)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat(filepath.Join(app, ".env")); err != nil {
		t.Errorf("Expected .env next to go.mod: %v", err)
	}
	entries, err := audit.ReadEntries(recordPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Destination != app {
		t.Errorf("Unexpected run record: %+v", entries)
	}
}
