package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anacrolix/argseq"
)

func runArgs(args ...string) (status int, stdout, stderr string) {
	var o, e bytes.Buffer
	status = run(args, &o, &e)
	return status, o.String(), e.String()
}

func withAPIKey(t *testing.T) {
	t.Setenv("MODELCFG_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("MODELCFG_MODEL", "")
	t.Setenv("MODELCFG_STREAM", "")
	t.Setenv("MODELCFG_TEMPERATURE", "")
	t.Setenv("MODELCFG_SYSTEM_PROMPT", "")
}

func TestNoArgsPrintsIntro(t *testing.T) {
	status, out, _ := runArgs()
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "Version: 1.0.0")
	assert.Contains(t, out, "--help")
}

func TestHelp(t *testing.T) {
	status, out, _ := runArgs("--help", "--bogus=")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "modelcfg\n")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "--max-tokens")

	status, out, _ = runArgs("--help=temperature")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "--temperature=FLOAT")

	status, out, _ = runArgs("--?maxTokens")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "--max-tokens=N")

	status, out, _ = runArgs("--help=nonsense")
	assert.EqualValues(t, 1, status)
	assert.Contains(t, out, "Unknown help topic")
}

func TestVersion(t *testing.T) {
	status, out, _ := runArgs("-v")
	assert.EqualValues(t, 0, status)
	assert.EqualValues(t, "modelcfg 1.0.0\n", out)
}

func TestUsageErrors(t *testing.T) {
	withAPIKey(t)
	for _, args := range [][]string{
		{"--name="},
		{"run", "stray"},
		{"--max-tokens=0"},
		{"--max-tokens=lots"},
		{"--temperature=2"},
		{"--output-format=xml"},
		{"--endpoint=ftp://example.com"},
		{"--enable-cache", "--disable-cache"},
		{"--config-file=/does/not/exist"},
		{"--verbose=yes"},
	} {
		status, out, errOut := runArgs(args...)
		assert.EqualValues(t, 1, status, "%q", args)
		assert.Empty(t, out, "%q", args)
		assert.Contains(t, errOut, "modelcfg error: ", "%q", args)
		assert.Contains(t, errOut, "Run with --help", "%q", args)
	}
}

func TestMissingAPIKey(t *testing.T) {
	withAPIKey(t)
	t.Setenv("MODELCFG_API_KEY", "")
	status, out, errOut := runArgs("--dry-run")
	assert.EqualValues(t, 0, status)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "API Key:        (not configured - set ANTHROPIC_API_KEY or use --api-key)\n")
	assert.NotContains(t, out, "(configured)")

	withAPIKey(t)
	status, out, _ = runArgs("--dry-run")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "API Key:        (configured)\n")
}

func TestSystemPromptTruncation(t *testing.T) {
	withAPIKey(t)
	prompt := strings.Repeat("a", 49) + "éé"
	status, out, _ := runArgs("--verbose", "--system-prompt="+prompt)
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, `"`+strings.Repeat("a", 49)+`é..."`)
	assert.True(t, utf8.ValidString(out))

	status, out, _ = runArgs("--verbose", "--system-prompt=short")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "  \"short\"\n")
}

func TestBrief(t *testing.T) {
	withAPIKey(t)
	status, out, errOut := runArgs("--model=large", "--max-tokens=8192", "--stream")
	assert.EqualValues(t, 0, status)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Model: large\n")
	assert.Contains(t, out, "Max Tokens: 8,192\n")
	assert.Contains(t, out, "Stream: yes\n")
}

func TestVerbose(t *testing.T) {
	withAPIKey(t)
	status, out, errOut := runArgs("chat", "--verbose", "--temperature=0", "--timeout=90", "--disable-safety", "--max-input-size=2MB")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, errOut, "safety checks are disabled")
	assert.Contains(t, out, "Temperature:    0\n")
	assert.Contains(t, out, "Timeout:        1m30s\n")
	assert.Contains(t, out, "Safety:         disabled\n")
	assert.Contains(t, out, "Max Input:      2.0 MB\n")
	assert.Contains(t, out, `temperature = "0" (string)`)
	assert.Contains(t, out, "timeout = 90 (uint)")
	assert.Contains(t, out, "disable-safety = false (bool)")
	assert.Contains(t, out, "Subcommand: chat")
}

func TestDryRun(t *testing.T) {
	withAPIKey(t)
	status, out, _ := runArgs("--dry-run")
	assert.EqualValues(t, 0, status)
	assert.Contains(t, out, "[DRY RUN MODE")
	assert.Contains(t, out, "Model Configuration")
	assert.NotContains(t, out, "Raw Arguments")
}

func newTestTool(t *testing.T, args ...string) *tool {
	tl, err := argseq.NewTool(args, newModelCheck, newHelp(), argseq.SkipDigits(skipDigits...))
	require.NoError(t, err)
	return tl
}

func TestLoadConfigDefaults(t *testing.T) {
	withAPIKey(t)
	cfg, err := loadConfig(newTestTool(t, "--verbose"))
	require.NoError(t, err)
	assert.EqualValues(t, defaultModel, cfg.Model)
	assert.EqualValues(t, 1, cfg.Temperature)
	assert.EqualValues(t, 4096, cfg.MaxTokens)
	assert.EqualValues(t, 200000, cfg.ContextWindow)
	assert.EqualValues(t, "text", cfg.OutputFormat)
	assert.EqualValues(t, ".", cfg.OutputDir)
	assert.EqualValues(t, "test-key", cfg.APIKey)
	assert.EqualValues(t, defaultEndpoint, cfg.Endpoint.String())
	assert.EqualValues(t, time.Minute, cfg.Timeout)
	assert.EqualValues(t, 3, cfg.RetryCount)
	assert.EqualValues(t, "info", cfg.LogLevel)
	assert.EqualValues(t, 10<<20, cfg.MaxInputSize)
	assert.True(t, cfg.Safety)
	assert.True(t, cfg.Cache)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfigValues(t *testing.T) {
	withAPIKey(t)
	t.Setenv("MODELCFG_STREAM", "true")
	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("hi"), 0o600))
	cfg, err := loadConfig(newTestTool(t,
		"--api-key=12345",
		"--top-p=0.9",
		"--top-k=40",
		"--endpoint=http://localhost:8080",
		"--timeout=2m",
		"--disable-cache",
		"--input-file="+input,
		"--log-level=debug",
		"--system-prompt=42",
	))
	require.NoError(t, err)
	assert.EqualValues(t, "12345", cfg.APIKey)
	assert.EqualValues(t, 0.9, cfg.TopP)
	assert.EqualValues(t, 40, cfg.TopK)
	assert.EqualValues(t, "localhost:8080", cfg.Endpoint.Host)
	assert.EqualValues(t, 2*time.Minute, cfg.Timeout)
	assert.False(t, cfg.Cache)
	assert.True(t, cfg.Stream)
	assert.EqualValues(t, input, cfg.InputFile)
	assert.EqualValues(t, "debug", cfg.LogLevel)
	assert.EqualValues(t, "42", cfg.SystemPrompt)
}
