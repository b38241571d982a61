package main

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/anacrolix/argseq"
	"github.com/anacrolix/argseq/check"
)

type tool = argseq.Tool[modelCheck, *argseq.HelpTable]

type config struct {
	Model         string
	Temperature   float64
	MaxTokens     uint64
	TopP          float64
	TopK          uint64
	ContextWindow uint64

	Stream       bool
	OutputFormat string
	OutputDir    string

	APIKey     string
	Endpoint   *url.URL
	Timeout    time.Duration
	RetryCount uint64

	Safety  bool
	Verbose bool
	DryRun  bool
	Cache   bool

	ConfigFile   string
	InputFile    string
	LogFile      string
	LogLevel     string
	SystemPrompt string
	MaxInputSize check.Bytes
}

// Keeps the first error from a sequence of option loads.
type loader struct {
	err error
}

func load[T any](l *loader, lookup func(string) (modelCheck, error), name string, f func(modelCheck) (T, error)) (ret T) {
	if l.err != nil {
		return
	}
	c, err := lookup(name)
	if err == nil {
		ret, err = f(c)
	}
	l.err = err
	return
}

func loadConfig(t *tool) (cfg config, err error) {
	var l loader
	cfg.Model = load(&l, t.CheckString, "model", modelCheck.model)
	cfg.Temperature = load(&l, t.CheckString, "temperature", modelCheck.temperature)
	cfg.MaxTokens = load(&l, t.CheckUint, "max-tokens", modelCheck.maxTokens)
	cfg.TopP = load(&l, t.CheckString, "top-p", modelCheck.topP)
	cfg.TopK = load(&l, t.CheckUint, "top-k", modelCheck.topK)
	cfg.ContextWindow = load(&l, t.CheckUint, "context-window", modelCheck.contextWindow)

	cfg.Stream = load(&l, t.CheckBool, "stream", modelCheck.stream)
	cfg.OutputFormat = load(&l, t.CheckString, "output-format", modelCheck.outputFormat)
	cfg.OutputDir = load(&l, t.CheckString, "output-dir", modelCheck.outputDir)

	cfg.APIKey = load(&l, t.CheckString, "api-key", modelCheck.apiKey)
	cfg.Endpoint = load(&l, t.CheckAddr, "endpoint", modelCheck.endpoint)
	cfg.Timeout = load(&l, t.CheckAny, "timeout", modelCheck.timeout)
	cfg.RetryCount = load(&l, t.CheckUint, "retry-count", modelCheck.retryCount)

	cfg.Verbose = load(&l, t.CheckBool, "verbose", modelCheck.flag)
	cfg.DryRun = load(&l, t.CheckBool, "dry-run", modelCheck.flag)

	cfg.ConfigFile = load(&l, t.CheckString, "config-file", modelCheck.existingFile)
	cfg.InputFile = load(&l, t.CheckString, "input-file", modelCheck.existingFile)
	cfg.LogFile = load(&l, t.CheckString, "log-file", modelCheck.file)
	cfg.LogLevel = load(&l, t.CheckString, "log-level", modelCheck.logLevel)
	cfg.SystemPrompt = load(&l, t.CheckString, "system-prompt", modelCheck.systemPrompt)
	cfg.MaxInputSize = load(&l, t.CheckAny, "max-input-size", modelCheck.maxInputSize)
	if l.err != nil {
		return cfg, l.err
	}
	if cfg.Safety, err = check.Switch(t.Args(), "safety", true); err != nil {
		return
	}
	cfg.Cache, err = check.Switch(t.Args(), "cache", true)
	return
}

func (cfg *config) writeBrief(w io.Writer) {
	fmt.Fprintf(w, "Configuration loaded successfully.\n")
	fmt.Fprintf(w, "  Model: %s\n", cfg.Model)
	fmt.Fprintf(w, "  Max Tokens: %s\n", humanize.Comma(int64(cfg.MaxTokens)))
	fmt.Fprintf(w, "  Stream: %s\n", yesNo(cfg.Stream))
	fmt.Fprintf(w, "\nRun with --verbose for full configuration details.\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func (cfg *config) write(w io.Writer) {
	section := func(name string) {
		fmt.Fprintf(w, "\n%s\n", name)
	}
	line := func(label string, v interface{}) {
		fmt.Fprintf(w, "  %-16s%v\n", label+":", v)
	}
	fmt.Fprintf(w, "========================================\n")
	fmt.Fprintf(w, "        Model Configuration\n")
	fmt.Fprintf(w, "========================================\n")

	section("MODEL")
	line("Model", cfg.Model)
	line("Temperature", cfg.Temperature)
	line("Max Tokens", humanize.Comma(int64(cfg.MaxTokens)))
	line("Top-P", cfg.TopP)
	line("Top-K", cfg.TopK)
	line("Context Window", humanize.Comma(int64(cfg.ContextWindow)))

	section("OUTPUT")
	line("Streaming", enabled(cfg.Stream))
	line("Output Format", cfg.OutputFormat)
	line("Output Dir", cfg.OutputDir)
	line("Max Input", cfg.MaxInputSize)

	section("API")
	line("Endpoint", cfg.Endpoint)
	line("Timeout", cfg.Timeout)
	line("Retry Count", cfg.RetryCount)
	if cfg.APIKey != "" {
		line("API Key", "(configured)")
	} else {
		line("API Key", "(not configured - set ANTHROPIC_API_KEY or use --api-key)")
	}

	section("BEHAVIOR")
	line("Verbose", yesNo(cfg.Verbose))
	line("Dry Run", yesNo(cfg.DryRun))
	line("Safety", enabled(cfg.Safety))
	line("Cache", enabled(cfg.Cache))

	section("LOGGING")
	line("Log Level", cfg.LogLevel)
	if cfg.LogFile != "" {
		line("Log File", cfg.LogFile)
	}
	if cfg.ConfigFile != "" || cfg.InputFile != "" {
		section("FILES")
		if cfg.ConfigFile != "" {
			line("Config File", cfg.ConfigFile)
		}
		if cfg.InputFile != "" {
			line("Input File", cfg.InputFile)
		}
	}
	if cfg.SystemPrompt != "" {
		section("SYSTEM PROMPT")
		p := cfg.SystemPrompt
		if r := []rune(p); len(r) > 50 {
			p = string(r[:50]) + "..."
		}
		fmt.Fprintf(w, "  %q\n", p)
	}
	fmt.Fprintf(w, "========================================\n")
}
