package main

import (
	"github.com/anacrolix/argseq"
)

const helpHeader = `
  Configure model parameters from the command line.
`

func newHelp() *argseq.HelpTable {
	h := argseq.NewHelpTable("modelcfg", helpHeader)
	h.Unknown = "Unknown help topic. Run with --help to list topics."
	for _, t := range []argseq.Topic{
		{Name: "help", Summary: "show this help, or --help=TOPIC for one option"},
		{Name: "version", Summary: "print the version", Text: "--version, -v\n  Print the version and exit."},

		{Name: "model", Summary: "model identifier", Text: "--model=NAME\n  Model to use. Falls back to $MODELCFG_MODEL, then \"" + defaultModel + "\"."},
		{Name: "temperature", Summary: "sampling temperature in [0, 1]", Text: "--temperature=FLOAT\n  Sampling temperature between 0 and 1. Default 1."},
		{Name: "max-tokens", Summary: "maximum tokens to generate", Text: "--max-tokens=N\n  Between 1 and 200000. Default 4096."},
		{Name: "top-p", Summary: "nucleus sampling threshold", Text: "--top-p=FLOAT\n  Between 0 and 1. Default 1."},
		{Name: "top-k", Summary: "top-k sampling", Text: "--top-k=N\n  Between 0 and 500, 0 disables. Default 0."},
		{Name: "context-window", Summary: "context window size", Text: "--context-window=N\n  Between 1024 and 1000000 tokens. Default 200000."},

		{Name: "stream", Summary: "stream responses", Text: "--stream\n  Stream responses as they are generated. Also $MODELCFG_STREAM."},
		{Name: "output-format", Summary: "text, json or markdown", Text: "--output-format=FORMAT\n  One of text, json, markdown. Default text."},
		{Name: "output-dir", Summary: "directory for output files", Text: "--output-dir=PATH\n  Default is the current directory."},
		{Name: "max-input-size", Summary: "largest accepted input", Text: "--max-input-size=SIZE\n  A byte count or a size like 10MB. Default 10 MiB."},

		{Name: "api-key", Summary: "API key", Text: "--api-key=KEY\n  Optional. Falls back to $MODELCFG_API_KEY or $ANTHROPIC_API_KEY."},
		{Name: "endpoint", Summary: "API endpoint URL", Text: "--endpoint=URL\n  An http or https URL. Default " + defaultEndpoint + "."},
		{Name: "timeout", Summary: "request timeout", Text: "--timeout=DURATION\n  Seconds, or a duration like 90s. Default 1m."},
		{Name: "retry-count", Summary: "retries on failure", Text: "--retry-count=N\n  Between 0 and 10. Default 3."},

		{Name: "enable-safety", Summary: "keep safety checks on (default)", Text: "--enable-safety, --disable-safety\n  Safety checks are on by default. Giving both is an error."},
		{Name: "disable-safety", Summary: "turn safety checks off", Text: "--enable-safety, --disable-safety\n  Safety checks are on by default. Giving both is an error."},
		{Name: "verbose", Summary: "print full configuration", Text: "--verbose\n  Print the full configuration and the raw parsed options."},
		{Name: "dry-run", Summary: "make no API calls", Text: "--dry-run\n  Print the configuration without making API calls."},
		{Name: "enable-cache", Summary: "enable response cache (default)", Text: "--enable-cache, --disable-cache\n  The cache is on by default. Giving both is an error."},
		{Name: "disable-cache", Summary: "disable response cache", Text: "--enable-cache, --disable-cache\n  The cache is on by default. Giving both is an error."},

		{Name: "config-file", Summary: "configuration file", Text: "--config-file=PATH\n  Must exist."},
		{Name: "input-file", Summary: "input file", Text: "--input-file=PATH\n  Must exist."},
		{Name: "log-file", Summary: "log file", Text: "--log-file=PATH\n  Created if missing."},
		{Name: "log-level", Summary: "debug, info, warn or error", Text: "--log-level=LEVEL\n  One of debug, info, warn, error. Default info."},
		{Name: "system-prompt", Summary: "system prompt", Text: "--system-prompt=TEXT\n  Also $MODELCFG_SYSTEM_PROMPT."},
	} {
		h.Add(t)
	}
	return h
}
