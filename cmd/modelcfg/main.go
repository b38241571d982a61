// Command modelcfg parses and validates model configuration options and
// prints the result.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anacrolix/missinggo/v2"

	"github.com/anacrolix/argseq"
	"github.com/anacrolix/argseq/check"
)

var version = argseq.Version{Major: 1, Minor: 0, Patch: 0}

// Options holding free text or decimals that must not become numbers.
var skipDigits = []string{"temperature", "top-p", "api-key", "system-prompt"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "modelcfg: ", 0)
	if len(args) == 0 {
		fmt.Fprintf(stdout, "modelcfg - model configuration CLI\n")
		fmt.Fprintf(stdout, "Version: %s\n\n", version)
		fmt.Fprintf(stdout, "Usage: modelcfg [command] [options]\n\n")
		fmt.Fprintf(stdout, "Run with --help for available options.\n")
		return 0
	}
	t, err := argseq.NewTool(args, newModelCheck, newHelp(),
		argseq.Program("modelcfg"),
		argseq.WithVersion(version),
		argseq.SkipDigits(skipDigits...),
	)
	if err != nil {
		return usageFailure(stderr, err)
	}
	if t.Has("help") {
		text, status := t.Help()
		io.WriteString(stdout, missinggo.Unchomp(text))
		return status
	}
	if v, ok := t.Args().Get("version").Text(); ok {
		fmt.Fprintf(stdout, "modelcfg %s\n", v)
		return 0
	}
	cfg, err := loadConfig(t)
	if err != nil {
		return usageFailure(stderr, err)
	}
	if !cfg.Safety {
		logger.Print("WARNING: safety checks are disabled")
	}
	if cfg.DryRun {
		fmt.Fprintf(stdout, "[DRY RUN MODE - no API calls will be made]\n\n")
	}
	if cfg.Verbose || cfg.DryRun {
		cfg.write(stdout)
	} else {
		cfg.writeBrief(stdout)
	}
	if cfg.Verbose {
		writeRaw(stdout, t.Sequencer)
	}
	return 0
}

func usageFailure(w io.Writer, err error) int {
	fmt.Fprintf(w, "modelcfg error: %s\n", err)
	if argseq.IsUsageError(err) {
		fmt.Fprintf(w, "Run with --help for usage information.\n")
	}
	return 1
}

func writeRaw(w io.Writer, s *argseq.Sequencer) {
	fmt.Fprintf(w, "\n--- Raw Arguments ---\n")
	s.Args().Range(func(k string, v argseq.Value) bool {
		fmt.Fprintf(w, "  %s = %s\n", k, check.Describe(argseq.Option{Name: k, Value: v}))
		return true
	})
	if c := s.Command(); c != "" {
		fmt.Fprintf(w, "\n  Subcommand: %s\n", c)
	}
}
