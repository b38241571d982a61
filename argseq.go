package argseq

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anacrolix/missinggo/v2"
)

// Parses os.Args. Usage errors are printed with the program name and exit
// with status 2, as does a missing argument list. If help was requested and h
// is not nil, the help text is printed and the program exits with the
// helper's status. --version prints the version and exits 0.
func Parse(h Helper, opts ...parseOpt) *Sequencer {
	s, status, done := parseArgv(os.Args, h, os.Stdout, os.Stderr, opts...)
	if done {
		os.Exit(status)
	}
	return s
}

// Does the work of Parse without exiting. done reports whether the program
// should exit with status.
func parseArgv(argv []string, h Helper, stdout, stderr io.Writer, opts ...parseOpt) (s *Sequencer, status int, done bool) {
	s, err := NewArgv(argv, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", programName(argv), err)
		if IsUsageError(err) {
			return nil, 2, true
		}
		return nil, 1, true
	}
	if s.Has("help") && h != nil {
		text, code := s.Help(h)
		io.WriteString(stdout, missinggo.Unchomp(text))
		return s, code, true
	}
	if v, ok := s.Args().Get("version").Text(); ok {
		fmt.Fprintf(stdout, "%s %s\n", s.Program(), v)
		return s, 0, true
	}
	return s, 0, false
}

func programName(argv []string) string {
	if len(argv) == 0 {
		return "argseq"
	}
	return filepath.Base(argv[0])
}
