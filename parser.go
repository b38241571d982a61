package argseq

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
	"golang.org/x/xerrors"
)

// A non-negative major.minor.patch triple.
type Version struct {
	Major, Minor, Patch uint
}

var DefaultVersion = Version{0, 0, 1}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Holds the options parsed from an argument list. All parsing happens in New,
// after which a Sequencer is read-only and safe for concurrent use.
type Sequencer struct {
	program    string
	version    Version
	skipDigits map[string]struct{}

	raw     []string
	command string
	args    *Table
}

// Parses args, which excludes the program name.
func New(args []string, opts ...parseOpt) (*Sequencer, error) {
	s := &Sequencer{
		program: "program",
		version: DefaultVersion,
		args:    newTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.raw = append([]string(nil), args...)
	if err := s.parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

// Like New, but argv starts with the program name, as os.Args does.
func NewArgv(argv []string, opts ...parseOpt) (*Sequencer, error) {
	if len(argv) == 0 {
		return New(nil, opts...)
	}
	return New(argv[1:], append([]parseOpt{Program(filepath.Base(argv[0]))}, opts...)...)
}

func (s *Sequencer) parse(args []string) error {
	if len(args) == 0 {
		return UsageError{Kind: ErrEmptyInput, Msg: "no arguments"}
	}
	for i := range iter.N(len(args)) {
		tok, err := Classify(args[i])
		if err != nil {
			return err
		}
		stop, err := s.apply(i, tok)
		if err != nil || stop {
			return err
		}
	}
	return nil
}

// Stores the token. Returns stop when no further arguments should be
// looked at.
func (s *Sequencer) apply(pos int, tok Token) (stop bool, err error) {
	switch tok.Kind {
	case TokenBare:
		if pos != 0 {
			err = usageErrorf(ErrUnexpectedBareWord, "unexpected argument: %q", tok.Arg)
			return
		}
		s.command = tok.Arg
	case TokenHelp:
		s.args.set("help", StringValue(tok.Value))
		stop = true
	case TokenVersion:
		s.args.set("version", StringValue(s.version.String()))
		stop = true
	case TokenSwitch:
		s.args.set(tok.Key, BoolValue(tok.Enabled))
	case TokenFlag:
		s.args.set(tok.Key, BoolValue(true))
	case TokenKeyValue:
		var v Value
		v, err = s.typedValue(tok)
		if err != nil {
			return
		}
		s.args.set(tok.Key, v)
	default:
		panic(tok.Kind)
	}
	return
}

func (s *Sequencer) skipDigit(key string) bool {
	_, ok := s.skipDigits[key]
	return ok
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range iter.N(len(s)) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (s *Sequencer) typedValue(tok Token) (Value, error) {
	if !allDigits(tok.Value) || s.skipDigit(tok.Key) {
		return StringValue(tok.Value), nil
	}
	u, err := strconv.ParseUint(tok.Value, 10, 64)
	if err != nil {
		return Absent, UsageError{
			Kind: ErrNumericOverflow,
			Msg:  fmt.Sprintf("value out of range: %q", tok.Arg),
			Err:  xerrors.Errorf("parsing %q: %w", tok.Value, err),
		}
	}
	return UintValue(u), nil
}

// The leading bare word, or "" if there wasn't one.
func (s *Sequencer) Command() string {
	return s.command
}

func (s *Sequencer) Program() string {
	return s.program
}

func (s *Sequencer) Version() Version {
	return s.version
}

// The arguments as given to New joined by '|'.
func (s *Sequencer) Raw() string {
	return JoinArgs(s.raw, '|')
}

func JoinArgs(args []string, sep rune) string {
	return strings.Join(args, string(sep))
}
