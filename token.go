package argseq

import (
	"strings"
)

// The lexical shape of a single argument.
type TokenKind int

const (
	// No leading dash. Only legal as the first argument, where it names the
	// command.
	TokenBare TokenKind = iota
	// -name or --name.
	TokenFlag
	// -name=value or --name=value.
	TokenKeyValue
	// --enable-X or --disable-X.
	TokenSwitch
	// --help, -h, --?, --?topic, --?=topic, --help=topic.
	TokenHelp
	// --version, -v.
	TokenVersion
)

func (k TokenKind) String() string {
	switch k {
	case TokenBare:
		return "bare"
	case TokenFlag:
		return "flag"
	case TokenKeyValue:
		return "key/value"
	case TokenSwitch:
		return "switch"
	case TokenHelp:
		return "help"
	case TokenVersion:
		return "version"
	}
	return "unknown"
}

const (
	enablePrefix  = "enable-"
	disablePrefix = "disable-"
	defaultTopic  = "help"
)

type Token struct {
	Arg  string
	Kind TokenKind
	// Leading dashes, capped at 2.
	Dashes int
	// Option name with dashes removed. For switches this includes the
	// enable-/disable- prefix.
	Key string
	// Text after the first '=', or the help topic.
	Value    string
	HasValue bool
	// The truth of a switch.
	Enabled bool
}

func leadingDashes(s string) (n int) {
	for n < len(s) && s[n] == '-' {
		n++
	}
	if n > 2 {
		n = 2
	}
	return
}

// Classifies a single argument. It has no dependency on parser state.
func Classify(arg string) (tok Token, err error) {
	tok.Arg = arg
	tok.Dashes = leadingDashes(arg)
	if tok.Dashes == 0 {
		tok.Kind = TokenBare
		return
	}
	rem := arg[tok.Dashes:]
	if rem == "" {
		err = usageErrorf(ErrEmptyName, "missing option name: %q", arg)
		return
	}
	if rem[0] == '?' {
		return classifyQuestion(tok, rem[1:])
	}
	tok.Key = rem
	if i := strings.IndexByte(rem, '='); i != -1 {
		tok.Key = rem[:i]
		tok.Value = rem[i+1:]
		tok.HasValue = true
	}
	if tok.HasValue && tok.Value == "" {
		err = usageErrorf(ErrTrailingAssignment, "missing value after '=': %q", arg)
		return
	}
	if tok.Key == "" {
		err = usageErrorf(ErrEmptyName, "missing option name: %q", arg)
		return
	}
	switch {
	case tok.Key == "help" || tok.Key == "h":
		tok.Kind = TokenHelp
		if !tok.HasValue {
			tok.Value = defaultTopic
		}
	case tok.Key == "version" || tok.Key == "v":
		tok.Kind = TokenVersion
	case strings.HasPrefix(tok.Key, enablePrefix):
		tok.Kind = TokenSwitch
		tok.Enabled = true
	case strings.HasPrefix(tok.Key, disablePrefix):
		tok.Kind = TokenSwitch
		tok.Enabled = false
	case tok.HasValue:
		tok.Kind = TokenKeyValue
	default:
		tok.Kind = TokenFlag
	}
	return
}

// Handles what follows "?": nothing, "topic" or "=topic".
func classifyQuestion(tok Token, rest string) (Token, error) {
	tok.Kind = TokenHelp
	tok.Key = "?"
	if strings.HasPrefix(rest, "=") {
		tok.HasValue = true
		rest = rest[1:]
		if rest == "" {
			return tok, usageErrorf(ErrTrailingAssignment, "missing value after '=': %q", tok.Arg)
		}
	}
	if rest == "" {
		rest = defaultTopic
	}
	tok.Value = rest
	return tok, nil
}
