package check

import (
	"fmt"
	"os"
	"strconv"

	"github.com/anacrolix/missinggo/v2"
	"github.com/pkg/errors"

	"github.com/anacrolix/argseq"
)

func invalid(name string, err error) error {
	err = errors.Wrapf(err, "option %q", name)
	return argseq.UsageError{Kind: argseq.ErrInvalidValue, Msg: err.Error(), Err: err}
}

// Returns the first of the named environment variables that is set and not
// empty.
func Env(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := os.LookupEnv(n); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// The option's value as text. Numbers are formatted in base 10.
func text(o argseq.Option) (string, bool) {
	switch o.Kind() {
	case argseq.KindString:
		s, _ := o.Text()
		return s, true
	case argseq.KindUint:
		u, _ := o.Uint()
		return strconv.FormatUint(u, 10), true
	}
	return "", false
}

// The option if given, then the environment, then def.
func StringOr(o argseq.Option, def string, env ...string) string {
	if s, ok := text(o); ok {
		return s
	}
	if s, ok := Env(env...); ok {
		return s
	}
	return def
}

func UintOr(o argseq.Option, def uint64, env ...string) (uint64, error) {
	if u, ok := o.Uint(); ok {
		return u, nil
	}
	if s, ok := Env(env...); ok {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return def, invalid(o.Name, err)
		}
		return u, nil
	}
	return def, nil
}

// Environment values are interpreted with missinggo.StringTruth.
func BoolOr(o argseq.Option, def bool, env ...string) bool {
	if b, ok := o.Bool(); ok {
		return b
	}
	if s, ok := Env(env...); ok {
		return missinggo.StringTruth(s)
	}
	return def
}

func Required(o argseq.Option) error {
	if o.IsAbsent() {
		return argseq.InvalidValuef("option %q is required", o.Name)
	}
	return nil
}

// Returns def if absent, or the value if it lies in [min, max].
func UintRange(o argseq.Option, def, min, max uint64) (uint64, error) {
	u, ok := o.Uint()
	if !ok {
		return def, nil
	}
	if u < min || u > max {
		return def, argseq.InvalidValuef("option %q: %d not in range [%d, %d]", o.Name, u, min, max)
	}
	return u, nil
}

// Parses a decimal option, usually one named with argseq.SkipDigits, and
// requires it to lie in [min, max].
func FloatRange(o argseq.Option, def, min, max float64, env ...string) (float64, error) {
	s := StringOr(o, "", env...)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, invalid(o.Name, err)
	}
	if f < min || f > max {
		return def, argseq.InvalidValuef("option %q: %s not in range [%g, %g]", o.Name, s, min, max)
	}
	return f, nil
}

func OneOf(o argseq.Option, def string, allowed ...string) (string, error) {
	s, ok := o.Text()
	if !ok {
		return def, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return def, argseq.InvalidValuef("option %q: %q is not one of %q", o.Name, s, allowed)
}

// Returns the path given by the option or def. If mustExist, the path has
// to exist.
func Path(o argseq.Option, def string, mustExist bool) (string, error) {
	p := StringOr(o, def)
	if p == "" || !mustExist {
		return p, nil
	}
	if _, err := os.Stat(p); err != nil {
		return p, invalid(o.Name, err)
	}
	return p, nil
}

// Describes a value for diagnostics, including its kind.
func Describe(o argseq.Option) string {
	if o.IsAbsent() {
		return "(null)"
	}
	return fmt.Sprintf("%s (%s)", o.Value, o.Kind())
}
