package argseq

// The result of a typed lookup: the option's name and either a value of the
// requested kind or Absent.
type Option struct {
	Name string
	Value
}

func (s *Sequencer) Has(name string) bool {
	return s.args.Has(name)
}

// All parsed options.
func (s *Sequencer) Args() *Table {
	return s.args
}

// The requested options that are present. Missing names are skipped.
func (s *Sequencer) SomeArgs(names ...string) *Table {
	return s.args.subset(names)
}

func typeMismatch(name string, want, got Kind) UsageError {
	return usageErrorf(ErrTypeMismatch, "option %q: expected %s value, got %s", name, want, got)
}

func (s *Sequencer) option(name string, want Kind) (Option, error) {
	v, ok := s.args.Lookup(name)
	if !ok {
		return Option{Name: name}, nil
	}
	if v.Kind() != want {
		return Option{Name: name}, typeMismatch(name, want, v.Kind())
	}
	return Option{Name: name, Value: v}, nil
}

// Looks up an option whatever its kind, for values that may be written
// either as a number or as text.
func (s *Sequencer) Option(name string) Option {
	return Option{Name: name, Value: s.args.Get(name)}
}

func (s *Sequencer) OptionString(name string) (Option, error) {
	return s.option(name, KindString)
}

func (s *Sequencer) OptionBool(name string) (Option, error) {
	return s.option(name, KindBool)
}

func (s *Sequencer) OptionUint(name string) (Option, error) {
	return s.option(name, KindUint)
}

// Same as OptionString. Address forms are for the caller to validate.
func (s *Sequencer) OptionAddr(name string) (Option, error) {
	return s.option(name, KindString)
}

// The Go types a Value can hold.
type Storable interface {
	string | uint64 | bool
}

func kindOf[T Storable]() Kind {
	var t T
	switch interface{}(t).(type) {
	case string:
		return KindString
	case uint64:
		return KindUint
	case bool:
		return KindBool
	}
	panic("unreachable")
}

// Returns the value of the named option as a T. ok is false if the option is
// missing, and an error is returned if it holds some other kind.
func GetArg[T Storable](s *Sequencer, name string) (ret T, ok bool, err error) {
	v, present := s.args.Lookup(name)
	if !present {
		return
	}
	want := kindOf[T]()
	if v.Kind() != want {
		err = typeMismatch(name, want, v.Kind())
		return
	}
	return v.Interface().(T), true, nil
}
