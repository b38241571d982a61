package argseq

// Binds a Sequencer to a tool's validation strategy C and help strategy H.
// Neither strategy is consulted until one of its methods is called.
type Tool[C any, H Helper] struct {
	*Sequencer
	check  func(Option) C
	helper H
}

// Parses args and binds the result to newCheck and helper.
func NewTool[C any, H Helper](args []string, newCheck func(Option) C, helper H, opts ...parseOpt) (*Tool[C, H], error) {
	s, err := New(args, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, newCheck, helper), nil
}

func Bind[C any, H Helper](s *Sequencer, newCheck func(Option) C, helper H) *Tool[C, H] {
	return &Tool[C, H]{
		Sequencer: s,
		check:     newCheck,
		helper:    helper,
	}
}

func (t *Tool[C, H]) wrap(o Option, err error) (c C, _ error) {
	if err != nil {
		return c, err
	}
	return t.check(o), nil
}

func (t *Tool[C, H]) CheckString(name string) (C, error) {
	return t.wrap(t.OptionString(name))
}

func (t *Tool[C, H]) CheckBool(name string) (C, error) {
	return t.wrap(t.OptionBool(name))
}

func (t *Tool[C, H]) CheckUint(name string) (C, error) {
	return t.wrap(t.OptionUint(name))
}

func (t *Tool[C, H]) CheckAddr(name string) (C, error) {
	return t.wrap(t.OptionAddr(name))
}

// Accepts any kind of value.
func (t *Tool[C, H]) CheckAny(name string) (C, error) {
	return t.wrap(t.Option(name), nil)
}

func (t *Tool[C, H]) Helper() H {
	return t.helper
}

// Renders help for the requested topic with the bound help strategy.
func (t *Tool[C, H]) Help() (string, int) {
	return t.Sequencer.Help(t.helper)
}
