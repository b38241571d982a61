package argseq

type parseOpt func(s *Sequencer)

// Options whose all-digit values are kept as strings.
func SkipDigits(names ...string) parseOpt {
	return func(s *Sequencer) {
		if s.skipDigits == nil {
			s.skipDigits = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			s.skipDigits[n] = struct{}{}
		}
	}
}

// Sets the version stored for --version and passed to help strategies.
func WithVersion(v Version) parseOpt {
	return func(s *Sequencer) {
		s.version = v
	}
}

// Sets the program name, normally derived from the first element of argv.
func Program(program string) parseOpt {
	return func(s *Sequencer) {
		s.program = program
	}
}
