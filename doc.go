// Package argseq turns an argument list into a table of typed options.
//
// Every argument after an optional leading command word is one of:
//
//	--name, -name               bool true
//	--name=value, -name=value   uint64 if value is all digits, else string
//	--enable-X, --disable-X     bool true/false stored under "enable-X"/"disable-X"
//	--help, -h, --?topic, --help=topic
//	--version, -v
//
// Help and version stop parsing; later arguments are ignored.
//
// For example:
//
//	s, err := argseq.New(os.Args[1:], argseq.SkipDigits("temperature"))
//	if err != nil {
//		// err is an argseq.UsageError
//	}
//	if s.Has("help") {
//		text, status := s.Help(helpTable)
//	}
//	opt, err := s.OptionUint("max-tokens")
//
// Options are typed once, when stored, and accessors never coerce between
// kinds. Interpreting values (ranges, defaults, environment fallback) is left
// to the embedding tool; see the check subpackage and Tool.
package argseq
