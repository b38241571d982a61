package argseq

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
)

// Renders help for a topic. Topics are whatever the user put after --help=,
// --?, or "help" when none was given. A non-zero status means the topic
// wasn't recognized.
type Helper interface {
	Help(topic string, v Version) (text string, status int)
}

// The topic requested on the command line, or "help".
func (s *Sequencer) HelpTopic() string {
	if t, ok := s.args.Get("help").Text(); ok {
		return t
	}
	return defaultTopic
}

// Resolves the requested topic with h. It's for the caller to decide whether
// help was requested, typically with Has("help").
func (s *Sequencer) Help(h Helper) (text string, status int) {
	return h.Help(s.HelpTopic(), s.version)
}

type Topic struct {
	Name    string
	Summary string
	Text    string
}

// A Helper backed by a table of topics. The "help" topic defaults to a
// listing of all topics.
type HelpTable struct {
	// Printed first, usually the program name.
	Noun   string
	Header string
	// Printed for unrecognized topics. Defaults to a message naming the
	// topic.
	Unknown string

	topics []*Topic
	byName map[string]*Topic
}

func NewHelpTable(noun, header string) *HelpTable {
	return &HelpTable{
		Noun:   noun,
		Header: header,
		byName: make(map[string]*Topic),
	}
}

func (h *HelpTable) Add(t Topic, aliases ...string) *HelpTable {
	if h.byName == nil {
		h.byName = make(map[string]*Topic)
	}
	p := &t
	h.topics = append(h.topics, p)
	h.byName[t.Name] = p
	for _, a := range aliases {
		h.byName[a] = p
	}
	return h
}

func TrimDashes(s string) string {
	return strings.TrimLeft(s, "-")
}

// Finds the topic for an option name, ignoring leading dashes. Camel and
// snake case spellings of a kebab-cased name also match.
func (h *HelpTable) Lookup(option string) (*Topic, bool) {
	name := TrimDashes(option)
	if t, ok := h.byName[name]; ok {
		return t, true
	}
	t, ok := h.byName[strings.Replace(xstrings.ToSnakeCase(name), "_", "-", -1)]
	return t, ok
}

func versionBanner(v Version) string {
	return fmt.Sprintf("  v%s\n\n", v)
}

func (h *HelpTable) Help(topic string, v Version) (string, int) {
	var buf bytes.Buffer
	if h.Noun != "" {
		buf.WriteString(missinggo.Unchomp(h.Noun))
	}
	if h.Header != "" {
		buf.WriteString(missinggo.Unchomp(h.Header))
	}
	buf.WriteString(versionBanner(v))
	t, ok := h.Lookup(topic)
	switch {
	case ok && t.Text != "":
		buf.WriteString(missinggo.Unchomp(t.Text))
	case ok || TrimDashes(topic) == defaultTopic:
		h.WriteUsage(&buf)
	default:
		unknown := h.Unknown
		if unknown == "" {
			unknown = fmt.Sprintf("unknown help topic: %q", topic)
		}
		buf.WriteString(missinggo.Unchomp(unknown))
		return buf.String(), 1
	}
	return buf.String(), 0
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// Lists the topics with their summaries.
func (h *HelpTable) WriteUsage(w io.Writer) {
	if len(h.topics) == 0 {
		return
	}
	fmt.Fprintf(w, "Topics:\n")
	tw := newUsageTabwriter(w)
	for _, t := range h.topics {
		fmt.Fprintf(tw, "  --%s\t%s\n", t.Name, t.Summary)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nRun with --help=TOPIC for details.\n")
}
