package check

import (
	"github.com/dustin/go-humanize"

	"github.com/anacrolix/argseq"
)

// A byte quantity accepting human readable forms such as 100GB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

func (me *Bytes) Set(s string) (err error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return
	}
	*me = Bytes(ui64)
	return
}

func (me *Bytes) UnmarshalText(text []byte) error {
	return me.Set(string(text))
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

// A plain number is a count of bytes.
func BytesOr(o argseq.Option, def Bytes) (Bytes, error) {
	ret, ok, err := As[Bytes](o)
	if err != nil || !ok {
		return def, err
	}
	return ret, nil
}
