package argseq

import (
	"github.com/bradfitz/iter"
)

// An insertion-ordered mapping of option names to values. Tables handed out
// by a Sequencer are never modified after parsing.
type Table struct {
	keys   []string
	values map[string]Value
}

func newTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// Overwrites keep the position of the first insertion.
func (t *Table) set(key string, v Value) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

func (t *Table) Lookup(key string) (v Value, ok bool) {
	if t == nil {
		return
	}
	v, ok = t.values[key]
	return
}

// Returns Absent for missing keys.
func (t *Table) Get(key string) Value {
	v, _ := t.Lookup(key)
	return v
}

func (t *Table) Has(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Calls f for each entry in insertion order until f returns false.
func (t *Table) Range(f func(key string, v Value) (more bool)) {
	for i := range iter.N(t.Len()) {
		k := t.keys[i]
		if !f(k, t.values[k]) {
			return
		}
	}
}

// Returns a copy of the entries.
func (t *Table) Map() map[string]Value {
	ret := make(map[string]Value, t.Len())
	t.Range(func(k string, v Value) bool {
		ret[k] = v
		return true
	})
	return ret
}

// Returns a new table holding only the given keys that are present, in the
// order they were requested.
func (t *Table) subset(keys []string) *Table {
	ret := newTable()
	for _, k := range keys {
		if v, ok := t.Lookup(k); ok {
			ret.set(k, v)
		}
	}
	return ret
}
