package argseq

import (
	"fmt"
	"strconv"
)

// The kind of value stored for an option. The zero Kind is KindAbsent.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindUint
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A tagged option value. The zero Value is absent, which is what lookups of
// missing options return. Absent is never stored in a Table.
type Value struct {
	kind Kind
	s    string
	u    uint64
	b    bool
}

var Absent Value

func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func UintValue(u uint64) Value {
	return Value{kind: KindUint, u: u}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Returns the string payload, and whether the value is a string.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

func (v Value) Uint() (uint64, bool) {
	return v.u, v.kind == KindUint
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Returns the payload as a string, uint64 or bool, or nil if absent.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindUint:
		return v.u
	case KindBool:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "<absent>"
}
