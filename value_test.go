package argseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var v Value
	assert.True(t, v.IsAbsent())
	assert.EqualValues(t, Absent, v)
	assert.Nil(t, v.Interface())
	_, ok := v.Text()
	assert.False(t, ok)
}

func TestValueAccessorsDontCoerce(t *testing.T) {
	v := UintValue(7)
	_, ok := v.Text()
	assert.False(t, ok)
	_, ok = v.Bool()
	assert.False(t, ok)
	u, ok := v.Uint()
	assert.True(t, ok)
	assert.EqualValues(t, 7, u)
}

func TestKindString(t *testing.T) {
	assert.EqualValues(t, "string", KindString.String())
	assert.EqualValues(t, "uint", KindUint.String())
	assert.EqualValues(t, "bool", KindBool.String())
	assert.EqualValues(t, "absent", KindAbsent.String())
	assert.EqualValues(t, "Kind(9)", Kind(9).String())
}

func TestValueString(t *testing.T) {
	assert.EqualValues(t, `"hi"`, StringValue("hi").String())
	assert.EqualValues(t, "42", UintValue(42).String())
	assert.EqualValues(t, "false", BoolValue(false).String())
	assert.EqualValues(t, "<absent>", Absent.String())
}

func TestNilTable(t *testing.T) {
	var tab *Table
	assert.EqualValues(t, 0, tab.Len())
	assert.False(t, tab.Has("a"))
	assert.True(t, tab.Get("a").IsAbsent())
	assert.Nil(t, tab.Keys())
	assert.Empty(t, tab.Map())
}

func TestTableRangeStops(t *testing.T) {
	tab := newTable()
	tab.set("a", BoolValue(true))
	tab.set("b", BoolValue(true))
	tab.set("c", BoolValue(true))
	var seen []string
	tab.Range(func(k string, _ Value) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.EqualValues(t, []string{"a", "b"}, seen)
}
