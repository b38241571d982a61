package argseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type kv = map[string]interface{}

type parseCase struct {
	args     []string
	err      error
	command  string
	expected kv
}

func noErrorCase(expected kv, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func commandCase(command string, expected kv, args ...string) parseCase {
	return parseCase{args: args, command: command, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func tableValues(t *Table) kv {
	ret := kv{}
	t.Range(func(k string, v Value) bool {
		ret[k] = v.Interface()
		return true
	})
	return ret
}

func (me parseCase) Run(t *testing.T, opts ...parseOpt) {
	t.Helper()
	s, err := New(me.args, opts...)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil {
		assert.Nil(t, s)
		return
	}
	assert.EqualValues(t, me.command, s.Command(), "%q", me.args)
	assert.EqualValues(t, me.expected, tableValues(s.Args()), "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, opts ...parseOpt) {
	t.Helper()
	for _, _case := range cases {
		_case.Run(t, opts...)
	}
}
