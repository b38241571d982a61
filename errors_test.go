package argseq

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictMessage(t *testing.T) {
	assert.EqualError(t, NewConflict("enable-cache", "disable-cache"), "disable-cache has conflict with enable-cache")
	assert.EqualError(t, NewConflict("disable-logging", "enable-logging"), "enable-logging has conflict with disable-logging")
	assert.EqualError(t, Conflictf("%s and %s", "a", "b"), "a and b")
}

func TestConflictIsUsageError(t *testing.T) {
	var err error = NewConflict("enable-cache", "disable-cache")
	assert.True(t, errors.Is(err, ErrOptionConflict))
	assert.False(t, errors.Is(err, ErrTypeMismatch))
	var ue UsageError
	assert.True(t, errors.As(err, &ue))
	assert.EqualValues(t, ErrOptionConflict, ue.Kind)
	assert.True(t, IsUsageError(err))
	var ce ConflictError
	assert.True(t, errors.As(fmt.Errorf("validating: %w", err), &ce))
	assert.EqualValues(t, "disable-cache", ce.Second)
}

func TestUsageErrorMessage(t *testing.T) {
	assert.EqualError(t, UsageError{Kind: ErrEmptyInput}, "no arguments")
	assert.EqualError(t, InvalidValuef("bad %d", 1), "bad 1")
	assert.True(t, errors.Is(InvalidValuef("x"), ErrInvalidValue))
	assert.False(t, IsUsageError(errors.New("other")))
	assert.False(t, IsUsageError(nil))
}
