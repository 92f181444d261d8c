// Package assertutil extends testify with assertions used across this
// module's tests.
package assertutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	crosspath "github.com/fr12k/go-crosspath"
)

// ErrorEqual asserts that got is equivalent to want, comparing only the
// fields a test intends to assert on: the message text, and sentinel
// identity when want wraps one. Runtime-specific detail such as stack
// traces never participates in the comparison.
func ErrorEqual(t *testing.T, want, got error) bool {
	t.Helper()
	if want == nil {
		return assert.NoError(t, got)
	}
	if !assert.Error(t, got) {
		return false
	}
	if sentinel := errors.Unwrap(want); sentinel != nil {
		if !assert.ErrorIs(t, got, sentinel) {
			return false
		}
	}
	return assert.Equal(t, want.Error(), got.Error())
}

// Rooted asserts that path is absolute under at least one recognized
// root convention.
func Rooted(t *testing.T, path string) bool {
	t.Helper()
	return assert.True(t, crosspath.IsRooted(path), "expected rooted path, got %q", path)
}

// NotRooted asserts that path is not absolute under any recognized
// root convention.
func NotRooted(t *testing.T, path string) bool {
	t.Helper()
	return assert.False(t, crosspath.IsRooted(path), "expected non-rooted path, got %q", path)
}
