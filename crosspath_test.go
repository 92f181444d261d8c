package crosspath

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "abc", Normalize("abc"))
	assert.Equal(t, "C:/a/b.txt", Normalize(`C:\a\b.txt`))
	assert.Equal(t, "/folder/file", Normalize("/folder/file"))
	assert.Equal(t, "a//b", Normalize(`a\\b`)) // no collapsing, separators only
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "abc", `C:\a\b.txt`, "/folder/file", `Z:\a/b\c`, "a//b", `\\server\share`}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestIsRooted(t *testing.T) {
	// Rooted
	assert.True(t, IsRooted("/"))
	assert.True(t, IsRooted(`\`))
	assert.True(t, IsRooted("C:/"))
	assert.True(t, IsRooted(`Z:\`))
	assert.True(t, IsRooted(`Z:\a/b\c`))
	assert.True(t, IsRooted("/folder/a"))
	assert.True(t, IsRooted("c:/lowercase"))

	// Not rooted
	assert.False(t, IsRooted(""))
	assert.False(t, IsRooted("abc"))
	assert.False(t, IsRooted("a/b"))
	assert.False(t, IsRooted("C:"))       // no separator after the colon
	assert.False(t, IsRooted("C:a"))      // drive-relative, not a root
	assert.False(t, IsRooted("9:/"))      // not a letter
	assert.False(t, IsRooted("CC:/"))     // two letters
	assert.False(t, IsRooted("./a"))      // relative
	assert.False(t, IsRooted("letter:/")) // word before the colon
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"no segments", nil, "."},
		{"one empty segment", []string{""}, "."},
		{"all empty segments", []string{"", ""}, "."},
		{"two plain segments", []string{"a", "b"}, "a/b"},
		{"embedded and mixed separators", []string{"a", "b/c", `d\e\f`}, "a/b/c/d/e/f"},
		{"drive root preserved", []string{"C:/", "apples", "oranges"}, "C:/apples/oranges"},
		{"backslash drive root normalized", []string{`Z:\`, "a"}, "Z:/a"},
		{"bare posix root", []string{"/"}, "/"},
		{"bare drive root", []string{"C:/"}, "C:/"},
		{"posix root with segments", []string{"/", "a", "b"}, "/a/b"},
		{"doubled separators absorbed", []string{"a//b", "c"}, "a/b/c"},
		{"trailing separators absorbed", []string{"a/", "/b/"}, "a/b"},
		{"separator-only segment", []string{"a", "//", "b"}, "a/b"},
		{"separator-only first segment keeps root", []string{"//", "a"}, "/a"},
		{"empty segments skipped", []string{"", "a", "", "b"}, "a/b"},
		{"rooted later segment stays relative", []string{"a", "/b"}, "a/b"},
		{"drive-rooted later segment stays relative", []string{"a", "C:/b"}, "a/C:/b"},
		{"rooted first segment with mixed tail", []string{`Z:\a/b\c`, "d"}, "Z:/a/b/c/d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.segments...))
		})
	}
}

func TestJoin_RootednessFollowsFirstSegment(t *testing.T) {
	// The joined result is rooted exactly when the first segment is.
	cases := [][]string{
		{"a", "b"},
		{"/a", "b"},
		{"C:/", "b"},
		{`Z:\x`, "/y", `\z`},
		{"a", "/b", "C:/c"},
	}
	for _, segs := range cases {
		assert.Equal(t, IsRooted(segs[0]), IsRooted(Join(segs...)), "segments %q", segs)
	}
}

func TestJoin_NoTrailingSeparator(t *testing.T) {
	cases := [][]string{
		{"a/"},
		{"a", "b/"},
		{"/a/b/"},
		{"C:/", "a/"},
	}
	for _, segs := range cases {
		got := Join(segs...)
		assert.False(t, strings.HasSuffix(got, "/"), "Join(%q) = %q", segs, got)
	}
}

func TestResolveFrom(t *testing.T) {
	base := "/work/dir"

	assert.Equal(t, "/work/dir", ResolveFrom(base))
	assert.Equal(t, "/work/dir", ResolveFrom(base, ""))
	assert.Equal(t, "/work/dir", ResolveFrom(base, "", ""))
	assert.Equal(t, "/work/dir/a/b", ResolveFrom(base, "a", "b"))
	assert.Equal(t, "/work/dir/a/b/c/d/e/f", ResolveFrom(base, "a", "b/c", `d\e\f`))

	// Already absolute on the host: returned as joined.
	assert.Equal(t, "/a/b", ResolveFrom(base, "/a", "b"))

	// A later rooted segment does not make the candidate absolute.
	assert.Equal(t, "/work/dir/a/b", ResolveFrom(base, "a", "/b"))
}

func TestResolveFrom_DriveRootedInput(t *testing.T) {
	// A drive-rooted string is not absolute on a POSIX host, so the base
	// is prepended even though IsRooted classifies the input as rooted.
	got := ResolveFrom("/work/dir", "C:/", "apples", "oranges")
	assert.Equal(t, "/work/dir/C:/apples/oranges", got)
	assert.True(t, strings.HasSuffix(got, "/C:/apples/oranges"))
}

func TestResolveFrom_NormalizesBase(t *testing.T) {
	assert.Equal(t, "/work/dir/a", ResolveFrom("/work//dir/", "a"))
}

func TestResolve(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, Join(wd), Resolve())
	assert.Equal(t, Join(wd), Resolve("", ""))
	assert.Equal(t, Join(wd, "a", "b"), Resolve("a", "b"))
	assert.True(t, strings.HasSuffix(Resolve("a", "b"), "/a/b"))
	assert.True(t, strings.HasSuffix(Resolve("a", "b/c", `d\e\f`), "/a/b/c/d/e/f"))
}
