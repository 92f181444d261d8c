// Package crosspath implements lexical manipulation of filesystem path
// strings that may arrive in POSIX ("/") or Windows ("\", drive-letter)
// form, possibly mixed within a single string.
//
// All operations are purely lexical: they never stat, read, or check the
// existence of a path, never resolve symbolic links, and never collapse
// "." or ".." components. Results always use forward slashes. Every
// function is total over string inputs and safe for concurrent use.
package crosspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize rewrites every backslash in path to a forward slash. No other
// transformation is applied: no case folding, no collapsing of repeated
// separators. Normalize is idempotent.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// IsRooted reports whether path is absolute under at least one recognized
// root convention:
//   - POSIX root or Windows backslash root: a leading "/" or "\"
//   - Windows drive-letter root: an ASCII letter, then ":", then "/" or "\"
//
// The check runs on the raw input so that backslash roots are recognized
// before normalization could mask them. The empty string is not rooted.
// Content after a drive root may itself mix separators; only the prefix
// matters.
func IsRooted(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' || path[0] == '\\' {
		return true
	}
	return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && (path[2] == '/' || path[2] == '\\')
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Join combines any number of path segments into one normalized path.
// Segments may be empty or contain embedded separators of either kind;
// they are normalized, split, and their empty components dropped, which
// absorbs doubled separators and stray leading or trailing slashes. The
// surviving components are rejoined with single "/" separators.
//
// A rooted first segment fixes the result's root: the root prefix is kept
// verbatim in normalized form ("C:/" stays "C:/", "Z:\" becomes "Z:/"),
// with no doubled separator after it. Later segments never introduce or
// remove rootedness. With no segments, or only empty ones, Join returns
// ".". The result never ends in a separator unless it is a bare root.
func Join(segments ...string) string {
	var root string
	var parts []string
	for i, seg := range segments {
		if i == 0 && IsRooted(seg) {
			if seg[0] == '/' || seg[0] == '\\' {
				root, seg = "/", seg[1:]
			} else {
				root, seg = seg[:2]+"/", seg[3:]
			}
		}
		for _, part := range strings.Split(Normalize(seg), "/") {
			if part != "" {
				parts = append(parts, part)
			}
		}
	}
	if root == "" && len(parts) == 0 {
		return "."
	}
	return root + strings.Join(parts, "/")
}

// Resolve joins the given segments and makes the result absolute against
// the current working directory. It is ResolveFrom with the base defaulted
// to a single working-directory snapshot taken per call. If the working
// directory cannot be read, "/" is used so the result is still rooted.
func Resolve(segments ...string) string {
	wd, err := os.Getwd()
	if err != nil || wd == "" {
		wd = "/"
	}
	return ResolveFrom(wd, segments...)
}

// ResolveFrom joins the given segments and, unless the joined result is
// already absolute on the host, joins base (first) with it. Base must be a
// valid, non-empty, absolute path; it is not verified.
//
// Absoluteness of the candidate is the host's notion, not IsRooted: on a
// POSIX host a drive-rooted string like "C:/apples" is still resolved
// against base. Resolving nothing, or only empty segments, yields base
// itself, normalized. The result always satisfies IsRooted.
func ResolveFrom(base string, segments ...string) string {
	joined := Join(segments...)
	if filepath.IsAbs(joined) {
		return joined
	}
	if joined == "." {
		return Join(base)
	}
	return Join(base, joined)
}
