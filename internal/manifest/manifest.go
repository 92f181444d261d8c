// Package manifest provides a thin wrapper around go.mod manifest files.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"

	crosspath "github.com/fr12k/go-crosspath"
	"github.com/fr12k/go-crosspath/internal/runner"
	"github.com/fr12k/go-crosspath/internal/sliceutil"
)

// Require is a single require directive.
type Require struct {
	Path     string
	Version  string
	Indirect bool
}

// Replace is a single replace directive.
type Replace struct {
	Old, New       string // module paths, or a filesystem path for New
	OldVer, NewVer string
}

// IsLocal returns true if the replace target is a local filesystem path
// rather than a module path.
func (r Replace) IsLocal() bool {
	return IsLocalPath(r.New)
}

// IsLocalPath returns true if path names a location on the local
// filesystem rather than a module. Local paths are "." and "..", paths
// starting with "./" or "../", and rooted paths of any recognized form
// (POSIX, Windows backslash, or drive-letter).
func IsLocalPath(path string) bool {
	if path == "." || path == ".." {
		return true
	}
	norm := crosspath.Normalize(path)
	if strings.HasPrefix(norm, "./") || strings.HasPrefix(norm, "../") {
		return true
	}
	return crosspath.IsRooted(path)
}

// File is a parsed go.mod manifest.
type File struct {
	Module   string
	Go       string
	Requires []Require
	Replaces []Replace
}

// Parse reads and parses the go.mod file at path.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := &File{}
	if f.Module != nil {
		out.Module = f.Module.Mod.Path
	}
	if f.Go != nil {
		out.Go = f.Go.Version
	}
	for _, r := range f.Require {
		out.Requires = append(out.Requires, Require{
			Path:     r.Mod.Path,
			Version:  r.Mod.Version,
			Indirect: r.Indirect,
		})
	}
	for _, r := range f.Replace {
		out.Replaces = append(out.Replaces, Replace{
			Old:    r.Old.Path,
			OldVer: r.Old.Version,
			New:    r.New.Path,
			NewVer: r.New.Version,
		})
	}
	return out, nil
}

// DirectRequires returns the non-indirect require directives.
func (f *File) DirectRequires() []Require {
	return sliceutil.Filter(f.Requires, func(r Require) bool { return !r.Indirect })
}

// LocalReplaces returns the replace directives whose target is a local path.
func (f *File) LocalReplaces() []Replace {
	return sliceutil.Filter(f.Replaces, Replace.IsLocal)
}

// Require returns the require directive for the given module path.
func (f *File) Require(path string) (Require, bool) {
	return sliceutil.First(f.Requires, func(r Require) bool { return r.Path == path })
}

// Dedupe removes duplicate replaces for the same source module, keeping
// the one with the lowest target version.
func Dedupe(replaces []Replace) []Replace {
	byKey := make(map[string]Replace)
	var order []string
	for _, r := range replaces {
		key := r.Old
		if r.OldVer != "" {
			key = fmt.Sprintf("%s@%s", r.Old, r.OldVer)
		}
		existing, ok := byKey[key]
		if !ok {
			order = append(order, key)
		}
		if !ok || semver.Compare(r.NewVer, existing.NewVer) < 0 {
			byKey[key] = r
		}
	}

	return sliceutil.Map(order, func(key string) Replace { return byKey[key] })
}

// Module describes one entry of `go list -m -json all`.
type Module struct {
	Path     string `json:"Path"`
	Version  string `json:"Version"`
	Dir      string `json:"Dir"`
	Main     bool   `json:"Main"`
	Indirect bool   `json:"Indirect"`
}

// ListModules lists the modules of the Go module in dir, via the go tool.
func ListModules(ctx context.Context, r *runner.Runner, dir string) ([]Module, error) {
	run := *r
	run.Dir = dir
	out, err := run.Output(ctx, "go", "list", "-m", "-json", "all")
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	var modules []Module
	dec := json.NewDecoder(bytes.NewReader(out))
	for dec.More() {
		var m Module
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}
