package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	crosspath "github.com/fr12k/go-crosspath"
	"github.com/fr12k/go-crosspath/internal/manifest"
	"github.com/fr12k/go-crosspath/internal/runner"
	"github.com/fr12k/go-crosspath/internal/sliceutil"
)

var (
	depsDir       string
	depsLocalOnly bool
	depsList      bool
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show a Go module's dependencies from its go.mod manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if depsList {
			modules, err := manifest.ListModules(cmd.Context(), &runner.Runner{}, depsDir)
			if err != nil {
				return err
			}
			deps := sliceutil.Filter(modules, func(m manifest.Module) bool {
				return !m.Main && !m.Indirect
			})
			slog.Debug("listed modules", "total", len(modules), "direct", len(deps))
			for _, m := range deps {
				fmt.Fprintf(out, "%s %s\n", m.Path, m.Version)
			}
			return nil
		}

		goModPath := crosspath.Join(depsDir, "go.mod")
		slog.Debug("parsing manifest", "path", goModPath)

		f, err := manifest.Parse(goModPath)
		if err != nil {
			return err
		}

		if depsLocalOnly {
			base := crosspath.Resolve(depsDir)
			for _, r := range manifest.Dedupe(f.LocalReplaces()) {
				fmt.Fprintf(out, "%s => %s\n", r.Old, crosspath.ResolveFrom(base, r.New))
			}
			return nil
		}

		fmt.Fprintf(out, "module %s\n", f.Module)
		for _, r := range f.DirectRequires() {
			fmt.Fprintf(out, "require %s %s\n", r.Path, r.Version)
		}
		for _, r := range f.Replaces {
			target := r.New
			if r.NewVer != "" {
				target = fmt.Sprintf("%s %s", r.New, r.NewVer)
			}
			fmt.Fprintf(out, "replace %s => %s\n", r.Old, target)
		}
		return nil
	},
}

func init() {
	depsCmd.Flags().StringVar(&depsDir, "dir", ".", "module directory")
	depsCmd.Flags().BoolVar(&depsLocalOnly, "local-only", false, "only show replace directives targeting local paths, resolved")
	depsCmd.Flags().BoolVar(&depsList, "list", false, "list direct dependencies via the go tool")
}
