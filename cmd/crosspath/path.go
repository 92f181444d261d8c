package main

import (
	"fmt"

	"github.com/spf13/cobra"

	crosspath "github.com/fr12k/go-crosspath"
)

var normCmd = &cobra.Command{
	Use:   "norm PATH",
	Short: "Rewrite backslashes to forward slashes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), crosspath.Normalize(args[0]))
	},
}

var rootedCmd = &cobra.Command{
	Use:   "rooted PATH",
	Short: "Report whether a path is absolute under any recognized root convention",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), crosspath.IsRooted(args[0]))
	},
}

var joinCmd = &cobra.Command{
	Use:   "join [SEGMENT...]",
	Short: "Join path segments into one normalized path",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), crosspath.Join(args...))
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [SEGMENT...]",
	Short: "Join path segments and make the result absolute against the working directory",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), crosspath.Resolve(args...))
	},
}
