// crosspath joins, normalizes, and resolves filesystem path strings that
// may mix POSIX and Windows separators, without touching the filesystem.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/fr12k/go-crosspath/internal/log"
)

var version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crosspath",
	Short: "Cross-platform lexical path manipulation",
	Long: `crosspath joins, normalizes, and resolves filesystem path strings
that may arrive in POSIX or Windows form, possibly mixed within a
single string. All operations are lexical: nothing is read from the
filesystem and no symlinks are resolved.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()

		var merr error

		logLevel, err := flags.GetString("log-level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log-format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(os.Stderr, logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().String("log-level", "warn", "Set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Set the log format (text, json)")
	rootCmd.AddCommand(normCmd)
	rootCmd.AddCommand(rootedCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(depsCmd)
}
