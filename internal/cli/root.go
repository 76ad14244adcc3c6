// Package cli implements the docdash command line: read-only views over the entity store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docdash/internal/config"
	"docdash/internal/repository"
	"docdash/internal/store"
)

// Opener returns the repositories the commands read from, plus a release func.
type Opener func(ctx context.Context, log *zap.Logger) (repository.Set, func() error, error)

// ConfigOpener opens the store configured by the environment.
func ConfigOpener(cfg *config.AppConfig) Opener {
	return func(ctx context.Context, log *zap.Logger) (repository.Set, func() error, error) {
		o, err := store.Open(ctx, cfg, log)
		if err != nil {
			return repository.Set{}, nil, err
		}
		return o.Repos, o.Close, nil
	}
}

type env struct {
	open    Opener
	loc     *time.Location
	output  string
	verbose bool

	log     *zap.Logger
	repos   repository.Set
	release func() error
}

// NewRootCommand builds the command tree. Timestamps are printed in loc.
func NewRootCommand(open Opener, loc *time.Location) *cobra.Command {
	e := &env{open: open, loc: loc}

	root := &cobra.Command{
		Use:   "docdash",
		Short: "Inspect the document dashboard store",
		Long: `Read-only views of the document dashboard: documents, activity log,
system log and the monitoring overview.

The store is selected by STORE_DRIVER (memory or postgres).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e.output != "table" && e.output != "json" {
				return fmt.Errorf("unknown output %q, want table or json", e.output)
			}
			e.log = zap.NewNop()
			if e.verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				e.log = l
			}
			repos, release, err := e.open(cmd.Context(), e.log)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			e.repos, e.release = repos, release
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.release == nil {
				return nil
			}
			return e.release()
		},
	}

	root.PersistentFlags().StringVarP(&e.output, "output", "o", "table", "Output format: table or json")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Log store access to stderr")

	root.AddCommand(newDocumentsCmd(e))
	root.AddCommand(newActivityCmd(e))
	root.AddCommand(newSyslogCmd(e))
	root.AddCommand(newMonitoringCmd(e))
	return root
}

// render writes v as JSON, or calls table with a tabwriter.
func (e *env) render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	if e.output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}
