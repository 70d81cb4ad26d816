package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/router"
)

type resolveOptions struct {
	jsonOutput bool
}

func newResolveCmd(appCtx *AppContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Show which views a path resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, appCtx, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type resolveJSON struct {
	Path     string            `json:"path"`
	Views    []string          `json:"views"`
	Params   map[string]string `json:"params"`
	NotFound bool              `json:"not_found"`
}

func runResolve(cmd *cobra.Command, appCtx *AppContext, opts *resolveOptions, paths []string) error {
	ctx, logger, err := commandLogger(cmd, appCtx, "command.resolve")
	if err != nil {
		return err
	}

	r, err := app.NewRouter()
	if err != nil {
		return fmt.Errorf("build route table: %w", err)
	}

	results := make([]resolveJSON, 0, len(paths))
	for _, p := range paths {
		m := r.Resolve(p)
		logger.Debug(ctx, "resolved path", "path", m.Path, "view", string(m.Leaf()), "wildcard", m.Wildcard)

		views := make([]string, 0, len(m.Chain))
		for _, v := range m.Chain {
			views = append(views, string(v))
		}
		results = append(results, resolveJSON{
			Path:     m.Path,
			Views:    views,
			Params:   map[string]string(m.Params),
			NotFound: m.Wildcard || !m.Found(),
		})
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PATH\tVIEWS\tPARAMS")
	for _, res := range results {
		views := strings.Join(res.Views, " > ")
		if res.NotFound {
			views += " (not found)"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", res.Path, views, formatParams(res.Params))
	}
	return writer.Flush()
}

func formatParams(params router.Params) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, ",")
}
