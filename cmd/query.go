package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/config"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/presentation"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/query"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// queryOptions holds the flag values shared by the models and agents
// commands. Each command owns its own instance so their flags stay
// independent.
type queryOptions struct {
	filters       []string
	anyMode       bool
	invert        bool
	caseSensitive bool
	preset        string

	format   string
	columns  string
	noHeader bool
	groupBy  string

	sortBy  string
	reverse bool
	limit   int

	stats   bool
	countBy string
	unique  string

	registryPath    string
	includeDisabled bool
}

// shortcut maps a convenience flag to the registry field it filters on.
type shortcut struct {
	flag  string
	field string
}

func addQueryFlags(cmd *cobra.Command, o *queryOptions) {
	cmd.Flags().StringArrayVarP(&o.filters, "filter", "f", nil,
		"filter expression field:op[:value] (repeatable)")
	cmd.Flags().BoolVar(&o.anyMode, "any", false,
		"combine filters with OR instead of AND")
	cmd.Flags().BoolVar(&o.invert, "invert", false,
		"select the records the filters reject")
	cmd.Flags().BoolVar(&o.caseSensitive, "case-sensitive", false,
		"compare strings case-sensitively")
	cmd.Flags().StringVar(&o.preset, "preset", "",
		"apply a named filter preset (see 'dv2 presets')")

	cmd.Flags().StringVarP(&o.format, "format", "o", "",
		"output format: table, json, csv, yaml, tree")
	cmd.Flags().StringVar(&o.columns, "columns", "",
		"comma-separated columns to print")
	cmd.Flags().BoolVar(&o.noHeader, "no-header", false,
		"omit the header row")
	cmd.Flags().StringVar(&o.groupBy, "group-by", "",
		"grouping field for tree output")

	cmd.Flags().StringVar(&o.sortBy, "sort", "",
		"comma-separated sort fields")
	cmd.Flags().BoolVar(&o.reverse, "reverse", false,
		"reverse the sort order")
	cmd.Flags().IntVar(&o.limit, "limit", 0,
		"print at most N records (applied after sorting)")

	cmd.Flags().BoolVar(&o.stats, "stats", false,
		"print aggregate counts instead of records")
	cmd.Flags().StringVar(&o.countBy, "count-by", "",
		"count matched records grouped by a field")
	cmd.Flags().StringVar(&o.unique, "unique", "",
		"print the distinct values of a field")
	cmd.MarkFlagsMutuallyExclusive("stats", "count-by", "unique")

	cmd.Flags().StringVar(&o.registryPath, "registry", "",
		"registry file to load (overrides config)")
	cmd.Flags().BoolVar(&o.includeDisabled, "all", false,
		"include unavailable and disabled records")
}

// addShortcutFlags registers the per-command convenience flags. Equality
// shortcuts take a string value; threshold shortcuts take an upper bound.
func addShortcutFlags(cmd *cobra.Command, equality, thresholds []shortcut) {
	for _, s := range equality {
		cmd.Flags().String(s.flag, "",
			fmt.Sprintf("select records whose %s equals this value (case-insensitive)", s.field))
	}
	for _, s := range thresholds {
		cmd.Flags().Int(s.flag, 0,
			fmt.Sprintf("select records whose %s is at most N", s.field))
	}
}

// runQuery is the shared pipeline behind the models and agents commands:
// load, filter, sort, limit, then either aggregate or format. defaultGroup
// is the tree grouping field used when neither flag nor config names one.
func runQuery(cmd *cobra.Command, o *queryOptions, equality, thresholds []shortcut, registryFile, defaultGroup string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := cmd.Context()

	path := o.registryPath
	if path == "" {
		path = registryFile
	}
	reg, err := registry.Load(path)
	if err != nil {
		return err
	}

	engine := query.NewEngine(o.caseSensitive || cfg.CaseSensitive)

	chain, err := buildChain(ctx, cmd, engine, o, equality, thresholds)
	if err != nil {
		return err
	}

	ids := engine.Select(reg, chain, o.includeDisabled)
	engine.SortIDs(reg, ids, querySortKey(cmd, o))

	if o.limit > 0 && len(ids) > o.limit {
		ids = ids[:o.limit]
	}

	out := cmd.OutOrStdout()
	switch {
	case o.stats:
		return writeSummary(out, query.Summary{Loaded: reg.Len(), Matched: len(ids)})
	case o.countBy != "":
		return writeBuckets(out, query.CountBy(reg, ids, o.countBy))
	case o.unique != "":
		return writeValues(out, query.Unique(reg, ids, o.unique))
	}

	formatter, err := presentation.New(effectiveFormat(o))
	if err != nil {
		return err
	}

	view := presentation.NewView(reg, ids)
	view.Columns = splitList(o.columns)
	view.NoHeader = o.noHeader || cfg.Output.NoHeader
	view.GroupBy = o.groupBy
	if view.GroupBy == "" {
		view.GroupBy = cfg.Output.GroupBy
	}
	if view.GroupBy == "" {
		view.GroupBy = defaultGroup
	}

	return formatter.Format(out, view)
}

// buildChain combines explicit filter expressions, shortcut flags, and the
// selected preset under one combinator. The preset joins as a child chain
// so its own combinator survives intact.
func buildChain(ctx context.Context, cmd *cobra.Command, e *query.Engine, o *queryOptions, equality, thresholds []shortcut) (*query.Chain, error) {
	filters, err := e.ParseFilters(ctx, o.filters)
	if err != nil {
		return nil, err
	}

	quick, err := shortcutFilters(ctx, cmd, e, equality, thresholds)
	if err != nil {
		return nil, err
	}
	filters = append(filters, quick...)

	chain := &query.Chain{Filters: filters, Negate: o.invert}
	if o.anyMode {
		chain.Mode = query.ModeAny
	}

	if o.preset != "" {
		preset, err := query.LookupPreset(o.preset)
		if err != nil {
			return nil, err
		}
		presetFilters, err := e.ParseFilters(ctx, preset.Exprs)
		if err != nil {
			return nil, err
		}
		child := &query.Chain{Filters: presetFilters}
		if preset.Any {
			child.Mode = query.ModeAny
		}
		chain.Children = append(chain.Children, child)
	}

	return chain, nil
}

// shortcutFilters turns the set convenience flags into parsed filters.
// Equality shortcuts always compare case-insensitively, whatever the
// engine's case rule says.
func shortcutFilters(ctx context.Context, cmd *cobra.Command, e *query.Engine, equality, thresholds []shortcut) ([]query.Filter, error) {
	var filters []query.Filter

	for _, s := range equality {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(s.flag)
		f, err := e.ParseFilter(ctx, s.field+":equals:"+value)
		if err != nil {
			return nil, err
		}
		f.CaseSensitive = false
		filters = append(filters, f)
	}

	for _, s := range thresholds {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		bound, _ := cmd.Flags().GetInt(s.flag)
		f, err := e.ParseFilter(ctx, fmt.Sprintf("%s:<=:%d", s.field, bound))
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	return filters, nil
}

// querySortKey resolves sort fields and direction, letting a set flag
// override the config even when set to an empty value.
func querySortKey(cmd *cobra.Command, o *queryOptions) query.SortKey {
	fields := splitList(o.sortBy)
	if !cmd.Flags().Changed("sort") {
		fields = cfg.Sort.Fields
	}
	reverse := o.reverse
	if !cmd.Flags().Changed("reverse") {
		reverse = cfg.Sort.Reverse
	}
	return query.SortKey{Fields: fields, Reverse: reverse}
}

func effectiveFormat(o *queryOptions) string {
	if o.format != "" {
		return o.format
	}
	return cfg.Output.Format
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeSummary(w io.Writer, s query.Summary) error {
	_, err := fmt.Fprintf(w, "loaded: %d\nmatched: %d\n", s.Loaded, s.Matched)
	return err
}

func writeBuckets(w io.Writer, buckets []query.Bucket) error {
	for _, b := range buckets {
		if _, err := fmt.Fprintf(w, "%6d  %s\n", b.Count, b.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeValues(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
