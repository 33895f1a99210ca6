package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	segtree "github.com/caio/go-segtree"
)

var errBadFlag = errors.New("bad flag value")

// Tree kinds accepted by --kind.
const (
	kindSum       = "sum"
	kindMin       = "min"
	kindRecursive = "recursive"
)

type queryOptions struct {
	kind     string
	rangeArg string
	sets     []string
}

func newQueryCommand(a *app) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Apply updates and answer a single range query",
		Example: `  segtree query --kind min --range 1:3 --set 3=-4
  segtree query --values 5,2,7 --kind sum --range 0:2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.runQuery(opts)
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Kind", "Range", "Result"})
			tbl.AppendRow(table.Row{opts.kind, opts.rangeArg, res})
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindSum, "tree to query: sum, min or recursive")
	cmd.Flags().StringVar(&opts.rangeArg, "range", "", "inclusive index range a:b")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "update idx=val applied before the query, repeatable")
	_ = cmd.MarkFlagRequired("range")

	return cmd
}

func (a *app) runQuery(opts *queryOptions) (int, error) {
	lo, hi, err := parsePair(opts.rangeArg, ":")
	if err != nil {
		return 0, fmt.Errorf("--range: %w", err)
	}

	var (
		query  func(a, b int) (int, error)
		update func(idx, val int) error
	)
	switch opts.kind {
	case kindSum:
		t, err := segtree.NewIterativeSumTree(a.values)
		if err != nil {
			return 0, err
		}
		query, update = t.QuerySum, t.Update
	case kindMin:
		t, err := segtree.NewIterativeMinTree(a.values)
		if err != nil {
			return 0, err
		}
		query, update = t.QueryMin, t.Update
	case kindRecursive:
		t, err := segtree.NewRecursiveSumTree(a.values)
		if err != nil {
			return 0, err
		}
		query, update = t.QuerySum, t.Update
	default:
		return 0, fmt.Errorf("--kind: %w: %q", errBadFlag, opts.kind)
	}

	for _, s := range opts.sets {
		idx, val, err := parsePair(s, "=")
		if err != nil {
			return 0, fmt.Errorf("--set: %w", err)
		}
		if err := update(idx, val); err != nil {
			return 0, err
		}
		a.logger.Debug("updated", "kind", opts.kind, "index", idx, "value", val)
	}

	return query(lo, hi)
}

func parsePair(s, sep string) (int, int, error) {
	left, right, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q, want x%sy", errBadFlag, s, sep)
	}
	x, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errBadFlag, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errBadFlag, s, err)
	}
	return x, y, nil
}
