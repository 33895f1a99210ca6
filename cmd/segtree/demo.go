package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	segtree "github.com/caio/go-segtree"
)

// demoRanges are the inclusive ranges queried before and after the update.
var demoRanges = [][2]int{{0, 1}, {0, 6}, {6, 7}}

const (
	demoUpdateIndex = 3
	demoUpdateValue = -4
)

var demoAfterRange = [2]int{1, 3}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the reference queries for all three tree variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := a.runDemo()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Values: %v\n%s\n", a.values, tbl.Render())
			return nil
		},
	}
}

type demoVariant struct {
	name   string
	op     string
	query  func(a, b int) (int, error)
	update func(idx, val int) error
}

func (a *app) buildVariants() ([]demoVariant, error) {
	rec, err := segtree.NewRecursiveSumTree(a.values)
	if err != nil {
		return nil, err
	}
	sum, err := segtree.NewIterativeSumTree(a.values)
	if err != nil {
		return nil, err
	}
	mt, err := segtree.NewIterativeMinTree(a.values)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("built trees", "len", len(a.values), "sum_capacity", sum.Capacity(), "min_capacity", mt.Capacity())

	return []demoVariant{
		{name: "recursive", op: "sum", query: rec.QuerySum, update: rec.Update},
		{name: "iterative", op: "sum", query: sum.QuerySum, update: sum.Update},
		{name: "iterative", op: "min", query: mt.QueryMin, update: mt.Update},
	}, nil
}

func (a *app) runDemo() (table.Writer, error) {
	variants, err := a.buildVariants()
	if err != nil {
		return nil, err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Variant", "Operation", "Range", "Result"})

	for _, v := range variants {
		for _, r := range demoRanges {
			res, err := v.query(r[0], r[1])
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", v.name, v.op, err)
			}
			tbl.AppendRow(table.Row{v.name, v.op, formatRange(r), res})
		}

		if err := v.update(demoUpdateIndex, demoUpdateValue); err != nil {
			return nil, fmt.Errorf("%s %s: %w", v.name, v.op, err)
		}
		a.logger.Debug("updated", "variant", v.name, "op", v.op, "index", demoUpdateIndex, "value", demoUpdateValue)

		res, err := v.query(demoAfterRange[0], demoAfterRange[1])
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", v.name, v.op, err)
		}
		tbl.AppendRow(table.Row{v.name, v.op, formatRange(demoAfterRange) + fmt.Sprintf(" after [%d]=%d", demoUpdateIndex, demoUpdateValue), res})
		tbl.AppendSeparator()
	}

	return tbl, nil
}

func formatRange(r [2]int) string {
	return fmt.Sprintf("[%d, %d]", r[0], r[1])
}
