package main

import (
	"fmt"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bst"
	"github.com/npillmayer/arbor/render"
	"github.com/urfave/cli/v2"
)

var cmdBST = &cli.Command{
	Name:      "bst",
	Usage:     "builds a binary search tree from values and prints it",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "remove",
			Usage: "value to remove after building (may be repeated)",
		},
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print the tree in Graphviz DOT format",
		},
		&cli.BoolFlag{
			Name:  "levels",
			Usage: "print a level listing instead of an ASCII tree",
		},
		&cli.BoolFlag{
			Name:    "check",
			Usage:   "validate tree invariants after every mutation",
			EnvVars: []string{"ARBOR_CHECK"},
		},
	},
	Action: runBST,
}

func runBST(cctx *cli.Context) error {
	values, err := intArgs(cctx)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: need at least one value", arbor.ErrIllegalArguments)
	}
	cfg := arbor.Ordered[int]()
	cfg.Check = cctx.Bool("check")
	tree, err := bst.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	if err := tree.InsertAll(values...); err != nil {
		return err
	}
	for _, v := range cctx.IntSlice("remove") {
		found, err := tree.Remove(v)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(cctx.App.Writer, "%d not found\n", v)
		}
	}
	out := cctx.App.Writer
	if cctx.Bool("dot") {
		return tree.ToDot(out)
	}
	fmt.Fprintf(out, "in-order: %s\n", joinInts(tree.InOrder()))
	fmt.Fprintf(out, "size: %d, height: %d\n", tree.Size(), tree.Height())
	if cctx.Bool("levels") {
		return render.BSTLevels(out, tree, render.ConfigFromTerminal())
	}
	return render.BST(out, tree)
}
