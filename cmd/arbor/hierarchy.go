package main

import (
	"fmt"

	"github.com/npillmayer/arbor/render"
	"github.com/npillmayer/arbor/treefile"
	"github.com/urfave/cli/v2"
)

var cmdHierarchy = &cli.Command{
	Name:  "hierarchy",
	Usage: "loads a hierarchy from a tree file and prints it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "tree file: root on the first line, then \"child parent\" pairs",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "find",
			Usage: "report the depth and subtree size of a value",
		},
		&cli.IntFlag{
			Name:  "remove",
			Usage: "prune the subtree of a value before printing",
		},
		&cli.BoolFlag{
			Name:  "levels",
			Usage: "print a level listing instead of an ASCII tree",
		},
	},
	Action: runHierarchy,
}

func runHierarchy(cctx *cli.Context) error {
	tree, err := treefile.LoadHierarchy(cctx.String("file"))
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	if cctx.IsSet("find") {
		v := cctx.Int("find")
		if node, ok := tree.BreadthFirstFind(v); ok {
			fmt.Fprintf(out, "found %d at depth %d, subtree size %d\n", v, node.Depth(), tree.SubtreeSize(v))
		} else {
			fmt.Fprintf(out, "%d not found\n", v)
		}
	}
	if cctx.IsSet("remove") {
		v := cctx.Int("remove")
		found, err := tree.Remove(v)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(out, "%d not found\n", v)
		}
	}
	fmt.Fprintf(out, "size: %d, height: %d\n", tree.Size(), tree.Height())
	if cctx.Bool("levels") {
		return render.Levels(out, tree, render.ConfigFromTerminal())
	}
	if err := render.Hierarchy(out, tree); err != nil {
		return err
	}
	return tree.PrintLevels(out)
}
