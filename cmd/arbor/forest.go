package main

import (
	"fmt"
	"slices"

	"github.com/npillmayer/arbor/treefile"
	"github.com/urfave/cli/v2"
)

var cmdForest = &cli.Command{
	Name:  "forest",
	Usage: "loads binary search trees from a tree file, one tree per line",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "tree file with one line of values per tree",
			Required: true,
		},
	},
	Action: runForest,
}

func runForest(cctx *cli.Context) error {
	forest, err := treefile.LoadForest(cctx.String("file"))
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	var first []int
	same := true
	for i, tree := range forest {
		values := tree.InOrder()
		fmt.Fprintf(out, "tree %d: size %d, height %d: %s\n", i+1, tree.Size(), tree.Height(), joinInts(values))
		if i == 0 {
			first = values
		} else if !slices.Equal(first, values) {
			same = false
		}
	}
	if len(forest) > 1 && same {
		fmt.Fprintln(out, "all trees hold the same values")
	}
	return nil
}
