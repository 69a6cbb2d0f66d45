package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/hierarchy/outline"
	"github.com/npillmayer/arbor/render"
	"github.com/urfave/cli/v2"
)

var cmdOutline = &cli.Command{
	Name:      "outline",
	Usage:     "prints the element outline of an HTML file",
	ArgsUsage: `<file>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "paths",
			Usage: "label elements with their full path",
		},
	},
	Action: runOutline,
}

func runOutline(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("%w: expected exactly one HTML file", arbor.ErrIllegalArguments)
	}
	f, err := os.Open(cctx.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()
	tree, err := outline.FromHTML(f)
	if err != nil {
		return err
	}
	if cctx.Bool("paths") {
		return render.Hierarchy(cctx.App.Writer, tree)
	}
	return render.HierarchyWithLabels(cctx.App.Writer, tree, outline.Base)
}
