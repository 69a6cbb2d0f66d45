package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "arbor",
		Usage:   "build, inspect and print search trees and hierarchies",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level (debug, info, error); tracing is off if unset",
				EnvVars: []string{"ARBOR_TRACE"},
			},
		},
		Before: setupTracing,
	}
	app.Commands = []*cli.Command{
		cmdBST,
		cmdHierarchy,
		cmdForest,
		cmdOutline,
	}
	return app
}

func setupTracing(cctx *cli.Context) error {
	level := cctx.String("trace")
	if level == "" {
		return nil
	}
	levels := map[string]func(){
		"debug": func() { gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug) },
		"info":  func() { gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo) },
		"error": func() { gtrace.CoreTracer.SetTraceLevel(tracing.LevelError) },
	}
	setLevel, ok := levels[strings.ToLower(level)]
	if !ok {
		return fmt.Errorf("%w: unknown trace level %q", arbor.ErrIllegalArguments, level)
	}
	gtrace.CoreTracer = gologadapter.New()
	setLevel()
	arbor.T().Infof("arbor %s: tracing at level %s", versioninfo.Short(), level)
	return nil
}

// intArgs parses the positional arguments of a command as integers.
func intArgs(cctx *cli.Context) ([]int, error) {
	values := make([]int, 0, cctx.Args().Len())
	for _, a := range cctx.Args().Slice() {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", arbor.ErrIllegalArguments, a)
		}
		values = append(values, v)
	}
	return values, nil
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}
