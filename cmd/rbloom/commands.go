package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forestrie/go-rbloom/bloom"
	"github.com/urfave/cli"
)

var buildCommand = cli.Command{
	Name:      "build",
	Usage:     "Build a filter from newline separated elements.",
	ArgsUsage: "[input-file]",
	Description: `
	Reads one element per line from input-file, or from stdin when no file
	is given, and saves the resulting filter to --out. Empty lines are
	skipped.`,
	Flags: []cli.Flag{
		cli.Uint64Flag{
			Name:  "items",
			Value: 1000,
			Usage: "the number of elements the filter is sized for",
		},
		cli.Float64Flag{
			Name:  "fp-rate",
			Value: 0.01,
			Usage: "the target false positive rate, in (0, 1)",
		},
		hashFlag,
		cli.StringFlag{
			Name:  "out",
			Usage: "the file the filter is saved to",
		},
	},
	Action: build,
}

func build(ctx *cli.Context) error {
	if !ctx.IsSet("out") {
		return errors.New("--out required")
	}
	h, err := hasherByName(ctx.String("hash"))
	if err != nil {
		return err
	}

	f, err := bloom.New(ctx.Uint64("items"), ctx.Float64("fp-rate"), bloom.WithHasher(h))
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if ctx.NArg() > 0 {
		file, err := os.Open(ctx.Args().First())
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	n, err := addLines(f, in)
	if err != nil {
		return err
	}
	log.Debugf("added %d elements, k=%d size_in_bits=%d", n, f.K(), f.SizeInBits())

	if err := f.SaveFile(ctx.String("out")); err != nil {
		return err
	}
	log.Infof("saved %s: %v", ctx.String("out"), f)
	return nil
}

func addLines(f *bloom.Filter[string], r io.Reader) (int, error) {
	var n int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := f.Add(line); err != nil {
			return n, err
		}
		n++
	}
	return n, scanner.Err()
}

var queryCommand = cli.Command{
	Name:      "query",
	Usage:     "Test elements for membership in a saved filter.",
	ArgsUsage: "element [element...]",
	Flags: []cli.Flag{
		hashFlag,
		cli.StringFlag{
			Name:  "filter",
			Usage: "the saved filter",
		},
	},
	Action: query,
}

func query(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.ShowCommandHelp(ctx, "query")
	}
	f, err := loadFilter(ctx, ctx.String("filter"))
	if err != nil {
		return err
	}
	for _, elem := range ctx.Args() {
		ok, err := f.Contains(elem)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s\t%t\n", elem, ok)
	}
	return nil
}

var infoCommand = cli.Command{
	Name:  "info",
	Usage: "Show the parameters and fill of a saved filter.",
	Flags: []cli.Flag{
		hashFlag,
		cli.StringFlag{
			Name:  "filter",
			Usage: "the saved filter",
		},
	},
	Action: info,
}

func info(ctx *cli.Context) error {
	f, err := loadFilter(ctx, ctx.String("filter"))
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "size_in_bits: %d\n", f.SizeInBits())
	fmt.Fprintf(w, "k: %d\n", f.K())
	fmt.Fprintf(w, "empty: %t\n", f.IsEmpty())
	fmt.Fprintf(w, "approx_items: %.1f\n", f.ApproxItems())
	return nil
}

var mergeCommand = cli.Command{
	Name:      "merge",
	Usage:     "Combine saved filters built with the same parameters.",
	ArgsUsage: "filter [filter...]",
	Flags: []cli.Flag{
		hashFlag,
		cli.StringFlag{
			Name:  "op",
			Value: "union",
			Usage: "union or intersection",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "the file the combined filter is saved to",
		},
	},
	Action: merge,
}

func merge(ctx *cli.Context) error {
	if !ctx.IsSet("out") {
		return errors.New("--out required")
	}
	if ctx.NArg() == 0 {
		return cli.ShowCommandHelp(ctx, "merge")
	}

	paths := ctx.Args()
	result, err := loadFilter(ctx, paths.First())
	if err != nil {
		return err
	}
	var others []bloom.Source[string]
	for _, path := range paths.Tail() {
		f, err := loadFilter(ctx, path)
		if err != nil {
			return err
		}
		others = append(others, f)
	}

	switch op := ctx.String("op"); op {
	case "union":
		err = result.Update(others...)
	case "intersection":
		err = result.IntersectionUpdate(others...)
	default:
		return fmt.Errorf("unknown op %q, want union or intersection", op)
	}
	if err != nil {
		return err
	}

	if err := result.SaveFile(ctx.String("out")); err != nil {
		return err
	}
	log.Infof("merged %d filters into %s: %v", len(paths), ctx.String("out"), result)
	return nil
}

func loadFilter(ctx *cli.Context, path string) (*bloom.Filter[string], error) {
	if path == "" {
		return nil, errors.New("--filter required")
	}
	h, err := hasherByName(ctx.String("hash"))
	if err != nil {
		return nil, err
	}
	f, err := bloom.LoadFile(path, h)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %s: %v", path, f)
	return f, nil
}
