package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/diagnostics"
	"github.com/standardbeagle/elmparse/internal/dispatch"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
)

// Version is set at build time via -ldflags; a bare literal default keeps
// `go run` usable without one.
var Version = "dev"

func openAccess(path string) (access.PackageAccess, func(), error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return access.NewDirectoryAccess(path), func() {}, nil
	}
	aa, err := access.NewArchiveAccessFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return aa, func() { aa.Close() }, nil
}

func loadOptions(c *cli.Context) (optionsconfig.ParserOptions, error) {
	if cfgPath := c.String("config"); cfgPath != "" {
		return optionsconfig.Load(cfgPath)
	}
	opts := optionsconfig.Default()
	opts.ValidateSCORM2004Schema = c.Bool("validate-schema")
	opts.MemoizeParses = c.Bool("memoize")
	return opts, nil
}

func runOne(c *cli.Context, target string) (model.ModuleMetadata, error) {
	opts, err := loadOptions(c)
	if err != nil {
		return model.ModuleMetadata{}, err
	}
	d, err := dispatch.New(opts)
	if err != nil {
		return model.ModuleMetadata{}, err
	}
	acc, closeFn, err := openAccess(target)
	if err != nil {
		return model.ModuleMetadata{}, err
	}
	defer closeFn()

	diagnostics.Component("dispatch", "parsing %s", target)
	metadata, warnings, err := d.Parse(acc)
	if err != nil {
		return model.ModuleMetadata{}, err
	}
	if warnings != nil {
		for _, w := range warnings.Warnings {
			diagnostics.Component("warning", "%s: %s", w.FieldPath, w.Message)
		}
	}
	return metadata, nil
}

func parseCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("expected one or more package paths", 1)
	}
	targets := c.Args().Slice()
	if len(targets) == 1 {
		metadata, err := runOne(c, targets[0])
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return printJSON(metadata)
	}
	return parseBatch(c, targets)
}

// parseBatch parses each target package concurrently: one goroutine per
// package via golang.org/x/sync/errgroup, each holding its own Dispatcher
// since dispatcher instances are not required to be concurrency-safe
// internally.
func parseBatch(c *cli.Context, targets []string) error {
	results := make([]model.ModuleMetadata, len(targets))
	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			metadata, err := runOne(c, target)
			if err != nil {
				diagnostics.Component("batch", "%s: %v", target, err)
				return nil // one package's failure does not abort the batch
			}
			results[i] = metadata
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return printJSON(results)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	app := &cli.App{
		Name:    "elmparse",
		Usage:   "Detect and parse SCORM/AICC/cmi5/xAPI e-learning packages",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a ParserOptions TOML file"},
			&cli.BoolFlag{Name: "validate-schema", Usage: "enable SCORM 2004 manifest-shape schema validation"},
			&cli.BoolFlag{Name: "memoize", Usage: "enable the idempotence memo across repeated parses in one process"},
			&cli.BoolFlag{Name: "trace", Usage: "enable diagnostics output on stderr"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("trace") {
				diagnostics.SetOutput(os.Stderr)
			}
			return nil
		},
		Action: parseCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
