// Package main provides the CLI entrypoint for rowconv-gen.
//
// rowconv-gen scans Go packages for entity interfaces and their
// Immutable-prefixed implementation structs, then writes a registration
// file per package so the pairs are known to the resolver at runtime.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	goversion "github.com/caarlos0/go-version"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"rowconv/internal/gen"
	"rowconv/internal/scan"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""

	dir         = flag.String("dir", "", "working directory for package loading (default: current directory)")
	outName     = flag.String("out", "immutables.gen.go", "name of the generated file in each package")
	dryRun      = flag.Bool("dry-run", false, "print generated files instead of writing them")
	dump        = flag.Bool("dump", false, "dump the raw scan result and exit")
	debug       = flag.Bool("debug", false, "enable debug logging")
	showVersion = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(buildVersion().String())
		return
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		fmt.Println(buildVersion().String())
		fmt.Println("Usage: rowconv-gen [options] <package patterns>")
		flag.PrintDefaults()

		return
	}

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	if err := run(logger, patterns); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, patterns []string) error {
	logger.Debug("scanning packages", zap.Strings("patterns", patterns))

	result, err := scan.NewScanner(*dir).Scan(patterns...)
	if err != nil {
		return err
	}

	if *dump {
		spew.Dump(result)
		return nil
	}

	for _, w := range result.Diagnostics.Warnings {
		logger.Warn(w.Message, zap.String("code", w.Code), zap.String("entity", w.Entity))
	}

	if err := result.Diagnostics.Error(); err != nil {
		return err
	}

	if len(result.Pairs) == 0 {
		logger.Info("no entity interface pairs found")
		return nil
	}

	cfg := gen.DefaultConfig()
	cfg.Filename = *outName

	files, err := gen.Generate(result, cfg)
	if err != nil {
		return err
	}

	if *dryRun {
		for _, f := range files {
			fmt.Printf("--- %s\n", filepath.Join(f.Dir, f.Filename))
			fmt.Print(string(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote registration file",
			zap.String("file", filepath.Join(f.Dir, f.Filename)))
	}

	return nil
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("rowconv-gen",
			"Registration file generator for interface-declared entities", ""),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
