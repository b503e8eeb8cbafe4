package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/pipeline"
)

var checkCommand = cli.Command{
	Name:      "check",
	Usage:     "Type-check source files without running them",
	ArgsUsage: "[file" + sourceExt + " | dir]...",
	Action:    checkSources,
}

// checkResult is the outcome for one file.
type checkResult struct {
	path string
	src  string
	err  error
}

// checkSources checks every file concurrently, then reports in the
// order the files were found.
func checkSources(ctx *cli.Context) error {
	roots := []string(ctx.Args())
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var files []string
	for _, root := range roots {
		found, err := findSources(root, func(path string) bool { return true })
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		fmt.Printf("No %s files found\n", sourceExt)
		return nil
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			src, err := readSource(path)
			if err != nil {
				return err
			}
			_, err = pipeline.Compile(src, pipelineOptions()...)
			results[i] = checkResult{path: path, src: src, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	failed := 0
	for _, r := range results {
		if r.err == nil {
			fmt.Printf("  %s %s\n", color.GreenString("✓"), r.path)
			continue
		}
		failed++
		fmt.Printf("  %s %s\n", color.RedString("✗"), r.path)
		printFailure(stderr, r.path, r.src, r.err)
	}

	fmt.Printf("\nChecked %d files, %d failed\n", len(files), failed)
	if failed > 0 {
		return cli.NewExitError("", 1)
	}
	return nil
}

// findSources returns the source files under path that keep accepts.
// A file named explicitly is returned as is; hidden directories are
// skipped.
func findSources(path string, keep func(path string) bool) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %v", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if p != path && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(p, sourceExt) && keep(p) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
