package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/pipeline"
)

var testCommand = cli.Command{
	Name:      "test",
	Usage:     "Run test_ functions in *_test" + sourceExt + " files",
	ArgsUsage: "[file | dir]...",
	Action:    runTests,
}

// TestResult represents the result of running a single test
type TestResult struct {
	Name   string
	Passed bool
	Error  error
	Output string
}

func runTests(ctx *cli.Context) error {
	paths := []string(ctx.Args())
	if len(paths) == 0 {
		paths = []string{"."}
	}

	failed := 0
	for _, path := range paths {
		n, err := runAllTests(path)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		failed += n
	}
	if failed > 0 {
		return cli.NewExitError("", 1)
	}
	return nil
}

// runAllTests runs the test files under path and returns how many
// tests failed.
func runAllTests(path string) (int, error) {
	testFiles, err := findSources(path, isTestFile)
	if err != nil {
		return 0, err
	}
	if len(testFiles) == 0 {
		fmt.Printf("No test files found in %s\n", path)
		return 0, nil
	}

	fmt.Printf("Running tests in %s...\n\n", path)

	var total, passed, failed int
	for _, testFile := range testFiles {
		for _, result := range runTestFile(testFile) {
			total++
			if result.Passed {
				passed++
				fmt.Printf("  %s %s\n", color.GreenString("✓"), result.Name)
				continue
			}
			failed++
			fmt.Printf("  %s %s\n", color.RedString("✗"), result.Name)
			if result.Error != nil {
				fmt.Printf("    Error: %v\n", result.Error)
			}
			if result.Output != "" {
				fmt.Printf("    Output: %s\n", result.Output)
			}
		}
	}

	fmt.Printf("\nTest Results: %d total, %d passed, %d failed\n", total, passed, failed)
	return failed, nil
}

// Test files end with _test.flv or live in a tests/ directory.
func isTestFile(path string) bool {
	if strings.HasSuffix(path, "_test"+sourceExt) {
		return true
	}
	return filepath.Base(filepath.Dir(path)) == "tests"
}

// runTestFile evaluates the file once, then calls each test function in
// the same session. A test fails on a runtime error or by returning
// false.
func runTestFile(filename string) []TestResult {
	name := filepath.Base(filename)

	src, err := readSource(filename)
	if err != nil {
		return []TestResult{{Name: name, Error: fmt.Errorf("failed to read file: %v", err)}}
	}

	program, err := pipeline.Compile(src, pipelineOptions()...)
	if err != nil {
		return []TestResult{{Name: name, Error: err}}
	}
	tests := findTestFunctions(program)
	if len(tests) == 0 {
		return nil
	}

	var output strings.Builder
	session := pipeline.NewSession(pipelineOptions(pipeline.WithOutput(&output))...)
	if _, err := session.Eval(src); err != nil {
		return []TestResult{{Name: name, Error: err, Output: strings.TrimSpace(output.String())}}
	}

	var results []TestResult
	for _, fn := range tests {
		output.Reset()
		outcome, err := session.Eval(fn.Name + "();")
		results = append(results, TestResult{
			Name:   name + ": " + fn.Name,
			Passed: err == nil && outcome.Value != interp.Value(interp.Bool(false)),
			Error:  err,
			Output: strings.TrimSpace(output.String()),
		})
	}
	return results
}

// findTestFunctions finds top-level functions that start with "test_"
// and take no parameters.
func findTestFunctions(program []ast.Node) []*ast.FunctionDeclaration {
	var tests []*ast.FunctionDeclaration
	for _, node := range program {
		if fn, ok := node.(*ast.FunctionDeclaration); ok && strings.HasPrefix(fn.Name, "test_") && len(fn.Params) == 0 {
			tests = append(tests, fn)
		}
	}
	return tests
}
