package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flavor-lang/flavor/internal/pipeline"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
}

func TestReadSourceEnforcesExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "prog.txt"), "print 1;")
	writeFile(t, filepath.Join(dir, "prog.flv"), "print 1;")

	_, err := readSource(filepath.Join(dir, "prog.txt"))
	require.Error(t, err)

	src, err := readSource(filepath.Join(dir, "prog.flv"))
	require.NoError(t, err)
	require.Equal(t, "print 1;", src)
}

func TestFindSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.flv"), "")
	writeFile(t, filepath.Join(dir, "sub", "b_test.flv"), "")
	writeFile(t, filepath.Join(dir, "tests", "c.flv"), "")
	writeFile(t, filepath.Join(dir, ".hidden", "d.flv"), "")
	writeFile(t, filepath.Join(dir, "notes.md"), "")

	all, err := findSources(dir, func(string) bool { return true })
	require.NoError(t, err)
	sort.Strings(all)
	require.Equal(t, []string{
		filepath.Join(dir, "a.flv"),
		filepath.Join(dir, "sub", "b_test.flv"),
		filepath.Join(dir, "tests", "c.flv"),
	}, all)

	testFiles, err := findSources(dir, isTestFile)
	require.NoError(t, err)
	sort.Strings(testFiles)
	require.Equal(t, []string{
		filepath.Join(dir, "sub", "b_test.flv"),
		filepath.Join(dir, "tests", "c.flv"),
	}, testFiles)

	_, err = findSources(filepath.Join(dir, "missing"), isTestFile)
	require.Error(t, err)
}

func TestRunTestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "math_test.flv")
	writeFile(t, path, `
fn double(n: int) -> int { return n * 2; }
fn test_double() -> bool { return double(2) == 4; }
fn test_wrong() -> bool { print "checking"; return double(2) == 5; }
fn test_crash() -> nothing { let xs = [1]; print xs[3]; }
fn helper(n: int) -> bool { return true; }
`)

	results := runTestFile(path)
	require.Len(t, results, 3)

	require.Equal(t, "math_test.flv: test_double", results[0].Name)
	require.True(t, results[0].Passed)

	require.False(t, results[1].Passed)
	require.NoError(t, results[1].Error)
	require.Equal(t, "checking", results[1].Output)

	require.False(t, results[2].Passed)
	require.Error(t, results[2].Error)
}

func TestRunTestFileReportsCompileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken_test.flv")
	writeFile(t, path, "fn test_x() -> int { }")

	results := runTestFile(path)
	require.Len(t, results, 1)
	require.False(t, results[0].Passed)
	require.Contains(t, results[0].Error.Error(), "does not guarantee a return")
}

func TestPrintFailure(t *testing.T) {
	saved := settings
	defer func() { settings = saved }()
	settings.Output.Color = false

	src := "let x: int = true;"
	_, err := pipeline.Compile(src)
	require.Error(t, err)

	var out bytes.Buffer
	printFailure(&out, "prog.flv", src, err)
	require.Contains(t, out.String(), "[TypeChecking] Type mismatch in let declaration: variable 'x' declared as int but expression has type bool\n")
	require.Contains(t, out.String(), "--> prog.flv:1:14\n")

	out.Reset()
	printFailure(&out, "prog.flv", src, errors.New("error accessing path prog.flv"))
	require.Equal(t, "error accessing path prog.flv\n", out.String())
}
