package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/blist/bench/report"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("blbench %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	for _, name := range []string{"list-append", "set-deplete-dense", "multimap-insert"} {
		if !strings.Contains(out, name) {
			t.Errorf("scenario %s missing from list output", name)
		}
	}
}

func TestRunCommandWritesBaseline(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "report.html")
	out := execute(t, "run", "--size", "300", "--rounds", "1", "--no-color", "--html", file,
		"list-append", "set-insert-ascending")
	if !strings.Contains(out, "list-append") || !strings.Contains(out, "set-insert-ascending") {
		t.Fatalf("unexpected console output:\n%s", out)
	}
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	base, err := report.ReadBaseline(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(base) != 2 {
		t.Fatalf("expected 2 baseline entries, have %v", base)
	}
	out = execute(t, "run", "--size", "300", "--rounds", "1", "--no-color", "--html", "",
		"--baseline", file, "list-append")
	if !strings.Contains(out, "vs base") {
		t.Fatalf("expected comparison column:\n%s", out)
	}
}
