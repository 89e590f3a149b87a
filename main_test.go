package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFiles(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantCode   int
		wantStdout string
	}{
		{"Sum", "testdata/sum.mini", 0, "5\n15\n"},
		{"Redeclare", "testdata/redeclare.mini", 1, "Error: variable \"x\" already declared\n"},
		{"Chained Plus", "testdata/chain.mini", 1, "Error: line 1: expected \")\", found \"+\"\n"},
		{"Example", "examples/hello.mini", 0, "42\n100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{tt.file}, strings.NewReader(""), &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-"}, strings.NewReader("let a = 1; print(a + 1);"), &stdout, &stderr)
	if code != 0 || stdout.String() != "2\n" {
		t.Errorf("run(-) = %d, %q (stderr: %s)", code, stdout.String(), stderr.String())
	}
}

func TestRunTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-trace", "-"}, strings.NewReader("print(7);"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "trace: print 7") {
		t.Errorf("stderr = %q, want trace lines", stderr.String())
	}
}

func TestRunConfigTrace(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "minilang.yml")
	if err := os.WriteFile(cfgPath, []byte("trace: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, "-"}, strings.NewReader("let q = 3;"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "trace: let q = 3") {
		t.Errorf("stderr = %q, want trace lines", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing for a program without prints", stdout.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Too Many Files", []string{"a.mini", "b.mini"}},
		{"Unknown Flag", []string{"-nope"}},
		{"Missing File", []string{"testdata/does-not-exist.mini"}},
		{"Missing Config", []string{"-config", "testdata/none.yml", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, strings.NewReader(""), &stdout, &stderr); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}
