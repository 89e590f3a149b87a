//go:build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"minilang/pkg/config"
	"minilang/pkg/lang"
	"minilang/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one script and returns the process exit code:
// 0 on success, 1 when the program fails, 2 for usage, config or I/O errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minilang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to minilang.yml (default: ./minilang.yml when present)")
	trace := fs.Bool("trace", false, "log every executed statement to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: minilang [-config file] [-trace] [file|-]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "expected at most one source file")
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 2
	}

	src, name, err := utils.ReadSource(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read source: %v\n", err)
		return 2
	}

	var in lang.Interpreter
	if *trace || cfg.Trace {
		in.Trace = log.New(stderr, "trace: ", 0)
		in.Trace.Printf("running %s", name)
	}

	out, err := in.Execute(src)
	if err != nil {
		fmt.Fprintln(stdout, lang.FormatResult(nil, err))
		return 1
	}
	for _, line := range out {
		fmt.Fprintln(stdout, line)
	}
	return 0
}
