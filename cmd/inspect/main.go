package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"minilang/pkg/lang"
	"minilang/pkg/utils"
)

const sampleSource = `let x = 2 + 3;
print(x);
`

func main() {
	asYAML := flag.Bool("yaml", false, "print the AST as YAML instead of node strings")
	flag.Parse()

	src := sampleSource
	if flag.NArg() > 0 {
		data, _, err := utils.ReadSource(flag.Arg(0), os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = data
	}

	if err := inspect(os.Stdout, src, *asYAML); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inspect prints every pipeline stage for src, stopping at the first failure.
func inspect(w io.Writer, src string, asYAML bool) error {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	tokens := lang.Scan(src)
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
	fmt.Fprintln(w)

	prog, err := lang.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Fprintln(w, "AST")
	if asYAML {
		data, err := yaml.Marshal(lang.Tree(prog))
		if err != nil {
			return fmt.Errorf("encode AST: %w", err)
		}
		w.Write(data)
	} else {
		for _, s := range prog.Statements {
			fmt.Fprintln(w, " ", s)
		}
	}
	fmt.Fprintln(w)

	out, err := lang.Run(prog)
	if err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}
	fmt.Fprintln(w, "Output")
	for _, line := range out {
		fmt.Fprintln(w, " ", line)
	}
	return nil
}
