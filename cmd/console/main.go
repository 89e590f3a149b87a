package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"minilang/pkg/config"
	"minilang/pkg/lang"
)

const continuationPrompt = "... "

func main() {
	configPath := flag.String("config", "", "path to minilang.yml")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := repl(os.Stdin, os.Stdout, cfg); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}

// repl reads lines from r until EOF or :quit, writing prompts and results to w.
func repl(r io.Reader, w io.Writer, cfg *config.Config) error {
	var session Session
	if cfg.Trace {
		session.interp.Trace = log.New(w, "trace: ", 0)
	}

	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, cfg.Console.Prompt)
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":reset":
			session.Reset()
		case ":source":
			if src := session.Source(); src != "" {
				fmt.Fprintln(w, src)
			}
		default:
			out, _, err := session.Submit(line)
			if err != nil {
				fmt.Fprintln(w, lang.FormatResult(nil, err))
			}
			for _, o := range out {
				fmt.Fprintln(w, o)
			}
		}
		if session.Pending() {
			fmt.Fprint(w, continuationPrompt)
		} else {
			fmt.Fprint(w, cfg.Console.Prompt)
		}
	}
	return scanner.Err()
}
