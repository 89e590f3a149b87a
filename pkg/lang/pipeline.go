package lang

import "strings"

// Execute runs src through Scan, Parse and Run. The first failing stage aborts
// the rest and its error is returned unchanged.
func Execute(src string) ([]string, error) {
	var in Interpreter
	return in.Execute(src)
}

// Execute runs src like the package-level Execute but evaluates with in.
func (in *Interpreter) Execute(src string) ([]string, error) {
	prog, err := Parse(Scan(src))
	if err != nil {
		return nil, err
	}
	return in.Run(prog)
}

// Report renders the outcome of running src for display: the output lines
// joined by newlines, or "Error: <message>" when any stage fails.
func Report(src string) string {
	out, err := Execute(src)
	return FormatResult(out, err)
}

// FormatResult renders an Execute result the way Report does.
func FormatResult(output []string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return strings.Join(output, "\n")
}
