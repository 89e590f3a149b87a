package lang

import (
	"log"
	"strconv"
)

// Interpreter walks a Program and collects its output. The zero value is
// ready to use.
type Interpreter struct {
	// Trace, when set, receives one line per executed statement.
	Trace *log.Logger
}

// Run executes prog with a fresh Environment and returns one output line per
// executed print statement. prog is not modified, so running the same Program
// twice yields the same output.
func (in *Interpreter) Run(prog *Program) ([]string, error) {
	env := NewEnvironment()
	var output []string
	if prog == nil {
		return output, nil
	}
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *VarDecl:
			// The initializer is evaluated before the name is bound, so a
			// declaration never sees itself.
			v, err := in.evalExpr(env, s.Init)
			if err != nil {
				return nil, err
			}
			if err := env.Define(s.Name, v); err != nil {
				return nil, err
			}
			in.tracef("let %s = %d", s.Name, v)
		case *PrintStmt:
			v, err := in.evalExpr(env, s.Expr)
			if err != nil {
				return nil, err
			}
			line := strconv.FormatInt(v, 10)
			output = append(output, line)
			in.tracef("print %s", line)
		default:
			return nil, runtimeErrorf("unknown statement type %T", stmt)
		}
	}
	return output, nil
}

func (in *Interpreter) evalExpr(env *Environment, expr Expr) (int64, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return e.Value, nil
	case *Identifier:
		return env.Get(e.Name)
	case *BinaryAdd:
		l, err := in.evalExpr(env, e.Left)
		if err != nil {
			return 0, err
		}
		r, err := in.evalExpr(env, e.Right)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	default:
		return 0, runtimeErrorf("unknown expression type %T", expr)
	}
}

func (in *Interpreter) tracef(format string, args ...any) {
	if in.Trace != nil {
		in.Trace.Printf(format, args...)
	}
}

// Run executes prog with a default Interpreter.
func Run(prog *Program) ([]string, error) {
	var in Interpreter
	return in.Run(prog)
}
