package lang

import "fmt"

// Tree converts prog into nested maps and slices suitable for generic
// encoders (YAML, JSON). Each node is a single-key map naming its kind.
func Tree(prog *Program) []any {
	nodes := make([]any, 0, len(prog.Statements))
	for _, s := range prog.Statements {
		nodes = append(nodes, stmtTree(s))
	}
	return nodes
}

func stmtTree(s Stmt) any {
	switch s := s.(type) {
	case *VarDecl:
		return map[string]any{"let": map[string]any{"name": s.Name, "init": exprTree(s.Init)}}
	case *PrintStmt:
		return map[string]any{"print": exprTree(s.Expr)}
	default:
		return map[string]any{"unknown": fmt.Sprintf("%T", s)}
	}
}

func exprTree(e Expr) any {
	switch e := e.(type) {
	case *NumberLit:
		return map[string]any{"number": e.Value}
	case *Identifier:
		return map[string]any{"ident": e.Name}
	case *BinaryAdd:
		return map[string]any{"add": []any{exprTree(e.Left), exprTree(e.Right)}}
	default:
		return map[string]any{"unknown": fmt.Sprintf("%T", e)}
	}
}
