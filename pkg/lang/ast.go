package lang

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
// The unexported marker keeps the set of expressions closed to this package.
type Expr interface {
	exprNode()
	String() string
}

// NumberLit is an integer constant.
//
//	let x = 10;
//	        ^^  NumberLit{Value: 10}
type NumberLit struct {
	Value int64
}

func (*NumberLit) exprNode()        {}
func (n *NumberLit) String() string { return fmt.Sprintf("%d", n.Value) }

// Identifier is a read of a named variable.
//
//	print(x);
//	      ^  Identifier{Name: "x"}
type Identifier struct {
	Name string
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// BinaryAdd is Left + Right. Addition is the only operator in the language.
//
//	x + 1
//	^   ^
//	|   Right
//	Left
type BinaryAdd struct {
	Left  Expr
	Right Expr
}

func (*BinaryAdd) exprNode() {}
func (b *BinaryAdd) String() string {
	return fmt.Sprintf("(%s + %s)", b.Left, b.Right)
}

//  Statement nodes

// Stmt is implemented by every top-level statement.
type Stmt interface {
	stmtNode()
	String() string
}

// VarDecl represents  let name = expr;
type VarDecl struct {
	Name string
	Init Expr
}

func (*VarDecl) stmtNode() {}
func (d *VarDecl) String() string {
	return fmt.Sprintf("VarDecl(%s = %s)", d.Name, d.Init)
}

// PrintStmt represents  print(expr);
type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}
func (p *PrintStmt) String() string {
	return fmt.Sprintf("PrintStmt(%s)", p.Expr)
}

// Program is the ordered list of statements produced by Parse.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
