// Package ast defines the typed AST built by the parser and walked by the
// analyzer and codegen. Every node carries a unique, monotonically
// assigned id (spec §3) so side tables (inferred_types, declared_array_types)
// can key on identity without hashing node contents.
package ast

import (
	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

// Node is any AST node.
type Node interface {
	NodeID() int
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

type Base struct{ ID int }

func (b Base) NodeID() int { return b.ID }

// ---- Expressions ----

type IntLit struct {
	Base
	Tok token.Token
}

type FloatLit struct {
	Base
	Tok token.Token
}

type StringLit struct {
	Base
	Tok token.Token
}

type ByteStringLit struct {
	Base
	Tok token.Token
}

type Identifier struct {
	Base
	Tok token.Token
}

type Binary struct {
	Base
	Op          token.Token
	Left, Right Expr
}

type Assign struct {
	Base
	Left, Right Expr
}

type FnCall struct {
	Base
	Callee Expr
	Args   []Expr
}

type MagicFnCall struct {
	Base
	Name token.Token
	Args []Expr
}

type MemberAccess struct {
	Base
	Left   Expr
	Member token.Token
}

type ScopeResolution struct {
	Base
	Left  Expr
	Field token.Token
}

// StructField is one `name: value` pair inside a struct-literal expression.
type StructField struct {
	Name  token.Token
	Value Expr
}

type StructLit struct {
	Base
	Callee token.Token
	Fields []StructField
}

type ArrayLit struct {
	Base
	Elements []Expr
}

type RangeExclusive struct {
	Base
	Start, End Expr
}

type RangeInclusive struct {
	Base
	Start, End Expr
}

type AddressOf struct {
	Base
	Operand Expr
}

type MutableAddressOf struct {
	Base
	Operand Expr
}

type Deref struct {
	Base
	Operand Expr
}

func (*IntLit) exprNode()           {}
func (*FloatLit) exprNode()         {}
func (*StringLit) exprNode()        {}
func (*ByteStringLit) exprNode()    {}
func (*Identifier) exprNode()       {}
func (*Binary) exprNode()           {}
func (*Assign) exprNode()           {}
func (*FnCall) exprNode()           {}
func (*MagicFnCall) exprNode()      {}
func (*MemberAccess) exprNode()     {}
func (*ScopeResolution) exprNode()  {}
func (*StructLit) exprNode()        {}
func (*ArrayLit) exprNode()         {}
func (*RangeExclusive) exprNode()   {}
func (*RangeInclusive) exprNode()   {}
func (*AddressOf) exprNode()        {}
func (*MutableAddressOf) exprNode() {}
func (*Deref) exprNode()            {}

// ---- Statements ----

// Param is one function/method parameter. Ako is true for the reserved
// `ako` self-parameter (spec §4.3); its Type is toltype.AkoType{} until the
// analyzer resolves it to a mutable pointer to the enclosing record type.
type Param struct {
	Name token.Token
	Type toltype.Type
	Ako  bool
}

type Block struct {
	Base
	Statements []Stmt
}

type Par struct {
	Base
	Name       token.Token
	Params     []Param
	ReturnType toltype.Type
	Body       *Block
}

type Method struct {
	Base
	Name       token.Token
	Params     []Param
	ReturnType toltype.Type
	Body       *Block
	IsStatic   bool
}

type Ang struct {
	Base
	Mutable      bool
	Name         token.Token
	DeclaredType toltype.Type // nil when omitted ("infer from rhs")
	Rhs          Expr
}

type Ibalik struct {
	Base
	Rhs Expr // nil for bare `ibalik;`
}

type ExprStmt struct {
	Base
	X Expr
}

// Field is one `name: type` member of a bagay declaration.
type Field struct {
	Name token.Token
	Type toltype.Type
}

type BagayDecl struct {
	Base
	Name   token.Token
	Fields []Field
}

type ItupadDecl struct {
	Base
	ForType token.Token
	Methods []*Method
}

// CondBranch is one `kung`/`kungdi`/`kungwala` arm. Cond is nil for the
// final kungwala branch.
type CondBranch struct {
	Cond Expr
	Body *Block
}

type Kung struct {
	Base
	Branches []CondBranch
}

type SaStmt struct {
	Base
	Iter Expr
	Bind token.Token
	Body *Block
}

type Program struct {
	Base
	Statements []Stmt
}

func (*Par) stmtNode()        {}
func (*Method) stmtNode()     {}
func (*Ang) stmtNode()        {}
func (*Ibalik) stmtNode()     {}
func (*ExprStmt) stmtNode()   {}
func (*BagayDecl) stmtNode()  {}
func (*ItupadDecl) stmtNode() {}
func (*Kung) stmtNode()       {}
func (*SaStmt) stmtNode()     {}
func (*Block) stmtNode()      {}
func (*Program) stmtNode()    {}
