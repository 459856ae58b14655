package expr

import (
	"strconv"
)

// Precedence describes how tightly an expression binds when rendered as
// infix text.
type Precedence int

const (
	SumPrecedence Precedence = iota
	ProductPrecedence
	AtomicPrecedence
)

// Expr is a node in an arithmetic expression tree.
//
// The set of node kinds is closed (Constant, Variable, Sum, Product), while
// the set of operations over them is open: new whole-tree operations are
// added by implementing Visitor rather than by adding methods here.
//
// Trees are immutable once built. Sum and Product exclusively own their
// children, so a tree never shares nodes with another tree and never
// contains cycles.
type Expr interface {
	// Evaluate computes the value of the expression with every variable
	// looked up in values. Children are evaluated left before right and the
	// first failure is returned.
	Evaluate(values Values) (int64, error)

	// Accept dispatches to the visitor method for the concrete node kind.
	// It does not recurse; visitors walk children themselves.
	Accept(v Visitor)

	// Clone returns a deep copy that shares no nodes with the receiver.
	Clone() Expr

	// Precedence returns the binding strength of the node's outermost
	// operator.
	Precedence() Precedence

	// String renders the expression as infix text.
	String() string

	exprNode()
}

// Values binds variable names to integers for evaluation.
type Values map[string]int64

// Replacements binds variable names to the expressions that replace them
// during substitution. The bound expressions are only read.
type Replacements map[string]Expr

// --- Leaves ---

// Constant is an integer literal.
type Constant struct {
	value int64
}

func NewConstant(value int64) *Constant {
	return &Constant{value: value}
}

func (c *Constant) Value() int64 { return c.value }

func (c *Constant) Evaluate(Values) (int64, error) { return c.value, nil }
func (c *Constant) Accept(v Visitor)               { v.VisitConstant(c) }
func (c *Constant) Clone() Expr                    { return &Constant{value: c.value} }
func (c *Constant) Precedence() Precedence         { return AtomicPrecedence }
func (c *Constant) String() string                 { return strconv.FormatInt(c.value, 10) }
func (c *Constant) exprNode()                      {}

// Variable is a named placeholder resolved against a binding.
// Any name, including the empty string, is accepted.
type Variable struct {
	name string
}

func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) Evaluate(values Values) (int64, error) {
	value, ok := values[v.name]
	if !ok {
		return 0, unboundVariable(v.name)
	}
	return value, nil
}

func (v *Variable) Accept(vis Visitor)     { vis.VisitVariable(v) }
func (v *Variable) Clone() Expr            { return &Variable{name: v.name} }
func (v *Variable) Precedence() Precedence { return AtomicPrecedence }
func (v *Variable) String() string         { return v.name }
func (v *Variable) exprNode()              {}

// --- Binary nodes ---

// binaryNode holds the two owned children shared by Sum and Product.
type binaryNode struct {
	left  Expr
	right Expr
}

func newBinaryNode(kind string, left, right Expr) binaryNode {
	if left == nil || right == nil {
		panic(kind + ": nil child expression")
	}
	return binaryNode{left: left, right: right}
}

func (b *binaryNode) Left() Expr  { return b.left }
func (b *binaryNode) Right() Expr { return b.right }

func (b *binaryNode) evaluateChildren(values Values) (int64, int64, error) {
	l, err := b.left.Evaluate(values)
	if err != nil {
		return 0, 0, err
	}
	r, err := b.right.Evaluate(values)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func (b *binaryNode) cloneChildren() binaryNode {
	return binaryNode{left: b.left.Clone(), right: b.right.Clone()}
}

// infix renders "left op right", wrapping a child in parentheses when it
// binds no tighter than the parent so that the tree shape stays visible.
func (b *binaryNode) infix(op string, prec Precedence) string {
	left := b.left.String()
	right := b.right.String()
	if b.left.Precedence() <= prec {
		left = "(" + left + ")"
	}
	if b.right.Precedence() <= prec {
		right = "(" + right + ")"
	}
	return left + " " + op + " " + right
}

const (
	SumOp     = "+"
	ProductOp = "*"
)

// Sum is left + right.
type Sum struct {
	binaryNode
}

// NewSum takes ownership of left and right. Both must be non-nil.
func NewSum(left, right Expr) *Sum {
	return &Sum{binaryNode: newBinaryNode("sum", left, right)}
}

func (s *Sum) Evaluate(values Values) (int64, error) {
	l, r, err := s.evaluateChildren(values)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}

func (s *Sum) Accept(v Visitor)       { v.VisitSum(s) }
func (s *Sum) Clone() Expr            { return &Sum{binaryNode: s.cloneChildren()} }
func (s *Sum) Precedence() Precedence { return SumPrecedence }
func (s *Sum) String() string         { return s.infix(SumOp, SumPrecedence) }
func (s *Sum) exprNode()              {}

// Product is left * right.
type Product struct {
	binaryNode
}

// NewProduct takes ownership of left and right. Both must be non-nil.
func NewProduct(left, right Expr) *Product {
	return &Product{binaryNode: newBinaryNode("product", left, right)}
}

func (p *Product) Evaluate(values Values) (int64, error) {
	l, r, err := p.evaluateChildren(values)
	if err != nil {
		return 0, err
	}
	return l * r, nil
}

func (p *Product) Accept(v Visitor)       { v.VisitProduct(p) }
func (p *Product) Clone() Expr            { return &Product{binaryNode: p.cloneChildren()} }
func (p *Product) Precedence() Precedence { return ProductPrecedence }
func (p *Product) String() string         { return p.infix(ProductOp, ProductPrecedence) }
func (p *Product) exprNode()              {}
