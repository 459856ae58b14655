package expr

import (
	"strconv"
	"strings"
)

// Postfix renders root as space separated tokens in reverse Polish order:
// both operands, then the operator. "12 + a * b" becomes "12 a b * +".
func Postfix(root Expr) string {
	w := &PostfixWriter{}
	root.Accept(w)
	return w.String()
}

// PostfixWriter collects postfix tokens as it walks a tree.
type PostfixWriter struct {
	tokens []string
}

var _ Visitor = (*PostfixWriter)(nil)

// Tokens returns the tokens collected so far.
func (w *PostfixWriter) Tokens() []string { return w.tokens }

func (w *PostfixWriter) String() string { return strings.Join(w.tokens, " ") }

func (w *PostfixWriter) VisitConstant(c *Constant) {
	w.tokens = append(w.tokens, strconv.FormatInt(c.Value(), 10))
}

func (w *PostfixWriter) VisitVariable(v *Variable) {
	w.tokens = append(w.tokens, v.Name())
}

func (w *PostfixWriter) VisitSum(s *Sum) {
	s.Left().Accept(w)
	s.Right().Accept(w)
	w.tokens = append(w.tokens, SumOp)
}

func (w *PostfixWriter) VisitProduct(p *Product) {
	p.Left().Accept(w)
	p.Right().Accept(w)
	w.tokens = append(w.tokens, ProductOp)
}

// Prefix renders root in Polish order: the operator, then both operands.
func Prefix(root Expr) string {
	w := &prefixWriter{}
	root.Accept(w)
	return strings.Join(w.tokens, " ")
}

type prefixWriter struct {
	tokens []string
}

func (w *prefixWriter) VisitConstant(c *Constant) { w.tokens = append(w.tokens, c.String()) }
func (w *prefixWriter) VisitVariable(v *Variable) { w.tokens = append(w.tokens, v.Name()) }

func (w *prefixWriter) VisitSum(s *Sum) {
	w.tokens = append(w.tokens, SumOp)
	s.Left().Accept(w)
	s.Right().Accept(w)
}

func (w *prefixWriter) VisitProduct(p *Product) {
	w.tokens = append(w.tokens, ProductOp)
	p.Left().Accept(w)
	p.Right().Accept(w)
}
