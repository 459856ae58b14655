package expr

import (
	"github.com/panyam/symexpr/logger"
)

// Substitute returns a new tree in which every variable bound in repl is
// replaced by a deep copy of its expression. Variables without a binding
// are kept as they are, so Substitute never fails.
//
// Neither root nor the expressions in repl are modified, and the result
// shares no nodes with them.
func Substitute(root Expr, repl Replacements) Expr {
	s := &Substituter{repl: repl}
	root.Accept(s)
	if s.result == nil {
		panic("substitute: visitor produced no expression")
	}
	logger.Debug("substitute %s => %s", root, s.result)
	return s.result
}

// Substituter rebuilds a tree bottom-up: children first, left before
// right, then a fresh parent node owning the rebuilt children.
type Substituter struct {
	repl   Replacements
	result Expr
}

var _ Visitor = (*Substituter)(nil)

func (s *Substituter) VisitConstant(c *Constant) {
	s.result = c.Clone()
}

func (s *Substituter) VisitVariable(v *Variable) {
	if bound, ok := s.repl[v.Name()]; ok && bound != nil {
		s.result = bound.Clone()
		return
	}
	s.result = v.Clone()
}

func (s *Substituter) VisitSum(sum *Sum) {
	left, right := s.children(&sum.binaryNode)
	s.result = NewSum(left, right)
}

func (s *Substituter) VisitProduct(p *Product) {
	left, right := s.children(&p.binaryNode)
	s.result = NewProduct(left, right)
}

func (s *Substituter) children(b *binaryNode) (Expr, Expr) {
	b.Left().Accept(s)
	left := s.take()
	b.Right().Accept(s)
	return left, s.take()
}

func (s *Substituter) take() Expr {
	out := s.result
	s.result = nil
	return out
}
