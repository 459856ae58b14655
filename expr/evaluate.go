package expr

import (
	"maps"

	"github.com/panyam/symexpr/logger"
)

// Evaluate computes the integer value of root against values.
// If any variable in the tree is missing from values the whole evaluation
// fails with an error matching ErrUnboundVariable; no partial result is
// returned.
func Evaluate(root Expr, values Values) (int64, error) {
	return NewEvaluator(values).Eval(root)
}

// Evaluator is the Visitor behind Evaluate. It walks the tree through
// Accept, combining the partial results of Sum and Product children.
// Once a variable fails to resolve the remaining nodes are skipped.
type Evaluator struct {
	values Values
	result int64
	err    error
}

var _ Visitor = (*Evaluator)(nil)

// NewEvaluator copies values so later changes by the caller do not affect
// the evaluator.
func NewEvaluator(values Values) *Evaluator {
	return &Evaluator{values: maps.Clone(values)}
}

// Eval evaluates root with the evaluator's binding. The evaluator can be
// reused for several roots.
func (e *Evaluator) Eval(root Expr) (int64, error) {
	e.result, e.err = 0, nil
	root.Accept(e)
	if e.err != nil {
		logger.Debug("evaluate %s: %v", root, e.err)
		return 0, e.err
	}
	return e.result, nil
}

func (e *Evaluator) VisitConstant(c *Constant) {
	e.result = c.Value()
}

func (e *Evaluator) VisitVariable(v *Variable) {
	value, ok := e.values[v.Name()]
	if !ok {
		e.err = unboundVariable(v.Name())
		return
	}
	e.result = value
}

func (e *Evaluator) VisitSum(s *Sum) {
	if l, r, ok := e.children(&s.binaryNode); ok {
		e.result = l + r
	}
}

func (e *Evaluator) VisitProduct(p *Product) {
	if l, r, ok := e.children(&p.binaryNode); ok {
		e.result = l * r
	}
}

// children evaluates left then right, stopping at the first failure.
func (e *Evaluator) children(b *binaryNode) (l, r int64, ok bool) {
	b.Left().Accept(e)
	if e.err != nil {
		return 0, 0, false
	}
	l = e.result
	b.Right().Accept(e)
	if e.err != nil {
		return 0, 0, false
	}
	return l, e.result, true
}
