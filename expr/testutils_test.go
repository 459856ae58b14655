package expr

import (
	"math/rand"
	"testing"
)

// demoTree builds 12 + a * b.
func demoTree() Expr {
	return NewSum(NewConstant(12), NewProduct(NewVariable("a"), NewVariable("b")))
}

// nodeCollector records every node pointer in a tree, pre-order.
type nodeCollector struct {
	nodes []Expr
}

func (c *nodeCollector) VisitConstant(n *Constant) { c.nodes = append(c.nodes, n) }
func (c *nodeCollector) VisitVariable(n *Variable) { c.nodes = append(c.nodes, n) }

func (c *nodeCollector) VisitSum(n *Sum) {
	c.nodes = append(c.nodes, n)
	n.Left().Accept(c)
	n.Right().Accept(c)
}

func (c *nodeCollector) VisitProduct(n *Product) {
	c.nodes = append(c.nodes, n)
	n.Left().Accept(c)
	n.Right().Accept(c)
}

func collectNodes(e Expr) []Expr {
	c := &nodeCollector{}
	e.Accept(c)
	return c.nodes
}

// assertNoSharedNodes fails if any node of b is also a node of a.
func assertNoSharedNodes(t *testing.T, a, b Expr) {
	t.Helper()
	seen := map[Expr]bool{}
	for _, n := range collectNodes(a) {
		seen[n] = true
	}
	for _, n := range collectNodes(b) {
		if seen[n] {
			t.Fatalf("node %p (%s) is shared between %s and %s", n, n, a, b)
		}
	}
}

// referenceEval computes the value of e directly, without Evaluate or
// visitors, so it can be used as an oracle.
func referenceEval(e Expr, values Values) (int64, bool) {
	switch n := e.(type) {
	case *Constant:
		return n.Value(), true
	case *Variable:
		v, ok := values[n.Name()]
		return v, ok
	case *Sum:
		l, lok := referenceEval(n.Left(), values)
		r, rok := referenceEval(n.Right(), values)
		return l + r, lok && rok
	case *Product:
		l, lok := referenceEval(n.Left(), values)
		r, rok := referenceEval(n.Right(), values)
		return l * r, lok && rok
	}
	panic("unknown node")
}

var testVarNames = []string{"a", "b", "c", "x", "y"}

func randomTrees(seed int64, count, maxDepth int) []Expr {
	rng := rand.New(rand.NewSource(seed))
	g := &Generator{VarNames: testVarNames}
	out := make([]Expr, count)
	for i := range out {
		out[i] = g.Generate(rng, maxDepth)
	}
	return out
}
