package expr

// Visitor has one handler per node kind. Handlers receive the node itself
// and must not modify it.
//
// Accept never recurses on its own. A handler for Sum or Product that needs
// the children calls Accept on Left() and Right() itself, in whatever order
// its traversal requires.
type Visitor interface {
	VisitConstant(c *Constant)
	VisitVariable(v *Variable)
	VisitSum(s *Sum)
	VisitProduct(p *Product)
}
