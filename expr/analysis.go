package expr

// Variables returns the distinct variable names in root, in the order they
// are first met walking left to right.
func Variables(root Expr) []string {
	c := &varCollector{seen: map[string]bool{}}
	root.Accept(c)
	return c.names
}

type varCollector struct {
	seen  map[string]bool
	names []string
}

func (c *varCollector) VisitConstant(*Constant) {}

func (c *varCollector) VisitVariable(v *Variable) {
	if !c.seen[v.Name()] {
		c.seen[v.Name()] = true
		c.names = append(c.names, v.Name())
	}
}

func (c *varCollector) VisitSum(s *Sum) {
	s.Left().Accept(c)
	s.Right().Accept(c)
}

func (c *varCollector) VisitProduct(p *Product) {
	p.Left().Accept(c)
	p.Right().Accept(c)
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// A lone leaf has depth 1.
func Depth(root Expr) int {
	d := &depthCounter{}
	root.Accept(d)
	return d.depth
}

type depthCounter struct {
	depth int
}

func (d *depthCounter) VisitConstant(*Constant) { d.depth = 1 }
func (d *depthCounter) VisitVariable(*Variable) { d.depth = 1 }
func (d *depthCounter) VisitSum(s *Sum)         { d.binary(&s.binaryNode) }
func (d *depthCounter) VisitProduct(p *Product) { d.binary(&p.binaryNode) }

func (d *depthCounter) binary(b *binaryNode) {
	b.Left().Accept(d)
	left := d.depth
	b.Right().Accept(d)
	d.depth = 1 + max(left, d.depth)
}

// Equal reports whether a and b have the same shape with the same constants
// and variable names at every position.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value() == y.Value()
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name() == y.Name()
	case *Sum:
		y, ok := b.(*Sum)
		return ok && Equal(x.Left(), y.Left()) && Equal(x.Right(), y.Right())
	case *Product:
		y, ok := b.(*Product)
		return ok && Equal(x.Left(), y.Left()) && Equal(x.Right(), y.Right())
	}
	return a == nil && b == nil
}
