package expr

import (
	"math/rand"
)

// DefaultMaxConst bounds generated constants when Generator.MaxConst is 0.
const DefaultMaxConst = 10

// A Generator builds random expression trees, mostly for tests.
type Generator struct {
	// MaxConst bounds constants to [-MaxConst, MaxConst].
	// If this is 0, DefaultMaxConst is used.
	MaxConst int64

	// VarNames lists the variable names leaves may use.
	// If empty, only constants are generated.
	VarNames []string
}

// Generate returns a random tree no deeper than maxDepth+1 nodes.
// If maxDepth is 0 the result is a single leaf.
func (g *Generator) Generate(rng *rand.Rand, maxDepth int) Expr {
	if maxDepth <= 0 || rng.Intn(maxDepth+1) == 0 {
		return g.randomLeaf(rng)
	}
	left := g.Generate(rng, maxDepth-1)
	right := g.Generate(rng, maxDepth-1)
	if rng.Intn(2) == 0 {
		return NewSum(left, right)
	}
	return NewProduct(left, right)
}

func (g *Generator) randomLeaf(rng *rand.Rand) Expr {
	if len(g.VarNames) > 0 && rng.Intn(2) == 0 {
		return NewVariable(g.VarNames[rng.Intn(len(g.VarNames))])
	}
	m := g.MaxConst
	if m <= 0 {
		m = DefaultMaxConst
	}
	return NewConstant(rng.Int63n(2*m+1) - m)
}
