package expr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitutePostfix(t *testing.T) {
	tree := NewSum(NewConstant(12), NewVariable("a"))
	two := NewSum(NewConstant(1), NewConstant(1))

	out := Substitute(tree, Replacements{"a": two})
	assert.Equal(t, "12 1 1 + +", Postfix(out))

	// inputs are untouched and unshared
	assert.Equal(t, "12 a +", Postfix(tree))
	assert.Equal(t, "1 1 +", Postfix(two))
	assertNoSharedNodes(t, tree, out)
	assertNoSharedNodes(t, two, out)
}

func TestSubstituteUnboundVariable(t *testing.T) {
	z := NewVariable("z")
	out := Substitute(z, Replacements{})
	assert.True(t, Equal(z, out))
	assert.NotSame(t, z, out)

	out = Substitute(demoTree(), Replacements{"a": NewConstant(5)})
	assert.Equal(t, "12 + 5 * b", out.String())
}

func TestSubstituteNilReplacementKeepsVariable(t *testing.T) {
	out := Substitute(NewVariable("a"), Replacements{"a": nil})
	assert.True(t, Equal(NewVariable("a"), out))
}

func TestSubstituteSameBindingTwice(t *testing.T) {
	square := NewProduct(NewVariable("a"), NewVariable("a"))
	bound := NewSum(NewVariable("x"), NewConstant(1))

	out := Substitute(square, Replacements{"a": bound})
	assert.Equal(t, "(x + 1) * (x + 1)", out.String())

	p, ok := out.(*Product)
	require.True(t, ok)
	assertNoSharedNodes(t, p.Left(), p.Right())
}

func TestSubstituteEmptyBindingIsClone(t *testing.T) {
	for _, tree := range randomTrees(7, 100, 5) {
		out := Substitute(tree, nil)
		assert.True(t, Equal(tree.Clone(), out), "tree %s became %s", tree, out)
		assertNoSharedNodes(t, tree, out)
	}
}

func TestSubstituteThenEvaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	constGen := &Generator{MaxConst: 5}

	// every variable maps to a constant-only tree
	repl := Replacements{}
	values := Values{}
	for _, name := range testVarNames {
		b := constGen.Generate(rng, 3)
		require.Empty(t, Variables(b))
		n, err := Evaluate(b, nil)
		require.NoError(t, err)
		repl[name] = b
		values[name] = n
	}

	for _, tree := range randomTrees(100, 150, 5) {
		want, err := Evaluate(tree, values)
		require.NoError(t, err)
		got, err := Evaluate(Substitute(tree, repl), Values{})
		require.NoError(t, err, "tree %s", tree)
		assert.Equal(t, want, got, "tree %s", tree)
	}
}
