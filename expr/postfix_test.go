package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPostfix(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{NewConstant(12), "12"},
		{NewVariable("a"), "a"},
		{demoTree(), "12 a b * +"},
		{NewProduct(NewSum(NewConstant(1), NewConstant(-1)), NewVariable("a")), "1 -1 + a *"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Postfix(tt.expr))
	}
}

func TestPostfixWriterTokens(t *testing.T) {
	w := &PostfixWriter{}
	demoTree().Accept(w)
	want := []string{"12", "a", "b", "*", "+"}
	if diff := cmp.Diff(want, w.Tokens()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "12 a b * +", w.String())
}

func TestPostfixOfClone(t *testing.T) {
	for _, tree := range randomTrees(3, 100, 6) {
		assert.Equal(t, Postfix(tree), Postfix(tree.Clone()))
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "+ 12 * a b", Prefix(demoTree()))
	assert.Equal(t, "x", Prefix(NewVariable("x")))
	assert.Equal(t, "* + 1 1 a", Prefix(NewProduct(NewSum(NewConstant(1), NewConstant(1)), NewVariable("a"))))
}
