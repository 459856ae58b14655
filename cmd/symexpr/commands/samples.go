package commands

import (
	"sort"

	"github.com/cockroachdb/errors"
	gfn "github.com/panyam/goutils/fn"
	"github.com/panyam/symexpr/expr"
)

// samples is the catalogue of trees the CLI works on. Trees are built in
// code; there is no expression parser.
var samples = map[string]func() expr.Expr{
	// 12 + a * b
	"demo": func() expr.Expr {
		return expr.NewSum(expr.NewConstant(12),
			expr.NewProduct(expr.NewVariable("a"), expr.NewVariable("b")))
	},
	// 12 + a
	"shifted": func() expr.Expr {
		return expr.NewSum(expr.NewConstant(12), expr.NewVariable("a"))
	},
	// (a + b) * (a + b)
	"square": func() expr.Expr {
		return expr.NewProduct(
			expr.NewSum(expr.NewVariable("a"), expr.NewVariable("b")),
			expr.NewSum(expr.NewVariable("a"), expr.NewVariable("b")))
	},
	// 1 + 1
	"two": func() expr.Expr {
		return expr.NewSum(expr.NewConstant(1), expr.NewConstant(1))
	},
	// 2 * x + 3 * y + 7
	"linear": func() expr.Expr {
		return expr.NewSum(
			expr.NewSum(
				expr.NewProduct(expr.NewConstant(2), expr.NewVariable("x")),
				expr.NewProduct(expr.NewConstant(3), expr.NewVariable("y"))),
			expr.NewConstant(7))
	},
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupSample(name string) (expr.Expr, error) {
	build, ok := samples[name]
	if !ok {
		return nil, errors.Newf("unknown expression %q (known: %v)", name, sampleNames())
	}
	return build(), nil
}

func lookupSamples(names []string) ([]expr.Expr, error) {
	out := make([]expr.Expr, 0, len(names))
	for _, name := range names {
		e, err := lookupSample(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func describeSamples() []string {
	return gfn.Map(sampleNames(), func(name string) string {
		return name + "\t" + samples[name]().String()
	})
}
