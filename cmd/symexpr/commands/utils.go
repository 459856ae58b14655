package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	gfn "github.com/panyam/goutils/fn"
	"github.com/panyam/symexpr/expr"
)

type binding struct {
	name  string
	value string
}

// splitBindings splits "name=value" flag values.
func splitBindings(pairs []string) ([]binding, error) {
	out := make([]binding, 0, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Newf("invalid binding %q: expected name=value", p)
		}
		out = append(out, binding{name: name, value: strings.TrimSpace(value)})
	}
	return out, nil
}

// parseValues turns "name=int" pairs into an evaluation binding.
func parseValues(pairs []string) (expr.Values, error) {
	bindings, err := splitBindings(pairs)
	if err != nil {
		return nil, err
	}
	values := expr.Values{}
	for _, b := range bindings {
		n, err := strconv.ParseInt(b.value, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for %q", b.name)
		}
		values[b.name] = n
	}
	return values, nil
}

// parseReplacements turns "name=<int|sample>" pairs into a substitution
// binding. Integers become constants, anything else names a sample tree.
func parseReplacements(pairs []string) (expr.Replacements, error) {
	bindings, err := splitBindings(pairs)
	if err != nil {
		return nil, err
	}
	repl := expr.Replacements{}
	for _, b := range bindings {
		if n, err := strconv.ParseInt(b.value, 10, 64); err == nil {
			repl[b.name] = expr.NewConstant(n)
			continue
		}
		e, err := lookupSample(b.value)
		if err != nil {
			return nil, errors.Wrapf(err, "replacement for %q", b.name)
		}
		repl[b.name] = e
	}
	return repl, nil
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(gfn.Map(names, strconv.Quote), ", ")
}
