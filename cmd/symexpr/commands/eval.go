package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/panyam/symexpr/expr"
	"github.com/panyam/symexpr/logger"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluates an expression with the given variable values",
		Long: `The eval command evaluates a catalogue expression. Every variable in the
expression needs a value, given as --set name=int. A missing value fails the
whole evaluation.`,
		Example: "  symexpr eval demo --set a=2 --set b=10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := lookupSample(args[0])
			if err != nil {
				return err
			}
			values, err := parseValues(sets)
			if err != nil {
				return err
			}
			logger.Debug("evaluating %s with %v", root, values)
			result, err := expr.Evaluate(root, values)
			if errors.Is(err, expr.ErrUnboundVariable) {
				return errors.Wrapf(err, "missing variable in %s", root)
			} else if err != nil {
				return err
			}
			resultColor.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Variable value as name=int (repeatable)")
	return cmd
}
