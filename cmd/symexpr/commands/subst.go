package commands

import (
	"github.com/panyam/symexpr/expr"
	"github.com/panyam/symexpr/logger"
	"github.com/spf13/cobra"
)

func newSubstCmd() *cobra.Command {
	var withs []string
	var infix bool
	cmd := &cobra.Command{
		Use:   "subst <expression>",
		Short: "Replaces variables with other expressions and prints the result",
		Long: `The subst command replaces variables of a catalogue expression. Each
--with name=X replaces variable name by X, where X is an integer or the name of
another catalogue expression. Variables without a replacement are kept. The
result is printed in postfix form unless --infix is given.`,
		Example: "  symexpr subst shifted --with a=two",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := lookupSample(args[0])
			if err != nil {
				return err
			}
			repl, err := parseReplacements(withs)
			if err != nil {
				return err
			}
			out := expr.Substitute(root, repl)
			logger.Info("substituted %d variable(s) in %s", len(repl), args[0])
			if infix {
				resultColor.Fprintln(cmd.OutOrStdout(), out.String())
			} else {
				resultColor.Fprintln(cmd.OutOrStdout(), expr.Postfix(out))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&withs, "with", "w", nil, "Replacement as name=<int|expression> (repeatable)")
	cmd.Flags().BoolVar(&infix, "infix", false, "Print the result as infix text")
	return cmd
}
