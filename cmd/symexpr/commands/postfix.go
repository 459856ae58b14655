package commands

import (
	"github.com/panyam/symexpr/expr"
	"github.com/spf13/cobra"
)

func newPostfixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix <expression...>",
		Short: "Prints expressions as postfix (RPN) token streams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := lookupSamples(args)
			if err != nil {
				return err
			}
			for _, root := range roots {
				resultColor.Fprintln(cmd.OutOrStdout(), expr.Postfix(root))
			}
			return nil
		},
	}
}
