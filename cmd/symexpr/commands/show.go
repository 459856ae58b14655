package commands

import (
	"fmt"
	"io"

	"github.com/panyam/symexpr/expr"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <expression>",
		Short: "Prints an expression in every available form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := lookupSample(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			showField(w, "infix", root.String())
			showField(w, "postfix", expr.Postfix(root))
			showField(w, "prefix", expr.Prefix(root))
			showField(w, "depth", fmt.Sprint(expr.Depth(root)))
			showField(w, "variables", joinNames(expr.Variables(root)))
			labelColor.Fprintln(w, "tree:")
			fmt.Fprint(w, expr.Dump(root))
			return nil
		},
	}
}

func showField(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%-10s ", label+":")
	fmt.Fprintln(w, value)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the catalogue of expressions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range describeSamples() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}
