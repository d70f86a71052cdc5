package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bradenaw/selfadjust/bst"
)

func newBSTCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:     "bst [flags] value...",
		Short:   "Insert values into a binary search tree and print its traversals",
		Example: "  selfadjust bst --from 30 50 30 70 20 40",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			var tree bst.Tree[int]
			for _, v := range values {
				tree.Insert(v)
			}
			if !cmd.Flags().Changed("from") {
				from = values[0]
			}
			if !tree.Contains(from) {
				return fmt.Errorf("%d is not in the tree", from)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "pre-order:  %v\n", tree.PreOrder(from))
			fmt.Fprintf(w, "in-order:   %v\n", tree.InOrder(from))
			fmt.Fprintf(w, "post-order: %v\n", tree.PostOrder(from))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "value whose subtree to traverse (default the first value, the root)")
	return cmd
}
