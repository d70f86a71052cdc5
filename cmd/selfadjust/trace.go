package main

import (
	"fmt"
	"strconv"

	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/cobra"

	"github.com/bradenaw/selfadjust"
)

func newTraceCmd() *cobra.Command {
	var (
		policyName string
		size       int
	)
	cmd := &cobra.Command{
		Use:   "trace [flags] value...",
		Short: "Show how a list reorders itself as values are searched for",
		Long: `trace adds 1 through --size to the front of a new list, so the list starts out in
descending order, then searches for each value argument in turn and prints the list after each
search along with the number of nodes it examined.`,
		Example: "  selfadjust trace --policy transpose 1 1 1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := selfadjust.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			l := selfadjust.New[int](policy)
			for i := 1; i <= size; i++ {
				l.Add(i)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s list: %s\n", policy, l)
			for _, v := range values {
				l.ResetCost()
				found := l.Contains(v)
				fmt.Fprintf(w, "contains(%d) = %t, examined %d: %s\n", v, found, l.Cost(), l)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&policyName, "policy", "p", selfadjust.MoveToFront.String(), "plain, mtf or transpose")
	cmd.Flags().IntVarP(&size, "size", "n", 5, "number of values to fill the list with")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	var err error
	values := xslices.Map(args, func(arg string) int {
		v, convErr := strconv.Atoi(arg)
		if convErr != nil && err == nil {
			err = fmt.Errorf("invalid value %q: %w", arg, convErr)
		}
		return v
	})
	return values, err
}
