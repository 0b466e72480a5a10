package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/weekplan/catalog"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/planner"
)

var errInvalid = errors.New("validation failed")

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PLAN",
		Short: "Check a plan and the section data it needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			plan, err := planner.LoadPlan(args[0])
			if err != nil {
				fmt.Fprintf(out, "✗ plan: %v\n", err)
				return errInvalid
			}
			fmt.Fprintf(out, "✓ plan: term %s, %d courses\n", plan.Term, len(plan.Courses))

			ok := true
			src := catalog.DirSource{Root: a.cfg.DataDir}
			for _, course := range plan.Courses {
				opts, err := src.Options(cmd.Context(), course, plan.Term)
				if err == nil {
					err = option.DeriveAll(opts)
				}
				if err != nil {
					fmt.Fprintf(out, "✗ %s: %v\n", course, err)
					ok = false
					continue
				}
				fmt.Fprintf(out, "✓ %s: %d sections\n", course, len(opts))
			}

			if !ok {
				return errInvalid
			}
			return nil
		},
	}
}
