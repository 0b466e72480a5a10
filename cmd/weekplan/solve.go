package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/weekplan/internal/watch"
	"github.com/katalvlaran/weekplan/planner"
	"github.com/katalvlaran/weekplan/ratings"
	"github.com/katalvlaran/weekplan/report"
)

type solveFlags struct {
	max     int
	sort    string
	reverse bool
	watch   bool
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve PLAN",
		Short: "List conflict-free timetables for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], f)
		},
	}
	cmd.Flags().IntVar(&f.max, "max", 0, "maximum timetables to print (overrides the plan)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "order by span, total, breaks, rating or credits (overrides the plan)")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "reverse the sort order")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-solve whenever the plan or section data changes")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, path string, f solveFlags) error {
	src, cached, closeFn, err := a.source()
	if err != nil {
		return err
	}
	defer closeFn()

	p, lookup, err := a.newPlanner(src)
	if err != nil {
		return err
	}

	load := func() (*planner.Plan, error) {
		plan, err := planner.LoadPlan(path)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if flags.Changed("max") {
			plan.Max = f.max
		}
		if flags.Changed("sort") {
			plan.Sort = f.sort
		}
		if flags.Changed("reverse") {
			plan.Reverse = f.reverse
		}

		return plan, nil
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	plan, err := load()
	if err != nil {
		return err
	}
	err = solveOnce(ctx, out, p, plan, lookup)
	if !f.watch {
		return err
	}
	if err != nil {
		a.log.Error("solve failed", zap.Error(err))
	}

	termDir := filepath.Join(a.cfg.DataDir, plan.Term)
	w, err := watch.New(
		[]string{filepath.Dir(path), termDir},
		watch.Any(watch.Files(path), watch.Ext(".json")),
		watch.DefaultDebounce,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Stop()
	a.log.Info("watching for changes", zap.String("plan", path), zap.String("data", termDir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-w.Changes:
			if !ok {
				return nil
			}
			a.log.Info("change detected", zap.String("file", c.File), zap.Bool("removed", c.Removed))
			if cached != nil && filepath.Ext(c.File) == ".json" {
				category := strings.TrimSuffix(filepath.Base(c.File), ".json")
				if err = cached.Invalidate(ctx, category, plan.Term); err != nil {
					a.log.Warn("cache invalidate failed", zap.String("category", category), zap.Error(err))
				}
			}
			next, err := load()
			if err != nil {
				a.log.Error("plan reload failed", zap.Error(err))
				continue
			}
			plan = next
			if err = solveOnce(ctx, out, p, plan, lookup); err != nil {
				a.log.Error("solve failed", zap.Error(err))
			}
		}
	}
}

// solveOnce runs plan and renders the result.
func solveOnce(ctx context.Context, w io.Writer, p *planner.Planner, plan *planner.Plan, lookup ratings.Lookup) error {
	res, err := p.Run(ctx, plan)
	if err != nil {
		return err
	}
	if len(res.Combinations) == 0 {
		_, err = fmt.Fprintln(w, "No conflict-free timetable exists for this plan.")
		return err
	}

	return report.Render(ctx, w, res.Combinations, lookup)
}
