package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/weekplan/catalog"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/planner"
	"github.com/katalvlaran/weekplan/weektime"
)

// ExamplePlanner_Run solves a one-course plan against an in-memory source.
func ExamplePlanner_Run() {
	src := catalog.SourceFunc(func(_ context.Context, category, term string) ([]option.Option, error) {
		lecture := func(id string, hour int) option.Option {
			return option.Option{
				ID: id, Category: category, Term: term, Venue: "Main", Method: option.InPerson,
				Meetings: []option.Meeting{{
					Days:  []weektime.Day{weektime.Monday},
					Begin: option.Clock{Hour: hour}, End: option.Clock{Hour: hour + 1},
					Timed: true,
				}},
			}
		}
		return []option.Option{lecture("001", 9), lecture("002", 14)}, nil
	})

	plan, err := planner.ParsePlan([]byte("term = \"202436\"\ncourses = [\"CIS1057\"]\nsort = \"span\"\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := planner.New(src).Run(context.Background(), plan)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range res.Combinations {
		fmt.Println(c)
	}
	// Output:
	// [CIS1057-001]
	// [CIS1057-002]
}
