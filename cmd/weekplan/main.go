// Command weekplan builds conflict-free weekly timetables from a plan file
// and a directory of registrar section data.
//
//	weekplan solve plan.toml --sort span --max 10
//	weekplan solve plan.toml --watch
//	weekplan validate plan.toml
//	weekplan cache clear
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
