package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the section cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached section list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, closeFn, err := a.cache()
			if err != nil {
				return err
			}
			defer closeFn()

			out := cmd.OutOrStdout()
			switch a.cfg.Cache.Backend {
			case "redis":
				if err = c.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("cache clear: %w", err)
				}
				fmt.Fprintf(out, "cleared redis cache at %s\n", a.cfg.Cache.Redis.Addr)
			default:
				fmt.Fprintf(out, "nothing to clear for cache backend %q\n", a.cfg.Cache.Backend)
			}

			return nil
		},
	})

	return cmd
}
