package main

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/weekplan/catalog"
	"github.com/katalvlaran/weekplan/internal/config"
	"github.com/katalvlaran/weekplan/internal/logging"
	"github.com/katalvlaran/weekplan/planner"
	"github.com/katalvlaran/weekplan/ratings"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.Nop()}

	root := &cobra.Command{
		Use:   "weekplan",
		Short: "Conflict-free weekly timetable planner",
		Long: "weekplan reads a plan naming the courses to take and lists every " +
			"combination of sections whose meeting times never overlap.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .weekplan.yaml)")
	flags.String("data", "", "section data directory")
	flags.String("venue", "", "primary campus")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("data_dir", flags.Lookup("data"))
	_ = a.v.BindPFlag("venue", flags.Lookup("venue"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(a.solveCmd(), a.validateCmd(), a.cacheCmd())

	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// cache returns the configured catalog cache, or nil for backend "none".
// The returned close func releases its connection.
func (a *app) cache() (catalog.Cache, func(), error) {
	ttl := a.cfg.Cache.TTL
	switch a.cfg.Cache.Backend {
	case "memory":
		return catalog.NewMemoryCache(ttl), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:        a.cfg.Cache.Redis.Addr,
			Password:    a.cfg.Cache.Redis.Password,
			DB:          a.cfg.Cache.Redis.DB,
			DialTimeout: 2 * time.Second,
		})
		return catalog.NewRedisCache(client, "", ttl), func() { _ = client.Close() }, nil
	case "none":
		return nil, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}
}

// source builds the section source: the data directory behind the cache.
// cached is nil when caching is disabled.
func (a *app) source() (src catalog.Source, cached *catalog.CachedSource, closeFn func(), err error) {
	dir := catalog.DirSource{Root: a.cfg.DataDir}
	c, closeFn, err := a.cache()
	if err != nil {
		return nil, nil, nil, err
	}
	if c == nil {
		return dir, nil, closeFn, nil
	}
	cached = catalog.NewCachedSource(dir, c, map[string]string{"data": a.cfg.DataDir}, a.log)

	return cached, cached, closeFn, nil
}

// newPlanner builds a Planner over src with the configured ratings.
func (a *app) newPlanner(src catalog.Source) (*planner.Planner, ratings.Lookup, error) {
	opts := []planner.Option{
		planner.WithLogger(a.log),
		planner.WithConcurrency(a.cfg.Concurrency),
		planner.WithVenue(a.cfg.Venue),
		planner.WithMaxResults(a.cfg.MaxResults),
	}

	var lookup ratings.Lookup
	if a.cfg.RatingsFile != "" {
		static, err := ratings.LoadFile(a.cfg.RatingsFile)
		if err != nil {
			return nil, nil, err
		}
		a.log.Debug("ratings loaded", zap.String("file", a.cfg.RatingsFile), zap.Int("count", static.Len()))
		lookup = static
		opts = append(opts, planner.WithRatings(lookup))
	}

	return planner.New(src, opts...), lookup, nil
}
