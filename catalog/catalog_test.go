package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weekplan/catalog"
	"github.com/katalvlaran/weekplan/option"
)

const cisPayload = `{"totalCount": 3, "data": [
  {"term":"202436","courseReferenceNumber":"41234","sequenceNumber":"001","subjectCourse":"CIS1057",
   "campusDescription":"Main","instructionalMethod":"CLAS","seatsAvailable":3,"maximumEnrollment":30,
   "meetingsFaculty":[{"meetingTime":{"beginTime":"0900","endTime":"0950","monday":true,"wednesday":true}}]},
  {"term":"202436","courseReferenceNumber":"41235","sequenceNumber":"002","subjectCourse":"CIS1057",
   "campusDescription":"Main","instructionalMethod":"CLAS","seatsAvailable":0,"maximumEnrollment":30,
   "meetingsFaculty":[{"meetingTime":{"beginTime":"1100","endTime":"1150","tuesday":true}}]},
  {"term":"202436","courseReferenceNumber":"41299","sequenceNumber":"001","subjectCourse":"CIS1051",
   "campusDescription":"Main","instructionalMethod":"CLAS"}
]}`

func writeData(t *testing.T, root, term, category, body string) {
	t.Helper()
	dir := filepath.Join(root, term)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, category+".json"), []byte(body), 0o644))
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "202436", "CIS1057", cisPayload)
	src := catalog.DirSource{Root: root}
	ctx := context.Background()

	opts, err := src.Options(ctx, "CIS1057", "202436")
	require.NoError(t, err)
	require.Len(t, opts, 2, "records of other categories are skipped")
	require.Equal(t, "CIS1057-002", opts[1].Key())

	_, err = src.Options(ctx, "MATH1041", "202436")
	require.ErrorIs(t, err, catalog.ErrUnknownCategory)

	_, err = src.Options(ctx, "../etc", "202436")
	require.ErrorIs(t, err, catalog.ErrBadName)

	writeData(t, root, "202436", "BAD1", `[{"term":"202436","subjectCourse":"BAD1"}]`)
	_, err = src.Options(ctx, "BAD1", "202436")
	require.ErrorIs(t, err, option.ErrValidation)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.Options(cancelled, "CIS1057", "202436")
	require.ErrorIs(t, err, context.Canceled)
}

func TestKey_String(t *testing.T) {
	k := catalog.Key{Category: "CIS1057", Term: "202436"}
	require.Equal(t, "202436/CIS1057", k.String())

	k.Params = map[string]string{"venue": "Main", "attr": "x"}
	require.Equal(t, "202436/CIS1057?attr=x&venue=Main", k.String())
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 8, 26, 9, 0, 0, 0, time.UTC)
	c := catalog.NewMemoryCache(time.Minute)
	c.SetClock(func() time.Time { return now })
	key := catalog.Key{Category: "CIS1057", Term: "202436"}

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, catalog.ErrCacheMiss)

	stored := []option.Option{{ID: "001", Category: "CIS1057"}}
	require.NoError(t, c.Set(ctx, key, stored))
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "001", got[0].ID)

	got[0].ID = "mutated"
	again, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "001", again[0].ID, "callers get independent copies")

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, key)
	require.ErrorIs(t, err, catalog.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, key, stored))
	require.NoError(t, c.Delete(ctx, key))
	_, err = c.Get(ctx, key)
	require.ErrorIs(t, err, catalog.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, key, stored))
	require.Equal(t, 1, c.Len())
	require.NoError(t, c.Clear(ctx))
	require.Zero(t, c.Len())
}

func TestCachedSource(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	src := catalog.SourceFunc(func(_ context.Context, category, term string) ([]option.Option, error) {
		calls.Add(1)
		if category == "MISSING" {
			return nil, catalog.ErrUnknownCategory
		}
		return []option.Option{{ID: "001", Category: category, Term: term}}, nil
	})
	cs := catalog.NewCachedSource(src, catalog.NewMemoryCache(0), map[string]string{"venue": "Main"}, nil)

	for i := 0; i < 3; i++ {
		opts, err := cs.Options(ctx, "CIS1057", "202436")
		require.NoError(t, err)
		require.Len(t, opts, 1)
	}
	require.EqualValues(t, 1, calls.Load())

	require.NoError(t, cs.Invalidate(ctx, "CIS1057", "202436"))
	_, err := cs.Options(ctx, "CIS1057", "202436")
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())

	_, err = cs.Options(ctx, "MISSING", "202436")
	require.ErrorIs(t, err, catalog.ErrUnknownCategory)
	_, err = cs.Options(ctx, "MISSING", "202436")
	require.ErrorIs(t, err, catalog.ErrUnknownCategory)
	require.EqualValues(t, 4, calls.Load(), "failures are not cached")

	require.NoError(t, cs.Clear(ctx))
	_, err = cs.Options(ctx, "CIS1057", "202436")
	require.NoError(t, err)
	require.EqualValues(t, 5, calls.Load())
}

func TestCachedSource_RedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	rc := catalog.NewRedisCache(client, "", time.Hour)
	key := catalog.Key{Category: "CIS1057", Term: "202436"}
	require.Equal(t, "weekplan:options:202436/CIS1057", rc.RedisKey(key))

	_, err := rc.Get(context.Background(), key)
	require.Error(t, err)
	require.False(t, errors.Is(err, catalog.ErrCacheMiss))

	src := catalog.SourceFunc(func(context.Context, string, string) ([]option.Option, error) {
		return []option.Option{{ID: "001", Category: "CIS1057"}}, nil
	})
	opts, err := catalog.NewCachedSource(src, rc, nil, nil).Options(context.Background(), "CIS1057", "202436")
	require.NoError(t, err, "cache outages fall back to the source")
	require.Len(t, opts, 1)
}

// TestRedisCache_Live runs against a real server when WEEKPLAN_TEST_REDIS
// names one, e.g. "localhost:6379".
func TestRedisCache_Live(t *testing.T) {
	addr := os.Getenv("WEEKPLAN_TEST_REDIS")
	if addr == "" {
		t.Skip("WEEKPLAN_TEST_REDIS not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	rc := catalog.NewRedisCache(client, "weekplan-test:", time.Minute)
	require.NoError(t, rc.Clear(ctx))
	key := catalog.Key{Category: "CIS1057", Term: "202436"}

	_, err := rc.Get(ctx, key)
	require.ErrorIs(t, err, catalog.ErrCacheMiss)

	require.NoError(t, rc.Set(ctx, key, []option.Option{{ID: "001", Category: "CIS1057", Method: option.InPerson}}))
	got, err := rc.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, option.InPerson, got[0].Method)

	require.NoError(t, rc.Clear(ctx))
	_, err = rc.Get(ctx, key)
	require.ErrorIs(t, err, catalog.ErrCacheMiss)
}
