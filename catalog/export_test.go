package catalog

import "time"

// SetClock replaces the cache clock in tests.
func (c *MemoryCache) SetClock(now func() time.Time) { c.now = now }
