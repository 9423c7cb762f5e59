package cache

import "time"

// SetClock replaces the FileCache clock in tests.
func SetClock(c *FileCache, now func() time.Time) { c.now = now }
