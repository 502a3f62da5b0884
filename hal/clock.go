package hal

import (
	"sync"
	"time"
)

type offsetClock struct {
	mu     sync.Mutex
	now    func() time.Time
	offset time.Duration
	loc    *time.Location
}

// NewClock returns a Clock that runs off now (time.Now when nil) plus the
// offset recorded by the last Set.
func NewClock(now func() time.Time) Clock {
	if now == nil {
		now = time.Now
	}
	return &offsetClock{now: now, loc: time.Local}
}

func (c *offsetClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now().Add(c.offset).In(c.loc)
}

func (c *offsetClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = t.Sub(c.now())
	if loc := t.Location(); loc != nil {
		c.loc = loc
	}
}
