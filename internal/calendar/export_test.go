package calendar

import "time"

func (c *Calendar) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Calendar) HeldLocks() int {
	return c.locks.size()
}
