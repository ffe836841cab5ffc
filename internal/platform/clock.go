package platform

import "time"

// Clock turns host timestamps in milliseconds into time elapsed since the
// loop started.
type Clock struct {
	start float64
}

func NewClock(startMillis float64) Clock {
	return Clock{start: startMillis}
}

// Elapsed never goes negative; animation frame callbacks may carry a
// timestamp taken slightly before the clock was started.
func (c Clock) Elapsed(nowMillis float64) time.Duration {
	d := nowMillis - c.start
	if d < 0 {
		return 0
	}
	return time.Duration(d * float64(time.Millisecond))
}
