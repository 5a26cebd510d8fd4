package Utils

import "time"

// Timer measures elapsed wall time for the process summary line.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the seconds since the timer started.
func (t Timer) Elapsed() float64 {
	return time.Since(t.start).Seconds()
}
