package search

import "time"

// Advance feeds elapsed wall time into the step clock. Only a Running
// search accumulates; once the total exceeds the interval exactly one Step
// fires and the accumulator restarts from zero. fired reports that a step
// ran; err is the step's error.
func (t *Ticker[K]) Advance(elapsed time.Duration) (fired bool, err error) {
	if t.st == nil || t.st.status != StatusRunning {
		return false, nil
	}
	t.elapsed += elapsed
	if t.elapsed <= t.interval {
		return false, nil
	}
	t.elapsed = 0
	_, err = t.Step()

	return true, err
}

// SetStepInterval changes the clock interval, clamped to the configured
// bounds, and returns the value applied.
func (t *Ticker[K]) SetStepInterval(d time.Duration) time.Duration {
	t.interval = t.clamp(d)

	return t.interval
}

// StepInterval returns the current clock interval.
func (t *Ticker[K]) StepInterval() time.Duration { return t.interval }

// IntervalBounds returns the range accepted by SetStepInterval.
func (t *Ticker[K]) IntervalBounds() (min, max time.Duration) {
	return t.minInterval, t.maxInterval
}

func (t *Ticker[K]) clamp(d time.Duration) time.Duration {
	switch {
	case d < t.minInterval:
		return t.minInterval
	case d > t.maxInterval:
		return t.maxInterval
	default:
		return d
	}
}
