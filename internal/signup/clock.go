package signup

import (
	"context"
	"time"
)

// Clock is the timer used to wait out a simulated submission
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock waits on wall-clock time
type RealClock struct{}

// After delegates to time.After
func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// SubmitAndWait submits the form and, if the submission is pending, blocks
// on clock until the delay has elapsed and then completes it. The returned
// result carries the success notice when the form was accepted.
//
// Cancelling ctx abandons the wait and leaves the form Submitting; it exists
// for process shutdown, the form itself has no cancel path.
func (f *Form) SubmitAndWait(ctx context.Context, clock Clock) (SubmitResult, error) {
	result := f.Submit()
	if result.Outcome != OutcomePending {
		return result, nil
	}

	select {
	case <-clock.After(result.Delay):
	case <-ctx.Done():
		return result, ctx.Err()
	}

	notice, err := f.CompleteSubmission()
	if err != nil {
		return result, err
	}
	result.Outcome = OutcomeSucceeded
	result.Notice = notice
	return result, nil
}
