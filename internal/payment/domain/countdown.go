package domain

import "time"

// Advance applies the session clock: a pending session whose elapsed time has
// reached the timeout fails. Every other state is unaffected by time.
func Advance(status Status, elapsed, timeout time.Duration) Status {
	if status == StatusPending && elapsed >= timeout {
		return StatusFailed
	}
	return status
}

// Remaining is the countdown shown to the shopper in whole seconds. It starts
// at the timeout and drops by one per full elapsed second, never below zero.
func Remaining(startedAt, now time.Time, timeout time.Duration) int {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	left := int(timeout/time.Second) - int(elapsed/time.Second)
	if left < 0 {
		return 0
	}
	return left
}
