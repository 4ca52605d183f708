// Package watch schedules repeated organizing passes. The loop is
// cooperative: sleep-then-run with the interval measured between run
// completions, so passes never overlap and cancellation wakes the idle
// sleep immediately.
package watch
