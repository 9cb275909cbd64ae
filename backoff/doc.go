/*
Package backoff computes the delay schedule used between retries.

Delays grow geometrically from an initial value, rounding down to whole
nanoseconds at each step:

	backoff.Schedule(10*time.Millisecond, 2, 4) // [10ms 20ms 40ms 80ms]
*/
package backoff
