package again_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"andy.dev/again"
	"andy.dev/again/backoff"
)

var ErrIDontLike = errors.New("can't recover from this one")

func ExampleDo() {
	fnToRetry := func(ctx context.Context) (string, error) {
		status := again.GetStatus(ctx)
		if status.Attempt < 3 {
			return "", errors.New("not yet")
		}
		return fmt.Sprintf("value from %s", status), nil
	}

	str, err := again.Do(context.Background(), fnToRetry, again.InitialDelay(time.Millisecond))
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(str)
	// Output:
	// value from attempt 3/4
}

func ExampleRun() {
	err := again.Run(context.Background(), func(ctx context.Context) error {
		fmt.Printf("there was a problem (%+s)\n", again.GetStatus(ctx))
		return fmt.Errorf("some error")
	}, again.Retries(2), again.InitialDelay(10*time.Millisecond))
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// there was a problem (attempt 1/3 - next in 10ms)
	// there was a problem (attempt 2/3 - next in 20ms)
	// there was a problem (attempt 3/3)
	// some error
}

func ExampleOnRetry() {
	fnToRetry := func(ctx context.Context) error {
		return errors.New("some error")
	}

	onRetry := func(err error, attempt int) error {
		fmt.Printf("got error while retrying: %v (attempt %d)\n", err, attempt)
		return nil
	}

	err := again.Run(context.Background(), fnToRetry,
		again.Retries(2),
		again.InitialDelay(time.Millisecond),
		again.OnRetry(onRetry),
	)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// got error while retrying: some error (attempt 1)
	// got error while retrying: some error (attempt 2)
	// some error
}

func ExampleTimeout() {
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(time.Second):
			return nil
		case <-ctx.Done():
			return context.Cause(ctx)
		}
	}

	err := again.Run(context.Background(), slow,
		again.Retries(1),
		again.InitialDelay(time.Millisecond),
		again.Timeout(10*time.Millisecond),
	)
	fmt.Println(err)
	fmt.Println(again.IsTimeout(err))
	// Output:
	// attempt 2 timed out after 10ms
	// true
}

func ExampleHalt() {
	tries := 0
	fnToRetry := func(ctx context.Context) error {
		tries++
		if tries == 3 {
			fmt.Println("there was a problem: fatal")
			return again.Halt(ErrIDontLike)
		}
		fmt.Println("there was a problem: temporary failure")
		return errors.New("temporary failure")
	}

	err := again.Run(context.Background(), fnToRetry, again.Retries(10), again.InitialDelay(time.Millisecond))
	fmt.Printf("output: %v\n", err)
	if errors.Is(err, ErrIDontLike) {
		fmt.Println("didn't even make it to 10 retries")
	}
	// Output:
	// there was a problem: temporary failure
	// there was a problem: temporary failure
	// there was a problem: fatal
	// output: can't recover from this one
	// didn't even make it to 10 retries
}

func ExampleDo_withCancelledContextCause() {
	ctx, cf := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cf(errors.New("I've changed my mind"))
	}()

	fnToRetry := func(ctx context.Context) (int, error) {
		return 0, errors.New("I'll fail forever")
	}

	_, err := again.Do(ctx, fnToRetry, again.Retries(10), again.InitialDelay(time.Second))
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// I've changed my mind
}

func ExampleConfig() {
	policy := again.DefaultConfig()
	policy.Retries = 4
	policy.Factor = 3

	fmt.Println(backoff.Schedule(policy.InitialDelay, policy.Factor, policy.Retries))
	// Output:
	// [100ms 300ms 900ms 2.7s]
}
