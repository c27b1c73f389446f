// Package chflow provides context-aware helpers for receiving from, sending
// to and polling into Go channels, so that every blocking channel operation
// respects cancellation via context.Context.
package chflow

import (
	"context"
	"time"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Poll calls produce every interval and forwards each value it reports as
// ready into the returned channel. The channel is closed once ctx is done.
//
// produce runs on a single goroutine, so it may keep state between calls
// without synchronization.
func Poll[T any](ctx context.Context, interval time.Duration, buffer int, produce func(ctx context.Context) (T, bool)) <-chan T {
	out := make(chan T, buffer)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				value, ready := produce(ctx)
				if !ready {
					continue
				}

				if !Send(ctx, out, value) {
					return
				}
			}
		}
	}()

	return out
}
