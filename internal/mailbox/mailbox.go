// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mailbox provides bounded FIFO queues for handing items from the
// serial transport's callback context to the session task. The producing
// side never blocks; excess items are dropped.
package mailbox

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCapacity is returned by New for capacities below one.
	ErrCapacity = errors.New("mailbox capacity must be at least 1")

	// ErrTimeout is returned by GetTimeout when no item arrived in time.
	ErrTimeout = errors.New("timed out waiting for mailbox item")
)

// Box is a bounded queue with a single producer and a single consumer.
// Items are delivered in the order they were put.
type Box[T any] struct {
	ch chan T
}

// New returns a Box holding up to capacity items.
func New[T any](capacity int) (*Box[T], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}

	return &Box[T]{ch: make(chan T, capacity)}, nil
}

// TryPut queues v without blocking. When the box is full, v is discarded and
// TryPut reports false. This is the only operation transport callbacks may
// use; a successful put readies the blocked consumer.
func (b *Box[T]) TryPut(v T) bool {
	select {
	case b.ch <- v:
		return true
	default:
		return false
	}
}

// Get removes and returns the oldest item, blocking until one is available
// or ctx is cancelled.
func (b *Box[T]) Get(ctx context.Context) (T, error) {
	select {
	case v := <-b.ch:
		return v, nil
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// GetTimeout behaves like Get but gives up after d, returning ErrTimeout.
func (b *Box[T]) GetTimeout(ctx context.Context, d time.Duration) (T, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case v := <-b.ch:
		return v, nil
	case <-timer.C:
		var zero T

		return zero, ErrTimeout
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Len reports the number of queued items.
func (b *Box[T]) Len() int {
	return len(b.ch)
}
