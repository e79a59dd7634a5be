// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package fsm

import (
	"context"
	"errors"
	"testing"
)

// appendA records a visit and terminates the machine.
func appendA(_ context.Context, visits []string) ([]string, State[[]string], error) {
	return append(visits, "a"), nil, nil
}

// appendB records a visit and moves on to appendA.
func appendB(_ context.Context, visits []string) ([]string, State[[]string], error) {
	return append(visits, "b"), appendA, nil
}

func failing(_ context.Context, visits []string) ([]string, State[[]string], error) {
	return visits, nil, errors.New("state failed")
}

// spin transitions to itself forever and only stops via the context.
func spin(_ context.Context, visits []string) ([]string, State[[]string], error) {
	return visits, spin, nil
}

func TestRun_SingleState(t *testing.T) {
	got, err := Run(context.Background(), nil, appendA)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected visits [a], got %v", got)
	}
}

func TestRun_Transition(t *testing.T) {
	got, err := Run(context.Background(), nil, appendB)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("expected visits [b a], got %v", got)
	}
}

func TestRun_StateError(t *testing.T) {
	_, err := Run(context.Background(), nil, failing)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, nil, spin)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
