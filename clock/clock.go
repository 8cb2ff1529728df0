// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package clock provides a clock abstraction so that operations whose
// results depend on the ambient wall clock accept the clock as an
// explicit argument and can be tested by substitution.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock via time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a predetermined time and is intended for tests.
type FixedClock struct {
	now time.Time
}

// NewFixedClock returns a FixedClock that reports now until changed
// via Set or Advance.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

// Set changes the time reported by Now.
func (c *FixedClock) Set(now time.Time) {
	c.now = now
}

// Advance moves the reported time forward by d, which may be negative.
func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
