// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package instant provides a validated epoch-millisecond point in time.
// An Instant is always a real point in time: construction rejects
// non-finite and out-of-range inputs so that consumers never need to
// re-check validity.
package instant

import (
	"errors"
	"math"
	"time"
)

// MinMillis and MaxMillis bound the representable range, which is
// 100,000,000 days either side of 1970-01-01T00:00:00Z.
const (
	MinMillis = -8640000000000000
	MaxMillis = 8640000000000000
)

var (
	ErrNonFinite  = errors.New("non-finite millisecond value")
	ErrOutOfRange = errors.New("millisecond value out of range")
)

// Instant is a point in time expressed as milliseconds since
// 1970-01-01T00:00:00Z. The zero value is the epoch itself.
type Instant struct {
	ms int64
}

// New returns the Instant for the given millisecond reading. Fractional
// milliseconds are truncated towards zero. NaN and infinities return
// ErrNonFinite, values outside MinMillis..MaxMillis return ErrOutOfRange.
func New(ms float64) (Instant, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return Instant{}, ErrNonFinite
	}
	ms = math.Trunc(ms)
	if ms < MinMillis || ms > MaxMillis {
		return Instant{}, ErrOutOfRange
	}
	return Instant{ms: int64(ms)}, nil
}

// FromMillis is like New but for an integer millisecond reading.
func FromMillis(ms int64) (Instant, error) {
	if ms < MinMillis || ms > MaxMillis {
		return Instant{}, ErrOutOfRange
	}
	return Instant{ms: ms}, nil
}

// FromTime returns the Instant for t. Precision below a millisecond
// is rounded toward negative infinity.
func FromTime(t time.Time) (Instant, error) {
	return FromMillis(t.UnixMilli())
}

// Millis returns the millisecond reading.
func (i Instant) Millis() int64 {
	return i.ms
}

// Time returns the time.Time for the Instant in UTC.
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// Compare returns -1, 0 or 1 depending on whether i is before, equal
// to, or after j.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.ms < j.ms:
		return -1
	case i.ms > j.ms:
		return 1
	}
	return 0
}

func (i Instant) String() string {
	return i.Time().Format("2006-01-02T15:04:05.000Z07:00")
}
