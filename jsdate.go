// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jsdate provides a date value with ECMAScript Date semantics:
// a double-precision count of milliseconds since 1970-01-01T00:00:00Z
// with NaN representing the "Invalid Date" state. Invalidity is a
// value, not an error: malformed construction input yields an invalid
// Date, numeric accessors on an invalid Date return NaN and string
// accessors return the fixed "Invalid Date" literal. ISOString is the
// single exception and returns ErrInvalidDate, matching the one place
// the ECMAScript standard raises instead of propagating.
//
// Operations whose results depend on ambient machine state take that
// state as an explicit argument: the current time as a clock.Clock and
// the local timezone as a *time.Location. Nothing in the package reads
// a global clock or locale.
//
// Conversions to the validated calendar and epoch types are in terms
// of IsValid: they report ok==false exactly when the Date is invalid
// and never produce a valid-looking but wrong calendar point.
package jsdate

import (
	"math"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	// maxTimeValue bounds the representable range to 100,000,000 days
	// either side of the epoch.
	maxTimeValue = 8.64e15
)

// Date is a point in time as milliseconds since 1970-01-01T00:00:00Z,
// or the invalid date. Date values are immutable; the zero value is
// the epoch itself. Use IsValid rather than == to test validity: the
// invalid state is NaN and never compares equal to itself.
type Date struct {
	ms float64
}

// IsValid returns true if d represents a real point in time. It is
// the sole authority on validity: every accessor and conversion is
// defined in terms of it.
func (d Date) IsValid() bool {
	return !math.IsNaN(d.ms)
}

// invalid returns the invalid Date.
func invalid() Date {
	return Date{ms: math.NaN()}
}

// timeClip rounds a millisecond reading towards zero and replaces
// values outside the representable range with NaN.
func timeClip(ms float64) float64 {
	if math.IsNaN(ms) || math.Abs(ms) > maxTimeValue {
		return math.NaN()
	}
	ms = math.Trunc(ms)
	if ms == 0 {
		return 0
	}
	return ms
}

// goTime returns the time.Time for d in UTC, with ok false when d is
// invalid.
func (d Date) goTime() (time.Time, bool) {
	if !d.IsValid() {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(d.ms)).UTC(), true
}

// millisFromTime returns the clipped millisecond reading for t.
// Precision below a millisecond rounds toward negative infinity:
// Unix() floors the seconds and the nanoseconds are non-negative.
func millisFromTime(t time.Time) float64 {
	return timeClip(float64(t.Unix())*msPerSecond + float64(t.Nanosecond()/int(time.Millisecond)))
}
