// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"time"

	"cloudeng.io/jsdate/civil"
	"cloudeng.io/jsdate/instant"
)

// The conversions to the validated types all follow the same contract:
// ok is false exactly when the Date is invalid, and a valid Date never
// converts to a wrong calendar point. The inverse conversions are total
// since their inputs are valid by construction. Both directions carry
// exactly millisecond precision, so the round trips through Instant and
// DateTime are exact.

// Instant returns the Date's point in time as an Instant, with ok false
// iff the Date is invalid.
func (d Date) Instant() (instant.Instant, bool) {
	if !d.IsValid() {
		return instant.Instant{}, false
	}
	i, err := instant.FromMillis(int64(d.ms))
	if err != nil {
		// A valid Date is always within the Instant range.
		return instant.Instant{}, false
	}
	return i, true
}

// DateTime returns the Date's point in time decomposed into a calendar
// date and time of day in UTC, with ok false iff the Date is invalid.
func (d Date) DateTime() (civil.DateTime, bool) {
	t, ok := d.goTime()
	if !ok {
		return civil.DateTime{}, false
	}
	return civil.DateTimeFromTime(t), true
}

// CivilDate returns the UTC calendar date, dropping the time of day,
// with ok false iff the Date is invalid.
func (d Date) CivilDate() (civil.Date, bool) {
	dt, ok := d.DateTime()
	if !ok {
		return civil.Date{}, false
	}
	return dt.Date(), ok
}

// GoTime returns the Date's point in time as a time.Time in UTC, with
// ok false iff the Date is invalid.
func (d Date) GoTime() (time.Time, bool) {
	return d.goTime()
}

// FromDateTime returns the Date for a calendar point read in UTC. It is
// total: a DateTime is always a valid calendar point within the
// representable range (civil.NewDate bounds its years to
// civil.MinYear-civil.MaxYear), so the result is always valid. Unlike
// FromComponents it applies no two-digit-year mapping, making it the
// exact inverse of DateTime.
func FromDateTime(dt civil.DateTime) Date {
	date, tod := dt.Date(), dt.TimeOfDay()
	ms := epochDate(float64(date.Year()), float64(date.Month()-1), float64(date.Day()),
		float64(tod.Hour()), float64(tod.Minute()), float64(tod.Second()), float64(tod.Millisecond()))
	return Date{ms: timeClip(ms)}
}
