// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"math"
	"time"

	"cloudeng.io/jsdate/clock"
	"cloudeng.io/jsdate/instant"
)

// FromComponents returns the Date for the given calendar components
// interpreted in UTC, with Date.UTC semantics: the month is zero based,
// fractional components are truncated towards zero, years 0-99 map to
// 1900-1999 and out-of-range components carry into the next larger one
// (month 12 of 2018 is January 2019). Any NaN or infinite component, or
// a result outside the representable range, yields an invalid Date.
func FromComponents(year, month, day, hours, minutes, seconds, millis float64) Date {
	u, ok := makeDate(year, month, day, hours, minutes, seconds, millis)
	if !ok {
		return invalid()
	}
	return Date{ms: timeClip(u)}
}

// FromComponentsIn is FromComponents with the components interpreted as
// a wall-clock reading in the given location. The location is the
// explicit stand-in for the host's ambient timezone state and must not
// be nil.
func FromComponentsIn(loc *time.Location, year, month, day, hours, minutes, seconds, millis float64) Date {
	u, ok := makeDate(year, month, day, hours, minutes, seconds, millis)
	if !ok {
		return invalid()
	}
	return Date{ms: localToUTC(loc, u)}
}

// FromMillis returns the Date for a raw millisecond reading, clipping
// to the representable range.
func FromMillis(ms float64) Date {
	return Date{ms: timeClip(ms)}
}

// FromInstant returns the Date for an Instant. Every Instant yields a
// valid Date.
func FromInstant(i instant.Instant) Date {
	return Date{ms: float64(i.Millis())}
}

// FromTime returns the Date for a time.Time. Precision below a
// millisecond is rounded toward negative infinity, so a time half a
// millisecond before the epoch becomes millisecond -1.
func FromTime(t time.Time) Date {
	return Date{ms: millisFromTime(t)}
}

// Now returns the Date for the clock's current reading.
func Now(clk clock.Clock) Date {
	return FromTime(clk.Now())
}

// makeDate computes the UTC millisecond reading for a component tuple,
// with ok false if any component is NaN or infinite. The reading is not
// clipped.
func makeDate(year, month, day, hours, minutes, seconds, millis float64) (float64, bool) {
	for _, v := range []float64{year, month, day, hours, minutes, seconds, millis} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
	}
	year = math.Trunc(year)
	if year >= 0 && year <= 99 {
		year += 1900
	}
	d := makeDay(year, math.Trunc(month), math.Trunc(day))
	t := makeTime(math.Trunc(hours), math.Trunc(minutes), math.Trunc(seconds), math.Trunc(millis))
	return d*msPerDay + t, true
}

// epochDate computes the UTC millisecond reading for a component tuple
// without the two-digit-year mapping. Used by the calendar conversions,
// for which year 50 means year 50.
func epochDate(year, month, day, hours, minutes, seconds, millis float64) float64 {
	d := makeDay(year, month, day)
	return d*msPerDay + makeTime(hours, minutes, seconds, millis)
}

var monthDayOffsets = [12]float64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// dayFromYear returns the day number of January 1 of the given year,
// relative to the epoch.
func dayFromYear(year float64) float64 {
	return 365*(year-1970) +
		math.Floor((year-1969)/4) -
		math.Floor((year-1901)/100) +
		math.Floor((year-1601)/400)
}

func isLeapYear(year float64) bool {
	if math.Mod(year, 4) != 0 {
		return false
	}
	return math.Mod(year, 100) != 0 || math.Mod(year, 400) == 0
}

// makeDay returns the day number for the given year, zero based month
// and day of month, carrying out-of-range months into the year and
// out-of-range days into the month.
func makeDay(year, month, day float64) float64 {
	year += math.Floor(month / 12)
	m := int(math.Mod(month, 12))
	if m < 0 {
		m += 12
	}
	d := dayFromYear(year) + monthDayOffsets[m]
	if m >= 2 && isLeapYear(year) {
		d++
	}
	return d + day - 1
}

func makeTime(hours, minutes, seconds, millis float64) float64 {
	return hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond + millis
}

// localToUTC converts a wall-clock millisecond reading in loc to a
// clipped UTC reading. The offset in effect is determined from the
// reading itself, so readings that fall inside a transition resolve to
// the offset in effect just before it.
func localToUTC(loc *time.Location, wall float64) float64 {
	// A wall reading more than a day outside the representable range
	// cannot resolve to a representable UTC reading for any offset.
	if math.Abs(wall) > maxTimeValue+msPerDay {
		return math.NaN()
	}
	off := utcOffsetMillis(loc, wall)
	return timeClip(wall - utcOffsetMillis(loc, wall-off))
}

// utcOffsetMillis returns the offset from UTC, in milliseconds, in
// effect in loc at the given millisecond reading.
func utcOffsetMillis(loc *time.Location, ms float64) float64 {
	_, off := time.UnixMilli(int64(ms)).In(loc).Zone()
	return float64(off) * msPerSecond
}
