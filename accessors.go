// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"math"
	"time"
)

// The numeric accessors come in two families with the same field set.
// The UTC family is pure; the local family takes the timezone to read
// the fields in as an explicit *time.Location, which must not be nil.
// Every accessor returns NaN on an invalid Date; callers that need a
// guaranteed usable number must check IsValid first.

// Time returns the millisecond reading, the only "milliseconds" value
// that is independent of any timezone.
func (d Date) Time() float64 {
	return d.ms
}

// UTCFullYear returns the year in UTC.
func (d Date) UTCFullYear() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Year())
}

// UTCMonth returns the zero based month in UTC, 0 is January.
func (d Date) UTCMonth() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Month() - 1)
}

// UTCDate returns the day of the month in UTC.
func (d Date) UTCDate() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Day())
}

// UTCDay returns the day of the week in UTC, 0 is Sunday.
func (d Date) UTCDay() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Weekday())
}

// UTCHours returns the hour in UTC.
func (d Date) UTCHours() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Hour())
}

// UTCMinutes returns the minute in UTC.
func (d Date) UTCMinutes() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Minute())
}

// UTCSeconds returns the second in UTC.
func (d Date) UTCSeconds() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Second())
}

// UTCMilliseconds returns the millisecond in UTC.
func (d Date) UTCMilliseconds() float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.Nanosecond() / int(time.Millisecond))
}

// FullYear returns the year in loc.
func (d Date) FullYear(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Year())
}

// Month returns the zero based month in loc, 0 is January.
func (d Date) Month(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Month() - 1)
}

// Date returns the day of the month in loc.
func (d Date) Date(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Day())
}

// Day returns the day of the week in loc, 0 is Sunday.
func (d Date) Day(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Weekday())
}

// Hours returns the hour in loc.
func (d Date) Hours(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Hour())
}

// Minutes returns the minute in loc.
func (d Date) Minutes(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Minute())
}

// Seconds returns the second in loc.
func (d Date) Seconds(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Second())
}

// Milliseconds returns the millisecond in loc.
func (d Date) Milliseconds(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	return float64(t.In(loc).Nanosecond() / int(time.Millisecond))
}

// TimezoneOffset returns the minutes to add to a wall-clock reading in
// loc to obtain UTC at this Date's point in time: positive west of UTC,
// negative east of it. Offsets that are not a whole number of minutes
// are preserved as fractions.
func (d Date) TimezoneOffset(loc *time.Location) float64 {
	t, ok := d.goTime()
	if !ok {
		return math.NaN()
	}
	_, off := t.In(loc).Zone()
	return -float64(off) / 60
}
