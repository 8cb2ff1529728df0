// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// DateTime is a calendar date and time of day, ie. a calendar point at
// millisecond precision.
type DateTime struct {
	date Date
	tod  TimeOfDay
}

// NewDateTime returns the DateTime for the given date and time of day.
func NewDateTime(date Date, tod TimeOfDay) DateTime {
	return DateTime{date: date, tod: tod}
}

// DateTimeFromTime returns the DateTime for t in t's location.
// DateTime carries millisecond precision, so nanoseconds below a
// millisecond are discarded.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{date: DateFromTime(t), tod: TimeOfDayFromTime(t)}
}

func (dt DateTime) Date() Date {
	return dt.date
}

func (dt DateTime) TimeOfDay() TimeOfDay {
	return dt.tod
}

// Time returns the time.Time for dt in the given location.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.date.Year(), time.Month(dt.date.Month()), dt.date.Day(),
		dt.tod.Hour(), dt.tod.Minute(), dt.tod.Second(),
		dt.tod.Millisecond()*int(time.Millisecond), loc)
}

func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.tod.String()
}

// Parse a date-time in the format '2006-01-02T15:04:05.000'. Errors in
// the date and time components are accumulated and returned together.
func (dt *DateTime) Parse(val string) error {
	parts := strings.SplitN(val, "T", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid date-time %q, expected format '2006-01-02T15:04:05.000'", val)
	}
	errs := errors.M{}
	var date Date
	var tod TimeOfDay
	errs.Append(date.Parse(parts[0]))
	errs.Append(tod.Parse(parts[1]))
	if err := errs.Err(); err != nil {
		return err
	}
	*dt = DateTime{date: date, tod: tod}
	return nil
}
