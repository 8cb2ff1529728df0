// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinYear and MaxYear bound the years representable as a date value:
// 100,000,000 days either side of the epoch. Only part of each edge
// year is representable, see NewDate.
const (
	MinYear = -271821
	MaxYear = 275760
)

// Date is a calendar date. Use NewDate or DateFromTime to create one;
// the zero value is not a meaningful date.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for the given year, month and day. The month
// must be in the range 1-12, the day must exist in that month for that
// year and the year must be in the range MinYear-MaxYear. At the edge
// years the date must be on or after April 20 of MinYear, or on or
// before September 12 of MaxYear, so that every Date and time of day
// combination is a representable point in time.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("invalid year: %d", year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month: %d", month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("invalid day for %v %v: %d", month, year, day)
	}
	if year == MinYear && (month < 4 || (month == 4 && day < 20)) {
		return Date{}, fmt.Errorf("date %v %d, %d precedes the representable range", month, day, year)
	}
	if year == MaxYear && (month > 9 || (month == 9 && day > 12)) {
		return Date{}, fmt.Errorf("date %v %d, %d exceeds the representable range", month, day, year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateFromTime returns the Date for t in t's location. The result is
// only meaningful when t lies within the MinYear-MaxYear bounds;
// DateFromTime does not itself validate.
func DateFromTime(t time.Time) Date {
	return Date{year: t.Year(), month: Month(t.Month()), day: t.Day()}
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// Time returns the time.Time for midnight at the start of d in the
// given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Parse a date in the format '2006-01-02'. A leading '-' denotes a
// negative year.
func (d *Date) Parse(val string) error {
	s := val
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format '2006-01-02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	if negative {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	date, err := NewDate(year, Month(month), day)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
