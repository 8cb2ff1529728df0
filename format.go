// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"errors"
	"fmt"
	"time"
)

// InvalidDate is the fixed literal returned by the string accessors for
// an invalid Date.
const InvalidDate = "Invalid Date"

// ErrInvalidDate is returned by ISOString and MarshalJSON for an
// invalid Date. Those are the only operations that escalate invalidity
// to an error; everything else propagates it as a value.
var ErrInvalidDate = errors.New("invalid date")

// ISOString returns the date in the fixed format
// '2006-01-02T15:04:05.000Z', using an expanded six digit year outside
// 0-9999. It is the single operation for which invalidity is an error
// rather than a sentinel value.
func (d Date) ISOString() (string, error) {
	t, ok := d.goTime()
	if !ok {
		return "", ErrInvalidDate
	}
	if year := t.Year(); year < 0 || year > 9999 {
		return fmt.Sprintf("%+07d-%s", year, t.Format("01-02T15:04:05.000Z07:00")), nil
	}
	return t.Format("2006-01-02T15:04:05.000Z07:00"), nil
}

// UTCString returns the date in the fixed format
// 'Mon, 02 Jan 2006 15:04:05 GMT', or the InvalidDate literal.
func (d Date) UTCString() string {
	t, ok := d.goTime()
	if !ok {
		return InvalidDate
	}
	return t.Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
}

// StringIn returns the date in loc in the shape
// 'Mon Jan 02 2006 15:04:05 GMT-0700 (MST)', or the InvalidDate
// literal. The text beyond the fields themselves is best effort and not
// part of the package's contract; only ISOString and UTCString have
// fixed formats.
func (d Date) StringIn(loc *time.Location) string {
	t, ok := d.goTime()
	if !ok {
		return InvalidDate
	}
	tl := t.In(loc)
	return tl.Format("Mon Jan 02 2006 15:04:05 ") + zoneSuffix(tl)
}

// String implements fmt.Stringer as StringIn(time.UTC).
func (d Date) String() string {
	return d.StringIn(time.UTC)
}

// DateString returns the calendar date portion of StringIn, eg.
// 'Fri Jan 05 2018'.
func (d Date) DateString(loc *time.Location) string {
	t, ok := d.goTime()
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format("Mon Jan 02 2006")
}

// TimeString returns the time of day portion of StringIn, eg.
// '12:30:00 GMT+0000 (UTC)'.
func (d Date) TimeString(loc *time.Location) string {
	t, ok := d.goTime()
	if !ok {
		return InvalidDate
	}
	tl := t.In(loc)
	return tl.Format("15:04:05 ") + zoneSuffix(tl)
}

func zoneSuffix(t time.Time) string {
	name, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign, off = "-", -off
	}
	s := fmt.Sprintf("GMT%s%02d%02d", sign, off/3600, off%3600/60)
	if name != "" {
		s += " (" + name + ")"
	}
	return s
}
