// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/jsdate/civil"
)

// Parse attempts to parse free-form text as a date, returning an
// invalid Date rather than an error when it cannot. Two shapes parse
// consistently: ISO 8601 date and date-time forms, and RFC 2822. Per
// the ISO rules, date-only forms are read as UTC while date-time forms
// without an offset are read as wall-clock time in loc, which is the
// explicit stand-in for the host's ambient timezone and must not be
// nil. Beyond those two shapes a small set of common layouts is tried
// as a best effort; acceptance of any other text is not part of the
// package's contract.
func Parse(text string, loc *time.Location) Date {
	s := strings.TrimSpace(text)
	if s == "" {
		return invalid()
	}
	if d, ok := parseISO(s, loc); ok {
		return d
	}
	if t, ok := parseLayouts(s, loc); ok {
		return FromTime(t)
	}
	return invalid()
}

// isoRe matches the ISO 8601 date and date-time forms: a four digit or
// signed six digit year, optional month and day, and an optional time
// with optional seconds, fraction and offset.
var isoRe = regexp.MustCompile(
	`^([+-]\d{6}|\d{4})` +
		`(?:-(\d{2})(?:-(\d{2}))?)?` +
		`(?:[T ](\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?` +
		`(Z|z|[+-]\d{2}:?\d{2})?)?$`)

func parseISO(s string, loc *time.Location) (Date, bool) {
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(strings.TrimPrefix(m[1], "+"))
	if err != nil {
		return Date{}, false
	}
	month, day := 1, 1
	if m[2] != "" {
		if month, _ = strconv.Atoi(m[2]); month < 1 || month > 12 {
			return invalid(), true
		}
	}
	if m[3] != "" {
		if day, _ = strconv.Atoi(m[3]); day < 1 || day > civil.DaysInMonth(year, civil.Month(month)) {
			return invalid(), true
		}
	}
	hasTime := m[4] != ""
	var hours, minutes, seconds, millis int
	if hasTime {
		hours, _ = strconv.Atoi(m[4])
		minutes, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			seconds, _ = strconv.Atoi(m[6])
		}
		if m[7] != "" {
			frac := m[7]
			if len(frac) > 3 {
				frac = frac[:3]
			}
			for len(frac) < 3 {
				frac += "0"
			}
			millis, _ = strconv.Atoi(frac)
		}
		if minutes > 59 || seconds > 59 {
			return invalid(), true
		}
		// An hour of 24 denotes the end of the day and requires all
		// smaller components to be zero.
		if hours > 24 || (hours == 24 && minutes+seconds+millis != 0) {
			return invalid(), true
		}
	}

	u := epochDate(float64(year), float64(month-1), float64(day),
		float64(hours), float64(minutes), float64(seconds), float64(millis))
	switch {
	case hasTime && m[8] == "":
		// Date-time without an offset: wall-clock time in loc.
		return Date{ms: localToUTC(loc, u)}, true
	case hasTime && m[8] != "Z" && m[8] != "z":
		off, ok := parseISOOffset(m[8])
		if !ok {
			return invalid(), true
		}
		return Date{ms: timeClip(u - float64(off)*msPerMinute)}, true
	default:
		// Explicit Z, or a date-only form, both of which are UTC.
		return Date{ms: timeClip(u)}, true
	}
}

// parseISOOffset parses '+07:00' or '+0700' into minutes east of UTC.
func parseISOOffset(s string) (int, bool) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	s = strings.Replace(s[1:], ":", "", 1)
	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(s[2:])
	if err != nil || hours > 23 || minutes > 59 {
		return 0, false
	}
	return sign * (hours*60 + minutes), true
}

// Layouts with zone information, tried with time.Parse. The first group
// covers RFC 2822 and its common reductions, the second the shape
// produced by StringIn.
var zonedLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04 -0700",
	"Mon, 02 Jan 2006 15:04 MST",
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04 -0700",
	"02 Jan 2006 15:04 MST",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 2 2006 15:04:05 GMT-0700",
}

// Layouts without zone information, tried in loc.
var wallLayouts = []string{
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"Mon Jan 02 2006 15:04:05",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

func parseLayouts(s string, loc *time.Location) (time.Time, bool) {
	// Drop a trailing zone description such as the
	// '(Coordinated Universal Time)' suffix produced by StringIn.
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[:i])
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range wallLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
