// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate_test

import (
	"testing"
	"time"

	"cloudeng.io/jsdate"
)

func TestParseISO(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)

	d := jsdate.Parse("2018-01-05T12:30:00.000Z", west)
	if !d.IsValid() {
		t.Fatal("invalid")
	}
	for _, f := range []struct {
		name      string
		got, want float64
	}{
		{"year", d.UTCFullYear(), 2018},
		{"month", d.UTCMonth(), 0},
		{"date", d.UTCDate(), 5},
		{"hours", d.UTCHours(), 12},
		{"minutes", d.UTCMinutes(), 30},
	} {
		if f.got != f.want {
			t.Errorf("%v: got %v, want %v", f.name, f.got, f.want)
		}
	}

	for _, tc := range []struct {
		input string
		want  float64
	}{
		// Date-only forms are UTC regardless of the location.
		{"2018", jsdate.FromComponents(2018, 0, 1, 0, 0, 0, 0).Time()},
		{"2018-01", jsdate.FromComponents(2018, 0, 1, 0, 0, 0, 0).Time()},
		{"2018-01-05", jsdate.FromComponents(2018, 0, 5, 0, 0, 0, 0).Time()},
		// Date-time forms without an offset are wall-clock in the location.
		{"2018-01-05T12:30", jsdate.FromComponents(2018, 0, 5, 17, 30, 0, 0).Time()},
		{"2018-01-05T12:30:05", jsdate.FromComponents(2018, 0, 5, 17, 30, 5, 0).Time()},
		{"2018-01-05T12:30:05.123", jsdate.FromComponents(2018, 0, 5, 17, 30, 5, 123).Time()},
		// Explicit offsets.
		{"2018-01-05T12:30:00Z", jsdate.FromComponents(2018, 0, 5, 12, 30, 0, 0).Time()},
		{"2018-01-05T12:30:00+05:30", jsdate.FromComponents(2018, 0, 5, 7, 0, 0, 0).Time()},
		{"2018-01-05T12:30:00-0500", jsdate.FromComponents(2018, 0, 5, 17, 30, 0, 0).Time()},
		// An hour of 24 denotes the end of the day.
		{"2018-01-05T24:00Z", jsdate.FromComponents(2018, 0, 6, 0, 0, 0, 0).Time()},
		// Expanded six digit years.
		{"+275760-09-13T00:00:00.000Z", 8.64e15},
		{"-271821-04-20T00:00:00.000Z", -8.64e15},
	} {
		d := jsdate.Parse(tc.input, west)
		if !d.IsValid() {
			t.Errorf("%v: invalid", tc.input)
			continue
		}
		if got, want := d.Time(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseRFC2822(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  float64
	}{
		{"Fri, 05 Jan 2018 12:30:00 GMT", 1515155400000},
		{"Fri, 05 Jan 2018 12:30:00 +0000", 1515155400000},
		{"Fri, 05 Jan 2018 12:30:00 -0500", 1515173400000},
		{"Fri, 05 Jan 2018 12:30 GMT", 1515155400000},
		{"05 Jan 2018 12:30:00 GMT", 1515155400000},
		{"05 Jan 2018 12:30:00 -0500", 1515173400000},
	} {
		d := jsdate.Parse(tc.input, time.UTC)
		if !d.IsValid() {
			t.Errorf("%v: invalid", tc.input)
			continue
		}
		if got, want := d.Time(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	d := jsdate.FromComponents(2018, 0, 5, 12, 30, 0, 0)

	iso, err := d.ISOString()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := jsdate.Parse(iso, time.UTC).Time(), d.Time(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jsdate.Parse(d.UTCString(), time.UTC).Time(), d.Time(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// StringIn output parses back, including the zone description suffix.
	west := time.FixedZone("EST", -5*3600)
	if got, want := jsdate.Parse(d.StringIn(west), time.UTC).Time(), d.Time(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseInvalid(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)
	for _, tc := range []string{
		"",
		"   ",
		"not a date",
		"2018-13-01",
		"2018-00-01",
		"2018-02-29",
		"2018-01-32",
		"2018-01-05T25:00",
		"2018-01-05T24:30",
		"2018-01-05T12:61",
		"2018-01-05T12:30:61",
		"1515155400000",
		"Fri, 99 Jan 2018 12:30:00 GMT",
	} {
		if d := jsdate.Parse(tc, west); d.IsValid() {
			t.Errorf("%q: expected an invalid date", tc)
		}
	}
}

func TestParseBestEffort(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)
	for _, tc := range []struct {
		input string
		want  float64
	}{
		{"January 5, 2018 12:30:00", jsdate.FromComponents(2018, 0, 5, 17, 30, 0, 0).Time()},
		{"Jan 5, 2018", jsdate.FromComponents(2018, 0, 5, 5, 0, 0, 0).Time()},
		{"2018/01/05 12:30:00", jsdate.FromComponents(2018, 0, 5, 17, 30, 0, 0).Time()},
		{"2018/01/05", jsdate.FromComponents(2018, 0, 5, 5, 0, 0, 0).Time()},
	} {
		d := jsdate.Parse(tc.input, west)
		if !d.IsValid() {
			t.Errorf("%v: invalid", tc.input)
			continue
		}
		if got, want := d.Time(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}
