// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package instant_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"cloudeng.io/jsdate/instant"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		ms   float64
		want int64
	}{
		{0, 0},
		{1515155400000, 1515155400000},
		{-1515155400000, -1515155400000},
		{123.9, 123},
		{-123.9, -123},
		{instant.MaxMillis, instant.MaxMillis},
		{instant.MinMillis, instant.MinMillis},
	} {
		i, err := instant.New(tc.ms)
		if err != nil {
			t.Errorf("%v: %v", tc.ms, err)
			continue
		}
		if got, want := i.Millis(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.ms, got, want)
		}
	}

	for _, tc := range []struct {
		ms   float64
		want error
	}{
		{math.NaN(), instant.ErrNonFinite},
		{math.Inf(1), instant.ErrNonFinite},
		{math.Inf(-1), instant.ErrNonFinite},
		{instant.MaxMillis + 1, instant.ErrOutOfRange},
		{instant.MinMillis - 1, instant.ErrOutOfRange},
	} {
		if _, err := instant.New(tc.ms); !errors.Is(err, tc.want) {
			t.Errorf("%v: got %v, want %v", tc.ms, err, tc.want)
		}
	}
}

func TestFromMillis(t *testing.T) {
	i, err := instant.FromMillis(1515155400000)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := i.Millis(), int64(1515155400000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := instant.FromMillis(instant.MaxMillis + 1); !errors.Is(err, instant.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, instant.ErrOutOfRange)
	}
}

func TestFromTime(t *testing.T) {
	when := time.Date(2018, 1, 5, 12, 30, 0, 1500000, time.UTC)
	i, err := instant.FromTime(when)
	if err != nil {
		t.Fatal(err)
	}
	// Precision below a millisecond is discarded.
	if got, want := i.Millis(), int64(1515155400001); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := i.Time(), time.Date(2018, 1, 5, 12, 30, 0, 1000000, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	a, _ := instant.FromMillis(1)
	b, _ := instant.FromMillis(2)
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Compare(a), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	i, _ := instant.FromMillis(1515155400000)
	if got, want := i.String(), "2018-01-05T12:30:00.000Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
