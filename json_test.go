// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"cloudeng.io/jsdate"
	"cloudeng.io/jsdate/instant"
)

func TestMarshalJSON(t *testing.T) {
	d := jsdate.FromComponents(2018, 0, 5, 12, 30, 0, 0)
	buf, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `{"fromTime":1515155400000}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := json.Marshal(jsdate.FromMillis(math.NaN())); !errors.Is(err, jsdate.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, jsdate.ErrInvalidDate)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var d jsdate.Date
	if err := json.Unmarshal([]byte(`{"fromTime":1515155400000}`), &d); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Time(), float64(1515155400000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []string{
		`{}`,
		`{"fromTime":null}`,
		`{"fromTime":"2018-01-05"}`,
		`{"fromTime":9e15}`,
		`[1515155400000]`,
	} {
		var d jsdate.Date
		if err := json.Unmarshal([]byte(tc), &d); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}

	var d2 jsdate.Date
	err := json.Unmarshal([]byte(`{"fromTime":9e15}`), &d2)
	if !errors.Is(err, instant.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, instant.ErrOutOfRange)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, ms := range []float64{0, 1515155400123, -1515155400123, 8.64e15, -8.64e15} {
		d := jsdate.FromMillis(ms)
		buf, err := json.Marshal(d)
		if err != nil {
			t.Fatal(err)
		}
		var back jsdate.Date
		if err := json.Unmarshal(buf, &back); err != nil {
			t.Fatal(err)
		}
		if got, want := back.Time(), d.Time(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestJSONInStruct(t *testing.T) {
	type event struct {
		Name string      `json:"name"`
		When jsdate.Date `json:"when"`
	}
	in := event{Name: "release", When: jsdate.FromMillis(1515155400000)}
	buf, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out event
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.When.Time(), in.When.Time(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Name, in.Name; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
