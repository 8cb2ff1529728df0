// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jsdate

import (
	"encoding/json"
	"fmt"

	"cloudeng.io/jsdate/instant"
)

// The interchange form mirrors the Date as a single numeric field
// carrying the millisecond reading, {"fromTime": 1515155400000}, so
// that decoding is exactly FromMillis applied to the field. The round
// trip is exact for every valid Date. Invalid Dates fail fast on
// encode: JSON has no NaN literal and a stand-in number would decode
// into a wrong but valid-looking Date.

type jsonDate struct {
	FromTime *float64 `json:"fromTime"`
}

// MarshalJSON implements json.Marshaler, returning ErrInvalidDate for
// an invalid Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDate
	}
	return json.Marshal(jsonDate{FromTime: &d.ms})
}

// UnmarshalJSON implements json.Unmarshaler. The fromTime field must be
// present and a finite number within the representable range; anything
// else is malformed interchange data and an error, not an invalid Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var w jsonDate
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.FromTime == nil {
		return fmt.Errorf("missing or null fromTime field")
	}
	i, err := instant.New(*w.FromTime)
	if err != nil {
		return fmt.Errorf("fromTime: %w", err)
	}
	*d = FromInstant(i)
	return nil
}
