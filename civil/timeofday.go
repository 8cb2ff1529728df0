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

// TimeOfDay represents a time of day with millisecond precision.
// Values are ordered, ie. TimeOfDay values for later times compare
// greater than those for earlier ones.
type TimeOfDay uint32

// The packed layout is hour<<22 | minute<<16 | second<<10 | millisecond.

// NewTimeOfDay creates a TimeOfDay from the specified hour, minute,
// second and millisecond, validating that each is within range.
func NewTimeOfDay(hour, minute, second, millisecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute: %d", minute)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("invalid second: %d", second)
	}
	if millisecond < 0 || millisecond > 999 {
		return 0, fmt.Errorf("invalid millisecond: %d", millisecond)
	}
	return TimeOfDay(hour)<<22 | TimeOfDay(minute)<<16 | TimeOfDay(second)<<10 | TimeOfDay(millisecond), nil
}

// TimeOfDayFromTime returns the TimeOfDay for t in t's location.
// Precision below a millisecond is discarded.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
	return tod
}

func (t TimeOfDay) Hour() int {
	return int(t >> 22)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 16 & 0x3f)
}

func (t TimeOfDay) Second() int {
	return int(t >> 10 & 0x3f)
}

func (t TimeOfDay) Millisecond() int {
	return int(t & 0x3ff)
}

// Duration returns the elapsed time from midnight to t.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Millisecond())*time.Millisecond
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Millisecond())
}

// Parse val in the format '15:04[:05[.000]]'. Fractions longer than
// three digits are truncated to millisecond precision.
func (t *TimeOfDay) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid time of day %q, expected format '15:04:05.000'", val)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid hour: %s", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid minute: %s", parts[1])
	}
	second, millisecond := 0, 0
	if len(parts) == 3 {
		sec, frac, hasFrac := strings.Cut(parts[2], ".")
		if second, err = strconv.Atoi(sec); err != nil {
			return fmt.Errorf("invalid second: %s", sec)
		}
		if hasFrac {
			if millisecond, err = parseMillis(frac); err != nil {
				return err
			}
		}
	}
	tod, err := NewTimeOfDay(hour, minute, second, millisecond)
	if err != nil {
		return err
	}
	*t = tod
	return nil
}

func parseMillis(frac string) (int, error) {
	if len(frac) == 0 {
		return 0, fmt.Errorf("empty fraction")
	}
	if len(frac) > 3 {
		frac = frac[:3]
	}
	for len(frac) < 3 {
		frac += "0"
	}
	ms, err := strconv.Atoi(frac)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction: %s", frac)
	}
	return ms, nil
}
