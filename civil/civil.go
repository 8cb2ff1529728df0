// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civil provides calendar date and time-of-day values at
// millisecond precision. Values are valid by construction: the
// constructors validate their inputs and every other operation can
// assume it is working with a real calendar point.
package civil

import "time"

// Month as an int, January is 1.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the
// given year.
func DaysInMonth(year int, month Month) int {
	switch time.Month(month) {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
