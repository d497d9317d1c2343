// Package calendar generates the day grid the public booking page renders.
package calendar

import "time"

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the Gregorian day count for the given month, with
// February at 29 in leap years.
func DaysInMonth(month time.Month, year int) int {
	if month == time.February && isLeap(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// PrevMonth steps one month back, rolling from January into December of the
// previous year.
func PrevMonth(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}

// NextMonth steps one month forward, rolling from December into January of
// the next year.
func NextMonth(month time.Month, year int) (time.Month, int) {
	if month == time.December {
		return time.January, year + 1
	}
	return month + 1, year
}

type Day struct {
	Day     int  `json:"day"`
	Blocked bool `json:"blocked"`
}

// Grid lists every day of the month, flagging the ones the blocked predicate
// reports as taken. Blocked days are unselectable on the client.
func Grid(month time.Month, year int, blocked func(day int) bool) []Day {
	n := DaysInMonth(month, year)
	days := make([]Day, n)
	for i := range days {
		d := i + 1
		days[i] = Day{Day: d, Blocked: blocked(d)}
	}
	return days
}
