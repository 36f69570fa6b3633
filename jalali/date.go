package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrOutOfRange is returned for a month, day, weekday column or year that
// lies outside the calendar's bounds.
var ErrOutOfRange = errors.New("out of range")

// Date is a day in the Jalali calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String returns the canonical form "Y/M/D" without zero padding.
func (d Date) String() string {
	return strconv.Itoa(d.Year) + "/" + strconv.Itoa(d.Month) + "/" + strconv.Itoa(d.Day)
}

// Validate returns an error wrapping ErrOutOfRange unless d names an
// existing day.
func (d Date) Validate() error {
	days, err := DaysInMonth(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > days {
		return fmt.Errorf("day %d of %d/%d: %w", d.Day, d.Year, d.Month, ErrOutOfRange)
	}
	return nil
}

// Gregorian returns the proleptic Gregorian year, month and day for d.
// d must be valid.
func (d Date) Gregorian() (int, int, int) {
	return jdnToGregorian(toJDN(d.Year, d.Month, d.Day))
}

// Time returns midnight UTC of the Gregorian day equivalent to d.
func (d Date) Time() time.Time {
	gy, gm, gd := d.Gregorian()
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((isoWeekday(toJDN(d.Year, d.Month, d.Day)) + 1) % 7)
}

// FromGregorian converts a proleptic Gregorian date.
func FromGregorian(gy, gm, gd int) Date {
	return fromJDN(gregorianToJDN(gy, gm, gd))
}

// FromTime converts the calendar day of t, in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromGregorian(y, int(m), d)
}

// Today returns the current Jalali date in the local time zone.
func Today() Date {
	return FromTime(time.Now())
}

// DaysInMonth returns 31 for months 1-6, 30 for months 7-11 and 29 for
// Esfand, or 30 in a leap year.
func DaysInMonth(year, month int) (int, error) {
	if !inRange(year) {
		return 0, fmt.Errorf("year %d: %w", year, ErrOutOfRange)
	}
	switch {
	case month >= 1 && month <= 6:
		return 31, nil
	case month >= 7 && month <= 11:
		return 30, nil
	case month == 12:
		if IsLeapYear(year) {
			return 30, nil
		}
		return 29, nil
	}
	return 0, fmt.Errorf("month %d: %w", month, ErrOutOfRange)
}

// FirstWeekdayOffset returns the display column, 0 for Saturday through
// 6 for Friday, of the first day of the month.
func FirstWeekdayOffset(year, month int) (int, error) {
	if _, err := DaysInMonth(year, month); err != nil {
		return 0, err
	}
	return (isoWeekday(toJDN(year, month, 1)) + 2) % 7, nil
}

// Column returns the display column of weekday wd.
func Column(wd time.Weekday) int {
	return (int(wd) + 1) % 7
}

// AddMonths moves delta months from year/month, carrying into the year.
func AddMonths(year, month, delta int) (int, int) {
	idx := year*12 + (month - 1) + delta
	y, m := idx/12, idx%12
	if m < 0 {
		y--
		m += 12
	}
	return y, m + 1
}

// Resolve returns year and month unchanged when both are set, otherwise
// the year and month of today.
func Resolve(year, month int) (int, int) {
	if year == 0 || month == 0 {
		t := Today()
		return t.Year, t.Month
	}
	return year, month
}

// ParseDate parses Y/M/D, Y-M-D or Y.M.D with optional zero padding.
func ParseDate(s string) (Date, error) {
	s = strings.NewReplacer("-", "/", ".", "/").Replace(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY/MM/DD, YYYY-MM-DD, or YYYY.MM.DD", s)
	}
	var f [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		f[i] = n
	}
	d := Date{Year: f[0], Month: f[1], Day: f[2]}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}
