package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

func parseGregorian(s string) (time.Time, error) {
	s = strings.NewReplacer("-", "/", ".", "/").Replace(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY/MM/DD, YYYY-MM-DD, or YYYY.MM.DD")
	}
	var f [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date values")
		}
		f[i] = n
	}
	t := time.Date(f[0], time.Month(f[1]), f[2], 0, 0, 0, 0, time.UTC)
	if t.Year() != f[0] || int(t.Month()) != f[1] || t.Day() != f[2] {
		return time.Time{}, fmt.Errorf("invalid Gregorian date")
	}
	return t, nil
}

// convert prints dateStr in the other calendar. dateStr is Jalali unless
// fromGregorian is set.
func convert(w io.Writer, dateStr string, fromGregorian bool, set holiday.Set) error {
	var (
		d jalali.Date
		t time.Time
	)
	if fromGregorian {
		var err error
		if t, err = parseGregorian(dateStr); err != nil {
			return err
		}
		d = jalali.FromTime(t)
	} else {
		var err error
		if d, err = jalali.ParseDate(dateStr); err != nil {
			return fmt.Errorf("invalid Shamsi date: %w", err)
		}
		t = d.Time()
	}
	name, _ := jalali.MonthName(d.Month)
	fmt.Fprintf(w, "Shamsi: %04d/%02d/%02d - %d %s %d\n", d.Year, d.Month, d.Day, d.Day, name, d.Year)
	fmt.Fprintf(w, "Gregorian: %s - %s\n", t.Format("2006/01/02"), t.Format("January 2, 2006"))
	fmt.Fprintf(w, "Day of Week: %s\n", d.Weekday())
	if h, ok := set.Name(d); ok {
		fmt.Fprintf(w, "Holiday: %s\n", h)
	}
	return nil
}
