// Package holiday classifies Jalali dates as holidays, either because they
// appear in a table of named holidays or because they fall on the weekly
// rest day.
//
// Holiday tables are keyed by the canonical "Y/M/D" form of a date, with
// no zero padding:
//
//	set, err := holiday.NewSet(map[string]string{"1402/1/1": "عید نوروز"})
//	c := holiday.New(set)
//	c.IsHoliday(jalali.Date{Year: 1402, Month: 1, Day: 1}) // true
//	c.IsHoliday(jalali.Date{Year: 1402, Month: 1, Day: 4}) // true, Friday
package holiday

import (
	"fmt"
	"sort"
	"time"

	"cloudeng.io/errors"

	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

// Holiday is a single named holiday.
type Holiday struct {
	Date jalali.Date
	Name string
}

// Set is an immutable table of named holidays. The zero value is empty.
type Set struct {
	names map[string]string
}

// NewSet builds a Set from entries keyed by date. Keys may be zero padded
// and may use '-' or '.' as separators; they are stored in canonical form.
// Entries whose key is not a valid date are dropped and reported in the
// returned error, the Set holds every valid entry regardless.
func NewSet(entries map[string]string) (Set, error) {
	names := make(map[string]string, len(entries))
	errs := &errors.M{}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d, err := jalali.ParseDate(k)
		if err != nil {
			errs.Append(fmt.Errorf("holiday %q: %w", k, err))
			continue
		}
		names[d.String()] = entries[k]
	}
	return Set{names: names}, errs.Err()
}

// Name returns the name of the holiday on d, if any.
func (s Set) Name(d jalali.Date) (string, bool) {
	name, ok := s.names[d.String()]
	return name, ok
}

// Contains reports whether d is a named holiday.
func (s Set) Contains(d jalali.Date) bool {
	_, ok := s.names[d.String()]
	return ok
}

func (s Set) Len() int {
	return len(s.names)
}

// InMonth returns the named holidays of the given month sorted by day.
func (s Set) InMonth(year, month int) []Holiday {
	days, err := jalali.DaysInMonth(year, month)
	if err != nil {
		return nil
	}
	var out []Holiday
	for day := 1; day <= days; day++ {
		d := jalali.Date{Year: year, Month: month, Day: day}
		if name, ok := s.Name(d); ok {
			out = append(out, Holiday{Date: d, Name: name})
		}
	}
	return out
}

// Classifier decides whether a day is a holiday.
type Classifier struct {
	set     Set
	restDay time.Weekday
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRestDay sets the weekly rest day, time.Friday by default.
func WithRestDay(wd time.Weekday) Option {
	return func(c *Classifier) {
		c.restDay = wd
	}
}

// New returns a Classifier over set.
func New(set Set, opts ...Option) Classifier {
	c := Classifier{set: set, restDay: time.Friday}
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

func (c Classifier) Set() Set {
	return c.set
}

func (c Classifier) RestDay() time.Weekday {
	return c.restDay
}

// IsHoliday reports whether d is a named holiday or falls on the rest day.
func (c Classifier) IsHoliday(d jalali.Date) bool {
	return c.IsHolidayOn(d, d.Weekday())
}

// IsHolidayOn is like IsHoliday for a caller that already knows the
// weekday of d.
func (c Classifier) IsHolidayOn(d jalali.Date, wd time.Weekday) bool {
	named := c.set.Contains(d)
	rest := wd == c.restDay
	return named || rest
}
