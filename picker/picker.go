// Package picker builds Jalali month grids for interactive date pickers
// and decodes the tokens their cells carry.
//
// A Picker is stateless: every token holds the year and month it was
// issued for, so any number of users and calendars can share a Picker.
// Pickers sharing an interaction channel are told apart by their token
// prefix.
//
//	p, _ := picker.New("cal", holiday.New(set))
//	grid, _ := p.BuildGrid(1402, 1)
//	// ... hand grid to a renderer, receive a token back ...
//	out, err := p.Decode("cal_day_1402_1_5")
//	// out.Kind == picker.Selected, out.Date.String() == "1402/1/5"
package picker

import (
	"fmt"
	"time"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

// Picker renders months and decodes tokens for one prefix.
type Picker struct {
	prefix     string
	classifier holiday.Classifier
	now        func() time.Time
}

// Option configures a Picker.
type Option func(*Picker)

// WithClock sets the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(p *Picker) {
		p.now = now
	}
}

// New returns a Picker whose tokens start with prefix.
func New(prefix string, classifier holiday.Classifier, opts ...Option) (*Picker, error) {
	if err := validPrefix(prefix); err != nil {
		return nil, err
	}
	p := &Picker{prefix: prefix, classifier: classifier, now: time.Now}
	for _, fn := range opts {
		fn(p)
	}
	return p, nil
}

func (p *Picker) Prefix() string {
	return p.prefix
}

// Today returns the current Jalali date according to the Picker's clock.
func (p *Picker) Today() jalali.Date {
	return jalali.FromTime(p.now())
}

// TodayLabel returns a prompt line naming today's date.
func (p *Picker) TodayLabel() string {
	t := p.Today()
	name, _ := jalali.MonthName(t.Month)
	return fmt.Sprintf("امروز: %d %s %d", t.Day, name, t.Year)
}

func (p *Picker) resolve(year, month int) (int, int) {
	if year == 0 || month == 0 {
		t := p.Today()
		return t.Year, t.Month
	}
	return year, month
}
