package picker_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
	"github.com/Aria-Ghojavand/shamsy-picker/picker"
)

func newPicker(t *testing.T, prefix string, entries map[string]string) *picker.Picker {
	t.Helper()
	set, err := holiday.NewSet(entries)
	require.NoError(t, err)
	// 2023-03-26 is 1402/1/6.
	clock := func() time.Time { return time.Date(2023, time.March, 26, 9, 0, 0, 0, time.UTC) }
	p, err := picker.New(prefix, holiday.New(set), picker.WithClock(clock))
	require.NoError(t, err)
	return p
}

func TestNewRejectsBadPrefix(t *testing.T) {
	for _, prefix := range []string{"", "my_cal", "_"} {
		_, err := picker.New(prefix, holiday.New(holiday.Set{}))
		assert.ErrorIs(t, err, picker.ErrInvalidPrefix, prefix)
	}
}

func TestFarvardin1402(t *testing.T) {
	p := newPicker(t, "cal", map[string]string{"1402/1/1": "عید نوروز", "1402/1/13": "روز طبیعت"})
	g, err := p.BuildGrid(1402, 1)
	require.NoError(t, err)

	header := g.Header()
	require.Len(t, header, 3)
	assert.Equal(t, "cal_prev_1402_1", header[0].Token)
	assert.Equal(t, "فروردین 1402", header[1].Text)
	assert.Equal(t, picker.IgnoreToken, header[1].Token)
	assert.Equal(t, "cal_next_1402_1", header[2].Token)

	var labels []string
	for _, c := range g.Weekdays() {
		labels = append(labels, c.Text)
		assert.Equal(t, picker.IgnoreToken, c.Token)
	}
	assert.Equal(t, []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}, labels)

	// offset 3 + 31 days = 34 cells = 5 weeks.
	require.Len(t, g.Rows, 7)
	first := g.Weeks()[0]
	for col := 0; col < 3; col++ {
		assert.True(t, first[col].Blank())
		assert.Equal(t, picker.IgnoreToken, first[col].Token)
	}
	assert.Equal(t, 1, first[3].Day)
	assert.Equal(t, "cal_day_1402_1_1", first[3].Token)

	days := 0
	for _, row := range g.Weeks() {
		for _, c := range row {
			if !c.Blank() {
				days++
			}
		}
	}
	assert.Equal(t, 31, days)

	holidays := map[int]bool{}
	for _, row := range g.Weeks() {
		for _, c := range row {
			if c.Holiday {
				holidays[c.Day] = true
			}
		}
	}
	assert.Equal(t, map[int]bool{1: true, 4: true, 11: true, 13: true, 18: true, 25: true}, holidays)

	out, err := p.Decode("cal_prev_1402_1")
	require.NoError(t, err)
	assert.Equal(t, picker.Outcome{Result: picker.ReRender, Year: 1401, Month: 12}, out)
}

func TestGridShape(t *testing.T) {
	p := newPicker(t, "cal", nil)
	for year := 1395; year <= 1410; year++ {
		for month := 1; month <= 12; month++ {
			g, err := p.BuildGrid(year, month)
			require.NoError(t, err)
			total, err := jalali.DaysInMonth(year, month)
			require.NoError(t, err)
			offset, err := jalali.FirstWeekdayOffset(year, month)
			require.NoError(t, err)

			assert.Len(t, g.Rows, 2+(offset+total+6)/7, "%d/%d", year, month)
			assert.Len(t, g.Weekdays(), picker.Width)
			count := 0
			for _, row := range g.Weeks() {
				require.Len(t, row, picker.Width)
				for col, c := range row {
					if c.Blank() {
						assert.Equal(t, picker.IgnoreToken, c.Token)
						continue
					}
					count++
					d := jalali.Date{Year: year, Month: month, Day: c.Day}
					assert.Equal(t, jalali.Column(d.Weekday()), col, "%v", d)
					assert.Equal(t, d.Weekday() == time.Friday, c.Holiday, "%v", d)
				}
			}
			assert.Equal(t, total, count, "%d/%d", year, month)
		}
	}
}

func TestBuildGridIsPure(t *testing.T) {
	p := newPicker(t, "cal", map[string]string{"1402/7/1": "x"})
	a, err := p.BuildGrid(1402, 7)
	require.NoError(t, err)
	b, err := p.BuildGrid(1402, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildGridDefaultsToToday(t *testing.T) {
	p := newPicker(t, "cal", nil)
	for _, args := range [][2]int{{0, 0}, {1402, 0}, {0, 7}} {
		g, err := p.BuildGrid(args[0], args[1])
		require.NoError(t, err)
		assert.Equal(t, 1402, g.Year)
		assert.Equal(t, 1, g.Month)
	}
	assert.Equal(t, jalali.Date{Year: 1402, Month: 1, Day: 6}, p.Today())
	assert.Equal(t, "امروز: 6 فروردین 1402", p.TodayLabel())
}

func TestBuildGridOutOfRange(t *testing.T) {
	p := newPicker(t, "cal", nil)
	_, err := p.BuildGrid(1402, 13)
	assert.ErrorIs(t, err, jalali.ErrOutOfRange)
	_, err = p.BuildGrid(jalali.MaxYear+1, 1)
	assert.ErrorIs(t, err, jalali.ErrOutOfRange)
}

func TestLeapEsfand(t *testing.T) {
	p := newPicker(t, "cal", nil)
	g, err := p.BuildGrid(1403, 12)
	require.NoError(t, err)
	_, ok := g.DayCell(30)
	assert.True(t, ok)

	g, err = p.BuildGrid(1402, 12)
	require.NoError(t, err)
	_, ok = g.DayCell(30)
	assert.False(t, ok)
}

func TestSelectionRoundTrip(t *testing.T) {
	p := newPicker(t, "cal", nil)
	for _, ym := range [][2]int{{1402, 1}, {1402, 7}, {1403, 12}, {1399, 12}} {
		g, err := p.BuildGrid(ym[0], ym[1])
		require.NoError(t, err)
		for _, row := range g.Weeks() {
			for _, c := range row {
				if c.Blank() {
					continue
				}
				out, err := p.Decode(c.Token)
				require.NoError(t, err)
				require.Equal(t, picker.Selected, out.Result)
				sel, ok := out.Selection()
				require.True(t, ok)
				assert.Equal(t, fmt.Sprintf("%d/%d/%d", ym[0], ym[1], c.Day), sel)
			}
		}
	}
}

func TestNavigationWraps(t *testing.T) {
	p := newPicker(t, "cal", nil)
	tests := []struct {
		token       string
		year, month int
	}{
		{"cal_next_1402_12", 1403, 1},
		{"cal_prev_1402_1", 1401, 12},
		{"cal_next_1402_5", 1402, 6},
		{"cal_prev_1402_5", 1402, 4},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			out, g, err := p.Apply(tt.token)
			require.NoError(t, err)
			assert.Equal(t, picker.ReRender, out.Result)
			assert.Equal(t, tt.year, out.Year)
			assert.Equal(t, tt.month, out.Month)
			require.NotNil(t, g)
			assert.Equal(t, tt.year, g.Year)
			assert.Equal(t, tt.month, g.Month)
		})
	}
}

func TestDecodeNoOp(t *testing.T) {
	p := newPicker(t, "cal", nil)
	for _, token := range []string{
		"other_day_1402_1_5",
		"calendar_day_1402_1_5",
		"ignore",
		"",
		"cal",
		"cal_",
		"cal_ignore",
		"cal_ignore_1402",
		"cal_jump_1402_1",
	} {
		out, err := p.Decode(token)
		require.NoError(t, err, token)
		assert.Equal(t, picker.NoOp, out.Result, token)
		_, ok := out.Selection()
		assert.False(t, ok)

		out, g, err := p.Apply(token)
		require.NoError(t, err)
		assert.Equal(t, picker.NoOp, out.Result)
		assert.Nil(t, g)
	}
}

func TestDecodeInvalid(t *testing.T) {
	p := newPicker(t, "cal", nil)
	for _, token := range []string{
		"cal_day_1402_1",
		"cal_day_1402_1_5_6",
		"cal_day_1402_x_5",
		"cal_day_1402_1_",
		"cal_day_1402_1_32",
		"cal_day_1402_12_30",
		"cal_day_1402_13_1",
		"cal_prev_1402",
		"cal_prev_1402_0",
		"cal_next_1402_13",
		"cal_next_abc_1",
	} {
		_, err := p.Decode(token)
		assert.ErrorIs(t, err, picker.ErrInvalidToken, token)
	}
}

func TestPrefixIsolation(t *testing.T) {
	a := newPicker(t, "cal", nil)
	b := newPicker(t, "other", nil)
	g, err := b.BuildGrid(1402, 1)
	require.NoError(t, err)
	c, ok := g.DayCell(5)
	require.True(t, ok)
	assert.Equal(t, "other_day_1402_1_5", c.Token)

	out, err := a.Decode(c.Token)
	require.NoError(t, err)
	assert.Equal(t, picker.NoOp, out.Result)

	out, err = b.Decode(c.Token)
	require.NoError(t, err)
	sel, _ := out.Selection()
	assert.Equal(t, "1402/1/5", sel)
}

func TestActionToken(t *testing.T) {
	tests := []struct {
		action picker.Action
		want   string
	}{
		{picker.Action{Kind: picker.Prev, Year: 1402, Month: 1}, "cal_prev_1402_1"},
		{picker.Action{Kind: picker.Next, Year: 1402, Month: 12}, "cal_next_1402_12"},
		{picker.Action{Kind: picker.Day, Year: 1402, Month: 1, Day: 5}, "cal_day_1402_1_5"},
		{picker.Action{Kind: picker.Ignore}, "cal_ignore"},
	}
	for _, tt := range tests {
		got := tt.action.Token("cal")
		assert.Equal(t, tt.want, got)
		a, ok, err := picker.ParseToken("cal", got)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, tt.action, a)
	}
	assert.Equal(t, "Kind(9)", picker.Kind(9).String())
}
