package picker

import (
	"strconv"
	"time"

	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

// Width is the number of cells in a week row.
const Width = 7

const (
	prevText  = "←"
	nextText  = "→"
	blankText = " "
)

// Cell is one button of a grid. Day is zero for blank and label cells.
type Cell struct {
	Text    string
	Day     int
	Holiday bool
	Token   string
}

func (c Cell) Blank() bool {
	return c.Day == 0
}

func blank() Cell {
	return Cell{Text: blankText, Token: IgnoreToken}
}

// Grid is a rendered month. Rows[0] holds the previous-month button, the
// month label and the next-month button, Rows[1] the weekday labels and
// the remaining rows the days, Width cells each.
type Grid struct {
	Year  int
	Month int
	Rows  [][]Cell
}

func (g Grid) Header() []Cell {
	return g.Rows[0]
}

func (g Grid) Weekdays() []Cell {
	return g.Rows[1]
}

func (g Grid) Weeks() [][]Cell {
	return g.Rows[2:]
}

// DayCell returns the cell of day d.
func (g Grid) DayCell(d int) (Cell, bool) {
	for _, row := range g.Weeks() {
		for _, c := range row {
			if c.Day == d && !c.Blank() {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// BuildGrid renders year/month. A zero year or month selects the
// current month.
func (p *Picker) BuildGrid(year, month int) (Grid, error) {
	year, month = p.resolve(year, month)
	name, err := jalali.MonthName(month)
	if err != nil {
		return Grid{}, err
	}
	offset, err := jalali.FirstWeekdayOffset(year, month)
	if err != nil {
		return Grid{}, err
	}
	total, err := jalali.DaysInMonth(year, month)
	if err != nil {
		return Grid{}, err
	}

	rows := make([][]Cell, 0, 2+(offset+total+Width-1)/Width)
	rows = append(rows, []Cell{
		{Text: prevText, Token: Action{Kind: Prev, Year: year, Month: month}.Token(p.prefix)},
		{Text: name + " " + strconv.Itoa(year), Token: IgnoreToken},
		{Text: nextText, Token: Action{Kind: Next, Year: year, Month: month}.Token(p.prefix)},
	})
	labels := jalali.WeekdayLabels()
	header := make([]Cell, len(labels))
	for i, l := range labels {
		header[i] = Cell{Text: l, Token: IgnoreToken}
	}
	rows = append(rows, header)

	cells := make([]Cell, 0, offset+total+Width)
	for range offset {
		cells = append(cells, blank())
	}
	// Day 1 sits in column offset, column 0 being Saturday.
	wd := time.Weekday((offset + int(time.Saturday)) % 7)
	for day := 1; day <= total; day++ {
		d := jalali.Date{Year: year, Month: month, Day: day}
		cells = append(cells, Cell{
			Text:    strconv.Itoa(day),
			Day:     day,
			Holiday: p.classifier.IsHolidayOn(d, wd),
			Token:   Action{Kind: Day, Year: year, Month: month, Day: day}.Token(p.prefix),
		})
		wd = (wd + 1) % 7
	}
	for len(cells)%Width != 0 {
		cells = append(cells, blank())
	}
	for i := 0; i < len(cells); i += Width {
		rows = append(rows, cells[i:i+Width])
	}
	return Grid{Year: year, Month: month, Rows: rows}, nil
}
