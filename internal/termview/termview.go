// Package termview draws picker grids on a terminal.
package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/picker"
)

type Color struct{ r, g, b int }

func rgb(c Color, s string) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, s)
}

var (
	offday = Color{255, 0, 0}
	white  = Color{255, 255, 255}
	green  = Color{188, 188, 188}
	blue   = Color{135, 206, 235}
	yellow = Color{255, 255, 0}
)

// CellWidth is the number of terminal columns each cell occupies.
const CellWidth = 4

// Width is the visible width of every line Render prints.
const Width = CellWidth * picker.Width

type Options struct {
	Color bool
	// Highlight is a day to draw in yellow, 0 for none.
	Highlight int
}

func (o Options) paint(c Color, s string) string {
	if !o.Color {
		return s
	}
	return rgb(c, s)
}

// pad right-aligns s in width terminal columns.
func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func center(s string, width int, fill string) string {
	total := width - uniseg.StringWidth(s)
	if total < 0 {
		return s
	}
	left := total / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, total-left)
}

// Render writes the grid: the header line with the navigation arrows
// around the month label, the weekday labels, then one line per week.
func Render(w io.Writer, g picker.Grid, opts Options) error {
	header := g.Header()
	title := " " + header[1].Text + " "
	arrows := uniseg.StringWidth(header[0].Text) + uniseg.StringWidth(header[2].Text)
	line := header[0].Text + center(title, Width-arrows, "=") + header[2].Text
	if _, err := fmt.Fprintln(w, opts.paint(white, line)); err != nil {
		return err
	}

	var sb strings.Builder
	for _, c := range g.Weekdays() {
		sb.WriteString(opts.paint(green, pad(c.Text, CellWidth)))
	}
	if _, err := fmt.Fprintln(w, sb.String()); err != nil {
		return err
	}

	for _, week := range g.Weeks() {
		sb.Reset()
		for _, c := range week {
			cell := pad(c.Text, CellWidth)
			switch {
			case c.Blank():
			case c.Day == opts.Highlight:
				cell = opts.paint(yellow, cell)
			case c.Holiday:
				if !opts.Color {
					cell = pad("*"+c.Text, CellWidth)
				}
				cell = opts.paint(offday, cell)
			default:
				cell = opts.paint(blue, cell)
			}
			sb.WriteString(cell)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderHolidays lists the named holidays of year/month.
func RenderHolidays(w io.Writer, set holiday.Set, year, month int) error {
	if _, err := fmt.Fprintln(w, "Holidays in this month:"); err != nil {
		return err
	}
	list := set.InMonth(year, month)
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No holidays in this month.")
		return err
	}
	for _, h := range list {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", h.Date, h.Name); err != nil {
			return err
		}
	}
	return nil
}
