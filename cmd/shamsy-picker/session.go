package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/internal/termview"
	"github.com/Aria-Ghojavand/shamsy-picker/picker"
)

var errQuit = errors.New("no date selected")

// session plays the role of a chat transport: it renders grids and turns
// what the user types into the tokens carried by the grid's cells.
type session struct {
	picker       *picker.Picker
	holidays     holiday.Set
	in           *bufio.Scanner
	out          io.Writer
	color        bool
	showHolidays bool
}

func (s *session) colorize(str string) string {
	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !s.color,
		Reset:   true,
	}
	return c.Color(str)
}

func (s *session) render(g picker.Grid) error {
	opts := termview.Options{Color: s.color}
	if today := s.picker.Today(); today.Year == g.Year && today.Month == g.Month {
		opts.Highlight = today.Day
	}
	if err := termview.Render(s.out, g, opts); err != nil {
		return err
	}
	if s.showHolidays {
		return termview.RenderHolidays(s.out, s.holidays, g.Year, g.Month)
	}
	return nil
}

// token maps a line of input to a token of g. Anything that is not a
// shortcut is passed through unchanged.
func token(g picker.Grid, line string) (string, error) {
	switch line {
	case "<", "p", "prev":
		return g.Header()[0].Token, nil
	case ">", "n", "next":
		return g.Header()[2].Token, nil
	}
	if day, err := strconv.Atoi(line); err == nil {
		c, ok := g.DayCell(day)
		if !ok {
			return "", fmt.Errorf("day %d is not in this month", day)
		}
		return c.Token, nil
	}
	return line, nil
}

// run shows year/month and loops until a day is selected.
func (s *session) run(year, month int) (string, error) {
	g, err := s.picker.BuildGrid(year, month)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(s.out, s.colorize("[bold]لطفاً تاریخ مورد نظر را انتخاب کنید:"))
	fmt.Fprintln(s.out, s.picker.TodayLabel())
	if err := s.render(g); err != nil {
		return "", err
	}
	for {
		fmt.Fprint(s.out, s.colorize("[cyan]day, <, > or q: "))
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", err
			}
			return "", errQuit
		}
		line := strings.TrimSpace(s.in.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return "", errQuit
		}
		tok, err := token(g, line)
		if err != nil {
			fmt.Fprintln(s.out, s.colorize("[red]"+err.Error()))
			continue
		}
		out, next, err := s.picker.Apply(tok)
		if err != nil {
			fmt.Fprintln(s.out, s.colorize("[red]"+err.Error()))
			continue
		}
		switch out.Result {
		case picker.Selected:
			sel, _ := out.Selection()
			return sel, nil
		case picker.ReRender:
			g = *next
			if err := s.render(g); err != nil {
				return "", err
			}
		default:
			fmt.Fprintln(s.out, s.colorize("[yellow]ignored"))
		}
	}
}
