// Command shamsy-picker shows a Jalali month calendar in the terminal and
// lets the user page through months and pick a day. The chosen day is
// printed as Y/M/D.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"golang.org/x/term"

	"github.com/Aria-Ghojavand/shamsy-picker/holiday"
	"github.com/Aria-Ghojavand/shamsy-picker/internal/holidayapi"
	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
	"github.com/Aria-Ghojavand/shamsy-picker/picker"
)

type flags struct {
	config       string
	prefix       string
	holidays     string
	remote       bool
	cacheDir     string
	restDay      string
	color        string
	logLevel     string
	convert      string
	gregorian    bool
	showHolidays bool
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintln(w, "Usage: shamsy-picker [flags] [year] [month]")
		fmt.Fprintln(w, "\nFlags:")
		fs.PrintDefaults()
		fmt.Fprintln(w, "\nWhile the calendar is shown, type a day number to select it,")
		fmt.Fprintln(w, "< or > to change month, or q to quit.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  shamsy-picker                           # Pick a day of the current month")
		fmt.Fprintln(w, "  shamsy-picker 1404 7                    # Start at Mehr 1404")
		fmt.Fprintln(w, "  shamsy-picker -show-holidays 1404 1     # List named holidays under each month")
		fmt.Fprintln(w, "  shamsy-picker -c 1403/09/15             # Convert Shamsi to Gregorian")
		fmt.Fprintln(w, "  shamsy-picker -g -c 2024-12-05          # Convert Gregorian to Shamsi")
	}
}

func parseFlags(args []string, stderr io.Writer) (flags, []string, *flag.FlagSet, error) {
	var fl flags
	fs := flag.NewFlagSet("shamsy-picker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&fl.config, "config", "", "YAML configuration file")
	fs.StringVar(&fl.prefix, "prefix", "", "token prefix identifying this calendar")
	fs.StringVar(&fl.holidays, "holidays", "", "JSON or YAML file mapping Y/M/D to holiday names")
	fs.BoolVar(&fl.remote, "remote", false, "download holidays instead of reading a file")
	fs.StringVar(&fl.cacheDir, "cache-dir", "", "directory for downloaded holidays")
	fs.StringVar(&fl.restDay, "rest-day", "", "weekly rest day marked as a holiday")
	fs.StringVar(&fl.color, "color", "", "auto, always or never")
	fs.StringVar(&fl.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&fl.convert, "c", "", "convert a date between calendars (YYYY/MM/DD, YYYY-MM-DD or YYYY.MM.DD)")
	fs.BoolVar(&fl.gregorian, "g", false, "with -c, convert from Gregorian to Shamsi")
	fs.BoolVar(&fl.showHolidays, "show-holidays", false, "list the named holidays of the month shown")
	fs.Usage = usage(fs)
	if err := fs.Parse(args); err != nil {
		return fl, nil, fs, err
	}
	return fl, fs.Args(), fs, nil
}

// merge applies the flags that were set over cfg.
func (fl flags) merge(fs *flag.FlagSet, cfg config) config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prefix":
			cfg.Prefix = fl.prefix
		case "holidays":
			cfg.Holidays = fl.holidays
		case "remote":
			cfg.Remote = fl.remote
		case "cache-dir":
			cfg.CacheDir = fl.cacheDir
		case "rest-day":
			cfg.RestDay = fl.restDay
		case "color":
			cfg.Color = fl.color
		case "log-level":
			cfg.LogLevel = fl.logLevel
		}
	})
	return cfg
}

func parseYearMonth(args []string) (int, int, error) {
	switch len(args) {
	case 0:
		return 0, 0, nil
	case 1:
		return 0, 0, fmt.Errorf("a month is required with the year")
	case 2:
		y, err1 := strconv.Atoi(args[0])
		m, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil || y < 1 || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid year or month argument")
		}
		return y, m, nil
	}
	return 0, 0, fmt.Errorf("too many arguments")
}

func loadHolidays(ctx context.Context, cfg config, year int, progress io.Writer) holiday.Set {
	if !cfg.Remote {
		return holiday.Load(ctx, cfg.Holidays)
	}
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		dir, err := holidayapi.DefaultCacheDir()
		if err != nil {
			ctxlog.Logger(ctx).Warn("holiday cache disabled", "error", err)
		}
		cacheDir = dir
	}
	client := &holidayapi.Client{CacheDir: cacheDir, Progress: progress}
	entries, err := client.FetchYears(ctx, year-1, year, year+1)
	if err != nil {
		ctxlog.Logger(ctx).Warn("could not fetch all holidays", "error", err)
	}
	set, err := holiday.NewSet(entries)
	if err != nil {
		ctxlog.Logger(ctx).Warn("ignoring malformed holidays", "error", err)
	}
	return set
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, isTerminal bool) error {
	fl, rest, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(fl.config)
	if err != nil {
		return err
	}
	cfg = fl.merge(fs, cfg)

	level, err := cfg.logLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.Context(ctx, logger)

	restDay, err := cfg.restDay()
	if err != nil {
		return err
	}
	useColor, err := cfg.useColor(isTerminal)
	if err != nil {
		return err
	}

	if fl.convert != "" {
		year := jalali.Today().Year
		if d, err := jalali.ParseDate(fl.convert); err == nil && !fl.gregorian {
			year = d.Year
		}
		set := loadHolidays(ctx, cfg, year, stderr)
		return convert(stdout, fl.convert, fl.gregorian, set)
	}

	year, month, err := parseYearMonth(rest)
	if err != nil {
		return err
	}
	year, month = jalali.Resolve(year, month)

	set := loadHolidays(ctx, cfg, year, stderr)
	p, err := picker.New(cfg.Prefix, holiday.New(set, holiday.WithRestDay(restDay)))
	if err != nil {
		return err
	}
	logger.Debug("starting picker", "prefix", cfg.Prefix, "year", year, "month", month, "holidays", set.Len())

	s := &session{
		picker:       p,
		holidays:     set,
		in:           bufio.NewScanner(stdin),
		out:          stdout,
		color:        useColor,
		showHolidays: fl.showHolidays,
	}
	sel, err := s.run(year, month)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, sel)
	return nil
}

func main() {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, isTerminal)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errQuit):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
