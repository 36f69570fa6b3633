package jalali

import "fmt"

var monthNames = []string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// Saturday first.
var weekdayLabels = []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// MonthName returns the Persian name of month 1-12.
func MonthName(month int) (string, error) {
	if month < 1 || month > len(monthNames) {
		return "", fmt.Errorf("month %d: %w", month, ErrOutOfRange)
	}
	return monthNames[month-1], nil
}

// WeekdayLabel returns the short label of display column 0-6.
func WeekdayLabel(column int) (string, error) {
	if column < 0 || column >= len(weekdayLabels) {
		return "", fmt.Errorf("weekday column %d: %w", column, ErrOutOfRange)
	}
	return weekdayLabels[column], nil
}

func MonthNames() []string {
	return append([]string(nil), monthNames...)
}

func WeekdayLabels() []string {
	return append([]string(nil), weekdayLabels...)
}
