package picker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

// Separator joins the fields of a token. It may not appear in a prefix.
const Separator = "_"

// IgnoreToken is carried by cells that do nothing when pressed.
const IgnoreToken = "ignore"

var (
	// ErrInvalidToken is returned for a token addressed to this picker
	// whose arguments are malformed or name a date that does not exist.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidPrefix is returned for an empty prefix or one containing
	// Separator.
	ErrInvalidPrefix = errors.New("invalid token prefix")
)

// Kind identifies what an Action does.
type Kind int

const (
	Ignore Kind = iota
	Prev
	Next
	Day
)

var kindNames = map[Kind]string{
	Ignore: "ignore",
	Prev:   "prev",
	Next:   "next",
	Day:    "day",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Action is the decoded form of a token. Prev and Next carry the month
// being displayed when they were issued, Day also carries the day.
type Action struct {
	Kind  Kind
	Year  int
	Month int
	Day   int
}

// Token encodes a as {prefix}_{kind}_{args...}.
func (a Action) Token(prefix string) string {
	fields := []string{prefix, a.Kind.String()}
	switch a.Kind {
	case Prev, Next:
		fields = append(fields, strconv.Itoa(a.Year), strconv.Itoa(a.Month))
	case Day:
		fields = append(fields, strconv.Itoa(a.Year), strconv.Itoa(a.Month), strconv.Itoa(a.Day))
	}
	return strings.Join(fields, Separator)
}

// ParseToken decodes token. It returns false if the token is not
// addressed to prefix. A token with an unknown or empty action decodes
// to Ignore.
func ParseToken(prefix, token string) (Action, bool, error) {
	fields := strings.Split(token, Separator)
	if fields[0] != prefix {
		return Action{}, false, nil
	}
	if len(fields) < 2 {
		return Action{Kind: Ignore}, true, nil
	}
	var kind Kind
	var nargs int
	switch fields[1] {
	case "prev":
		kind, nargs = Prev, 2
	case "next":
		kind, nargs = Next, 2
	case "day":
		kind, nargs = Day, 3
	default:
		return Action{Kind: Ignore}, true, nil
	}
	args := fields[2:]
	if len(args) != nargs {
		return Action{}, true, fmt.Errorf("%w: %q: %v wants %d arguments, got %d", ErrInvalidToken, token, kind, nargs, len(args))
	}
	nums := make([]int, nargs)
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Action{}, true, fmt.Errorf("%w: %q: %v", ErrInvalidToken, token, err)
		}
		nums[i] = n
	}
	a := Action{Kind: kind, Year: nums[0], Month: nums[1]}
	if kind == Day {
		a.Day = nums[2]
	} else {
		a.Day = 1
	}
	if err := (jalali.Date{Year: a.Year, Month: a.Month, Day: a.Day}).Validate(); err != nil {
		return Action{}, true, fmt.Errorf("%w: %q: %v", ErrInvalidToken, token, err)
	}
	if kind != Day {
		a.Day = 0
	}
	return a, true, nil
}

func validPrefix(prefix string) error {
	if prefix == "" || strings.Contains(prefix, Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return nil
}
