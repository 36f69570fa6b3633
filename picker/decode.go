package picker

import (
	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

// Result says what the caller should do after a token is decoded.
type Result int

const (
	// NoOp: the token was not for this picker or pressed an inert cell.
	NoOp Result = iota
	// ReRender: show Outcome.Year/Outcome.Month.
	ReRender
	// Selected: the user picked Outcome.Date.
	Selected
)

func (r Result) String() string {
	switch r {
	case NoOp:
		return "no-op"
	case ReRender:
		return "re-render"
	case Selected:
		return "selected"
	}
	return "unknown"
}

// Outcome is the result of decoding a token.
type Outcome struct {
	Result Result
	Year   int
	Month  int
	Date   jalali.Date
}

// Selection returns the chosen date as "Y/M/D" and true for a Selected
// outcome.
func (o Outcome) Selection() (string, bool) {
	if o.Result != Selected {
		return "", false
	}
	return o.Date.String(), true
}

// Decode interprets token. Tokens for another prefix, ignore tokens and
// unknown actions are a NoOp. Navigation wraps across years. A token for
// this prefix with malformed arguments returns ErrInvalidToken.
func (p *Picker) Decode(token string) (Outcome, error) {
	a, ok, err := ParseToken(p.prefix, token)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{Result: NoOp}, nil
	}
	switch a.Kind {
	case Prev, Next:
		delta := 1
		if a.Kind == Prev {
			delta = -1
		}
		y, m := jalali.AddMonths(a.Year, a.Month, delta)
		return Outcome{Result: ReRender, Year: y, Month: m}, nil
	case Day:
		d := jalali.Date{Year: a.Year, Month: a.Month, Day: a.Day}
		return Outcome{Result: Selected, Year: d.Year, Month: d.Month, Date: d}, nil
	}
	return Outcome{Result: NoOp}, nil
}

// Apply decodes token and, for a ReRender outcome, builds the grid to show.
func (p *Picker) Apply(token string) (Outcome, *Grid, error) {
	out, err := p.Decode(token)
	if err != nil || out.Result != ReRender {
		return out, nil, err
	}
	g, err := p.BuildGrid(out.Year, out.Month)
	if err != nil {
		return out, nil, err
	}
	return out, &g, nil
}
