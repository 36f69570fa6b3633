// Package jalali implements solar Hijri (Jalali) calendar arithmetic:
// the leap rule, month lengths, conversion to and from the proleptic
// Gregorian calendar and the Saturday-first weekday layout used to draw
// a month.
//
// Conversions go through Julian day numbers. The leap rule uses the
// break-year table of the 33-year cycle, which matches the official
// Iranian calendar for every year in [MinYear, MaxYear].
package jalali

// Years outside this range have no defined leap pattern.
const (
	MinYear = -61
	MaxYear = 3177
)

var breaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

type yearInfo struct {
	leap  int // years since the last leap year; 0 means leap
	gy    int // Gregorian year in which the Jalali year starts
	march int // day of March on which Farvardin 1 falls
}

func inRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// calendarYear must only be called for years accepted by inRange.
func calendarYear(jy int) yearInfo {
	gy := jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		jp = jm
	}
	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return yearInfo{leap: leap, gy: gy, march: march}
}

// IsLeapYear reports whether Esfand of year has 30 days.
func IsLeapYear(year int) bool {
	if !inRange(year) {
		return false
	}
	return calendarYear(year).leap == 0
}

func gregorianToJDN(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

func jdnToGregorian(jdn int) (int, int, int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := (j%1461)/4*5 + 308
	gd := (i%153)/5 + 1
	gm := (i/153)%12 + 1
	gy := j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

func toJDN(jy, jm, jd int) int {
	r := calendarYear(jy)
	return gregorianToJDN(r.gy, 3, r.march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

func fromJDN(jdn int) Date {
	gy, _, _ := jdnToGregorian(jdn)
	jy := gy - 621
	r := calendarYear(jy)
	k := jdn - gregorianToJDN(gy, 3, r.march)
	if k >= 0 {
		if k <= 185 {
			return Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
		}
		k -= 186
	} else {
		jy--
		k += 179
		if r.leap == 1 {
			k++
		}
	}
	return Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
}

// isoWeekday maps a Julian day number to 0=Monday..6=Sunday.
func isoWeekday(jdn int) int {
	return jdn % 7
}
