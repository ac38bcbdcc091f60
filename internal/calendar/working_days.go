package calendar

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type WeeklyOff string

const (
	WeeklyOffSundayOnly        WeeklyOff = "SUNDAY_ONLY"
	WeeklyOffSatSun            WeeklyOff = "SAT_SUN"
	WeeklyOffAlternateSaturday WeeklyOff = "ALTERNATE_SATURDAY"
)

const (
	ReasonWorking = "working"
	ReasonWeekend = "weekend"
	ReasonHoliday = "holiday"
)

var ErrInvalidRange = errors.New("start date is after end date")

// ParseWeeklyOff falls back to SAT_SUN for unknown values.
func ParseWeeklyOff(v string) WeeklyOff {
	switch WeeklyOff(strings.ToUpper(strings.TrimSpace(v))) {
	case WeeklyOffSundayOnly:
		return WeeklyOffSundayOnly
	case WeeklyOffAlternateSaturday:
		return WeeklyOffAlternateSaturday
	default:
		return WeeklyOffSatSun
	}
}

func (w WeeklyOff) Valid() bool {
	switch w {
	case WeeklyOffSundayOnly, WeeklyOffSatSun, WeeklyOffAlternateSaturday:
		return true
	}
	return false
}

// HolidaySet is keyed by YYYY-MM-DD.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d.Format(DateLayout)] = struct{}{}
	}
	return set
}

// ParseHolidaySet skips entries that are not valid YYYY-MM-DD dates.
func ParseHolidaySet(values []string) HolidaySet {
	set := make(HolidaySet, len(values))
	for _, v := range values {
		t, err := time.Parse(DateLayout, strings.TrimSpace(v))
		if err != nil {
			continue
		}
		set[t.Format(DateLayout)] = struct{}{}
	}
	return set
}

func (h HolidaySet) Contains(d time.Time) bool {
	_, ok := h[d.Format(DateLayout)]
	return ok
}

type DayInfo struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	IsWorking bool   `json:"is_working"`
	Reason    string `json:"reason"`
}

type Breakdown struct {
	WorkingDays       int       `json:"working_days"`
	TotalCalendarDays int       `json:"total_calendar_days"`
	WeekendDays       int       `json:"weekend_days"`
	HolidayDays       int       `json:"holiday_days"`
	WeeklyOff         WeeklyOff `json:"weekly_off_type"`
	Days              []DayInfo `json:"days"`
}

// Calculate counts working days in [start, end], both inclusive.
func Calculate(start, end time.Time, weeklyOff WeeklyOff, holidays HolidaySet) (int, error) {
	b, err := CalculateDetailed(start, end, weeklyOff, holidays)
	if err != nil {
		return 0, err
	}
	return b.WorkingDays, nil
}

func CalculateDetailed(start, end time.Time, weeklyOff WeeklyOff, holidays HolidaySet) (Breakdown, error) {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return Breakdown{}, ErrInvalidRange
	}

	b := Breakdown{WeeklyOff: weeklyOff}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		info := DayInfo{
			Date:    d.Format(DateLayout),
			Weekday: d.Weekday().String(),
		}
		switch {
		case IsWeekend(d, weeklyOff):
			info.Reason = ReasonWeekend
			b.WeekendDays++
		case holidays.Contains(d):
			info.Reason = ReasonHoliday
			b.HolidayDays++
		default:
			info.IsWorking = true
			info.Reason = ReasonWorking
			b.WorkingDays++
		}
		b.TotalCalendarDays++
		b.Days = append(b.Days, info)
	}
	return b, nil
}

func IsWeekend(d time.Time, weeklyOff WeeklyOff) bool {
	switch d.Weekday() {
	case time.Sunday:
		return true
	case time.Saturday:
		switch weeklyOff {
		case WeeklyOffSundayOnly:
			return false
		case WeeklyOffAlternateSaturday:
			week := (d.Day()-1)/7 + 1
			return week == 2 || week == 4
		default:
			return true
		}
	default:
		return false
	}
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole days from a to b, floored.
func DaysBetween(a, b time.Time) int {
	h := b.Sub(a).Hours() / 24
	n := int(h)
	if h < 0 && float64(n) != h {
		n--
	}
	return n
}
