package holiday

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go-leaveai/internal/calendar"
	holidayerrors "go-leaveai/internal/holiday/errors"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
)

const (
	FormatExcel = "xlsx"
	FormatICS   = "ics"

	maxImportRows   = 1000
	defaultOccasion = "Holiday"
	maxEventDays    = 31
)

// Row is one parsed holiday before it is bound to a company.
type Row struct {
	Date time.Time
	Name string
}

// ParseResult keeps rows that parsed and a note for every row that did not.
type ParseResult struct {
	Rows    []Row
	Skipped []string
}

// DetectFormat picks the parser from the uploaded file name.
func DetectFormat(filename string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		return FormatExcel, nil
	case strings.HasSuffix(name, ".ics"), strings.HasSuffix(name, ".ical"):
		return FormatICS, nil
	default:
		return "", holidayerrors.ErrUnsupportedFormat
	}
}

var excelDateLayouts = []string{
	calendar.DateLayout,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"01-02-06",
	"1/2/06",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseExcel reads the first sheet. The header row must contain "Start Date"
// and "Occasion" in any column order; a blank occasion becomes "Holiday".
func ParseExcel(r io.Reader) (ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open holiday sheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ParseResult{}, fmt.Errorf("read holiday sheet: %w", err)
	}
	if len(rows) < 2 {
		return ParseResult{}, holidayerrors.ErrNoHolidays
	}

	dateCol, nameCol := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "start date", "date":
			if dateCol < 0 {
				dateCol = i
			}
		case "occasion", "name", "holiday":
			if nameCol < 0 {
				nameCol = i
			}
		}
	}
	if dateCol < 0 || nameCol < 0 {
		return ParseResult{}, holidayerrors.ErrBadHeader
	}

	var res ParseResult
	for i := 1; i < len(rows) && len(res.Rows) < maxImportRows; i++ {
		row := rows[i]
		rawDate := cell(row, dateCol)
		name := cell(row, nameCol)
		if rawDate == "" && name == "" {
			continue
		}

		d, err := parseSheetDate(rawDate)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: invalid date %q", i+1, rawDate))
			continue
		}
		if name == "" {
			name = defaultOccasion
		}
		res.Rows = append(res.Rows, Row{Date: d, Name: name})
	}

	if len(res.Rows) == 0 {
		return res, holidayerrors.ErrNoHolidays
	}
	return res, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseSheetDate(v string) (time.Time, error) {
	for _, layout := range excelDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return calendar.DateOf(t), nil
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return calendar.DateOf(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return calendar.DateOf(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}

var icsDateLayouts = []string{
	"20060102",
	"20060102T150405Z",
	"20060102T150405",
}

// ParseICS turns every VEVENT into holidays. All-day events spanning several
// days yield one row per day; DTEND is exclusive as in RFC 5545.
func ParseICS(r io.Reader) (ParseResult, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parse holiday calendar: %w", err)
	}

	var res ParseResult
	for i, evt := range cal.Events() {
		name := defaultOccasion
		if p := evt.GetProperty(ics.ComponentPropertySummary); p != nil && strings.TrimSpace(p.Value) != "" {
			name = strings.TrimSpace(p.Value)
		}

		start, err := icsDate(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("event %d: %v", i+1, err))
			continue
		}

		days := 1
		if end, err := icsDate(evt, ics.ComponentPropertyDtEnd); err == nil && end.After(start) {
			days = calendar.DaysBetween(start, end)
			if days > maxEventDays {
				days = maxEventDays
			}
		}

		for d := 0; d < days && len(res.Rows) < maxImportRows; d++ {
			res.Rows = append(res.Rows, Row{Date: start.AddDate(0, 0, d), Name: name})
		}
	}

	if len(res.Rows) == 0 {
		return res, holidayerrors.ErrNoHolidays
	}
	return res, nil
}

func icsDate(evt *ics.VEvent, prop ics.ComponentProperty) (time.Time, error) {
	p := evt.GetProperty(prop)
	if p == nil {
		return time.Time{}, fmt.Errorf("missing %s", prop)
	}
	v := strings.TrimSpace(p.Value)
	for _, layout := range icsDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return calendar.DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", prop, v)
}
