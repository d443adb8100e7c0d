package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	orderPattern     = regexp.MustCompile(`(?:^|[^0-9])([0-9]{6})(?:[^0-9]|$)`)
	quotedPattern    = regexp.MustCompile(`"([^"]+)"`)
	digitsPattern    = regexp.MustCompile(`[^0-9]`)
	shortDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	barcodePattern   = regexp.MustCompile(`BC#\s*([A-Z0-9-]+)`)
)

// ExtractOrderAndJob pulls the order number and job name out of a booking
// descriptor. The order number is the first run of exactly six digits bounded
// by non-digits; the job name is the first double-quoted substring. Either
// field may come back empty, the function itself never fails.
func ExtractOrderAndJob(text string) JobRef {
	ref := JobRef{}
	if m := orderPattern.FindStringSubmatch(text); m != nil {
		ref.OrderNumber = m[1]
	}
	if m := quotedPattern.FindStringSubmatch(text); m != nil {
		ref.JobName = m[1]
	}
	return ref
}

// NormalizeJobName prepares a job name for equality comparison: trimmed,
// lowercased, internal whitespace runs collapsed to one space. Never used
// for display.
func NormalizeJobName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeOrder reduces an order number to its digits
func NormalizeOrder(s string) string {
	return digitsPattern.ReplaceAllString(s, "")
}

// ExtractBarcode pulls a resource identifier out of a "BC#XXXX" marker
func ExtractBarcode(s string) string {
	if m := barcodePattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// ExtractShortDates finds all M/D patterns in free text
func ExtractShortDates(s string) []ShortDate {
	var dates []ShortDate
	for _, m := range shortDatePattern.FindAllStringSubmatch(s, -1) {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		dates = append(dates, ShortDate{Month: month, Day: day})
	}
	return dates
}

// ResolveShortDate attaches a year to an M/D date: the current year, rolled
// forward one year when the result would already be in the past. Calendar
// sheet data is always forward-looking.
func ResolveShortDate(d ShortDate, today time.Time) time.Time {
	resolved := time.Date(today.Year(), time.Month(d.Month), d.Day, 0, 0, 0, 0, today.Location())
	if resolved.Before(DateOnly(today)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return resolved
}

// CurrentYearDate attaches the current year to an M/D date without any
// roll-forward, so stale references resolve to past dates
func CurrentYearDate(d ShortDate, today time.Time) time.Time {
	return time.Date(today.Year(), time.Month(d.Month), d.Day, 0, 0, 0, 0, today.Location())
}

// DateOnly truncates a timestamp to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b; negative when b is
// before a. The comparison is done on UTC midnights so DST transitions do
// not shift the count.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaySheetLabel builds the assignment calendar sheet name for a date,
// e.g. "Tues 6/3"
func DaySheetLabel(t time.Time) string {
	return fmt.Sprintf("%s %d/%d", DayPrefixes[int(t.Weekday())], int(t.Month()), t.Day())
}

// ParseUSDate parses an M/D/YYYY string, returning the zero time when the
// text is not a date
func ParseUSDate(s string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DATE_LAYOUT, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
