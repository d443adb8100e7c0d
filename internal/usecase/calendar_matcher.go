package usecase

import (
	"strings"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/utils"
)

// CalendarMatcher refines a forecast entry's date by joining against the
// day-indexed assignment calendar on order number or normalized job name
type CalendarMatcher struct {
	cfg    Config
	logger logger.Logger
}

// NewCalendarMatcher creates a new calendar matcher
func NewCalendarMatcher(cfg Config, logger logger.Logger) *CalendarMatcher {
	return &CalendarMatcher{
		cfg:    cfg,
		logger: logger,
	}
}

// Correct searches every day sheet in the window for a row matching the
// entry's order number or job name; first match wins. Returns the corrected
// date, or false when the calendar has no matching job. Many entries never
// match, that is not a failure.
func (m *CalendarMatcher) Correct(cal *entity.AssignmentCalendar, entry entity.ForecastEntry, today time.Time) (time.Time, bool) {
	if cal == nil {
		return time.Time{}, false
	}

	ref := utils.ExtractOrderAndJob(entry.BookingText)
	order := utils.NormalizeOrder(ref.OrderNumber)
	name := utils.NormalizeJobName(ref.JobName)
	if order == "" && name == "" {
		return time.Time{}, false
	}

	for _, sheet := range cal.Sheets {
		for _, e := range sheet.Entries {
			if !m.entryMatches(e, order, name) {
				continue
			}

			date := sheet.Date
			if date.IsZero() {
				date = m.labelDate(sheet.Label, today)
			}
			// a crew-prep note names the actual commitment and overrides
			// the sheet's own day
			if override, ok := m.crewPrepOverride(e.Notes, today); ok {
				date = override
			}
			if date.IsZero() {
				return time.Time{}, false
			}

			m.logger.Debug("Assignment calendar match",
				"resourceId", entry.ResourceID,
				"sheet", sheet.Label,
				"date", date.Format(utils.DATE_LAYOUT))
			return date, true
		}
	}
	return time.Time{}, false
}

func (m *CalendarMatcher) entryMatches(e entity.AssignmentEntry, order, name string) bool {
	if order != "" && utils.NormalizeOrder(e.OrderNumber) == order {
		return true
	}
	if name != "" && utils.NormalizeJobName(strings.ReplaceAll(e.JobName, `"`, "")) == name {
		return true
	}
	return false
}

// labelDate derives a date from a sheet name like "Tues 6/3": current year,
// rolled forward when already past
func (m *CalendarMatcher) labelDate(label string, today time.Time) time.Time {
	dates := utils.ExtractShortDates(label)
	if len(dates) == 0 {
		return time.Time{}
	}
	return utils.ResolveShortDate(dates[0], today)
}

// crewPrepOverride picks the earliest M/D date out of a "crew prep" note.
// Note dates resolve to the current year without roll-forward, so a stale
// note yields a past date and the entry drops out during recomputation.
func (m *CalendarMatcher) crewPrepOverride(notes string, today time.Time) (time.Time, bool) {
	if !strings.Contains(strings.ToLower(notes), "crew prep") {
		return time.Time{}, false
	}
	dates := utils.ExtractShortDates(notes)
	if len(dates) == 0 {
		return time.Time{}, false
	}

	earliest := utils.CurrentYearDate(dates[0], today)
	for _, d := range dates[1:] {
		if resolved := utils.CurrentYearDate(d, today); resolved.Before(earliest) {
			earliest = resolved
		}
	}
	return earliest, true
}
