package entity

import "time"

// AssignmentEntry is one job row of an assignment calendar day sheet
type AssignmentEntry struct {
	JobName     string
	OrderNumber string
	Notes       string
}

// DaySheet is one day of the assignment calendar, named by weekday
// abbreviation plus month/day (e.g. "Tues 6/3")
type DaySheet struct {
	Label   string
	Date    time.Time
	Entries []AssignmentEntry
}

// AssignmentCalendar is a snapshot of the day-indexed assignment calendar,
// sheets in ascending date order
type AssignmentCalendar struct {
	Sheets []DaySheet
}
