package entity

import "time"

// HeaderCell is one cell of the scheduling grid's calendar header row.
// Date is the zero time when the source cell was not date-typed; Raw keeps
// the formatted text so string-typed date columns can still be matched.
type HeaderCell struct {
	Raw  string
	Date time.Time
}

// GridCell is one (resource, calendar-day) cell of the raw scheduling grid
type GridCell struct {
	Text  string
	Color string // background hex, e.g. "#66ff75"
}

// GridRow is one raw row of the scheduling grid. Marker carries the location
// marker column; Info carries the equipment-class label on section header
// rows and the "BC#..." identifier on unit rows.
type GridRow struct {
	Marker string
	Info   string
	Cells  []GridCell
}

// ScheduleGrid is an immutable point-in-time snapshot of the scheduling grid
type ScheduleGrid struct {
	Header []HeaderCell
	Rows   []GridRow
}

// BookingCell is one decoded cell of a resource's forecast window
type BookingCell struct {
	DayOffset int
	Text      string
	Tag       StatusTag
}

// ResourceWindow is the decoded forecast window for one trackable resource:
// today plus the configured number of forward days
type ResourceWindow struct {
	ResourceID     string
	EquipmentClass string
	GridRow        int
	Cells          []BookingCell
}
