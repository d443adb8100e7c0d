package entity

import (
	"fmt"
	"time"
)

// ForecastEntry is one reconciled booking forecast row for a resource
type ForecastEntry struct {
	ResourceID     string    `bson:"resourceId"`
	EquipmentClass string    `bson:"equipmentClass"`
	DayOffset      int       `bson:"dayOffset"`
	DayLabel       string    `bson:"dayLabel"`
	BookingText    string    `bson:"bookingText"`
	EffectiveDate  time.Time `bson:"effectiveDate"`
	StatusTag      StatusTag `bson:"statusTag"`
	ServiceStatus  string    `bson:"serviceStatus,omitempty"`
	ServiceReady   bool      `bson:"serviceReady"`
	IsDuplicate    bool      `bson:"isDuplicate"`
}

// Diagnostics accumulates the per-run recoverable conditions. These are
// surfaced alongside the forecast, never raised as errors.
type Diagnostics struct {
	SkippedResources     int      `bson:"skippedResources"`
	MissingClassRows     int      `bson:"missingClassRows"`
	CorrectionsApplied   int      `bson:"correctionsApplied"`
	UnmatchedCorrections int      `bson:"unmatchedCorrections"`
	DroppedPastEntries   int      `bson:"droppedPastEntries"`
	DuplicateEntries     int      `bson:"duplicateEntries"`
	Warnings             []string `bson:"warnings,omitempty"`
}

// Warnf records a recoverable per-resource condition
func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// ForecastRun is the full output of one reconciliation pass. Runs are
// recomputed from scratch; nothing is carried between them.
type ForecastRun struct {
	ID          string          `bson:"_id,omitempty"`
	Today       time.Time       `bson:"today"`
	GeneratedAt time.Time       `bson:"generatedAt"`
	Entries     []ForecastEntry `bson:"entries"`
	Diagnostics Diagnostics     `bson:"diagnostics"`
}

// DayLabel renders a day offset in the forecast's display convention
func DayLabel(offset int) string {
	if offset <= 0 {
		return "Today"
	}
	return fmt.Sprintf("Today+%d", offset)
}
