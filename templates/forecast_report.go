package templates

import (
	"fmt"
	"strings"

	"gearcast-service/internal/domain/entity"
)

// FormatRunSummary renders one forecast run as a plain-text report for logs
// and operator review
func FormatRunSummary(run *entity.ForecastRun) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Equipment Forecast for %s (generated %s)\n",
		run.Today.Format("Mon 1/2/2006"),
		run.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%d entries | %d corrected | %d unmatched | %d duplicates | %d dropped\n",
		len(run.Entries),
		run.Diagnostics.CorrectionsApplied,
		run.Diagnostics.UnmatchedCorrections,
		run.Diagnostics.DuplicateEntries,
		run.Diagnostics.DroppedPastEntries)

	for _, e := range run.Entries {
		flags := ""
		if e.IsDuplicate {
			flags += " [DUP]"
		}
		if e.ServiceReady {
			flags += " [READY]"
		}
		fmt.Fprintf(&b, "%-10s %-45s %-9s %s | %s | %s%s\n",
			e.ResourceID,
			e.EquipmentClass,
			e.DayLabel,
			e.EffectiveDate.Format("1/2/2006"),
			e.BookingText,
			e.ServiceStatus,
			flags)
	}

	if len(run.Diagnostics.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings:\n")
		for _, w := range run.Diagnostics.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}
