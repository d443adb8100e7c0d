package usecase

import (
	"sort"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/utils"
)

// ForecastReconciler runs the full reconciliation pass: raw projection,
// assignment calendar corrections, offset recomputation, re-sort, and
// duplicate surfacing. The output order is deterministic for unchanged
// inputs.
type ForecastReconciler struct {
	cfg       Config
	projector *ForecastProjector
	matcher   *CalendarMatcher
	logger    logger.Logger
}

// NewForecastReconciler creates a new forecast reconciler
func NewForecastReconciler(cfg Config, projector *ForecastProjector, matcher *CalendarMatcher, logger logger.Logger) *ForecastReconciler {
	return &ForecastReconciler{
		cfg:       cfg,
		projector: projector,
		matcher:   matcher,
		logger:    logger,
	}
}

// Reconcile builds the final ordered forecast from a parsed grid and a
// calendar snapshot
func (r *ForecastReconciler) Reconcile(g *ParsedGrid, cal *entity.AssignmentCalendar, today time.Time, diag *entity.Diagnostics) []entity.ForecastEntry {
	entries := r.projector.Project(g, diag)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DayOffset < entries[j].DayOffset
	})

	for i := range entries {
		if date, ok := r.matcher.Correct(cal, entries[i], today); ok {
			entries[i].EffectiveDate = date
			diag.CorrectionsApplied++
		} else {
			diag.UnmatchedCorrections++
		}
	}

	// offsets must be recomputed and the list re-sorted only after ALL
	// corrections are in; corrections can reorder entries relative to the
	// original scan order
	kept := entries[:0]
	for _, e := range entries {
		off := utils.DaysBetween(today, e.EffectiveDate)
		if off < 0 {
			// the corrected date implies the booking already ended
			diag.DroppedPastEntries++
			r.logger.Debug("Dropping entry with past corrected date",
				"resourceId", e.ResourceID,
				"date", e.EffectiveDate.Format(utils.DATE_LAYOUT))
			continue
		}
		e.DayOffset = off
		e.DayLabel = entity.DayLabel(off)
		kept = append(kept, e)
	}
	entries = kept

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DayOffset < entries[j].DayOffset
	})

	// duplicate resource assignments are surfaced, never dropped: every
	// occurrence is flagged for downstream highlighting
	counts := make(map[string]int)
	for _, e := range entries {
		if e.ResourceID != "" {
			counts[e.ResourceID]++
		}
	}
	for i := range entries {
		if entries[i].ResourceID != "" && counts[entries[i].ResourceID] > 1 {
			entries[i].IsDuplicate = true
			diag.DuplicateEntries++
		}
	}

	r.logger.Info("Reconciliation complete",
		"entries", len(entries),
		"corrections", diag.CorrectionsApplied,
		"unmatched", diag.UnmatchedCorrections,
		"dropped", diag.DroppedPastEntries,
		"duplicates", diag.DuplicateEntries)
	return entries
}
