package usecase

import (
	"fmt"
	"regexp"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"
)

// ForecastProjector scans each resource's forecast window forward from today
// and reports the first real future booking plus any status transition
// behind it
type ForecastProjector struct {
	cfg         Config
	logger      logger.Logger
	outOfTown   *regexp.Regexp
	returnsHome []*regexp.Regexp
}

// NewForecastProjector creates a new forecast projector
func NewForecastProjector(cfg Config, logger logger.Logger) *ForecastProjector {
	code := regexp.QuoteMeta(cfg.HomeCode)
	patterns := []string{
		fmt.Sprintf(`(?i)returns?\s*to\s*%s`, code),
		fmt.Sprintf(`(?i)back\s*to\s*%s`, code),
		fmt.Sprintf(`(?i)return\s*%s`, code),
		fmt.Sprintf(`(?i)%s\s*return`, code),
	}
	returns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		returns = append(returns, regexp.MustCompile(pat))
	}

	return &ForecastProjector{
		cfg:         cfg,
		logger:      logger,
		outOfTown:   regexp.MustCompile(`^[A-Z]{2}\s`),
		returnsHome: returns,
	}
}

// Project produces the raw, uncorrected forecast: at most one entry per
// resource, in grid row order
func (p *ForecastProjector) Project(g *ParsedGrid, diag *entity.Diagnostics) []entity.ForecastEntry {
	var entries []entity.ForecastEntry
	for _, rw := range g.Resources {
		if entry, ok := p.projectResource(rw, g.Dates); ok {
			entries = append(entries, entry)
		}
	}
	p.logger.Info("Projection complete", "resources", len(g.Resources), "entries", len(entries))
	return entries
}

// projectResource scans one window. Only the first real future booking is
// ever reported; an all-empty or all-reserved window produces nothing.
func (p *ForecastProjector) projectResource(rw entity.ResourceWindow, dates []time.Time) (entity.ForecastEntry, bool) {
	if len(rw.Cells) == 0 || !p.cfg.validToday(rw.Cells[0].Tag) {
		return entity.ForecastEntry{}, false
	}

	for i := 1; i < len(rw.Cells) && i < len(dates); i++ {
		cell := rw.Cells[i]
		if cell.Text == "" || p.cfg.isReserved(cell.Text) {
			continue
		}

		// an out-of-town job that ends with the gear coming back here means
		// the unit leaves the hub first; it has no local availability to report
		if p.outOfTown.MatchString(cell.Text) && p.segmentReturnsHome(rw.Cells, i) {
			p.logger.Debug("Excluding resource on out-of-town job returning home",
				"resourceId", rw.ResourceID, "booking", cell.Text)
			return entity.ForecastEntry{}, false
		}

		tag := cell.Tag
		for j := i + 1; j <= i+p.cfg.WindowDays && j < len(rw.Cells); j++ {
			if rw.Cells[j].Tag != tag && rw.Cells[j].Tag != entity.TagAvailable {
				tag = rw.Cells[j].Tag
				break
			}
		}

		return entity.ForecastEntry{
			ResourceID:     rw.ResourceID,
			EquipmentClass: rw.EquipmentClass,
			DayOffset:      i,
			DayLabel:       entity.DayLabel(i),
			BookingText:    cell.Text,
			EffectiveDate:  p.adjustWeekend(dates[i]),
			StatusTag:      tag,
		}, true
	}
	return entity.ForecastEntry{}, false
}

// adjustWeekend attributes weekend dates to the preceding Saturday:
// Sunday moves back one day, Monday two
func (p *ForecastProjector) adjustWeekend(d time.Time) time.Time {
	if !p.cfg.WeekendAdjust {
		return d
	}
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, -1)
	case time.Monday:
		return d.AddDate(0, 0, -2)
	}
	return d
}

// segmentReturnsHome scans the colored segment starting at the booking cell
// for a "returns to <hub>" note
func (p *ForecastProjector) segmentReturnsHome(cells []entity.BookingCell, start int) bool {
	segTag := cells[start].Tag
	for k := start; k < len(cells); k++ {
		if k > start && cells[k].Tag != segTag {
			break
		}
		for _, re := range p.returnsHome {
			if re.MatchString(cells[k].Text) {
				return true
			}
		}
	}
	return false
}
