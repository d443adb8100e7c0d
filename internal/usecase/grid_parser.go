package usecase

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/utils"
)

// ErrNoTodayColumn is fatal: without the anchor column every day-offset in
// the grid is meaningless, so no partial forecast is produced.
var ErrNoTodayColumn = errors.New("no header column matches today's date")

// ParsedGrid is the decoded scheduling grid: the calendar dates of the
// forecast window and one booking window per trackable resource
type ParsedGrid struct {
	TodayColumn int
	Dates       []time.Time // index = day offset
	Resources   []entity.ResourceWindow
}

// GridParser decodes the raw scheduling grid snapshot into structured
// booking windows
type GridParser struct {
	cfg     Config
	logger  logger.Logger
	gtRoute *regexp.Regexp
}

// NewGridParser creates a new grid parser
func NewGridParser(cfg Config, logger logger.Logger) *GridParser {
	return &GridParser{
		cfg:     cfg,
		logger:  logger,
		gtRoute: regexp.MustCompile(`([A-Z]{2,3})\s*-?>\s*([A-Z]{2,3})`),
	}
}

// Parse anchors the grid on today's header column and extracts the forecast
// window for every trackable resource at the home hub. Returns
// ErrNoTodayColumn when the header has no cell for today.
func (p *GridParser) Parse(grid *entity.ScheduleGrid, today time.Time, diag *entity.Diagnostics) (*ParsedGrid, error) {
	todayCol := p.findTodayColumn(grid.Header, today)
	if todayCol < 0 {
		return nil, ErrNoTodayColumn
	}
	p.logger.Debug("Anchored grid on today's column", "column", todayCol)

	parsed := &ParsedGrid{
		TodayColumn: todayCol,
		Dates:       p.windowDates(grid.Header, todayCol, today),
	}

	seen := make(map[string]bool)
	for i, row := range grid.Rows {
		if row.Marker != p.cfg.HomeLocation && !p.gearTransferEligible(row, today) {
			continue
		}

		class, ok := p.resolveClass(grid, i)
		if !ok {
			diag.MissingClassRows++
			diag.Warnf("grid row %d: no equipment class label above resource row", i)
			p.logger.Warn("Dropping resource row without class label", "row", i)
			continue
		}
		if !p.cfg.isTrackable(class) {
			diag.SkippedResources++
			continue
		}

		id := utils.ExtractBarcode(row.Info)
		if id != "" && seen[id] {
			// two trackable rows sharing one id: first in row order wins
			p.logger.Warn("Duplicate resource id in grid, keeping first row", "resourceId", id, "row", i)
			continue
		}
		if id != "" {
			seen[id] = true
		}

		parsed.Resources = append(parsed.Resources, entity.ResourceWindow{
			ResourceID:     id,
			EquipmentClass: class,
			GridRow:        i,
			Cells:          p.windowCells(row, todayCol),
		})
	}

	p.logger.Info("Grid parsed",
		"resources", len(parsed.Resources),
		"skipped", diag.SkippedResources,
		"missingClass", diag.MissingClassRows)
	return parsed, nil
}

// findTodayColumn matches today's date against the header row, accepting
// both date-typed and string-typed cells
func (p *GridParser) findTodayColumn(header []entity.HeaderCell, today time.Time) int {
	for i, h := range header {
		if !h.Date.IsZero() && utils.SameDay(h.Date, today) {
			return i
		}
		if h.Raw != "" {
			if d := utils.ParseUSDate(h.Raw, today.Location()); !d.IsZero() && utils.SameDay(d, today) {
				return i
			}
		}
	}
	return -1
}

// windowDates resolves the calendar date of each window offset from the
// header, falling back to today+offset when a header cell is absent
func (p *GridParser) windowDates(header []entity.HeaderCell, todayCol int, today time.Time) []time.Time {
	base := utils.DateOnly(today)
	dates := make([]time.Time, p.cfg.WindowDays+1)
	for off := 0; off <= p.cfg.WindowDays; off++ {
		dates[off] = base.AddDate(0, 0, off)
		idx := todayCol + off
		if idx >= len(header) {
			continue
		}
		if !header[idx].Date.IsZero() {
			dates[off] = utils.DateOnly(header[idx].Date)
		} else if d := utils.ParseUSDate(header[idx].Raw, today.Location()); !d.IsZero() {
			dates[off] = d
		}
	}
	return dates
}

// windowCells decodes the row's window cells, mapping colors to tags.
// Cells beyond the grid's width read as empty white cells.
func (p *GridParser) windowCells(row entity.GridRow, todayCol int) []entity.BookingCell {
	cells := make([]entity.BookingCell, 0, p.cfg.WindowDays+1)
	for off := 0; off <= p.cfg.WindowDays; off++ {
		cell := entity.BookingCell{DayOffset: off, Tag: entity.TagAvailable}
		idx := todayCol + off
		if idx < len(row.Cells) {
			cell.Text = row.Cells[idx].Text
			cell.Tag = p.cfg.colorTag(row.Cells[idx].Color)
		}
		cells = append(cells, cell)
	}
	return cells
}

// resolveClass scans upward from a resource row to the nearest section
// header row (empty marker column) and reads its class label
func (p *GridParser) resolveClass(grid *entity.ScheduleGrid, row int) (string, bool) {
	j := row - 1
	for j >= 0 && grid.Rows[j].Marker != "" {
		j--
	}
	if j < 0 {
		return "", false
	}
	return p.cfg.translateClass(grid.Rows[j].Info), true
}

// gearTransferEligible reports whether a non-home row still belongs in the
// forecast because a gear transfer routes it through the home hub within
// the window (e.g. "GT VN>LA 6/4")
func (p *GridParser) gearTransferEligible(row entity.GridRow, today time.Time) bool {
	home := strings.ToUpper(p.cfg.HomeCode)
	windowEnd := utils.DateOnly(today).AddDate(0, 0, p.cfg.WindowDays)

	for _, cell := range row.Cells {
		upper := strings.ToUpper(cell.Text)
		if !strings.Contains(upper, "GT") {
			continue
		}
		m := p.gtRoute.FindStringSubmatch(upper)
		if m == nil || (m[1] != home && m[2] != home) {
			continue
		}
		for _, d := range utils.ExtractShortDates(cell.Text) {
			resolved := utils.ResolveShortDate(d, today)
			if !resolved.Before(utils.DateOnly(today)) && !resolved.After(windowEnd) {
				return true
			}
		}
	}
	return false
}
