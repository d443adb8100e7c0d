package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/domain/repository"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/utils"

	sheets "google.golang.org/api/sheets/v4"
)

// Column layout of an assignment calendar day sheet: job name in B, order
// number in C, free-text notes in J.
const (
	calendarJobColumn   = 1
	calendarOrderColumn = 2
	calendarNotesColumn = 9
)

var daySheetTitlePattern = regexp.MustCompile(`^(Sun|Mon|Tues|Wed|Thurs|Fri|Sat)\s+(\d{1,2})/(\d{1,2})$`)

// SheetsCalendarRepository reads the day-indexed assignment calendar from a
// Google Sheets spreadsheet with one sheet per day, named like "Tues 6/3"
type SheetsCalendarRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        logger.Logger
}

// NewSheetsCalendarRepository creates a new Sheets-backed calendar repository
func NewSheetsCalendarRepository(svc *sheets.Service, spreadsheetID string, logger logger.Logger) repository.AssignmentCalendarRepository {
	return &SheetsCalendarRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}
}

// FetchCalendar snapshots the visible day sheets covering from..from+days,
// ascending by date
func (r *SheetsCalendarRepository) FetchCalendar(ctx context.Context, from time.Time, days int) (*entity.AssignmentCalendar, error) {
	resp, err := r.svc.Spreadsheets.Get(r.spreadsheetID).
		IncludeGridData(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read assignment calendar: %w", err)
	}

	start := utils.DateOnly(from)
	end := start.AddDate(0, 0, days)

	cal := &entity.AssignmentCalendar{}
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil || sheet.Properties.Hidden {
			continue
		}
		title := strings.TrimSpace(sheet.Properties.Title)
		m := daySheetTitlePattern.FindStringSubmatch(title)
		if m == nil {
			continue
		}

		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		date := utils.ResolveShortDate(utils.ShortDate{Month: month, Day: day}, from)
		if date.Before(start) || date.After(end) {
			continue
		}

		cal.Sheets = append(cal.Sheets, entity.DaySheet{
			Label:   title,
			Date:    date,
			Entries: r.sheetEntries(sheet),
		})
	}

	sort.Slice(cal.Sheets, func(i, j int) bool {
		return cal.Sheets[i].Date.Before(cal.Sheets[j].Date)
	})

	r.logger.Info("Fetched assignment calendar", "sheets", len(cal.Sheets))
	return cal, nil
}

func (r *SheetsCalendarRepository) sheetEntries(sheet *sheets.Sheet) []entity.AssignmentEntry {
	if len(sheet.Data) == 0 {
		return nil
	}

	var entries []entity.AssignmentEntry
	for _, rd := range sheet.Data[0].RowData {
		if rd == nil {
			continue
		}
		job := rowText(rd, calendarJobColumn)
		order := rowText(rd, calendarOrderColumn)
		if job == "" && order == "" {
			continue
		}
		entries = append(entries, entity.AssignmentEntry{
			JobName:     job,
			OrderNumber: order,
			Notes:       rowText(rd, calendarNotesColumn),
		})
	}
	return entries
}

func rowText(rd *sheets.RowData, col int) string {
	if col >= len(rd.Values) {
		return ""
	}
	return cellText(rd.Values[col])
}
