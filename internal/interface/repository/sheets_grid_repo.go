package repository

import (
	"context"
	"fmt"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/domain/repository"
	"gearcast-service/pkg/logger"

	sheets "google.golang.org/api/sheets/v4"
)

// Column layout of the scheduling grid: location marker in A, class label /
// "BC#" identifier in E.
const (
	gridMarkerColumn = 0
	gridInfoColumn   = 4
)

// sheetsSerialEpoch is day zero of Google Sheets' date serial numbers
var sheetsSerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)

// SheetsGridRepository reads the scheduling grid snapshot from a Google
// Sheets spreadsheet, values and background colors in one fetch
type SheetsGridRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        logger.Logger
}

// NewSheetsGridRepository creates a new Sheets-backed grid repository
func NewSheetsGridRepository(svc *sheets.Service, spreadsheetID, sheetName string, logger logger.Logger) repository.ScheduleGridRepository {
	return &SheetsGridRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}
}

// FetchGrid takes one atomic snapshot of the grid sheet
func (r *SheetsGridRepository) FetchGrid(ctx context.Context) (*entity.ScheduleGrid, error) {
	resp, err := r.svc.Spreadsheets.Get(r.spreadsheetID).
		Ranges(r.sheetName).
		IncludeGridData(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read scheduling grid: %w", err)
	}
	if len(resp.Sheets) == 0 || len(resp.Sheets[0].Data) == 0 {
		return nil, fmt.Errorf("scheduling grid sheet %q has no data", r.sheetName)
	}

	data := resp.Sheets[0].Data[0]
	grid := &entity.ScheduleGrid{}

	if len(data.RowData) > 0 && data.RowData[0] != nil {
		for _, c := range data.RowData[0].Values {
			grid.Header = append(grid.Header, entity.HeaderCell{
				Raw:  cellText(c),
				Date: cellDate(c),
			})
		}
	}

	for _, rd := range data.RowData[1:] {
		row := entity.GridRow{}
		if rd != nil {
			row.Cells = make([]entity.GridCell, len(rd.Values))
			for i, c := range rd.Values {
				row.Cells[i] = entity.GridCell{
					Text:  cellText(c),
					Color: cellColor(c),
				}
			}
		}
		if len(row.Cells) > gridMarkerColumn {
			row.Marker = row.Cells[gridMarkerColumn].Text
		}
		if len(row.Cells) > gridInfoColumn {
			row.Info = row.Cells[gridInfoColumn].Text
		}
		grid.Rows = append(grid.Rows, row)
	}

	r.logger.Info("Fetched scheduling grid", "rows", len(grid.Rows), "columns", len(grid.Header))
	return grid, nil
}

func cellText(c *sheets.CellData) string {
	if c == nil {
		return ""
	}
	return c.FormattedValue
}

// cellDate decodes a date-typed cell from its serial number; the zero time
// for anything that is not date-formatted
func cellDate(c *sheets.CellData) time.Time {
	if c == nil || c.EffectiveValue == nil || c.EffectiveValue.NumberValue == nil {
		return time.Time{}
	}
	if c.EffectiveFormat == nil || c.EffectiveFormat.NumberFormat == nil {
		return time.Time{}
	}
	switch c.EffectiveFormat.NumberFormat.Type {
	case "DATE", "DATE_TIME":
		return sheetsSerialEpoch.AddDate(0, 0, int(*c.EffectiveValue.NumberValue))
	}
	return time.Time{}
}

// cellColor renders a cell's effective background as a lowercase hex string;
// no background reads as white
func cellColor(c *sheets.CellData) string {
	if c == nil || c.EffectiveFormat == nil || c.EffectiveFormat.BackgroundColor == nil {
		return "#ffffff"
	}
	bg := c.EffectiveFormat.BackgroundColor
	return fmt.Sprintf("#%02x%02x%02x",
		channelByte(bg.Red),
		channelByte(bg.Green),
		channelByte(bg.Blue))
}

func channelByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int(v*255 + 0.5)
}
