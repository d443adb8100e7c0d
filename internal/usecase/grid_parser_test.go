package usecase

import (
	"testing"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-06-03 is a Wednesday
var testToday = time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

const (
	colorWhite     = "#ffffff"
	colorConfirmed = "#66ff75"
	colorPending   = "#f9ff71"
	colorRepair    = "#ff4444"
	colorUnknown   = "#123456"
)

// testGrid builds a grid whose today column is index 1, with a full window of
// dated header cells behind it
func testGrid(rows ...entity.GridRow) *entity.ScheduleGrid {
	header := []entity.HeaderCell{{Raw: "Camera"}}
	for off := 0; off <= 7; off++ {
		header = append(header, entity.HeaderCell{Date: testToday.AddDate(0, 0, off)})
	}
	return &entity.ScheduleGrid{Header: header, Rows: rows}
}

// classRow is a section header: empty marker, class label in the info column
func classRow(class string) entity.GridRow {
	return entity.GridRow{Marker: "", Info: class}
}

func resourceRow(marker, info string, cells ...entity.GridCell) entity.GridRow {
	padded := append([]entity.GridCell{{}}, cells...) // column 0 is not a day
	return entity.GridRow{Marker: marker, Info: info, Cells: padded}
}

func TestGridParserAnchorsOnTodayColumn(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001"),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.TodayColumn)
	require.Len(t, parsed.Dates, 8)
	assert.Equal(t, testToday, parsed.Dates[0])
	assert.Equal(t, testToday.AddDate(0, 0, 7), parsed.Dates[7])
}

func TestGridParserAcceptsStringDateHeaders(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001"),
	)
	// replace the date-typed header with text the way hand-edited grids do
	for i := 1; i < len(grid.Header); i++ {
		d := grid.Header[i].Date
		grid.Header[i] = entity.HeaderCell{Raw: d.Format("1/2/2006")}
	}

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.TodayColumn)
	assert.Equal(t, testToday.AddDate(0, 0, 3), parsed.Dates[3])
}

func TestGridParserNoTodayColumnIsFatal(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(classRow("SONY VENICE 1"))
	// shift every header a day so nothing matches today
	for i := 1; i < len(grid.Header); i++ {
		grid.Header[i].Date = grid.Header[i].Date.AddDate(0, 0, 10)
	}

	_, err := p.Parse(grid, testToday, &diag)
	assert.ErrorIs(t, err, ErrNoTodayColumn)
}

func TestGridParserResolvesClassFromSectionHeader(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001"),
		resourceRow("LOS ANGELES", "VENICE #2 BC#V1002"),
		classRow("SONY VENICE 2"),
		resourceRow("LOS ANGELES", "VENICE 2 #1 BC#V2001"),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	require.Len(t, parsed.Resources, 3)
	assert.Equal(t, "SONY VENICE 1", parsed.Resources[0].EquipmentClass)
	assert.Equal(t, "SONY VENICE 1", parsed.Resources[1].EquipmentClass)
	assert.Equal(t, "SONY VENICE 2", parsed.Resources[2].EquipmentClass)
	assert.Equal(t, "V1002", parsed.Resources[1].ResourceID)
}

func TestGridParserTranslatesClassAliases(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("X = Global Shutter Sensor"),
		resourceRow("LOS ANGELES", "RAPTOR XL #1 BC#RXL01"),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	require.Len(t, parsed.Resources, 1)
	assert.Equal(t, "RED V-RAPTOR XL [X] 8K VV Digital Camera", parsed.Resources[0].EquipmentClass)
}

func TestGridParserSkipsUntrackableAndForeignRows(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("Tripod Fluid Head"),
		resourceRow("LOS ANGELES", "HEAD #1 BC#TH001"),
		classRow("SONY VENICE 1"),
		resourceRow("NEW YORK", "VENICE #9 BC#V1009"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001"),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	require.Len(t, parsed.Resources, 1)
	assert.Equal(t, "V1001", parsed.Resources[0].ResourceID)
	assert.Equal(t, 1, diag.SkippedResources)
}

func TestGridParserMissingClassRow(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	// resource row with no section header above it at all
	grid := testGrid(
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001"),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	assert.Empty(t, parsed.Resources)
	assert.Equal(t, 1, diag.MissingClassRows)
	assert.NotEmpty(t, diag.Warnings)
}

func TestGridParserDuplicateResourceIDFirstWins(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001", entity.GridCell{Text: "first"}),
		resourceRow("LOS ANGELES", "VENICE #1 again BC#V1001", entity.GridCell{Text: "second"}),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	require.Len(t, parsed.Resources, 1)
	assert.Equal(t, "first", parsed.Resources[0].Cells[0].Text)
}

func TestGridParserGearTransferEligibility(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())

	tests := []struct {
		name string
		cell string
		want bool
	}{
		{"inbound transfer within window", "GT VN>LA 6/5", true},
		{"outbound transfer within window", "GT LA>VN 6/5", true},
		{"arrow with dash", "GT VN->LA 6/5", true},
		{"transfer after window", "GT VN>LA 6/20", false},
		{"transfer between other hubs", "GT VN>AT 6/5", false},
		{"no route at all", "GT sometime", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diag entity.Diagnostics
			grid := testGrid(
				classRow("SONY VENICE 1"),
				resourceRow("VANCOUVER", "VENICE #9 BC#V1009", entity.GridCell{Text: tt.cell}),
			)
			parsed, err := p.Parse(grid, testToday, &diag)
			require.NoError(t, err)
			if tt.want {
				assert.Len(t, parsed.Resources, 1)
			} else {
				assert.Empty(t, parsed.Resources)
			}
		})
	}
}

func TestGridParserWindowCellsDecodeColors(t *testing.T) {
	p := NewGridParser(DefaultConfig(), logger.NewNop())
	var diag entity.Diagnostics

	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001",
			entity.GridCell{Text: "", Color: colorWhite},
			entity.GridCell{Text: `123456 "Job"`, Color: colorConfirmed},
			entity.GridCell{Text: "hold", Color: colorUnknown},
		),
	)

	parsed, err := p.Parse(grid, testToday, &diag)
	require.NoError(t, err)
	require.Len(t, parsed.Resources, 1)

	cells := parsed.Resources[0].Cells
	require.Len(t, cells, 8)
	assert.Equal(t, entity.TagAvailable, cells[0].Tag)
	assert.Equal(t, entity.TagConfirmedJob, cells[1].Tag)
	assert.Equal(t, entity.TagOther, cells[2].Tag)

	// cells past the row's width read as empty white cells
	assert.Equal(t, entity.TagAvailable, cells[7].Tag)
	assert.Equal(t, "", cells[7].Text)
}
