package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGridRepo struct {
	grid *entity.ScheduleGrid
	err  error
}

func (f *fakeGridRepo) FetchGrid(ctx context.Context) (*entity.ScheduleGrid, error) {
	return f.grid, f.err
}

type fakeCalendarRepo struct {
	cal *entity.AssignmentCalendar
	err error
}

func (f *fakeCalendarRepo) FetchCalendar(ctx context.Context, from time.Time, days int) (*entity.AssignmentCalendar, error) {
	return f.cal, f.err
}

type fakeRegistryRepo struct {
	registries map[string][]entity.RegistryEntry
	errs       map[string]error
	calls      []string
}

func (f *fakeRegistryRepo) ListByClass(ctx context.Context, class string) ([]entity.RegistryEntry, error) {
	f.calls = append(f.calls, class)
	if err, ok := f.errs[class]; ok {
		return nil, err
	}
	return f.registries[class], nil
}

type fakeRunRepo struct {
	saved  []*entity.ForecastRun
	latest *entity.ForecastRun
	err    error
}

func (f *fakeRunRepo) Save(ctx context.Context, run *entity.ForecastRun) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, run)
	return nil
}

func (f *fakeRunRepo) GetLatest(ctx context.Context) (*entity.ForecastRun, error) {
	return f.latest, nil
}

func serviceGrid() *entity.ScheduleGrid {
	return testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001",
			entity.GridCell{Color: colorWhite},
			entity.GridCell{Text: `123456 "Night Shoot"`, Color: colorConfirmed},
		),
	)
}

func newTestService(grid *fakeGridRepo, cal *fakeCalendarRepo, reg *fakeRegistryRepo, runs *fakeRunRepo) *ForecastService {
	svc := NewForecastService(DefaultConfig(), grid, cal, reg, runs, nil, logger.NewNop())
	svc.now = func() time.Time { return testToday.Add(9 * time.Hour) }
	return svc
}

func TestRunForecastEndToEnd(t *testing.T) {
	reg := &fakeRegistryRepo{
		registries: map[string][]entity.RegistryEntry{
			"SONY VENICE 1": {{ResourceID: "V1001", Status: entity.StatusRTR}},
		},
	}
	runs := &fakeRunRepo{}
	svc := newTestService(&fakeGridRepo{grid: serviceGrid()}, &fakeCalendarRepo{}, reg, runs)

	run, err := svc.RunForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, run.Entries, 1)

	e := run.Entries[0]
	assert.Equal(t, "V1001", e.ResourceID)
	assert.Equal(t, 1, e.DayOffset)
	assert.Equal(t, "Today+1", e.DayLabel)
	assert.Equal(t, entity.StatusRTR, e.ServiceStatus)
	assert.True(t, e.ServiceReady)

	assert.Equal(t, testToday, run.Today)
	require.Len(t, runs.saved, 1)
	assert.Equal(t, run, runs.saved[0])
}

func TestRunForecastAppliesCalendarCorrection(t *testing.T) {
	cal := &fakeCalendarRepo{cal: calWith(entity.DaySheet{
		Label:   "Fri 6/5",
		Date:    time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		Entries: []entity.AssignmentEntry{{OrderNumber: "123456"}},
	})}
	svc := newTestService(&fakeGridRepo{grid: serviceGrid()}, cal, &fakeRegistryRepo{}, &fakeRunRepo{})

	run, err := svc.RunForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, run.Entries, 1)
	assert.Equal(t, 2, run.Entries[0].DayOffset)
	assert.Equal(t, 1, run.Diagnostics.CorrectionsApplied)
}

func TestRunForecastGridFetchFailureAborts(t *testing.T) {
	svc := newTestService(
		&fakeGridRepo{err: errors.New("sheet unavailable")},
		&fakeCalendarRepo{}, &fakeRegistryRepo{}, &fakeRunRepo{},
	)

	_, err := svc.RunForecast(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch scheduling grid")
}

func TestRunForecastNoTodayColumnAborts(t *testing.T) {
	grid := serviceGrid()
	for i := 1; i < len(grid.Header); i++ {
		grid.Header[i].Date = grid.Header[i].Date.AddDate(0, 0, 30)
	}
	svc := newTestService(&fakeGridRepo{grid: grid}, &fakeCalendarRepo{}, &fakeRegistryRepo{}, &fakeRunRepo{})

	_, err := svc.RunForecast(context.Background())
	assert.ErrorIs(t, err, ErrNoTodayColumn)
}

func TestRunForecastRegistryFailureDegrades(t *testing.T) {
	reg := &fakeRegistryRepo{
		errs: map[string]error{"SONY VENICE 1": errors.New("db down")},
	}
	svc := newTestService(&fakeGridRepo{grid: serviceGrid()}, &fakeCalendarRepo{}, reg, &fakeRunRepo{})

	run, err := svc.RunForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, run.Entries, 1)
	assert.Equal(t, entity.ServiceNoRegistry, run.Entries[0].ServiceStatus)
}

func TestRunForecastSaveFailureIsNotFatal(t *testing.T) {
	runs := &fakeRunRepo{err: errors.New("mongo down")}
	svc := newTestService(&fakeGridRepo{grid: serviceGrid()}, &fakeCalendarRepo{}, &fakeRegistryRepo{}, runs)

	run, err := svc.RunForecast(context.Background())
	require.NoError(t, err)
	assert.Len(t, run.Entries, 1)
}

func TestRunForecastLoadsEachRegistryOnce(t *testing.T) {
	grid := testGrid(
		classRow("SONY VENICE 1"),
		resourceRow("LOS ANGELES", "VENICE #1 BC#V1001",
			entity.GridCell{Color: colorWhite},
			entity.GridCell{Text: `111111 "A"`, Color: colorConfirmed},
		),
		resourceRow("LOS ANGELES", "VENICE #2 BC#V1002",
			entity.GridCell{Color: colorWhite},
			entity.GridCell{Text: `222222 "B"`, Color: colorConfirmed},
		),
	)
	reg := &fakeRegistryRepo{registries: map[string][]entity.RegistryEntry{}}
	svc := newTestService(&fakeGridRepo{grid: grid}, &fakeCalendarRepo{}, reg, &fakeRunRepo{})

	run, err := svc.RunForecast(context.Background())
	require.NoError(t, err)
	assert.Len(t, run.Entries, 2)
	assert.Equal(t, []string{"SONY VENICE 1"}, reg.calls)
}
