package usecase

import (
	"context"
	"fmt"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/domain/repository"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/metrics"
	"gearcast-service/pkg/utils"
	"gearcast-service/templates"
)

// ForecastService orchestrates one reconciliation pass: snapshot fetch,
// parse, reconcile, annotate, persist. Each run recomputes from scratch;
// the service holds no state between runs.
type ForecastService struct {
	cfg          Config
	gridRepo     repository.ScheduleGridRepository
	calendarRepo repository.AssignmentCalendarRepository
	registryRepo repository.StatusRegistryRepository
	runRepo      repository.ForecastRunRepository
	parser       *GridParser
	reconciler   *ForecastReconciler
	annotator    *StatusAnnotator
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// NewForecastService creates a new forecast service
func NewForecastService(
	cfg Config,
	gridRepo repository.ScheduleGridRepository,
	calendarRepo repository.AssignmentCalendarRepository,
	registryRepo repository.StatusRegistryRepository,
	runRepo repository.ForecastRunRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) *ForecastService {
	projector := NewForecastProjector(cfg, logger)
	matcher := NewCalendarMatcher(cfg, logger)

	return &ForecastService{
		cfg:          cfg,
		gridRepo:     gridRepo,
		calendarRepo: calendarRepo,
		registryRepo: registryRepo,
		runRepo:      runRepo,
		parser:       NewGridParser(cfg, logger),
		reconciler:   NewForecastReconciler(cfg, projector, matcher, logger),
		annotator:    NewStatusAnnotator(cfg, logger),
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// RunForecast executes one full reconciliation pass and returns the run.
// A failed snapshot fetch or a grid without today's column aborts the run;
// everything else degrades into diagnostics on the run itself.
func (s *ForecastService) RunForecast(ctx context.Context) (*entity.ForecastRun, error) {
	started := s.now()
	today := utils.DateOnly(started)
	s.logger.Info("Starting forecast run", "today", today.Format(utils.DATE_LAYOUT))

	grid, err := s.gridRepo.FetchGrid(ctx)
	if err != nil {
		s.countError("fetch_grid")
		return nil, fmt.Errorf("fetch scheduling grid: %w", err)
	}

	cal, err := s.calendarRepo.FetchCalendar(ctx, today, s.cfg.WindowDays)
	if err != nil {
		s.countError("fetch_calendar")
		return nil, fmt.Errorf("fetch assignment calendar: %w", err)
	}

	var diag entity.Diagnostics
	parsed, err := s.parser.Parse(grid, today, &diag)
	if err != nil {
		s.countError("parse_grid")
		return nil, err
	}

	entries := s.reconciler.Reconcile(parsed, cal, today, &diag)
	s.annotator.Annotate(entries, s.loadRegistries(ctx, entries), &diag)

	run := &entity.ForecastRun{
		Today:       today,
		GeneratedAt: started,
		Entries:     entries,
		Diagnostics: diag,
	}

	if s.metrics != nil {
		s.metrics.RunsTotal.Inc()
		s.metrics.RunDuration.Observe(s.now().Sub(started).Seconds())
		s.metrics.EntriesForecast.Set(float64(len(entries)))
		s.metrics.CorrectionsApplied.Add(float64(diag.CorrectionsApplied))
		s.metrics.DuplicatesFlagged.Add(float64(diag.DuplicateEntries))
		s.metrics.SkippedResources.Add(float64(diag.SkippedResources))
	}

	if s.runRepo != nil {
		if err := s.runRepo.Save(ctx, run); err != nil {
			s.logger.Error("Failed to persist forecast run", "error", err)
			s.countError("save_run")
		}
	}

	s.logger.Info("Forecast run complete",
		"entries", len(entries),
		"corrections", diag.CorrectionsApplied,
		"duplicates", diag.DuplicateEntries,
		"duration", s.now().Sub(started).String())
	s.logger.Debug("Run report", "report", templates.FormatRunSummary(run))
	return run, nil
}

// loadRegistries fetches one registry snapshot per configured class that
// actually appears in the forecast. A class without a configured registry is
// left out of the map so the annotator attaches its sentinel.
func (s *ForecastService) loadRegistries(ctx context.Context, entries []entity.ForecastEntry) map[string][]entity.RegistryEntry {
	configured := make(map[string]bool, len(s.cfg.RegistryClasses))
	for _, class := range s.cfg.RegistryClasses {
		configured[class] = true
	}

	registries := make(map[string][]entity.RegistryEntry)
	for _, e := range entries {
		if !configured[e.EquipmentClass] {
			continue
		}
		if _, ok := registries[e.EquipmentClass]; ok {
			continue
		}
		regs, err := s.registryRepo.ListByClass(ctx, e.EquipmentClass)
		if err != nil {
			s.logger.Error("Failed to load status registry", "class", e.EquipmentClass, "error", err)
			s.countError("load_registry")
			continue
		}
		registries[e.EquipmentClass] = regs
	}
	return registries
}

func (s *ForecastService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
