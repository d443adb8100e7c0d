package usecase

import (
	"gearcast-service/internal/domain/entity"
	"gearcast-service/pkg/logger"
)

// StatusAnnotator joins forecast entries against the per-equipment-class
// status registries. Pure lookup, no mutation of the registries.
type StatusAnnotator struct {
	cfg    Config
	logger logger.Logger
}

// NewStatusAnnotator creates a new status annotator
func NewStatusAnnotator(cfg Config, logger logger.Logger) *StatusAnnotator {
	return &StatusAnnotator{
		cfg:    cfg,
		logger: logger,
	}
}

// Annotate attaches a service status to each entry. Classes absent from the
// registries map get the no-registry sentinel; unknown identifiers get the
// no-match sentinel; terminal statuses (gear that left inventory) suppress
// the status entirely.
func (a *StatusAnnotator) Annotate(entries []entity.ForecastEntry, registries map[string][]entity.RegistryEntry, diag *entity.Diagnostics) {
	index := make(map[string]map[string]string, len(registries))
	for class, regs := range registries {
		byID := make(map[string]string, len(regs))
		for _, reg := range regs {
			if _, ok := byID[reg.ResourceID]; !ok {
				byID[reg.ResourceID] = reg.Status
			}
		}
		index[class] = byID
	}

	for i := range entries {
		entry := &entries[i]

		byID, ok := index[entry.EquipmentClass]
		if !ok {
			entry.ServiceStatus = entity.ServiceNoRegistry
			continue
		}

		status, found := byID[entry.ResourceID]
		if !found {
			entry.ServiceStatus = entity.ServiceNoMatchingResource
			diag.Warnf("resource %s not found in %s registry", entry.ResourceID, entry.EquipmentClass)
			continue
		}

		if entity.IsTerminalStatus(status) {
			entry.ServiceStatus = ""
			continue
		}
		if status == "" {
			entry.ServiceStatus = entity.ServiceStatusUnknown
			continue
		}

		entry.ServiceStatus = status
		if status == entity.StatusRTR || status == entity.StatusServiced {
			entry.ServiceReady = true
		}
	}
}
