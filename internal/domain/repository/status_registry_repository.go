package repository

import (
	"context"

	"gearcast-service/internal/domain/entity"
)

// StatusRegistryRepository looks up the per-equipment-class service status
// registries
type StatusRegistryRepository interface {
	ListByClass(ctx context.Context, equipmentClass string) ([]entity.RegistryEntry, error)
}
