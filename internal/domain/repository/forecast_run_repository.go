package repository

import (
	"context"

	"gearcast-service/internal/domain/entity"
)

// ForecastRunRepository stores completed forecast runs. Persistence is a
// collaborator concern; the reconciliation engine itself stays stateless.
type ForecastRunRepository interface {
	Save(ctx context.Context, run *entity.ForecastRun) error
	GetLatest(ctx context.Context) (*entity.ForecastRun, error)
}
