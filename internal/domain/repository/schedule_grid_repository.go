package repository

import (
	"context"

	"gearcast-service/internal/domain/entity"
)

// ScheduleGridRepository provides a point-in-time snapshot of the scheduling
// grid. One fetch per run; the engine never writes back.
type ScheduleGridRepository interface {
	FetchGrid(ctx context.Context) (*entity.ScheduleGrid, error)
}
