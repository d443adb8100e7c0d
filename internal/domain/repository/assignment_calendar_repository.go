package repository

import (
	"context"
	"time"

	"gearcast-service/internal/domain/entity"
)

// AssignmentCalendarRepository provides a snapshot of the day-indexed
// assignment calendar covering from..from+days, sheets in ascending date order
type AssignmentCalendarRepository interface {
	FetchCalendar(ctx context.Context, from time.Time, days int) (*entity.AssignmentCalendar, error)
}
