package repository

import (
	"context"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormStatusRegistryRepository implements the StatusRegistryRepository
// interface against the equipment status mirror database
type GormStatusRegistryRepository struct {
	db *gorm.DB
}

// NewGormStatusRegistryRepository creates a new GORM status registry repository
func NewGormStatusRegistryRepository(db *gorm.DB) repository.StatusRegistryRepository {
	return &GormStatusRegistryRepository{
		db: db,
	}
}

// EquipmentStatus GORM model for database mapping
type EquipmentStatus struct {
	ID             uint           `gorm:"primaryKey"`
	EquipmentClass string         `gorm:"column:equipment_class;index"`
	ResourceID     string         `gorm:"column:resource_id;index"`
	Status         string         `gorm:"column:status"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the default table name
func (EquipmentStatus) TableName() string {
	return "m_equipment_status"
}

// ListByClass returns the full status registry for one equipment class, in
// registry row order
func (r *GormStatusRegistryRepository) ListByClass(ctx context.Context, equipmentClass string) ([]entity.RegistryEntry, error) {
	var rows []EquipmentStatus
	result := r.db.WithContext(ctx).
		Where("equipment_class = ?", equipmentClass).
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.RegistryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.RegistryEntry{
			ResourceID: row.ResourceID,
			Status:     row.Status,
		})
	}
	return entries, nil
}
