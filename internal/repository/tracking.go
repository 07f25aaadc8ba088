package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingRepository handles database operations for order tracking entries
type TrackingRepository struct {
	db *gorm.DB
}

var _ TrackingRepositoryInterface = (*TrackingRepository)(nil)

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// Create creates a new tracking entry
func (r *TrackingRepository) Create(tracking *models.OrderTracking) error {
	return r.db.Create(tracking).Error
}

// SummaryByOrder aggregates tracked quantity per order line for one order
func (r *TrackingRepository) SummaryByOrder(orderID uuid.UUID) ([]TrackingSummaryRow, error) {
	var rows []TrackingSummaryRow
	err := r.db.Model(&models.OrderTracking{}).
		Select("order_id, style_code, colour, size, COALESCE(SUM(quantity), 0) AS quantity").
		Where("order_id = ?", orderID).
		Group("order_id, style_code, colour, size").
		Scan(&rows).Error
	return rows, err
}

// Summary aggregates tracked quantity per order line across all orders
func (r *TrackingRepository) Summary() ([]TrackingSummaryRow, error) {
	var rows []TrackingSummaryRow
	err := r.db.Model(&models.OrderTracking{}).
		Select("order_id, style_code, colour, size, COALESCE(SUM(quantity), 0) AS quantity").
		Group("order_id, style_code, colour, size").
		Scan(&rows).Error
	return rows, err
}
