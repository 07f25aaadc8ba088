package repository

import (
	"time"

	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationRepository handles database operations for machine operations,
// including the aggregations behind the production and utilization reports
type AllocationRepository struct {
	db *gorm.DB
}

var _ AllocationRepositoryInterface = (*AllocationRepository)(nil)

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create creates a new machine operation
func (r *AllocationRepository) Create(op *models.MachineOperation) error {
	return r.db.Create(op).Error
}

// Update saves changes to an existing machine operation
func (r *AllocationRepository) Update(op *models.MachineOperation) error {
	return r.db.Save(op).Error
}

// Delete removes a machine operation
func (r *AllocationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.MachineOperation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a machine operation by its UUID
func (r *AllocationRepository) GetByID(id uuid.UUID) (*models.MachineOperation, error) {
	var op models.MachineOperation
	if err := r.db.First(&op, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

// Exists reports whether a machine operation with the given ID exists
func (r *AllocationRepository) Exists(id uuid.UUID) (bool, error) {
	var total int64
	err := r.db.Model(&models.MachineOperation{}).Where("id = ?", id).Count(&total).Error
	return total > 0, err
}

// FindByNaturalKey retrieves the operation matching the full planning key.
// Returns gorm.ErrRecordNotFound when no such operation exists.
func (r *AllocationRepository) FindByNaturalKey(key AllocationKey) (*models.MachineOperation, error) {
	var op models.MachineOperation
	err := r.db.
		Where("machine_id = ?", key.MachineID).
		Where("order_id = ?", key.OrderID).
		Where("style_code = ?", key.StyleCode).
		Where("process_name = ?", key.ProcessName).
		Where("colour = ?", key.Colour).
		Where("size = ?", key.Size).
		Where("operation_date = ?", key.Date).
		First(&op).Error
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// ListByOrderProcess retrieves all operations planned for one order process
func (r *AllocationRepository) ListByOrderProcess(orderID uuid.UUID, processName string) ([]models.MachineOperation, error) {
	var ops []models.MachineOperation
	err := r.db.
		Where("order_id = ? AND process_name = ?", orderID, processName).
		Order("operation_date ASC").
		Find(&ops).Error
	return ops, err
}

// ListByOrder retrieves operations for an order, newest first
func (r *AllocationRepository) ListByOrder(orderID uuid.UUID, limit int) ([]models.MachineOperation, error) {
	var ops []models.MachineOperation
	q := r.db.Where("order_id = ?", orderID).Order("operation_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&ops).Error
	return ops, err
}

// ListByDateRange retrieves all operations dated within [start, end]
func (r *AllocationRepository) ListByDateRange(start, end time.Time) ([]models.MachineOperation, error) {
	var ops []models.MachineOperation
	err := r.db.
		Where("operation_date >= ? AND operation_date <= ?", start, end).
		Order("operation_date ASC").
		Find(&ops).Error
	return ops, err
}

// UsedMinutes aggregates allocated minutes per machine per day over [start, end]
func (r *AllocationRepository) UsedMinutes(start, end time.Time) ([]UsedMinutesRow, error) {
	var rows []UsedMinutesRow
	err := r.db.Model(&models.MachineOperation{}).
		Select("machine_id, operation_date, COALESCE(SUM(allocated_minutes), 0) AS minutes").
		Where("operation_date >= ? AND operation_date <= ?", start, end).
		Group("machine_id, operation_date").
		Scan(&rows).Error
	return rows, err
}

// ProductionReport aggregates produced quantity and consumed minutes per
// machine, order line and day, applying the optional filters
func (r *AllocationRepository) ProductionReport(filter ProductionFilter) ([]ProductionRow, error) {
	q := r.db.Model(&models.MachineOperation{}).
		Select(`machine_operations.operation_date,
			machine_operations.machine_id,
			machines.machine_id AS machine_code,
			machines.machine_name,
			machine_operations.order_id,
			orders.purchase_order,
			machine_operations.style_code,
			machine_operations.process_name,
			machine_operations.colour,
			machine_operations.size,
			COALESCE(SUM(machine_operations.quantity), 0) AS quantity,
			COALESCE(SUM(machine_operations.allocated_minutes), 0) AS allocated_minutes`).
		Joins("JOIN machines ON machines.id = machine_operations.machine_id").
		Joins("JOIN orders ON orders.id = machine_operations.order_id")

	if filter.StartDate != nil {
		q = q.Where("machine_operations.operation_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("machine_operations.operation_date <= ?", *filter.EndDate)
	}
	if filter.MachineID != nil {
		q = q.Where("machine_operations.machine_id = ?", *filter.MachineID)
	}
	if filter.OrderID != nil {
		q = q.Where("machine_operations.order_id = ?", *filter.OrderID)
	}
	if filter.StyleCode != "" {
		q = q.Where("machine_operations.style_code = ?", filter.StyleCode)
	}
	if filter.ProcessName != "" {
		q = q.Where("machine_operations.process_name = ?", filter.ProcessName)
	}

	var rows []ProductionRow
	err := q.Group(`machine_operations.operation_date, machine_operations.machine_id,
		machines.machine_id, machines.machine_name, machine_operations.order_id,
		orders.purchase_order, machine_operations.style_code,
		machine_operations.process_name, machine_operations.colour, machine_operations.size`).
		Order("machine_operations.operation_date ASC, machines.machine_id ASC").
		Scan(&rows).Error
	return rows, err
}

// DeleteOrphans removes operations dated within [start, end] whose IDs are
// not in the keep set, returning the number of rows removed
func (r *AllocationRepository) DeleteOrphans(start, end time.Time, keepIDs []uuid.UUID) (int64, error) {
	q := r.db.Where("operation_date >= ? AND operation_date <= ?", start, end)
	if len(keepIDs) > 0 {
		q = q.Where("id NOT IN ?", keepIDs)
	}
	result := q.Delete(&models.MachineOperation{})
	return result.RowsAffected, result.Error
}
