package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for production orders
type OrderRepository struct {
	db *gorm.DB
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order with its styles, details and processes
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// Update saves an order, replacing its child rows
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderStyle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProcess{}).Error; err != nil {
			return err
		}
		return tx.Save(order).Error
	})
}

// UpdateStatus moves an order to a new status
func (r *OrderRepository) UpdateStatus(id uuid.UUID, status models.OrderStatus, updatedBy string) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceProcesses swaps the process snapshot rows of an order
func (r *OrderRepository) ReplaceProcesses(orderID uuid.UUID, processes []models.OrderProcess) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderProcess{}).Error; err != nil {
			return err
		}
		for i := range processes {
			processes[i].OrderID = orderID
		}
		if len(processes) == 0 {
			return nil
		}
		return tx.Create(&processes).Error
	})
}

// GetByID retrieves an order header by its UUID
func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Client").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetWithDetails retrieves an order with all child rows preloaded
func (r *OrderRepository) GetWithDetails(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.preloaded().First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListSubmitted retrieves all orders in Open or Closed status, newest first
func (r *OrderRepository) ListSubmitted() ([]models.Order, error) {
	var orders []models.Order
	err := r.preloaded().
		Where("status IN ?", []models.OrderStatus{models.OrderStatusOpen, models.OrderStatusClosed}).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListRecent retrieves the most recently created orders
func (r *OrderRepository) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Client").Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// CountSubmitted returns the number of orders in Open status
func (r *OrderRepository) CountSubmitted() (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusOpen).Count(&total).Error
	return total, err
}

func (r *OrderRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Client").
		Preload("Styles").
		Preload("Details").
		Preload("Processes")
}
