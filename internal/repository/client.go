package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// Ensure ClientRepository implements ClientRepositoryInterface
var _ ClientRepositoryInterface = (*ClientRepository)(nil)

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by its UUID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByName retrieves a client by its unique name
func (r *ClientRepository) GetByName(name string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "client_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll retrieves all clients ordered by name
func (r *ClientRepository) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("client_name ASC").Find(&clients).Error
	return clients, err
}

// Count returns the total number of clients
func (r *ClientRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Client{}).Count(&total).Error
	return total, err
}
