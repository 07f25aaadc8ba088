package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessRepository handles database operations for manufacturing processes
type ProcessRepository struct {
	db *gorm.DB
}

var _ ProcessRepositoryInterface = (*ProcessRepository)(nil)

// NewProcessRepository creates a new process repository
func NewProcessRepository(db *gorm.DB) *ProcessRepository {
	return &ProcessRepository{db: db}
}

// Create creates a new process
func (r *ProcessRepository) Create(process *models.Process) error {
	return r.db.Create(process).Error
}

// GetByID retrieves a process by its UUID
func (r *ProcessRepository) GetByID(id uuid.UUID) (*models.Process, error) {
	var process models.Process
	if err := r.db.First(&process, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &process, nil
}

// GetByName retrieves a process by its unique name
func (r *ProcessRepository) GetByName(name string) (*models.Process, error) {
	var process models.Process
	if err := r.db.First(&process, "process_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &process, nil
}

// GetAll retrieves all processes ordered by name
func (r *ProcessRepository) GetAll() ([]models.Process, error) {
	var processes []models.Process
	err := r.db.Order("process_name ASC").Find(&processes).Error
	return processes, err
}
