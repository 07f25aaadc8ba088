package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

var _ ShiftRepositoryInterface = (*ShiftRepository)(nil)

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by its UUID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	if err := r.db.First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByName retrieves a shift by its unique name
func (r *ShiftRepository) GetByName(name string) (*models.Shift, error) {
	var shift models.Shift
	if err := r.db.First(&shift, "shift_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByNames retrieves the shifts whose names are in the given set
func (r *ShiftRepository) GetByNames(names []string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("shift_name IN ?", names).Find(&shifts).Error
	return shifts, err
}

// GetAll retrieves all shifts ordered by start time
func (r *ShiftRepository) GetAll() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}
