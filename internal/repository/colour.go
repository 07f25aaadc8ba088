package repository

import (
	"albion-backend/internal/database/models"

	"gorm.io/gorm"
)

// ColourRepository handles database operations for colours
type ColourRepository struct {
	db *gorm.DB
}

var _ ColourRepositoryInterface = (*ColourRepository)(nil)

// NewColourRepository creates a new colour repository
func NewColourRepository(db *gorm.DB) *ColourRepository {
	return &ColourRepository{db: db}
}

// Create creates a new colour
func (r *ColourRepository) Create(colour *models.Colour) error {
	return r.db.Create(colour).Error
}

// GetByName retrieves a colour by its unique name
func (r *ColourRepository) GetByName(name string) (*models.Colour, error) {
	var colour models.Colour
	if err := r.db.First(&colour, "colour_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &colour, nil
}

// GetAll retrieves all colours ordered by name
func (r *ColourRepository) GetAll() ([]models.Colour, error) {
	var colours []models.Colour
	err := r.db.Order("colour_name ASC").Find(&colours).Error
	return colours, err
}
