package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SizeRepository handles database operations for sizes
type SizeRepository struct {
	db *gorm.DB
}

var _ SizeRepositoryInterface = (*SizeRepository)(nil)

// NewSizeRepository creates a new size repository
func NewSizeRepository(db *gorm.DB) *SizeRepository {
	return &SizeRepository{db: db}
}

// Create creates a new size
func (r *SizeRepository) Create(size *models.Size) error {
	return r.db.Create(size).Error
}

// GetByValue retrieves a size by its unique value
func (r *SizeRepository) GetByValue(value string) (*models.Size, error) {
	var size models.Size
	if err := r.db.First(&size, "size_value = ?", value).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

// GetAll retrieves all sizes ordered by value
func (r *SizeRepository) GetAll() ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.Order("size_value ASC").Find(&sizes).Error
	return sizes, err
}

// SizeRangeRepository handles database operations for size ranges
type SizeRangeRepository struct {
	db *gorm.DB
}

var _ SizeRangeRepositoryInterface = (*SizeRangeRepository)(nil)

// NewSizeRangeRepository creates a new size range repository
func NewSizeRangeRepository(db *gorm.DB) *SizeRangeRepository {
	return &SizeRangeRepository{db: db}
}

// Create creates a new size range with its member sizes
func (r *SizeRangeRepository) Create(sizeRange *models.SizeRange) error {
	return r.db.Create(sizeRange).Error
}

// Update saves a size range, replacing its member sizes
func (r *SizeRangeRepository) Update(sizeRange *models.SizeRange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("size_range_id = ?", sizeRange.ID).Delete(&models.SizeRangeSize{}).Error; err != nil {
			return err
		}
		return tx.Save(sizeRange).Error
	})
}

// GetByID retrieves a size range by its UUID with member sizes preloaded
func (r *SizeRangeRepository) GetByID(id uuid.UUID) (*models.SizeRange, error) {
	var sizeRange models.SizeRange
	if err := r.db.Preload("Sizes", sortByIdx).First(&sizeRange, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sizeRange, nil
}

// GetByName retrieves a size range by its unique name with member sizes preloaded
func (r *SizeRangeRepository) GetByName(name string) (*models.SizeRange, error) {
	var sizeRange models.SizeRange
	if err := r.db.Preload("Sizes", sortByIdx).First(&sizeRange, "range_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &sizeRange, nil
}

// GetAll retrieves all size ranges ordered by name
func (r *SizeRangeRepository) GetAll() ([]models.SizeRange, error) {
	var sizeRanges []models.SizeRange
	err := r.db.Preload("Sizes", sortByIdx).Order("range_name ASC").Find(&sizeRanges).Error
	return sizeRanges, err
}

// sortByIdx keeps preloaded child rows in their authored order
func sortByIdx(db *gorm.DB) *gorm.DB {
	return db.Order("idx ASC")
}
