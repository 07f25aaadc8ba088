package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StyleRepository handles database operations for garment styles
type StyleRepository struct {
	db *gorm.DB
}

var _ StyleRepositoryInterface = (*StyleRepository)(nil)

// NewStyleRepository creates a new style repository
func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

// Create creates a new style with its colours, sizes and process rows
func (r *StyleRepository) Create(style *models.Style) error {
	return r.db.Create(style).Error
}

// Update saves a style, replacing its child rows
func (r *StyleRepository) Update(style *models.Style) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("style_id = ?", style.ID).Delete(&models.StyleColour{}).Error; err != nil {
			return err
		}
		if err := tx.Where("style_id = ?", style.ID).Delete(&models.StyleSize{}).Error; err != nil {
			return err
		}
		if err := tx.Where("style_id = ?", style.ID).Delete(&models.StyleProcess{}).Error; err != nil {
			return err
		}
		return tx.Save(style).Error
	})
}

// GetByID retrieves a style by its UUID with all child rows preloaded
func (r *StyleRepository) GetByID(id uuid.UUID) (*models.Style, error) {
	var style models.Style
	if err := r.preloaded().First(&style, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &style, nil
}

// GetByCode retrieves a style by its unique style code
func (r *StyleRepository) GetByCode(code string) (*models.Style, error) {
	var style models.Style
	if err := r.preloaded().First(&style, "style_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &style, nil
}

// GetAll retrieves all styles ordered by style code
func (r *StyleRepository) GetAll() ([]models.Style, error) {
	var styles []models.Style
	err := r.preloaded().Order("style_code ASC").Find(&styles).Error
	return styles, err
}

// Count returns the total number of styles
func (r *StyleRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Style{}).Count(&total).Error
	return total, err
}

func (r *StyleRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("MachineFrame").
		Preload("Colours").
		Preload("Sizes", sortByIdx).
		Preload("Processes")
}
