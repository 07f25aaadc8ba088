package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportJobRepository handles database operations for spreadsheet import jobs
type ImportJobRepository struct {
	db *gorm.DB
}

var _ ImportJobRepositoryInterface = (*ImportJobRepository)(nil)

// NewImportJobRepository creates a new import job repository
func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

// Create creates a new import job
func (r *ImportJobRepository) Create(job *models.ImportJob) error {
	return r.db.Create(job).Error
}

// Update saves changes to an import job
func (r *ImportJobRepository) Update(job *models.ImportJob) error {
	return r.db.Save(job).Error
}

// GetByID retrieves an import job by its UUID
func (r *ImportJobRepository) GetByID(id uuid.UUID) (*models.ImportJob, error) {
	var job models.ImportJob
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
