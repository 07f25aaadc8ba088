package repository

import (
	"time"

	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarRepository handles database operations for shift allocation calendars
type CalendarRepository struct {
	db *gorm.DB
}

var _ CalendarRepositoryInterface = (*CalendarRepository)(nil)

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// Create creates a new shift allocation calendar with its assigned shifts
func (r *CalendarRepository) Create(cal *models.ShiftAllocation) error {
	return r.db.Create(cal).Error
}

// GetByID retrieves a calendar by its UUID with shifts and alterations preloaded
func (r *CalendarRepository) GetByID(id uuid.UUID) (*models.ShiftAllocation, error) {
	var cal models.ShiftAllocation
	if err := r.preloaded().First(&cal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// FindSingleDay retrieves the most recently updated single-day calendar for
// the given date and machine scope. A nil machineID matches general calendars
// only. Returns gorm.ErrRecordNotFound when none exists.
func (r *CalendarRepository) FindSingleDay(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error) {
	var cal models.ShiftAllocation
	q := r.preloaded().
		Where("is_default = ?", false).
		Where("start_date = ? AND end_date = ?", date, date)
	q = scopeMachine(q, machineID)
	if err := q.Order("updated_at DESC").First(&cal).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// FindRangeCovering retrieves the most recently updated multi-day calendar
// whose range covers the given date, within the given machine scope.
func (r *CalendarRepository) FindRangeCovering(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error) {
	var cal models.ShiftAllocation
	q := r.preloaded().
		Where("is_default = ?", false).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Where("start_date <> end_date")
	q = scopeMachine(q, machineID)
	if err := q.Order("updated_at DESC").First(&cal).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// FindDefault retrieves the default calendar
func (r *CalendarRepository) FindDefault() (*models.ShiftAllocation, error) {
	var cal models.ShiftAllocation
	if err := r.preloaded().First(&cal, "is_default = ?", true).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// FindOverlapping retrieves all non-default calendars whose range intersects
// [start, end], ordered with machine-scoped entries first
func (r *CalendarRepository) FindOverlapping(start, end time.Time) ([]models.ShiftAllocation, error) {
	var cals []models.ShiftAllocation
	err := r.preloaded().
		Where("is_default = ?", false).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("machine_id ASC NULLS LAST").
		Order("start_date ASC").
		Find(&cals).Error
	return cals, err
}

// HasOverlappingScoped reports whether another non-default calendar with the
// same machine scope intersects [start, end]
func (r *CalendarRepository) HasOverlappingScoped(start, end time.Time, machineID *uuid.UUID, excludeID uuid.UUID) (bool, error) {
	var total int64
	q := r.db.Model(&models.ShiftAllocation{}).
		Where("is_default = ?", false).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Where("id <> ?", excludeID)
	q = scopeMachine(q, machineID)
	err := q.Count(&total).Error
	return total > 0, err
}

// ReplaceShifts swaps a calendar's assigned shifts, refreshing the cached
// total duration in the same transaction
func (r *CalendarRepository) ReplaceShifts(calID uuid.UUID, shifts []models.ShiftAssignment, totalMinutes int, updatedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_allocation_id = ?", calID).Delete(&models.ShiftAssignment{}).Error; err != nil {
			return err
		}
		for i := range shifts {
			shifts[i].ShiftAllocationID = calID
		}
		if len(shifts) > 0 {
			if err := tx.Create(&shifts).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.ShiftAllocation{}).
			Where("id = ?", calID).
			Updates(map[string]interface{}{
				"total_duration_minutes": totalMinutes,
				"updated_by":             updatedBy,
			}).Error
	})
}

// AppendAlteration adds an alteration row to a calendar
func (r *CalendarRepository) AppendAlteration(alt *models.ShiftAlteration) error {
	return r.db.Create(alt).Error
}

// UpdateAlteration saves changes to an existing alteration
func (r *CalendarRepository) UpdateAlteration(alt *models.ShiftAlteration) error {
	return r.db.Save(alt).Error
}

// DeleteAlteration removes an alteration row
func (r *CalendarRepository) DeleteAlteration(id uuid.UUID) error {
	result := r.db.Delete(&models.ShiftAlteration{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAlterationByID retrieves a single alteration row
func (r *CalendarRepository) GetAlterationByID(id uuid.UUID) (*models.ShiftAlteration, error) {
	var alt models.ShiftAlteration
	if err := r.db.First(&alt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &alt, nil
}

func (r *CalendarRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Shifts", sortByIdx).
		Preload("Alterations", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		})
}

// scopeMachine narrows a calendar query to one machine, or to general
// calendars when machineID is nil
func scopeMachine(q *gorm.DB, machineID *uuid.UUID) *gorm.DB {
	if machineID == nil {
		return q.Where("machine_id IS NULL")
	}
	return q.Where("machine_id = ?", *machineID)
}
