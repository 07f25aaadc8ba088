package repository

import (
	"albion-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineFrameRepository handles database operations for machine frames
type MachineFrameRepository struct {
	db *gorm.DB
}

var _ MachineFrameRepositoryInterface = (*MachineFrameRepository)(nil)

// NewMachineFrameRepository creates a new machine frame repository
func NewMachineFrameRepository(db *gorm.DB) *MachineFrameRepository {
	return &MachineFrameRepository{db: db}
}

// Create creates a new machine frame
func (r *MachineFrameRepository) Create(frame *models.MachineFrame) error {
	return r.db.Create(frame).Error
}

// GetByID retrieves a machine frame by its UUID
func (r *MachineFrameRepository) GetByID(id uuid.UUID) (*models.MachineFrame, error) {
	var frame models.MachineFrame
	if err := r.db.First(&frame, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &frame, nil
}

// GetByName retrieves a machine frame by its unique name
func (r *MachineFrameRepository) GetByName(name string) (*models.MachineFrame, error) {
	var frame models.MachineFrame
	if err := r.db.First(&frame, "frame_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &frame, nil
}

// GetAll retrieves all machine frames ordered by name
func (r *MachineFrameRepository) GetAll() ([]models.MachineFrame, error) {
	var frames []models.MachineFrame
	err := r.db.Order("frame_name ASC").Find(&frames).Error
	return frames, err
}

// MachineRepository handles database operations for knitting machines
type MachineRepository struct {
	db *gorm.DB
}

var _ MachineRepositoryInterface = (*MachineRepository)(nil)

// NewMachineRepository creates a new machine repository
func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// Create creates a new machine
func (r *MachineRepository) Create(machine *models.Machine) error {
	return r.db.Create(machine).Error
}

// GetByID retrieves a machine by its UUID with its frame preloaded
func (r *MachineRepository) GetByID(id uuid.UUID) (*models.Machine, error) {
	var machine models.Machine
	if err := r.db.Preload("MachineFrame").First(&machine, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &machine, nil
}

// GetByMachineID retrieves a machine by its unique machine code
func (r *MachineRepository) GetByMachineID(machineID string) (*models.Machine, error) {
	var machine models.Machine
	if err := r.db.Preload("MachineFrame").First(&machine, "machine_id = ?", machineID).Error; err != nil {
		return nil, err
	}
	return &machine, nil
}

// GetAll retrieves all machines ordered by machine code
func (r *MachineRepository) GetAll() ([]models.Machine, error) {
	var machines []models.Machine
	err := r.db.Preload("MachineFrame").Order("machine_id ASC").Find(&machines).Error
	return machines, err
}

// Count returns the total number of machines
func (r *MachineRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Machine{}).Count(&total).Error
	return total, err
}
