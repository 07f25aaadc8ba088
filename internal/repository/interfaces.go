package repository

import (
	"time"

	"albion-backend/internal/database/models"

	"github.com/google/uuid"
)

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByName(name string) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Count() (int64, error)
}

// MachineFrameRepositoryInterface defines the interface for machine frame repository operations
type MachineFrameRepositoryInterface interface {
	Create(frame *models.MachineFrame) error
	GetByID(id uuid.UUID) (*models.MachineFrame, error)
	GetByName(name string) (*models.MachineFrame, error)
	GetAll() ([]models.MachineFrame, error)
}

// MachineRepositoryInterface defines the interface for machine repository operations
type MachineRepositoryInterface interface {
	Create(machine *models.Machine) error
	GetByID(id uuid.UUID) (*models.Machine, error)
	GetByMachineID(machineID string) (*models.Machine, error)
	GetAll() ([]models.Machine, error)
	Count() (int64, error)
}

// ProcessRepositoryInterface defines the interface for process repository operations
type ProcessRepositoryInterface interface {
	Create(process *models.Process) error
	GetByID(id uuid.UUID) (*models.Process, error)
	GetByName(name string) (*models.Process, error)
	GetAll() ([]models.Process, error)
}

// ColourRepositoryInterface defines the interface for colour repository operations
type ColourRepositoryInterface interface {
	Create(colour *models.Colour) error
	GetByName(name string) (*models.Colour, error)
	GetAll() ([]models.Colour, error)
}

// SizeRepositoryInterface defines the interface for size repository operations
type SizeRepositoryInterface interface {
	Create(size *models.Size) error
	GetByValue(value string) (*models.Size, error)
	GetAll() ([]models.Size, error)
}

// SizeRangeRepositoryInterface defines the interface for size range repository operations
type SizeRangeRepositoryInterface interface {
	Create(sizeRange *models.SizeRange) error
	Update(sizeRange *models.SizeRange) error
	GetByID(id uuid.UUID) (*models.SizeRange, error)
	GetByName(name string) (*models.SizeRange, error)
	GetAll() ([]models.SizeRange, error)
}

// StyleRepositoryInterface defines the interface for style repository operations
type StyleRepositoryInterface interface {
	Create(style *models.Style) error
	Update(style *models.Style) error
	GetByID(id uuid.UUID) (*models.Style, error)
	GetByCode(code string) (*models.Style, error)
	GetAll() ([]models.Style, error)
	Count() (int64, error)
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByName(name string) (*models.Shift, error)
	GetByNames(names []string) ([]models.Shift, error)
	GetAll() ([]models.Shift, error)
}

// CalendarRepositoryInterface defines the interface for shift allocation
// repository operations, including the scoped lookups the calendar resolver
// depends on. A nil machineID means "general calendar" (machine column NULL).
type CalendarRepositoryInterface interface {
	Create(cal *models.ShiftAllocation) error
	GetByID(id uuid.UUID) (*models.ShiftAllocation, error)
	FindSingleDay(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error)
	FindRangeCovering(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error)
	FindDefault() (*models.ShiftAllocation, error)
	FindOverlapping(start, end time.Time) ([]models.ShiftAllocation, error)
	HasOverlappingScoped(start, end time.Time, machineID *uuid.UUID, excludeID uuid.UUID) (bool, error)
	ReplaceShifts(calID uuid.UUID, shifts []models.ShiftAssignment, totalMinutes int, updatedBy string) error
	AppendAlteration(alt *models.ShiftAlteration) error
	UpdateAlteration(alt *models.ShiftAlteration) error
	DeleteAlteration(id uuid.UUID) error
	GetAlterationByID(id uuid.UUID) (*models.ShiftAlteration, error)
}

// OrderRepositoryInterface defines the interface for order repository operations
type OrderRepositoryInterface interface {
	Create(order *models.Order) error
	Update(order *models.Order) error
	UpdateStatus(id uuid.UUID, status models.OrderStatus, updatedBy string) error
	ReplaceProcesses(orderID uuid.UUID, processes []models.OrderProcess) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetWithDetails(id uuid.UUID) (*models.Order, error)
	ListSubmitted() ([]models.Order, error)
	ListRecent(limit int) ([]models.Order, error)
	CountSubmitted() (int64, error)
}

// AllocationRepositoryInterface defines the interface for machine operation
// repository operations used by capacity planning and reporting
type AllocationRepositoryInterface interface {
	Create(op *models.MachineOperation) error
	Update(op *models.MachineOperation) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.MachineOperation, error)
	Exists(id uuid.UUID) (bool, error)
	FindByNaturalKey(key AllocationKey) (*models.MachineOperation, error)
	ListByOrderProcess(orderID uuid.UUID, processName string) ([]models.MachineOperation, error)
	ListByOrder(orderID uuid.UUID, limit int) ([]models.MachineOperation, error)
	ListByDateRange(start, end time.Time) ([]models.MachineOperation, error)
	UsedMinutes(start, end time.Time) ([]UsedMinutesRow, error)
	ProductionReport(filter ProductionFilter) ([]ProductionRow, error)
	DeleteOrphans(start, end time.Time, keepIDs []uuid.UUID) (int64, error)
}

// TrackingRepositoryInterface defines the interface for order tracking repository operations
type TrackingRepositoryInterface interface {
	Create(tracking *models.OrderTracking) error
	SummaryByOrder(orderID uuid.UUID) ([]TrackingSummaryRow, error)
	Summary() ([]TrackingSummaryRow, error)
}

// ImportJobRepositoryInterface defines the interface for import job repository operations
type ImportJobRepositoryInterface interface {
	Create(job *models.ImportJob) error
	Update(job *models.ImportJob) error
	GetByID(id uuid.UUID) (*models.ImportJob, error)
}
