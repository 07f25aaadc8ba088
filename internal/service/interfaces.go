package service

import (
	"io"
	"time"

	"albion-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CalendarServiceInterface defines the contract for shift calendar operations
type CalendarServiceInterface interface {
	Resolve(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, CalendarSource, error)
	CapacityMinutes(date time.Time, machineID *uuid.UUID, skipWeekdayCheck bool) (int, error)
	GetShiftAllocations(startDate, endDate string) ([]CalendarResponse, error)
	CreateShiftAllocation(req *CreateCalendarRequest, operator string) (*CalendarResponse, error)
	UpdateDateShift(req *UpdateDateShiftRequest, operator string) (*DateShiftResponse, error)
	AddShiftAlteration(req *AddAlterationRequest, operator string) (*AlterationResponse, error)
	UpdateShiftAlteration(alterationID uuid.UUID, req *UpdateAlterationRequest, operator string) (*AlterationResponse, error)
	DeleteShiftAlteration(alterationID, parentID uuid.UUID, operator string) error
}

// PlanningServiceInterface defines the contract for machine allocation planning
type PlanningServiceInterface interface {
	GetOrderData(orderID uuid.UUID) (*OrderDataResponse, error)
	GetExistingAllocations(orderID uuid.UUID, processName string) ([]AllocationRowResponse, error)
	GetAllAllocations(startDate, endDate string) ([]AllocationRowResponse, error)
	SaveAllocations(req *SaveAllocationsRequest, operator string) (*SaveAllocationsResponse, error)
	DeleteAllocation(id uuid.UUID) (bool, error)
}

// ReportServiceInterface defines the contract for production reporting
type ReportServiceInterface interface {
	GetProductionReport(req *ProductionReportRequest) (*ProductionReportResponse, error)
	GetMachineAvailability(startDate, endDate string) (*AvailabilityResponse, error)
	GetOrderTrackingSummary() ([]TrackingSummaryResponse, error)
	GetDashboardStats() (*DashboardStatsResponse, error)
}

// OrderServiceInterface defines the contract for order lifecycle operations
type OrderServiceInterface interface {
	Create(req *CreateOrderRequest, operator string) (*OrderResponse, error)
	Update(id uuid.UUID, req *CreateOrderRequest, operator string) (*OrderResponse, error)
	Get(id uuid.UUID) (*OrderResponse, error)
	ListSubmitted() ([]OrderResponse, error)
	Submit(id uuid.UUID, operator string) (*OrderResponse, error)
	Cancel(id uuid.UUID, operator string) (*OrderResponse, error)
	Close(id uuid.UUID, operator string) (*OrderResponse, error)
	Reopen(id uuid.UUID, operator string) (*OrderResponse, error)
	GetCompletion(id uuid.UUID) (CompletionResponse, error)
	RecordTracking(orderID uuid.UUID, req *TrackingRequest, operator string) (*TrackingEntryResponse, error)
}

// MastersServiceInterface defines the contract for master data management
type MastersServiceInterface interface {
	GetMachines() ([]MachineResponse, error)
	GetMachine(id uuid.UUID) (*MachineResponse, error)
	CreateMachine(req *CreateMachineRequest, operator string) (*MachineResponse, error)
	GetProcesses() ([]NamedResponse, error)
	CreateProcess(req *CreateNamedRequest, operator string) (*NamedResponse, error)
	GetClients() ([]NamedResponse, error)
	CreateClient(req *CreateNamedRequest, operator string) (*NamedResponse, error)
	GetColours() ([]NamedResponse, error)
	CreateColour(req *CreateNamedRequest, operator string) (*NamedResponse, error)
	GetSizes() ([]NamedResponse, error)
	CreateSize(req *CreateNamedRequest, operator string) (*NamedResponse, error)
	GetSizeRanges() ([]SizeRangeResponse, error)
	CreateSizeRange(req *CreateSizeRangeRequest, operator string) (*SizeRangeResponse, error)
	GetStyles() ([]StyleResponse, error)
	GetStyleDetails(code string) (*StyleResponse, error)
	CreateStyle(req *CreateStyleRequest, operator string) (*StyleResponse, error)
	GetAllShifts() ([]ShiftResponse, error)
	CreateShift(req *CreateShiftRequest, operator string) (*ShiftResponse, error)
}

// ImportServiceInterface defines the contract for spreadsheet order imports
type ImportServiceInterface interface {
	ImportOrders(fileName string, r io.Reader, operator string) (*ImportJobResponse, error)
	GetJob(id uuid.UUID) (*ImportJobResponse, error)
}
