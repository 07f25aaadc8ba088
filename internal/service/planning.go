package service

import (
	"errors"
	"fmt"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanningService provides capacity planning business logic: order data for
// the planning grid and bulk allocation persistence
type PlanningService struct {
	allocations repository.AllocationRepositoryInterface
	machines    repository.MachineRepositoryInterface
	orders      repository.OrderRepositoryInterface
	styles      repository.StyleRepositoryInterface
	validator   *validator.Validate
}

// Ensure PlanningService implements PlanningServiceInterface
var _ PlanningServiceInterface = (*PlanningService)(nil)

// NewPlanningService creates a new PlanningService
func NewPlanningService(
	allocations repository.AllocationRepositoryInterface,
	machines repository.MachineRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	styles repository.StyleRepositoryInterface,
	validator *validator.Validate,
) *PlanningService {
	return &PlanningService{
		allocations: allocations,
		machines:    machines,
		orders:      orders,
		styles:      styles,
		validator:   validator,
	}
}

// AllocationItem is one planned machine operation in a bulk save. MachineCode
// is the human machine code, not the UUID. A present ID updates that record;
// otherwise the natural key decides between update and create.
type AllocationItem struct {
	ID               *uuid.UUID `json:"id,omitempty"`
	MachineCode      string     `json:"machine_id" validate:"required"`
	OrderID          uuid.UUID  `json:"order_id" validate:"required"`
	StyleCode        string     `json:"style_code" validate:"required"`
	ProcessName      string     `json:"process" validate:"required"`
	Colour           string     `json:"colour"`
	Size             string     `json:"size"`
	Quantity         int        `json:"quantity" validate:"min=0"`
	OperationDate    string     `json:"operation_date" validate:"required"`
	ShiftName        string     `json:"shift"`
	AllocatedMinutes int        `json:"allocated_minutes" validate:"min=0"`
}

// SaveAllocationsRequest is the bulk save payload. When both dates are set,
// operations in the range missing from the saved set are deleted afterwards.
type SaveAllocationsRequest struct {
	Allocations []AllocationItem `json:"allocations" validate:"required,min=1,dive"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
}

// SaveAllocationsResponse lists the IDs of saved operations and how many
// orphans were removed
type SaveAllocationsResponse struct {
	Saved          []uuid.UUID `json:"saved"`
	OrphansDeleted int64       `json:"orphans_deleted"`
}

// AllocationRowResponse represents one machine operation in API responses
type AllocationRowResponse struct {
	ID               uuid.UUID `json:"id"`
	MachineCode      string    `json:"machine_id"`
	OrderID          uuid.UUID `json:"order_id"`
	StyleCode        string    `json:"style_code"`
	ProcessName      string    `json:"process"`
	Colour           string    `json:"colour"`
	Size             string    `json:"size"`
	Quantity         int       `json:"quantity"`
	OperationDate    string    `json:"operation_date"`
	ShiftName        string    `json:"shift"`
	AllocatedMinutes int       `json:"allocated_minutes"`
}

// StyleProcessData is a process row with standard minutes per piece
type StyleProcessData struct {
	ProcessName string  `json:"process_name"`
	Minutes     float64 `json:"minutes"`
}

// OrderStyleData is a style row with its process breakdown for planning
type OrderStyleData struct {
	StyleCode string             `json:"style_code"`
	StyleName string             `json:"style_name"`
	GG        string             `json:"gg"`
	Processes []StyleProcessData `json:"processes"`
}

// OrderDetailData is one matrix cell of the order for planning
type OrderDetailData struct {
	StyleCode string `json:"style_code"`
	Colour    string `json:"colour"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// OrderDataResponse is the planning view of one order
type OrderDataResponse struct {
	ID           uuid.UUID         `json:"id"`
	Status       string            `json:"status"`
	OrderDate    string            `json:"order_date"`
	DeliveryDate *string           `json:"delivery_date,omitempty"`
	Styles       []OrderStyleData  `json:"styles"`
	Details      []OrderDetailData `json:"order_details"`
}

// GetOrderData retrieves an order with the style process minutes needed to
// spread quantities across machines and dates
func (s *PlanningService) GetOrderData(orderID uuid.UUID) (*OrderDataResponse, error) {
	order, err := s.orders.GetWithDetails(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	resp := &OrderDataResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		OrderDate: models.FormatDate(order.OrderDate),
		Styles:    make([]OrderStyleData, 0, len(order.Styles)),
		Details:   make([]OrderDetailData, 0, len(order.Details)),
	}
	if order.DeliveryDate != nil {
		d := models.FormatDate(*order.DeliveryDate)
		resp.DeliveryDate = &d
	}

	for _, row := range order.Styles {
		style, err := s.styles.GetByCode(row.StyleCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFoundError("style not found: " + row.StyleCode)
			}
			return nil, fmt.Errorf("failed to get style %q: %w", row.StyleCode, err)
		}
		data := OrderStyleData{
			StyleCode: style.StyleCode,
			StyleName: style.StyleName,
			GG:        style.GG,
			Processes: make([]StyleProcessData, 0, len(style.Processes)),
		}
		for _, proc := range style.Processes {
			data.Processes = append(data.Processes, StyleProcessData{
				ProcessName: proc.ProcessName,
				Minutes:     proc.Minutes,
			})
		}
		resp.Styles = append(resp.Styles, data)
	}

	for _, d := range order.Details {
		resp.Details = append(resp.Details, OrderDetailData{
			StyleCode: d.StyleCode,
			Colour:    d.Colour,
			Size:      d.Size,
			Quantity:  d.Quantity,
		})
	}
	return resp, nil
}

// GetExistingAllocations retrieves the operations already planned for one
// order process
func (s *PlanningService) GetExistingAllocations(orderID uuid.UUID, processName string) ([]AllocationRowResponse, error) {
	if processName == "" {
		return nil, apperrors.NewValidationError("process is required")
	}
	ops, err := s.allocations.ListByOrderProcess(orderID, processName)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}
	return s.toRowResponses(ops)
}

// GetAllAllocations retrieves every operation dated within [start, end]
func (s *PlanningService) GetAllAllocations(startDate, endDate string) ([]AllocationRowResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	ops, err := s.allocations.ListByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}
	return s.toRowResponses(ops)
}

// SaveAllocations persists a batch of planned operations. Per-item failures
// are collected and reported together; items applied before a failure stay
// applied. Orphan deletion inside [start, end] runs only when both dates are
// supplied and every item succeeded.
func (s *PlanningService) SaveAllocations(req *SaveAllocationsRequest, operator string) (*SaveAllocationsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	saved := make([]uuid.UUID, 0, len(req.Allocations))
	var itemErrors []string

	for _, item := range req.Allocations {
		id, err := s.saveOne(&item, operator)
		if err != nil {
			itemErrors = append(itemErrors, err.Error())
			continue
		}
		saved = append(saved, id)
	}

	if len(itemErrors) > 0 {
		return nil, apperrors.NewBatchError(itemErrors)
	}

	resp := &SaveAllocationsResponse{Saved: saved}
	if req.StartDate != "" && req.EndDate != "" {
		start, end, err := parseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		deleted, err := s.allocations.DeleteOrphans(start, end, saved)
		if err != nil {
			return nil, fmt.Errorf("failed to delete orphaned allocations: %w", err)
		}
		resp.OrphansDeleted = deleted
	}
	return resp, nil
}

// saveOne applies a single allocation item: by record ID when given and
// present, else by natural key, else as a new record
func (s *PlanningService) saveOne(item *AllocationItem, operator string) (uuid.UUID, error) {
	machine, err := s.machines.GetByMachineID(item.MachineCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("machine not found: %s", item.MachineCode)
		}
		return uuid.Nil, fmt.Errorf("failed to look up machine %s: %w", item.MachineCode, err)
	}

	date, err := models.ParseDate(item.OperationDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid operation_date: %s", item.OperationDate)
	}

	apply := func(op *models.MachineOperation) {
		op.MachineID = machine.ID
		op.OrderID = item.OrderID
		op.StyleCode = item.StyleCode
		op.ProcessName = item.ProcessName
		op.Colour = item.Colour
		op.Size = item.Size
		op.Quantity = item.Quantity
		op.OperationDate = date
		op.ShiftName = item.ShiftName
		op.AllocatedMinutes = item.AllocatedMinutes
		op.Operator = operator
		op.UpdatedBy = operator
	}

	if item.ID != nil {
		exists, err := s.allocations.Exists(*item.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to check allocation %s: %w", item.ID, err)
		}
		if exists {
			op, err := s.allocations.GetByID(*item.ID)
			if err != nil {
				return uuid.Nil, fmt.Errorf("failed to load allocation %s: %w", item.ID, err)
			}
			apply(op)
			if err := s.allocations.Update(op); err != nil {
				return uuid.Nil, fmt.Errorf("failed to update allocation %s: %w", item.ID, err)
			}
			return op.ID, nil
		}
	}

	// Upsert by natural key so re-saving the grid never duplicates rows
	existing, err := s.allocations.FindByNaturalKey(repository.AllocationKey{
		MachineID:   machine.ID,
		OrderID:     item.OrderID,
		StyleCode:   item.StyleCode,
		ProcessName: item.ProcessName,
		Colour:      item.Colour,
		Size:        item.Size,
		Date:        date,
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("failed to look up allocation: %w", err)
	}
	if existing != nil {
		apply(existing)
		if err := s.allocations.Update(existing); err != nil {
			return uuid.Nil, fmt.Errorf("failed to update allocation: %w", err)
		}
		return existing.ID, nil
	}

	op := &models.MachineOperation{BaseModel: models.BaseModel{CreatedBy: operator}}
	apply(op)
	if err := s.allocations.Create(op); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create allocation: %w", err)
	}
	return op.ID, nil
}

// DeleteAllocation removes a planned operation. A missing record reports a
// failed result rather than an error.
func (s *PlanningService) DeleteAllocation(id uuid.UUID) (bool, error) {
	err := s.allocations.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete allocation: %w", err)
	}
	return true, nil
}

// toRowResponses decorates operations with their machine codes
func (s *PlanningService) toRowResponses(ops []models.MachineOperation) ([]AllocationRowResponse, error) {
	codes := make(map[uuid.UUID]string)
	rows := make([]AllocationRowResponse, 0, len(ops))
	for _, op := range ops {
		code, ok := codes[op.MachineID]
		if !ok {
			machine, err := s.machines.GetByID(op.MachineID)
			if err != nil {
				return nil, fmt.Errorf("failed to load machine for allocation %s: %w", op.ID, err)
			}
			code = machine.MachineID
			codes[op.MachineID] = code
		}
		rows = append(rows, AllocationRowResponse{
			ID:               op.ID,
			MachineCode:      code,
			OrderID:          op.OrderID,
			StyleCode:        op.StyleCode,
			ProcessName:      op.ProcessName,
			Colour:           op.Colour,
			Size:             op.Size,
			Quantity:         op.Quantity,
			OperationDate:    models.FormatDate(op.OperationDate),
			ShiftName:        op.ShiftName,
			AllocatedMinutes: op.AllocatedMinutes,
		})
	}
	return rows, nil
}
