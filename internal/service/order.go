package service

import (
	"errors"
	"fmt"
	"strings"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService provides order lifecycle business logic
type OrderService struct {
	orders      repository.OrderRepositoryInterface
	clients     repository.ClientRepositoryInterface
	styles      repository.StyleRepositoryInterface
	allocations repository.AllocationRepositoryInterface
	tracking    repository.TrackingRepositoryInterface
	validator   *validator.Validate
}

// Ensure OrderService implements OrderServiceInterface
var _ OrderServiceInterface = (*OrderService)(nil)

// NewOrderService creates a new OrderService
func NewOrderService(
	orders repository.OrderRepositoryInterface,
	clients repository.ClientRepositoryInterface,
	styles repository.StyleRepositoryInterface,
	allocations repository.AllocationRepositoryInterface,
	tracking repository.TrackingRepositoryInterface,
	validator *validator.Validate,
) *OrderService {
	return &OrderService{
		orders:      orders,
		clients:     clients,
		styles:      styles,
		allocations: allocations,
		tracking:    tracking,
		validator:   validator,
	}
}

// OrderDetailInput is one matrix cell in a create/update request
type OrderDetailInput struct {
	StyleCode    string          `json:"style_code" validate:"required"`
	Colour       string          `json:"colour" validate:"required"`
	Size         string          `json:"size" validate:"required"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	Rate         decimal.Decimal `json:"rate"`
	DeliveryDate *string         `json:"delivery_date,omitempty"`
}

// CreateOrderRequest creates or replaces a draft order
type CreateOrderRequest struct {
	ClientID      uuid.UUID          `json:"client_id" validate:"required"`
	PurchaseOrder string             `json:"purchase_order" validate:"max=140"`
	OrderDate     string             `json:"order_date" validate:"required"`
	DeliveryDate  *string            `json:"delivery_date,omitempty"`
	CurrencyType  string             `json:"currency_type" validate:"max=20"`
	Styles        []string           `json:"styles" validate:"required,min=1,dive,required"`
	Details       []OrderDetailInput `json:"order_details" validate:"dive"`
}

// OrderDetailResponse is one matrix cell in API responses
type OrderDetailResponse struct {
	StyleCode    string          `json:"style_code"`
	Colour       string          `json:"colour"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	DeliveryDate *string         `json:"delivery_date,omitempty"`
}

// OrderProcessResponse is one snapshot process row in API responses
type OrderProcessResponse struct {
	StyleCode   string  `json:"style_code"`
	ProcessName string  `json:"process_name"`
	Minutes     float64 `json:"minutes"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID              `json:"id"`
	ClientID      uuid.UUID              `json:"client_id"`
	ClientName    string                 `json:"client_name"`
	PurchaseOrder string                 `json:"purchase_order"`
	OrderDate     string                 `json:"order_date"`
	DeliveryDate  *string                `json:"delivery_date,omitempty"`
	CurrencyType  string                 `json:"currency_type"`
	Status        string                 `json:"status"`
	TotalQuantity int                    `json:"total_quantity"`
	Styles        []string               `json:"styles"`
	Details       []OrderDetailResponse  `json:"order_details"`
	Processes     []OrderProcessResponse `json:"order_processes"`
}

// CompletionResponse nests completed quantities by style, colour and size
type CompletionResponse map[string]map[string]map[string]int

// TrackingRequest records produced quantities against an order
type TrackingRequest struct {
	StyleCode    string `json:"style_code" validate:"required"`
	Colour       string `json:"colour" validate:"max=140"`
	Size         string `json:"size" validate:"max=40"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	TrackingDate string `json:"tracking_date" validate:"required"`
}

// TrackingEntryResponse represents a recorded tracking entry
type TrackingEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	StyleCode    string    `json:"style_code"`
	Colour       string    `json:"colour"`
	Size         string    `json:"size"`
	Quantity     int       `json:"quantity"`
	TrackingDate string    `json:"tracking_date"`
}

// Create creates a new draft order
func (s *OrderService) Create(req *CreateOrderRequest, operator string) (*OrderResponse, error) {
	order, err := s.buildOrder(req, operator)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return s.Get(order.ID)
}

// Update replaces a draft order's header and matrix
func (s *OrderService) Update(id uuid.UUID, req *CreateOrderRequest, operator string) (*OrderResponse, error) {
	existing, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if existing.Status != models.OrderStatusDraft {
		return nil, apperrors.NewValidationError("only draft orders can be edited")
	}

	order, err := s.buildOrder(req, operator)
	if err != nil {
		return nil, err
	}
	order.ID = id
	order.CreatedAt = existing.CreatedAt
	order.CreatedBy = existing.CreatedBy

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return s.Get(id)
}

// Get retrieves an order with its matrix and process snapshot
func (s *OrderService) Get(id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	resp := s.toResponse(order)
	return &resp, nil
}

// ListSubmitted retrieves all Open and Closed orders
func (s *OrderService) ListSubmitted() ([]OrderResponse, error) {
	orders, err := s.orders.ListSubmitted()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = s.toResponse(&orders[i])
	}
	return responses, nil
}

// Submit validates the order matrix, snapshots process minutes from the
// style masters and moves the order to Open
func (s *OrderService) Submit(id uuid.UUID, operator string) (*OrderResponse, error) {
	order, err := s.orders.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != models.OrderStatusDraft {
		return nil, apperrors.NewValidationError("only draft orders can be submitted")
	}
	if len(order.Styles) == 0 {
		return nil, apperrors.ErrNoOrderStyles
	}

	// Every style row needs at least one positive-quantity matrix cell
	withQuantity := make(map[string]bool)
	for _, d := range order.Details {
		if d.Quantity > 0 {
			withQuantity[d.StyleCode] = true
		}
	}
	for _, row := range order.Styles {
		if !withQuantity[row.StyleCode] {
			return nil, apperrors.NewValidationError(
				"please enter colour and size wise quantities for style " + row.StyleCode)
		}
	}

	// Every (style, colour) with quantity needs rate and delivery date
	var missingRate, missingDate []string
	seen := make(map[string]bool)
	for _, d := range order.Details {
		if d.Quantity <= 0 {
			continue
		}
		key := d.StyleCode + " - " + d.Colour
		if seen[key] {
			continue
		}
		seen[key] = true
		if d.Rate.IsZero() {
			missingRate = append(missingRate, key)
		}
		if d.DeliveryDate == nil {
			missingDate = append(missingDate, key)
		}
	}
	var problems []string
	if len(missingRate) > 0 {
		problems = append(problems, "rate missing for: "+strings.Join(missingRate, ", "))
	}
	if len(missingDate) > 0 {
		problems = append(problems, "delivery date missing for: "+strings.Join(missingDate, ", "))
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationError(strings.Join(problems, ". "))
	}

	// Snapshot process minutes from the style masters
	var processes []models.OrderProcess
	for _, row := range order.Styles {
		style, err := s.styles.GetByCode(row.StyleCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFoundError("style not found: " + row.StyleCode)
			}
			return nil, fmt.Errorf("failed to get style %q: %w", row.StyleCode, err)
		}
		for _, proc := range style.Processes {
			if proc.Minutes <= 0 {
				return nil, apperrors.NewValidationError(fmt.Sprintf(
					"process %s of style %s has no minutes", proc.ProcessName, style.StyleCode))
			}
			processes = append(processes, models.OrderProcess{
				StyleCode:   row.StyleCode,
				ProcessName: proc.ProcessName,
				Minutes:     proc.Minutes,
			})
		}
	}

	if err := s.orders.ReplaceProcesses(order.ID, processes); err != nil {
		return nil, fmt.Errorf("failed to snapshot order processes: %w", err)
	}
	if err := s.orders.UpdateStatus(order.ID, models.OrderStatusOpen, operator); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}
	return s.Get(order.ID)
}

// Cancel cancels an order unless it is closed or machine operations still
// reference it
func (s *OrderService) Cancel(id uuid.UUID, operator string) (*OrderResponse, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status == models.OrderStatusClosed {
		return nil, apperrors.ErrOrderClosed
	}

	ops, err := s.allocations.ListByOrder(id, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to check machine operations: %w", err)
	}
	if len(ops) > 0 {
		names := make([]string, 0, len(ops))
		for _, op := range ops {
			names = append(names, fmt.Sprintf("%s %s on %s",
				op.StyleCode, op.ProcessName, models.FormatDate(op.OperationDate)))
		}
		return nil, apperrors.NewValidationError(
			"cannot cancel order with machine operation allocations: " + strings.Join(names, "; ") +
				". Remove the allocations from capacity planning first")
	}

	if err := s.orders.UpdateStatus(id, models.OrderStatusCancelled, operator); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	return s.Get(id)
}

// Close moves an Open order to Closed
func (s *OrderService) Close(id uuid.UUID, operator string) (*OrderResponse, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status == models.OrderStatusClosed {
		return nil, apperrors.ErrOrderAlreadyClosed
	}
	if order.Status != models.OrderStatusOpen {
		return nil, apperrors.ErrOrderNotSubmitted
	}
	if err := s.orders.UpdateStatus(id, models.OrderStatusClosed, operator); err != nil {
		return nil, fmt.Errorf("failed to close order: %w", err)
	}
	return s.Get(id)
}

// Reopen moves a Closed order back to Open
func (s *OrderService) Reopen(id uuid.UUID, operator string) (*OrderResponse, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != models.OrderStatusClosed {
		return nil, apperrors.ErrOrderNotClosed
	}
	if err := s.orders.UpdateStatus(id, models.OrderStatusOpen, operator); err != nil {
		return nil, fmt.Errorf("failed to reopen order: %w", err)
	}
	return s.Get(id)
}

// GetCompletion aggregates tracked quantities by style, colour and size
func (s *OrderService) GetCompletion(id uuid.UUID) (CompletionResponse, error) {
	if _, err := s.orders.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	rows, err := s.tracking.SummaryByOrder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize tracking: %w", err)
	}
	result := make(CompletionResponse)
	for _, r := range rows {
		byColour, ok := result[r.StyleCode]
		if !ok {
			byColour = make(map[string]map[string]int)
			result[r.StyleCode] = byColour
		}
		bySize, ok := byColour[r.Colour]
		if !ok {
			bySize = make(map[string]int)
			byColour[r.Colour] = bySize
		}
		bySize[r.Size] += r.Quantity
	}
	return result, nil
}

// RecordTracking records produced quantities against an order. The order must
// have machine operation allocations in capacity planning, and the style must
// be on the order.
func (s *OrderService) RecordTracking(orderID uuid.UUID, req *TrackingRequest, operator string) (*TrackingEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	order, err := s.orders.GetWithDetails(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	ops, err := s.allocations.ListByOrder(orderID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to check machine operations: %w", err)
	}
	if len(ops) == 0 {
		return nil, apperrors.ErrOrderNotAllocated
	}

	onOrder := false
	for _, row := range order.Styles {
		if row.StyleCode == req.StyleCode {
			onOrder = true
			break
		}
	}
	if !onOrder {
		return nil, apperrors.NewValidationError(
			"tracking entry references style not on the order: " + req.StyleCode)
	}

	date, err := models.ParseDate(req.TrackingDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tracking_date: " + req.TrackingDate)
	}

	entry := &models.OrderTracking{
		BaseModel:    models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		OrderID:      orderID,
		StyleCode:    req.StyleCode,
		Colour:       req.Colour,
		Size:         req.Size,
		Quantity:     req.Quantity,
		TrackingDate: date,
		User:         operator,
	}
	if err := s.tracking.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record tracking entry: %w", err)
	}

	return &TrackingEntryResponse{
		ID:           entry.ID,
		OrderID:      entry.OrderID,
		StyleCode:    entry.StyleCode,
		Colour:       entry.Colour,
		Size:         entry.Size,
		Quantity:     entry.Quantity,
		TrackingDate: models.FormatDate(entry.TrackingDate),
	}, nil
}

// buildOrder validates a request and assembles the order model
func (s *OrderService) buildOrder(req *CreateOrderRequest, operator string) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(req.Styles) == 0 {
		return nil, apperrors.ErrNoOrderStyles
	}

	if _, err := s.clients.GetByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	orderDate, err := models.ParseDate(req.OrderDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid order_date: " + req.OrderDate)
	}

	order := &models.Order{
		BaseModel:     models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		ClientID:      req.ClientID,
		PurchaseOrder: req.PurchaseOrder,
		OrderDate:     orderDate,
		CurrencyType:  req.CurrencyType,
		Status:        models.OrderStatusDraft,
	}
	if req.DeliveryDate != nil {
		d, err := models.ParseDate(*req.DeliveryDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid delivery_date: " + *req.DeliveryDate)
		}
		order.DeliveryDate = &d
	}

	styleSet := make(map[string]bool, len(req.Styles))
	for _, code := range req.Styles {
		if styleSet[code] {
			continue
		}
		if _, err := s.styles.GetByCode(code); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("style not found: " + code)
			}
			return nil, fmt.Errorf("failed to get style %q: %w", code, err)
		}
		styleSet[code] = true
		order.Styles = append(order.Styles, models.OrderStyle{StyleCode: code})
	}

	for _, d := range req.Details {
		if !styleSet[d.StyleCode] {
			return nil, apperrors.NewValidationError(
				"order detail references style not on the order: " + d.StyleCode)
		}
		detail := models.OrderDetail{
			StyleCode: d.StyleCode,
			Colour:    d.Colour,
			Size:      d.Size,
			Quantity:  d.Quantity,
			Rate:      d.Rate,
		}
		if d.DeliveryDate != nil {
			dd, err := models.ParseDate(*d.DeliveryDate)
			if err != nil {
				return nil, apperrors.NewValidationError("invalid delivery_date: " + *d.DeliveryDate)
			}
			detail.DeliveryDate = &dd
		}
		order.Details = append(order.Details, detail)
	}
	order.TotalQuantity = order.SumDetailQuantity()
	return order, nil
}

// toResponse converts an Order model to API response
func (s *OrderService) toResponse(order *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		ClientID:      order.ClientID,
		ClientName:    order.Client.ClientName,
		PurchaseOrder: order.PurchaseOrder,
		OrderDate:     models.FormatDate(order.OrderDate),
		CurrencyType:  order.CurrencyType,
		Status:        string(order.Status),
		TotalQuantity: order.TotalQuantity,
		Styles:        make([]string, 0, len(order.Styles)),
		Details:       make([]OrderDetailResponse, 0, len(order.Details)),
		Processes:     make([]OrderProcessResponse, 0, len(order.Processes)),
	}
	if order.DeliveryDate != nil {
		d := models.FormatDate(*order.DeliveryDate)
		resp.DeliveryDate = &d
	}
	for _, row := range order.Styles {
		resp.Styles = append(resp.Styles, row.StyleCode)
	}
	for _, d := range order.Details {
		detail := OrderDetailResponse{
			StyleCode: d.StyleCode,
			Colour:    d.Colour,
			Size:      d.Size,
			Quantity:  d.Quantity,
			Rate:      d.Rate,
		}
		if d.DeliveryDate != nil {
			dd := models.FormatDate(*d.DeliveryDate)
			detail.DeliveryDate = &dd
		}
		resp.Details = append(resp.Details, detail)
	}
	for _, p := range order.Processes {
		resp.Processes = append(resp.Processes, OrderProcessResponse{
			StyleCode:   p.StyleCode,
			ProcessName: p.ProcessName,
			Minutes:     p.Minutes,
		})
	}
	return resp
}
