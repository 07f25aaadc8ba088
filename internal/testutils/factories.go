package testutils

import (
	"time"

	"albion-backend/internal/database/models"

	"github.com/google/uuid"
)

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	id := uuid.New()
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientName: "Client " + id.String()[:8],
	}
}

// WithName sets a custom name for the client
func (f *ClientFactory) WithName(name string) *models.Client {
	client := f.Create()
	client.ClientName = name
	return client
}

// MachineFactory provides methods to create test Machine data with a frame
type MachineFactory struct{}

// NewMachineFactory creates a new MachineFactory
func NewMachineFactory() *MachineFactory {
	return &MachineFactory{}
}

// CreateFrame creates a test MachineFrame with default values
func (f *MachineFactory) CreateFrame() *models.MachineFrame {
	id := uuid.New()
	return &models.MachineFrame{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FrameName: "Frame " + id.String()[:8],
	}
}

// Create creates a test Machine attached to the given frame
func (f *MachineFactory) Create(frameID uuid.UUID) *models.Machine {
	id := uuid.New()
	return &models.Machine{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MachineID:      "M-" + id.String()[:6],
		MachineName:    "Machine " + id.String()[:6],
		MachineFrameID: frameID,
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with the given times. Duration is recomputed
// on save by the model hook.
func (f *ShiftFactory) Create(name, start, end string) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShiftName: name,
		StartTime: start,
		EndTime:   end,
	}
}

// CalendarFactory provides methods to create test ShiftAllocation data
type CalendarFactory struct{}

// NewCalendarFactory creates a new CalendarFactory
func NewCalendarFactory() *CalendarFactory {
	return &CalendarFactory{}
}

// Create creates a test calendar covering [start, end] working every day
func (f *CalendarFactory) Create(start, end time.Time) *models.ShiftAllocation {
	return &models.ShiftAllocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StartDate: start,
		EndDate:   end,
		Sunday:    true,
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
		Saturday:  true,
	}
}

// WithMachine scopes the calendar to one machine
func (f *CalendarFactory) WithMachine(start, end time.Time, machineID uuid.UUID) *models.ShiftAllocation {
	cal := f.Create(start, end)
	cal.MachineID = &machineID
	return cal
}

// Default creates a test default calendar
func (f *CalendarFactory) Default(start, end time.Time) *models.ShiftAllocation {
	cal := f.Create(start, end)
	cal.IsDefault = true
	return cal
}

// StyleFactory provides methods to create test Style data
type StyleFactory struct{}

// NewStyleFactory creates a new StyleFactory
func NewStyleFactory() *StyleFactory {
	return &StyleFactory{}
}

// Create creates a test Style attached to the given machine frame
func (f *StyleFactory) Create(frameID uuid.UUID) *models.Style {
	id := uuid.New()
	code := "ST-" + id.String()[:6]
	return &models.Style{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StyleCode:      code,
		StyleName:      "Style " + code,
		MachineFrameID: frameID,
		GG:             "12",
	}
}

// WithProcesses adds process rows with standard minutes to a style
func (f *StyleFactory) WithProcesses(frameID uuid.UUID, minutes map[string]float64) *models.Style {
	style := f.Create(frameID)
	for name, m := range minutes {
		style.Processes = append(style.Processes, models.StyleProcess{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			ProcessName: name,
			Minutes:     m,
		})
	}
	return style
}

// OrderFactory provides methods to create test Order data
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory
func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// Create creates a test draft Order for the given client
func (f *OrderFactory) Create(clientID uuid.UUID) *models.Order {
	id := uuid.New()
	return &models.Order{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:      clientID,
		PurchaseOrder: "PO-" + id.String()[:6],
		OrderDate:     time.Now().Truncate(24 * time.Hour),
		CurrencyType:  "USD",
		Status:        models.OrderStatusDraft,
	}
}

// WithDetail appends a matrix cell to the order and keeps the style row set
func (f *OrderFactory) WithDetail(order *models.Order, styleCode, colour, size string, qty int) *models.Order {
	found := false
	for _, s := range order.Styles {
		if s.StyleCode == styleCode {
			found = true
			break
		}
	}
	if !found {
		order.Styles = append(order.Styles, models.OrderStyle{
			BaseModel: models.BaseModel{ID: uuid.New()},
			StyleCode: styleCode,
		})
	}
	order.Details = append(order.Details, models.OrderDetail{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StyleCode: styleCode,
		Colour:    colour,
		Size:      size,
		Quantity:  qty,
	})
	order.TotalQuantity = order.SumDetailQuantity()
	return order
}

// OperationFactory provides methods to create test MachineOperation data
type OperationFactory struct{}

// NewOperationFactory creates a new OperationFactory
func NewOperationFactory() *OperationFactory {
	return &OperationFactory{}
}

// Create creates a test MachineOperation for the given machine and order
func (f *OperationFactory) Create(machineID, orderID uuid.UUID, styleCode string, date time.Time) *models.MachineOperation {
	return &models.MachineOperation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MachineID:        machineID,
		OrderID:          orderID,
		StyleCode:        styleCode,
		ProcessName:      "Knitting",
		Colour:           "Navy",
		Size:             "M",
		OperationDate:    date,
		Quantity:         10,
		AllocatedMinutes: 120,
		Operator:         "tester",
	}
}
