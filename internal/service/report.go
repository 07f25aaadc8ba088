package service

import (
	"fmt"
	"sort"
	"time"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService provides production, availability and dashboard reporting
type ReportService struct {
	allocations repository.AllocationRepositoryInterface
	machines    repository.MachineRepositoryInterface
	orders      repository.OrderRepositoryInterface
	styles      repository.StyleRepositoryInterface
	clients     repository.ClientRepositoryInterface
	tracking    repository.TrackingRepositoryInterface
	calendars   CalendarCapacityResolver
}

// CalendarCapacityResolver is the slice of the calendar service the reports
// need: effective capacity per machine per date
type CalendarCapacityResolver interface {
	CapacityMinutes(date time.Time, machineID *uuid.UUID, skipWeekdayCheck bool) (int, error)
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new ReportService
func NewReportService(
	allocations repository.AllocationRepositoryInterface,
	machines repository.MachineRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	styles repository.StyleRepositoryInterface,
	clients repository.ClientRepositoryInterface,
	tracking repository.TrackingRepositoryInterface,
	calendars CalendarCapacityResolver,
) *ReportService {
	return &ReportService{
		allocations: allocations,
		machines:    machines,
		orders:      orders,
		styles:      styles,
		clients:     clients,
		tracking:    tracking,
		calendars:   calendars,
	}
}

// ProductionReportRequest filters the production report
type ProductionReportRequest struct {
	StartDate   string
	EndDate     string
	MachineID   *uuid.UUID
	OrderID     *uuid.UUID
	StyleCode   string
	ProcessName string
	GroupBy     string // "", "style" or "machine"
}

// ProductionReportRow is one line of the default production report
type ProductionReportRow struct {
	OperationDate string    `json:"operation_date"`
	MachineCode   string    `json:"machine_id"`
	MachineName   string    `json:"machine_name"`
	OrderID       uuid.UUID `json:"order_id"`
	PurchaseOrder string    `json:"purchase_order"`
	StyleCode     string    `json:"style_code"`
	ProcessName   string    `json:"process"`
	Colour        string    `json:"colour"`
	Size          string    `json:"size"`
	Quantity      int       `json:"quantity"`
	TotalMinutes  int       `json:"total_minutes"`
}

// GroupedProductionRow is one line of a coarser production grouping
type GroupedProductionRow struct {
	StyleCode   string `json:"style_code,omitempty"`
	MachineCode string `json:"machine_id,omitempty"`
	MachineName string `json:"machine_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// ProductionReportResponse holds one of the report shapes depending on the
// requested grouping
type ProductionReportResponse struct {
	Rows    []ProductionReportRow  `json:"rows,omitempty"`
	Grouped []GroupedProductionRow `json:"grouped,omitempty"`
	GroupBy string                 `json:"group_by,omitempty"`
}

// GetProductionReport aggregates produced quantities and consumed minutes
func (s *ReportService) GetProductionReport(req *ProductionReportRequest) (*ProductionReportResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.GroupBy != "" && req.GroupBy != "style" && req.GroupBy != "machine" {
		return nil, apperrors.NewValidationError("invalid group_by: " + req.GroupBy)
	}

	rows, err := s.allocations.ProductionReport(repository.ProductionFilter{
		StartDate:   &start,
		EndDate:     &end,
		MachineID:   req.MachineID,
		OrderID:     req.OrderID,
		StyleCode:   req.StyleCode,
		ProcessName: req.ProcessName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build production report: %w", err)
	}

	switch req.GroupBy {
	case "style":
		grouped := make(map[string]int)
		for _, r := range rows {
			grouped[r.StyleCode] += r.Quantity
		}
		out := make([]GroupedProductionRow, 0, len(grouped))
		for code, qty := range grouped {
			out = append(out, GroupedProductionRow{StyleCode: code, Quantity: qty})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].StyleCode < out[j].StyleCode })
		return &ProductionReportResponse{Grouped: out, GroupBy: "style"}, nil

	case "machine":
		type key struct{ code, name string }
		grouped := make(map[key]int)
		for _, r := range rows {
			grouped[key{r.MachineCode, r.MachineName}] += r.Quantity
		}
		out := make([]GroupedProductionRow, 0, len(grouped))
		for k, qty := range grouped {
			out = append(out, GroupedProductionRow{MachineCode: k.code, MachineName: k.name, Quantity: qty})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].MachineCode < out[j].MachineCode })
		return &ProductionReportResponse{Grouped: out, GroupBy: "machine"}, nil
	}

	out := make([]ProductionReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductionReportRow{
			OperationDate: models.FormatDate(r.OperationDate),
			MachineCode:   r.MachineCode,
			MachineName:   r.MachineName,
			OrderID:       r.OrderID,
			PurchaseOrder: r.PurchaseOrder,
			StyleCode:     r.StyleCode,
			ProcessName:   r.ProcessName,
			Colour:        r.Colour,
			Size:          r.Size,
			Quantity:      r.Quantity,
			TotalMinutes:  r.AllocatedMinutes,
		})
	}
	return &ProductionReportResponse{Rows: out}, nil
}

// MachineSummary identifies a machine in the availability grid
type MachineSummary struct {
	MachineCode string `json:"machine_id"`
	MachineName string `json:"machine_name"`
}

// DayAvailability is one cell of the availability grid
type DayAvailability struct {
	Capacity  int `json:"capacity"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// AvailabilityResponse is the per-machine per-date capacity grid
type AvailabilityResponse struct {
	Machines     []MachineSummary                      `json:"machines"`
	Dates        []string                              `json:"dates"`
	Availability map[string]map[string]DayAvailability `json:"availability"`
}

// GetMachineAvailability builds the capacity/used/available grid for every
// machine over [start, end]. Off days showing actual usage are re-resolved
// with the weekday check skipped so the grid reflects the real capacity that
// was consumed.
func (s *ReportService) GetMachineAvailability(startDate, endDate string) (*AvailabilityResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	machines, err := s.machines.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, models.FormatDate(d))
	}

	usedRows, err := s.allocations.UsedMinutes(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate used minutes: %w", err)
	}
	used := make(map[uuid.UUID]map[string]int)
	for _, row := range usedRows {
		byDate, ok := used[row.MachineID]
		if !ok {
			byDate = make(map[string]int)
			used[row.MachineID] = byDate
		}
		byDate[models.FormatDate(row.OperationDate)] = row.Minutes
	}

	resp := &AvailabilityResponse{
		Machines:     make([]MachineSummary, 0, len(machines)),
		Dates:        dates,
		Availability: make(map[string]map[string]DayAvailability, len(machines)),
	}

	for i := range machines {
		m := &machines[i]
		resp.Machines = append(resp.Machines, MachineSummary{
			MachineCode: m.MachineID,
			MachineName: m.MachineName,
		})
		grid := make(map[string]DayAvailability, len(dates))

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dateStr := models.FormatDate(d)
			capacity, err := s.calendars.CapacityMinutes(d, &m.ID, false)
			if err != nil {
				return nil, err
			}
			dayUsed := used[m.ID][dateStr]
			if capacity == 0 && dayUsed > 0 {
				capacity, err = s.calendars.CapacityMinutes(d, &m.ID, true)
				if err != nil {
					return nil, err
				}
			}
			available := capacity - dayUsed
			if available < 0 {
				available = 0
			}
			grid[dateStr] = DayAvailability{
				Capacity:  capacity,
				Used:      dayUsed,
				Available: available,
			}
		}
		resp.Availability[m.MachineID] = grid
	}
	return resp, nil
}

// TrackingSummaryResponse is one aggregated completed-quantity line
type TrackingSummaryResponse struct {
	OrderID   uuid.UUID `json:"order_id"`
	StyleCode string    `json:"style_code"`
	Colour    string    `json:"colour"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
}

// GetOrderTrackingSummary aggregates completed quantities across all orders
func (s *ReportService) GetOrderTrackingSummary() ([]TrackingSummaryResponse, error) {
	rows, err := s.tracking.Summary()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize tracking: %w", err)
	}
	out := make([]TrackingSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrackingSummaryResponse{
			OrderID:   r.OrderID,
			StyleCode: r.StyleCode,
			Colour:    r.Colour,
			Size:      r.Size,
			Quantity:  r.Quantity,
		})
	}
	return out, nil
}

// RecentOrderSummary is one row of the dashboard's recent orders list
type RecentOrderSummary struct {
	ID            uuid.UUID `json:"id"`
	ClientName    string    `json:"client_name"`
	PurchaseOrder string    `json:"purchase_order"`
	OrderDate     string    `json:"order_date"`
	Status        string    `json:"status"`
}

// DashboardStatsResponse holds the summary counts for the dashboard
type DashboardStatsResponse struct {
	ActiveOrders  int64                `json:"active_orders"`
	TotalStyles   int64                `json:"total_styles"`
	TotalMachines int64                `json:"total_machines"`
	TotalClients  int64                `json:"total_clients"`
	RecentOrders  []RecentOrderSummary `json:"recent_orders"`
}

// GetDashboardStats returns summary counts plus the most recent orders
func (s *ReportService) GetDashboardStats() (*DashboardStatsResponse, error) {
	activeOrders, err := s.orders.CountSubmitted()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	totalStyles, err := s.styles.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count styles: %w", err)
	}
	totalMachines, err := s.machines.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count machines: %w", err)
	}
	totalClients, err := s.clients.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	recent, err := s.orders.ListRecent(8)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}

	resp := &DashboardStatsResponse{
		ActiveOrders:  activeOrders,
		TotalStyles:   totalStyles,
		TotalMachines: totalMachines,
		TotalClients:  totalClients,
		RecentOrders:  make([]RecentOrderSummary, 0, len(recent)),
	}
	for _, o := range recent {
		resp.RecentOrders = append(resp.RecentOrders, RecentOrderSummary{
			ID:            o.ID,
			ClientName:    o.Client.ClientName,
			PurchaseOrder: o.PurchaseOrder,
			OrderDate:     models.FormatDate(o.OrderDate),
			Status:        string(o.Status),
		})
	}
	return resp, nil
}
