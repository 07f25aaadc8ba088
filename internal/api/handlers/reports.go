package handlers

import (
	"net/http"

	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles production and availability reporting endpoints
type ReportHandler struct {
	reports service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetProductionReport aggregates produced quantities over a date range
func (h *ReportHandler) GetProductionReport(c *gin.Context) {
	req := service.ProductionReportRequest{
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		StyleCode:   c.Query("style"),
		ProcessName: c.Query("process"),
		GroupBy:     c.Query("group_by"),
	}
	if req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}
	if raw := c.Query("machine"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
			return
		}
		req.MachineID = &id
	}
	if raw := c.Query("order"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		req.OrderID = &id
	}

	resp, err := h.reports.GetProductionReport(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMachineAvailability returns the capacity/used/available grid per machine
// per day
func (h *ReportHandler) GetMachineAvailability(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}

	resp, err := h.reports.GetMachineAvailability(startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrderTracking summarises planned vs produced quantities per open order
func (h *ReportHandler) GetOrderTracking(c *gin.Context) {
	rows, err := h.reports.GetOrderTrackingSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetDashboardStats returns headline counts for the landing page
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	resp, err := h.reports.GetDashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
