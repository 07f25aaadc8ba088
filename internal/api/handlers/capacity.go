package handlers

import (
	"net/http"

	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CapacityHandler handles shift calendar and machine allocation endpoints
type CapacityHandler struct {
	calendars service.CalendarServiceInterface
	planning  service.PlanningServiceInterface
}

// NewCapacityHandler creates a new capacity planning handler
func NewCapacityHandler(calendars service.CalendarServiceInterface, planning service.PlanningServiceInterface) *CapacityHandler {
	return &CapacityHandler{calendars: calendars, planning: planning}
}

// GetShiftAllocations lists the calendars intersecting a date range plus the
// default calendar
func (h *CapacityHandler) GetShiftAllocations(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}

	calendars, err := h.calendars.GetShiftAllocations(startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calendars)
}

// CreateShiftAllocation creates a shift allocation calendar
func (h *CapacityHandler) CreateShiftAllocation(c *gin.Context) {
	var req service.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.calendars.CreateShiftAllocation(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateDateShift sets the shifts running on a single date
func (h *CapacityHandler) UpdateDateShift(c *gin.Context) {
	var req service.UpdateDateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.calendars.UpdateDateShift(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddAlteration appends an overtime/undertime adjustment for a date
func (h *CapacityHandler) AddAlteration(c *gin.Context) {
	var req service.AddAlterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.calendars.AddShiftAlteration(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateAlteration edits an existing alteration
func (h *CapacityHandler) UpdateAlteration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alteration ID"})
		return
	}

	var req service.UpdateAlterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.calendars.UpdateShiftAlteration(id, &req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAlteration removes an alteration from its parent calendar
func (h *CapacityHandler) DeleteAlteration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alteration ID"})
		return
	}
	parentID, err := uuid.Parse(c.Query("parent_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parent_id is required"})
		return
	}

	if err := h.calendars.DeleteShiftAlteration(id, parentID, operatorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetAllAllocations lists every machine operation dated within a range
func (h *CapacityHandler) GetAllAllocations(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}

	rows, err := h.planning.GetAllAllocations(startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetExistingAllocations lists the operations planned for one order process
func (h *CapacityHandler) GetExistingAllocations(c *gin.Context) {
	orderID, err := uuid.Parse(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order is required"})
		return
	}

	rows, err := h.planning.GetExistingAllocations(orderID, c.Query("process"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// SaveAllocations persists a planned batch of machine operations
func (h *CapacityHandler) SaveAllocations(c *gin.Context) {
	var req service.SaveAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.planning.SaveAllocations(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAllocation removes one planned machine operation
func (h *CapacityHandler) DeleteAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	deleted, err := h.planning.DeleteAllocation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
