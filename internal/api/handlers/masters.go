package handlers

import (
	"net/http"

	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MastersHandler handles master data endpoints: machines, processes, shifts,
// clients, colours, sizes, size ranges and styles
type MastersHandler struct {
	masters service.MastersServiceInterface
}

// NewMastersHandler creates a new master data handler
func NewMastersHandler(masters service.MastersServiceInterface) *MastersHandler {
	return &MastersHandler{masters: masters}
}

func (h *MastersHandler) GetMachines(c *gin.Context) {
	machines, err := h.masters.GetMachines()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

func (h *MastersHandler) GetMachine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	machine, err := h.masters.GetMachine(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

func (h *MastersHandler) CreateMachine(c *gin.Context) {
	var req service.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine, err := h.masters.CreateMachine(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, machine)
}

func (h *MastersHandler) GetProcesses(c *gin.Context) {
	h.listNamed(c, h.masters.GetProcesses)
}

func (h *MastersHandler) CreateProcess(c *gin.Context) {
	h.createNamed(c, h.masters.CreateProcess)
}

func (h *MastersHandler) GetClients(c *gin.Context) {
	h.listNamed(c, h.masters.GetClients)
}

func (h *MastersHandler) CreateClient(c *gin.Context) {
	h.createNamed(c, h.masters.CreateClient)
}

func (h *MastersHandler) GetColours(c *gin.Context) {
	h.listNamed(c, h.masters.GetColours)
}

func (h *MastersHandler) CreateColour(c *gin.Context) {
	h.createNamed(c, h.masters.CreateColour)
}

func (h *MastersHandler) GetSizes(c *gin.Context) {
	h.listNamed(c, h.masters.GetSizes)
}

func (h *MastersHandler) CreateSize(c *gin.Context) {
	h.createNamed(c, h.masters.CreateSize)
}

func (h *MastersHandler) GetSizeRanges(c *gin.Context) {
	ranges, err := h.masters.GetSizeRanges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranges)
}

func (h *MastersHandler) CreateSizeRange(c *gin.Context) {
	var req service.CreateSizeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sizeRange, err := h.masters.CreateSizeRange(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sizeRange)
}

func (h *MastersHandler) GetStyles(c *gin.Context) {
	styles, err := h.masters.GetStyles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, styles)
}

func (h *MastersHandler) GetStyleDetails(c *gin.Context) {
	style, err := h.masters.GetStyleDetails(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

func (h *MastersHandler) CreateStyle(c *gin.Context) {
	var req service.CreateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	style, err := h.masters.CreateStyle(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, style)
}

func (h *MastersHandler) GetShifts(c *gin.Context) {
	shifts, err := h.masters.GetAllShifts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

func (h *MastersHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.masters.CreateShift(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

func (h *MastersHandler) listNamed(c *gin.Context, fn func() ([]service.NamedResponse, error)) {
	items, err := fn()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MastersHandler) createNamed(c *gin.Context, fn func(*service.CreateNamedRequest, string) (*service.NamedResponse, error)) {
	var req service.CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := fn(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
