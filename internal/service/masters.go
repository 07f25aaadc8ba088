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

// MastersService provides reference data listings and master record creation
type MastersService struct {
	clients    repository.ClientRepositoryInterface
	frames     repository.MachineFrameRepositoryInterface
	machines   repository.MachineRepositoryInterface
	processes  repository.ProcessRepositoryInterface
	colours    repository.ColourRepositoryInterface
	sizes      repository.SizeRepositoryInterface
	sizeRanges repository.SizeRangeRepositoryInterface
	styles     repository.StyleRepositoryInterface
	shifts     repository.ShiftRepositoryInterface
	validator  *validator.Validate
}

// Ensure MastersService implements MastersServiceInterface
var _ MastersServiceInterface = (*MastersService)(nil)

// NewMastersService creates a new MastersService
func NewMastersService(
	clients repository.ClientRepositoryInterface,
	frames repository.MachineFrameRepositoryInterface,
	machines repository.MachineRepositoryInterface,
	processes repository.ProcessRepositoryInterface,
	colours repository.ColourRepositoryInterface,
	sizes repository.SizeRepositoryInterface,
	sizeRanges repository.SizeRangeRepositoryInterface,
	styles repository.StyleRepositoryInterface,
	shifts repository.ShiftRepositoryInterface,
	validator *validator.Validate,
) *MastersService {
	return &MastersService{
		clients:    clients,
		frames:     frames,
		machines:   machines,
		processes:  processes,
		colours:    colours,
		sizes:      sizes,
		sizeRanges: sizeRanges,
		styles:     styles,
		shifts:     shifts,
		validator:  validator,
	}
}

// MachineResponse represents a machine in API responses
type MachineResponse struct {
	ID          uuid.UUID `json:"id"`
	MachineCode string    `json:"machine_id"`
	MachineName string    `json:"machine_name"`
	FrameName   string    `json:"machine_frame"`
}

// CreateMachineRequest registers a knitting machine under a frame
type CreateMachineRequest struct {
	MachineCode string `json:"machine_id" validate:"required,min=1,max=40"`
	MachineName string `json:"machine_name" validate:"required,min=1,max=140"`
	FrameName   string `json:"machine_frame" validate:"required,min=1,max=140"`
}

// GetMachines retrieves all machines ordered by machine code
func (s *MastersService) GetMachines() ([]MachineResponse, error) {
	machines, err := s.machines.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	responses := make([]MachineResponse, len(machines))
	for i, m := range machines {
		responses[i] = MachineResponse{
			ID:          m.ID,
			MachineCode: m.MachineID,
			MachineName: m.MachineName,
			FrameName:   m.MachineFrame.FrameName,
		}
	}
	return responses, nil
}

// GetMachine retrieves one machine by UUID
func (s *MastersService) GetMachine(id uuid.UUID) (*MachineResponse, error) {
	m, err := s.machines.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}
	return &MachineResponse{
		ID:          m.ID,
		MachineCode: m.MachineID,
		MachineName: m.MachineName,
		FrameName:   m.MachineFrame.FrameName,
	}, nil
}

// CreateMachine registers a machine, creating its frame on first use
func (s *MastersService) CreateMachine(req *CreateMachineRequest, operator string) (*MachineResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.machines.GetByMachineID(req.MachineCode); err == nil {
		return nil, apperrors.ErrMachineExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check machine: %w", err)
	}

	frame, err := s.getOrCreateFrame(req.FrameName, operator)
	if err != nil {
		return nil, err
	}

	machine := &models.Machine{
		BaseModel:      models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		MachineID:      req.MachineCode,
		MachineName:    req.MachineName,
		MachineFrameID: frame.ID,
	}
	if err := s.machines.Create(machine); err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}
	return s.GetMachine(machine.ID)
}

func (s *MastersService) getOrCreateFrame(name, operator string) (*models.MachineFrame, error) {
	frame, err := s.frames.GetByName(name)
	if err == nil {
		return frame, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get machine frame: %w", err)
	}
	frame = &models.MachineFrame{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		FrameName: name,
	}
	if err := s.frames.Create(frame); err != nil {
		return nil, fmt.Errorf("failed to create machine frame: %w", err)
	}
	return frame, nil
}

// NamedResponse is a generic id/name pair for simple masters
type NamedResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CreateNamedRequest creates a simple named master record
type CreateNamedRequest struct {
	Name string `json:"name" validate:"required,min=1,max=140"`
}

// GetProcesses retrieves all manufacturing processes
func (s *MastersService) GetProcesses() ([]NamedResponse, error) {
	processes, err := s.processes.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	responses := make([]NamedResponse, len(processes))
	for i, p := range processes {
		responses[i] = NamedResponse{ID: p.ID, Name: p.ProcessName}
	}
	return responses, nil
}

// CreateProcess creates a manufacturing process
func (s *MastersService) CreateProcess(req *CreateNamedRequest, operator string) (*NamedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.processes.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrProcessExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check process: %w", err)
	}
	process := &models.Process{
		BaseModel:   models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		ProcessName: req.Name,
	}
	if err := s.processes.Create(process); err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return &NamedResponse{ID: process.ID, Name: process.ProcessName}, nil
}

// GetClients retrieves all clients
func (s *MastersService) GetClients() ([]NamedResponse, error) {
	clients, err := s.clients.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	responses := make([]NamedResponse, len(clients))
	for i, c := range clients {
		responses[i] = NamedResponse{ID: c.ID, Name: c.ClientName}
	}
	return responses, nil
}

// CreateClient creates a client
func (s *MastersService) CreateClient(req *CreateNamedRequest, operator string) (*NamedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.clients.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrClientExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	client := &models.Client{
		BaseModel:  models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		ClientName: req.Name,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &NamedResponse{ID: client.ID, Name: client.ClientName}, nil
}

// GetColours retrieves all colours
func (s *MastersService) GetColours() ([]NamedResponse, error) {
	colours, err := s.colours.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list colours: %w", err)
	}
	responses := make([]NamedResponse, len(colours))
	for i, c := range colours {
		responses[i] = NamedResponse{ID: c.ID, Name: c.ColourName}
	}
	return responses, nil
}

// CreateColour creates a colour
func (s *MastersService) CreateColour(req *CreateNamedRequest, operator string) (*NamedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.colours.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrColourExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check colour: %w", err)
	}
	colour := &models.Colour{
		BaseModel:  models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		ColourName: req.Name,
	}
	if err := s.colours.Create(colour); err != nil {
		return nil, fmt.Errorf("failed to create colour: %w", err)
	}
	return &NamedResponse{ID: colour.ID, Name: colour.ColourName}, nil
}

// GetSizes retrieves all sizes
func (s *MastersService) GetSizes() ([]NamedResponse, error) {
	sizes, err := s.sizes.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	responses := make([]NamedResponse, len(sizes))
	for i, v := range sizes {
		responses[i] = NamedResponse{ID: v.ID, Name: v.SizeValue}
	}
	return responses, nil
}

// CreateSize creates a size
func (s *MastersService) CreateSize(req *CreateNamedRequest, operator string) (*NamedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.sizes.GetByValue(req.Name); err == nil {
		return nil, apperrors.ErrSizeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check size: %w", err)
	}
	size := &models.Size{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		SizeValue: req.Name,
	}
	if err := s.sizes.Create(size); err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	return &NamedResponse{ID: size.ID, Name: size.SizeValue}, nil
}

// SizeRangeResponse represents a size range with its ordered sizes
type SizeRangeResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"range_name"`
	Sizes []string  `json:"sizes"`
}

// CreateSizeRangeRequest creates a named, ordered list of sizes
type CreateSizeRangeRequest struct {
	Name  string   `json:"range_name" validate:"required,min=1,max=140"`
	Sizes []string `json:"sizes" validate:"required,min=1,dive,required"`
}

// GetSizeRanges retrieves all size ranges
func (s *MastersService) GetSizeRanges() ([]SizeRangeResponse, error) {
	ranges, err := s.sizeRanges.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list size ranges: %w", err)
	}
	responses := make([]SizeRangeResponse, len(ranges))
	for i := range ranges {
		responses[i] = toSizeRangeResponse(&ranges[i])
	}
	return responses, nil
}

// CreateSizeRange creates a size range with its member sizes
func (s *MastersService) CreateSizeRange(req *CreateSizeRangeRequest, operator string) (*SizeRangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.sizeRanges.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrSizeRangeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check size range: %w", err)
	}
	sizeRange := &models.SizeRange{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		RangeName: req.Name,
	}
	for i, v := range req.Sizes {
		sizeRange.Sizes = append(sizeRange.Sizes, models.SizeRangeSize{SizeValue: v, Idx: i})
	}
	if err := s.sizeRanges.Create(sizeRange); err != nil {
		return nil, fmt.Errorf("failed to create size range: %w", err)
	}
	resp := toSizeRangeResponse(sizeRange)
	return &resp, nil
}

func toSizeRangeResponse(r *models.SizeRange) SizeRangeResponse {
	resp := SizeRangeResponse{ID: r.ID, Name: r.RangeName, Sizes: make([]string, 0, len(r.Sizes))}
	for _, row := range r.Sizes {
		resp.Sizes = append(resp.Sizes, row.SizeValue)
	}
	return resp
}

// StyleResponse represents a style master in API responses
type StyleResponse struct {
	ID        uuid.UUID          `json:"id"`
	StyleCode string             `json:"style_code"`
	StyleName string             `json:"style_name"`
	FrameName string             `json:"machine_frame"`
	GG        string             `json:"gg"`
	SizeRange string             `json:"size_range,omitempty"`
	Colours   []string           `json:"colours"`
	Sizes     []string           `json:"sizes"`
	Processes []StyleProcessData `json:"processes"`
}

// CreateStyleRequest creates a style master. Sizes come from the named size
// range; colours and process minutes are listed directly.
type CreateStyleRequest struct {
	StyleCode string             `json:"style_code" validate:"required,min=1,max=140"`
	StyleName string             `json:"style_name" validate:"required,min=1,max=140"`
	FrameName string             `json:"machine_frame" validate:"required"`
	GG        string             `json:"gg" validate:"max=40"`
	SizeRange string             `json:"size_range,omitempty"`
	Colours   []string           `json:"colours" validate:"dive,required"`
	Processes []StyleProcessData `json:"processes" validate:"dive"`
}

// GetStyles retrieves all styles
func (s *MastersService) GetStyles() ([]StyleResponse, error) {
	styles, err := s.styles.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list styles: %w", err)
	}
	responses := make([]StyleResponse, len(styles))
	for i := range styles {
		responses[i] = s.toStyleResponse(&styles[i])
	}
	return responses, nil
}

// GetStyleDetails retrieves the colours and sizes of one style for the order
// matrix editor
func (s *MastersService) GetStyleDetails(code string) (*StyleResponse, error) {
	style, err := s.styles.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStyleNotFound
		}
		return nil, fmt.Errorf("failed to get style: %w", err)
	}
	resp := s.toStyleResponse(style)
	return &resp, nil
}

// CreateStyle creates a style master, deriving its size rows from the linked
// size range
func (s *MastersService) CreateStyle(req *CreateStyleRequest, operator string) (*StyleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.styles.GetByCode(req.StyleCode); err == nil {
		return nil, apperrors.ErrStyleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check style: %w", err)
	}

	frame, err := s.getOrCreateFrame(req.FrameName, operator)
	if err != nil {
		return nil, err
	}

	style := &models.Style{
		BaseModel:      models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		StyleCode:      req.StyleCode,
		StyleName:      req.StyleName,
		MachineFrameID: frame.ID,
		GG:             req.GG,
	}

	if req.SizeRange != "" {
		sizeRange, err := s.sizeRanges.GetByName(req.SizeRange)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSizeRangeNotFound
			}
			return nil, fmt.Errorf("failed to get size range: %w", err)
		}
		style.SizeRangeID = &sizeRange.ID
		for _, row := range sizeRange.Sizes {
			style.Sizes = append(style.Sizes, models.StyleSize{SizeValue: row.SizeValue, Idx: row.Idx})
		}
	}

	for _, c := range req.Colours {
		style.Colours = append(style.Colours, models.StyleColour{ColourName: c})
	}
	for _, p := range req.Processes {
		if p.Minutes < 0 {
			return nil, apperrors.NewValidationError("process minutes cannot be negative: " + p.ProcessName)
		}
		style.Processes = append(style.Processes, models.StyleProcess{
			ProcessName: p.ProcessName,
			Minutes:     p.Minutes,
		})
	}

	if err := s.styles.Create(style); err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	return s.GetStyleDetails(style.StyleCode)
}

func (s *MastersService) toStyleResponse(style *models.Style) StyleResponse {
	resp := StyleResponse{
		ID:        style.ID,
		StyleCode: style.StyleCode,
		StyleName: style.StyleName,
		FrameName: style.MachineFrame.FrameName,
		GG:        style.GG,
		Colours:   make([]string, 0, len(style.Colours)),
		Sizes:     make([]string, 0, len(style.Sizes)),
		Processes: make([]StyleProcessData, 0, len(style.Processes)),
	}
	if style.SizeRange != nil {
		resp.SizeRange = style.SizeRange.RangeName
	}
	for _, c := range style.Colours {
		resp.Colours = append(resp.Colours, c.ColourName)
	}
	for _, v := range style.Sizes {
		resp.Sizes = append(resp.Sizes, v.SizeValue)
	}
	for _, p := range style.Processes {
		resp.Processes = append(resp.Processes, StyleProcessData{
			ProcessName: p.ProcessName,
			Minutes:     p.Minutes,
		})
	}
	return resp
}

// ShiftResponse represents a shift in API responses
type ShiftResponse struct {
	ID              uuid.UUID `json:"id"`
	ShiftName       string    `json:"shift_name"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

// CreateShiftRequest defines a working shift by its start and end times
type CreateShiftRequest struct {
	ShiftName string `json:"shift_name" validate:"required,min=1,max=140"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// GetAllShifts retrieves all shifts ordered by start time
func (s *MastersService) GetAllShifts() ([]ShiftResponse, error) {
	shifts, err := s.shifts.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	responses := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		responses[i] = ShiftResponse{
			ID:              sh.ID,
			ShiftName:       sh.ShiftName,
			StartTime:       sh.StartTime,
			EndTime:         sh.EndTime,
			DurationMinutes: sh.DurationMinutes,
		}
	}
	return responses, nil
}

// CreateShift creates a shift; duration is derived from the times, wrapping
// past midnight for overnight shifts
func (s *MastersService) CreateShift(req *CreateShiftRequest, operator string) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.shifts.GetByName(req.ShiftName); err == nil {
		return nil, apperrors.ErrShiftExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check shift: %w", err)
	}
	if _, err := models.ShiftDuration(req.StartTime, req.EndTime); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	shift := &models.Shift{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		ShiftName: req.ShiftName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.shifts.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return &ShiftResponse{
		ID:              shift.ID,
		ShiftName:       shift.ShiftName,
		StartTime:       shift.StartTime,
		EndTime:         shift.EndTime,
		DurationMinutes: shift.DurationMinutes,
	}, nil
}
