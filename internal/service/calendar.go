package service

import (
	"errors"
	"fmt"
	"time"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarSource identifies which kind of calendar resolved for a date
type CalendarSource string

const (
	CalendarSourceSingle  CalendarSource = "single"
	CalendarSourceRange   CalendarSource = "range"
	CalendarSourceDefault CalendarSource = "default"
	CalendarSourceNone    CalendarSource = "none"
)

// CalendarService provides shift calendar resolution, capacity calculation
// and calendar mutations
type CalendarService struct {
	calendars repository.CalendarRepositoryInterface
	shifts    repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// Ensure CalendarService implements CalendarServiceInterface
var _ CalendarServiceInterface = (*CalendarService)(nil)

// NewCalendarService creates a new CalendarService
func NewCalendarService(calendars repository.CalendarRepositoryInterface, shifts repository.ShiftRepositoryInterface, validator *validator.Validate) *CalendarService {
	return &CalendarService{
		calendars: calendars,
		shifts:    shifts,
		validator: validator,
	}
}

// ShiftAssignmentResponse represents one assigned shift row in API responses
type ShiftAssignmentResponse struct {
	ShiftID         uuid.UUID `json:"shift_id"`
	ShiftName       string    `json:"shift_name"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ShiftAlterationResponse represents one alteration row in API responses
type ShiftAlterationResponse struct {
	ID             uuid.UUID  `json:"id"`
	CalendarID     uuid.UUID  `json:"calendar_id"`
	Date           string     `json:"date"`
	AlterationType string     `json:"alteration_type"`
	Minutes        int        `json:"minutes"`
	MachineID      *uuid.UUID `json:"machine_id,omitempty"`
	Reason         string     `json:"reason,omitempty"`
}

// CalendarResponse represents a shift allocation calendar in API responses
type CalendarResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	StartDate            string                    `json:"start_date"`
	EndDate              string                    `json:"end_date"`
	IsDefault            bool                      `json:"is_default"`
	MachineID            *uuid.UUID                `json:"machine_id,omitempty"`
	Sunday               bool                      `json:"sunday"`
	Monday               bool                      `json:"monday"`
	Tuesday              bool                      `json:"tuesday"`
	Wednesday            bool                      `json:"wednesday"`
	Thursday             bool                      `json:"thursday"`
	Friday               bool                      `json:"friday"`
	Saturday             bool                      `json:"saturday"`
	TotalDurationMinutes int                       `json:"total_duration_minutes"`
	Shifts               []ShiftAssignmentResponse `json:"shifts"`
	Alterations          []ShiftAlterationResponse `json:"alterations"`
}

// CalendarAlterationInput is one alteration row supplied when creating a
// shift allocation
type CalendarAlterationInput struct {
	Date           string                `json:"date" validate:"required"`
	AlterationType models.AlterationType `json:"alteration_type" validate:"required"`
	Minutes        int                   `json:"minutes" validate:"required,min=1"`
	MachineID      *uuid.UUID            `json:"machine_id,omitempty"`
	Reason         string                `json:"reason,omitempty" validate:"max=280"`
}

// CreateCalendarRequest creates a shift allocation calendar covering a date
// range, optionally scoped to one machine or marked as the system default
type CreateCalendarRequest struct {
	StartDate   string                    `json:"start_date" validate:"required"`
	EndDate     string                    `json:"end_date" validate:"required"`
	IsDefault   bool                      `json:"is_default"`
	MachineID   *uuid.UUID                `json:"machine_id,omitempty"`
	Sunday      bool                      `json:"sunday"`
	Monday      bool                      `json:"monday"`
	Tuesday     bool                      `json:"tuesday"`
	Wednesday   bool                      `json:"wednesday"`
	Thursday    bool                      `json:"thursday"`
	Friday      bool                      `json:"friday"`
	Saturday    bool                      `json:"saturday"`
	Shifts      []string                  `json:"shifts" validate:"required,min=1,dive,required"`
	Alterations []CalendarAlterationInput `json:"alterations,omitempty" validate:"dive"`
}

// UpdateDateShiftRequest sets the shifts running on one date, optionally for
// a single machine
type UpdateDateShiftRequest struct {
	Date      string     `json:"date" validate:"required"`
	Shifts    []string   `json:"shifts" validate:"required,min=1,dive,required"`
	MachineID *uuid.UUID `json:"machine_id,omitempty"`
}

// DateShiftResponse reports the capacity change caused by a date-shift update
type DateShiftResponse struct {
	CalendarID uuid.UUID `json:"calendar_id"`
	OldMinutes int       `json:"old_minutes"`
	NewMinutes int       `json:"new_minutes"`
}

// AddAlterationRequest appends an overtime/undertime adjustment to the
// calendar covering a date
type AddAlterationRequest struct {
	Date           string                `json:"date" validate:"required"`
	AlterationType models.AlterationType `json:"alteration_type" validate:"required"`
	Minutes        int                   `json:"minutes" validate:"required,min=1"`
	MachineID      *uuid.UUID            `json:"machine_id,omitempty"`
	Reason         string                `json:"reason,omitempty" validate:"max=280"`
}

// UpdateAlterationRequest edits an existing alteration row
type UpdateAlterationRequest struct {
	AlterationType models.AlterationType `json:"alteration_type" validate:"required"`
	Minutes        int                   `json:"minutes" validate:"required,min=1"`
	Reason         string                `json:"reason,omitempty" validate:"max=280"`
}

// AlterationResponse identifies the alteration and its parent calendar
type AlterationResponse struct {
	ID         uuid.UUID `json:"id"`
	CalendarID uuid.UUID `json:"calendar_id"`
}

// Resolve finds the calendar governing a date. Priority: machine single-day,
// general single-day, machine range, general range, default. Source is
// CalendarSourceNone when nothing applies.
func (s *CalendarService) Resolve(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, CalendarSource, error) {
	if machineID != nil {
		cal, err := s.calendars.FindSingleDay(date, machineID)
		if err == nil {
			return cal, CalendarSourceSingle, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CalendarSourceNone, fmt.Errorf("failed to resolve calendar: %w", err)
		}
	}

	cal, err := s.calendars.FindSingleDay(date, nil)
	if err == nil {
		return cal, CalendarSourceSingle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, CalendarSourceNone, fmt.Errorf("failed to resolve calendar: %w", err)
	}

	if machineID != nil {
		cal, err = s.calendars.FindRangeCovering(date, machineID)
		if err == nil {
			return cal, CalendarSourceRange, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CalendarSourceNone, fmt.Errorf("failed to resolve calendar: %w", err)
		}
	}

	cal, err = s.calendars.FindRangeCovering(date, nil)
	if err == nil {
		return cal, CalendarSourceRange, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, CalendarSourceNone, fmt.Errorf("failed to resolve calendar: %w", err)
	}

	cal, err = s.calendars.FindDefault()
	if err == nil {
		return cal, CalendarSourceDefault, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, CalendarSourceNone, fmt.Errorf("failed to resolve calendar: %w", err)
	}

	return nil, CalendarSourceNone, nil
}

// CapacityMinutes computes the effective capacity for a machine on a date.
// Off days yield zero unless skipWeekdayCheck is set. Alterations scoped to
// another machine are ignored; the result never goes below zero.
func (s *CalendarService) CapacityMinutes(date time.Time, machineID *uuid.UUID, skipWeekdayCheck bool) (int, error) {
	cal, source, err := s.Resolve(date, machineID)
	if err != nil {
		return 0, err
	}
	if source == CalendarSourceNone {
		return 0, nil
	}

	if !skipWeekdayCheck && !cal.WorksOn(date) {
		return 0, nil
	}

	base := cal.TotalDurationMinutes
	for _, alt := range cal.Alterations {
		if !alt.AppliesTo(date, machineID) {
			continue
		}
		switch alt.AlterationType {
		case models.AlterationTypeOvertime:
			base += alt.Minutes
		case models.AlterationTypeUndertime:
			base -= alt.Minutes
		}
	}
	if base < 0 {
		base = 0
	}
	return base, nil
}

// GetShiftAllocations retrieves the calendars intersecting [start, end] plus
// the default calendar, deduplicated
func (s *CalendarService) GetShiftAllocations(startDate, endDate string) ([]CalendarResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	cals, err := s.calendars.FindOverlapping(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift allocations: %w", err)
	}

	def, err := s.calendars.FindDefault()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get default calendar: %w", err)
	}
	if def != nil {
		seen := false
		for _, c := range cals {
			if c.ID == def.ID {
				seen = true
				break
			}
		}
		if !seen {
			cals = append(cals, *def)
		}
	}

	responses := make([]CalendarResponse, len(cals))
	for i := range cals {
		responses[i] = s.toCalendarResponse(&cals[i])
	}
	return responses, nil
}

// CreateShiftAllocation creates a calendar after checking the allocation
// invariants: a single system-wide default, no date-range overlap between
// calendars with the same machine scope, no time-of-day overlap between the
// assigned shifts, alterations inside the date range and only on general
// calendars.
func (s *CalendarService) CreateShiftAllocation(req *CreateCalendarRequest, operator string) (*CalendarResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if req.IsDefault {
		if _, err := s.calendars.FindDefault(); err == nil {
			return nil, apperrors.ErrDefaultCalendarExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check default calendar: %w", err)
		}
	}

	if req.MachineID != nil && len(req.Alterations) > 0 {
		return nil, apperrors.ErrMachineCalendarAlterations
	}

	if !req.IsDefault {
		overlaps, err := s.calendars.HasOverlappingScoped(start, end, req.MachineID, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check calendar overlap: %w", err)
		}
		if overlaps {
			return nil, apperrors.ErrOverlappingCalendars
		}
	}

	rows, _, err := s.buildAssignments(req.Shifts)
	if err != nil {
		return nil, err
	}

	cal := &models.ShiftAllocation{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		StartDate: start,
		EndDate:   end,
		IsDefault: req.IsDefault,
		MachineID: req.MachineID,
		Sunday:    req.Sunday,
		Monday:    req.Monday,
		Tuesday:   req.Tuesday,
		Wednesday: req.Wednesday,
		Thursday:  req.Thursday,
		Friday:    req.Friday,
		Saturday:  req.Saturday,
		Shifts:    rows,
	}
	cal.TotalDurationMinutes = cal.SumShiftMinutes()

	for _, in := range req.Alterations {
		if !in.AlterationType.IsValid() {
			return nil, apperrors.NewValidationError("invalid alteration type: " + string(in.AlterationType))
		}
		date, err := models.ParseDate(in.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid alteration date: " + in.Date)
		}
		if !cal.Covers(date) {
			return nil, apperrors.ErrAlterationOutsideRange
		}
		cal.Alterations = append(cal.Alterations, models.ShiftAlteration{
			BaseModel:      models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
			Date:           date,
			AlterationType: in.AlterationType,
			Minutes:        in.Minutes,
			MachineID:      in.MachineID,
			Reason:         in.Reason,
		})
	}

	if err := s.calendars.Create(cal); err != nil {
		return nil, fmt.Errorf("failed to create shift allocation: %w", err)
	}
	resp := s.toCalendarResponse(cal)
	return &resp, nil
}

// UpdateDateShift sets the shifts running on one date. A matching-scope
// single-day calendar is updated in place; otherwise a new single-day
// calendar is created, copying weekday flags (and, for general calendars,
// same-day alterations) from the best calendar currently governing the date.
func (s *CalendarService) UpdateDateShift(req *UpdateDateShiftRequest, operator string) (*DateShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(req.Shifts) == 0 {
		return nil, apperrors.ErrNoShiftsSelected
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date: " + req.Date)
	}

	rows, total, err := s.buildAssignments(req.Shifts)
	if err != nil {
		return nil, err
	}

	cal, _, err := s.Resolve(date, req.MachineID)
	if err != nil {
		return nil, err
	}

	oldMinutes := 0
	if cal != nil {
		oldMinutes = cal.TotalDurationMinutes
	}

	// Matching-scope single-day calendar gets updated in place
	if cal != nil && cal.IsSingleDay() && sameMachineScope(cal.MachineID, req.MachineID) {
		if err := s.calendars.ReplaceShifts(cal.ID, rows, total, operator); err != nil {
			return nil, fmt.Errorf("failed to update date shifts: %w", err)
		}
		return &DateShiftResponse{CalendarID: cal.ID, OldMinutes: oldMinutes, NewMinutes: total}, nil
	}

	// New single-day calendar. Machine calendars copy weekday flags from the
	// general resolution; general ones from the calendar just resolved.
	sourceCal := cal
	if req.MachineID != nil {
		sourceCal, _, err = s.Resolve(date, nil)
		if err != nil {
			return nil, err
		}
	}

	newCal := &models.ShiftAllocation{
		BaseModel:            models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		StartDate:            date,
		EndDate:              date,
		MachineID:            req.MachineID,
		TotalDurationMinutes: total,
		Shifts:               rows,
	}
	if sourceCal != nil {
		newCal.Sunday = sourceCal.Sunday
		newCal.Monday = sourceCal.Monday
		newCal.Tuesday = sourceCal.Tuesday
		newCal.Wednesday = sourceCal.Wednesday
		newCal.Thursday = sourceCal.Thursday
		newCal.Friday = sourceCal.Friday
		newCal.Saturday = sourceCal.Saturday
	}

	// Alterations live only on general calendars; carry over the ones for
	// this date so the clone preserves the day's adjustments
	if req.MachineID == nil && sourceCal != nil {
		for _, alt := range sourceCal.Alterations {
			if !models.SameDate(alt.Date, date) {
				continue
			}
			newCal.Alterations = append(newCal.Alterations, models.ShiftAlteration{
				Date:           alt.Date,
				AlterationType: alt.AlterationType,
				Minutes:        alt.Minutes,
				MachineID:      alt.MachineID,
				Reason:         alt.Reason,
			})
		}
	}

	if err := s.calendars.Create(newCal); err != nil {
		return nil, fmt.Errorf("failed to create date calendar: %w", err)
	}
	return &DateShiftResponse{CalendarID: newCal.ID, OldMinutes: oldMinutes, NewMinutes: total}, nil
}

// AddShiftAlteration appends an alteration to the general calendar covering
// the date, materializing a single-day copy of the default calendar when no
// other calendar covers it
func (s *CalendarService) AddShiftAlteration(req *AddAlterationRequest, operator string) (*AlterationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if !req.AlterationType.IsValid() {
		return nil, apperrors.NewValidationError("invalid alteration type: " + string(req.AlterationType))
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date: " + req.Date)
	}

	cal, source, err := s.Resolve(date, nil)
	if err != nil {
		return nil, err
	}

	if cal != nil && (source == CalendarSourceSingle || source == CalendarSourceRange) {
		alt := &models.ShiftAlteration{
			BaseModel:         models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
			ShiftAllocationID: cal.ID,
			Date:              date,
			AlterationType:    req.AlterationType,
			Minutes:           req.Minutes,
			MachineID:         req.MachineID,
			Reason:            req.Reason,
		}
		if err := s.calendars.AppendAlteration(alt); err != nil {
			return nil, fmt.Errorf("failed to add alteration: %w", err)
		}
		return &AlterationResponse{ID: alt.ID, CalendarID: cal.ID}, nil
	}

	// No covering calendar: clone the default into a single-day calendar
	def, err := s.calendars.FindDefault()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoDefaultCalendar
		}
		return nil, fmt.Errorf("failed to get default calendar: %w", err)
	}

	newCal := &models.ShiftAllocation{
		BaseModel:            models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		StartDate:            date,
		EndDate:              date,
		Sunday:               def.Sunday,
		Monday:               def.Monday,
		Tuesday:              def.Tuesday,
		Wednesday:            def.Wednesday,
		Thursday:             def.Thursday,
		Friday:               def.Friday,
		Saturday:             def.Saturday,
		TotalDurationMinutes: def.TotalDurationMinutes,
	}
	for _, row := range def.Shifts {
		newCal.Shifts = append(newCal.Shifts, models.ShiftAssignment{
			ShiftID:         row.ShiftID,
			ShiftName:       row.ShiftName,
			DurationMinutes: row.DurationMinutes,
			Idx:             row.Idx,
		})
	}
	newCal.Alterations = []models.ShiftAlteration{{
		Date:           date,
		AlterationType: req.AlterationType,
		Minutes:        req.Minutes,
		MachineID:      req.MachineID,
		Reason:         req.Reason,
	}}

	if err := s.calendars.Create(newCal); err != nil {
		return nil, fmt.Errorf("failed to create alteration calendar: %w", err)
	}
	return &AlterationResponse{ID: newCal.Alterations[0].ID, CalendarID: newCal.ID}, nil
}

// UpdateShiftAlteration edits an existing alteration row
func (s *CalendarService) UpdateShiftAlteration(alterationID uuid.UUID, req *UpdateAlterationRequest, operator string) (*AlterationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if !req.AlterationType.IsValid() {
		return nil, apperrors.NewValidationError("invalid alteration type: " + string(req.AlterationType))
	}

	alt, err := s.calendars.GetAlterationByID(alterationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlterationNotFound
		}
		return nil, fmt.Errorf("failed to get alteration: %w", err)
	}

	alt.AlterationType = req.AlterationType
	alt.Minutes = req.Minutes
	alt.Reason = req.Reason
	alt.UpdatedBy = operator

	if err := s.calendars.UpdateAlteration(alt); err != nil {
		return nil, fmt.Errorf("failed to update alteration: %w", err)
	}
	return &AlterationResponse{ID: alt.ID, CalendarID: alt.ShiftAllocationID}, nil
}

// DeleteShiftAlteration removes an alteration row, checking it belongs to
// the given parent calendar
func (s *CalendarService) DeleteShiftAlteration(alterationID, parentID uuid.UUID, operator string) error {
	alt, err := s.calendars.GetAlterationByID(alterationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAlterationNotFound
		}
		return fmt.Errorf("failed to get alteration: %w", err)
	}
	if alt.ShiftAllocationID != parentID {
		return apperrors.ErrAlterationNotFound
	}
	if err := s.calendars.DeleteAlteration(alterationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAlterationNotFound
		}
		return fmt.Errorf("failed to delete alteration: %w", err)
	}
	return nil
}

// toCalendarResponse converts a ShiftAllocation model to API response
func (s *CalendarService) toCalendarResponse(cal *models.ShiftAllocation) CalendarResponse {
	resp := CalendarResponse{
		ID:                   cal.ID,
		StartDate:            models.FormatDate(cal.StartDate),
		EndDate:              models.FormatDate(cal.EndDate),
		IsDefault:            cal.IsDefault,
		MachineID:            cal.MachineID,
		Sunday:               cal.Sunday,
		Monday:               cal.Monday,
		Tuesday:              cal.Tuesday,
		Wednesday:            cal.Wednesday,
		Thursday:             cal.Thursday,
		Friday:               cal.Friday,
		Saturday:             cal.Saturday,
		TotalDurationMinutes: cal.TotalDurationMinutes,
		Shifts:               make([]ShiftAssignmentResponse, 0, len(cal.Shifts)),
		Alterations:          make([]ShiftAlterationResponse, 0, len(cal.Alterations)),
	}
	for _, row := range cal.Shifts {
		resp.Shifts = append(resp.Shifts, ShiftAssignmentResponse{
			ShiftID:         row.ShiftID,
			ShiftName:       row.ShiftName,
			DurationMinutes: row.DurationMinutes,
		})
	}
	for _, alt := range cal.Alterations {
		resp.Alterations = append(resp.Alterations, ShiftAlterationResponse{
			ID:             alt.ID,
			CalendarID:     alt.ShiftAllocationID,
			Date:           models.FormatDate(alt.Date),
			AlterationType: string(alt.AlterationType),
			Minutes:        alt.Minutes,
			MachineID:      alt.MachineID,
			Reason:         alt.Reason,
		})
	}
	return resp
}

// buildAssignments loads the named shifts in order and snapshots them as
// assignment rows, rejecting unknown names and shifts whose time-of-day
// intervals overlap. Returns the rows and the total duration.
func (s *CalendarService) buildAssignments(names []string) ([]models.ShiftAssignment, int, error) {
	shifts, err := s.shifts.GetByNames(names)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load shifts: %w", err)
	}
	byName := make(map[string]*models.Shift, len(shifts))
	for i := range shifts {
		byName[shifts[i].ShiftName] = &shifts[i]
	}

	rows := make([]models.ShiftAssignment, 0, len(names))
	spans := make([][2]int, 0, len(names))
	total := 0
	for i, name := range names {
		shift, ok := byName[name]
		if !ok {
			return nil, 0, apperrors.NewValidationError("shift not found: " + name)
		}
		startMinute, err := models.ShiftMinuteOfDay(shift.StartTime)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid start time for shift %q: %w", name, err)
		}
		span := [2]int{startMinute, startMinute + shift.DurationMinutes}
		for _, prev := range spans {
			if minuteSpansOverlap(prev, span) {
				return nil, 0, apperrors.ErrOverlappingShifts
			}
		}
		spans = append(spans, span)
		rows = append(rows, models.ShiftAssignment{
			ShiftID:         shift.ID,
			ShiftName:       shift.ShiftName,
			DurationMinutes: shift.DurationMinutes,
			Idx:             i,
		})
		total += shift.DurationMinutes
	}
	return rows, total, nil
}

// minuteSpansOverlap reports whether two half-open minute intervals intersect
// on the 24h clock. Spans may extend past midnight, so each is also compared
// against the other shifted by a day in both directions.
func minuteSpansOverlap(a, b [2]int) bool {
	for _, shift := range []int{-minutesPerDay, 0, minutesPerDay} {
		if a[0] < b[1]+shift && b[0]+shift < a[1] {
			return true
		}
	}
	return false
}

const minutesPerDay = 24 * 60

// sameMachineScope reports whether two optional machine scopes are identical
func sameMachineScope(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// parseDateRange parses and orders an inclusive date range
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := models.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid start_date: " + startDate)
	}
	end, err := models.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid end_date: " + endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return start, end, nil
}
