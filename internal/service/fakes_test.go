package service

import (
	"fmt"
	"sort"
	"time"

	"albion-backend/internal/database/models"
	"albion-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the scoping and not-found semantics
// of the real GORM repositories so service behavior can be tested without a
// database.

type fakeCalendarRepo struct {
	calendars []*models.ShiftAllocation
}

func (f *fakeCalendarRepo) add(cal *models.ShiftAllocation) *models.ShiftAllocation {
	if cal.ID == uuid.Nil {
		cal.ID = uuid.New()
	}
	for i := range cal.Alterations {
		if cal.Alterations[i].ID == uuid.Nil {
			cal.Alterations[i].ID = uuid.New()
		}
		cal.Alterations[i].ShiftAllocationID = cal.ID
	}
	f.calendars = append(f.calendars, cal)
	return cal
}

func (f *fakeCalendarRepo) Create(cal *models.ShiftAllocation) error {
	f.add(cal)
	return nil
}

func (f *fakeCalendarRepo) GetByID(id uuid.UUID) (*models.ShiftAllocation, error) {
	for _, cal := range f.calendars {
		if cal.ID == id {
			return cal, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func scopeMatches(calMachine, machineID *uuid.UUID) bool {
	if machineID == nil {
		return calMachine == nil
	}
	return calMachine != nil && *calMachine == *machineID
}

func (f *fakeCalendarRepo) FindSingleDay(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error) {
	for _, cal := range f.calendars {
		if cal.IsDefault || !models.SameDate(cal.StartDate, cal.EndDate) {
			continue
		}
		if models.SameDate(cal.StartDate, date) && scopeMatches(cal.MachineID, machineID) {
			return cal, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCalendarRepo) FindRangeCovering(date time.Time, machineID *uuid.UUID) (*models.ShiftAllocation, error) {
	for _, cal := range f.calendars {
		if cal.IsDefault || models.SameDate(cal.StartDate, cal.EndDate) {
			continue
		}
		if !cal.StartDate.After(date) && !cal.EndDate.Before(date) && scopeMatches(cal.MachineID, machineID) {
			return cal, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCalendarRepo) FindDefault() (*models.ShiftAllocation, error) {
	for _, cal := range f.calendars {
		if cal.IsDefault {
			return cal, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCalendarRepo) FindOverlapping(start, end time.Time) ([]models.ShiftAllocation, error) {
	var out []models.ShiftAllocation
	for _, cal := range f.calendars {
		if cal.IsDefault {
			continue
		}
		if !cal.StartDate.After(end) && !cal.EndDate.Before(start) {
			out = append(out, *cal)
		}
	}
	return out, nil
}

func (f *fakeCalendarRepo) HasOverlappingScoped(start, end time.Time, machineID *uuid.UUID, excludeID uuid.UUID) (bool, error) {
	for _, cal := range f.calendars {
		if cal.IsDefault || cal.ID == excludeID {
			continue
		}
		if !scopeMatches(cal.MachineID, machineID) {
			continue
		}
		if !cal.StartDate.After(end) && !cal.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCalendarRepo) ReplaceShifts(calID uuid.UUID, shifts []models.ShiftAssignment, totalMinutes int, updatedBy string) error {
	cal, err := f.GetByID(calID)
	if err != nil {
		return err
	}
	cal.Shifts = shifts
	cal.TotalDurationMinutes = totalMinutes
	cal.UpdatedBy = updatedBy
	return nil
}

func (f *fakeCalendarRepo) AppendAlteration(alt *models.ShiftAlteration) error {
	cal, err := f.GetByID(alt.ShiftAllocationID)
	if err != nil {
		return err
	}
	if alt.ID == uuid.Nil {
		alt.ID = uuid.New()
	}
	cal.Alterations = append(cal.Alterations, *alt)
	return nil
}

func (f *fakeCalendarRepo) UpdateAlteration(alt *models.ShiftAlteration) error {
	for _, cal := range f.calendars {
		for i := range cal.Alterations {
			if cal.Alterations[i].ID == alt.ID {
				cal.Alterations[i] = *alt
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCalendarRepo) DeleteAlteration(id uuid.UUID) error {
	for _, cal := range f.calendars {
		for i := range cal.Alterations {
			if cal.Alterations[i].ID == id {
				cal.Alterations = append(cal.Alterations[:i], cal.Alterations[i+1:]...)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCalendarRepo) GetAlterationByID(id uuid.UUID) (*models.ShiftAlteration, error) {
	for _, cal := range f.calendars {
		for i := range cal.Alterations {
			if cal.Alterations[i].ID == id {
				alt := cal.Alterations[i]
				return &alt, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.CalendarRepositoryInterface = (*fakeCalendarRepo)(nil)

type fakeShiftRepo struct {
	shifts []*models.Shift
	cursor int
}

// add appends a shift with sequential non-overlapping times, starting at
// 06:00, so calendars built from multiple fakes pass the overlap check
func (f *fakeShiftRepo) add(name string, minutes int) *models.Shift {
	if f.cursor == 0 {
		f.cursor = 6 * 60
	}
	start := f.cursor % (24 * 60)
	end := (f.cursor + minutes) % (24 * 60)
	f.cursor += minutes
	shift := &models.Shift{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		ShiftName:       name,
		StartTime:       fmt.Sprintf("%02d:%02d", start/60, start%60),
		EndTime:         fmt.Sprintf("%02d:%02d", end/60, end%60),
		DurationMinutes: minutes,
	}
	f.shifts = append(f.shifts, shift)
	return shift
}

func (f *fakeShiftRepo) Create(shift *models.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	// mirrors the BeforeSave hook
	if shift.StartTime != "" && shift.EndTime != "" {
		minutes, err := models.ShiftDuration(shift.StartTime, shift.EndTime)
		if err != nil {
			return err
		}
		shift.DurationMinutes = minutes
	}
	f.shifts = append(f.shifts, shift)
	return nil
}

func (f *fakeShiftRepo) GetByID(id uuid.UUID) (*models.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepo) GetByName(name string) (*models.Shift, error) {
	for _, s := range f.shifts {
		if s.ShiftName == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepo) GetByNames(names []string) ([]models.Shift, error) {
	var out []models.Shift
	for _, name := range names {
		for _, s := range f.shifts {
			if s.ShiftName == name {
				out = append(out, *s)
			}
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) GetAll() ([]models.Shift, error) {
	out := make([]models.Shift, 0, len(f.shifts))
	for _, s := range f.shifts {
		out = append(out, *s)
	}
	return out, nil
}

var _ repository.ShiftRepositoryInterface = (*fakeShiftRepo)(nil)

type fakeMachineRepo struct {
	machines []*models.Machine
}

func (f *fakeMachineRepo) add(code string) *models.Machine {
	machine := &models.Machine{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		MachineID:   code,
		MachineName: code,
	}
	f.machines = append(f.machines, machine)
	return machine
}

func (f *fakeMachineRepo) Create(machine *models.Machine) error {
	if machine.ID == uuid.Nil {
		machine.ID = uuid.New()
	}
	f.machines = append(f.machines, machine)
	return nil
}

func (f *fakeMachineRepo) GetByID(id uuid.UUID) (*models.Machine, error) {
	for _, m := range f.machines {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMachineRepo) GetByMachineID(machineID string) (*models.Machine, error) {
	for _, m := range f.machines {
		if m.MachineID == machineID {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMachineRepo) GetAll() ([]models.Machine, error) {
	out := make([]models.Machine, 0, len(f.machines))
	for _, m := range f.machines {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMachineRepo) Count() (int64, error) {
	return int64(len(f.machines)), nil
}

var _ repository.MachineRepositoryInterface = (*fakeMachineRepo)(nil)

type fakeClientRepo struct {
	clients []*models.Client
}

func (f *fakeClientRepo) add(name string) *models.Client {
	client := &models.Client{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ClientName: name,
	}
	f.clients = append(f.clients, client)
	return client
}

func (f *fakeClientRepo) Create(client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	f.clients = append(f.clients, client)
	return nil
}

func (f *fakeClientRepo) GetByID(id uuid.UUID) (*models.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClientRepo) GetByName(name string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.ClientName == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClientRepo) GetAll() ([]models.Client, error) {
	out := make([]models.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClientRepo) Count() (int64, error) {
	return int64(len(f.clients)), nil
}

var _ repository.ClientRepositoryInterface = (*fakeClientRepo)(nil)

type fakeStyleRepo struct {
	styles []*models.Style
}

func (f *fakeStyleRepo) add(style *models.Style) *models.Style {
	if style.ID == uuid.Nil {
		style.ID = uuid.New()
	}
	f.styles = append(f.styles, style)
	return style
}

func (f *fakeStyleRepo) Create(style *models.Style) error {
	f.add(style)
	return nil
}

func (f *fakeStyleRepo) Update(style *models.Style) error {
	for i, s := range f.styles {
		if s.ID == style.ID {
			f.styles[i] = style
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStyleRepo) GetByID(id uuid.UUID) (*models.Style, error) {
	for _, s := range f.styles {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStyleRepo) GetByCode(code string) (*models.Style, error) {
	for _, s := range f.styles {
		if s.StyleCode == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStyleRepo) GetAll() ([]models.Style, error) {
	out := make([]models.Style, 0, len(f.styles))
	for _, s := range f.styles {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStyleRepo) Count() (int64, error) {
	return int64(len(f.styles)), nil
}

var _ repository.StyleRepositoryInterface = (*fakeStyleRepo)(nil)

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) add(order *models.Order) *models.Order {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders = append(f.orders, order)
	return order
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	f.add(order)
	return nil
}

func (f *fakeOrderRepo) Update(order *models.Order) error {
	for i, o := range f.orders {
		if o.ID == order.ID {
			f.orders[i] = order
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) UpdateStatus(id uuid.UUID, status models.OrderStatus, updatedBy string) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedBy = updatedBy
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) ReplaceProcesses(orderID uuid.UUID, processes []models.OrderProcess) error {
	for _, o := range f.orders {
		if o.ID == orderID {
			o.Processes = processes
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetByID(id uuid.UUID) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetWithDetails(id uuid.UUID) (*models.Order, error) {
	return f.GetByID(id)
}

func (f *fakeOrderRepo) ListSubmitted() ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == models.OrderStatusOpen || o.Status == models.OrderStatusClosed {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListRecent(limit int) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderRepo) CountSubmitted() (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.Status == models.OrderStatusOpen {
			n++
		}
	}
	return n, nil
}

var _ repository.OrderRepositoryInterface = (*fakeOrderRepo)(nil)

type fakeAllocationRepo struct {
	ops            []*models.MachineOperation
	usedRows       []repository.UsedMinutesRow
	prodRows       []repository.ProductionRow
	orphansDeleted int64
	lastKeepIDs    []uuid.UUID
	lastOrphanSpan [2]time.Time
	orphansCalled  bool
}

func (f *fakeAllocationRepo) add(op *models.MachineOperation) *models.MachineOperation {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	f.ops = append(f.ops, op)
	return op
}

func (f *fakeAllocationRepo) Create(op *models.MachineOperation) error {
	f.add(op)
	return nil
}

func (f *fakeAllocationRepo) Update(op *models.MachineOperation) error {
	for i, o := range f.ops {
		if o.ID == op.ID {
			f.ops[i] = op
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAllocationRepo) Delete(id uuid.UUID) error {
	for i, o := range f.ops {
		if o.ID == id {
			f.ops = append(f.ops[:i], f.ops[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAllocationRepo) GetByID(id uuid.UUID) (*models.MachineOperation, error) {
	for _, o := range f.ops {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAllocationRepo) Exists(id uuid.UUID) (bool, error) {
	for _, o := range f.ops {
		if o.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAllocationRepo) FindByNaturalKey(key repository.AllocationKey) (*models.MachineOperation, error) {
	for _, o := range f.ops {
		if o.MachineID == key.MachineID && o.OrderID == key.OrderID &&
			o.StyleCode == key.StyleCode && o.ProcessName == key.ProcessName &&
			o.Colour == key.Colour && o.Size == key.Size &&
			models.SameDate(o.OperationDate, key.Date) {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAllocationRepo) ListByOrderProcess(orderID uuid.UUID, processName string) ([]models.MachineOperation, error) {
	var out []models.MachineOperation
	for _, o := range f.ops {
		if o.OrderID == orderID && (processName == "" || o.ProcessName == processName) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeAllocationRepo) ListByOrder(orderID uuid.UUID, limit int) ([]models.MachineOperation, error) {
	var out []models.MachineOperation
	for _, o := range f.ops {
		if o.OrderID == orderID {
			out = append(out, *o)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAllocationRepo) ListByDateRange(start, end time.Time) ([]models.MachineOperation, error) {
	var out []models.MachineOperation
	for _, o := range f.ops {
		if !o.OperationDate.Before(start) && !o.OperationDate.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeAllocationRepo) UsedMinutes(start, end time.Time) ([]repository.UsedMinutesRow, error) {
	return f.usedRows, nil
}

func (f *fakeAllocationRepo) ProductionReport(filter repository.ProductionFilter) ([]repository.ProductionRow, error) {
	return f.prodRows, nil
}

func (f *fakeAllocationRepo) DeleteOrphans(start, end time.Time, keepIDs []uuid.UUID) (int64, error) {
	f.orphansCalled = true
	f.lastOrphanSpan = [2]time.Time{start, end}
	f.lastKeepIDs = keepIDs
	return f.orphansDeleted, nil
}

var _ repository.AllocationRepositoryInterface = (*fakeAllocationRepo)(nil)

type fakeTrackingRepo struct {
	rows    []repository.TrackingSummaryRow
	created []*models.OrderTracking
}

func (f *fakeTrackingRepo) Create(tracking *models.OrderTracking) error {
	if tracking.ID == uuid.Nil {
		tracking.ID = uuid.New()
	}
	f.created = append(f.created, tracking)
	return nil
}

func (f *fakeTrackingRepo) SummaryByOrder(orderID uuid.UUID) ([]repository.TrackingSummaryRow, error) {
	var out []repository.TrackingSummaryRow
	for _, r := range f.rows {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) Summary() ([]repository.TrackingSummaryRow, error) {
	return f.rows, nil
}

var _ repository.TrackingRepositoryInterface = (*fakeTrackingRepo)(nil)

type fakeFrameRepo struct {
	frames []*models.MachineFrame
}

func (f *fakeFrameRepo) add(name string) *models.MachineFrame {
	frame := &models.MachineFrame{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FrameName: name,
	}
	f.frames = append(f.frames, frame)
	return frame
}

func (f *fakeFrameRepo) Create(frame *models.MachineFrame) error {
	if frame.ID == uuid.Nil {
		frame.ID = uuid.New()
	}
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeFrameRepo) GetByID(id uuid.UUID) (*models.MachineFrame, error) {
	for _, fr := range f.frames {
		if fr.ID == id {
			return fr, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFrameRepo) GetByName(name string) (*models.MachineFrame, error) {
	for _, fr := range f.frames {
		if fr.FrameName == name {
			return fr, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFrameRepo) GetAll() ([]models.MachineFrame, error) {
	out := make([]models.MachineFrame, 0, len(f.frames))
	for _, fr := range f.frames {
		out = append(out, *fr)
	}
	return out, nil
}

var _ repository.MachineFrameRepositoryInterface = (*fakeFrameRepo)(nil)

type fakeProcessRepo struct {
	processes []*models.Process
}

func (f *fakeProcessRepo) add(name string) *models.Process {
	process := &models.Process{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ProcessName: name,
	}
	f.processes = append(f.processes, process)
	return process
}

func (f *fakeProcessRepo) Create(process *models.Process) error {
	if process.ID == uuid.Nil {
		process.ID = uuid.New()
	}
	f.processes = append(f.processes, process)
	return nil
}

func (f *fakeProcessRepo) GetByID(id uuid.UUID) (*models.Process, error) {
	for _, p := range f.processes {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProcessRepo) GetByName(name string) (*models.Process, error) {
	for _, p := range f.processes {
		if p.ProcessName == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProcessRepo) GetAll() ([]models.Process, error) {
	out := make([]models.Process, 0, len(f.processes))
	for _, p := range f.processes {
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.ProcessRepositoryInterface = (*fakeProcessRepo)(nil)

type fakeColourRepo struct {
	colours []*models.Colour
}

func (f *fakeColourRepo) add(name string) *models.Colour {
	colour := &models.Colour{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ColourName: name,
	}
	f.colours = append(f.colours, colour)
	return colour
}

func (f *fakeColourRepo) Create(colour *models.Colour) error {
	if colour.ID == uuid.Nil {
		colour.ID = uuid.New()
	}
	f.colours = append(f.colours, colour)
	return nil
}

func (f *fakeColourRepo) GetByName(name string) (*models.Colour, error) {
	for _, c := range f.colours {
		if c.ColourName == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeColourRepo) GetAll() ([]models.Colour, error) {
	out := make([]models.Colour, 0, len(f.colours))
	for _, c := range f.colours {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ColourRepositoryInterface = (*fakeColourRepo)(nil)

type fakeSizeRepo struct {
	sizes []*models.Size
}

func (f *fakeSizeRepo) add(value string) *models.Size {
	size := &models.Size{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SizeValue: value,
	}
	f.sizes = append(f.sizes, size)
	return size
}

func (f *fakeSizeRepo) Create(size *models.Size) error {
	if size.ID == uuid.Nil {
		size.ID = uuid.New()
	}
	f.sizes = append(f.sizes, size)
	return nil
}

func (f *fakeSizeRepo) GetByValue(value string) (*models.Size, error) {
	for _, s := range f.sizes {
		if s.SizeValue == value {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSizeRepo) GetAll() ([]models.Size, error) {
	out := make([]models.Size, 0, len(f.sizes))
	for _, s := range f.sizes {
		out = append(out, *s)
	}
	return out, nil
}

var _ repository.SizeRepositoryInterface = (*fakeSizeRepo)(nil)

type fakeSizeRangeRepo struct {
	ranges []*models.SizeRange
}

func (f *fakeSizeRangeRepo) add(name string, sizes ...string) *models.SizeRange {
	sizeRange := &models.SizeRange{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RangeName: name,
	}
	for i, v := range sizes {
		sizeRange.Sizes = append(sizeRange.Sizes, models.SizeRangeSize{SizeValue: v, Idx: i})
	}
	f.ranges = append(f.ranges, sizeRange)
	return sizeRange
}

func (f *fakeSizeRangeRepo) Create(sizeRange *models.SizeRange) error {
	if sizeRange.ID == uuid.Nil {
		sizeRange.ID = uuid.New()
	}
	f.ranges = append(f.ranges, sizeRange)
	return nil
}

func (f *fakeSizeRangeRepo) Update(sizeRange *models.SizeRange) error {
	for i, r := range f.ranges {
		if r.ID == sizeRange.ID {
			f.ranges[i] = sizeRange
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeSizeRangeRepo) GetByID(id uuid.UUID) (*models.SizeRange, error) {
	for _, r := range f.ranges {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSizeRangeRepo) GetByName(name string) (*models.SizeRange, error) {
	for _, r := range f.ranges {
		if r.RangeName == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSizeRangeRepo) GetAll() ([]models.SizeRange, error) {
	out := make([]models.SizeRange, 0, len(f.ranges))
	for _, r := range f.ranges {
		out = append(out, *r)
	}
	return out, nil
}

var _ repository.SizeRangeRepositoryInterface = (*fakeSizeRangeRepo)(nil)
