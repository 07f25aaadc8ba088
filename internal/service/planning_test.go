package service

import (
	"testing"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanningFixture() (*PlanningService, *fakeAllocationRepo, *fakeMachineRepo, *fakeOrderRepo, *fakeStyleRepo) {
	allocations := &fakeAllocationRepo{}
	machines := &fakeMachineRepo{}
	orders := &fakeOrderRepo{}
	styles := &fakeStyleRepo{}
	svc := NewPlanningService(allocations, machines, orders, styles, validator.New())
	return svc, allocations, machines, orders, styles
}

func allocationItem(machineCode string, orderID uuid.UUID, date string) AllocationItem {
	return AllocationItem{
		MachineCode:      machineCode,
		OrderID:          orderID,
		StyleCode:        "ST-1001",
		ProcessName:      "Knitting",
		Colour:           "Navy",
		Size:             "M",
		Quantity:         10,
		OperationDate:    date,
		ShiftName:        "Morning",
		AllocatedMinutes: 120,
	}
}

func TestSaveAllocationsCreatesAndUpserts(t *testing.T) {
	svc, allocations, machines, _, _ := newPlanningFixture()

	machine := machines.add("M-01-3GG")
	orderID := uuid.New()

	resp, err := svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{allocationItem("M-01-3GG", orderID, "2026-03-04")},
	}, "planner")
	require.NoError(t, err)
	require.Len(t, resp.Saved, 1)
	require.Len(t, allocations.ops, 1)
	assert.Equal(t, machine.ID, allocations.ops[0].MachineID)
	assert.Equal(t, 120, allocations.ops[0].AllocatedMinutes)
	assert.Equal(t, "planner", allocations.ops[0].Operator)

	// Re-saving the same natural key updates in place instead of duplicating
	item := allocationItem("M-01-3GG", orderID, "2026-03-04")
	item.AllocatedMinutes = 240
	resp, err = svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{item},
	}, "planner")
	require.NoError(t, err)
	require.Len(t, resp.Saved, 1)
	require.Len(t, allocations.ops, 1)
	assert.Equal(t, 240, allocations.ops[0].AllocatedMinutes)
}

func TestSaveAllocationsByRecordID(t *testing.T) {
	svc, allocations, machines, _, _ := newPlanningFixture()

	machines.add("M-01-3GG")
	machines.add("M-02-3GG")
	orderID := uuid.New()

	_, err := svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{allocationItem("M-01-3GG", orderID, "2026-03-04")},
	}, "planner")
	require.NoError(t, err)
	opID := allocations.ops[0].ID

	// Moving an existing record to another machine via its ID
	item := allocationItem("M-02-3GG", orderID, "2026-03-04")
	item.ID = &opID
	_, err = svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{item},
	}, "planner")
	require.NoError(t, err)
	require.Len(t, allocations.ops, 1)
	assert.Equal(t, opID, allocations.ops[0].ID)

	machine, err := machines.GetByMachineID("M-02-3GG")
	require.NoError(t, err)
	assert.Equal(t, machine.ID, allocations.ops[0].MachineID)
}

func TestSaveAllocationsBatchErrors(t *testing.T) {
	svc, allocations, machines, _, _ := newPlanningFixture()

	machines.add("M-01-3GG")
	orderID := uuid.New()

	_, err := svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{
			allocationItem("M-01-3GG", orderID, "2026-03-04"),
			allocationItem("M-99-3GG", orderID, "2026-03-04"),
			allocationItem("M-01-3GG", orderID, "not-a-date"),
		},
		StartDate: "2026-03-01",
		EndDate:   "2026-03-07",
	}, "planner")
	require.Error(t, err)
	assert.True(t, apperrors.IsBatch(err))
	assert.Contains(t, err.Error(), "machine not found: M-99-3GG")
	assert.Contains(t, err.Error(), "invalid operation_date")

	// Items before the failures were still applied, but no orphan cleanup ran
	assert.Len(t, allocations.ops, 1)
	assert.False(t, allocations.orphansCalled)
}

func TestSaveAllocationsOrphanCleanup(t *testing.T) {
	svc, allocations, machines, _, _ := newPlanningFixture()

	machines.add("M-01-3GG")
	orderID := uuid.New()
	allocations.orphansDeleted = 3

	resp, err := svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{allocationItem("M-01-3GG", orderID, "2026-03-04")},
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-07",
	}, "planner")
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.OrphansDeleted)
	assert.True(t, allocations.orphansCalled)
	assert.Equal(t, resp.Saved, allocations.lastKeepIDs)

	// Without both dates the cleanup is skipped entirely
	allocations.orphansCalled = false
	resp, err = svc.SaveAllocations(&SaveAllocationsRequest{
		Allocations: []AllocationItem{allocationItem("M-01-3GG", orderID, "2026-03-04")},
		StartDate:   "2026-03-01",
	}, "planner")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.OrphansDeleted)
	assert.False(t, allocations.orphansCalled)
}

func TestSaveAllocationsEmptyPayload(t *testing.T) {
	svc, _, _, _, _ := newPlanningFixture()

	_, err := svc.SaveAllocations(&SaveAllocationsRequest{}, "planner")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteAllocation(t *testing.T) {
	svc, allocations, _, _, _ := newPlanningFixture()

	op := allocations.add(&models.MachineOperation{})

	ok, err := svc.DeleteAllocation(op.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, allocations.ops)

	ok, err = svc.DeleteAllocation(op.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetOrderData(t *testing.T) {
	svc, _, _, orders, styles := newPlanningFixture()

	styles.add(&models.Style{
		StyleCode: "ST-1001",
		StyleName: "Crew Neck",
		GG:        "12",
		Processes: []models.StyleProcess{
			{ProcessName: "Knitting", Minutes: 12.5},
			{ProcessName: "Linking", Minutes: 4},
		},
	})

	delivery := mustDate(t, "2026-04-01")
	order := orders.add(&models.Order{
		Status:       models.OrderStatusOpen,
		OrderDate:    mustDate(t, "2026-03-01"),
		DeliveryDate: &delivery,
		Styles:       []models.OrderStyle{{StyleCode: "ST-1001"}},
		Details: []models.OrderDetail{
			{StyleCode: "ST-1001", Colour: "Navy", Size: "M", Quantity: 20},
			{StyleCode: "ST-1001", Colour: "Navy", Size: "L", Quantity: 30},
		},
	})

	resp, err := svc.GetOrderData(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Status)
	assert.Equal(t, "2026-03-01", resp.OrderDate)
	require.NotNil(t, resp.DeliveryDate)
	assert.Equal(t, "2026-04-01", *resp.DeliveryDate)
	require.Len(t, resp.Styles, 1)
	assert.Equal(t, "Crew Neck", resp.Styles[0].StyleName)
	require.Len(t, resp.Styles[0].Processes, 2)
	assert.Equal(t, 12.5, resp.Styles[0].Processes[0].Minutes)
	require.Len(t, resp.Details, 2)
}

func TestGetOrderDataNotFound(t *testing.T) {
	svc, _, _, _, _ := newPlanningFixture()

	_, err := svc.GetOrderData(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestGetAllAllocationsResolvesMachineCodes(t *testing.T) {
	svc, allocations, machines, _, _ := newPlanningFixture()

	machine := machines.add("M-01-3GG")
	allocations.add(&models.MachineOperation{
		MachineID:        machine.ID,
		OrderID:          uuid.New(),
		StyleCode:        "ST-1001",
		ProcessName:      "Knitting",
		OperationDate:    mustDate(t, "2026-03-04"),
		AllocatedMinutes: 90,
	})
	allocations.add(&models.MachineOperation{
		MachineID:     machine.ID,
		OrderID:       uuid.New(),
		StyleCode:     "ST-1002",
		ProcessName:   "Knitting",
		OperationDate: mustDate(t, "2026-04-20"),
	})

	rows, err := svc.GetAllAllocations("2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "M-01-3GG", rows[0].MachineCode)
	assert.Equal(t, "2026-03-04", rows[0].OperationDate)
	assert.Equal(t, 90, rows[0].AllocatedMinutes)
}

func TestGetExistingAllocationsRequiresProcess(t *testing.T) {
	svc, _, _, _, _ := newPlanningFixture()

	_, err := svc.GetExistingAllocations(uuid.New(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
