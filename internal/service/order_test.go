package service

import (
	"testing"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (*OrderService, *fakeOrderRepo, *fakeClientRepo, *fakeStyleRepo, *fakeAllocationRepo, *fakeTrackingRepo) {
	orders := &fakeOrderRepo{}
	clients := &fakeClientRepo{}
	styles := &fakeStyleRepo{}
	allocations := &fakeAllocationRepo{}
	tracking := &fakeTrackingRepo{}
	svc := NewOrderService(orders, clients, styles, allocations, tracking, validator.New())
	return svc, orders, clients, styles, allocations, tracking
}

func knitStyle(styles *fakeStyleRepo, code string, minutes float64) *models.Style {
	return styles.add(&models.Style{
		StyleCode: code,
		StyleName: code,
		Processes: []models.StyleProcess{{ProcessName: "Knitting", Minutes: minutes}},
	})
}

func submittableOrder(t *testing.T, orders *fakeOrderRepo, clientID uuid.UUID, styleCode string) *models.Order {
	t.Helper()
	delivery := mustDate(t, "2026-04-01")
	return orders.add(&models.Order{
		ClientID:  clientID,
		OrderDate: mustDate(t, "2026-03-01"),
		Status:    models.OrderStatusDraft,
		Styles:    []models.OrderStyle{{StyleCode: styleCode}},
		Details: []models.OrderDetail{
			{
				StyleCode:    styleCode,
				Colour:       "Navy",
				Size:         "M",
				Quantity:     20,
				Rate:         decimal.NewFromInt(10),
				DeliveryDate: &delivery,
			},
		},
	})
}

func TestCreateOrder(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	delivery := "2026-04-01"

	resp, err := svc.Create(&CreateOrderRequest{
		ClientID:      client.ID,
		PurchaseOrder: "PO-100",
		OrderDate:     "2026-03-01",
		DeliveryDate:  &delivery,
		Styles:        []string{"ST-1001"},
		Details: []OrderDetailInput{
			{StyleCode: "ST-1001", Colour: "Navy", Size: "M", Quantity: 20, Rate: decimal.NewFromInt(10)},
			{StyleCode: "ST-1001", Colour: "Navy", Size: "L", Quantity: 30, Rate: decimal.NewFromInt(10)},
		},
	}, "sales")
	require.NoError(t, err)

	assert.Equal(t, "Draft", resp.Status)
	assert.Equal(t, 50, resp.TotalQuantity)
	assert.Equal(t, []string{"ST-1001"}, resp.Styles)
	require.Len(t, resp.Details, 2)
	require.Len(t, orders.orders, 1)
	assert.Equal(t, "sales", orders.orders[0].CreatedBy)
}

func TestCreateOrderUnknownClientAndStyle(t *testing.T) {
	svc, _, clients, styles, _, _ := newOrderFixture()

	knitStyle(styles, "ST-1001", 12)

	_, err := svc.Create(&CreateOrderRequest{
		ClientID:  uuid.New(),
		OrderDate: "2026-03-01",
		Styles:    []string{"ST-1001"},
	}, "sales")
	assert.ErrorIs(t, err, apperrors.ErrClientNotFound)

	client := clients.add("Acme Knits")
	_, err = svc.Create(&CreateOrderRequest{
		ClientID:  client.ID,
		OrderDate: "2026-03-01",
		Styles:    []string{"ST-9999"},
	}, "sales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style not found: ST-9999")
}

func TestCreateOrderDetailForUnlistedStyle(t *testing.T) {
	svc, _, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	knitStyle(styles, "ST-2002", 8)

	_, err := svc.Create(&CreateOrderRequest{
		ClientID:  client.ID,
		OrderDate: "2026-03-01",
		Styles:    []string{"ST-1001"},
		Details: []OrderDetailInput{
			{StyleCode: "ST-2002", Colour: "Navy", Size: "M", Quantity: 5},
		},
	}, "sales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references style not on the order")
}

func TestSubmitOrder(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12.5)
	order := submittableOrder(t, orders, client.ID, "ST-1001")

	resp, err := svc.Submit(order.ID, "sales")
	require.NoError(t, err)

	assert.Equal(t, "Open", resp.Status)
	require.Len(t, resp.Processes, 1)
	assert.Equal(t, "Knitting", resp.Processes[0].ProcessName)
	assert.Equal(t, 12.5, resp.Processes[0].Minutes)
}

func TestSubmitOrderStyleWithoutQuantities(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	knitStyle(styles, "ST-2002", 8)

	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Styles = append(order.Styles, models.OrderStyle{StyleCode: "ST-2002"})

	_, err := svc.Submit(order.ID, "sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "ST-2002")
}

func TestSubmitOrderMissingRateAndDeliveryDate(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)

	order := orders.add(&models.Order{
		ClientID:  client.ID,
		OrderDate: mustDate(t, "2026-03-01"),
		Status:    models.OrderStatusDraft,
		Styles:    []models.OrderStyle{{StyleCode: "ST-1001"}},
		Details: []models.OrderDetail{
			{StyleCode: "ST-1001", Colour: "Navy", Size: "M", Quantity: 20},
		},
	})

	_, err := svc.Submit(order.ID, "sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "rate missing for: ST-1001 - Navy")
	assert.Contains(t, err.Error(), "delivery date missing for: ST-1001 - Navy")
}

func TestSubmitOrderStyleWithZeroMinutes(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 0)
	order := submittableOrder(t, orders, client.ID, "ST-1001")

	_, err := svc.Submit(order.ID, "sales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no minutes")
	assert.Equal(t, models.OrderStatusDraft, order.Status)
}

func TestSubmitOrderNotDraft(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen

	_, err := svc.Submit(order.ID, "sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCancelOrder(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen

	resp, err := svc.Cancel(order.ID, "sales")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
}

func TestCancelOrderBlockedByAllocations(t *testing.T) {
	svc, orders, clients, styles, allocations, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen

	allocations.add(&models.MachineOperation{
		MachineID:     uuid.New(),
		OrderID:       order.ID,
		StyleCode:     "ST-1001",
		ProcessName:   "Knitting",
		OperationDate: mustDate(t, "2026-03-04"),
	})

	_, err := svc.Cancel(order.ID, "sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "ST-1001 Knitting on 2026-03-04")
	assert.Equal(t, models.OrderStatusOpen, order.Status)
}

func TestCancelClosedOrder(t *testing.T) {
	svc, orders, clients, _, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusClosed

	_, err := svc.Cancel(order.ID, "sales")
	assert.ErrorIs(t, err, apperrors.ErrOrderClosed)
}

func TestCloseAndReopenOrder(t *testing.T) {
	svc, orders, clients, _, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")

	// Drafts cannot close
	_, err := svc.Close(order.ID, "sales")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotSubmitted)

	order.Status = models.OrderStatusOpen
	resp, err := svc.Close(order.ID, "sales")
	require.NoError(t, err)
	assert.Equal(t, "Closed", resp.Status)

	_, err = svc.Close(order.ID, "sales")
	assert.ErrorIs(t, err, apperrors.ErrOrderAlreadyClosed)

	resp, err = svc.Reopen(order.ID, "sales")
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Status)

	_, err = svc.Reopen(order.ID, "sales")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotClosed)
}

func TestUpdateOrderOnlyDrafts(t *testing.T) {
	svc, orders, clients, styles, _, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	knitStyle(styles, "ST-1001", 12)
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen

	_, err := svc.Update(order.ID, &CreateOrderRequest{
		ClientID:  client.ID,
		OrderDate: "2026-03-01",
		Styles:    []string{"ST-1001"},
	}, "sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetCompletion(t *testing.T) {
	svc, orders, clients, _, _, tracking := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")

	tracking.rows = []repository.TrackingSummaryRow{
		{OrderID: order.ID, StyleCode: "ST-1001", Colour: "Navy", Size: "M", Quantity: 10},
		{OrderID: order.ID, StyleCode: "ST-1001", Colour: "Navy", Size: "L", Quantity: 15},
		{OrderID: uuid.New(), StyleCode: "ST-1001", Colour: "Navy", Size: "M", Quantity: 99},
	}

	completion, err := svc.GetCompletion(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, completion["ST-1001"]["Navy"]["M"])
	assert.Equal(t, 15, completion["ST-1001"]["Navy"]["L"])

	_, err = svc.GetCompletion(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestRecordTracking(t *testing.T) {
	svc, orders, clients, _, allocations, tracking := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen
	allocations.add(&models.MachineOperation{
		OrderID:       order.ID,
		StyleCode:     "ST-1001",
		ProcessName:   "Knitting",
		OperationDate: mustDate(t, "2026-03-10"),
	})

	resp, err := svc.RecordTracking(order.ID, &TrackingRequest{
		StyleCode:    "ST-1001",
		Colour:       "Navy",
		Size:         "M",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	}, "operator-7")
	require.NoError(t, err)

	assert.Equal(t, order.ID, resp.OrderID)
	assert.Equal(t, "2026-03-10", resp.TrackingDate)
	require.Len(t, tracking.created, 1)
	entry := tracking.created[0]
	assert.Equal(t, "ST-1001", entry.StyleCode)
	assert.Equal(t, 10, entry.Quantity)
	assert.Equal(t, "operator-7", entry.User)
	assert.Equal(t, "operator-7", entry.CreatedBy)
}

func TestRecordTrackingRequiresAllocations(t *testing.T) {
	svc, orders, clients, _, _, tracking := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	order.Status = models.OrderStatusOpen

	_, err := svc.RecordTracking(order.ID, &TrackingRequest{
		StyleCode:    "ST-1001",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	}, "operator-7")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotAllocated)
	assert.Empty(t, tracking.created)
}

func TestRecordTrackingStyleNotOnOrder(t *testing.T) {
	svc, orders, clients, _, allocations, _ := newOrderFixture()

	client := clients.add("Acme Knits")
	order := submittableOrder(t, orders, client.ID, "ST-1001")
	allocations.add(&models.MachineOperation{OrderID: order.ID, StyleCode: "ST-1001"})

	_, err := svc.RecordTracking(order.ID, &TrackingRequest{
		StyleCode:    "ST-9999",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	}, "operator-7")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "ST-9999")
}

func TestRecordTrackingOrderNotFound(t *testing.T) {
	svc, _, _, _, _, _ := newOrderFixture()

	_, err := svc.RecordTracking(uuid.New(), &TrackingRequest{
		StyleCode:    "ST-1001",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	}, "operator-7")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}
