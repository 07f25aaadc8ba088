package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"albion-backend/internal/api/middleware"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/mocks"
	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockOrders   *mocks.MockOrderServiceInterface
	mockPlanning *mocks.MockPlanningServiceInterface
	handler      *OrderHandler
	router       *gin.Engine
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockOrders = mocks.NewMockOrderServiceInterface(s.ctrl)
	s.mockPlanning = mocks.NewMockPlanningServiceInterface(s.ctrl)
	s.handler = NewOrderHandler(s.mockOrders, s.mockPlanning)

	s.router = gin.New()
	s.router.Use(middleware.Operator())
	s.router.POST("/orders", s.handler.CreateOrder)
	s.router.GET("/orders", s.handler.ListOrders)
	s.router.GET("/orders/:id", s.handler.GetOrder)
	s.router.PUT("/orders/:id", s.handler.UpdateOrder)
	s.router.GET("/orders/:id/data", s.handler.GetOrderData)
	s.router.GET("/orders/:id/completion", s.handler.GetOrderCompletion)
	s.router.POST("/orders/:id/tracking", s.handler.RecordTracking)
	s.router.POST("/orders/:id/submit", s.handler.SubmitOrder)
	s.router.POST("/orders/:id/cancel", s.handler.CancelOrder)
	s.router.POST("/orders/:id/close", s.handler.CloseOrder)
	s.router.POST("/orders/:id/reopen", s.handler.ReopenOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	clientID := uuid.New()
	expected := &service.OrderResponse{
		ID:            uuid.New(),
		ClientID:      clientID,
		PurchaseOrder: "PO-1001",
		Status:        "Draft",
		TotalQuantity: 50,
	}
	s.mockOrders.EXPECT().Create(gomock.Any(), "planner").Return(expected, nil)

	body := map[string]interface{}{
		"client_id":  clientID.String(),
		"order_date": "2026-03-01",
		"styles":     []string{"ST-1001"},
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator", "planner")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp service.OrderResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.ID)
	s.Equal("Draft", resp.Status)
	s.Equal(50, resp.TotalQuantity)
}

func (s *OrderHandlerTestSuite) TestCreateOrderInvalidJSON() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrderHandlerTestSuite) TestCreateOrderValidationError() {
	s.mockOrders.EXPECT().Create(gomock.Any(), "system").
		Return(nil, apperrors.NewValidationError("client not found"))

	payload, _ := json.Marshal(map[string]interface{}{
		"client_id":  uuid.New().String(),
		"order_date": "2026-03-01",
		"styles":     []string{"ST-1001"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "client not found")
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.mockOrders.EXPECT().ListSubmitted().Return([]service.OrderResponse{
		{ID: uuid.New(), Status: "Open"},
		{ID: uuid.New(), Status: "Closed"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp []service.OrderResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 2)
}

func (s *OrderHandlerTestSuite) TestGetOrderNotFound() {
	id := uuid.New()
	s.mockOrders.EXPECT().Get(id).Return(nil, apperrors.ErrOrderNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/"+id.String(), nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestGetOrderInvalidID() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/not-a-uuid", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Invalid order ID")
}

func (s *OrderHandlerTestSuite) TestUpdateOrder() {
	id := uuid.New()
	expected := &service.OrderResponse{ID: id, Status: "Draft", TotalQuantity: 80}
	s.mockOrders.EXPECT().Update(id, gomock.Any(), "system").Return(expected, nil)

	payload, _ := json.Marshal(map[string]interface{}{
		"client_id":  uuid.New().String(),
		"order_date": "2026-03-01",
		"styles":     []string{"ST-1001"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/orders/"+id.String(), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp service.OrderResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(80, resp.TotalQuantity)
}

func (s *OrderHandlerTestSuite) TestGetOrderData() {
	id := uuid.New()
	s.mockPlanning.EXPECT().GetOrderData(id).Return(&service.OrderDataResponse{
		ID:     id,
		Status: "Open",
		Styles: []service.OrderStyleData{{StyleCode: "ST-1001"}},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/"+id.String()+"/data", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp service.OrderDataResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Open", resp.Status)
	s.Len(resp.Styles, 1)
}

func (s *OrderHandlerTestSuite) TestGetOrderCompletion() {
	id := uuid.New()
	completion := service.CompletionResponse{
		"ST-1001": {"Navy": {"M": 12}},
	}
	s.mockOrders.EXPECT().GetCompletion(id).Return(completion, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/"+id.String()+"/completion", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp service.CompletionResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(12, resp["ST-1001"]["Navy"]["M"])
}

func (s *OrderHandlerTestSuite) TestRecordTracking() {
	id := uuid.New()
	entryID := uuid.New()
	s.mockOrders.EXPECT().RecordTracking(id, gomock.Any(), "operator-7").
		Return(&service.TrackingEntryResponse{
			ID:           entryID,
			OrderID:      id,
			StyleCode:    "ST-1001",
			Quantity:     10,
			TrackingDate: "2026-03-10",
		}, nil)

	payload, _ := json.Marshal(service.TrackingRequest{
		StyleCode:    "ST-1001",
		Colour:       "Navy",
		Size:         "M",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/tracking", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator", "operator-7")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp service.TrackingEntryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(entryID, resp.ID)
	s.Equal(10, resp.Quantity)
}

func (s *OrderHandlerTestSuite) TestRecordTrackingUnallocatedOrder() {
	id := uuid.New()
	s.mockOrders.EXPECT().RecordTracking(id, gomock.Any(), "system").
		Return(nil, apperrors.ErrOrderNotAllocated)

	payload, _ := json.Marshal(service.TrackingRequest{
		StyleCode:    "ST-1001",
		Quantity:     10,
		TrackingDate: "2026-03-10",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/tracking", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "not allocated in capacity planning")
}

func (s *OrderHandlerTestSuite) TestSubmitOrder() {
	id := uuid.New()
	s.mockOrders.EXPECT().Submit(id, "system").Return(&service.OrderResponse{ID: id, Status: "Open"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/submit", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"Open"`)
}

func (s *OrderHandlerTestSuite) TestSubmitOrderValidationFailure() {
	id := uuid.New()
	s.mockOrders.EXPECT().Submit(id, "system").
		Return(nil, apperrors.NewValidationError("rate missing for: ST-1001 - Navy"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/submit", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "rate missing")
}

func (s *OrderHandlerTestSuite) TestCancelClosedOrder() {
	id := uuid.New()
	s.mockOrders.EXPECT().Cancel(id, "system").Return(nil, apperrors.ErrOrderClosed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/cancel", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrderHandlerTestSuite) TestCloseAndReopenOrder() {
	id := uuid.New()
	s.mockOrders.EXPECT().Close(id, "system").Return(&service.OrderResponse{ID: id, Status: "Closed"}, nil)
	s.mockOrders.EXPECT().Reopen(id, "system").Return(&service.OrderResponse{ID: id, Status: "Open"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders/"+id.String()+"/close", nil)
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"Closed"`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/orders/"+id.String()+"/reopen", nil)
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"Open"`)
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
