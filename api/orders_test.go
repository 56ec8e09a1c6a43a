package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockBookingUseCase) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockBookingUseCase) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockBookingUseCase) DeleteOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	args := m.Called(ctx, orderID, userID)
	return args.Error(0)
}

func (m *MockBookingUseCase) ListTickets(ctx context.Context, userID uuid.UUID) ([]domain.Ticket, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func orderTestContext(t *testing.T, userID uuid.UUID, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	return c, w
}

func TestOrderHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	userID := uuid.New()
	flightID := uuid.New()
	seats := []uuid.UUID{uuid.New(), uuid.New()}

	c, w := orderTestContext(t, userID, "POST", "/orders", createOrderRequest{FlightID: flightID, SeatIDs: seats})

	order := &domain.Order{
		ID:     uuid.New(),
		UserID: userID,
		Tickets: []domain.Ticket{
			{ID: uuid.New(), FlightID: flightID, SeatID: seats[0]},
			{ID: uuid.New(), FlightID: flightID, SeatID: seats[1]},
		},
	}

	input := booking.CreateBookingInput{FlightID: flightID, SeatIDs: seats, UserID: userID}
	mockService.On("CreateBooking", c.Request.Context(), input).Return(order, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, order.ID, response.ID)
	assert.Len(t, response.Tickets, 2)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_create_unauthenticated(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(nil))

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestOrderHandler_create_statusMapping(t *testing.T) {
	contested := []uuid.UUID{uuid.New()}

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectSeatIDs  bool
	}{
		{
			name:           "flight not found",
			err:            domain.ErrFlightNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "flight departed",
			err:            domain.ErrFlightDeparted,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid seats",
			err:            domain.InvalidSeats(contested),
			expectedStatus: http.StatusBadRequest,
			expectSeatIDs:  true,
		},
		{
			name:           "empty or duplicate seats",
			err:            domain.ErrEmptyOrDuplicateSeats,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "seats already booked",
			err:            domain.BookedSeats(contested),
			expectedStatus: http.StatusConflict,
			expectSeatIDs:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewOrderHandler(mockService)

			userID := uuid.New()
			c, w := orderTestContext(t, userID, "POST", "/orders", createOrderRequest{FlightID: uuid.New(), SeatIDs: contested})

			mockService.On("CreateBooking", c.Request.Context(), mock.Anything).Return(nil, tc.err)

			handler.create(c)

			assert.Equal(t, tc.expectedStatus, w.Code)

			var payload map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["error"])
			if tc.expectSeatIDs {
				ids, ok := payload["seat_ids"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, ids, len(contested))
				assert.Equal(t, contested[0].String(), ids[0])
			} else {
				assert.NotContains(t, payload, "seat_ids")
			}
		})
	}
}

func TestOrderHandler_get_forbidden(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	userID := uuid.New()
	orderID := uuid.New()
	c, w := orderTestContext(t, userID, "GET", "/orders/"+orderID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: orderID.String()}}

	mockService.On("GetOrder", c.Request.Context(), orderID, userID).Return(nil, domain.ErrForbidden)

	handler.get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderHandler_get_invalidID(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	c, w := orderTestContext(t, uuid.New(), "GET", "/orders/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetOrder")
}

func TestOrderHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	userID := uuid.New()
	c, w := orderTestContext(t, userID, "GET", "/orders", nil)

	orders := []domain.Order{{ID: uuid.New(), UserID: userID}}
	mockService.On("ListOrders", c.Request.Context(), userID).Return(orders, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
}

func TestOrderHandler_delete(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewOrderHandler(mockService)

	userID := uuid.New()
	orderID := uuid.New()
	c, w := orderTestContext(t, userID, "DELETE", "/orders/"+orderID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: orderID.String()}}

	mockService.On("DeleteOrder", c.Request.Context(), orderID, userID).Return(nil)

	handler.delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewTicketHandler(mockService)

	userID := uuid.New()
	c, w := orderTestContext(t, userID, "GET", "/tickets", nil)

	tickets := []domain.Ticket{{ID: uuid.New(), FlightID: uuid.New(), SeatID: uuid.New()}}
	mockService.On("ListTickets", c.Request.Context(), userID).Return(tickets, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Ticket
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
}
